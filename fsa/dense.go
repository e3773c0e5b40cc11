package fsa

import (
	"fmt"
	"math"

	"github.com/arrowlat/densefsa/ragged"
	"gonum.org/v1/gonum/mat"
)

// DenseEmissions is a batch of sequences, each a dense matrix of per-frame
// per-symbol log-likelihoods (spec.md §3's b_fsas / DenseFsaVec). Shape is
// a 2-axis ragged [seq,frame] shape; Scores holds one row per (seq,frame)
// pair in the same order, with Columns() columns. Column 0 is the
// final-arc symbol (label -1); column k>=1 is label k-1.
//
// Scores is backed by *mat.Dense rather than a bare [][]float64 so that
// downstream rescoring tools can reuse gonum's linear-algebra routines
// directly on the emission matrix without a copy.
type DenseEmissions struct {
	Shape  *ragged.Shape
	Scores *mat.Dense
}

// NewDenseEmissions validates and wraps shape/scores into a DenseEmissions.
func NewDenseEmissions(shape *ragged.Shape, scores *mat.Dense) (DenseEmissions, error) {
	d := DenseEmissions{Shape: shape, Scores: scores}
	if err := d.Validate(); err != nil {
		return DenseEmissions{}, err
	}
	return d, nil
}

// Validate checks spec.md §6's preconditions this type owns: Dim0 >= 1,
// the scores matrix row count matches the total frame count, sequences
// are sorted by non-increasing frame count, and every sequence's last
// frame looks like a final row (only column 0 finite).
func (d DenseEmissions) Validate() error {
	if d.Shape.Dim0() < 1 {
		return fmt.Errorf("%w: dim0=%d", ErrDim0Mismatch, d.Shape.Dim0())
	}
	totFrames, cols := d.Scores.Dims()
	if int32(totFrames) != d.Shape.TotSize(1) {
		return ErrScoresNotContiguous
	}
	if cols < 1 {
		return ErrScoresNotContiguous
	}

	splits := d.Shape.RowSplits(1)
	prevLen := int32(math.MaxInt32)
	for seq := 0; seq < len(splits)-1; seq++ {
		length := splits[seq+1] - splits[seq]
		if length > prevLen {
			return fmt.Errorf("%w: sequence %d has %d frames after a sequence with %d", ErrSequencesNotSorted, seq, length, prevLen)
		}
		prevLen = length

		if length == 0 {
			continue
		}
		lastFrame := splits[seq+1] - 1
		for c := 1; c < cols; c++ {
			if !math.IsInf(d.Scores.At(int(lastFrame), c), -1) {
				return fmt.Errorf("%w: sequence %d final frame has a finite non-final column %d", ErrScoresNotContiguous, seq, c)
			}
		}
	}
	return nil
}

// NumSeqs returns the number of sequences (Dim0).
func (d DenseEmissions) NumSeqs() int32 { return d.Shape.Dim0() }

// Columns returns the number of emission columns.
func (d DenseEmissions) Columns() int32 { _, c := d.Scores.Dims(); return int32(c) }

// FrameCount returns the number of frames sequence seq has.
func (d DenseEmissions) FrameCount(seq int32) int32 {
	splits := d.Shape.RowSplits(1)
	return splits[seq+1] - splits[seq]
}

// RowOffset returns the flat row index into Scores for (seq, frame),
// i.e. the same index arc_map_b (spec.md §4.8) is built from.
func (d DenseEmissions) RowOffset(seq, frame int32) int32 {
	return d.Shape.RowSplits(1)[seq] + frame
}

// Score returns the log-likelihood for label at (seq, frame), applying
// the label+1 column-offset convention (spec.md §9).
func (d DenseEmissions) Score(seq, frame, label int32) float32 {
	row := d.RowOffset(seq, frame)
	return float32(d.Scores.At(int(row), int(label+1)))
}
