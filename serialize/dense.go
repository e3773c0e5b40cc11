package serialize

import (
	"encoding/gob"
	"io"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type denseDTO struct {
	Shape  shapeDTO
	Scores mat.Dense
}

// WriteDenseEmissions snappy-compresses and gob-encodes d to w. It
// relies on *mat.Dense's own GobEncode/GobDecode, so the emission matrix
// round-trips without a manual row/column copy loop.
func WriteDenseEmissions(w io.Writer, d fsa.DenseEmissions) error {
	sw := snappy.NewBufferedWriter(w)
	dto := denseDTO{Shape: toShapeDTO(d.Shape), Scores: *d.Scores}
	if err := gob.NewEncoder(sw).Encode(dto); err != nil {
		return errors.Wrap(err, "serialize: encoding DenseEmissions")
	}
	return errors.Wrap(sw.Close(), "serialize: flushing DenseEmissions stream")
}

// ReadDenseEmissions decodes and validates a DenseEmissions written by
// WriteDenseEmissions.
func ReadDenseEmissions(r io.Reader) (fsa.DenseEmissions, error) {
	var dto denseDTO
	if err := gob.NewDecoder(snappy.NewReader(r)).Decode(&dto); err != nil {
		return fsa.DenseEmissions{}, errors.Wrap(err, "serialize: decoding DenseEmissions")
	}
	shape, err := dto.Shape.toShape()
	if err != nil {
		return fsa.DenseEmissions{}, err
	}
	d, err := fsa.NewDenseEmissions(shape, &dto.Scores)
	if err != nil {
		return fsa.DenseEmissions{}, errors.Wrap(err, "serialize: validating decoded DenseEmissions")
	}
	return d, nil
}
