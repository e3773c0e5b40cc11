package fsa

// Arc is a single labeled, weighted transition inside a decoding graph:
// Src and Dest are idx1 (state indices local to one graph), Label is the
// input symbol (-1 denotes the final-arc symbol), and Score is the arc's
// graph weight. Arc is immutable once placed in an FsaVec.
type Arc struct {
	Src   int32
	Dest  int32
	Label int32
	Score float32
}

// FinalLabel is the reserved label denoting the final-arc symbol; it maps
// to column 0 of a DenseEmissions row (spec.md §4.6's "+1 column offset").
const FinalLabel int32 = -1
