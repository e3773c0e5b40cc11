package serialize

import (
	"github.com/arrowlat/densefsa/ragged"
	"github.com/pkg/errors"
)

// shapeDTO is the gob-friendly mirror of a ragged.Shape: ragged.Shape
// keeps its row-splits unexported (so callers can't violate the
// exclusive-prefix-sum invariant directly), so persistence goes through
// this plain-field copy instead.
type shapeDTO struct {
	Dim0      int32
	RowSplits [][]int32
}

func toShapeDTO(s *ragged.Shape) shapeDTO {
	return shapeDTO{Dim0: s.Dim0(), RowSplits: s.AllRowSplits()}
}

func (d shapeDTO) toShape() (*ragged.Shape, error) {
	if len(d.RowSplits) == 0 {
		return nil, ErrEmptyShape
	}
	shape, err := ragged.NewShape(d.Dim0, d.RowSplits...)
	if err != nil {
		return nil, errors.Wrap(err, "serialize: rebuilding shape")
	}
	return shape, nil
}
