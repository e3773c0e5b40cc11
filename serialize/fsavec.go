package serialize

import (
	"encoding/gob"
	"io"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/ragged"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

type fsaVecDTO struct {
	Shape shapeDTO
	Arcs  []fsa.Arc
}

// WriteFsaVec snappy-compresses and gob-encodes v to w.
func WriteFsaVec(w io.Writer, v fsa.FsaVec) error {
	sw := snappy.NewBufferedWriter(w)
	dto := fsaVecDTO{Shape: toShapeDTO(v.Shape), Arcs: v.Values}
	if err := gob.NewEncoder(sw).Encode(dto); err != nil {
		return errors.Wrap(err, "serialize: encoding FsaVec")
	}
	return errors.Wrap(sw.Close(), "serialize: flushing FsaVec stream")
}

// ReadFsaVec decodes and validates an FsaVec written by WriteFsaVec.
func ReadFsaVec(r io.Reader) (fsa.FsaVec, error) {
	var dto fsaVecDTO
	if err := gob.NewDecoder(snappy.NewReader(r)).Decode(&dto); err != nil {
		return fsa.FsaVec{}, errors.Wrap(err, "serialize: decoding FsaVec")
	}
	shape, err := dto.Shape.toShape()
	if err != nil {
		return fsa.FsaVec{}, err
	}
	v, err := fsa.NewFsaVec(ragged.Ragged[fsa.Arc]{Shape: shape, Values: dto.Arcs})
	if err != nil {
		return fsa.FsaVec{}, errors.Wrap(err, "serialize: validating decoded FsaVec")
	}
	return v, nil
}
