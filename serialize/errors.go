package serialize

import "errors"

// ErrEmptyShape indicates a decoded shapeDTO had zero axes, which never
// happens for a validly-encoded FsaVec or DenseEmissions.
var ErrEmptyShape = errors.New("serialize: decoded shape has no axes")
