package maze

import "errors"

// Cell and grid errors. They describe local precondition violations and are
// never transient.
var (
	ErrInvalidGeometry = errors.New("invalid maze geometry")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotAdjacent     = errors.New("cells are not adjacent")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrAsymmetricWalls = errors.New("asymmetric walls between adjacent cells")
)
