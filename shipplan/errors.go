package shipplan

import "errors"

// ErrShapeMismatch is returned when transportRate, costRate,
// minTransportPerLine and shipsCountPerType do not describe a consistent
// nLines x nShips grid.
var ErrShapeMismatch = errors.New("shipplan: transport/cost/line/ship-count inputs have inconsistent shapes")
