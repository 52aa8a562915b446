// Package shipplan builds the linear program for a transport-line /
// ship-type assignment problem: how many ships of each type to assign to
// each line so that every line carries at least its required minimum
// transport volume, every available ship is assigned to exactly one line,
// and total cost is minimized.
//
// Variables are x[line][shipType], flattened row-major (line outer, ship
// type inner) into a single vector of length nLines*nShips - the same
// flattening the original command/compute.rs produces via a transpose-then-
// reshape, just without needing a column-major intermediate. Two constraint
// families are generated per Build call:
//
//   - one "at least" constraint per line: sum_shipType(transportRate[line][s]
//     * x[line][s]) >= minTransportPerLine[line];
//   - one "exactly" constraint per ship type: sum_line(x[line][s]) ==
//     shipsCountPerType[s].
//
// The GUI, persistence and LaTeX-report layers the original command module
// also touched are out of scope here; this package only builds the Problem
// and reshapes a Solution back into a line x shipType matrix.
package shipplan
