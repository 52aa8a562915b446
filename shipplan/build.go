package shipplan

import (
	"github.com/yevhenk/shiplp/internal/obslog"
	"github.com/yevhenk/shiplp/ratio"
	"github.com/yevhenk/shiplp/simplex"
)

// Build constructs the ship-assignment Problem described in doc.go.
//
//   - transportRate, costRate: nLines x nShips matrices (how much one ship
//     of a given type transports/costs on a given line).
//   - minTransportPerLine: length nLines, the minimum volume each line must
//     carry.
//   - shipsCountPerType: length nShips, the number of ships of each type
//     that must be assigned somewhere (exactly, across all lines).
func Build(transportRate, costRate [][]ratio.Number, minTransportPerLine []ratio.Number, shipsCountPerType []int) (simplex.Problem, error) {
	nLines := len(transportRate)
	if len(costRate) != nLines || len(minTransportPerLine) != nLines {
		return simplex.Problem{}, ErrShapeMismatch
	}
	nShips := len(shipsCountPerType)
	for i := range transportRate {
		if len(transportRate[i]) != nShips || len(costRate[i]) != nShips {
			return simplex.Problem{}, ErrShapeMismatch
		}
	}

	nVars := nLines * nShips
	objCoeffs := make([]ratio.Number, nVars)
	for line := 0; line < nLines; line++ {
		for ship := 0; ship < nShips; ship++ {
			objCoeffs[index(line, ship, nShips)] = costRate[line][ship]
		}
	}
	objective := simplex.NewObjectiveFunction(objCoeffs, true)

	constraints := make([]simplex.Constraint, 0, nLines+nShips)
	for line := 0; line < nLines; line++ {
		coeffs := zeroRow(nVars)
		for ship := 0; ship < nShips; ship++ {
			coeffs[index(line, ship, nShips)] = transportRate[line][ship]
		}
		constraints = append(constraints, simplex.NewConstraint(coeffs, simplex.Greater, minTransportPerLine[line]))
	}
	for ship := 0; ship < nShips; ship++ {
		coeffs := zeroRow(nVars)
		for line := 0; line < nLines; line++ {
			coeffs[index(line, ship, nShips)] = ratio.One()
		}
		constraints = append(constraints, simplex.NewConstraint(coeffs, simplex.Equals, ratio.FromInt64(int64(shipsCountPerType[ship]))))
	}

	obslog.Log.Debug().Int("lines", nLines).Int("ship_types", nShips).Msg("shipplan: problem constructed")

	return simplex.NewProblem(objective, constraints), nil
}

// Decode reshapes a Solution's flat variable vector back into an
// nLines x nShips assignment matrix: assignment[line][ship] ships of that
// type assigned to that line.
func Decode(sol *simplex.Solution, nLines, nShips int) [][]ratio.Number {
	out := make([][]ratio.Number, nLines)
	for line := 0; line < nLines; line++ {
		out[line] = make([]ratio.Number, nShips)
		for ship := 0; ship < nShips; ship++ {
			out[line][ship] = sol.Vars[index(line, ship, nShips)]
		}
	}
	return out
}

func index(line, ship, nShips int) int { return line*nShips + ship }

func zeroRow(n int) []ratio.Number {
	row := make([]ratio.Number, n)
	for i := range row {
		row[i] = ratio.Zero()
	}
	return row
}
