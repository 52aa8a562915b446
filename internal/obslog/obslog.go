// Package obslog wires the module's structured logger, the way
// itohio-EasyRobot's pkg/logger does: a single package-level zerolog.Logger
// writing to stderr, with caller info attached.
package obslog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the shared logger used by the simplex and bnb packages to trace
// pivots and branch decisions at Debug level.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
