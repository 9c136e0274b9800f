package must

import (
	"log/slog"
	"os"
	"strconv"
)

// Assert stops the process when an init-time invariant does not hold.
// Embedded reference tables are build artifacts: a corrupt table is a
// programming error, not a runtime condition to recover from.
func Assert(cond bool, failMessage string) {
	if !cond {
		slog.Error(failMessage)
		os.Exit(1)
	}
}

func NoError(err error) {
	if err != nil {
		slog.Error("assertion failed", "err", err)
		os.Exit(1)
	}
}

// CastFloat64 parses a reference table cell into a float64.
func CastFloat64(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	NoError(err)
	return f
}
