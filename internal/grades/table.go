// Package grades holds the fixed letter-grade scale.
package grades

import (
	"fmt"

	"gpa-tracker/internal/models"
)

type grade struct {
	symbol string
	points float64
}

// scale is ordered best to worst, the order the selectors show
var scale = []grade{
	{"A", 4.0},
	{"A-", 3.7},
	{"B+", 3.3},
	{"B", 3.0},
	{"B-", 2.7},
	{"C+", 2.3},
	{"C", 2.0},
	{"C-", 1.7},
	{"D+", 1.3},
	{"D", 1.0},
	{"F", 0.0},
}

var points = func() map[string]float64 {
	m := make(map[string]float64, len(scale))
	for _, g := range scale {
		m[g.symbol] = g.points
	}
	return m
}()

// PointsFor resolves a letter grade to its point value
func PointsFor(symbol string) (float64, error) {
	p, ok := points[symbol]
	if !ok {
		return 0, models.NewValidationError(models.KindInvalidGrade, fmt.Sprintf("Invalid grade input: %q", symbol))
	}
	return p, nil
}

func Valid(symbol string) bool {
	_, ok := points[symbol]
	return ok
}

// Symbols returns a fresh copy of the recognised grades
func Symbols() []string {
	out := make([]string, len(scale))
	for i, g := range scale {
		out[i] = g.symbol
	}
	return out
}
