package attack

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"sort_attack_list/internal/app"
)

// Distance returns the Euclidean distance between target and home, rounded
// to two decimal places.
//
// Pure function: No I/O, deterministic output from input
func Distance(target, home app.Position) float64 {
	dx := float64(target.X) - float64(home.X)
	dy := float64(target.Y) - float64(home.Y)
	return RoundDistance(math.Hypot(dx, dy))
}

// RoundDistance rounds d to two decimal places using the exact decimal value
// of d, so 2.675 (stored as 2.67499...) rounds down.
func RoundDistance(d float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(d, 'f', 2, 64), 64)
	if err != nil {
		return d
	}
	return rounded
}

// FormatDistance renders d as a JSON number that always carries a fraction
// or exponent, e.g. 5.0 and 7.07.
func FormatDistance(d float64) json.RawMessage {
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return json.RawMessage(s)
}

// annotatedRecord pairs a record carrying its distance field with the
// numeric distance used for ordering
type annotatedRecord struct {
	record   app.AttackRecord
	distance float64
}

func annotate(records []app.AttackRecord, home app.Position) ([]annotatedRecord, error) {
	annotated := make([]annotatedRecord, len(records))
	for i, record := range records {
		target, err := targetPositionAt(i, record)
		if err != nil {
			return nil, err
		}
		d := Distance(target, home)
		annotated[i] = annotatedRecord{
			record:   record.With(app.FieldDistance, FormatDistance(d)),
			distance: d,
		}
	}
	return annotated, nil
}

// AnnotateDistances returns copies of records, in the same order, with the
// distance field set (or overwritten) from home.
//
// Pure function: Does not modify input slice or its records
func AnnotateDistances(records []app.AttackRecord, home app.Position) ([]app.AttackRecord, error) {
	annotated, err := annotate(records, home)
	if err != nil {
		return nil, err
	}
	return unwrap(annotated), nil
}

func unwrap(annotated []annotatedRecord) []app.AttackRecord {
	records := make([]app.AttackRecord, len(annotated))
	for i, a := range annotated {
		records[i] = a.record
	}
	return records
}
