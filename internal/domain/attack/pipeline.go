package attack

import (
	"fmt"

	"sort_attack_list/internal/app"
	"sort_attack_list/internal/config"
)

// Transform turns the decoded commands into the records to write out
type Transform func(records []app.AttackRecord, home app.Position, filterByPosition bool) ([]app.AttackRecord, error)

// LegacyPipeline keeps the tool's historical output: every record gets its
// distance, but the position filter runs over the input order and the
// output is not distance-ordered.
func LegacyPipeline(records []app.AttackRecord, home app.Position, filterByPosition bool) ([]app.AttackRecord, error) {
	annotated, err := AnnotateDistances(records, home)
	if err != nil {
		return nil, err
	}
	return FilterByPosition(annotated, filterByPosition)
}

// SortedPipeline sorts by distance and then filters the sorted order. Records
// sharing a coordinate share a distance, so the stable sort keeps the first of
// them from the input.
func SortedPipeline(records []app.AttackRecord, home app.Position, filterByPosition bool) ([]app.AttackRecord, error) {
	sorted, err := SortByDistance(records, home)
	if err != nil {
		return nil, err
	}
	return FilterByPosition(sorted, filterByPosition)
}

// Pipeline returns the Transform for a configured mode
func Pipeline(mode string) (Transform, error) {
	switch mode {
	case config.ModeLegacy:
		return LegacyPipeline, nil
	case config.ModeSorted:
		return SortedPipeline, nil
	default:
		return nil, fmt.Errorf("unknown pipeline mode %q", mode)
	}
}
