package attack

import (
	"sort"

	"sort_attack_list/internal/app"
)

// SortByDistance returns a new slice of records annotated with their distance
// from home and ordered nearest first. Records at equal distance keep their
// input order.
//
// Pure function: Does not modify input slice or its records, returns new sorted slice
func SortByDistance(records []app.AttackRecord, home app.Position) ([]app.AttackRecord, error) {
	annotated, err := annotate(records, home)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].distance < annotated[j].distance
	})

	return unwrap(annotated), nil
}
