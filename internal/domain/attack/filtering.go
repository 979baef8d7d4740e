package attack

import "sort_attack_list/internal/app"

// FilterByPosition keeps the first record for each distinct target
// coordinate and drops the rest. When enabled is false the input slice is
// returned as is.
//
// Pure function: No I/O, returns new slice without modifying input
func FilterByPosition(records []app.AttackRecord, enabled bool) ([]app.AttackRecord, error) {
	if !enabled {
		return records, nil
	}

	seen := make(map[app.Position]struct{}, len(records))
	kept := make([]app.AttackRecord, 0, len(records))
	for i, record := range records {
		pos, err := targetPositionAt(i, record)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		kept = append(kept, record)
	}
	return kept, nil
}
