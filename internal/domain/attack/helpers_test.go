package attack

import (
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"sort_attack_list/internal/app"
)

// mustRecord decodes a JSON object into a record
func mustRecord(t *testing.T, js string) app.AttackRecord {
	t.Helper()
	var record app.AttackRecord
	if err := json.Unmarshal([]byte(js), &record); err != nil {
		t.Fatalf("Failed to decode record %s: %v", js, err)
	}
	return record
}

// targetRecord builds a record with a name and a target coordinate
func targetRecord(name string, x, y int) app.AttackRecord {
	return app.NewAttackRecord(
		app.Field{Key: "target", Value: json.RawMessage(fmt.Sprintf("%q", name))},
		app.Field{Key: app.FieldTargetX, Value: json.RawMessage(fmt.Sprint(x))},
		app.Field{Key: app.FieldTargetY, Value: json.RawMessage(fmt.Sprint(y))},
	)
}

// recordDistance returns the distance stored on a record, if any
func recordDistance(record app.AttackRecord) (float64, bool) {
	raw, ok := record.Get(app.FieldDistance)
	if !ok {
		return 0, false
	}
	d, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, false
	}
	return d, true
}

// encodeRecord marshals a record so its field order can be asserted
func encodeRecord(t *testing.T, record app.AttackRecord) string {
	t.Helper()
	out, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to encode record: %v", err)
	}
	return string(out)
}

func recordName(record app.AttackRecord) string {
	raw, ok := record.Get("target")
	if !ok {
		return ""
	}
	var name string
	_ = json.Unmarshal(raw, &name)
	return name
}

func recordNames(records []app.AttackRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = recordName(r)
	}
	return names
}
