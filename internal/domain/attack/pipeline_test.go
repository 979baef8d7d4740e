package attack

import (
	"testing"

	"sort_attack_list/internal/app"
	"sort_attack_list/internal/config"
)

func pipelineInput() []app.AttackRecord {
	return []app.AttackRecord{
		targetRecord("far", 6, 8),
		targetRecord("near", 3, 4),
		targetRecord("far-dup", 6, 8),
		targetRecord("home", 0, 0),
	}
}

func TestLegacyPipeline(t *testing.T) {
	result, err := LegacyPipeline(pipelineInput(), app.Position{}, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// filtered in input order, not distance order
	expected := []string{"far", "near", "home"}
	names := recordNames(result)
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], names[i])
		}
	}

	for _, record := range result {
		if _, ok := recordDistance(record); !ok {
			t.Errorf("Record %s has no distance", recordName(record))
		}
	}
}

func TestLegacyPipeline_FilterDisabled(t *testing.T) {
	result, err := LegacyPipeline(pipelineInput(), app.Position{}, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(result) != 4 || recordName(result[0]) != "far" || recordName(result[3]) != "home" {
		t.Errorf("Expected all records in input order, got %v", recordNames(result))
	}
}

func TestSortedPipeline(t *testing.T) {
	result, err := SortedPipeline(pipelineInput(), app.Position{}, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{"home", "near", "far"}
	names := recordNames(result)
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], names[i])
		}
	}
}

func TestSortedPipeline_EmptyInput(t *testing.T) {
	result, err := SortedPipeline([]app.AttackRecord{}, app.Position{}, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected no records, got %d", len(result))
	}
}

func TestPipeline(t *testing.T) {
	if _, err := Pipeline(config.ModeLegacy); err != nil {
		t.Errorf("Expected legacy mode to resolve, got %v", err)
	}
	if _, err := Pipeline(config.ModeSorted); err != nil {
		t.Errorf("Expected sorted mode to resolve, got %v", err)
	}
	if _, err := Pipeline("shuffled"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
