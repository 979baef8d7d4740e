package config

// File locations used when no flag overrides them
const (
	DefaultConfigPath = "config.ini"
	DefaultOutputPath = "sorted.json"

	// StdioPath selects stdin for input and stdout for output
	StdioPath = "-"
)

// EnvPrefix prefixes environment overrides, e.g. SORT_ATTACK_LIST_POSITION_X
const EnvPrefix = "SORT_ATTACK_LIST"

// Configuration keys, as section.key in config.ini
const (
	KeyPositionX        = "position.x"
	KeyPositionY        = "position.y"
	KeyFilterByPosition = "filter.by_position"
	KeyPipelineMode     = "pipeline.mode"
)

// Pipeline modes
const (
	// ModeLegacy annotates distances but filters and emits the records in input order.
	ModeLegacy = "legacy"
	// ModeSorted sorts by distance first and filters the sorted order.
	ModeSorted = "sorted"

	DefaultMode = ModeLegacy
)

// RequiredKeys lists the keys that must be present in the configuration
var RequiredKeys = []string{
	KeyPositionX,
	KeyPositionY,
	KeyFilterByPosition,
}

// IsValidMode reports whether mode names a known pipeline composition
func IsValidMode(mode string) bool {
	switch mode {
	case ModeLegacy, ModeSorted:
		return true
	default:
		return false
	}
}
