package processing

import "sort_attack_list/internal/commandlist"

// Compile-time interface compliance checks
var (
	_ DocumentStoreInterface = (*commandlist.Store)(nil)
)
