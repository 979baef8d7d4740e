package processing

import "sort_attack_list/internal/commandlist"

// DocumentStoreInterface defines the document storage methods used by AttackListProcessor
type DocumentStoreInterface interface {
	Load(path string) (*commandlist.Document, error)
	Save(path string, doc *commandlist.Document) error
}
