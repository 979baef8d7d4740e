package mocks

import "sort_attack_list/internal/commandlist"

// MockDocumentStore is a test double for commandlist.Store
type MockDocumentStore struct {
	// Responses to return
	LoadResponse *commandlist.Document

	// Errors to return
	LoadError error
	SaveError error

	// Call tracking
	LoadCalledWith string
	SaveCalled     bool
	SaveCalledWith struct {
		Path string
		Doc  *commandlist.Document
	}
}

// NewMockDocumentStore creates a new mock document store
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{}
}

func (m *MockDocumentStore) Load(path string) (*commandlist.Document, error) {
	m.LoadCalledWith = path
	return m.LoadResponse, m.LoadError
}

func (m *MockDocumentStore) Save(path string, doc *commandlist.Document) error {
	m.SaveCalled = true
	m.SaveCalledWith.Path = path
	m.SaveCalledWith.Doc = doc
	return m.SaveError
}
