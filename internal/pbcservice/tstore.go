package pbcservice

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type (
	// TranslationStore is an interface for storing translation results.
	TranslationStore interface {
		// SaveTranslation saves a translation and returns its id.
		SaveTranslation(tr *Translation) (string, error)

		// GetTranslation returns a translation with the given id.
		GetTranslation(id string) (*Translation, error)
	}

	// translationStore is an in-memory implementation of TranslationStore.
	translationStore struct {
		translations map[string]*Translation
		sync.RWMutex
	}
)

// NewTranslationStore creates a new translation store.
func NewTranslationStore() TranslationStore {
	return &translationStore{
		translations: make(map[string]*Translation),
	}
}

// SaveTranslation implements TranslationStore.
func (ts *translationStore) SaveTranslation(tr *Translation) (string, error) {
	if tr == nil {
		return "", fmt.Errorf("translation must not be nil")
	}
	id := uuid.New().String()
	ts.Lock()
	ts.translations[id] = tr
	ts.Unlock()
	return id, nil
}

// GetTranslation implements TranslationStore.
func (ts *translationStore) GetTranslation(id string) (*Translation, error) {
	ts.RLock()
	tr, ok := ts.translations[id]
	ts.RUnlock()
	if !ok {
		return nil, fmt.Errorf("translation with id %s not found", id)
	}
	return tr, nil
}
