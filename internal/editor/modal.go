package editor

import (
	"context"
	"sync"

	"simusmart/internal/model"
)

// Modal holds the single draft open in the edit form. Closing discards the
// draft without touching any store.
type Modal struct {
	mu        sync.Mutex
	draft     Draft
	committer Committer
}

// NewModal creates a closed modal that saves through c.
func NewModal(c Committer) *Modal {
	return &Modal{committer: c}
}

// Open replaces the open draft with d.
func (m *Modal) Open(d Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = d
}

// Draft returns the open draft, if any.
func (m *Modal) Draft() (Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft, m.draft != nil
}

func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = nil
}

// Save commits the open draft and closes the modal. On failure the draft
// stays open so it can be corrected.
func (m *Modal) Save(ctx context.Context) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft == nil {
		return nil, model.Invalidf("no form is open")
	}

	res, err := m.committer.Commit(ctx, m.draft)
	if err != nil {
		return nil, err
	}
	m.draft = nil
	return res, nil
}
