package memory

import (
	"context"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contact"
)

type ContactRepository struct {
	store *Store
}

func NewContactRepository(store *Store) *ContactRepository {
	return &ContactRepository{store: store}
}

func (r *ContactRepository) Create(_ context.Context, m contact.Message) (contact.Message, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.contact++
	m.ID = s.seq.contact
	if m.Status == "" {
		m.Status = contact.StatusNew
	}
	m.CreatedAt = s.now().UTC()
	s.contacts = append(s.contacts, m)
	return m, nil
}

// Messages returns a copy of every stored submission in insertion order.
func (r *ContactRepository) Messages() []contact.Message {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]contact.Message(nil), s.contacts...)
}
