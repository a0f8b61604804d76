package memory

import (
	"context"
	"sync"

	"pet-adoption/internal/domain/messages"
)

// messageRepo es append-only: el orden del slice ya es el de envío.
type messageRepo struct {
	mu    sync.RWMutex
	items []messages.Message
}

func NewMessageRepo() messages.Repository {
	return &messageRepo{}
}

func (r *messageRepo) Create(_ context.Context, m messages.Message) (messages.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = int64(len(r.items) + 1)
	r.items = append(r.items, m)
	return m, nil
}

func (r *messageRepo) ListByRecipient(_ context.Context, recipientID int64) ([]messages.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]messages.Message, 0)
	for _, m := range r.items {
		if m.RecipientID == recipientID {
			out = append(out, m)
		}
	}
	return out, nil
}
