package messages

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/platform/metrics"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrRecipientNotFound = errors.New("recipient not found")
)

// UserLookup confirma que el destinatario exista (lo implementa *users.Service).
type UserLookup interface {
	Exists(ctx context.Context, id int64) bool
}

type Service struct {
	repo    Repository
	users   UserLookup
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, users UserLookup, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		metrics: m,
		now:     time.Now,
	}
}

func (s *Service) Send(ctx context.Context, senderID, recipientID int64, content string) (Message, error) {
	content = strings.TrimSpace(content)
	if senderID <= 0 || recipientID <= 0 || content == "" {
		return Message{}, ErrInvalidInput
	}
	if s.users != nil && !s.users.Exists(ctx, recipientID) {
		return Message{}, ErrRecipientNotFound
	}

	m, err := s.repo.Create(ctx, Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		SentAt:      s.now(),
	})
	if err != nil {
		return Message{}, err
	}
	s.metrics.MessageSent()
	return m, nil
}

func (s *Service) Inbox(ctx context.Context, userID int64) ([]Message, error) {
	return s.repo.ListByRecipient(ctx, userID)
}
