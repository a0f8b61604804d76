package messages

import "context"

type Repository interface {
	Create(ctx context.Context, m Message) (Message, error)
	// ListByRecipient ordena por sent_at asc (y ID para empates).
	ListByRecipient(ctx context.Context, recipientID int64) ([]Message, error)
}
