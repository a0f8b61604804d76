package postgres

import (
	"context"
	"fmt"

	"pet-adoption/internal/domain/messages"

	"github.com/doug-martin/goqu/v9"
)

type MessagesRepo struct {
	db *DB
}

func NewMessagesRepo(db *DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

var _ messages.Repository = (*MessagesRepo)(nil)

func (r *MessagesRepo) Create(ctx context.Context, m messages.Message) (messages.Message, error) {
	var row pgMessage
	if _, err := r.db.Builder.Insert(messagesTable).
		Rows(pgMessage{
			SenderID:    m.SenderID,
			RecipientID: m.RecipientID,
			Content:     m.Content,
			SentAt:      m.SentAt,
		}).
		Returning(&pgMessage{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return messages.Message{}, fmt.Errorf("could not insert message: %w", err)
	}
	return row.toDomain(), nil
}

func (r *MessagesRepo) ListByRecipient(ctx context.Context, recipientID int64) ([]messages.Message, error) {
	var rows []pgMessage
	if err := r.db.Builder.From(messagesTable).
		Where(goqu.C("recipient_id").Eq(recipientID)).
		Order(goqu.C("sent_at").Asc(), goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list messages: %w", err)
	}

	out := make([]messages.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
