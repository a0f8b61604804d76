package messages

import "time"

type Message struct {
	ID          int64
	SenderID    int64
	RecipientID int64
	Content     string
	SentAt      time.Time
}
