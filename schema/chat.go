package schema

import "time"

// ChatMessage is a single message exchanged in the chat room of a help
// request. Messages are append-only; the timestamp is stamped by the
// sending client and is not authoritative.
type ChatMessage struct {
	RequestID   string    `bson:"request_id" json:"requestId"`
	SenderID    string    `bson:"sender_id" json:"senderId"`
	SenderRole  string    `bson:"sender_role" json:"senderRole"`
	MessageText string    `bson:"message_text" json:"messageText"`
	Timestamp   time.Time `bson:"ts" json:"timestamp"`
}
