package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communityaid/communityaid-api/schema"
)

const (
	ChatMessageCollection = "chatMessage"
)

type ChatHistory interface {
	SaveChatMessage(msg *schema.ChatMessage) error
	ListChatMessages(requestID string, limit int64) ([]schema.ChatMessage, error)
}

// SaveChatMessage appends a relayed message to the chat history of its
// request. Messages are never updated or deleted.
func (m *mongoDB) SaveChatMessage(msg *schema.ChatMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(ChatMessageCollection)
	_, err := c.InsertOne(ctx, *msg)
	return err
}

// ListChatMessages returns the chat history of a request ordered by
// the client-stamped timestamp.
func (m *mongoDB) ListChatMessages(requestID string, limit int64) ([]schema.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "ts", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	c := m.client.Database(m.database).Collection(ChatMessageCollection)
	cur, err := c.Find(ctx, bson.M{"request_id": requestID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	messages := []schema.ChatMessage{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
