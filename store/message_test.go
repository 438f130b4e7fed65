package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communityaid/communityaid-api/schema"
)

type ChatMessageTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewChatMessageTestSuite(connURI, dbName string) *ChatMessageTestSuite {
	return &ChatMessageTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ChatMessageTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *ChatMessageTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	now := time.Now()
	if _, err := s.testDatabase.Collection(ChatMessageCollection).InsertMany(ctx, []interface{}{
		schema.ChatMessage{
			RequestID:   "request-history",
			SenderID:    "resident-test",
			SenderRole:  schema.UserRoleResident,
			MessageText: "second",
			Timestamp:   now,
		},
		schema.ChatMessage{
			RequestID:   "request-history",
			SenderID:    "helper-test",
			SenderRole:  schema.UserRoleHelper,
			MessageText: "first",
			Timestamp:   now.Add(-time.Minute),
		},
		schema.ChatMessage{
			RequestID:   "request-other",
			SenderID:    "resident-test",
			SenderRole:  schema.UserRoleResident,
			MessageText: "unrelated",
			Timestamp:   now,
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *ChatMessageTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestSaveChatMessage tests if a relayed message ends up in the history
// of its request
func (s *ChatMessageTestSuite) TestSaveChatMessage() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	msg := &schema.ChatMessage{
		RequestID:   "request-save",
		SenderID:    "resident-test",
		SenderRole:  schema.UserRoleResident,
		MessageText: "hello there",
		Timestamp:   time.Now(),
	}
	s.NoError(store.SaveChatMessage(msg))

	saved, err := store.ListChatMessages("request-save", 0)
	s.NoError(err)
	s.Len(saved, 1)
	s.Equal("hello there", saved[0].MessageText)
	s.Equal(schema.UserRoleResident, saved[0].SenderRole)
}

// TestListChatMessagesOrder tests that history comes back sorted by
// timestamp and scoped to one request
func (s *ChatMessageTestSuite) TestListChatMessagesOrder() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	messages, err := store.ListChatMessages("request-history", 0)
	s.NoError(err)
	s.Len(messages, 2)
	s.Equal("first", messages[0].MessageText)
	s.Equal("second", messages[1].MessageText)
}

// TestListChatMessagesLimit tests the history limit
func (s *ChatMessageTestSuite) TestListChatMessagesLimit() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	messages, err := store.ListChatMessages("request-history", 1)
	s.NoError(err)
	s.Len(messages, 1)
	s.Equal("first", messages[0].MessageText)
}

// TestListChatMessagesEmpty tests an unknown request returns an empty
// history instead of an error
func (s *ChatMessageTestSuite) TestListChatMessagesEmpty() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	messages, err := store.ListChatMessages("request-unknown", 0)
	s.NoError(err)
	s.Len(messages, 0)
}

func TestChatMessageTestSuite(t *testing.T) {
	suite.Run(t, NewChatMessageTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
