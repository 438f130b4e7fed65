package chat

import "encoding/json"

// Socket event names. Client to server: joinRoom, sendMessage, typing.
// Server to client: joinedRoom, receiveMessage, userTyping.
const (
	EventJoinRoom       = "joinRoom"
	EventJoinedRoom     = "joinedRoom"
	EventSendMessage    = "sendMessage"
	EventReceiveMessage = "receiveMessage"
	EventTyping         = "typing"
	EventUserTyping     = "userTyping"
)

// Envelope is the frame exchanged over the socket.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type JoinRoomRequest struct {
	RequestID string `json:"requestId"`
	UserID    string `json:"userId"`
}

type JoinRoomResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TypingSignal struct {
	RequestID string `json:"requestId"`
	UserID    string `json:"userId"`
	IsTyping  bool   `json:"isTyping"`
}

type UserTyping struct {
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}

func encodeEvent(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}
