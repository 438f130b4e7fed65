package chat

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/communityaid/communityaid-api/schema"
)

const (
	// time allowed to write a frame to the peer
	writeWait = 10 * time.Second

	// time allowed to read the next pong from the peer
	pongWait = 60 * time.Second

	// ping period must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	// per-connection send queue. A member that cannot drain its queue
	// is dropped instead of back-pressuring the room.
	sendQueueSize = 64
)

// Client is the explicit handle of one websocket connection. It is
// owned by the transport layer and passed into the hub; the hub never
// touches the underlying connection. Inbound events are processed one
// at a time per connection, which preserves per-sender message order.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// authenticated identity of the connection
	userID string
	role   string

	send chan []byte
	done chan struct{}
	once sync.Once

	// rooms this connection joined, guarded by the hub mutex
	joined map[string]bool
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, role string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		role:   role,
		send:   make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
		joined: make(map[string]bool),
	}
}

// Run starts the read and write pumps and blocks until the connection
// is gone.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// enqueue hands a payload to the connection's write queue without
// blocking the caller. A full queue drops the connection.
func (c *Client) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	case <-c.done:
	default:
		log.WithField("user_id", c.userID).Warn("send queue full, dropping connection")
		c.close()
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.done)
	})
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Leave(c)
		c.close()
		if c.conn != nil {
			_ = c.conn.Close()
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).WithField("user_id", c.userID).Debug("connection closed")
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			log.WithError(err).Debug("malformed frame")
			continue
		}

		c.dispatch(env)
	}
}

func (c *Client) dispatch(env Envelope) {
	switch env.Event {
	case EventJoinRoom:
		var in JoinRoomRequest
		if err := json.Unmarshal(env.Data, &in); err != nil {
			return
		}

		var resp JoinRoomResponse
		if in.UserID != "" && in.UserID != c.userID {
			resp = JoinRoomResponse{Success: false, Message: "identity mismatch"}
		} else {
			resp = c.hub.JoinRoom(c, in.RequestID, c.userID)
		}

		if payload, err := encodeEvent(EventJoinedRoom, resp); err == nil {
			c.enqueue(payload)
		}

	case EventSendMessage:
		var msg schema.ChatMessage
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			return
		}
		// the authenticated identity wins over whatever the frame claims
		msg.SenderID = c.userID
		msg.SenderRole = c.role
		c.hub.Relay(c, &msg)

	case EventTyping:
		var sig TypingSignal
		if err := json.Unmarshal(env.Data, &sig); err != nil {
			return
		}
		sig.UserID = c.userID
		c.hub.Typing(c, sig)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if c.conn != nil {
			_ = c.conn.Close()
		}
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
