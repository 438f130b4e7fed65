package chat

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/communityaid/communityaid-api/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "chat")
}

// RoomGate authorizes a user to join the chat room of a help request.
// Membership is derived from the request record at join time, never
// cached beyond a connection's lifetime.
type RoomGate interface {
	GetHelpRequest(id string) (*schema.HelpRequest, error)
}

// MessageSink persists relayed chat messages. Persistence is
// fire-and-forget and never gates relay.
type MessageSink interface {
	SaveChatMessage(msg *schema.ChatMessage) error
}

// Hub coordinates chat rooms. A room is keyed by help request id and
// holds the connections of its two participants. Relay within one room
// never blocks another room: the hub only copies payloads into each
// member's buffered send queue.
type Hub struct {
	gate RoomGate
	sink MessageSink

	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub(gate RoomGate, sink MessageSink) *Hub {
	return &Hub{
		gate:  gate,
		sink:  sink,
		rooms: make(map[string]map[*Client]bool),
	}
}

// JoinRoom registers a connection as a member of the room of a help
// request. It succeeds only for the resident or the assigned helper of
// the request, and only once a helper is assigned. Joining a room the
// connection is already a member of succeeds without duplicating
// membership.
func (h *Hub) JoinRoom(c *Client, requestID, userID string) JoinRoomResponse {
	req, err := h.gate.GetHelpRequest(requestID)
	if err != nil {
		return JoinRoomResponse{Success: false, Message: "request not found"}
	}

	if !req.HasHelper() {
		return JoinRoomResponse{Success: false, Message: "no helper has been assigned yet"}
	}

	if !req.IsParticipant(userID) {
		return JoinRoomResponse{Success: false, Message: "not a participant of this request"}
	}

	h.mu.Lock()
	members, ok := h.rooms[requestID]
	if !ok {
		members = make(map[*Client]bool)
		h.rooms[requestID] = members
	}
	members[c] = true
	c.joined[requestID] = true
	h.mu.Unlock()

	return JoinRoomResponse{Success: true, Message: "joined room " + requestID}
}

// Relay delivers a message to the other members of its room and hands
// it to the sink. A sender that never joined the room is ignored;
// membership trust is established at join time.
func (h *Hub) Relay(sender *Client, msg *schema.ChatMessage) {
	msg.MessageText = strings.TrimSpace(msg.MessageText)
	if msg.MessageText == "" {
		return
	}

	recipients := h.roomPeers(sender, msg.RequestID)
	if recipients == nil {
		return
	}

	payload, err := encodeEvent(EventReceiveMessage, msg)
	if err != nil {
		log.WithError(err).Error("encode message")
		return
	}
	for _, c := range recipients {
		c.enqueue(payload)
	}

	go func(stored schema.ChatMessage) {
		if err := h.sink.SaveChatMessage(&stored); err != nil {
			log.WithError(err).WithField("request_id", stored.RequestID).Error("persist chat message")
		}
	}(*msg)
}

// Typing relays a transient typing indicator to the other members of a
// room. Nothing is persisted; a later signal for the same pair simply
// supersedes this one at the receivers.
func (h *Hub) Typing(sender *Client, sig TypingSignal) {
	recipients := h.roomPeers(sender, sig.RequestID)
	if recipients == nil {
		return
	}

	payload, err := encodeEvent(EventUserTyping, UserTyping{
		UserID:   sig.UserID,
		IsTyping: sig.IsTyping,
	})
	if err != nil {
		log.WithError(err).Error("encode typing signal")
		return
	}
	for _, c := range recipients {
		c.enqueue(payload)
	}
}

// Leave removes a connection from every room it joined. Room state
// derived from the help request is not touched; the next joiner
// recomputes membership from the request record.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for requestID := range c.joined {
		if members, ok := h.rooms[requestID]; ok {
			delete(members, c)
			if len(members) == 0 {
				delete(h.rooms, requestID)
			}
		}
	}
	c.joined = make(map[string]bool)
}

// roomPeers snapshots the other members of a room, or nil if the
// sender is not a member. The snapshot is taken under a read lock and
// delivery happens outside it so one slow room cannot serialize the
// hub.
func (h *Hub) roomPeers(sender *Client, requestID string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members, ok := h.rooms[requestID]
	if !ok || !members[sender] {
		return []*Client(nil)
	}

	peers := make([]*Client, 0, len(members)-1)
	for c := range members {
		if c != sender {
			peers = append(peers, c)
		}
	}
	return peers
}
