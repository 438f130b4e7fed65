package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/communityaid/communityaid-api/chat"
	"github.com/communityaid/communityaid-api/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// cross-origin is handled by the bearer token, same as the rest of
	// the api
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatInfo returns the request summary and both participant names for
// the chat header. Only the two participants may read it.
func (s *Server) chatInfo(c *gin.Context) {
	user := currentUser(c)
	id := c.Param("requestID")

	req, err := s.store.GetHelpRequest(id)
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if !req.IsParticipant(user.ID.String()) {
		abortWithEncoding(c, http.StatusForbidden, errorNotChatParticipant)
		return
	}

	resident, err := s.store.GetUser(req.ResidentID.String())
	if shouldInterupt(err, c) {
		return
	}

	info := gin.H{
		"id":           req.ID,
		"title":        req.Title,
		"category":     req.Category,
		"status":       req.Status,
		"residentId":   req.ResidentID,
		"residentName": resident.Name,
	}

	if req.HelperID != nil {
		helper, err := s.store.GetUser(req.HelperID.String())
		if shouldInterupt(err, c) {
			return
		}
		info["helperId"] = req.HelperID
		info["helperName"] = helper.Name
	}

	c.JSON(http.StatusOK, gin.H{"request": info})
}

// chatMessages returns the persisted chat history of a request for its
// participants.
func (s *Server) chatMessages(c *gin.Context) {
	user := currentUser(c)
	id := c.Param("requestID")

	req, err := s.store.GetHelpRequest(id)
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if !req.IsParticipant(user.ID.String()) {
		abortWithEncoding(c, http.StatusForbidden, errorNotChatParticipant)
		return
	}

	messages, err := s.mongoStore.ListChatMessages(id, 0)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// chatSocket upgrades the connection and hands it to the chat hub. The
// connection handle is owned by this transport layer; room membership
// is negotiated afterwards through joinRoom events.
func (s *Server) chatSocket(c *gin.Context) {
	user := currentUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already replied to the client
		log.WithError(err).Debug("websocket upgrade")
		return
	}

	client := chat.NewClient(s.chatHub, conn, user.ID.String(), user.Role)
	go client.Run()
}
