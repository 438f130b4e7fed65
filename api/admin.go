package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/communityaid/communityaid-api/schema"
	"github.com/communityaid/communityaid-api/store"
)

// pendingRequests lists the requests awaiting moderation
func (s *Server) pendingRequests(c *gin.Context) {
	reqs, err := s.store.ListAvailableRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// approveRequest acknowledges a pending request. Approval is a
// moderation review, not a lifecycle transition: the request stays
// Pending and visible to helpers.
func (s *Server) approveRequest(c *gin.Context) {
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

	if req.Status != schema.HelpPending {
		abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request approved"})
}

// rejectRequest is the one external path into the Rejected state. It
// applies only while the request is still Pending.
func (s *Server) rejectRequest(c *gin.Context) {
	id := c.Param("requestID")

	if err := s.store.RejectHelpRequest(id); err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request rejected"})
}

// listUsers lists residents and helpers for moderation
func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.ListUsers()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (s *Server) blockUser(c *gin.Context) {
	s.setUserStatus(c, schema.UserBlocked)
}

func (s *Server) unblockUser(c *gin.Context) {
	s.setUserStatus(c, schema.UserActive)
}

func (s *Server) setUserStatus(c *gin.Context, status string) {
	id := c.Param("userID")

	target, err := s.store.GetUser(id)
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		return
	}

	// admins cannot be blocked through this API
	if target.Role == schema.UserRoleAdmin {
		abortWithEncoding(c, http.StatusForbidden, errorRoleNotAllowed)
		return
	}

	if err := s.store.SetUserStatus(id, status); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user status updated"})
}

// analytics serves the admin dashboard counters
func (s *Server) analytics(c *gin.Context) {
	requestCounts, err := s.store.CountRequestsByStatus()
	if shouldInterupt(err, c) {
		return
	}

	userCounts, err := s.store.CountUsersByRole()
	if shouldInterupt(err, c) {
		return
	}

	reportCounts, err := s.store.CountReportsByStatus()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analytics": gin.H{
			"requests_by_status": requestCounts,
			"users_by_role":      userCounts,
			"reports_by_status":  reportCounts,
		},
	})
}

// adminRemindRequests is an internal only api to trigger the task to
// remind helpers about stale pending requests
func (s *Server) adminRemindRequests(c *gin.Context) {
	if s.background == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorInternalServer)
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "remind_stale_requests",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
