package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	cadenceclient "go.uber.org/cadence/client"

	"github.com/communityaid/communityaid-api/background/followup"
	"github.com/communityaid/communityaid-api/store"
)

// createHelpRequest is the API for a resident to file a help request
func (s *Server) createHelpRequest(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	params.Title = strings.TrimSpace(params.Title)
	params.Description = strings.TrimSpace(params.Description)
	params.Category = strings.TrimSpace(params.Category)
	if params.Title == "" || params.Description == "" || params.Category == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	req, err := s.store.CreateHelpRequest(user.ID.String(), params.Title, params.Description, params.Category)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.enqueueTask("broadcast_new_request", req.ID.String())
	s.startFollowUp(req.ID.String())

	c.JSON(http.StatusOK, gin.H{
		"message":   "help request created",
		"requestId": req.ID,
		"request":   req,
	})
}

// listHelpRequests is the admin API to list every request
func (s *Server) listHelpRequests(c *gin.Context) {
	reqs, err := s.store.ListHelpRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// listAvailableRequests is the API for helpers to browse pending requests
func (s *Server) listAvailableRequests(c *gin.Context) {
	reqs, err := s.store.ListAvailableRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// listMyRequests returns the requests the caller participates in
func (s *Server) listMyRequests(c *gin.Context) {
	user := currentUser(c)

	reqs, err := s.store.ListRequestsByUser(user.ID.String(), user.Role)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// acceptHelpRequest assigns the calling helper to a pending request.
// Two concurrent accepts resolve to one winner; the loser is told the
// request has been taken.
func (s *Server) acceptHelpRequest(c *gin.Context) {
	id := c.Param("requestID")
	user := currentUser(c)

	if err := s.store.AcceptHelpRequest(id, user.ID.String()); err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		case store.ErrRequestTaken:
			abortWithEncoding(c, http.StatusConflict, errorRequestTaken)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.enqueueTask("notify_request_accepted", id)

	c.JSON(http.StatusOK, gin.H{"message": "request accepted"})
}

// declineHelpRequest releases a request back to the pending pool
func (s *Server) declineHelpRequest(c *gin.Context) {
	id := c.Param("requestID")
	user := currentUser(c)

	if err := s.store.DeclineHelpRequest(id, user.ID.String()); err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		case store.ErrNotAssignedHelper:
			abortWithEncoding(c, http.StatusForbidden, errorNotAssignedHelper)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request declined"})
}

// advanceRequestStatus moves a request along
// Accepted -> In-progress -> Completed
func (s *Server) advanceRequestStatus(c *gin.Context) {
	id := c.Param("requestID")
	user := currentUser(c)

	var params struct {
		Status string `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.store.AdvanceRequestStatus(id, user.ID.String(), params.Status); err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		case store.ErrNotAssignedHelper:
			abortWithEncoding(c, http.StatusForbidden, errorNotAssignedHelper)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// enqueueTask hands a job to the background workers. Task delivery is
// best effort; a broker hiccup never fails the API call that queued it.
func (s *Server) enqueueTask(name string, requestID string) {
	if s.background == nil {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: name,
		Args: []tasks.Arg{
			{Type: "string", Value: requestID},
		},
	}); err != nil {
		log.WithError(err).WithField("task", name).Error("enqueue background task")
	}
}

// startFollowUp launches the follow-up workflow for a new request.
func (s *Server) startFollowUp(requestID string) {
	if s.followup == nil {
		return
	}

	opts := cadenceclient.StartWorkflowOptions{
		ID:                              "request-follow-up_" + requestID,
		TaskList:                        followup.TaskListName,
		ExecutionStartToCloseTimeout:    7 * 24 * time.Hour,
		DecisionTaskStartToCloseTimeout: time.Minute,
	}

	if _, err := s.followup.StartWorkflow(context.Background(), opts,
		"PendingRequestFollowUpWorkflow", requestID); err != nil {
		log.WithError(err).WithField("request_id", requestID).Error("start follow-up workflow")
	}
}
