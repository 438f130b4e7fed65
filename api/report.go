package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/communityaid/communityaid-api/schema"
	"github.com/communityaid/communityaid-api/store"
)

// submitReport is the API for filing a moderation report against a user
func (s *Server) submitReport(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		ReportedUserID string `json:"reported_user_id"`
		RequestID      string `json:"request_id"`
		IssueType      string `json:"issue_type"`
		Description    string `json:"description"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !schema.ValidIssueType(params.IssueType) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidIssueType)
		return
	}

	if params.ReportedUserID == "" || strings.TrimSpace(params.Description) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	report, err := s.store.CreateReport(user.ID.String(), params.ReportedUserID,
		params.RequestID, params.IssueType, strings.TrimSpace(params.Description))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "report submitted",
		"report":  report,
	})
}

// myReports lists the reports the caller has filed
func (s *Server) myReports(c *gin.Context) {
	user := currentUser(c)

	reports, err := s.store.ListReportsByReporter(user.ID.String())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reports": reports})
}

// allReports is the admin API to list every report
func (s *Server) allReports(c *gin.Context) {
	reports, err := s.store.ListAllReports()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reports": reports})
}

// reportStats is the admin API for the moderation dashboard counters
func (s *Server) reportStats(c *gin.Context) {
	counts, err := s.store.CountReportsByStatus()
	if shouldInterupt(err, c) {
		return
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total":     total,
			"by_status": counts,
		},
	})
}

// updateReportStatus is the admin moderation action on a report
func (s *Server) updateReportStatus(c *gin.Context) {
	id := c.Param("reportID")

	var params struct {
		Status     string `json:"status"`
		AdminNotes string `json:"admin_notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !schema.ValidReportStatus(params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidReportState)
		return
	}

	if err := s.store.UpdateReportStatus(id, params.Status, params.AdminNotes); err != nil {
		if err == store.ErrReportNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotExist)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "report updated"})
}
