package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/communityaid/communityaid-api/api/mocks"
	"github.com/communityaid/communityaid-api/schema"
)

func TestSubmitReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store: a,
	}

	reporter := testUser(schema.UserRoleResident)
	a.EXPECT().GetUser(gomock.Any()).Return(reporter, nil).Times(1)

	reported := uuid.New().String()
	created := &schema.Report{
		ID:          uuid.New(),
		IssueType:   "Spam",
		Description: "keeps posting ads",
		Status:      schema.ReportPending,
	}
	a.EXPECT().
		CreateReport(reporter.ID.String(), reported, "", "Spam", "keeps posting ads").
		Return(created, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.POST("/", s.submitReport)

	body := `{"reported_user_id":"` + reported + `","issue_type":"Spam","description":"keeps posting ads"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Success bool           `json:"success"`
		Report  *schema.Report `json:"report"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, resp.Success, "wrong success flag")
	assert.Equal(t, schema.ReportPending, resp.Report.Status, "wrong status")
}

func TestSubmitReportInvalidIssueType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().GetUser(gomock.Any()).Return(testUser(schema.UserRoleResident), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.POST("/", s.submitReport)

	body := `{"reported_user_id":"` + uuid.New().String() + `","issue_type":"Rudeness","description":"was rude"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1302), resp.Code, "wrong error code")
}

func TestUpdateReportStatusInvalidStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().GetUser(gomock.Any()).Return(testUser(schema.UserRoleAdmin), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.PATCH("/:reportID/status", s.updateReportStatus)

	body := `{"status":"Closed"}`
	req := httptest.NewRequest("PATCH", "/"+uuid.New().String()+"/status", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1301), resp.Code, "wrong error code")
}
