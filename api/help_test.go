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
	"github.com/communityaid/communityaid-api/store"
)

func testUser(role string) *schema.User {
	return &schema.User{
		ID:     uuid.New(),
		Name:   "tester",
		Role:   role,
		Status: schema.UserActive,
	}
}

func TestCreateHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store: a,
	}

	resident := testUser(schema.UserRoleResident)
	a.EXPECT().GetUser(gomock.Any()).Return(resident, nil).Times(1)

	created := &schema.HelpRequest{
		ID:          uuid.New(),
		ResidentID:  resident.ID,
		Title:       "Grocery run",
		Description: "Need someone to pick up groceries",
		Category:    "Errands",
		Status:      schema.HelpPending,
	}
	a.EXPECT().
		CreateHelpRequest(resident.ID.String(), "Grocery run", "Need someone to pick up groceries", "Errands").
		Return(created, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.POST("/", s.createHelpRequest)

	body := `{"title":"Grocery run","description":"Need someone to pick up groceries","category":"Errands"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Message   string              `json:"message"`
		RequestID string              `json:"requestId"`
		Request   *schema.HelpRequest `json:"request"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, created.ID.String(), resp.RequestID, "wrong request id")
	assert.Equal(t, schema.HelpPending, resp.Request.Status, "wrong status")
}

func TestCreateHelpRequestRejectsBlankFields(t *testing.T) {
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
	router.POST("/", s.createHelpRequest)

	body := `{"title":"   ","description":"Need someone to pick up groceries","category":"Errands"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1010), resp.Code, "wrong error code")
}

func TestAcceptHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store: a,
	}

	helper := testUser(schema.UserRoleHelper)
	a.EXPECT().GetUser(gomock.Any()).Return(helper, nil).Times(1)

	requestID := uuid.New().String()
	a.EXPECT().AcceptHelpRequest(requestID, helper.ID.String()).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.POST("/:requestID/accept", s.acceptHelpRequest)

	req := httptest.NewRequest("POST", "/"+requestID+"/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestAcceptHelpRequestAlreadyTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store: a,
	}

	helper := testUser(schema.UserRoleHelper)
	a.EXPECT().GetUser(gomock.Any()).Return(helper, nil).Times(1)

	requestID := uuid.New().String()
	a.EXPECT().AcceptHelpRequest(requestID, helper.ID.String()).Return(store.ErrRequestTaken).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.POST("/:requestID/accept", s.acceptHelpRequest)

	req := httptest.NewRequest("POST", "/"+requestID+"/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1201), resp.Code, "wrong error code")
}

func TestDeclineHelpRequestNotAssigned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store: a,
	}

	helper := testUser(schema.UserRoleHelper)
	a.EXPECT().GetUser(gomock.Any()).Return(helper, nil).Times(1)

	requestID := uuid.New().String()
	a.EXPECT().DeclineHelpRequest(requestID, helper.ID.String()).Return(store.ErrNotAssignedHelper).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.POST("/:requestID/decline", s.declineHelpRequest)

	req := httptest.NewRequest("POST", "/"+requestID+"/decline", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1202), resp.Code, "wrong error code")
}

func TestAdvanceRequestStatusInvalidTransition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store: a,
	}

	helper := testUser(schema.UserRoleHelper)
	a.EXPECT().GetUser(gomock.Any()).Return(helper, nil).Times(1)

	requestID := uuid.New().String()
	a.EXPECT().
		AdvanceRequestStatus(requestID, helper.ID.String(), schema.HelpCompleted).
		Return(store.ErrInvalidTransition).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.PATCH("/:requestID/status", s.advanceRequestStatus)

	req := httptest.NewRequest("PATCH", "/"+requestID+"/status", strings.NewReader(`{"status":"Completed"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1203), resp.Code, "wrong error code")
}

func TestListAvailableRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store: a,
	}

	a.EXPECT().GetUser(gomock.Any()).Return(testUser(schema.UserRoleHelper), nil).Times(1)

	pending := []schema.HelpRequest{
		{ID: uuid.New(), Title: "Grocery run", Status: schema.HelpPending},
		{ID: uuid.New(), Title: "Dog walking", Status: schema.HelpPending},
	}
	a.EXPECT().ListAvailableRequests().Return(pending, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.GET("/available", s.listAvailableRequests)

	req := httptest.NewRequest("GET", "/available", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Requests []schema.HelpRequest `json:"requests"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, resp.Requests, 2, "wrong request count")
	assert.Equal(t, "Grocery run", resp.Requests[0].Title, "wrong order")
}
