package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/communityaid/communityaid-api/api/mocks"
	"github.com/communityaid/communityaid-api/schema"
)

func TestChatMessages(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	resident := testUser(schema.UserRoleResident)
	a.EXPECT().GetUser(gomock.Any()).Return(resident, nil).Times(1)

	helperID := uuid.New()
	req := &schema.HelpRequest{
		ID:         uuid.New(),
		ResidentID: resident.ID,
		HelperID:   &helperID,
		Status:     schema.HelpAccepted,
	}
	a.EXPECT().GetHelpRequest(req.ID.String()).Return(req, nil).Times(1)

	history := []schema.ChatMessage{
		{RequestID: req.ID.String(), SenderID: resident.ID.String(), MessageText: "hello", Timestamp: time.Now()},
		{RequestID: req.ID.String(), SenderID: helperID.String(), MessageText: "on my way", Timestamp: time.Now()},
	}
	m.EXPECT().ListChatMessages(req.ID.String(), int64(0)).Return(history, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.GET("/:requestID/messages", s.chatMessages)

	r := httptest.NewRequest("GET", "/"+req.ID.String()+"/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Messages []schema.ChatMessage `json:"messages"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, resp.Messages, 2, "wrong message count")
	assert.Equal(t, "hello", resp.Messages[0].MessageText, "wrong order")
}

func TestChatMessagesDeniedForStranger(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	stranger := testUser(schema.UserRoleHelper)
	a.EXPECT().GetUser(gomock.Any()).Return(stranger, nil).Times(1)

	helperID := uuid.New()
	req := &schema.HelpRequest{
		ID:         uuid.New(),
		ResidentID: uuid.New(),
		HelperID:   &helperID,
		Status:     schema.HelpAccepted,
	}
	a.EXPECT().GetHelpRequest(req.ID.String()).Return(req, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.GET("/:requestID/messages", s.chatMessages)

	r := httptest.NewRequest("GET", "/"+req.ID.String()+"/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1500), resp.Code, "wrong error code")
}

func TestChatInfo(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	resident := testUser(schema.UserRoleResident)
	a.EXPECT().GetUser(resident.ID.String()).Return(resident, nil).Times(1)

	helper := testUser(schema.UserRoleHelper)
	a.EXPECT().GetUser(helper.ID.String()).Return(helper, nil).Times(1)

	// the middleware lookup comes in with an empty requester id
	a.EXPECT().GetUser("").Return(resident, nil).Times(1)

	req := &schema.HelpRequest{
		ID:         uuid.New(),
		ResidentID: resident.ID,
		HelperID:   &helper.ID,
		Title:      "Grocery run",
		Category:   "Errands",
		Status:     schema.HelpAccepted,
	}
	a.EXPECT().GetHelpRequest(req.ID.String()).Return(req, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.GET("/:requestID/info", s.chatInfo)

	r := httptest.NewRequest("GET", "/"+req.ID.String()+"/info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Request struct {
			Title        string `json:"title"`
			ResidentName string `json:"residentName"`
			HelperName   string `json:"helperName"`
		} `json:"request"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Grocery run", resp.Request.Title, "wrong title")
	assert.Equal(t, resident.Name, resp.Request.ResidentName, "wrong resident name")
	assert.Equal(t, helper.Name, resp.Request.HelperName, "wrong helper name")
}
