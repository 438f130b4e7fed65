package api

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/communityaid/communityaid-api/api/mocks"
	"github.com/communityaid/communityaid-api/schema"
)

func testJWTKey(t *testing.T) *rsa.PrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.Nil(t, err, "generate test key")
	return key
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *schema.User `json:"user"`
}

func TestRegister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store:         a,
		jwtPrivateKey: testJWTKey(t),
	}

	created := &schema.User{
		ID:          uuid.New(),
		Name:        "Alice",
		ContactInfo: "alice@example.com",
		Role:        schema.UserRoleResident,
		Status:      schema.UserActive,
	}
	a.EXPECT().
		CreateUser("Alice", "alice@example.com", "Springfield", gomock.Any(), schema.UserRoleResident).
		Return(created, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", s.register)

	body := `{"name":"Alice","contact_info":"alice@example.com","location":"Springfield","password":"secret","role":"Resident"}`
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp authResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.NotEmpty(t, resp.Token, "missing token")
	assert.Equal(t, created.ID, resp.User.ID, "wrong user")
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store:         a,
		jwtPrivateKey: testJWTKey(t),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", s.register)

	body := `{"name":"Eve","contact_info":"eve@example.com","password":"secret","role":"Admin"}`
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1010), resp.Code, "wrong error code")
}

func TestLogin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store:         a,
		jwtPrivateKey: testJWTKey(t),
	}

	digest, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	u := &schema.User{
		ID:             uuid.New(),
		Name:           "Alice",
		ContactInfo:    "alice@example.com",
		PasswordDigest: string(digest),
		Role:           schema.UserRoleResident,
		Status:         schema.UserActive,
	}
	a.EXPECT().GetUserByContact("alice@example.com", schema.UserRoleResident).Return(u, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", s.login)

	body := `{"contact_info":"alice@example.com","password":"secret","role":"Resident"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp authResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.NotEmpty(t, resp.Token, "missing token")
}

func TestLoginWrongPassword(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store:         a,
		jwtPrivateKey: testJWTKey(t),
	}

	digest, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	u := &schema.User{
		ID:             uuid.New(),
		ContactInfo:    "alice@example.com",
		PasswordDigest: string(digest),
		Role:           schema.UserRoleResident,
		Status:         schema.UserActive,
	}
	a.EXPECT().GetUserByContact("alice@example.com", schema.UserRoleResident).Return(u, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", s.login)

	body := `{"contact_info":"alice@example.com","password":"not-secret","role":"Resident"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1004), resp.Code, "wrong error code")
}

func TestLoginBlockedAccount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCommunityCore(ctl)

	s := Server{
		store:         a,
		jwtPrivateKey: testJWTKey(t),
	}

	digest, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	u := &schema.User{
		ID:             uuid.New(),
		ContactInfo:    "mallory@example.com",
		PasswordDigest: string(digest),
		Role:           schema.UserRoleHelper,
		Status:         schema.UserBlocked,
	}
	a.EXPECT().GetUserByContact("mallory@example.com", schema.UserRoleHelper).Return(u, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", s.login)

	body := `{"contact_info":"mallory@example.com","password":"secret","role":"Helper"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &resp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1103), resp.Code, "wrong error code")
}
