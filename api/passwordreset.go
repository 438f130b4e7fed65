package api

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/communityaid/communityaid-api/store"
)

const otpExpiry = 10 * time.Minute

// sendOTP issues a one-time password for a password reset. Delivery of
// the code is an external concern; the server only records it.
func (s *Server) sendOTP(c *gin.Context) {
	var params struct {
		Email string `json:"email"`
	}

	if err := c.BindJSON(&params); err != nil || params.Email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	registered, err := s.store.ContactRegistered(params.Email)
	if shouldInterupt(err, c) {
		return
	}
	if !registered {
		abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		return
	}

	code, err := generateOTP()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.CreatePasswordResetOTP(params.Email, code, time.Now().Add(otpExpiry)); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	log.WithField("contact_info", params.Email).Info("password reset OTP issued")

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

func (s *Server) verifyOTP(c *gin.Context) {
	var params struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.store.VerifyPasswordResetOTP(params.Email, params.OTP); err != nil {
		if err == store.ErrOTPInvalid {
			abortWithEncoding(c, http.StatusUnauthorized, errorOTPInvalid)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified"})
}

// resetPassword consumes a verified OTP and replaces the password for
// every account registered with the contact info.
func (s *Server) resetPassword(c *gin.Context) {
	var params struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}

	if err := c.BindJSON(&params); err != nil || params.NewPassword == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.ConsumePasswordResetOTP(params.Email, params.OTP); err != nil {
		if err == store.ErrOTPInvalid {
			abortWithEncoding(c, http.StatusUnauthorized, errorOTPInvalid)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(params.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.UpdateUserPassword(params.Email, string(digest)); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}

// generateOTP returns a random 6-digit code
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
