package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communityaid/communityaid-api/store"
)

// updateProfile is the API to update name, contact info or location
// for the authenticated user
func (s *Server) updateProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Name        string `json:"name"`
		ContactInfo string `json:"contact_info"`
		Location    string `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	updated, err := s.store.UpdateUserProfile(user.ID.String(), params.Name, params.ContactInfo, params.Location)
	if err != nil {
		if err == store.ErrUserTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated",
		"user":    updated,
	})
}
