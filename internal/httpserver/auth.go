package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	userrepo "bitefinder/internal/repository/user"
	identitysvc "bitefinder/internal/service/identity"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func signupHandler(svc identityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "email, password and name are required")
			return
		}
		u, token, err := svc.Signup(c.Request.Context(), identitysvc.SignupInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
		})
		if err != nil {
			if errors.Is(err, identitysvc.ErrDuplicateAccount) {
				respondError(c, http.StatusConflict, err.Error())
				return
			}
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"user":        u,
			"accessToken": token,
			"expiresIn":   svc.AccessTTLSeconds(),
		})
	}
}

func loginHandler(svc identityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "email and password are required")
			return
		}
		u, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, identitysvc.ErrInvalidCredentials) {
				respondError(c, http.StatusUnauthorized, err.Error())
				return
			}
			respondError(c, http.StatusInternalServerError, "login failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":        u,
			"accessToken": token,
			"expiresIn":   svc.AccessTTLSeconds(),
		})
	}
}

func guestHandler(svc identityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, token, err := svc.Guest(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "could not start guest session")
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"guestId":     guestID,
			"accessToken": token,
		})
	}
}

func logoutHandler(svc identityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if err := svc.Logout(c.Request.Context(), sess.Token); err != nil {
			respondError(c, http.StatusInternalServerError, "logout failed")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func meHandler(c *gin.Context) {
	sess := currentSession(c)
	if sess.User == nil {
		respondError(c, http.StatusForbidden, "login required")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}

// profilePatchRequest names exactly the updatable fields; any other key
// in the payload is rejected.
type profilePatchRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func updateProfileHandler(svc identityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if sess.User == nil {
			respondError(c, http.StatusForbidden, "login required")
			return
		}

		dec := json.NewDecoder(c.Request.Body)
		dec.DisallowUnknownFields()
		var req profilePatchRequest
		if err := dec.Decode(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid profile patch: "+err.Error())
			return
		}

		u, err := svc.UpdateProfile(c.Request.Context(), sess.User.ID, userrepo.ProfilePatch{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}
