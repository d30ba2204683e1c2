package handlers

import (
	"net/http"

	"growlytics/middleware"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type fcmTokenRequest struct {
	Token string `json:"token"`
}

// RegisterHandler creates an account and returns a fresh bearer token.
func (hb *HandlerBundle) RegisterHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := hb.Users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler authenticates and returns a fresh bearer token.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := hb.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the current session.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	if err := hb.Users.Logout(c.Request.Context(), middleware.UserID(c), c.GetString("token")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// GetProfileHandler returns the authenticated user's account record.
func (hb *HandlerBundle) GetProfileHandler(c *gin.Context) {
	u, err := hb.Users.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateFCMTokenHandler stores the device push token for this account.
func (hb *HandlerBundle) UpdateFCMTokenHandler(c *gin.Context) {
	var req fcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	if err := hb.Users.UpdateFCMToken(c.Request.Context(), middleware.UserID(c), req.Token); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteAccountHandler removes the account and revokes all sessions.
func (hb *HandlerBundle) DeleteAccountHandler(c *gin.Context) {
	if err := hb.Users.DeleteAccount(c.Request.Context(), middleware.UserID(c)); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete account", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
