package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/hansik-dev/menuboard-backend/internal/services"
)

type AuthHandler struct {
  authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

// POST /auth/register
func (ah *AuthHandler) Register(c *gin.Context) {
  var req struct {
    Nickname string `json:"nickname" binding:"required"`
    Password string `json:"password" binding:"required"`
    Type     string `json:"type" binding:"omitempty,oneof=OWNER CUSTOMER"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }

  if err := ah.authService.Register(c.Request.Context(), req.Nickname, req.Password, req.Type); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "registered successfully"})
}

// POST /auth/login
func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Nickname string `json:"nickname" binding:"required"`
    Password string `json:"password" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }

  accessToken, refreshToken, err := ah.authService.Login(c.Request.Context(), req.Nickname, req.Password)
  if err != nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
    return
  }
  expiresIn := int(ah.authService.GetAccessTTL().Seconds())
  c.JSON(http.StatusOK, gin.H{"accessToken": accessToken, "refreshToken": refreshToken, "expiresIn": expiresIn})
}

// POST /auth/refresh
func (ah *AuthHandler) Refresh(c *gin.Context) {
  accessToken, refreshToken, err := ah.authService.Refresh(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
    return
  }
  expiresIn := int(ah.authService.GetAccessTTL().Seconds())
  c.JSON(http.StatusOK, gin.H{"accessToken": accessToken, "refreshToken": refreshToken, "expiresIn": expiresIn})
}
