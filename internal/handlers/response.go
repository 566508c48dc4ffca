package handlers

import (
  "errors"
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/hansik-dev/menuboard-backend/internal/services"
)

// respondServiceError maps business failures onto the wire statuses the
// original API used: role refusals come back as 400 rather than 403, and only
// the per-row ownership refusal uses 401. Missing resources use the "error"
// key, refusals the "message" key.
func respondServiceError(c *gin.Context, err error) {
  switch {
  case errors.Is(err, services.ErrNoEditPermission), errors.Is(err, services.ErrNotAuthenticated):
    c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
  case errors.Is(err, services.ErrOwnerOnly):
    c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
  case errors.Is(err, services.ErrCategoryNotFound), errors.Is(err, services.ErrMenuNotFound):
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
  default:
    c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected server error"})
  }
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
  raw := c.Param(name)
  id, err := strconv.ParseUint(raw, 10, 64)
  if err != nil || id == 0 {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
    return 0, false
  }
  return uint(id), true
}
