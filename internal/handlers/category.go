package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/hansik-dev/menuboard-backend/internal/services"
)

type CategoryHandler struct {
  svc services.CategoryService
}

func NewCategoryHandler(svc services.CategoryService) *CategoryHandler {
  return &CategoryHandler{svc: svc}
}

type createCategoryRequest struct {
  Name string `json:"name" binding:"required"`
}

type updateCategoryRequest struct {
  Name  string `json:"name" binding:"required"`
  Order int    `json:"order" binding:"required,min=1"`
}

// POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
  var req createCategoryRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }

  if err := h.svc.Create(c.Request.Context(), services.CreateCategoryInput{Name: req.Name}); err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "category registered"})
}

// GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
  categories, err := h.svc.List(c.Request.Context())
  if err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"data": categories})
}

// PATCH /categories/:categoryId
func (h *CategoryHandler) Update(c *gin.Context) {
  categoryID, ok := parseIDParam(c, "categoryId")
  if !ok {
    return
  }
  var req updateCategoryRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }

  input := services.UpdateCategoryInput{Name: req.Name, Order: req.Order}
  if err := h.svc.Update(c.Request.Context(), categoryID, input); err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "category updated"})
}

// DELETE /categories/:categoryId
func (h *CategoryHandler) Delete(c *gin.Context) {
  categoryID, ok := parseIDParam(c, "categoryId")
  if !ok {
    return
  }

  if err := h.svc.Delete(c.Request.Context(), categoryID); err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
