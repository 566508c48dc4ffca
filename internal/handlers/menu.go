package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/hansik-dev/menuboard-backend/internal/services"
)

type MenuHandler struct {
  svc services.MenuService
}

func NewMenuHandler(svc services.MenuService) *MenuHandler {
  return &MenuHandler{svc: svc}
}

type createMenuRequest struct {
  Name        string  `json:"name" binding:"required"`
  Description string  `json:"description" binding:"required"`
  Image       string  `json:"image" binding:"required,uri"`
  Price       float64 `json:"price" binding:"min=0"`
  Order       int     `json:"order" binding:"omitempty,min=1"`
}

type updateMenuRequest struct {
  Name        string  `json:"name" binding:"required"`
  Description string  `json:"description" binding:"required"`
  Price       float64 `json:"price" binding:"min=0"`
  Order       int     `json:"order" binding:"required,min=1"`
  Status      string  `json:"status" binding:"required,oneof=FOR_SALE SOLD_OUT"`
}

// POST /categories/:categoryId/menus
func (h *MenuHandler) Create(c *gin.Context) {
  categoryID, ok := parseIDParam(c, "categoryId")
  if !ok {
    return
  }
  var req createMenuRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }

  input := services.CreateMenuInput{
    Name:        req.Name,
    Description: req.Description,
    Image:       req.Image,
    Price:       req.Price,
    Order:       req.Order,
  }
  if err := h.svc.Create(c.Request.Context(), categoryID, input); err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "menu registered"})
}

// GET /categories/:categoryId/menus
func (h *MenuHandler) ListByCategory(c *gin.Context) {
  categoryID, ok := parseIDParam(c, "categoryId")
  if !ok {
    return
  }

  menus, err := h.svc.ListByCategory(c.Request.Context(), categoryID)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"data": menus})
}

// GET /categories/:categoryId/menus/:menuId
func (h *MenuHandler) GetByID(c *gin.Context) {
  categoryID, ok := parseIDParam(c, "categoryId")
  if !ok {
    return
  }
  menuID, ok := parseIDParam(c, "menuId")
  if !ok {
    return
  }

  detail, err := h.svc.GetByID(c.Request.Context(), categoryID, menuID)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"data": detail})
}

// PATCH /categories/:categoryId/menus/:menuId
func (h *MenuHandler) Update(c *gin.Context) {
  categoryID, ok := parseIDParam(c, "categoryId")
  if !ok {
    return
  }
  menuID, ok := parseIDParam(c, "menuId")
  if !ok {
    return
  }
  var req updateMenuRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }

  input := services.UpdateMenuInput{
    Name:        req.Name,
    Description: req.Description,
    Price:       req.Price,
    Order:       req.Order,
    Status:      req.Status,
  }
  if err := h.svc.Update(c.Request.Context(), categoryID, menuID, input); err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "menu updated"})
}

// DELETE /categories/:categoryId/menus/:menuId
func (h *MenuHandler) Delete(c *gin.Context) {
  categoryID, ok := parseIDParam(c, "categoryId")
  if !ok {
    return
  }
  menuID, ok := parseIDParam(c, "menuId")
  if !ok {
    return
  }

  if err := h.svc.Delete(c.Request.Context(), categoryID, menuID); err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "menu deleted"})
}
