package services

import (
  "context"
  "encoding/json"
  "fmt"

  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/repos"
  "github.com/hansik-dev/menuboard-backend/internal/requestdata"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

type CreateMenuInput struct {
  Name        string
  Description string
  Image       string
  Price       float64
  Order       int
}

type UpdateMenuInput struct {
  Name        string
  Description string
  Price       float64
  Order       int
  Status      string
}

type MenuService interface {
  Create(ctx context.Context, categoryID uint, input CreateMenuInput) error
  ListByCategory(ctx context.Context, categoryID uint) ([]*types.MenuSummary, error)
  GetByID(ctx context.Context, categoryID, menuID uint) (*types.MenuDetail, error)
  Update(ctx context.Context, categoryID, menuID uint, input UpdateMenuInput) error
  Delete(ctx context.Context, categoryID, menuID uint) error
}

type menuService struct {
  db           *gorm.DB
  log          *logger.Logger
  categoryRepo repos.CategoryRepo
  menuRepo     repos.MenuRepo
  userRepo     repos.UserRepo
  eventRepo    repos.UserEventRepo
}

func NewMenuService(
  db *gorm.DB,
  baseLog *logger.Logger,
  categoryRepo repos.CategoryRepo,
  menuRepo repos.MenuRepo,
  userRepo repos.UserRepo,
  eventRepo repos.UserEventRepo,
) MenuService {
  return &menuService{
    db:           db,
    log:          baseLog.With("service", "MenuService"),
    categoryRepo: categoryRepo,
    menuRepo:     menuRepo,
    userRepo:     userRepo,
    eventRepo:    eventRepo,
  }
}

func (s *menuService) Create(ctx context.Context, categoryID uint, input CreateMenuInput) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return ErrNotAuthenticated
  }
  if rd.UserType != types.UserTypeOwner {
    return ErrOwnerOnly
  }

  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    category, err := s.categoryRepo.GetActiveByID(ctx, tx, categoryID)
    if err != nil {
      s.log.Warn("Create: load category failed", "error", err, "category_id", categoryID)
      return err
    }
    if category == nil {
      return ErrCategoryNotFound
    }

    // The next rank comes from the highest order across every category,
    // not just the one being inserted into. The order value in the payload
    // is validated upstream but never used.
    top, err := s.menuRepo.GetTopByOrder(ctx, tx)
    if err != nil {
      s.log.Warn("Create: load max order failed", "error", err)
      return err
    }
    nextOrder := 1
    if top != nil {
      nextOrder = top.Order + 1
    }

    creator, err := s.userRepo.GetByID(ctx, tx, rd.UserID)
    if err != nil {
      s.log.Warn("Create: load creator failed", "error", err, "user_id", rd.UserID)
      return err
    }
    if creator == nil {
      return fmt.Errorf("creator account not found")
    }

    menu := &types.Menu{
      CategoryID:  categoryID,
      UserID:      rd.UserID,
      Name:        input.Name,
      Description: input.Description,
      Image:       input.Image,
      Price:       input.Price,
      Order:       nextOrder,
      Status:      types.MenuStatusForSale,
      Author:      creator.Nickname,
    }
    if _, err := s.menuRepo.Create(ctx, tx, menu); err != nil {
      s.log.Warn("Create: insert failed", "error", err, "category_id", categoryID)
      return err
    }

    s.recordEvent(ctx, tx, types.EventMenuCreated, rd.UserID, &categoryID, &menu.ID, map[string]interface{}{
      "name":  menu.Name,
      "order": menu.Order,
    })
    return nil
  })
}

func (s *menuService) ListByCategory(ctx context.Context, categoryID uint) ([]*types.MenuSummary, error) {
  category, err := s.categoryRepo.GetActiveByID(ctx, nil, categoryID)
  if err != nil {
    s.log.Warn("ListByCategory: load category failed", "error", err, "category_id", categoryID)
    return nil, err
  }
  if category == nil {
    return nil, ErrCategoryNotFound
  }

  // An empty category is a valid result, not a missing one.
  menus, err := s.menuRepo.ListActiveByCategory(ctx, nil, categoryID)
  if err != nil {
    s.log.Warn("ListByCategory: load menus failed", "error", err, "category_id", categoryID)
    return nil, err
  }
  return menus, nil
}

func (s *menuService) GetByID(ctx context.Context, categoryID, menuID uint) (*types.MenuDetail, error) {
  category, err := s.categoryRepo.GetActiveByID(ctx, nil, categoryID)
  if err != nil {
    s.log.Warn("GetByID: load category failed", "error", err, "category_id", categoryID)
    return nil, err
  }
  if category == nil {
    return nil, ErrCategoryNotFound
  }

  detail, err := s.menuRepo.GetDetail(ctx, nil, categoryID, menuID)
  if err != nil {
    s.log.Warn("GetByID: load menu failed", "error", err, "menu_id", menuID)
    return nil, err
  }
  if detail == nil {
    return nil, ErrMenuNotFound
  }
  return detail, nil
}

func (s *menuService) Update(ctx context.Context, categoryID, menuID uint, input UpdateMenuInput) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return ErrNotAuthenticated
  }
  if rd.UserType != types.UserTypeOwner {
    return ErrOwnerOnly
  }

  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    category, err := s.categoryRepo.GetActiveByID(ctx, tx, categoryID)
    if err != nil {
      s.log.Warn("Update: load category failed", "error", err, "category_id", categoryID)
      return err
    }
    if category == nil {
      return ErrCategoryNotFound
    }

    menu, err := s.menuRepo.GetActiveByID(ctx, tx, categoryID, menuID)
    if err != nil {
      s.log.Warn("Update: load menu failed", "error", err, "menu_id", menuID)
      return err
    }
    if menu == nil {
      return ErrMenuNotFound
    }
    if menu.UserID != rd.UserID {
      return ErrNoEditPermission
    }

    // The conflict lookup is global, but the shift is scoped to the
    // category being edited.
    conflict, err := s.menuRepo.FindActiveByOrder(ctx, tx, input.Order)
    if err != nil {
      s.log.Warn("Update: order conflict lookup failed", "error", err, "order", input.Order)
      return err
    }
    if conflict != nil {
      if err := s.menuRepo.ShiftOrdersFrom(ctx, tx, categoryID, input.Order); err != nil {
        s.log.Warn("Update: order shift failed", "error", err, "category_id", categoryID, "order", input.Order)
        return err
      }
    }

    updates := map[string]interface{}{
      "name":        input.Name,
      "description": input.Description,
      "price":       input.Price,
      "order":       input.Order,
      "status":      input.Status,
    }
    if err := s.menuRepo.UpdateFields(ctx, tx, categoryID, menuID, updates); err != nil {
      s.log.Warn("Update: overwrite failed", "error", err, "menu_id", menuID)
      return err
    }

    s.recordEvent(ctx, tx, types.EventMenuUpdated, rd.UserID, &categoryID, &menuID, map[string]interface{}{
      "name":  input.Name,
      "order": input.Order,
    })
    return nil
  })
}

func (s *menuService) Delete(ctx context.Context, categoryID, menuID uint) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return ErrNotAuthenticated
  }
  if rd.UserType != types.UserTypeOwner {
    return ErrOwnerOnly
  }

  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    category, err := s.categoryRepo.GetActiveByID(ctx, tx, categoryID)
    if err != nil {
      s.log.Warn("Delete: load category failed", "error", err, "category_id", categoryID)
      return err
    }
    if category == nil {
      return ErrCategoryNotFound
    }

    menu, err := s.menuRepo.GetActiveByID(ctx, tx, categoryID, menuID)
    if err != nil {
      s.log.Warn("Delete: load menu failed", "error", err, "menu_id", menuID)
      return err
    }
    if menu == nil {
      return ErrMenuNotFound
    }
    if menu.UserID != rd.UserID {
      return ErrNoEditPermission
    }

    // Soft delete only; sibling ranks keep their holes.
    if err := s.menuRepo.SoftDeleteByID(ctx, tx, categoryID, menuID); err != nil {
      s.log.Warn("Delete: soft delete failed", "error", err, "menu_id", menuID)
      return err
    }

    s.recordEvent(ctx, tx, types.EventMenuDeleted, rd.UserID, &categoryID, &menuID, map[string]interface{}{
      "name": menu.Name,
    })
    return nil
  })
}

func (s *menuService) recordEvent(ctx context.Context, tx *gorm.DB, eventType string, userID uint, categoryID, menuID *uint, payload map[string]interface{}) {
  raw, err := json.Marshal(payload)
  if err != nil {
    s.log.Warn("recordEvent: marshal failed", "error", err, "type", eventType)
    return
  }
  event := &types.UserEvent{
    UserID:     userID,
    CategoryID: categoryID,
    MenuID:     menuID,
    Type:       eventType,
    Data:       datatypes.JSON(raw),
  }
  if _, err := s.eventRepo.Create(ctx, tx, event); err != nil {
    s.log.Warn("recordEvent: insert failed", "error", err, "type", eventType)
  }
}
