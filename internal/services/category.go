package services

import (
  "context"
  "encoding/json"

  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/repos"
  "github.com/hansik-dev/menuboard-backend/internal/requestdata"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

type CreateCategoryInput struct {
  Name string
}

type UpdateCategoryInput struct {
  Name  string
  Order int
}

type CategoryService interface {
  Create(ctx context.Context, input CreateCategoryInput) error
  List(ctx context.Context) ([]*types.Category, error)
  Update(ctx context.Context, categoryID uint, input UpdateCategoryInput) error
  Delete(ctx context.Context, categoryID uint) error
}

type categoryService struct {
  db           *gorm.DB
  log          *logger.Logger
  categoryRepo repos.CategoryRepo
  eventRepo    repos.UserEventRepo
}

func NewCategoryService(
  db *gorm.DB,
  baseLog *logger.Logger,
  categoryRepo repos.CategoryRepo,
  eventRepo repos.UserEventRepo,
) CategoryService {
  return &categoryService{
    db:           db,
    log:          baseLog.With("service", "CategoryService"),
    categoryRepo: categoryRepo,
    eventRepo:    eventRepo,
  }
}

func (s *categoryService) Create(ctx context.Context, input CreateCategoryInput) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return ErrNotAuthenticated
  }
  if rd.UserType != types.UserTypeOwner {
    return ErrOwnerOnly
  }

  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    top, err := s.categoryRepo.GetTopByOrder(ctx, tx)
    if err != nil {
      s.log.Warn("Create: load max order failed", "error", err)
      return err
    }
    nextOrder := 1
    if top != nil {
      nextOrder = top.Order + 1
    }

    category := &types.Category{
      Name:  input.Name,
      Order: nextOrder,
    }
    if _, err := s.categoryRepo.Create(ctx, tx, category); err != nil {
      s.log.Warn("Create: insert failed", "error", err)
      return err
    }

    s.recordEvent(ctx, tx, types.EventCategoryCreated, rd.UserID, &category.ID, map[string]interface{}{
      "name":  category.Name,
      "order": category.Order,
    })
    return nil
  })
}

func (s *categoryService) List(ctx context.Context) ([]*types.Category, error) {
  categories, err := s.categoryRepo.ListActive(ctx, nil)
  if err != nil {
    s.log.Warn("List: load categories failed", "error", err)
    return nil, err
  }
  return categories, nil
}

func (s *categoryService) Update(ctx context.Context, categoryID uint, input UpdateCategoryInput) error {
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

    conflict, err := s.categoryRepo.FindActiveByOrder(ctx, tx, input.Order)
    if err != nil {
      s.log.Warn("Update: order conflict lookup failed", "error", err, "order", input.Order)
      return err
    }
    if conflict != nil {
      if err := s.categoryRepo.ShiftOrdersFrom(ctx, tx, input.Order); err != nil {
        s.log.Warn("Update: order shift failed", "error", err, "order", input.Order)
        return err
      }
    }

    updates := map[string]interface{}{
      "name":  input.Name,
      "order": input.Order,
    }
    if err := s.categoryRepo.UpdateFields(ctx, tx, categoryID, updates); err != nil {
      s.log.Warn("Update: overwrite failed", "error", err, "category_id", categoryID)
      return err
    }

    s.recordEvent(ctx, tx, types.EventCategoryUpdated, rd.UserID, &categoryID, map[string]interface{}{
      "name":  input.Name,
      "order": input.Order,
    })
    return nil
  })
}

func (s *categoryService) Delete(ctx context.Context, categoryID uint) error {
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

    // Menus underneath stay in place; reads hide them through the
    // live-category predicate.
    if err := s.categoryRepo.SoftDeleteByID(ctx, tx, categoryID); err != nil {
      s.log.Warn("Delete: soft delete failed", "error", err, "category_id", categoryID)
      return err
    }

    s.recordEvent(ctx, tx, types.EventCategoryDeleted, rd.UserID, &categoryID, map[string]interface{}{
      "name": category.Name,
    })
    return nil
  })
}

func (s *categoryService) recordEvent(ctx context.Context, tx *gorm.DB, eventType string, userID uint, categoryID *uint, payload map[string]interface{}) {
  raw, err := json.Marshal(payload)
  if err != nil {
    s.log.Warn("recordEvent: marshal failed", "error", err, "type", eventType)
    return
  }
  event := &types.UserEvent{
    UserID:     userID,
    CategoryID: categoryID,
    Type:       eventType,
    Data:       datatypes.JSON(raw),
  }
  if _, err := s.eventRepo.Create(ctx, tx, event); err != nil {
    s.log.Warn("recordEvent: insert failed", "error", err, "type", eventType)
  }
}
