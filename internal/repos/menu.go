package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

type MenuRepo interface {
  Create(ctx context.Context, tx *gorm.DB, menu *types.Menu) (*types.Menu, error)
  GetActiveByID(ctx context.Context, tx *gorm.DB, categoryID, menuID uint) (*types.Menu, error)
  GetDetail(ctx context.Context, tx *gorm.DB, categoryID, menuID uint) (*types.MenuDetail, error)
  ListActiveByCategory(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.MenuSummary, error)
  GetTopByOrder(ctx context.Context, tx *gorm.DB) (*types.Menu, error)
  FindActiveByOrder(ctx context.Context, tx *gorm.DB, order int) (*types.Menu, error)
  ShiftOrdersFrom(ctx context.Context, tx *gorm.DB, categoryID uint, order int) error
  UpdateFields(ctx context.Context, tx *gorm.DB, categoryID, menuID uint, updates map[string]interface{}) error
  SoftDeleteByID(ctx context.Context, tx *gorm.DB, categoryID, menuID uint) error
}

type menuRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMenuRepo(db *gorm.DB, baseLog *logger.Logger) MenuRepo {
  repoLog := baseLog.With("repo", "MenuRepo")
  return &menuRepo{db: db, log: repoLog}
}

func (r *menuRepo) Create(ctx context.Context, tx *gorm.DB, menu *types.Menu) (*types.Menu, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(menu).Error; err != nil {
    return nil, err
  }
  return menu, nil
}

func (r *menuRepo) GetActiveByID(ctx context.Context, tx *gorm.DB, categoryID, menuID uint) (*types.Menu, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Menu
  err := transaction.WithContext(ctx).
    Scopes(LiveCategory).
    Where("category_id = ? AND menu_id = ?", categoryID, menuID).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *menuRepo) GetDetail(ctx context.Context, tx *gorm.DB, categoryID, menuID uint) (*types.MenuDetail, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.MenuDetail
  err := transaction.WithContext(ctx).
    Model(&types.Menu{}).
    Scopes(LiveCategory).
    Where("category_id = ? AND menu_id = ?", categoryID, menuID).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *menuRepo) ListActiveByCategory(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.MenuSummary, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  results := []*types.MenuSummary{}
  if err := transaction.WithContext(ctx).
    Model(&types.Menu{}).
    Scopes(LiveCategory).
    Where("category_id = ?", categoryID).
    Order(`"order" ASC`).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// GetTopByOrder returns the menu holding the highest order rank across all
// categories, or nil when no menus exist at all. Soft-deleted rows still
// count toward the max: a deleted menu keeps its rank reserved.
func (r *menuRepo) GetTopByOrder(ctx context.Context, tx *gorm.DB) (*types.Menu, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Menu
  err := transaction.WithContext(ctx).
    Unscoped().
    Order(`"order" DESC`).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

// FindActiveByOrder looks the rank up across all categories, not just the one
// being edited.
func (r *menuRepo) FindActiveByOrder(ctx context.Context, tx *gorm.DB, order int) (*types.Menu, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Menu
  err := transaction.WithContext(ctx).
    Where(`"order" = ?`, order).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

// ShiftOrdersFrom makes room at the given rank by pushing every active menu
// in the category with order >= the target up by one, as a single statement.
func (r *menuRepo) ShiftOrdersFrom(ctx context.Context, tx *gorm.DB, categoryID uint, order int) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Menu{}).
    Where("category_id = ?", categoryID).
    Where(`"order" >= ?`, order).
    Update("order", gorm.Expr(`"order" + 1`)).Error
}

func (r *menuRepo) UpdateFields(ctx context.Context, tx *gorm.DB, categoryID, menuID uint, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Menu{}).
    Where("category_id = ? AND menu_id = ?", categoryID, menuID).
    Updates(updates).Error
}

func (r *menuRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, categoryID, menuID uint) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("category_id = ? AND menu_id = ?", categoryID, menuID).
    Delete(&types.Menu{}).Error
}
