package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

type CategoryRepo interface {
  Create(ctx context.Context, tx *gorm.DB, category *types.Category) (*types.Category, error)
  GetActiveByID(ctx context.Context, tx *gorm.DB, categoryID uint) (*types.Category, error)
  ListActive(ctx context.Context, tx *gorm.DB) ([]*types.Category, error)
  GetTopByOrder(ctx context.Context, tx *gorm.DB) (*types.Category, error)
  FindActiveByOrder(ctx context.Context, tx *gorm.DB, order int) (*types.Category, error)
  ShiftOrdersFrom(ctx context.Context, tx *gorm.DB, order int) error
  UpdateFields(ctx context.Context, tx *gorm.DB, categoryID uint, updates map[string]interface{}) error
  SoftDeleteByID(ctx context.Context, tx *gorm.DB, categoryID uint) error
}

type categoryRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
  repoLog := baseLog.With("repo", "CategoryRepo")
  return &categoryRepo{db: db, log: repoLog}
}

func (r *categoryRepo) Create(ctx context.Context, tx *gorm.DB, category *types.Category) (*types.Category, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(category).Error; err != nil {
    return nil, err
  }
  return category, nil
}

func (r *categoryRepo) GetActiveByID(ctx context.Context, tx *gorm.DB, categoryID uint) (*types.Category, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Category
  err := transaction.WithContext(ctx).
    Where("category_id = ?", categoryID).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *categoryRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.Category, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Category
  if err := transaction.WithContext(ctx).
    Order(`"order" ASC`).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *categoryRepo) GetTopByOrder(ctx context.Context, tx *gorm.DB) (*types.Category, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Category
  err := transaction.WithContext(ctx).
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

func (r *categoryRepo) FindActiveByOrder(ctx context.Context, tx *gorm.DB, order int) (*types.Category, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Category
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

func (r *categoryRepo) ShiftOrdersFrom(ctx context.Context, tx *gorm.DB, order int) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Category{}).
    Where(`"order" >= ?`, order).
    Update("order", gorm.Expr(`"order" + 1`)).Error
}

func (r *categoryRepo) UpdateFields(ctx context.Context, tx *gorm.DB, categoryID uint, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Category{}).
    Where("category_id = ?", categoryID).
    Updates(updates).Error
}

func (r *categoryRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, categoryID uint) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Where("category_id = ?", categoryID).
    Delete(&types.Category{}).Error
}
