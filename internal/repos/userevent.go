package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

type UserEventRepo interface {
  Create(ctx context.Context, tx *gorm.DB, event *types.UserEvent) (*types.UserEvent, error)
  ListByUserID(ctx context.Context, tx *gorm.DB, userID uint, limit int) ([]*types.UserEvent, error)
}

type userEventRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserEventRepo(db *gorm.DB, baseLog *logger.Logger) UserEventRepo {
  repoLog := baseLog.With("repo", "UserEventRepo")
  return &userEventRepo{db: db, log: repoLog}
}

func (r *userEventRepo) Create(ctx context.Context, tx *gorm.DB, event *types.UserEvent) (*types.UserEvent, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(event).Error; err != nil {
    return nil, err
  }
  return event, nil
}

func (r *userEventRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uint, limit int) ([]*types.UserEvent, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if limit <= 0 {
    limit = 50
  }

  var results []*types.UserEvent
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
