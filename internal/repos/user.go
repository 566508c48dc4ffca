package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

type UserRepo interface {
  Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
  GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error)
  GetByNickname(ctx context.Context, tx *gorm.DB, nickname string) (*types.User, error)
  NicknameExists(ctx context.Context, tx *gorm.DB, nickname string) (bool, error)
}

type userRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
  repoLog := baseLog.With("repo", "UserRepo")
  return &userRepo{db: db, log: repoLog}
}

func (r *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
    return nil, err
  }
  return user, nil
}

func (r *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.User
  err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *userRepo) GetByNickname(ctx context.Context, tx *gorm.DB, nickname string) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.User
  err := transaction.WithContext(ctx).
    Where("nickname = ?", nickname).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *userRepo) NicknameExists(ctx context.Context, tx *gorm.DB, nickname string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("nickname = ?", nickname).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}
