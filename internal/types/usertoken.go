package types

import (
  "time"
)

type UserToken struct {
  ID           uint      `gorm:"column:token_id;primaryKey" json:"tokenId"`
  UserID       uint      `gorm:"column:user_id;not null;index" json:"userId"`
  User         *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  AccessToken  string    `gorm:"column:access_token;not null;index" json:"-"`
  RefreshToken string    `gorm:"column:refresh_token;not null;uniqueIndex" json:"-"`
  ExpiresAt    time.Time `gorm:"column:expires_at;not null" json:"expiresAt"`
  CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
  UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`
}

func (UserToken) TableName() string { return "user_tokens" }
