package types

import (
  "time"
  "gorm.io/gorm"
)

const (
  UserTypeOwner    = "OWNER"
  UserTypeCustomer = "CUSTOMER"
)

type User struct {
  ID        uint           `gorm:"column:user_id;primaryKey" json:"userId"`
  Nickname  string         `gorm:"column:nickname;uniqueIndex;not null" json:"nickname"`
  Password  string         `gorm:"column:password;not null" json:"-"`
  Type      string         `gorm:"column:type;not null;default:CUSTOMER" json:"type"`
  CreatedAt time.Time      `gorm:"not null" json:"createdAt"`
  UpdatedAt time.Time      `gorm:"not null" json:"updatedAt"`
  DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
