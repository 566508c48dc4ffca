package types

import (
  "time"
  "gorm.io/gorm"
)

const (
  MenuStatusForSale = "FOR_SALE"
  MenuStatusSoldOut = "SOLD_OUT"
)

type Menu struct {
  ID          uint           `gorm:"column:menu_id;primaryKey" json:"menuId"`
  CategoryID  uint           `gorm:"column:category_id;not null;index" json:"categoryId"`
  Category    *Category      `gorm:"constraint:OnDelete:CASCADE;foreignKey:CategoryID;references:ID" json:"category,omitempty"`
  UserID      uint           `gorm:"column:user_id;not null;index" json:"userId"`
  User        *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Name        string         `gorm:"column:name;size:255;not null" json:"name"`
  Description string         `gorm:"column:description;type:text;not null" json:"description"`
  Image       string         `gorm:"column:image;size:2048;not null" json:"image"`
  Price       float64        `gorm:"column:price;not null" json:"price"`
  Order       int            `gorm:"column:order;not null" json:"order"`
  Status      string         `gorm:"column:status;not null;default:FOR_SALE" json:"status"`
  Author      string         `gorm:"column:author;size:255;not null" json:"author"`
  CreatedAt   time.Time      `gorm:"not null" json:"createdAt"`
  UpdatedAt   time.Time      `gorm:"not null" json:"updatedAt"`
  DeletedAt   gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (Menu) TableName() string { return "menus" }

// MenuSummary is the list projection: no description, no owner columns.
type MenuSummary struct {
  MenuID uint    `gorm:"column:menu_id" json:"menuId"`
  Name   string  `gorm:"column:name" json:"name"`
  Image  string  `gorm:"column:image" json:"image"`
  Price  float64 `gorm:"column:price" json:"price"`
  Order  int     `gorm:"column:order" json:"order"`
  Status string  `gorm:"column:status" json:"status"`
  Author string  `gorm:"column:author" json:"author"`
}

// MenuDetail is the single-item projection: full detail, but neither the
// menu id nor the creator id are exposed.
type MenuDetail struct {
  CategoryID  uint           `gorm:"column:category_id" json:"categoryId"`
  Name        string         `gorm:"column:name" json:"name"`
  Description string         `gorm:"column:description" json:"description"`
  Image       string         `gorm:"column:image" json:"image"`
  Price       float64        `gorm:"column:price" json:"price"`
  Order       int            `gorm:"column:order" json:"order"`
  Status      string         `gorm:"column:status" json:"status"`
  Author      string         `gorm:"column:author" json:"author"`
  DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at" json:"deletedAt"`
}
