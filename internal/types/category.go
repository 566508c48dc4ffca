package types

import (
  "time"
  "gorm.io/gorm"
)

type Category struct {
  ID        uint           `gorm:"column:category_id;primaryKey" json:"categoryId"`
  Name      string         `gorm:"column:name;size:255;not null" json:"name"`
  Order     int            `gorm:"column:order;not null" json:"order"`
  CreatedAt time.Time      `gorm:"not null" json:"createdAt"`
  UpdatedAt time.Time      `gorm:"not null" json:"updatedAt"`
  DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string { return "categories" }
