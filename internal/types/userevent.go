package types

import (
  "time"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

const (
  EventMenuCreated     = "menu.created"
  EventMenuUpdated     = "menu.updated"
  EventMenuDeleted     = "menu.deleted"
  EventCategoryCreated = "category.created"
  EventCategoryUpdated = "category.updated"
  EventCategoryDeleted = "category.deleted"
)

// UserEvent is an append-only audit row describing a mutation a user made.
type UserEvent struct {
  ID         uint           `gorm:"column:event_id;primaryKey" json:"eventId"`
  UserID     uint           `gorm:"column:user_id;not null;index" json:"userId"`
  User       *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  CategoryID *uint          `gorm:"column:category_id;index" json:"categoryId,omitempty"`
  MenuID     *uint          `gorm:"column:menu_id;index" json:"menuId,omitempty"`
  Type       string         `gorm:"column:type;not null;index" json:"type"`
  Data       datatypes.JSON `gorm:"column:data" json:"data"`
  CreatedAt  time.Time      `gorm:"not null" json:"createdAt"`
  UpdatedAt  time.Time      `gorm:"not null" json:"updatedAt"`
  DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserEvent) TableName() string { return "user_events" }
