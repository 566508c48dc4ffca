package repos

import (
  "gorm.io/gorm"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

// LiveCategory restricts a menu query to rows whose parent category has not
// been soft deleted. The menu's own deleted_at filter comes from gorm's
// soft-delete handling, so composing this scope yields the full
// "not deleted AND parent not deleted" predicate.
func LiveCategory(db *gorm.DB) *gorm.DB {
  sub := db.Session(&gorm.Session{NewDB: true}).
    Model(&types.Category{}).
    Select("category_id")
  return db.Where("category_id IN (?)", sub)
}
