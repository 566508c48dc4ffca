package repos

import (
  "context"
  "fmt"
  "strings"
  "testing"

  "go.uber.org/zap"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
  gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
  if err != nil {
    t.Fatalf("open sqlite: %v", err)
  }
  if err := gdb.AutoMigrate(&types.User{}, &types.UserToken{}, &types.Category{}, &types.Menu{}, &types.UserEvent{}); err != nil {
    t.Fatalf("migrate: %v", err)
  }
  return gdb
}

func newTestLogger() *logger.Logger {
  return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func seedUser(t *testing.T, gdb *gorm.DB, nickname, userType string) *types.User {
  t.Helper()
  user := &types.User{
    Nickname: nickname,
    Password: "hashed-password",
    Type:     userType,
  }
  if err := gdb.Create(user).Error; err != nil {
    t.Fatalf("seed user %s: %v", nickname, err)
  }
  return user
}

func seedMenu(t *testing.T, gdb *gorm.DB, categoryID, userID uint, name string, order int) *types.Menu {
  t.Helper()
  menu := &types.Menu{
    CategoryID:  categoryID,
    UserID:      userID,
    Name:        name,
    Description: name + " description",
    Image:       "https://img.example.com/" + name + ".jpg",
    Price:       1000,
    Order:       order,
    Status:      types.MenuStatusForSale,
    Author:      "tester",
  }
  if err := gdb.Create(menu).Error; err != nil {
    t.Fatalf("seed menu %s: %v", name, err)
  }
  return menu
}

func TestMenuRepoGetTopByOrderEmpty(t *testing.T) {
  gdb := newTestDB(t)
  repo := NewMenuRepo(gdb, newTestLogger())

  top, err := repo.GetTopByOrder(context.Background(), nil)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if top != nil {
    t.Fatalf("expected nil top menu, got order=%d", top.Order)
  }
}

func TestMenuRepoGetTopByOrderIsGlobal(t *testing.T) {
  gdb := newTestDB(t)
  repo := NewMenuRepo(gdb, newTestLogger())

  owner := seedUser(t, gdb, "sajang", types.UserTypeOwner)
  catA := &types.Category{Name: "noodles", Order: 1}
  catB := &types.Category{Name: "rice", Order: 2}
  if err := gdb.Create(catA).Error; err != nil {
    t.Fatalf("seed category: %v", err)
  }
  if err := gdb.Create(catB).Error; err != nil {
    t.Fatalf("seed category: %v", err)
  }
  seedMenu(t, gdb, catA.ID, owner.ID, "ramen", 3)
  seedMenu(t, gdb, catB.ID, owner.ID, "bibimbap", 7)

  top, err := repo.GetTopByOrder(context.Background(), nil)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if top == nil || top.Order != 7 {
    t.Fatalf("expected global max order 7, got %+v", top)
  }

  // A soft-deleted menu keeps its rank reserved, so it still wins the max.
  gone := seedMenu(t, gdb, catA.ID, owner.ID, "retired", 9)
  if err := gdb.Delete(gone).Error; err != nil {
    t.Fatalf("soft delete seed: %v", err)
  }
  top, err = repo.GetTopByOrder(context.Background(), nil)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if top == nil || top.Order != 9 {
    t.Fatalf("expected max order 9 from the deleted row, got %+v", top)
  }
}

func TestMenuRepoShiftOrdersFromScopedToCategory(t *testing.T) {
  gdb := newTestDB(t)
  repo := NewMenuRepo(gdb, newTestLogger())

  owner := seedUser(t, gdb, "sajang", types.UserTypeOwner)
  catA := &types.Category{Name: "noodles", Order: 1}
  catB := &types.Category{Name: "rice", Order: 2}
  if err := gdb.Create(catA).Error; err != nil {
    t.Fatalf("seed category: %v", err)
  }
  if err := gdb.Create(catB).Error; err != nil {
    t.Fatalf("seed category: %v", err)
  }
  a1 := seedMenu(t, gdb, catA.ID, owner.ID, "ramen", 1)
  a2 := seedMenu(t, gdb, catA.ID, owner.ID, "udon", 2)
  b1 := seedMenu(t, gdb, catB.ID, owner.ID, "bibimbap", 1)
  deleted := seedMenu(t, gdb, catA.ID, owner.ID, "gone", 5)
  if err := gdb.Delete(deleted).Error; err != nil {
    t.Fatalf("soft delete seed: %v", err)
  }

  if err := repo.ShiftOrdersFrom(context.Background(), nil, catA.ID, 1); err != nil {
    t.Fatalf("shift: %v", err)
  }

  for _, tc := range []struct {
    menuID uint
    want   int
  }{
    {a1.ID, 2},
    {a2.ID, 3},
    {b1.ID, 1},
  } {
    var got types.Menu
    if err := gdb.Where("menu_id = ?", tc.menuID).First(&got).Error; err != nil {
      t.Fatalf("reload menu %d: %v", tc.menuID, err)
    }
    if got.Order != tc.want {
      t.Fatalf("menu %d order: got=%d want=%d", tc.menuID, got.Order, tc.want)
    }
  }

  // The soft-deleted row keeps its rank.
  var gone types.Menu
  if err := gdb.Unscoped().Where("menu_id = ?", deleted.ID).First(&gone).Error; err != nil {
    t.Fatalf("reload deleted menu: %v", err)
  }
  if gone.Order != 5 {
    t.Fatalf("deleted menu order: got=%d want=5", gone.Order)
  }
}

func TestMenuRepoListActiveByCategoryHidesDeadParent(t *testing.T) {
  gdb := newTestDB(t)
  repo := NewMenuRepo(gdb, newTestLogger())

  owner := seedUser(t, gdb, "sajang", types.UserTypeOwner)
  cat := &types.Category{Name: "noodles", Order: 1}
  if err := gdb.Create(cat).Error; err != nil {
    t.Fatalf("seed category: %v", err)
  }
  seedMenu(t, gdb, cat.ID, owner.ID, "ramen", 2)
  seedMenu(t, gdb, cat.ID, owner.ID, "udon", 1)

  menus, err := repo.ListActiveByCategory(context.Background(), nil, cat.ID)
  if err != nil {
    t.Fatalf("list: %v", err)
  }
  if len(menus) != 2 {
    t.Fatalf("expected 2 menus, got %d", len(menus))
  }
  if menus[0].Order != 1 || menus[1].Order != 2 {
    t.Fatalf("expected ascending order, got %d then %d", menus[0].Order, menus[1].Order)
  }

  if err := gdb.Delete(cat).Error; err != nil {
    t.Fatalf("soft delete category: %v", err)
  }
  menus, err = repo.ListActiveByCategory(context.Background(), nil, cat.ID)
  if err != nil {
    t.Fatalf("list after category delete: %v", err)
  }
  if len(menus) != 0 {
    t.Fatalf("expected no menus under a deleted category, got %d", len(menus))
  }
}

func TestMenuRepoFindActiveByOrderSkipsDeleted(t *testing.T) {
  gdb := newTestDB(t)
  repo := NewMenuRepo(gdb, newTestLogger())

  owner := seedUser(t, gdb, "sajang", types.UserTypeOwner)
  cat := &types.Category{Name: "noodles", Order: 1}
  if err := gdb.Create(cat).Error; err != nil {
    t.Fatalf("seed category: %v", err)
  }
  m := seedMenu(t, gdb, cat.ID, owner.ID, "ramen", 4)

  found, err := repo.FindActiveByOrder(context.Background(), nil, 4)
  if err != nil {
    t.Fatalf("find: %v", err)
  }
  if found == nil || found.ID != m.ID {
    t.Fatalf("expected menu %d at order 4, got %+v", m.ID, found)
  }

  if err := gdb.Delete(m).Error; err != nil {
    t.Fatalf("soft delete: %v", err)
  }
  found, err = repo.FindActiveByOrder(context.Background(), nil, 4)
  if err != nil {
    t.Fatalf("find after delete: %v", err)
  }
  if found != nil {
    t.Fatalf("expected no active menu at order 4, got %+v", found)
  }
}
