package services

import (
  "context"
  "errors"
  "testing"

  "gorm.io/gorm"

  "github.com/hansik-dev/menuboard-backend/internal/repos"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

func newCategoryService(gdb *gorm.DB) CategoryService {
  log := newTestLogger()
  return NewCategoryService(
    gdb,
    log,
    repos.NewCategoryRepo(gdb, log),
    repos.NewUserEventRepo(gdb, log),
  )
}

func TestCategoryCreateAppendsToEnd(t *testing.T) {
  gdb := newTestDB(t)
  svc := newCategoryService(gdb)
  owner := seedUser(t, gdb, "sajang", types.UserTypeOwner)

  if err := svc.Create(ctxFor(owner), CreateCategoryInput{Name: "stews"}); err != nil {
    t.Fatalf("first create: %v", err)
  }
  if err := svc.Create(ctxFor(owner), CreateCategoryInput{Name: "noodles"}); err != nil {
    t.Fatalf("second create: %v", err)
  }

  var categories []*types.Category
  if err := gdb.Order(`"order" ASC`).Find(&categories).Error; err != nil {
    t.Fatalf("load categories: %v", err)
  }
  if len(categories) != 2 {
    t.Fatalf("expected 2 categories, got %d", len(categories))
  }
  if categories[0].Order != 1 || categories[1].Order != 2 {
    t.Fatalf("orders: got=%d,%d want=1,2", categories[0].Order, categories[1].Order)
  }
}

func TestCategoryCreateRequiresOwnerRole(t *testing.T) {
  gdb := newTestDB(t)
  svc := newCategoryService(gdb)
  customer := seedUser(t, gdb, "guest", types.UserTypeCustomer)

  if err := svc.Create(ctxFor(customer), CreateCategoryInput{Name: "stews"}); !errors.Is(err, ErrOwnerOnly) {
    t.Fatalf("expected ErrOwnerOnly, got %v", err)
  }
  if err := svc.Create(context.Background(), CreateCategoryInput{Name: "stews"}); !errors.Is(err, ErrNotAuthenticated) {
    t.Fatalf("expected ErrNotAuthenticated, got %v", err)
  }
}

func TestCategoryListSkipsDeleted(t *testing.T) {
  gdb := newTestDB(t)
  svc := newCategoryService(gdb)
  seedCategory(t, gdb, "noodles", 2)
  seedCategory(t, gdb, "stews", 1)
  removed := seedCategory(t, gdb, "old", 3)
  if err := gdb.Delete(removed).Error; err != nil {
    t.Fatalf("soft delete: %v", err)
  }

  categories, err := svc.List(context.Background())
  if err != nil {
    t.Fatalf("list: %v", err)
  }
  if len(categories) != 2 {
    t.Fatalf("expected 2 categories, got %d", len(categories))
  }
  if categories[0].Name != "stews" || categories[1].Name != "noodles" {
    t.Fatalf("expected ascending order, got %q then %q", categories[0].Name, categories[1].Name)
  }
}

func TestCategoryUpdateShiftsOccupiedRank(t *testing.T) {
  gdb := newTestDB(t)
  svc := newCategoryService(gdb)
  owner := seedUser(t, gdb, "sajang", types.UserTypeOwner)
  stews := seedCategory(t, gdb, "stews", 1)
  noodles := seedCategory(t, gdb, "noodles", 2)

  if err := svc.Update(ctxFor(owner), noodles.ID, UpdateCategoryInput{Name: "noodle dishes", Order: 1}); err != nil {
    t.Fatalf("update: %v", err)
  }

  var gotStews, gotNoodles types.Category
  if err := gdb.Where("category_id = ?", stews.ID).First(&gotStews).Error; err != nil {
    t.Fatalf("reload stews: %v", err)
  }
  if err := gdb.Where("category_id = ?", noodles.ID).First(&gotNoodles).Error; err != nil {
    t.Fatalf("reload noodles: %v", err)
  }
  if gotStews.Order != 2 {
    t.Fatalf("stews order: got=%d want=2", gotStews.Order)
  }
  if gotNoodles.Order != 1 || gotNoodles.Name != "noodle dishes" {
    t.Fatalf("noodles not overwritten: %+v", gotNoodles)
  }
}

func TestCategoryUpdateMissing(t *testing.T) {
  gdb := newTestDB(t)
  svc := newCategoryService(gdb)
  owner := seedUser(t, gdb, "sajang", types.UserTypeOwner)

  if err := svc.Update(ctxFor(owner), 42, UpdateCategoryInput{Name: "x", Order: 1}); !errors.Is(err, ErrCategoryNotFound) {
    t.Fatalf("expected ErrCategoryNotFound, got %v", err)
  }
}

func TestCategoryDeleteHidesMenus(t *testing.T) {
  gdb := newTestDB(t)
  categorySvc := newCategoryService(gdb)
  menuSvc := newMenuService(gdb)
  owner := seedUser(t, gdb, "sajang", types.UserTypeOwner)
  stews := seedCategory(t, gdb, "stews", 1)
  menu := seedMenu(t, gdb, stews, owner, "kimchi stew", 1)

  if err := categorySvc.Delete(ctxFor(owner), stews.ID); err != nil {
    t.Fatalf("delete: %v", err)
  }

  // The menu row itself is untouched, but category reads report it gone.
  var raw types.Menu
  if err := gdb.Where("menu_id = ?", menu.ID).First(&raw).Error; err != nil {
    t.Fatalf("menu row must survive: %v", err)
  }
  if raw.DeletedAt.Valid {
    t.Fatalf("menu must not be soft-deleted by category delete")
  }
  if _, err := menuSvc.GetByID(context.Background(), stews.ID, menu.ID); !errors.Is(err, ErrCategoryNotFound) {
    t.Fatalf("expected ErrCategoryNotFound after category delete, got %v", err)
  }

  if err := categorySvc.Delete(ctxFor(owner), stews.ID); !errors.Is(err, ErrCategoryNotFound) {
    t.Fatalf("expected ErrCategoryNotFound on second delete, got %v", err)
  }
}
