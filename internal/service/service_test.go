package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/liveaevi/skincare-api/internal/config"
	"github.com/liveaevi/skincare-api/internal/models"
	"github.com/liveaevi/skincare-api/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return repo.New(db)
}

func createProduct(t *testing.T, r *repo.GormRepo, p models.Product) models.Product {
	t.Helper()
	if err := r.DB.Create(&p).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return p
}
