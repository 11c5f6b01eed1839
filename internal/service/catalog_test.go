package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveaevi/skincare-api/internal/models"
	"github.com/liveaevi/skincare-api/internal/repo"
)

func TestCatalogService_ListProducts_FeaturedNewestFirst(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	createProduct(t, r, models.Product{Name: "Old Featured", Price: 10, IsFeatured: true, CreatedAt: base})
	createProduct(t, r, models.Product{Name: "Plain", Price: 20, CreatedAt: base.Add(time.Minute)})
	createProduct(t, r, models.Product{Name: "New Featured", Price: 30, IsFeatured: true, CreatedAt: base.Add(2 * time.Minute)})

	products, err := svc.ListProducts(ctx, repo.ProductFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "New Featured", products[0].Name)
	assert.Equal(t, "Old Featured", products[1].Name)
}

func TestCatalogService_ListProducts_CategoryFilter(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	createProduct(t, r, models.Product{Name: "Serum", Price: 89, Category: "serums"})
	createProduct(t, r, models.Product{Name: "Cream", Price: 125, Category: "moisturizers"})

	products, err := svc.ListProducts(ctx, repo.ProductFilter{Category: "serums"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Serum", products[0].Name)
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	created := createProduct(t, r, models.Product{Name: "Serum", Price: 89})

	product, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Serum", product.Name)

	_, err = svc.GetProduct(ctx, created.ID+1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
