package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/entity"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()
	require.NoError(t, uow.products.Create(ctx, &entity.Product{
		Id:   uuid.New(),
		Slug: "sunflower-shoots",
		Name: "Sunflower Shoots",
		Type: entity.ProductTypeMicrogreen,
	}))

	svc := NewProductService(&memUowFactory{uow: uow}, gocache.New(time.Minute, time.Minute))
	_, err := svc.Create(ctx, &dto.CreateProductRequest{
		Slug:  "sunflower-shoots",
		Name:  "Sunflower Shoots",
		Type:  "microgreen",
		Price: 6.50,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug already in use")
}

func TestCreateProductLookupFailurePropagates(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()
	dbErr := errors.New("connection refused")
	uow.products.findErr = dbErr

	svc := NewProductService(&memUowFactory{uow: uow}, gocache.New(time.Minute, time.Minute))
	_, err := svc.Create(ctx, &dto.CreateProductRequest{
		Slug:  "pea-tendrils",
		Name:  "Pea Tendrils",
		Type:  "microgreen",
		Price: 5.75,
	})
	require.ErrorIs(t, err, dbErr, "a failed duplicate check must not fall through to the insert")

	count, _ := uow.products.Count(ctx)
	assert.Zero(t, count)
}
