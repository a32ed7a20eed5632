package integration

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/contract"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"
	"freshsprout-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.OrderRepository())
	assert.NotNil(t, uow.ReplacementRepository())
	assert.NotNil(t, uow.GiftRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Product Repository", func(t *testing.T) {
		count, err := uow.ProductRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Product count: %d", count)
	})

	t.Run("Order idempotency on duplicate session", func(t *testing.T) {
		ctx := context.Background()
		sessionId := "cs_test_integration_" + uuid.New().String()

		order := &entity.Order{
			Id:              uuid.New(),
			Type:            entity.OrderTypeOneOff,
			Items:           []entity.LineItem{{Slug: "sunflower-shoots", Name: "Sunflower Shoots", UnitPrice: 6.50, Quantity: 2}},
			Subtotal:        13.00,
			ShippingFee:     5.00,
			Total:           18.00,
			Currency:        "usd",
			Status:          entity.OrderStatusPaid,
			StripeSessionId: sessionId,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}

		err := uow.OrderRepository().Create(ctx, order)
		assert.NoError(t, err)

		dup := *order
		dup.Id = uuid.New()
		err = uow.OrderRepository().Create(ctx, &dup)
		assert.True(t, errors.Is(err, contract.ErrDuplicateOrder), "second insert with same session id should report a duplicate")

		found, err := uow.OrderRepository().FindOne(ctx, specification.ByStripeSession{SessionID: sessionId})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, order.Id, found.Id)
			assert.Len(t, found.Items, 1)
		}
	})

	t.Run("Transactional replacement create", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     "user",
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		req := &entity.ReplacementRequest{
			Id:            uuid.New(),
			UserId:        user.Id,
			WeekStartDate: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
			MonthlyCount:  1,
			Reason:        "Pack arrived wilted",
			Status:        entity.ReplacementStatusPending,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		err = uow.ReplacementRepository().Create(ctx, req)
		assert.NoError(t, err)

		monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC)
		count, err := uow.ReplacementRepository().CountInMonth(ctx, user.Id, monthStart, monthStart.AddDate(0, 1, 0))
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(1))

		// Rolled back by the deferred Rollback; nothing persists.
	})
}
