package repository

import (
	"testing"

	"go-shop-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Transaction{}, &model.User{}))
	return db
}

func TestApplySaleIsRelativeUpdate(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepo(db)

	product := &model.Product{Name: "Widget", Category: "Misc", Price: 100, Cost: 60, Stock: 10}
	require.NoError(t, repo.Create(product))

	affected, err := repo.ApplySale(db, product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, found.Stock)
	assert.Equal(t, 4, found.SalesCount)
}

func TestApplySaleUnknownProductTouchesNothing(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepo(db)

	affected, err := repo.ApplySale(db, uuid.New(), 4)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDeleteIsNoOpForMissingID(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepo(db)

	assert.NoError(t, repo.Delete(uuid.New()))
}

func TestTopSellersOrdersAndLimits(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepo(db)

	sales := []int{3, 12, 7, 1, 9, 5}
	for i, s := range sales {
		require.NoError(t, repo.Create(&model.Product{
			Name:       string(rune('A' + i)),
			Category:   "Misc",
			Price:      10,
			Cost:       5,
			SalesCount: s,
		}))
	}

	top, err := repo.TopSellers(5)
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, 12, top[0].SalesCount)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].SalesCount, top[i].SalesCount)
	}
}
