package repository

import (
	"testing"
	"time"

	"go-shop-ledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAllOrdersByDateDescending(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewTransactionRepo(db)

	base := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		entry := &model.Transaction{
			Type:     model.TxIncome,
			Amount:   float64(10 * (i + 1)),
			Category: "General",
			Date:     base.AddDate(0, 0, i),
		}
		require.NoError(t, repo.Create(db, entry))
	}

	transactions, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, float64(30), transactions[0].Amount)
	assert.Equal(t, float64(10), transactions[2].Amount)
	assert.True(t, transactions[0].Date.After(transactions[1].Date))
}

func TestSumByType(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewTransactionRepo(db)

	now := time.Now()
	for _, e := range []struct {
		txType model.TransactionType
		amount float64
	}{
		{model.TxIncome, 100},
		{model.TxIncome, 250},
		{model.TxExpense, 80},
	} {
		require.NoError(t, repo.Create(db, &model.Transaction{
			Type: e.txType, Amount: e.amount, Category: "General", Date: now,
		}))
	}

	income, err := repo.SumByType(model.TxIncome)
	require.NoError(t, err)
	assert.Equal(t, float64(350), income)

	expense, err := repo.SumByType(model.TxExpense)
	require.NoError(t, err)
	assert.Equal(t, float64(80), expense)
}

func TestDailyIncomeSkipsExpenses(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewTransactionRepo(db)

	day := time.Date(2026, 8, 26, 14, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(db, &model.Transaction{Type: model.TxIncome, Amount: 40, Category: "General", Date: day}))
	require.NoError(t, repo.Create(db, &model.Transaction{Type: model.TxExpense, Amount: 500, Category: "General", Date: day}))

	chart, err := repo.DailyIncome()
	require.NoError(t, err)
	require.Len(t, chart, 1)
	assert.Equal(t, float64(40), chart[0].Sales)
}
