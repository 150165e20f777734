package repository

import (
	"go-shop-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.Transaction) error
	FindAll() ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	SumByType(txType model.TransactionType) (float64, error)
	DailyIncome() ([]DailySales, error)
}

// DailySales untuk chart data
type DailySales struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create inserts a ledger entry. It takes a *gorm.DB so the insert can join
// the same transaction as the stock update.
func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Product").Order("date DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) SumByType(txType model.TransactionType) (float64, error) {
	var total float64
	err := r.db.Model(&model.Transaction{}).
		Where("type = ?", txType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// DailyIncome aggregates income amounts per calendar date, oldest first.
func (r *transactionRepo) DailyIncome() ([]DailySales, error) {
	results := make([]DailySales, 0)

	rows, err := r.db.Model(&model.Transaction{}).
		Select("DATE(date) as date, COALESCE(SUM(amount), 0) as sales").
		Where("type = ?", model.TxIncome).
		Group("DATE(date)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data DailySales
		if err := rows.Scan(&data.Date, &data.Sales); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}
