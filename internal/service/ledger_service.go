package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository"
	"go-shop-ledger/internal/ws"
	"go-shop-ledger/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrProductNotFound = errors.New("product not found")
)

// DefaultCategory is applied when a transaction is recorded without one
const DefaultCategory = "General"

// TransactionRequest is the input for recording a ledger entry. ProductID and
// Quantity must be provided together; they mark the entry as an inventory sale.
type TransactionRequest struct {
	Type        model.TransactionType `json:"type" validate:"required,oneof=income expense"`
	Amount      float64               `json:"amount" validate:"required,gt=0"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	ProductID   *uuid.UUID            `json:"product_id"`
	Quantity    *int                  `json:"quantity" validate:"omitempty,gt=0"`
}

type LedgerService interface {
	RecordTransaction(req *TransactionRequest) (*model.Transaction, error)
	AddProduct(product *model.Product) error
	DeleteProduct(id uuid.UUID) error
	GetAllProducts() ([]model.Product, error)
	GetAllTransactions() ([]model.Transaction, error)
	GetTransactionByID(id uuid.UUID) (*model.Transaction, error)
}

type ledgerService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewLedgerService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) LedgerService {
	return &ledgerService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

// RecordTransaction appends a ledger entry and, for inventory-linked income,
// reconciles the referenced product's stock in the same database transaction.
// A missing product fails the whole request; the ledger insert is rolled back.
func (s *ledgerService) RecordTransaction(req *TransactionRequest) (*model.Transaction, error) {
	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if math.IsInf(req.Amount, 0) || math.IsNaN(req.Amount) {
		return nil, fmt.Errorf("%w: amount must be a finite number", ErrValidation)
	}

	// 2. Business Logic Validation: product link and quantity come as a pair
	if (req.ProductID == nil) != (req.Quantity == nil) {
		return nil, fmt.Errorf("%w: product_id and quantity must be provided together", ErrValidation)
	}
	if req.ProductID != nil && req.Type != model.TxIncome {
		return nil, fmt.Errorf("%w: only income transactions can reference a product", ErrValidation)
	}

	category := req.Category
	if category == "" {
		category = DefaultCategory
	}

	entry := &model.Transaction{
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    category,
		Description: req.Description,
		Date:        time.Now(),
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
	}

	var soldProduct *model.Product

	// Gunakan Transaction Block (Atomic Operation)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if entry.ProductID != nil {
			// A. Verify the product exists before touching the ledger
			var product model.Product
			if err := tx.First(&product, "id = ?", *entry.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			soldProduct = &product

			if entry.Description == "" {
				entry.Description = fmt.Sprintf("Sold %s", product.Name)
			}
		}

		// B. Append the ledger entry
		if err := s.transactionRepo.Create(tx, entry); err != nil {
			return err
		}

		// C. Reconcile stock with a single relative update (no lost updates)
		if entry.ProductID != nil {
			affected, err := s.productRepo.ApplySale(tx, *entry.ProductID, *entry.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				// Product vanished between the existence check and the update
				return ErrProductNotFound
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Broadcast ke WebSocket
	if soldProduct != nil {
		s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":   "stock_update",
			"action": "sale_recorded",
			"sale": map[string]interface{}{
				"transaction_id": entry.ID,
				"product_id":     soldProduct.ID,
				"product_name":   soldProduct.Name,
				"quantity":       *entry.Quantity,
				"new_stock":      soldProduct.Stock - *entry.Quantity,
			},
		})
	} else {
		s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":   "ledger_update",
			"action": "transaction_recorded",
			"transaction": map[string]interface{}{
				"id":     entry.ID,
				"kind":   entry.Type,
				"amount": entry.Amount,
			},
		})
	}

	return entry, nil
}

func (s *ledgerService) AddProduct(product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: initial stock cannot be negative", ErrValidation)
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_created",
		"product": map[string]interface{}{
			"id":       product.ID,
			"name":     product.Name,
			"category": product.Category,
			"stock":    product.Stock,
			"price":    product.Price,
		},
	})

	return nil
}

// DeleteProduct removes a product from the catalog. Deleting an id that does
// not exist is a no-op. Historical ledger entries keep their dangling link.
func (s *ledgerService) DeleteProduct(id uuid.UUID) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":       "stock_update",
		"action":     "product_deleted",
		"product_id": id,
	})

	return nil
}

func (s *ledgerService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *ledgerService) GetAllTransactions() ([]model.Transaction, error) {
	return s.transactionRepo.FindAll()
}

func (s *ledgerService) GetTransactionByID(id uuid.UUID) (*model.Transaction, error) {
	return s.transactionRepo.FindByID(id)
}
