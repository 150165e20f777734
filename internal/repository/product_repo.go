package repository

import (
	"go-shop-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Delete(id uuid.UUID) error
	ApplySale(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error)
	TopSellers(limit int) ([]TopProduct, error)
}

// TopProduct is a projection for the dashboard best-seller ranking
type TopProduct struct {
	Name       string `json:"name"`
	SalesCount int    `json:"sales_count"`
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

// Delete removes the product only. Ledger entries keep their recorded
// amount/description and simply lose the live product link.
func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// ApplySale menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi.
// The decrement is a single relative UPDATE so concurrent sales against the
// same product serialize at the storage layer (no lost updates). Returns the
// number of rows touched; 0 means the product does not exist.
func (r *productRepo) ApplySale(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock":       gorm.Expr("stock - ?", quantity),
			"sales_count": gorm.Expr("sales_count + ?", quantity),
		})
	return res.RowsAffected, res.Error
}

func (r *productRepo) TopSellers(limit int) ([]TopProduct, error) {
	results := make([]TopProduct, 0, limit)
	err := r.db.Model(&model.Product{}).
		Select("name, sales_count").
		Order("sales_count DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}
