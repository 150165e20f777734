package model

type Product struct {
	BaseModel
	Name     string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category string  `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Price    float64 `gorm:"not null" json:"price" validate:"gte=0"`
	Cost     float64 `gorm:"not null" json:"cost" validate:"gte=0"`
	Stock    int     `gorm:"default:0" json:"stock"`

	// Cumulative units sold. Only the sale reconciliation path writes this.
	SalesCount int `gorm:"default:0" json:"sales_count"`

	Transactions []Transaction `json:"transactions,omitempty"`
}
