package service

import (
	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository"
)

// TopProductLimit caps the dashboard best-seller ranking
const TopProductLimit = 5

// DashboardStats is the aggregate view derived from the ledger and catalog.
// It is computed on demand and never persisted.
type DashboardStats struct {
	TotalIncome  float64                 `json:"totalIncome"`
	TotalExpense float64                 `json:"totalExpense"`
	NetProfit    float64                 `json:"netProfit"`
	SalesChart   []repository.DailySales `json:"salesChart"`
	TopProducts  []repository.TopProduct `json:"topProducts"`
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
}

type dashboardService struct {
	txRepo      repository.TransactionRepository
	productRepo repository.ProductRepository
}

func NewDashboardService(txRepo repository.TransactionRepository, productRepo repository.ProductRepository) DashboardService {
	return &dashboardService{txRepo: txRepo, productRepo: productRepo}
}

// GetDashboardStats is a pure read over current state. An empty ledger and
// catalog yield zero totals and empty (not null) chart/ranking slices.
func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	income, err := s.txRepo.SumByType(model.TxIncome)
	if err != nil {
		return nil, err
	}

	expense, err := s.txRepo.SumByType(model.TxExpense)
	if err != nil {
		return nil, err
	}

	chart, err := s.txRepo.DailyIncome()
	if err != nil {
		return nil, err
	}

	topProducts, err := s.productRepo.TopSellers(TopProductLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalIncome:  income,
		TotalExpense: expense,
		NetProfit:    income - expense,
		SalesChart:   chart,
		TopProducts:  topProducts,
	}, nil
}
