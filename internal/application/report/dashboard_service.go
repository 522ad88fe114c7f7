package report

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/hr"
	"github.com/bizdesk/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// DashboardStats is the headline figure set for the dashboard
type DashboardStats struct {
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
	ProductCount  int64           `json:"product_count"`
	EmployeeCount int64           `json:"employee_count"`
}

// DashboardService aggregates headline figures across contexts
type DashboardService struct {
	documentRepo trade.DocumentRepository
	productRepo  catalog.ProductRepository
	employeeRepo hr.EmployeeRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(documentRepo trade.DocumentRepository, productRepo catalog.ProductRepository, employeeRepo hr.EmployeeRepository) *DashboardService {
	return &DashboardService{
		documentRepo: documentRepo,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
	}
}

// Stats computes the dashboard figures. Revenue sums outbound invoice totals,
// expenses sums inbound invoice totals.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	revenue, err := s.documentRepo.SumTotalByType(ctx, trade.DocumentTypeInvoiceOut)
	if err != nil {
		return nil, err
	}
	expenses, err := s.documentRepo.SumTotalByType(ctx, trade.DocumentTypeInvoiceIn)
	if err != nil {
		return nil, err
	}
	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	employeeCount, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Revenue:       revenue,
		Expenses:      expenses,
		ProductCount:  productCount,
		EmployeeCount: employeeCount,
	}, nil
}
