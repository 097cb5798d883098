package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

const topProductCount = 5

// ReportUseCase the admin sales summary, computed over the full order set.
type ReportUseCase struct {
	repo repository.OrderRepository
}

// NewReportUseCase builds the use case.
func NewReportUseCase(repo repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Summary aggregates order counts, revenue and best sellers. Revenue sums the
// total of every order regardless of status; cancelled orders stay in the sum.
func (uc *ReportUseCase) Summary() (*dto.ReportSummaryResponse, error) {
	orders, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}

	out := &dto.ReportSummaryResponse{
		TotalOrders: len(orders),
		Revenue:     decimal.Zero,
		TopProducts: []dto.TopProductEntry{},
	}
	quantities := make(map[string]int)
	for _, o := range orders {
		switch o.Status {
		case entity.StatusPending:
			out.PendingOrders++
		case entity.StatusDelivered:
			out.DeliveredOrders++
		}
		out.Revenue = out.Revenue.Add(o.Total)
		for _, item := range o.Items {
			quantities[item.Name] += item.Quantity
		}
	}

	ranking := make([]dto.TopProductEntry, 0, len(quantities))
	for name, qty := range quantities {
		ranking = append(ranking, dto.TopProductEntry{Name: name, Quantity: qty})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return ranking[i].Name < ranking[j].Name
	})
	if len(ranking) > topProductCount {
		ranking = ranking[:topProductCount]
	}
	out.TopProducts = ranking
	return out, nil
}
