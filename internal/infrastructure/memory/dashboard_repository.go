package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*dashboardRepo)(nil)

type dashboardRepo struct {
	store *Store
}

func (r *dashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.products)), nil
}

func (r *dashboardRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, p := range r.store.products {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *dashboardRepo) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	total := decimal.Zero
	for _, p := range r.store.products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(p.Stock)))
	}
	return total, nil
}

func (r *dashboardRepo) TopSellers(ctx context.Context, since time.Time, limit int) ([]repository.TopSellerResult, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sold := make(map[string]int64)
	for _, m := range r.store.movements {
		if m.Type != entity.MovementTypeOut || m.Reason != entity.ReasonSale {
			continue
		}
		if m.OccurredAt.Before(since) {
			continue
		}
		sold[m.ProductID] += m.Quantity
	}

	out := make([]repository.TopSellerResult, 0, len(sold))
	for id, qty := range sold {
		res := repository.TopSellerResult{ProductID: id, TotalSold: qty}
		if p, ok := r.store.products[id]; ok {
			res.ProductName = p.Name
			res.ProductCode = p.Code
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSold != out[j].TotalSold {
			return out[i].TotalSold > out[j].TotalSold
		}
		return out[i].ProductID < out[j].ProductID
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *dashboardRepo) CriticalStock(ctx context.Context, limit int) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var critical []*entity.Product
	for _, p := range r.store.products {
		if p.Stock <= p.MinStock {
			clone := *p
			if c, ok := r.store.categories[p.CategoryID]; ok {
				clone.CategoryName = c.Name
			}
			critical = append(critical, &clone)
		}
	}
	sort.Slice(critical, func(i, j int) bool {
		if critical[i].Stock != critical[j].Stock {
			return critical[i].Stock < critical[j].Stock
		}
		return critical[i].Code < critical[j].Code
	})
	if limit > 0 && limit < len(critical) {
		critical = critical[:limit]
	}
	return critical, nil
}

func (r *dashboardRepo) CategoryDistribution(ctx context.Context) ([]repository.CategoryDistributionResult, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byCategory := make(map[string]*repository.CategoryDistributionResult, len(r.store.categories))
	for id, c := range r.store.categories {
		byCategory[id] = &repository.CategoryDistributionResult{
			CategoryID:   id,
			CategoryName: c.Name,
			TotalValue:   decimal.Zero,
		}
	}
	for _, p := range r.store.products {
		res, ok := byCategory[p.CategoryID]
		if !ok {
			continue
		}
		res.ProductCount++
		res.TotalValue = res.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(p.Stock)))
	}
	out := make([]repository.CategoryDistributionResult, 0, len(byCategory))
	for _, res := range byCategory {
		out = append(out, *res)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductCount != out[j].ProductCount {
			return out[i].ProductCount > out[j].ProductCount
		}
		return out[i].CategoryName < out[j].CategoryName
	})
	return out, nil
}
