package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]entity.Product
	bySKU    map[string]string // sku -> id
}

func NewProductRepository() *ProductRepo {
	return &ProductRepo{
		products: make(map[string]entity.Product),
		bySKU:    make(map[string]string),
	}
}

func (r *ProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySKU[p.SKU]; ok {
		return fmt.Errorf("%w: sku %s", domain.ErrDuplicate, p.SKU)
	}
	r.products[p.ID] = *p
	r.bySKU[p.SKU] = p.ID
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bySKU[sku]
	if !ok {
		return nil, nil
	}
	p := r.products[id]
	return &p, nil
}

func (r *ProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	p.Cost = cost
	r.products[productID] = p
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	var list []*entity.Product
	for i := range all {
		if i < offset {
			continue
		}
		if len(list) >= limit {
			break
		}
		p := all[i]
		list = append(list, &p)
	}
	return list, nil
}
