package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

type SupplierRepo struct {
	mu        sync.RWMutex
	suppliers map[string]entity.Supplier
	offers    []entity.SupplierOffer
}

func NewSupplierRepository() *SupplierRepo {
	return &SupplierRepo{suppliers: make(map[string]entity.Supplier)}
}

// AddSupplier carga un proveedor en el catálogo en memoria.
func (r *SupplierRepo) AddSupplier(s entity.Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[s.ID] = s
}

// AddOffer carga una oferta proveedor-producto.
func (r *SupplierRepo) AddOffer(o entity.SupplierOffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers = append(r.offers, o)
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SupplierRepo) ListOffersByProduct(productID string) ([]repository.SupplierWithOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []repository.SupplierWithOffer
	for _, o := range r.offers {
		if o.ProductID != productID {
			continue
		}
		s, ok := r.suppliers[o.SupplierID]
		if !ok || !s.IsActive {
			continue
		}
		list = append(list, repository.SupplierWithOffer{Supplier: s, Offer: o})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Supplier.Name < list[j].Supplier.Name })
	return list, nil
}
