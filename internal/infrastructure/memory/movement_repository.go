package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo diario de movimientos en memoria, append-only.
type MovementRepo struct {
	mu        sync.RWMutex
	movements []entity.Movement
	byID      map[string]int
}

func NewMovementRepository() *MovementRepo {
	return &MovementRepo{byID: make(map[string]int)}
}

func (r *MovementRepo) Append(m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[m.ID] = len(r.movements)
	r.movements = append(r.movements, *m)
	return nil
}

func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	m := r.movements[idx]
	return &m, nil
}

func (r *MovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []entity.Movement
	for _, m := range r.movements {
		if m.ProductID != productID {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		matched = append(matched, m)
	}
	// más reciente primero, como la consulta SQL equivalente
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	var list []*entity.Movement
	for i := range matched {
		if i < offset {
			continue
		}
		if len(list) >= limit {
			break
		}
		m := matched[i]
		list = append(list, &m)
	}
	return list, nil
}

// CountByProduct cantidad de movimientos registrados para un producto.
func (r *MovementRepo) CountByProduct(productID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, m := range r.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n
}
