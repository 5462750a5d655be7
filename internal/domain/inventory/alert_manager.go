package inventory

import (
	"sort"
	"sync"
)

// AlertManager mantiene el conjunto de alertas vigentes de la sesión,
// indexado por ID. Es una capa de conveniencia, no fuente de verdad:
// reconstruirlo desde el ledger debe ser posible e idempotente (ver
// Rebuild). Seguro para uso concurrente.
type AlertManager struct {
	mu     sync.RWMutex
	alerts map[string]*StockAlert
}

// NewAlertManager construye el manager vacío.
func NewAlertManager() *AlertManager {
	return &AlertManager{alerts: make(map[string]*StockAlert)}
}

// Add incorpora una alerta al conjunto.
func (m *AlertManager) Add(alert *StockAlert) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts[alert.ID] = alert
}

// Rebuild reemplaza el conjunto completo por las alertas recién derivadas
// del ledger. Idempotente: dos reconstrucciones seguidas dejan el mismo estado.
func (m *AlertManager) Rebuild(alerts []*StockAlert) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = make(map[string]*StockAlert, len(alerts))
	for _, a := range alerts {
		m.alerts[a.ID] = a
	}
}

// Get devuelve la alerta por ID, o nil si no existe.
func (m *AlertManager) Get(id string) *StockAlert {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.alerts[id]
}

// CriticalAlerts devuelve las alertas críticas sin atender.
func (m *AlertManager) CriticalAlerts() []*StockAlert {
	return m.filter(func(a *StockAlert) bool {
		return a.Level == AlertLevelCritical && !a.Acknowledged
	})
}

// HighPriorityAlerts devuelve las alertas críticas y altas sin atender.
func (m *AlertManager) HighPriorityAlerts() []*StockAlert {
	return m.filter(func(a *StockAlert) bool {
		return (a.Level == AlertLevelCritical || a.Level == AlertLevelHigh) && !a.Acknowledged
	})
}

// AllUnacknowledged devuelve todas las alertas sin atender.
func (m *AlertManager) AllUnacknowledged() []*StockAlert {
	return m.filter(func(a *StockAlert) bool {
		return !a.Acknowledged
	})
}

// Acknowledge marca una alerta como atendida. Devuelve false si no existe.
func (m *AlertManager) Acknowledge(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.alerts[id]
	if !ok {
		return false
	}
	a.Acknowledge()
	return true
}

// ClearAcknowledged elimina del conjunto las alertas ya atendidas.
func (m *AlertManager) ClearAcknowledged() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, a := range m.alerts {
		if a.Acknowledged {
			delete(m.alerts, id)
		}
	}
}

// Count devuelve el número de alertas sin atender.
func (m *AlertManager) Count() int {
	return len(m.AllUnacknowledged())
}

// CriticalCount devuelve el número de alertas críticas sin atender.
func (m *AlertManager) CriticalCount() int {
	return len(m.CriticalAlerts())
}

func (m *AlertManager) filter(keep func(*StockAlert) bool) []*StockAlert {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*StockAlert, 0, len(m.alerts))
	for _, a := range m.alerts {
		if keep(a) {
			out = append(out, a)
		}
	}
	// Orden estable para respuestas deterministas: más reciente primero.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
