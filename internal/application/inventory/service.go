package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

// Service es la fachada transaccional del ledger: todo cambio de stock entra
// y sale por aquí. Cada mutación es una unidad atómica sobre el registro de
// un producto (fila bloqueada vía GetForUpdate) más, cuando hay cambio
// físico, un append al diario de movimientos en la misma transacción.
// Las reservas son compromisos, no flujo físico: no generan movimiento.
type Service struct {
	txRunner     TxRunner
	recordRepo   repository.InventoryRecordRepository
	movementRepo repository.MovementRepository
	log          *logger.Logger
}

// NewService construye la fachada de inventario. recordRepo y movementRepo se
// usan solo para lecturas puras fuera de transacción.
func NewService(txRunner TxRunner, recordRepo repository.InventoryRecordRepository, movementRepo repository.MovementRepository, log *logger.Logger) *Service {
	return &Service{txRunner: txRunner, recordRepo: recordRepo, movementRepo: movementRepo, log: log}
}

// AddStockInput entrada para AddStock.
type AddStockInput struct {
	ProductID  string
	Quantity   decimal.Decimal
	UnitCost   *decimal.Decimal // opcional; si viene, el movimiento lleva costo
	SupplierID string           // proveniencia opcional
	InvoiceKey string           // clave de factura de proveedor opcional
	UserID     string
}

// AddStock aumenta el stock físico y registra un movimiento PURCHASE.
// Crea el registro de forma perezosa si el producto aún no tiene.
// Si hay costo unitario, actualiza también el costo promedio del producto.
func (s *Service) AddStock(ctx context.Context, in AddStockInput) error {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.UnitCost != nil && in.UnitCost.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	s.log.Info().
		Str("product_id", in.ProductID).
		Str("quantity", in.Quantity.String()).
		Msg("entrada de stock")

	return s.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		recordRepo repository.InventoryRecordRepository,
		productRepo repository.ProductRepository,
	) error {
		record, err := recordRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if record == nil {
			record = entity.NewInventoryRecord(in.ProductID)
		}

		if in.UnitCost != nil {
			product, err := productRepo.GetByID(in.ProductID)
			if err != nil {
				return err
			}
			if product != nil {
				newCost := domaininv.WeightedAverageCost(record.Quantity, product.Cost, in.Quantity, *in.UnitCost)
				if err := productRepo.UpdateCost(in.ProductID, newCost); err != nil {
					return err
				}
			}
		}

		record.Add(in.Quantity)
		if err := recordRepo.Upsert(record); err != nil {
			return err
		}

		mov := entity.NewMovement(in.ProductID, entity.MovementTypePURCHASE, in.Quantity)
		if in.UnitCost != nil {
			mov.WithCost(*in.UnitCost)
		}
		if in.InvoiceKey != "" {
			mov.WithInvoiceKey(in.InvoiceKey)
		}
		mov.SupplierID = in.SupplierID
		mov.CreatedBy = in.UserID
		return movRepo.Append(mov)
	})
}

// RemoveStock descuenta stock físico por venta. Valida contra el disponible
// (no contra el total): una escasez creada por reservas no se puede saltar
// llamando remoción directa. Falla con ErrInsufficientStock sin cumplimiento
// parcial.
func (s *Service) RemoveStock(ctx context.Context, productID string, quantity decimal.Decimal, orderID, userID string) error {
	if productID == "" || !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	s.log.Info().
		Str("product_id", productID).
		Str("quantity", quantity.String()).
		Str("order_id", orderID).
		Msg("salida de stock")

	return s.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		recordRepo repository.InventoryRecordRepository,
		_ repository.ProductRepository,
	) error {
		record, err := recordRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		if err := record.Remove(quantity); err != nil {
			return err
		}
		if err := recordRepo.Upsert(record); err != nil {
			return err
		}
		mov := entity.NewMovement(productID, entity.MovementTypeSALE, quantity)
		mov.OrderID = orderID
		mov.CreatedBy = userID
		return movRepo.Append(mov)
	})
}

// ReturnStock reingresa unidades devueltas por un cliente. Mismo efecto
// físico que una entrada, registrado como RETURN atado al pedido original.
func (s *Service) ReturnStock(ctx context.Context, productID string, quantity decimal.Decimal, orderID, userID string) error {
	if productID == "" || !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	s.log.Info().
		Str("product_id", productID).
		Str("quantity", quantity.String()).
		Str("order_id", orderID).
		Msg("devolución de stock")

	return s.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		recordRepo repository.InventoryRecordRepository,
		_ repository.ProductRepository,
	) error {
		record, err := recordRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if record == nil {
			record = entity.NewInventoryRecord(productID)
		}
		record.Add(quantity)
		if err := recordRepo.Upsert(record); err != nil {
			return err
		}
		mov := entity.NewMovement(productID, entity.MovementTypeRETURN, quantity)
		mov.OrderID = orderID
		mov.CreatedBy = userID
		return movRepo.Append(mov)
	})
}

// Reserve compromete unidades para un pedido. La reserva es un apartado, no
// un cambio físico: no se registra movimiento. Usa el mismo umbral de
// disponibilidad que RemoveStock.
func (s *Service) Reserve(ctx context.Context, productID string, quantity decimal.Decimal, orderID string) error {
	if productID == "" || orderID == "" || !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	s.log.Info().
		Str("product_id", productID).
		Str("quantity", quantity.String()).
		Str("order_id", orderID).
		Msg("reserva de stock")

	return s.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		recordRepo repository.InventoryRecordRepository,
		_ repository.ProductRepository,
	) error {
		record, err := recordRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		if err := record.Reserve(quantity); err != nil {
			return err
		}
		return recordRepo.Upsert(record)
	})
}

// ReleaseReservation libera una reserva con piso en cero. Nunca falla por
// doble liberación ni por carrera con un consumo previo; sin registro aún,
// no hay nada que liberar.
func (s *Service) ReleaseReservation(ctx context.Context, productID string, quantity decimal.Decimal) error {
	if productID == "" || quantity.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	s.log.Info().
		Str("product_id", productID).
		Str("quantity", quantity.String()).
		Msg("liberación de reserva")

	return s.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		recordRepo repository.InventoryRecordRepository,
		_ repository.ProductRepository,
	) error {
		record, err := recordRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if record == nil {
			return nil
		}
		record.ReleaseReservation(quantity)
		return recordRepo.Upsert(record)
	})
}

// AdjustStock fija la cantidad física en una corrección manual y registra un
// movimiento ADJUSTMENT con la magnitud del cambio, el motivo y el actor.
func (s *Service) AdjustStock(ctx context.Context, productID string, newQuantity decimal.Decimal, reason, userID string) error {
	if productID == "" || reason == "" || newQuantity.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	s.log.Warn().
		Str("product_id", productID).
		Str("new_quantity", newQuantity.String()).
		Str("reason", reason).
		Msg("ajuste manual de stock")

	return s.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		recordRepo repository.InventoryRecordRepository,
		_ repository.ProductRepository,
	) error {
		record, err := recordRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if record == nil {
			record = entity.NewInventoryRecord(productID)
		}
		diff := record.SetQuantity(newQuantity)
		if err := recordRepo.Upsert(record); err != nil {
			return err
		}
		mov := entity.NewMovement(productID, entity.MovementTypeADJUSTMENT, diff)
		mov.Notes = reason
		mov.CreatedBy = userID
		return movRepo.Append(mov)
	})
}

// RegisterLoss descuenta stock por pérdida o merma. Mismo umbral que
// RemoveStock; motivo y actor son obligatorios.
func (s *Service) RegisterLoss(ctx context.Context, productID string, quantity decimal.Decimal, reason, userID string) error {
	if productID == "" || reason == "" || userID == "" || !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	s.log.Warn().
		Str("product_id", productID).
		Str("quantity", quantity.String()).
		Str("reason", reason).
		Msg("pérdida de stock registrada")

	return s.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		recordRepo repository.InventoryRecordRepository,
		_ repository.ProductRepository,
	) error {
		record, err := recordRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		if err := record.Remove(quantity); err != nil {
			return err
		}
		if err := recordRepo.Upsert(record); err != nil {
			return err
		}
		mov := entity.NewMovement(productID, entity.MovementTypeLOSS, quantity)
		mov.Notes = reason
		mov.CreatedBy = userID
		return movRepo.Append(mov)
	})
}

// CheckAvailability indica si hay disponible suficiente para la cantidad
// pedida. Lectura pura; ErrNotFound si el producto no tiene registro.
func (s *Service) CheckAvailability(ctx context.Context, productID string, quantity decimal.Decimal) (bool, error) {
	record, err := s.recordRepo.Get(productID)
	if err != nil {
		return false, err
	}
	if record == nil {
		return false, domain.ErrNotFound
	}
	return record.Available.GreaterThanOrEqual(quantity), nil
}

// GetAvailableQuantity devuelve el disponible actual del producto.
// ErrNotFound si el producto no tiene registro todavía.
func (s *Service) GetAvailableQuantity(ctx context.Context, productID string) (decimal.Decimal, error) {
	record, err := s.recordRepo.Get(productID)
	if err != nil {
		return decimal.Zero, err
	}
	if record == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	return record.Available, nil
}

// ListMovements devuelve el historial del diario de un producto, más
// reciente primero, con filtro opcional por rango de fechas.
func (s *Service) ListMovements(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.movementRepo.ListByProduct(productID, from, to, limit, offset)
}

// GetRecord devuelve el registro completo del producto. ErrNotFound si no existe.
func (s *Service) GetRecord(ctx context.Context, productID string) (*entity.InventoryRecord, error) {
	record, err := s.recordRepo.Get(productID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}
