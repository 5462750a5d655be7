package repository

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// SupplierRepository define el puerto de lectura del catálogo de proveedores.
// Entrada de solo lectura para el motor de reposición.
type SupplierRepository interface {
	GetByID(id string) (*entity.Supplier, error)
	// ListOffersByProduct devuelve proveedor + oferta de los proveedores
	// activos que ofrecen el producto.
	ListOffersByProduct(productID string) ([]SupplierWithOffer, error)
}

// SupplierWithOffer empareja un proveedor con su oferta para un producto.
type SupplierWithOffer struct {
	Supplier entity.Supplier
	Offer    entity.SupplierOffer
}
