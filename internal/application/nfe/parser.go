// Package nfe ingesta facturas de proveedor en formato XML (nota fiscal
// electrónica) y las convierte en entradas de stock con proveniencia: cada
// ítem de la factura termina en una llamada AddStock del ledger con la clave
// de acceso como referencia.
package nfe

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// Invoice es la representación mínima de la factura que el ledger necesita:
// clave de acceso, emisor e ítems con cantidad y costo unitario.
type Invoice struct {
	AccessKey string // clave de acceso de 44 dígitos
	Number    string
	Series    string
	IssuedAt  time.Time
	Supplier  InvoiceSupplier
	Items     []InvoiceItem
}

// InvoiceSupplier datos del emisor de la factura.
type InvoiceSupplier struct {
	TaxID string
	Name  string
	Email string
}

// InvoiceItem línea de la factura.
type InvoiceItem struct {
	Number      int
	ProductCode string
	Description string
	Unit        string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	Barcode     string
}

// ParseInvoice parsea el XML de una factura de proveedor. Estructura
// esperada (simplificada del layout de NFe):
//
//	<invoice key="...">
//	  <number>...</number> <series>...</series> <issued_at>RFC3339</issued_at>
//	  <supplier><tax_id/><name/><email/></supplier>
//	  <items><item n="1"><code/><description/><unit/><quantity/><unit_cost/><barcode/></item>...</items>
//	</invoice>
func ParseInvoice(xml []byte) (*Invoice, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xml); err != nil {
		return nil, fmt.Errorf("leer XML de factura: %w", err)
	}
	root := doc.SelectElement("invoice")
	if root == nil {
		return nil, fmt.Errorf("%w: elemento raíz <invoice> ausente", domain.ErrInvalidInput)
	}

	inv := &Invoice{
		AccessKey: strings.TrimSpace(root.SelectAttrValue("key", "")),
		Number:    elementText(root, "number"),
		Series:    elementText(root, "series"),
	}
	if !ValidateAccessKey(inv.AccessKey) {
		return nil, fmt.Errorf("%w: clave de acceso inválida", domain.ErrInvalidInput)
	}
	if raw := elementText(root, "issued_at"); raw != "" {
		issued, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha de emisión inválida", domain.ErrInvalidInput)
		}
		inv.IssuedAt = issued
	}

	if supplier := root.SelectElement("supplier"); supplier != nil {
		inv.Supplier = InvoiceSupplier{
			TaxID: elementText(supplier, "tax_id"),
			Name:  elementText(supplier, "name"),
			Email: elementText(supplier, "email"),
		}
	}
	if inv.Supplier.Name == "" || inv.Supplier.TaxID == "" {
		return nil, fmt.Errorf("%w: emisor incompleto", domain.ErrInvalidInput)
	}

	items := root.SelectElement("items")
	if items == nil || len(items.SelectElements("item")) == 0 {
		return nil, fmt.Errorf("%w: factura sin ítems", domain.ErrInvalidInput)
	}
	for i, el := range items.SelectElements("item") {
		item, err := parseItem(el, i+1)
		if err != nil {
			return nil, err
		}
		inv.Items = append(inv.Items, item)
	}
	return inv, nil
}

func parseItem(el *etree.Element, position int) (InvoiceItem, error) {
	qty, err := decimal.NewFromString(elementText(el, "quantity"))
	if err != nil || !qty.GreaterThan(decimal.Zero) {
		return InvoiceItem{}, fmt.Errorf("%w: cantidad inválida en ítem %d", domain.ErrInvalidInput, position)
	}
	cost, err := decimal.NewFromString(elementText(el, "unit_cost"))
	if err != nil || cost.LessThan(decimal.Zero) {
		return InvoiceItem{}, fmt.Errorf("%w: costo inválido en ítem %d", domain.ErrInvalidInput, position)
	}
	return InvoiceItem{
		Number:      position,
		ProductCode: elementText(el, "code"),
		Description: elementText(el, "description"),
		Unit:        elementText(el, "unit"),
		Quantity:    qty,
		UnitCost:    cost,
		Barcode:     elementText(el, "barcode"),
	}, nil
}

func elementText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// ValidateAccessKey valida la clave de acceso de 44 dígitos, incluido el
// dígito verificador módulo 11 de la posición final.
func ValidateAccessKey(key string) bool {
	if len(key) != 44 {
		return false
	}
	digits := make([]int, 44)
	for i, c := range key {
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}
	return digits[43] == accessKeyCheckDigit(digits[:43])
}

// accessKeyCheckDigit calcula el dígito verificador módulo 11 con pesos
// cíclicos 4,3,2,9,8,7,6,5,4,3,2.
func accessKeyCheckDigit(digits []int) int {
	weights := []int{4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i, d := range digits {
		sum += d * weights[i%len(weights)]
	}
	rem := sum % 11
	if rem == 0 || rem == 1 {
		return 0
	}
	return 11 - rem
}
