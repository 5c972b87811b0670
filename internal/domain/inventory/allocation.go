package inventory

import "github.com/shopspring/decimal"

// LineItem línea de una entrada de stock. Quantity y UnitPrice son la entrada;
// el resto de campos monetarios los calcula Allocate.
type LineItem struct {
	ProductID string
	VariantID string
	Notes     string

	Quantity  int64
	UnitPrice decimal.Decimal

	Subtotal           decimal.Decimal
	AllocatedTransport decimal.Decimal
	AllocatedOther     decimal.Decimal
	AllocatedTax       decimal.Decimal
	TotalCost          decimal.Decimal
	FinalUnitPrice     decimal.Decimal
}

// Charges cargos globales de la entrada que se prorratean entre las líneas.
type Charges struct {
	Transport decimal.Decimal
	Other     decimal.Decimal
	Tax       decimal.Decimal
}

// Allocate reparte los cargos en proporción al subtotal de cada línea:
//
//	subtotal_i   = qty_i × price_i
//	T            = Σ subtotal_i
//	ratio_i      = subtotal_i / T   (0 si T = 0)
//	allocated_i  = cargo × ratio_i
//	totalCost_i  = subtotal_i + transporte_i + otros_i + impuestos_i
//	finalUnit_i  = totalCost_i / qty_i   (0 si qty_i = 0)
//
// Con T = 0 los cargos no se reparten: todas las asignaciones quedan en 0.
// No valida signos; el llamador aplica ClampNonNegative a lo que ingresa el usuario.
// Siempre recalcula todas las líneas y devuelve un slice nuevo.
func Allocate(items []LineItem, charges Charges) []LineItem {
	out := make([]LineItem, len(items))
	total := decimal.Zero
	for i, it := range items {
		out[i] = LineItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Notes:     it.Notes,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  decimal.NewFromInt(it.Quantity).Mul(it.UnitPrice),
		}
		total = total.Add(out[i].Subtotal)
	}

	for i := range out {
		it := &out[i]
		it.AllocatedTransport = share(charges.Transport, it.Subtotal, total)
		it.AllocatedOther = share(charges.Other, it.Subtotal, total)
		it.AllocatedTax = share(charges.Tax, it.Subtotal, total)
		it.TotalCost = it.Subtotal.Add(it.AllocatedTransport).Add(it.AllocatedOther).Add(it.AllocatedTax)
		if it.Quantity > 0 {
			it.FinalUnitPrice = it.TotalCost.Div(decimal.NewFromInt(it.Quantity))
		} else {
			it.FinalUnitPrice = decimal.Zero
		}
	}
	return out
}

func share(charge, subtotal, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return charge.Mul(subtotal).Div(total)
}

// Totals suma de los campos calculados de todas las líneas.
type Totals struct {
	Subtotal  decimal.Decimal
	Transport decimal.Decimal
	Other     decimal.Decimal
	Tax       decimal.Decimal
	TotalCost decimal.Decimal
	Units     int64
}

// Sum acumula los totales de líneas ya asignadas.
func Sum(items []LineItem) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal = t.Subtotal.Add(it.Subtotal)
		t.Transport = t.Transport.Add(it.AllocatedTransport)
		t.Other = t.Other.Add(it.AllocatedOther)
		t.Tax = t.Tax.Add(it.AllocatedTax)
		t.TotalCost = t.TotalCost.Add(it.TotalCost)
		t.Units += it.Quantity
	}
	return t
}

// ClampNonNegative max(0, d).
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ClampNonNegativeInt max(0, n).
func ClampNonNegativeInt(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
