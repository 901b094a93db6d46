package entity

import "github.com/shopspring/decimal"

// LineItem una línea de detalle de venta: producto, cantidad y precio.
// UnitPrice es un snapshot del precio de catálogo que puede incluir deriva
// histórica (±10% en ~5% de las líneas); Amount = Quantity × UnitPrice.
// ID se asigna de forma global y contigua recién cuando existe la tabla completa.
type LineItem struct {
	ID          int
	SaleID      int
	ProductID   int
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal

	// ForcedDuplicate marca líneas donde el motor tuvo que repetir un producto
	// porque ningún producto nuevo entraba en el presupuesto restante. El
	// validador excluye estas líneas del chequeo de duplicados.
	ForcedDuplicate bool
}
