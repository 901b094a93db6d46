package entity

import "github.com/shopspring/decimal"

// Nombres de los perfiles de compra.
const (
	PurchaseRapidaSnack   = "rapida_snack"
	PurchaseDiariaBasica  = "diaria_basica"
	PurchaseSemanal       = "semanal"
	PurchaseGrandeMensual = "grande_mensual"
)

// tolerancia del 10% sobre el techo monetario
var budgetTolerance = decimal.New(11, -1)

// PurchaseType perfil de canasta: cuántos productos distintos y cuánto dinero
// debería involucrar una venta sintética. Weight es el peso base para la
// elección aleatoria cuando el medio de pago no impone un sesgo propio.
type PurchaseType struct {
	Name      string
	MinItems  int
	MaxItems  int
	MinAmount decimal.Decimal // piso objetivo, no se fuerza
	MaxAmount decimal.Decimal // techo antes de tolerancia
	Weight    float64
}

// Ceiling devuelve el techo monetario efectivo (MaxAmount × 1.1).
func (pt PurchaseType) Ceiling() decimal.Decimal {
	return pt.MaxAmount.Mul(budgetTolerance)
}

// PurchaseTypes perfiles fijos, en el orden que usan los vectores de pesos
// de la selección por medio de pago. No configurables en runtime.
var PurchaseTypes = []PurchaseType{
	{
		Name:      PurchaseRapidaSnack,
		MinItems:  1,
		MaxItems:  3,
		MinAmount: decimal.NewFromInt(500),
		MaxAmount: decimal.NewFromInt(2000),
		Weight:    0.30,
	},
	{
		Name:      PurchaseDiariaBasica,
		MinItems:  3,
		MaxItems:  8,
		MinAmount: decimal.NewFromInt(2000),
		MaxAmount: decimal.NewFromInt(5000),
		Weight:    0.40,
	},
	{
		Name:      PurchaseSemanal,
		MinItems:  8,
		MaxItems:  15,
		MinAmount: decimal.NewFromInt(5000),
		MaxAmount: decimal.NewFromInt(12000),
		Weight:    0.25,
	},
	{
		Name:      PurchaseGrandeMensual,
		MinItems:  15,
		MaxItems:  25,
		MinAmount: decimal.NewFromInt(12000),
		MaxAmount: decimal.NewFromInt(25000),
		Weight:    0.05,
	},
}
