package sampling

import (
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

var (
	cheapBelow = decimal.NewFromInt(2000)
	midBelow   = decimal.NewFromInt(4000)
)

// Quantity devuelve una cantidad realista para un producto según su precio y
// el tipo de compra: productos baratos en canastas grandes admiten muchas
// unidades; productos caros en compras chicas van siempre de a uno.
func Quantity(rng *rand.Rand, unitPrice decimal.Decimal, pt entity.PurchaseType) int {
	switch {
	case unitPrice.LessThan(cheapBelow):
		switch pt.Name {
		case entity.PurchaseRapidaSnack:
			return randBetween(rng, 1, 2)
		case entity.PurchaseDiariaBasica:
			return randBetween(rng, 1, 4)
		case entity.PurchaseSemanal:
			return randBetween(rng, 2, 8)
		default: // grande_mensual
			return randBetween(rng, 3, 12)
		}
	case unitPrice.LessThan(midBelow):
		switch pt.Name {
		case entity.PurchaseRapidaSnack, entity.PurchaseDiariaBasica:
			return randBetween(rng, 1, 2)
		case entity.PurchaseSemanal:
			return randBetween(rng, 1, 4)
		default:
			return randBetween(rng, 2, 6)
		}
	default:
		switch pt.Name {
		case entity.PurchaseRapidaSnack, entity.PurchaseDiariaBasica:
			return 1
		default:
			return randBetween(rng, 1, 3)
		}
	}
}
