package sampling

import (
	"math/rand"

	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

// Pesos por tipo de compra en el orden de entity.PurchaseTypes
// (rapida_snack, diaria_basica, semanal, grande_mensual).
var (
	// efectivo tiende a compras chicas
	cashWeights = []float64{0.50, 0.40, 0.08, 0.02}
	// transferencia tiende a compras grandes
	transferWeights = []float64{0.10, 0.30, 0.40, 0.20}
)

// SelectPurchaseType elige el perfil de compra de una venta, sesgado por el
// medio de pago. Medios sin sesgo propio usan los pesos base de cada perfil.
func SelectPurchaseType(rng *rand.Rand, method entity.PaymentMethod) entity.PurchaseType {
	var weights []float64
	switch method {
	case entity.PaymentEfectivo:
		weights = cashWeights
	case entity.PaymentTransferencia:
		weights = transferWeights
	default:
		weights = make([]float64, len(entity.PurchaseTypes))
		for i, pt := range entity.PurchaseTypes {
			weights[i] = pt.Weight
		}
	}
	return entity.PurchaseTypes[PickWeighted(rng, weights)]
}
