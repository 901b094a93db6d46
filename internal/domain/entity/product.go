package entity

import "github.com/shopspring/decimal"

// PopularityTier nivel de popularidad de un producto, asignado por ranking
// de un score calculado sobre el catálogo completo.
type PopularityTier string

const (
	TierEstrella PopularityTier = "estrella"
	TierAlta     PopularityTier = "alta"
	TierMedia    PopularityTier = "media"
	TierBaja     PopularityTier = "baja"
	TierMuyBaja  PopularityTier = "muy_baja"
)

// Product representa un producto del catálogo. Popularity se calcula una sola
// vez al inicio de la corrida; después el producto es inmutable.
type Product struct {
	ID         int
	Name       string
	Category   string
	UnitPrice  decimal.Decimal
	Popularity PopularityTier
}
