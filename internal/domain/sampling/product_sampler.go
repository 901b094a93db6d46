package sampling

import (
	"math/rand"

	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

// Probabilidad de selección por nivel de popularidad. El orden importa:
// define el orden de extracción sobre el generador.
var tierWeights = []struct {
	tier   entity.PopularityTier
	weight float64
}{
	{entity.TierEstrella, 0.45},
	{entity.TierAlta, 0.30},
	{entity.TierMedia, 0.15},
	{entity.TierBaja, 0.08},
	{entity.TierMuyBaja, 0.02},
}

// SampleProduct extrae un producto del pool de candidatos: primero sortea un
// nivel de popularidad y luego elige uniforme dentro de ese nivel. Si el pool
// no tiene productos del nivel sorteado, elige uniforme sobre todo el pool.
// El pool es un parámetro del caller (cambia en cada extracción) y no debe
// estar vacío.
func SampleProduct(rng *rand.Rand, pool []entity.Product) entity.Product {
	weights := make([]float64, len(tierWeights))
	for i, tw := range tierWeights {
		weights[i] = tw.weight
	}
	chosen := tierWeights[PickWeighted(rng, weights)].tier

	var matching []entity.Product
	for _, p := range pool {
		if p.Popularity == chosen {
			matching = append(matching, p)
		}
	}
	if len(matching) == 0 {
		matching = pool
	}
	return matching[rng.Intn(len(matching))]
}
