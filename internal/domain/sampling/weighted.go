// Package sampling agrupa los muestreos aleatorios elementales de la
// generación: elección de tipo de compra, de producto y de cantidad.
// Todas las funciones reciben el *rand.Rand explícitamente; el orden de las
// extracciones es parte del contrato de reproducibilidad.
package sampling

import "math/rand"

// PickWeighted elige un índice con probabilidad proporcional a su peso.
// Los pesos deben ser no negativos y sumar más que cero.
func PickWeighted(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// randBetween entero uniforme en [min, max].
func randBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
