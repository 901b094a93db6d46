// Package catalog implementa el ranking de popularidad del catálogo de
// productos (servicio de dominio puro: no muta el catálogo del caller).
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/aurelion-datagen/internal/domain"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

// Productos básicos esenciales: si el nombre contiene alguno, suma puntaje.
var stapleKeywords = []string{"coca", "agua", "leche", "pan", "yerba", "café"}

// Tamaños de las bandas de ranking, de estrella a baja; el resto es muy_baja.
var bandSizes = []struct {
	size int
	tier entity.PopularityTier
}{
	{10, entity.TierEstrella},
	{20, entity.TierAlta},
	{30, entity.TierMedia},
	{25, entity.TierBaja},
}

// MinCatalogSize mínimo de productos para poder cortar las cuatro bandas fijas.
const MinCatalogSize = 85

var (
	price2000 = decimal.NewFromInt(2000)
	price3500 = decimal.NewFromInt(3500)
	price4500 = decimal.NewFromInt(4500)
)

// RankByPopularity calcula el score de cada producto, ordena descendente
// (estable: empates conservan el orden del catálogo) y particiona en bandas
// contiguas 10/20/30/25/resto => estrella/alta/media/baja/muy_baja.
// Devuelve un catálogo nuevo anotado; el slice de entrada queda intacto.
// Catálogos con menos de MinCatalogSize productos son un error de configuración.
func RankByPopularity(products []entity.Product) ([]entity.Product, error) {
	if len(products) < MinCatalogSize {
		return nil, fmt.Errorf("%w: %d productos, se requieren al menos %d",
			domain.ErrCatalogTooSmall, len(products), MinCatalogSize)
	}

	ranked := make([]entity.Product, len(products))
	copy(ranked, products)

	scores := make(map[int]int, len(ranked))
	for _, p := range ranked {
		scores[p.ID] = popularityScore(p)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})

	idx := 0
	for _, band := range bandSizes {
		for n := 0; n < band.size; n++ {
			ranked[idx].Popularity = band.tier
			idx++
		}
	}
	for ; idx < len(ranked); idx++ {
		ranked[idx].Popularity = entity.TierMuyBaja
	}

	return ranked, nil
}

// popularityScore puntúa la "deseabilidad" de un producto:
// +3 nombre básico esencial, +2 precio < 2000 (o +1 si 2000–3499),
// +1 categoría Alimentos, -1 precio > 4500.
func popularityScore(p entity.Product) int {
	score := 0

	name := strings.ToLower(p.Name)
	for _, kw := range stapleKeywords {
		if strings.Contains(name, kw) {
			score += 3
			break
		}
	}

	switch {
	case p.UnitPrice.LessThan(price2000):
		score += 2
	case p.UnitPrice.LessThan(price3500):
		score++
	}

	if p.Category == "Alimentos" {
		score++
	}
	if p.UnitPrice.GreaterThan(price4500) {
		score--
	}

	return score
}
