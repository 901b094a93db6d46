package generate

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

// Pools de nombres por categoría para el catálogo de demostración. Incluyen
// los básicos esenciales (coca, agua, leche, pan, yerba, café) que el ranking
// de popularidad premia.
var productPools = []struct {
	category string
	names    []string
}{
	{"Alimentos", []string{
		"Pan Lactal", "Leche Entera", "Yerba Mate", "Café Molido", "Arroz Largo Fino",
		"Fideos Spaghetti", "Azúcar", "Harina 0000", "Galletitas Surtidas", "Queso Cremoso",
		"Manteca", "Yogur Bebible", "Dulce de Leche", "Aceite de Girasol", "Mermelada de Durazno",
	}},
	{"Bebidas", []string{
		"Coca Cola", "Agua Mineral", "Jugo de Naranja", "Gaseosa Lima Limón",
		"Cerveza Rubia", "Vino Tinto", "Soda", "Agua Saborizada",
	}},
	{"Limpieza", []string{
		"Lavandina", "Detergente", "Jabón en Polvo", "Esponja Multiuso",
		"Papel Higiénico", "Rollo de Cocina", "Desodorante de Ambiente",
	}},
	{"Perfumería", []string{
		"Shampoo", "Jabón de Tocador", "Pasta Dental", "Desodorante", "Crema de Manos",
	}},
}

// CatalogGenerator produce el catálogo de demostración cuando no se configura
// un archivo externo. Precios uniformes en [100, 5000] redondeados a decenas.
type CatalogGenerator struct {
	rng *rand.Rand
}

// NewCatalogGenerator construye el generador sobre un rand ya sembrado.
func NewCatalogGenerator(rng *rand.Rand) *CatalogGenerator {
	return &CatalogGenerator{rng: rng}
}

// Generate crea count productos con IDs secuenciales desde 1. La popularidad
// queda sin asignar: eso es responsabilidad del ranking posterior.
func (g *CatalogGenerator) Generate(count int) []entity.Product {
	products := make([]entity.Product, 0, count)
	for i := 0; i < count; i++ {
		pool := productPools[g.rng.Intn(len(productPools))]
		base := pool.names[g.rng.Intn(len(pool.names))]
		price := 100 + 10*g.rng.Intn(491) // 100..5000 en pasos de 10

		products = append(products, entity.Product{
			ID:        i + 1,
			Name:      fmt.Sprintf("%s %d", base, i+1),
			Category:  pool.category,
			UnitPrice: decimal.NewFromInt(int64(price)),
		})
	}
	return products
}
