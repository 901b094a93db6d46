package catalog_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/aurelion-datagen/internal/domain"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/catalog"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

// catálogo uniforme: todos los productos con el mismo score, para verificar
// el corte de bandas por posición y la estabilidad de los empates.
func uniformCatalog(n int) []entity.Product {
	products := make([]entity.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, entity.Product{
			ID:        i + 1,
			Name:      fmt.Sprintf("Producto %d", i+1),
			Category:  "Limpieza",
			UnitPrice: decimal.NewFromInt(3000),
		})
	}
	return products
}

func tierCounts(products []entity.Product) map[entity.PopularityTier]int {
	counts := make(map[entity.PopularityTier]int)
	for _, p := range products {
		counts[p.Popularity]++
	}
	return counts
}

func TestRankByPopularity_TamanosDeBanda(t *testing.T) {
	ranked, err := catalog.RankByPopularity(uniformCatalog(90))
	require.NoError(t, err)

	counts := tierCounts(ranked)
	assert.Equal(t, 10, counts[entity.TierEstrella])
	assert.Equal(t, 20, counts[entity.TierAlta])
	assert.Equal(t, 30, counts[entity.TierMedia])
	assert.Equal(t, 25, counts[entity.TierBaja])
	assert.Equal(t, 5, counts[entity.TierMuyBaja], "el resto del catálogo debe ser muy_baja")
}

func TestRankByPopularity_EmpatesConservanOrden(t *testing.T) {
	// todos los scores son iguales: las bandas deben respetar el orden original
	ranked, err := catalog.RankByPopularity(uniformCatalog(90))
	require.NoError(t, err)

	for i, p := range ranked {
		assert.Equal(t, i+1, p.ID, "con scores empatados el orden del catálogo no debe cambiar")
	}
	assert.Equal(t, entity.TierEstrella, ranked[9].Popularity)
	assert.Equal(t, entity.TierAlta, ranked[10].Popularity)
	assert.Equal(t, entity.TierMuyBaja, ranked[89].Popularity)
}

func TestRankByPopularity_BasicosVanPrimero(t *testing.T) {
	products := uniformCatalog(90)
	// diez productos básicos, baratos y de Alimentos: score máximo
	for i := 80; i < 90; i++ {
		products[i].Name = fmt.Sprintf("Leche Entera %d", i+1)
		products[i].Category = "Alimentos"
		products[i].UnitPrice = decimal.NewFromInt(1000)
	}

	ranked, err := catalog.RankByPopularity(products)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, entity.TierEstrella, ranked[i].Popularity)
		assert.Contains(t, ranked[i].Name, "Leche", "los básicos esenciales deben encabezar el ranking")
	}
}

func TestRankByPopularity_CaroCaeAlFondo(t *testing.T) {
	products := uniformCatalog(90)
	products[0].UnitPrice = decimal.NewFromInt(5000) // sin bonus de precio y con penalidad

	ranked, err := catalog.RankByPopularity(products)
	require.NoError(t, err)

	assert.Equal(t, 1, ranked[89].ID, "el único producto penalizado debe quedar último")
	assert.Equal(t, entity.TierMuyBaja, ranked[89].Popularity)
}

func TestRankByPopularity_CatalogoChicoEsError(t *testing.T) {
	_, err := catalog.RankByPopularity(uniformCatalog(84))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogTooSmall)
	assert.Contains(t, err.Error(), "84", "el error debe informar el tamaño ofensivo")
}

func TestRankByPopularity_NoMutaElCatalogoDelCaller(t *testing.T) {
	products := uniformCatalog(90)
	products[5].UnitPrice = decimal.NewFromInt(100)

	_, err := catalog.RankByPopularity(products)
	require.NoError(t, err)

	for _, p := range products {
		assert.Empty(t, p.Popularity, "el slice de entrada no debe anotarse")
	}
	assert.Equal(t, 6, products[5].ID, "el orden de entrada no debe cambiar")
}
