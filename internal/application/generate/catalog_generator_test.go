package generate_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/aurelion-datagen/internal/application/generate"
)

func TestCatalogGenerate_PreciosYIDs(t *testing.T) {
	gen := generate.NewCatalogGenerator(rand.New(rand.NewSource(42)))

	products := gen.Generate(100)
	require.Len(t, products, 100)

	min := decimal.NewFromInt(100)
	max := decimal.NewFromInt(5000)
	ten := decimal.NewFromInt(10)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.Empty(t, p.Popularity, "la popularidad la asigna el ranking, no el catálogo")
		assert.True(t, p.UnitPrice.GreaterThanOrEqual(min), "precio %s por debajo del piso", p.UnitPrice)
		assert.True(t, p.UnitPrice.LessThanOrEqual(max), "precio %s por encima del techo", p.UnitPrice)
		assert.True(t, p.UnitPrice.Mod(ten).IsZero(), "los precios van en pasos de 10")
	}
}

func TestCatalogGenerate_NombresUnicos(t *testing.T) {
	gen := generate.NewCatalogGenerator(rand.New(rand.NewSource(42)))

	seen := make(map[string]bool)
	for _, p := range gen.Generate(200) {
		assert.False(t, seen[p.Name], "nombre repetido: %s", p.Name)
		seen[p.Name] = true
	}
}

func TestCatalogGenerate_MismaSemillaMismoCatalogo(t *testing.T) {
	run := func() []string {
		gen := generate.NewCatalogGenerator(rand.New(rand.NewSource(7)))
		var names []string
		for _, p := range gen.Generate(100) {
			names = append(names, p.Name+" "+p.UnitPrice.String())
		}
		return names
	}

	assert.Equal(t, run(), run())
}
