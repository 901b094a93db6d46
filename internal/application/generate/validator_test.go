package generate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/aurelion-datagen/internal/application/generate"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

func line(id, saleID, productID, qty int, price int64, forced bool) entity.LineItem {
	unit := decimal.NewFromInt(price)
	return entity.LineItem{
		ID:              id,
		SaleID:          saleID,
		ProductID:       productID,
		Quantity:        qty,
		UnitPrice:       unit,
		Amount:          unit.Mul(decimal.NewFromInt(int64(qty))),
		ForcedDuplicate: forced,
	}
}

func TestValidate_DetectaDuplicadosNoForzados(t *testing.T) {
	items := []entity.LineItem{
		line(1, 1, 10, 1, 500, false),
		line(2, 1, 10, 2, 500, false), // repetido sin marca: hallazgo
		line(3, 1, 11, 1, 800, false),
		line(4, 2, 10, 1, 500, false),
	}

	report := generate.Validate(items)
	require.Len(t, report.Duplicates, 1)
	assert.Equal(t, 1, report.Duplicates[0].SaleID)
	assert.Equal(t, 10, report.Duplicates[0].ProductID)
	assert.Equal(t, 2, report.Duplicates[0].Lines)
}

func TestValidate_IgnoraDuplicadosForzados(t *testing.T) {
	items := []entity.LineItem{
		line(1, 1, 10, 1, 500, false),
		line(2, 1, 10, 1, 500, true), // sancionado por el motor: no es hallazgo
		line(3, 1, 10, 1, 500, true),
	}

	report := generate.Validate(items)
	assert.Empty(t, report.Duplicates)
}

func TestValidate_HallazgosOrdenados(t *testing.T) {
	items := []entity.LineItem{
		line(1, 3, 7, 1, 500, false),
		line(2, 3, 7, 1, 500, false),
		line(3, 1, 9, 1, 500, false),
		line(4, 1, 9, 1, 500, false),
		line(5, 1, 2, 1, 500, false),
		line(6, 1, 2, 1, 500, false),
	}

	report := generate.Validate(items)
	require.Len(t, report.Duplicates, 3)
	assert.Equal(t, generate.DuplicateFinding{SaleID: 1, ProductID: 2, Lines: 2}, report.Duplicates[0])
	assert.Equal(t, generate.DuplicateFinding{SaleID: 1, ProductID: 9, Lines: 2}, report.Duplicates[1])
	assert.Equal(t, generate.DuplicateFinding{SaleID: 3, ProductID: 7, Lines: 2}, report.Duplicates[2])
}

func TestValidate_EstadisticasDeLineasPorVenta(t *testing.T) {
	// venta 1: 1 línea, venta 2: 3, venta 3: 5, venta 4: 20
	var items []entity.LineItem
	id := 1
	for saleID, n := range map[int]int{1: 1, 2: 3, 3: 5, 4: 20} {
		for j := 0; j < n; j++ {
			items = append(items, line(id, saleID, 100+id, 1, 1000, false))
			id++
		}
	}

	report := generate.Validate(items)
	assert.Equal(t, 4, report.Sales)
	assert.Equal(t, 29, report.Lines)
	assert.Equal(t, 1, report.ItemCounts.Min)
	assert.Equal(t, 20, report.ItemCounts.Max)
	assert.InDelta(t, 7.25, report.ItemCounts.Mean, 1e-9)
	assert.InDelta(t, 4.0, report.ItemCounts.Median, 1e-9, "mediana par: promedio de los dos centrales")

	require.Len(t, report.Buckets, 4)
	assert.Equal(t, "1-3", report.Buckets[0].Label)
	assert.Equal(t, 2, report.Buckets[0].Count) // ventas 1 y 2
	assert.InDelta(t, 0.5, report.Buckets[0].Share, 1e-9)
	assert.InDelta(t, 0.30, report.Buckets[0].Target, 1e-9)
	assert.Equal(t, 1, report.Buckets[1].Count) // venta 3
	assert.Equal(t, 1, report.Buckets[3].Count) // venta 4
	assert.InDelta(t, 0.05, report.Buckets[3].Target, 1e-9)
}

func TestValidate_EstadisticasDeMontos(t *testing.T) {
	// totales por venta: 1000, 2000, 3000, 4000
	items := []entity.LineItem{
		line(1, 1, 10, 1, 1000, false),
		line(2, 2, 11, 2, 1000, false),
		line(3, 3, 12, 3, 1000, false),
		line(4, 4, 13, 4, 1000, false),
	}

	report := generate.Validate(items)
	assert.True(t, report.Amounts.Min.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.Amounts.Max.Equal(decimal.NewFromInt(4000)))
	assert.True(t, report.Amounts.Mean.Equal(decimal.NewFromInt(2500)))
	assert.True(t, report.Amounts.Median.Equal(decimal.NewFromInt(2500)))
}

func TestValidate_TablaVacia(t *testing.T) {
	report := generate.Validate(nil)
	assert.Zero(t, report.Sales)
	assert.Zero(t, report.Lines)
	assert.Empty(t, report.Duplicates)
}
