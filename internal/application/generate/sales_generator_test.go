package generate_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/aurelion-datagen/internal/application/generate"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

func sampleCustomers(n int, start, end time.Time) []entity.Customer {
	rng := rand.New(rand.NewSource(1))
	days := int(end.Sub(start).Hours() / 24)
	customers := make([]entity.Customer, 0, n)
	for i := 0; i < n; i++ {
		customers = append(customers, entity.Customer{
			ID:         i + 1,
			Name:       fmt.Sprintf("Cliente %d", i+1),
			Email:      fmt.Sprintf("cliente%d@gmail.com", i+1),
			City:       "Palermo",
			SignupDate: start.AddDate(0, 0, rng.Intn(days+1)),
		})
	}
	return customers
}

func TestSalesGenerate_PrimeraCompraCercaDelAlta(t *testing.T) {
	start, end := businessWindow()
	customers := sampleCustomers(200, start, end)
	gen := generate.NewSalesGenerator(rand.New(rand.NewSource(42)), end)

	sales := gen.Generate(customers)
	require.NotEmpty(t, sales)

	first := make(map[int]time.Time)
	for _, s := range sales {
		if cur, ok := first[s.CustomerID]; !ok || s.Date.Before(cur) {
			first[s.CustomerID] = s.Date
		}
	}

	for _, c := range customers {
		date, ok := first[c.ID]
		require.True(t, ok, "el cliente %d quedó sin ventas", c.ID)
		assert.False(t, date.Before(c.SignupDate), "cliente %d compró antes del alta", c.ID)
		assert.LessOrEqual(t, date.Sub(c.SignupDate), 48*time.Hour,
			"la primera compra del cliente %d debe caer dentro de las 48 h del alta", c.ID)
	}
}

func TestSalesGenerate_OrdenCronologicoEIDsContiguos(t *testing.T) {
	start, end := businessWindow()
	gen := generate.NewSalesGenerator(rand.New(rand.NewSource(42)), end)

	sales := gen.Generate(sampleCustomers(200, start, end))
	for i, s := range sales {
		assert.Equal(t, i+1, s.ID)
		if i > 0 {
			assert.False(t, s.Date.Before(sales[i-1].Date), "la tabla debe quedar ordenada por fecha")
		}
	}
}

func TestSalesGenerate_DatosDenormalizadosYMediosValidos(t *testing.T) {
	start, end := businessWindow()
	customers := sampleCustomers(100, start, end)
	gen := generate.NewSalesGenerator(rand.New(rand.NewSource(5)), end)

	byID := make(map[int]entity.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	valid := map[entity.PaymentMethod]bool{
		entity.PaymentTarjeta: true, entity.PaymentEfectivo: true,
		entity.PaymentQR: true, entity.PaymentTransferencia: true,
	}

	for _, s := range gen.Generate(customers) {
		c := byID[s.CustomerID]
		assert.Equal(t, c.Name, s.CustomerName)
		assert.Equal(t, c.Email, s.Email)
		assert.True(t, valid[s.PaymentMethod], "medio de pago desconocido: %s", s.PaymentMethod)
	}
}

func TestSalesGenerate_MismaSemillaMismasVentas(t *testing.T) {
	start, end := businessWindow()
	customers := sampleCustomers(150, start, end)

	run := func() []entity.Sale {
		return generate.NewSalesGenerator(rand.New(rand.NewSource(7)), end).Generate(customers)
	}

	assert.Equal(t, run(), run())
}

func TestSalesGenerate_VolumenCreceConLaBase(t *testing.T) {
	start, end := businessWindow()
	gen := generate.NewSalesGenerator(rand.New(rand.NewSource(11)), end)

	small := gen.Generate(sampleCustomers(50, start, end))
	large := generate.NewSalesGenerator(rand.New(rand.NewSource(11)), end).
		Generate(sampleCustomers(500, start, end))

	assert.Greater(t, len(large), len(small))
	assert.GreaterOrEqual(t, len(small), 50, "al menos la compra inicial de cada cliente")
}
