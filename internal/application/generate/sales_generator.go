package generate

import (
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/sampling"
)

// Perfiles de comportamiento del cliente. Cada cliente recibe un perfil de
// frecuencia (compras por mes), uno de pago (mezcla de medios) y uno temporal
// (días y franjas horarias en que compra).

type frequencyProfile struct {
	name     string
	weight   float64
	perMonth float64
}

var frequencyProfiles = []frequencyProfile{
	{"unico", 0.15, 0}, // solo la compra inicial
	{"ocasional", 0.25, 0.4},
	{"regular", 0.35, 1.5},
	{"frecuente", 0.20, 6},
	{"vip", 0.05, 15},
}

type paymentProfile struct {
	name    string
	weight  float64
	methods []entity.PaymentMethod
	mix     []float64
}

var paymentProfiles = []paymentProfile{
	{"tarjeta_preferente", 0.40,
		[]entity.PaymentMethod{entity.PaymentTarjeta, entity.PaymentQR, entity.PaymentEfectivo, entity.PaymentTransferencia},
		[]float64{0.75, 0.15, 0.08, 0.02}},
	{"efectivo_preferente", 0.30,
		[]entity.PaymentMethod{entity.PaymentEfectivo, entity.PaymentTarjeta, entity.PaymentQR, entity.PaymentTransferencia},
		[]float64{0.70, 0.20, 0.08, 0.02}},
	{"digital", 0.20,
		[]entity.PaymentMethod{entity.PaymentQR, entity.PaymentTransferencia, entity.PaymentTarjeta, entity.PaymentEfectivo},
		[]float64{0.60, 0.25, 0.15, 0.00}},
	{"mixto", 0.10,
		[]entity.PaymentMethod{entity.PaymentTarjeta, entity.PaymentEfectivo, entity.PaymentQR, entity.PaymentTransferencia},
		[]float64{0.40, 0.30, 0.20, 0.10}},
}

type temporalProfile struct {
	name   string
	weight float64
	days   []time.Weekday
	hours  [][2]int // franjas [desde, hasta] en horas
}

var temporalProfiles = []temporalProfile{
	{"trabajador_oficina", 0.30,
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		[][2]int{{12, 14}, {18, 20}}},
	{"del_barrio", 0.25,
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		[][2]int{{9, 12}, {17, 19}}},
	{"familia_finde", 0.20,
		[]time.Weekday{time.Friday, time.Saturday, time.Sunday},
		[][2]int{{10, 13}, {17, 20}}},
	{"flexible", 0.25,
		[]time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		[][2]int{{8, 22}}},
}

// ~5% de los clientes frecuentes/vip repiten compra el mismo día
const doublePurchaseProb = 0.05

// SalesGenerator produce las cabeceras de venta de todos los clientes según
// sus perfiles de comportamiento y las ordena cronológicamente con IDs
// secuenciales desde 1.
type SalesGenerator struct {
	rng   *rand.Rand
	today time.Time
}

// NewSalesGenerator construye el generador; today es el fin de la simulación.
func NewSalesGenerator(rng *rand.Rand, today time.Time) *SalesGenerator {
	return &SalesGenerator{rng: rng, today: today}
}

// Generate crea todas las ventas. Cada cliente tiene una primera compra
// obligatoria dentro de las 48 h del alta y luego tantas compras como indique
// su frecuencia, agendadas dentro de su perfil temporal.
func (g *SalesGenerator) Generate(customers []entity.Customer) []entity.Sale {
	var all []entity.Sale
	for i, c := range customers {
		freq := frequencyProfiles[g.pickProfile(frequencyWeights())]
		pay := paymentProfiles[g.pickProfile(paymentWeights())]
		temp := temporalProfiles[g.pickProfile(temporalWeights())]

		all = append(all, g.customerSales(c, freq, pay, temp)...)

		if (i+1)%100 == 0 {
			log.Debug().Int("clientes", i+1).Msg("clientes procesados")
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	for i := range all {
		all[i].ID = i + 1
	}
	return all
}

func (g *SalesGenerator) customerSales(c entity.Customer, freq frequencyProfile, pay paymentProfile, temp temporalProfile) []entity.Sale {
	// primera venta obligatoria, muy cerca del alta
	sales := []entity.Sale{{
		CustomerID:    c.ID,
		Date:          c.SignupDate.Add(time.Duration(g.rng.Intn(49)) * time.Hour),
		CustomerName:  c.Name,
		Email:         c.Email,
		PaymentMethod: g.pickMethod(pay),
	}}

	activeMonths := g.today.Sub(c.SignupDate).Hours() / 24 / 30
	extra := int(activeMonths * freq.perMonth)
	for i := 0; i < extra; i++ {
		sales = append(sales, entity.Sale{
			CustomerID:    c.ID,
			Date:          g.scheduleDate(c.SignupDate, temp),
			CustomerName:  c.Name,
			Email:         c.Email,
			PaymentMethod: g.pickMethod(pay),
		})
	}

	// caso especial: doble compra en el mismo día, corrida 4-8 h
	if (freq.name == "frecuente" || freq.name == "vip") &&
		g.rng.Float64() < doublePurchaseProb && len(sales) > 1 {
		src := sales[1+g.rng.Intn(len(sales)-1)]
		d := src.Date
		newHour := (d.Hour() + 4 + g.rng.Intn(5)) % 24
		src.Date = time.Date(d.Year(), d.Month(), d.Day(), newHour, d.Minute(), 0, 0, d.Location())
		sales = append(sales, src)
	}

	return sales
}

// scheduleDate elige un día dentro de la ventana de actividad del cliente y lo
// corre hasta caer en un día habilitado del perfil (con tope de intentos),
// luego sortea hora dentro de una franja y minuto.
func (g *SalesGenerator) scheduleDate(from time.Time, temp temporalProfile) time.Time {
	days := int(g.today.Sub(from).Hours() / 24)
	date := from
	if days > 0 {
		date = from.AddDate(0, 0, g.rng.Intn(days+1))
	}

	for attempts := 0; !allowedDay(temp.days, date.Weekday()) && attempts < 30; attempts++ {
		date = date.AddDate(0, 0, 1)
		if date.After(g.today) {
			date = from
		}
	}

	window := temp.hours[g.rng.Intn(len(temp.hours))]
	hour := window[0] + g.rng.Intn(window[1]-window[0]+1)
	minute := g.rng.Intn(60)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

func (g *SalesGenerator) pickProfile(weights []float64) int {
	return sampling.PickWeighted(g.rng, weights)
}

func (g *SalesGenerator) pickMethod(pay paymentProfile) entity.PaymentMethod {
	return pay.methods[sampling.PickWeighted(g.rng, pay.mix)]
}

func allowedDay(days []time.Weekday, d time.Weekday) bool {
	for _, day := range days {
		if day == d {
			return true
		}
	}
	return false
}

func frequencyWeights() []float64 {
	w := make([]float64, len(frequencyProfiles))
	for i, p := range frequencyProfiles {
		w[i] = p.weight
	}
	return w
}

func paymentWeights() []float64 {
	w := make([]float64, len(paymentProfiles))
	for i, p := range paymentProfiles {
		w[i] = p.weight
	}
	return w
}

func temporalWeights() []float64 {
	w := make([]float64, len(temporalProfiles))
	for i, p := range temporalProfiles {
		w[i] = p.weight
	}
	return w
}
