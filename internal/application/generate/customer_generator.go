package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var firstNames = []string{
	"María", "José", "Martín", "Sofía", "Lucía", "Mateo", "Valentina", "Santiago",
	"Camila", "Nicolás", "Agustín", "Julieta", "Tomás", "Florencia", "Joaquín",
	"Carolina", "Federico", "Antonella", "Ramón", "Verónica",
}

var lastNames = []string{
	"González", "Rodríguez", "Gómez", "Fernández", "López", "Díaz", "Martínez",
	"Pérez", "Sánchez", "Romero", "Suárez", "Ibáñez", "Acuña", "Benítez", "Núñez",
}

var neighborhoods = []string{
	"Palermo", "Recoleta", "Belgrano", "Caballito", "Villa Crespo",
	"Almagro", "Flores", "Villa Urquiza", "Núñez", "Colegiales",
}

var emailDomains = []string{"@gmail.com", "@hotmail.com", "@outlook.com", "@yahoo.com"}

// proporción de clientes dados de alta en el primer año del negocio
const earlySignupShare = 0.6

// emailCleaner descompone, elimina marcas diacríticas (á→a, ñ→n) y recompone.
var emailCleaner = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CustomerGenerator produce la tabla de clientes sintéticos: nombre, email
// correlacionado, barrio y fecha de alta dentro de la ventana del negocio.
type CustomerGenerator struct {
	rng   *rand.Rand
	start time.Time
	end   time.Time
}

// NewCustomerGenerator construye el generador para la ventana [start, end].
func NewCustomerGenerator(rng *rand.Rand, start, end time.Time) *CustomerGenerator {
	return &CustomerGenerator{rng: rng, start: start, end: end}
}

// Generate crea count clientes con IDs secuenciales desde 1.
func (g *CustomerGenerator) Generate(count int) []entity.Customer {
	customers := make([]entity.Customer, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[g.rng.Intn(len(firstNames))]
		last := lastNames[g.rng.Intn(len(lastNames))]

		customers = append(customers, entity.Customer{
			ID:         i + 1,
			Name:       first + " " + last,
			Email:      g.email(first, last),
			City:       neighborhoods[g.rng.Intn(len(neighborhoods))],
			SignupDate: g.signupDate(),
		})

		if (i+1)%100 == 0 {
			log.Debug().Int("clientes", i+1).Msg("clientes generados")
		}
	}
	return customers
}

// email genera una dirección correlacionada con el nombre, en uno de cinco
// formatos realistas, siempre en minúsculas y sin tildes.
func (g *CustomerGenerator) email(first, last string) string {
	nombre := cleanForEmail(first)
	apellido := cleanForEmail(last)

	var local string
	switch g.rng.Intn(5) {
	case 0:
		local = nombre + "." + apellido
	case 1:
		local = nombre + apellido
	case 2:
		local = nombre + "_" + apellido
	case 3:
		local = fmt.Sprintf("%s.%s%d", nombre, apellido, 1+g.rng.Intn(99))
	default:
		local = nombre[:1] + apellido
	}
	return local + emailDomains[g.rng.Intn(len(emailDomains))]
}

// signupDate distribuye las altas 60/40 entre el primer año del negocio y el
// resto de la ventana, uniforme dentro de cada tramo.
func (g *CustomerGenerator) signupDate() time.Time {
	boundary := time.Date(g.start.Year()+1, time.January, 1, 0, 0, 0, 0, g.start.Location())
	if !boundary.Before(g.end) {
		return g.randomDate(g.start, g.end)
	}
	if g.rng.Float64() < earlySignupShare {
		return g.randomDate(g.start, boundary.AddDate(0, 0, -1))
	}
	return g.randomDate(boundary, g.end)
}

func (g *CustomerGenerator) randomDate(from, to time.Time) time.Time {
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return from
	}
	return from.AddDate(0, 0, g.rng.Intn(days+1))
}

func cleanForEmail(s string) string {
	out, _, err := transform.String(emailCleaner, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
