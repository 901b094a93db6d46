// Package engine contiene el motor de detalle de ventas: el empaquetado
// estocástico de líneas bajo restricciones de presupuesto y no-duplicados.
package engine

import (
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/aurelion-datagen/internal/domain"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/sampling"
)

const (
	// probabilidad de aplicar deriva histórica al precio de una línea
	priceDriftProb = 0.05
	// probabilidad de cortar la venta una vez alcanzados piso monetario y mínimo de ítems
	earlyStopProb = 0.30
)

var (
	// presupuesto restante por debajo del cual no vale la pena seguir agregando
	budgetFloor = decimal.NewFromInt(500)
	ten         = decimal.NewFromInt(10)
	one         = decimal.NewFromInt(1)
)

// Engine genera el conjunto de líneas de detalle de una venta. No mantiene
// estado entre ventas más allá del generador aleatorio compartido.
type Engine struct {
	rng *rand.Rand
}

// New construye el motor sobre un generador ya sembrado.
func New(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Generate produce las líneas de una venta respetando el perfil de compra:
// la cantidad objetivo de ítems se sortea una sola vez en [MinItems, MaxItems],
// el total acumulado no supera Ceiling() (salvo el caso forzado de venta que
// no podía comprar nada), y los productos no se repiten mientras existan
// alternativas que entren en el presupuesto.
//
// Nunca falla con un catálogo bien formado: las infactibilidades se resuelven
// con la escalera de relajación de pickCandidate más el clampeo de cantidad.
// Un catálogo vacío es un error de configuración del caller.
//
// Nota: si ni el producto más barato entra en el presupuesto, la venta queda
// igual con una línea de cantidad 1. Ese sobregiro no está acotado (puede
// exceder el techo por varias veces el precio unitario); se reporta en el
// validador en lugar de recortarse.
func (e *Engine) Generate(sale entity.Sale, pt entity.PurchaseType, catalog []entity.Product) ([]entity.LineItem, error) {
	if len(catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	targetItems := pt.MinItems + e.rng.Intn(pt.MaxItems-pt.MinItems+1)
	ceiling := pt.Ceiling()
	total := decimal.Zero
	chosen := make(map[int]bool, targetItems)
	items := make([]entity.LineItem, 0, targetItems)

	for draw := 0; draw < targetItems; draw++ {
		remaining := ceiling.Sub(total)

		product := e.pickCandidate(catalog, chosen, remaining)
		quantity := sampling.Quantity(e.rng, product.UnitPrice, pt)
		unitPrice := e.maybeDriftPrice(product.UnitPrice)
		amount := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

		if amount.GreaterThan(remaining) {
			affordable := int(remaining.Div(unitPrice).IntPart())
			switch {
			case affordable >= 1:
				quantity = affordable
				amount = unitPrice.Mul(decimal.NewFromInt(int64(affordable)))
			case len(items) > 0:
				// no entra ni una unidad y la venta ya tiene líneas: cortar acá
				return items, nil
			default:
				// la venta no puede quedar vacía: una unidad aunque sobregire
				quantity = 1
				amount = unitPrice
			}
		}

		items = append(items, entity.LineItem{
			SaleID:          sale.ID,
			ProductID:       product.ID,
			ProductName:     product.Name,
			Quantity:        quantity,
			UnitPrice:       unitPrice,
			Amount:          amount,
			ForcedDuplicate: chosen[product.ID],
		})
		chosen[product.ID] = true
		total = total.Add(amount)
		remaining = ceiling.Sub(total)

		if len(items) >= pt.MinItems {
			if remaining.LessThan(budgetFloor) {
				break
			}
			if total.GreaterThanOrEqual(pt.MinAmount) && e.rng.Float64() < earlyStopProb {
				break
			}
		}
	}

	if len(items) == 0 {
		// catálogo patológicamente caro: garantizar la invariante de venta no vacía
		p := cheapestProduct(catalog)
		items = append(items, entity.LineItem{
			SaleID:      sale.ID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    1,
			UnitPrice:   p.UnitPrice,
			Amount:      p.UnitPrice,
		})
	}

	return items, nil
}

// pickCandidate aplica la escalera de relajación, en orden:
//  1. productos no elegidos todavía cuyo precio entra en el presupuesto restante
//  2. cualquier producto que entre en el presupuesto (se permiten duplicados)
//  3. el producto más barato del catálogo, incondicionalmente
//
// Cada estrategia se evalúa una sola vez por extracción; la tercera no puede
// fallar, así que el motor siempre avanza.
func (e *Engine) pickCandidate(catalog []entity.Product, chosen map[int]bool, remaining decimal.Decimal) entity.Product {
	pool := make([]entity.Product, 0, len(catalog))
	for _, p := range catalog {
		if !chosen[p.ID] && p.UnitPrice.LessThanOrEqual(remaining) {
			pool = append(pool, p)
		}
	}
	if len(pool) > 0 {
		return sampling.SampleProduct(e.rng, pool)
	}

	for _, p := range catalog {
		if p.UnitPrice.LessThanOrEqual(remaining) {
			pool = append(pool, p)
		}
	}
	if len(pool) > 0 {
		return sampling.SampleProduct(e.rng, pool)
	}

	return cheapestProduct(catalog)
}

// maybeDriftPrice aplica deriva histórica al precio: en ~5% de las líneas el
// precio unitario varía ±10% y se redondea al múltiplo de diez más cercano.
func (e *Engine) maybeDriftPrice(price decimal.Decimal) decimal.Decimal {
	if e.rng.Float64() >= priceDriftProb {
		return price
	}
	noise := e.rng.Float64()*0.2 - 0.1
	drifted := price.Mul(one.Add(decimal.NewFromFloat(noise)))
	return drifted.Div(ten).Round(0).Mul(ten)
}

func cheapestProduct(catalog []entity.Product) entity.Product {
	cheapest := catalog[0]
	for _, p := range catalog[1:] {
		if p.UnitPrice.LessThan(cheapest.UnitPrice) {
			cheapest = p
		}
	}
	return cheapest
}
