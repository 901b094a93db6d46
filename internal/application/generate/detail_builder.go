// Package generate orquesta las etapas de la generación del dataset:
// catálogo, clientes, ventas, detalle de ventas y auditoría de calidad.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/aurelion-datagen/internal/domain"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/engine"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/sampling"
)

// DetailTableBuilder recorre todas las ventas, elige el tipo de compra de
// cada una, genera sus líneas con el motor y arma la tabla completa de
// detalle con IDs globales contiguos.
type DetailTableBuilder struct {
	rng *rand.Rand
	eng *engine.Engine
}

// NewDetailTableBuilder construye el builder sobre un generador ya sembrado.
func NewDetailTableBuilder(rng *rand.Rand) *DetailTableBuilder {
	return &DetailTableBuilder{rng: rng, eng: engine.New(rng)}
}

// Build procesa las ventas en el orden recibido (ese orden define la
// numeración del detalle: los IDs reflejan el orden de producción, no ningún
// orden posterior) y asigna IDs secuenciales desde 1 recién al final, cuando
// existen todas las líneas.
func (b *DetailTableBuilder) Build(sales []entity.Sale, catalog []entity.Product) ([]entity.LineItem, error) {
	if len(catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	var items []entity.LineItem
	for i, sale := range sales {
		purchaseType := sampling.SelectPurchaseType(b.rng, sale.PaymentMethod)
		lines, err := b.eng.Generate(sale, purchaseType, catalog)
		if err != nil {
			return nil, fmt.Errorf("detalle de venta %d: %w", sale.ID, err)
		}
		items = append(items, lines...)

		if (i+1)%500 == 0 {
			log.Debug().Int("ventas", i+1).Int("lineas", len(items)).Msg("ventas procesadas")
		}
	}

	for i := range items {
		items[i].ID = i + 1
	}
	return items, nil
}
