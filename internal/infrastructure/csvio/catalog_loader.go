// Package csvio implementa la E/S tabular del generador: carga de catálogo
// externo y exportación del dataset. El motor de generación no conoce este
// paquete; trabaja solo con entidades en memoria.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/aurelion-datagen/internal/domain"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

// LoadCatalog lee un catálogo de productos desde un CSV con encabezado
// id_producto,nombre_producto,categoria,precio_unitario. Filas malformadas o
// un archivo vacío son errores de configuración.
func LoadCatalog(path string) ([]entity.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 4
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer catálogo %s: %w", path, err)
	}
	if len(records) <= 1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyCatalog, path)
	}

	products := make([]entity.Product, 0, len(records)-1)
	for i, rec := range records[1:] { // saltear encabezado
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: fila %d, id_producto %q", domain.ErrInvalidInput, i+2, rec[0])
		}
		price, err := decimal.NewFromString(rec[3])
		if err != nil || price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: fila %d, precio_unitario %q", domain.ErrInvalidInput, i+2, rec[3])
		}
		products = append(products, entity.Product{
			ID:        id,
			Name:      rec[1],
			Category:  rec[2],
			UnitPrice: price,
		})
	}
	return products, nil
}
