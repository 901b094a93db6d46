package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// WriteDataset exporta las cuatro tablas del dataset al directorio dado,
// creándolo si no existe. Los órdenes de columnas replican las tablas
// Clientes/Productos/Ventas/DetalleVentas originales del proyecto.
func WriteDataset(dir string, customers []entity.Customer, products []entity.Product, sales []entity.Sale, items []entity.LineItem) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de salida: %w", err)
	}
	if err := writeCustomers(filepath.Join(dir, "Clientes.csv"), customers); err != nil {
		return err
	}
	if err := writeProducts(filepath.Join(dir, "Productos.csv"), products); err != nil {
		return err
	}
	if err := writeSales(filepath.Join(dir, "Ventas.csv"), sales); err != nil {
		return err
	}
	return writeLineItems(filepath.Join(dir, "DetalleVentas.csv"), items)
}

func writeCustomers(path string, customers []entity.Customer) error {
	rows := make([][]string, 0, len(customers)+1)
	rows = append(rows, []string{"id_cliente", "nombre_cliente", "email", "ciudad", "fecha_alta"})
	for _, c := range customers {
		rows = append(rows, []string{
			strconv.Itoa(c.ID), c.Name, c.Email, c.City, c.SignupDate.Format(dateLayout),
		})
	}
	return writeCSV(path, rows)
}

func writeProducts(path string, products []entity.Product) error {
	rows := make([][]string, 0, len(products)+1)
	rows = append(rows, []string{"id_producto", "nombre_producto", "categoria", "precio_unitario", "popularidad"})
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Name, p.Category, p.UnitPrice.String(), string(p.Popularity),
		})
	}
	return writeCSV(path, rows)
}

func writeSales(path string, sales []entity.Sale) error {
	rows := make([][]string, 0, len(sales)+1)
	rows = append(rows, []string{"id_venta", "id_cliente", "fecha", "nombre_cliente", "email", "medio_pago"})
	for _, s := range sales {
		rows = append(rows, []string{
			strconv.Itoa(s.ID), strconv.Itoa(s.CustomerID), s.Date.Format(dateTimeLayout),
			s.CustomerName, s.Email, string(s.PaymentMethod),
		})
	}
	return writeCSV(path, rows)
}

func writeLineItems(path string, items []entity.LineItem) error {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, []string{"id_detalle", "id_venta", "id_producto", "nombre_producto", "cantidad", "precio_unitario", "importe"})
	for _, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(it.ID), strconv.Itoa(it.SaleID), strconv.Itoa(it.ProductID),
			it.ProductName, strconv.Itoa(it.Quantity), it.UnitPrice.String(), it.Amount.String(),
		})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}
