package entity

import "time"

// PaymentMethod medio de pago de una venta.
type PaymentMethod string

const (
	PaymentTarjeta       PaymentMethod = "tarjeta"
	PaymentEfectivo      PaymentMethod = "efectivo"
	PaymentQR            PaymentMethod = "qr"
	PaymentTransferencia PaymentMethod = "transferencia"
)

// Sale cabecera de una venta. Se genera río arriba del motor de detalle,
// que la trata como solo lectura.
type Sale struct {
	ID            int
	CustomerID    int
	Date          time.Time
	CustomerName  string // snapshot desnormalizado, como en la tabla original
	Email         string
	PaymentMethod PaymentMethod
}
