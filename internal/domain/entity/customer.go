package entity

import "time"

// Customer representa un cliente sintético del negocio.
type Customer struct {
	ID         int
	Name       string
	Email      string // correlacionado con el nombre, sin tildes
	City       string // barrio de Buenos Aires
	SignupDate time.Time
}
