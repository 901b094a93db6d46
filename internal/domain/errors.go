package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los errores de configuración son fatales para la corrida; las infactibilidades
// durante el muestreo se absorben localmente y nunca llegan hasta acá.
var (
	ErrEmptyCatalog    = errors.New("catálogo de productos vacío")
	ErrCatalogTooSmall = errors.New("catálogo insuficiente para asignar popularidad")
	ErrInvalidInput    = errors.New("entrada inválida")
)
