package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrUpstream la API remota falló (red, timeout o 5xx).
	ErrUpstream = errors.New("error en la API remota")

	// ErrSessionClosed la sesión no existe, expiró o fue cerrada.
	ErrSessionClosed = errors.New("sesión cerrada o expirada")

	// Validaciones del editor de categorías; se rechazan antes de contactar la API remota.
	ErrEmptySelection  = errors.New("selecciona al menos una categoría")
	ErrMergeSelection  = errors.New("selecciona al menos dos categorías para combinar")
	ErrNameRequired    = errors.New("el nombre es obligatorio")
	ErrParentNotFound  = errors.New("categoría padre no encontrada")
	ErrParentInMerge   = errors.New("la categoría padre no puede estar entre las combinadas")
	ErrWarehouseNeeded = errors.New("selecciona una bodega")
	ErrNoLineItems     = errors.New("agrega al menos un producto")
)

// IsValidation indica si err es un error de validación del usuario.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrMergeSelection),
		errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrParentNotFound),
		errors.Is(err, ErrParentInMerge),
		errors.Is(err, ErrWarehouseNeeded),
		errors.Is(err, ErrNoLineItems):
		return true
	}
	return false
}
