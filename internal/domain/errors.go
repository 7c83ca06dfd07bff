package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Taxonomía única compartida: los handlers HTTP los traducen a código y
// mensaje en un solo punto, nunca por consumidor.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForeignKey         = errors.New("referencia a un recurso inexistente")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrAlreadyConverted   = errors.New("el documento ya fue convertido")
	ErrInvalidConversion  = errors.New("conversión no permitida entre estos tipos de documento")
)
