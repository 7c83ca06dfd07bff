package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// RespondError traduce un error de dominio a código HTTP y cuerpo JSON.
// Es el único punto de traducción: los handlers nunca mapean sentinelas
// por su cuenta.
func RespondError(c *fiber.Ctx, err error) error {
	status, code, msg := classifyError(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func classifyError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", "datos inválidos"
	case errors.Is(err, domain.ErrForeignKey):
		return fiber.StatusBadRequest, "INVALID_REFERENCE", "referencia a un recurso inexistente"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE", "el recurso ya existe"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado en esta empresa"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", "acceso denegado al recurso"
	case errors.Is(err, domain.ErrInvalidTransition):
		return fiber.StatusConflict, "INVALID_TRANSITION", "transición de estado no permitida"
	case errors.Is(err, domain.ErrAlreadyConverted):
		return fiber.StatusConflict, "ALREADY_CONVERTED", "el documento ya fue convertido"
	case errors.Is(err, domain.ErrInvalidConversion):
		return fiber.StatusUnprocessableEntity, "INVALID_CONVERSION", "conversión no permitida entre estos tipos de documento"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT", "conflicto con el estado actual del recurso"
	}
	return fiber.StatusInternalServerError, "INTERNAL", err.Error()
}
