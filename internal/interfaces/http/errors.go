package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/pkg/logger"
	"github.com/jhoicas/tienda-api/pkg/validate"
)

// errInvalidBody cuerpo o query que no se pudo decodificar.
var errInvalidBody = errors.New("cuerpo inválido")

// toErrorResponse traduce un error de aplicación a status HTTP y cuerpo.
func toErrorResponse(err error) (int, dto.ErrorResponse) {
	var (
		malformed  *domain.MalformedIDError
		invalidRef *domain.InvalidReferenceError
		verr       *validate.Error
		ferr       *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error()}
	case errors.Is(err, errInvalidBody):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()}
	case errors.As(err, &malformed):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "MALFORMED_ID", Message: domain.ErrMalformedID.Error(), Field: malformed.Field}
	case errors.As(err, &invalidRef):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: invalidRef.Error(), Field: invalidRef.Field}
	case errors.Is(err, domain.ErrInvalidReference):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidDateRange):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_DATE_RANGE", Message: domain.ErrInvalidDateRange.Error()}
	case errors.Is(err, domain.ErrDuplicateActiveContract):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "DUPLICATE_ACTIVE_CONTRACT", Message: domain.ErrDuplicateActiveContract.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrUnauthorized.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: domain.ErrForbidden.Error()}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: domain.ErrEmailAlreadyExists.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: domain.ErrDuplicate.Error()}
	case errors.Is(err, usecase.ErrReceiptUnavailable):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "RECEIPT_UNAVAILABLE", Message: err.Error()}
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "error interno, intente más tarde"}
	case errors.As(err, &ferr):
		return ferr.Code, dto.ErrorResponse{Code: "HTTP_ERROR", Message: ferr.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}

// writeError escribe la respuesta de error correspondiente.
func writeError(c *fiber.Ctx, err error) error {
	status, body := toErrorResponse(err)
	return c.Status(status).JSON(body)
}

// ErrorHandler handler de errores de Fiber: los handlers devuelven el error y aquí se traduce.
// Los 5xx se registran con el error original, que nunca llega al cliente.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := toErrorResponse(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
				Str("path", c.Path()).Msg("error atendiendo petición")
		}
		return c.Status(status).JSON(body)
	}
}
