package handlers_fiber

import (
	"errors"
	"net/http"

	"request-approvals/internal/entities"
	api "request-approvals/internal/oapi"
	"request-approvals/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case entities.IsNotFound(err):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrApproverExists):
		status = http.StatusConflict
		code = api.APPROVEREXISTS
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidTransition):
		status = http.StatusConflict
		code = api.INVALIDTRANSITION
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusForbidden
		code = api.UNAUTHORIZED
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.VALIDATION
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

// ErrorHandler renders errors that escape a handler, including fiber's own
// routing and parsing errors, as the API error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return writeError(c, err)
	}

	code := api.INTERNAL
	switch fe.Code {
	case http.StatusNotFound:
		code = api.NOTFOUND
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = api.VALIDATION
	case http.StatusUnauthorized:
		code = api.UNAUTHENTICATED
	case http.StatusForbidden:
		code = api.UNAUTHORIZED
	case http.StatusConflict:
		code = api.INVALIDTRANSITION
	}
	return c.Status(fe.Code).JSON(errorResponse(code, fe.Message))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
}

func actor(c *fiber.Ctx) (entities.User, error) {
	u, ok := middleware.Actor(c)
	if !ok {
		return entities.User{}, errors.New("request reached handler without identity")
	}
	return u, nil
}
