package rekuest

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mydestination/backend/internal/pkg/mderr"
)

var Validate = validator.New()

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Error(),
		})
	}
	return trans
}

// ValidBody gets the body from *fiber.Ctx using fiber#BodyParser(), and validates
// it using the validator singleton. If the validation passed it writes the
// unmarshalled body to dest and returns nil, otherwise it returns an error.
// Notice that dest shall be a pointer to the struct to unmarshal into.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return mderr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if err := Validate.Struct(dest); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return mderr.ErrInvalidReq
		}
		return mderr.NewInvalidViolations(translate(ve))
	}

	return nil
}
