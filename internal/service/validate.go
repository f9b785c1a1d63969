package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/and161185/flashdeck/internal/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// check runs struct validation and maps failures onto errs.ErrInvalidArgument.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs.Invalid("validation: %v", err)
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		p := fe.Namespace() + " " + fe.Tag()
		if fe.Param() != "" {
			p += "=" + fe.Param()
		}
		parts = append(parts, p)
	}
	return errs.Invalid("validation: %s", strings.Join(parts, ", "))
}
