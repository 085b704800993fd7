// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound form payloads.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New constructs the validator echo uses for c.Validate calls.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
