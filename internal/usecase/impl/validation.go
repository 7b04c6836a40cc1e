package impl

import (
	"strings"

	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// fieldValidator checks single values against validator tags; handlers
// validate request shapes, services re-check the business rules.
var fieldValidator = validator.New(validator.WithRequiredStructEnabled())

func validateRegistration(input *usecase.RegisterInput) error {
	if err := validateName(input.Name); err != nil {
		return err
	}
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	if fieldValidator.Var(input.Password, "min=6") != nil {
		return domainerrors.ErrValidationFailed.WithDetails("A senha deve ter pelo menos 6 caracteres")
	}

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("Por favor, informe seu nome")
	}
	if fieldValidator.Var(name, "max=50") != nil {
		return domainerrors.ErrValidationFailed.WithDetails("O nome não pode ter mais de 50 caracteres")
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("Por favor, informe seu email")
	}
	if fieldValidator.Var(email, "email") != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Por favor, informe um email válido")
	}

	return nil
}
