package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,64}$`)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("entity_id", isEntityID); err != nil {
		return err
	}
	if err := v.RegisterValidation("username", isUsername); err != nil {
		return err
	}
	return nil
}

// isEntityID - идентификаторы записей у нас UUID
func isEntityID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

func isUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}
