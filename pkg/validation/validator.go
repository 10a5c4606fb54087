package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Теги, из которых берётся имя поля для сообщений об ошибке. Клиент видит
// invoiceId или x-business-unit-id, а не имя поля Go-структуры.
var fieldNameTags = []string{"json", "param", "header", "query"}

// CustomValidator подключается к Echo как e.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireFieldName)

	registerNullTypes(v)

	// без правил сервер стартовать не должен
	if err := registerRules(v); err != nil {
		panic("ошибка регистрации валидаторов: " + err.Error())
	}

	return &CustomValidator{validator: v}
}

func wireFieldName(field reflect.StructField) string {
	for _, tag := range fieldNameTags {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}
