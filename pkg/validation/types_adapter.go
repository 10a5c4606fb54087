package validation

import (
	"database/sql/driver"
	"reflect"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// registerNullTypes: правила применяются к значению внутри null-типа.
// Пустой null отдаёт nil, поэтому omitempty его пропускает, а required ловит.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(nullValue,
		null.String{}, null.Int{}, null.Int64{}, null.Bool{}, null.Time{}, null.Float64{},
	)
}

func nullValue(field reflect.Value) interface{} {
	valuer, ok := field.Interface().(driver.Valuer)
	if !ok {
		return nil
	}
	val, err := valuer.Value()
	if err != nil {
		return nil
	}
	return val
}
