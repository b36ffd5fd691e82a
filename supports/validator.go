package supports

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/galaplate/creational/beverage"
	"github.com/galaplate/creational/organism"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	XValidator struct{}

	GlobalErrorHandlerResp struct {
		Success bool              `json:"success"`
		Status  int               `json:"status"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
)

var validate *validator.Validate

func (g *GlobalErrorHandlerResp) Error() string {
	errorJSON, err := json.Marshal(g)
	if err != nil {
		return fmt.Sprintf("Status: %d, Message: %s, Errors: %v", g.Status, g.Message, g.Errors)
	}
	return string(errorJSON)
}

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("variant", fieldVariant); err != nil {
		log.Panic(err)
	}
	if err := validate.RegisterValidation("beverage", fieldBeverage); err != nil {
		log.Panic(err)
	}
}

// fieldVariant accepts empty strings (default variant) and registered variants.
func fieldVariant(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || organism.Default().Has(organism.Variant(v))
}

// fieldBeverage accepts empty strings (default kind) and known beverage kinds.
func fieldBeverage(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || beverage.IsKnown(beverage.Kind(v))
}

func getJSONFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}

	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}
	return name
}

func getFieldJSONName(structType reflect.Type, fieldName string) string {
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}

	if field, ok := structType.FieldByName(fieldName); ok {
		return getJSONFieldName(field)
	}
	return fieldName
}

// Validate checks data against its validate tags. Failures come back as a
// *GlobalErrorHandlerResp with status 422 keyed by JSON field name.
func (v XValidator) Validate(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	resp := &GlobalErrorHandlerResp{
		Status: fiber.StatusUnprocessableEntity,
		Errors: make(map[string]string, len(verrs)),
	}
	for index, fe := range verrs {
		name := getFieldJSONName(reflect.TypeOf(data), fe.Field())
		resp.Errors[name] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", name, fe.Tag())
		if index == 0 {
			resp.Message = resp.Errors[name]
		}
	}
	return resp
}

// WithMessage turns data into an error the app error handler renders as-is,
// so non-validation failures share the validation JSON shape.
func (v XValidator) WithMessage(data GlobalErrorHandlerResp) error {
	if data.Errors == nil {
		data.Errors = map[string]string{}
	}
	return &data
}
