// Package validation checks request payloads before they reach the services.
// It only enforces presence and type; values themselves are accepted as is.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	LocBody  = "body"
	LocQuery = "query"
)

type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Loc, "."), e.Msg)
}

type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(e), strings.Join(messages, "; "))
}

func Missing(loc, field string) FieldError {
	return FieldError{Loc: []string{loc, field}, Msg: "field required", Type: "value_error.missing"}
}

func NotInteger(loc, field string) FieldError {
	return FieldError{Loc: []string{loc, field}, Msg: "value is not a valid integer", Type: "type_error.integer"}
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and reports failures located under loc.
func (v *Validator) Struct(loc string, s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, Missing(loc, fe.Field()))
		default:
			out = append(out, FieldError{
				Loc:  []string{loc, fe.Field()},
				Msg:  fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
				Type: "value_error." + fe.Tag(),
			})
		}
	}
	return out
}

// FromDecodeError turns a JSON body decoding failure into Errors.
func FromDecodeError(err error) Errors {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.Is(err, io.EOF):
		return Errors{{Loc: []string{LocBody}, Msg: "field required", Type: "value_error.missing"}}
	case errors.As(err, &typeErr):
		return Errors{{
			Loc:  []string{LocBody, typeErr.Field},
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type.Kind()),
			Type: "type_error." + typeErr.Type.Kind().String(),
		}}
	case errors.As(err, &syntaxErr):
		return Errors{{Loc: []string{LocBody}, Msg: "invalid JSON", Type: "value_error.jsondecode"}}
	default:
		return Errors{{Loc: []string{LocBody}, Msg: err.Error(), Type: "value_error"}}
	}
}
