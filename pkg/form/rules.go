package form

import (
	"fmt"
	"net/mail"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Rule is one parsed validation constraint.
type Rule struct {
	Name  string
	Param string
}

// RulesFor derives the validation rules declared on the model's fields,
// keyed by wire field name. The derivation is purely structural, so the
// same model drives every request that binds to it.
func RulesFor(model any) map[string][]Rule {
	rt := reflect.TypeOf(model)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil
	}

	rules := make(map[string][]Rule)
	for i := range rt.NumField() {
		field := rt.Field(i)
		tag, ok := field.Tag.Lookup("validate")
		if !ok || tag == "" || tag == "-" {
			continue
		}

		var parsed []Rule
		for part := range strings.SplitSeq(tag, ",") {
			name, param, _ := strings.Cut(strings.TrimSpace(part), "=")
			if name == "" {
				continue
			}
			parsed = append(parsed, Rule{Name: name, Param: param})
		}
		if len(parsed) > 0 {
			rules[fieldName(field, "form")] = parsed
		}
	}
	return rules
}

// Validate applies the model's declared rules to its current values.
// A nil or empty result means the model is valid.
func Validate(model any) Errors {
	rv := reflect.ValueOf(model)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	errs := make(Errors)
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		tag, ok := field.Tag.Lookup("validate")
		if !ok || tag == "" || tag == "-" {
			continue
		}

		name := fieldName(field, "form")
		value := rv.Field(i)

		for part := range strings.SplitSeq(tag, ",") {
			ruleName, param, _ := strings.Cut(strings.TrimSpace(part), "=")
			if msg := check(value, ruleName, param); msg != "" {
				errs.Add(name, msg)
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func check(value reflect.Value, rule, param string) string {
	switch rule {
	case "required":
		if value.IsZero() {
			return "is required"
		}
	case "email":
		s := value.String()
		if s == "" {
			return ""
		}
		if addr, err := mail.ParseAddress(s); err != nil || addr.Address != s {
			return "must be a valid email address"
		}
	case "min":
		return checkBound(value, param, true)
	case "max":
		return checkBound(value, param, false)
	}
	return ""
}

func checkBound(value reflect.Value, param string, isMin bool) string {
	limit, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return fmt.Sprintf("has malformed rule parameter %q", param)
	}

	var actual float64
	unit := ""
	switch value.Kind() {
	case reflect.String:
		if value.String() == "" {
			// Length bounds never fire on empty optional fields; pair
			// with required to make a field mandatory.
			return ""
		}
		actual = float64(utf8.RuneCountInString(value.String()))
		unit = " characters"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		actual = float64(value.Int())
	case reflect.Float32, reflect.Float64:
		actual = value.Float()
	case reflect.Slice, reflect.Map, reflect.Array:
		actual = float64(value.Len())
		unit = " items"
	default:
		return ""
	}

	if isMin && actual < limit {
		return fmt.Sprintf("must be at least %s%s", trimFloat(limit), unit)
	}
	if !isMin && actual > limit {
		return fmt.Sprintf("must be at most %s%s", trimFloat(limit), unit)
	}
	return ""
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
