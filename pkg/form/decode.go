package form

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

const maxBodySize = 1 << 20 // 1MB request body cap

var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

func sanitize(s string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// Decode binds the request body to dst based on Content-Type
// (application/json, application/x-www-form-urlencoded, or
// multipart/form-data) and sanitizes every string field.
func Decode(r *http.Request, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotPointer
	}

	contentType := r.Header.Get("Content-Type")
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedBody, err)
		}
	case "application/x-www-form-urlencoded", "multipart/form-data", "":
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %s", ErrMalformedBody, err)
			}
		}
		if err := bindValues(rv.Elem(), r.Form); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedContent, contentType)
	}

	sanitizeStrings(rv.Elem())
	return nil
}

// DecodeAndValidate binds the body and applies the model's validation
// rules, returning Errors on rule failures.
func DecodeAndValidate(r *http.Request, dst any) error {
	if err := Decode(r, dst); err != nil {
		return err
	}
	if errs := Validate(dst); len(errs) > 0 {
		return errs
	}
	return nil
}

func bindValues(rv reflect.Value, values map[string][]string) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field, "form")
		if name == "-" {
			continue
		}
		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}

		if err := setField(rv.Field(i), vals[0]); err != nil {
			return fmt.Errorf("%w: field %q: %s", ErrMalformedBody, name, err)
		}
	}
	return nil
}

func setField(fv reflect.Value, raw string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		fv.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", fv.Kind())
	}
	return nil
}

func sanitizeStrings(rv reflect.Value) {
	for i := range rv.NumField() {
		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.String:
			if fv.CanSet() {
				fv.SetString(sanitize(fv.String()))
			}
		case reflect.Struct:
			sanitizeStrings(fv)
		}
	}
}

// fieldName picks the wire name for a struct field: the preferred tag,
// then the json tag, then the lowercased Go name.
func fieldName(field reflect.StructField, preferred string) string {
	for _, tag := range []string{preferred, "json"} {
		if v, ok := field.Tag.Lookup(tag); ok {
			name, _, _ := strings.Cut(v, ",")
			if name != "" {
				return name
			}
		}
	}
	return strings.ToLower(field.Name)
}
