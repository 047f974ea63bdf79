package payload

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/formpath"
)

var (
	fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))
	timeType       = reflect.TypeOf(time.Time{})
)

// Bind copies payload values into the struct pointed to by v.
//
// Struct tags:
//   - `form:"name"` - binds to field "name" (defaults to the lowercased Go field name)
//   - `form:"-"` - skips the field
//   - `file:"name"` - binds uploaded files (*multipart.FileHeader or a slice of them)
//
// Nested structs bind to dotted names: a field tagged `form:"address"` of
// struct type reads "address.city" for its `form:"city"` field.
//
// Errors wrap ErrBind and, for conversion failures, are a *FieldError naming
// the offending field.
func (p Payload) Bind(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrBind)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrBind)
	}

	return p.bindStruct(rv, "")
}

func (p Payload) bindStruct(rv reflect.Value, prefix string) error {
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		if fileTag := fieldType.Tag.Get("file"); fileTag != "" && fileTag != "-" {
			name := fieldName(prefix, fileTag)
			if files := p.Files(name); len(files) > 0 {
				if err := setFileField(field, fieldType.Type, files); err != nil {
					return &FieldError{Field: name, Err: err}
				}
			}
			continue
		}

		paramName, skip := parseFieldTag(fieldType, "form")
		if skip {
			continue
		}
		name := fieldName(prefix, paramName)

		if isNestedStruct(fieldType.Type) {
			target := field
			if fieldType.Type.Kind() == reflect.Ptr {
				if !p.hasPrefix(name) {
					continue
				}
				if field.IsNil() {
					field.Set(reflect.New(fieldType.Type.Elem()))
				}
				target = field.Elem()
			}
			if err := p.bindStruct(target, name); err != nil {
				return err
			}
			continue
		}

		values := p.Values(name)
		if len(values) == 0 {
			continue
		}

		if err := setFieldValue(field, fieldType.Type, values); err != nil {
			return &FieldError{Field: name, Err: err}
		}
	}

	return nil
}

func (p Payload) hasPrefix(name string) bool {
	for _, e := range p.entries {
		if strings.HasPrefix(e.Name, name+".") {
			return true
		}
	}
	return false
}

func fieldName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return formpath.Child(prefix, name)
}

func isNestedStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t != timeType
}

// parseFieldTag returns the parameter name and whether to skip the field.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	if len(values) == 0 {
		return nil
	}
	value := values[0]

	if fieldType == timeType {
		if value == "" {
			return nil
		}
		t, err := parseTime(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(t))
		return nil
	}

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// Checkbox values.
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// setSliceValue binds repeated values; a single comma-separated value is split.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}

	slice := reflect.MakeSlice(fieldType, len(values), len(values))
	for i, value := range values {
		if err := setFieldValue(slice.Index(i), fieldType.Elem(), []string{strings.TrimSpace(value)}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}

func setFileField(field reflect.Value, fieldType reflect.Type, files []*multipart.FileHeader) error {
	for _, fh := range files {
		fh.Filename = sanitizeFilename(fh.Filename)
	}

	switch {
	case fieldType == fileHeaderType:
		field.Set(reflect.ValueOf(files[0]))
		return nil
	case fieldType.Kind() == reflect.Slice && fieldType.Elem() == fileHeaderType:
		slice := reflect.MakeSlice(fieldType, len(files), len(files))
		for i, fh := range files {
			slice.Index(i).Set(reflect.ValueOf(fh))
		}
		field.Set(slice)
		return nil
	default:
		return fmt.Errorf("unsupported type for file field: %v (expected *multipart.FileHeader or []*multipart.FileHeader)", fieldType)
	}
}

// sanitizeFilename strips directory components and null bytes.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")
	if filename == "." || filename == "/" || filename == ".." {
		return ""
	}
	return filename
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// parseTime accepts the layouts produced by date and datetime-local inputs.
func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time value %q", value)
}
