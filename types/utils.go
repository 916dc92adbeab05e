package types

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldPath2Index resolves a dotted path of struct field names on instance,
// dereferencing pointers along the way. It returns the field value and the
// per-level field indices, which FieldByIndices reuses for later elements.
func FieldPath2Index(instance interface{}, fieldPath string) (interface{}, []int, error) {
	v := reflect.ValueOf(instance)
	fieldNames := strings.Split(fieldPath, ".")
	indices := make([]int, 0, len(fieldNames))
	for _, name := range fieldNames {
		var err error
		if v, err = indirect(v, fieldPath); err != nil {
			return nil, nil, err
		}
		field, ok := v.Type().FieldByName(name)
		if !ok || len(field.Index) != 1 || !field.IsExported() {
			return nil, nil, fmt.Errorf("%w: %q has no exported field %q", ErrFieldPath, v.Type(), name)
		}
		indices = append(indices, field.Index[0])
		v = v.Field(field.Index[0])
	}
	return v.Interface(), indices, nil
}

// FieldByIndices walks indices previously computed by FieldPath2Index.
func FieldByIndices(instance interface{}, indices []int) (interface{}, error) {
	v := reflect.ValueOf(instance)
	for _, i := range indices {
		var err error
		if v, err = indirect(v, ""); err != nil {
			return nil, err
		}
		if i >= v.NumField() {
			return nil, fmt.Errorf("%w: %q has no field #%d", ErrFieldPath, v.Type(), i)
		}
		v = v.Field(i)
	}
	return v.Interface(), nil
}

func indirect(v reflect.Value, fieldPath string) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, fmt.Errorf("%w: nil value on path %q", ErrFieldPath, fieldPath)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return v, fmt.Errorf("%w: %v is not a struct", ErrFieldPath, v.Kind())
	}
	return v, nil
}

// IsNil reports whether v is a nil pointer, interface, map, slice, channel or
// function.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
