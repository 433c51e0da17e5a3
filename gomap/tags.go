package gomap

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/agnes1/TreeML/ir"
)

const tagKey = "treeml"

func fillTags(root *ir.Root, p any) error {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return nil
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return nil
	}
	ty := val.Type()
	for i := range ty.NumField() {
		f := ty.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		if err := tagOpt(f, val.Field(i), root); err != nil {
			return err
		}
	}
	return nil
}

func tagOpt(f reflect.StructField, fVal reflect.Value, root *ir.Root) error {
	st, ok := f.Tag.Lookup(tagKey)
	if !ok {
		return nil
	}
	k, key, ok := strings.Cut(st, "=")
	if !ok || k != "tag" || key == "" {
		return fmt.Errorf("%w: field %s: %q", ErrStructTag, f.Name, st)
	}
	v, ok := root.TagValue(key)
	if !ok {
		return nil
	}
	switch fVal.Kind() {
	case reflect.String:
		fVal.SetString(v)
	case reflect.Bool:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: field %s: %w", ErrStructTag, f.Name, err)
		}
		fVal.SetBool(b)
	default:
		return fmt.Errorf("%w: field %s has kind %s", ErrStructTag, f.Name, fVal.Kind())
	}
	return nil
}
