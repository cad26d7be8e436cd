package debugs

import (
	"fmt"
	"math"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	if v == nil {
		return starlark.None
	}
	if bs, ok := v.([]byte); ok {
		return starlark.Bytes(bs)
	}
	return reflectToStarlark(reflect.ValueOf(v))
}

func reflectToStarlark(value reflect.Value) starlark.Value {
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := value.Uint()
		if u <= math.MaxInt64 {
			return starlark.MakeInt64(int64(u))
		}
		return starlark.MakeUint64(u)

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.IsNil() {
			return starlark.NewList(nil)
		}
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = reflectToStarlark(value.Index(i))
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			if err := d.SetKey(
				reflectToStarlark(iter.Key()),
				reflectToStarlark(iter.Value()),
			); err != nil {
				panic(err)
			}
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(typ.NumField())
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			if err := d.SetKey(
				starlark.String(field.Name),
				reflectToStarlark(value.Field(i)),
			); err != nil {
				panic(err)
			}
		}
		return d

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return reflectToStarlark(value.Elem())

	case reflect.Func:
		if value.IsNil() {
			return starlark.None
		}
		return starlarkutil.MakeFunc("", value.Interface())

	case reflect.Invalid:
		return starlark.None

	}

	panic(fmt.Errorf("unsupported type for starlark: %v", value.Type()))
}
