package debugs

import (
	"math"
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type record struct {
		IP         int
		Tape       []uint64
		unexported int
	}

	ptr := &record{
		IP:         3,
		Tape:       []uint64{65, 0},
		unexported: 42,
	}
	recordDict := func() starlark.Value {
		d := starlark.NewDict(2)
		d.SetKey(starlark.String("IP"), starlark.MakeInt(3))
		d.SetKey(starlark.String("Tape"), starlark.NewList([]starlark.Value{
			starlark.MakeInt(65), starlark.MakeInt(0),
		}))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-1), starlark.MakeInt64(-1)},
		{"uint8", uint8(255), starlark.MakeInt(255)},
		{"max uint64 cell", uint64(math.MaxUint64), starlark.MakeUint64(math.MaxUint64)},
		{"float64", 3.5, starlark.Float(3.5)},
		{"cells", []uint64{1, 2, 3}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.MakeInt(2), starlark.MakeInt(3),
		})},
		{"nil slice", []uint64(nil), starlark.NewList(nil)},
		{"map", map[string]any{"tp": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("tp"), starlark.MakeInt(1))
			return d
		}()},
		{"struct", *ptr, recordDict()},
		{"pointer to struct", ptr, recordDict()},
		{"pointer to pointer", &ptr, recordDict()},
		{"nil pointer", (*record)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func(i int) int { return i * 2 })
		if _, ok := v.(starlark.Callable); !ok {
			t.Fatalf("got %T", v)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
