package eval

import (
	"fmt"
	"math"

	"github.com/agnes1/TreeML/ir"
)

// ToAny converts v to script data. Integers become int so that they mix
// with script literals.
func ToAny(v ir.Value) any {
	switch v.Type {
	case ir.IntType:
		if v.Int >= math.MinInt && v.Int <= math.MaxInt {
			return int(v.Int)
		}
		return v.Int
	case ir.ListType:
		res := make([]any, len(v.List))
		for i := range v.List {
			res[i] = ToAny(v.List[i])
		}
		return res
	}
	return v.Any()
}

// FromAny converts script data to a value.
func FromAny(x any) (ir.Value, error) {
	switch v := x.(type) {
	case nil:
		return ir.Null(), nil
	case ir.Value:
		return v, nil
	case *ir.Node:
		if v == nil {
			return ir.Null(), nil
		}
		return v.Value, nil
	case bool:
		return ir.FromBool(v), nil
	case int:
		return ir.FromInt(int64(v)), nil
	case int8:
		return ir.FromInt(int64(v)), nil
	case int16:
		return ir.FromInt(int64(v)), nil
	case int32:
		return ir.FromInt(int64(v)), nil
	case int64:
		return ir.FromInt(v), nil
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return ir.FromInt(int64(v)), nil
	case uint16:
		return ir.FromInt(int64(v)), nil
	case uint32:
		return ir.FromInt(int64(v)), nil
	case uint64:
		return fromUint(v)
	case float32:
		return ir.FromFloat(float64(v)), nil
	case float64:
		return ir.FromFloat(v), nil
	case string:
		return ir.FromString(v), nil
	case []any:
		res := make([]ir.Value, len(v))
		for i := range v {
			x, err := FromAny(v[i])
			if err != nil {
				return ir.Value{}, err
			}
			res[i] = x
		}
		return ir.FromList(res...), nil
	case []string:
		res := make([]ir.Value, len(v))
		for i := range v {
			res[i] = ir.FromString(v[i])
		}
		return ir.FromList(res...), nil
	}
	return ir.Value{}, fmt.Errorf("%w: cannot convert %T to a value", ErrResult, x)
}

func fromUint(u uint64) (ir.Value, error) {
	if u > math.MaxInt64 {
		return ir.Value{}, fmt.Errorf("%w: %d overflows int64", ErrResult, u)
	}
	return ir.FromInt(int64(u)), nil
}
