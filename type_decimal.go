package pool

import "github.com/shopspring/decimal"

// settlementPlaces is the number of decimal places under which a settlement
// amount is considered to be zero.
const settlementPlaces = 8

// D is a convenient factory for decimal.Decimal
func D[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseAmount parses a user supplied decimal, accepting both "12.5" and "12,5".
func ParseAmount(s string) (decimal.Decimal, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			s = s[:i] + "." + s[i+1:]
			break
		}
	}
	return decimal.NewFromString(s)
}

// negligible reports whether v is zero at settlement precision.
func negligible(v decimal.Decimal) bool {
	return v.Round(settlementPlaces).IsZero()
}
