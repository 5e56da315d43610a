package terbilang

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/az-ai-labs/id-lang-nlp/normalize"
)

// ErrUnsupported is returned by Strict for input types it cannot convert.
var ErrUnsupported = errors.New("terbilang: unsupported input type")

// number normalizes any supported input.
func number(input any) (normalize.Number, error) {
	switch v := input.(type) {
	case nil:
		return normalize.Number{}, normalize.ErrEmpty
	case string:
		return normalize.String(v)
	case int:
		return normalize.Int(int64(v)), nil
	case int8:
		return normalize.Int(int64(v)), nil
	case int16:
		return normalize.Int(int64(v)), nil
	case int32:
		return normalize.Int(int64(v)), nil
	case int64:
		return normalize.Int(v), nil
	case uint:
		return normalize.Uint(uint64(v)), nil
	case uint8:
		return normalize.Uint(uint64(v)), nil
	case uint16:
		return normalize.Uint(uint64(v)), nil
	case uint32:
		return normalize.Uint(uint64(v)), nil
	case uint64:
		return normalize.Uint(v), nil
	case float32:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return normalize.Float(f)
		}
		// Format at 32-bit precision so 0.1 stays "0.1".
		return normalize.String(strconv.FormatFloat(f, 'f', -1, 32))
	case float64:
		return normalize.Float(v)
	case decimal.Decimal:
		return normalize.Decimal(v)
	case *decimal.Decimal:
		if v == nil {
			return normalize.Number{}, normalize.ErrEmpty
		}
		return normalize.Decimal(*v)
	case json.Number:
		return normalize.String(string(v))
	default:
		return normalize.Number{}, fmt.Errorf("%w: %T", ErrUnsupported, input)
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
