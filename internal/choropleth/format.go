package choropleth

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cellmap-service/internal/domain"
)

// FormatNumber - компактная запись числа: 1.2M, 3.4k, 17, 0.25
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.NoDataPlaceholder
	}
	switch {
	case v >= 1_000_000:
		return toFixed(v/1_000_000, 1) + "M"
	case v >= 1_000:
		return toFixed(v/1_000, 1) + "k"
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return toFixed(v, 2)
	}
}

// toFixed - как Number.prototype.toFixed в JS: округляется точное двоичное значение,
// вверх только точная середина (0.125 -> "0.13", 0.015 -> "0.01")
func toFixed(v float64, digits int) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}

	scaled := new(big.Float).SetPrec(256).SetFloat64(v)
	scaled.Mul(scaled, new(big.Float).SetPrec(256).SetFloat64(math.Pow10(digits)))
	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(scaled, new(big.Float).SetPrec(256).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return sign + strconv.FormatFloat(v, 'f', digits, 64)
	}

	whole.Add(whole, big.NewInt(1))
	s := whole.String()
	if digits == 0 {
		return sign + s
	}
	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}
	return sign + s[:len(s)-digits] + "." + s[len(s)-digits:]
}

// FormatValue - FormatNumber для значения, которого может не быть
func FormatValue(v float64, ok bool) string {
	if !ok {
		return domain.NoDataPlaceholder
	}
	return FormatNumber(v)
}
