package util

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

const (
	decimalValue  = 100
	thousandValue = 1000
	percentage    = 100
)

func FormatMoney(value int64, thousandSep, decimalSep string) string {
	var result string
	var isNegative bool

	if value < 0 {
		value *= -1
		isNegative = true
	}

	// apply the decimal separator
	result = fmt.Sprintf("%s%02d%s", decimalSep, value%decimalValue, result)
	value /= decimalValue

	// for each 3 dígits put a comma ","
	for value >= thousandValue {
		result = fmt.Sprintf("%s%03d%s", thousandSep, value%thousandValue, result)
		value /= thousandValue
	}

	if isNegative {
		return fmt.Sprintf("-%d%s", value, result)
	}

	return fmt.Sprintf("%d%s", value, result)
}

// Cents rounds a decimal amount to whole cents.
func Cents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

// FormatCurrency renders an amount as US dollars, e.g. $1,234.50.
func FormatCurrency(amount float64) string {
	cents := Cents(amount)
	if cents < 0 {
		return "-$" + FormatMoney(-cents, ",", ".")
	}
	return "$" + FormatMoney(cents, ",", ".")
}

// Percentage returns part as a percentage of total, 0 when total is 0.
func Percentage[T constraints.Integer | constraints.Float](part, total T) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * percentage / float64(total)
}
