package models

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
)

// FitsMinorUnits reports whether ToMinorUnits(amount) is exact, i.e. the rounded
// minor-unit value is within int64 and not negative.
func FitsMinorUnits(amount decimal.Decimal) bool {
	minor := amount.Mul(hundred).Round(0)
	return !minor.IsNegative() && minor.LessThanOrEqual(maxMinor)
}

// ToMinorUnits переводит сумму в минимальные единицы валюты (пенсы, центы)
// Округление half away from zero: 0.125 -> 13
// Сумма должна проходить FitsMinorUnits, иначе результат переполняется
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromMinorUnits переводит минимальные единицы обратно в основную валюту без потери точности
func FromMinorUnits(minor decimal.Decimal) decimal.Decimal {
	return minor.Div(hundred)
}

// currencySymbols maps ISO currency codes to display symbols.
var currencySymbols = map[string]string{
	"GBP": "£",
	"USD": "$",
}

// CurrencySymbol returns the display symbol for an ISO currency code.
func CurrencySymbol(code string) (string, bool) {
	symbol, ok := currencySymbols[code]
	return symbol, ok
}

// FormatPrice renders an amount with two decimals followed by the currency symbol.
// Unknown codes fall back to " CODE" so the amount is never shown without a currency.
func FormatPrice(amount decimal.Decimal, currencyCode string) string {
	if symbol, ok := CurrencySymbol(currencyCode); ok {
		return amount.StringFixed(2) + symbol
	}
	if currencyCode == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currencyCode
}
