package jobs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// SalaryNegotiable is the sentinel rendered when a vacancy carries no
// salary information at all.
const SalaryNegotiable = "Salary negotiable"

// CurrencySymbol maps a currency code to its display symbol. Unknown codes
// fall back to the ZAR symbol, the site's local currency.
func CurrencySymbol(code string) string {
	switch code {
	case models.CurrencyUSD:
		return "$"
	case models.CurrencyEUR:
		return "€"
	case models.CurrencyGBP:
		return "£"
	default:
		return "R"
	}
}

// FormattedSalary derives the display salary for a vacancy.
//
// With both structured bounds present it renders
// "<sym><min> - <sym><max> per annum" with thousands separators and no
// decimals. Otherwise the raw salary text is normalized: a leading "$" is
// swapped for the vacancy currency's symbol, text without a leading symbol
// gets one prefixed, and already-normalized text passes through untouched.
// Feeding the output back in as the raw salary yields the same string.
func FormattedSalary(v *models.Vacancy) string {
	sym := CurrencySymbol(v.Currency)

	if v.SalaryMin != nil && v.SalaryMax != nil {
		return fmt.Sprintf("%s%s - %s%s per annum",
			sym, formatAmount(*v.SalaryMin), sym, formatAmount(*v.SalaryMax))
	}

	if v.Salary != "" {
		if v.Salary == SalaryNegotiable {
			return v.Salary
		}
		if strings.HasPrefix(v.Salary, sym) {
			return v.Salary
		}
		if strings.HasPrefix(v.Salary, "$") {
			return sym + strings.TrimPrefix(v.Salary, "$")
		}
		return sym + v.Salary
	}

	return SalaryNegotiable
}

// formatAmount renders an amount with comma thousands separators and no
// decimal places.
func formatAmount(amount float64) string {
	n := int64(math.Round(amount))

	negative := n < 0
	if negative {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
