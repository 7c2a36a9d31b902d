package output

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults used when no locale or currency is configured.
const (
	DefaultLocale   = "pt-BR"
	DefaultCurrency = "BRL"
)

// CurrencyFormatter renders whole currency amounts for one locale and currency.
// It is safe for concurrent use.
type CurrencyFormatter struct {
	Locale   language.Tag
	Currency currency.Unit

	printer *message.Printer
	symbol  string
}

// NewCurrencyFormatter builds a formatter from a BCP 47 locale and an ISO 4217 code.
func NewCurrencyFormatter(locale, code string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	printer := message.NewPrinter(tag)
	return &CurrencyFormatter{
		Locale:   tag,
		Currency: unit,
		printer:  printer,
		symbol:   printer.Sprint(currency.Symbol(unit)),
	}, nil
}

// DefaultCurrencyFormatter formats Brazilian reais for the pt-BR locale.
func DefaultCurrencyFormatter() *CurrencyFormatter {
	cf, err := NewCurrencyFormatter(DefaultLocale, DefaultCurrency)
	if err != nil {
		panic(err)
	}
	return cf
}

// Symbol returns the localized currency symbol.
func (cf *CurrencyFormatter) Symbol() string {
	return cf.symbol
}

// Format renders v with no fraction digits and locale digit grouping, e.g. "R$ 1.234.568".
// Negative amounts carry the sign before the symbol ("-R$ 1.234"). In compact mode
// amounts of a million or more render as "R$ 1.2M" and amounts of a thousand or more
// as "R$ 235K".
func (cf *CurrencyFormatter) Format(v float64, compact bool) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%s %v", cf.symbol, v)
	}
	if compact {
		switch abs := math.Abs(v); {
		case abs >= 1e6:
			return fmt.Sprintf("%s %.1fM", cf.symbol, v/1e6)
		case abs >= 1e3:
			return fmt.Sprintf("%s %.0fK", cf.symbol, v/1e3)
		}
	}
	r := math.Round(v)
	sign := ""
	switch {
	case r < 0:
		sign, r = "-", -r
	case r == 0:
		r = 0 // drops negative zero
	}
	return sign + cf.symbol + " " + cf.printer.Sprint(number.Decimal(r, number.MaxFractionDigits(0)))
}

// FormatDecimal is Format for decimal amounts.
func (cf *CurrencyFormatter) FormatDecimal(d decimal.Decimal, compact bool) string {
	return cf.Format(d.InexactFloat64(), compact)
}
