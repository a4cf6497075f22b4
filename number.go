package babel

import (
	"context"
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatNumber formats a number with the request locale's digit grouping and
// decimal separators.
func FormatNumber(ctx context.Context, n any) (string, error) {
	return formatNumeric(ctx, number.Decimal(n))
}

// FormatDecimal formats a decimal number for the request's locale. Explicit
// precision is passed through number options:
//
//	babel.FormatDecimal(ctx, 1.2345, number.Scale(2))
func FormatDecimal(ctx context.Context, n any, opts ...number.Option) (string, error) {
	return formatNumeric(ctx, number.Decimal(n, opts...))
}

// FormatPercent formats a fraction as a percentage for the request's locale
// (0.34 renders as "34%" in English).
func FormatPercent(ctx context.Context, n any, opts ...number.Option) (string, error) {
	return formatNumeric(ctx, number.Percent(n, opts...))
}

// FormatScientific formats a number in scientific notation for the
// request's locale.
func FormatScientific(ctx context.Context, n any, opts ...number.Option) (string, error) {
	return formatNumeric(ctx, number.Scientific(n, opts...))
}

// FormatCurrency formats an amount of the ISO 4217 currency for the
// request's locale: the narrow symbol, two fraction digits unless number
// options say otherwise, and the symbol position from the locale format.
func FormatCurrency(ctx context.Context, amount float64, code string, opts ...number.Option) (string, error) {
	tag, err := GetLocale(ctx)
	if err != nil {
		return "", err
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %s", ErrInvalidCurrency, code, err)
	}

	if len(opts) == 0 {
		opts = []number.Option{number.Scale(2)}
	}

	p := message.NewPrinter(tag)
	value := p.Sprint(number.Decimal(amount, opts...))
	symbol := p.Sprint(currency.NarrowSymbol(unit))

	if localeFormatFor(babelFrom(ctx), tag).CurrencyPosition() == CurrencyAfter {
		return value + " " + symbol, nil
	}
	return symbol + value, nil
}

func formatNumeric(ctx context.Context, f number.Formatter) (string, error) {
	tag, err := GetLocale(ctx)
	if err != nil {
		return "", err
	}
	return message.NewPrinter(tag).Sprint(f), nil
}
