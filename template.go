package babel

import (
	"context"
	"html/template"
	"time"

	"golang.org/x/text/number"
)

// FuncMap returns template functions bound to the request carried by ctx,
// under the conventional filter names:
//
//	gettext, ngettext, pgettext, npgettext,
//	datetimeformat, dateformat, timeformat, timedeltaformat,
//	numberformat, decimalformat, currencyformat,
//	percentformat, scientificformat
//
// Formatting functions take the value first so they pipe naturally:
//
//	{{ .CreatedAt | datetimeformat "" }}
//	{{ gettext "Hello %(name)s!" "name" .Name }}
//
// Translation functions accept trailing key/value pairs as substitution
// variables. FuncMap returns nil when template integration is disabled via
// WithoutTemplateFuncs.
func (b *Babel) FuncMap(ctx context.Context) template.FuncMap {
	if !b.templateFuncs {
		return nil
	}

	return template.FuncMap{
		"gettext": func(msgid string, pairs ...any) string {
			return Gettext(ctx, msgid, pairVars(pairs))
		},
		"ngettext": func(msgid, plural string, num int, pairs ...any) string {
			return NGettext(ctx, msgid, plural, num, pairVars(pairs))
		},
		"pgettext": func(msgctx, msgid string, pairs ...any) string {
			return PGettext(ctx, msgctx, msgid, pairVars(pairs))
		},
		"npgettext": func(msgctx, msgid, plural string, num int, pairs ...any) string {
			return NPGettext(ctx, msgctx, msgid, plural, num, pairVars(pairs))
		},
		"datetimeformat": func(format string, t time.Time) (string, error) {
			return FormatDatetime(ctx, t, format)
		},
		"dateformat": func(format string, t time.Time) (string, error) {
			return FormatDate(ctx, t, format)
		},
		"timeformat": func(format string, t time.Time) (string, error) {
			return FormatTime(ctx, t, format)
		},
		"timedeltaformat": func(delta time.Duration) string {
			return FormatTimedelta(ctx, delta)
		},
		"numberformat": func(n any) (string, error) {
			return FormatNumber(ctx, n)
		},
		"decimalformat": func(scale int, n any) (string, error) {
			return FormatDecimal(ctx, n, number.Scale(scale))
		},
		"currencyformat": func(code string, amount float64) (string, error) {
			return FormatCurrency(ctx, amount, code)
		},
		"percentformat": func(n any) (string, error) {
			return FormatPercent(ctx, n)
		},
		"scientificformat": func(n any) (string, error) {
			return FormatScientific(ctx, n)
		},
	}
}

// pairVars folds trailing key/value template arguments into a variable map.
// Odd trailing keys and non-string keys are ignored rather than failing the
// render.
func pairVars(pairs []any) M {
	vars := make(M, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if key, ok := pairs[i].(string); ok {
			vars[key] = pairs[i+1]
		}
	}
	return vars
}
