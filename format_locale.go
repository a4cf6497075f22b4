package babel

import (
	"maps"

	"golang.org/x/text/language"
)

// Named format sizes in the two-step lookup scheme.
const (
	SizeShort  = "short"
	SizeMedium = "medium"
	SizeLong   = "long"
	SizeFull   = "full"
)

// Currency symbol positions.
const (
	CurrencyBefore = "before"
	CurrencyAfter  = "after"
)

// LocaleFormat holds the Go time layouts for a locale's named format sizes,
// plus its currency symbol position. It is immutable after creation and safe
// for concurrent use.
//
// The standard library renders month and weekday names in English only, so
// the built-in non-English formats stick to numeric layouts; applications
// needing spelled-out localized dates register their own layouts via
// WithLocaleFormat.
type LocaleFormat struct {
	date             map[string]string
	time             map[string]string
	datetime         map[string]string
	currencyPosition string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a LocaleFormat with the given options. Without
// options it carries US English layouts.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		date: map[string]string{
			SizeShort:  "1/2/06",
			SizeMedium: "Jan 2, 2006",
			SizeLong:   "January 2, 2006",
			SizeFull:   "Monday, January 2, 2006",
		},
		time: map[string]string{
			SizeShort:  "3:04 PM",
			SizeMedium: "3:04:05 PM",
			SizeLong:   "3:04:05 PM MST",
			SizeFull:   "3:04:05 PM MST",
		},
		datetime: map[string]string{
			SizeShort:  "1/2/06, 3:04 PM",
			SizeMedium: "Jan 2, 2006, 3:04:05 PM",
			SizeLong:   "January 2, 2006 at 3:04:05 PM MST",
			SizeFull:   "Monday, January 2, 2006 at 3:04:05 PM MST",
		},
		currencyPosition: CurrencyBefore,
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithDateLayout sets the date layout for a named size.
func WithDateLayout(size, layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.date[size] = layout
	}
}

// WithTimeLayout sets the time layout for a named size.
func WithTimeLayout(size, layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.time[size] = layout
	}
}

// WithDateTimeLayout sets the datetime layout for a named size.
func WithDateTimeLayout(size, layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.datetime[size] = layout
	}
}

// WithCurrencyPosition sets where the currency symbol goes ("before" or
// "after" the amount).
func WithCurrencyPosition(pos string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if pos == CurrencyBefore || pos == CurrencyAfter {
			lf.currencyPosition = pos
		}
	}
}

// CurrencyPosition returns the configured currency symbol position.
func (lf *LocaleFormat) CurrencyPosition() string {
	return lf.currencyPosition
}

// layout returns the Go layout for a kind ("date", "time", "datetime") and
// named size, falling back to medium for unknown sizes.
func (lf *LocaleFormat) layout(kind, size string) string {
	var table map[string]string
	switch kind {
	case "date":
		table = lf.date
	case "time":
		table = lf.time
	default:
		table = lf.datetime
	}
	if layout, ok := table[size]; ok && layout != "" {
		return layout
	}
	return table[SizeMedium]
}

func (lf *LocaleFormat) clone(opts ...LocaleFormatOption) *LocaleFormat {
	dup := &LocaleFormat{
		date:             maps.Clone(lf.date),
		time:             maps.Clone(lf.time),
		datetime:         maps.Clone(lf.datetime),
		currencyPosition: lf.currencyPosition,
	}
	for _, opt := range opts {
		opt(dup)
	}
	return dup
}

func newEuropeanFormat(dateSep string, opts ...LocaleFormatOption) *LocaleFormat {
	base := []LocaleFormatOption{
		WithDateLayout(SizeShort, "02"+dateSep+"01"+dateSep+"06"),
		WithDateLayout(SizeMedium, "02"+dateSep+"01"+dateSep+"2006"),
		WithDateLayout(SizeLong, "02"+dateSep+"01"+dateSep+"2006"),
		WithDateLayout(SizeFull, "02"+dateSep+"01"+dateSep+"2006"),
		WithTimeLayout(SizeShort, "15:04"),
		WithTimeLayout(SizeMedium, "15:04:05"),
		WithTimeLayout(SizeLong, "15:04:05 MST"),
		WithTimeLayout(SizeFull, "15:04:05 MST"),
		WithDateTimeLayout(SizeShort, "02"+dateSep+"01"+dateSep+"06, 15:04"),
		WithDateTimeLayout(SizeMedium, "02"+dateSep+"01"+dateSep+"2006, 15:04:05"),
		WithDateTimeLayout(SizeLong, "02"+dateSep+"01"+dateSep+"2006, 15:04:05 MST"),
		WithDateTimeLayout(SizeFull, "02"+dateSep+"01"+dateSep+"2006, 15:04:05 MST"),
	}
	return NewLocaleFormat(append(base, opts...)...)
}

// FormatEnUS returns the US English locale format.
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEnGB returns the British English locale format.
func FormatEnGB() *LocaleFormat {
	return newEuropeanFormat("/")
}

// FormatDeDE returns the German locale format.
func FormatDeDE() *LocaleFormat {
	return newEuropeanFormat(".", WithCurrencyPosition(CurrencyAfter))
}

// FormatFrFR returns the French locale format.
func FormatFrFR() *LocaleFormat {
	return newEuropeanFormat("/", WithCurrencyPosition(CurrencyAfter))
}

// FormatEsES returns the Spanish locale format.
func FormatEsES() *LocaleFormat {
	return newEuropeanFormat("/", WithCurrencyPosition(CurrencyAfter))
}

// FormatPlPL returns the Polish locale format.
func FormatPlPL() *LocaleFormat {
	return newEuropeanFormat(".", WithCurrencyPosition(CurrencyAfter))
}

// FormatRuRU returns the Russian locale format.
func FormatRuRU() *LocaleFormat {
	return newEuropeanFormat(".", WithCurrencyPosition(CurrencyAfter))
}

// FormatJaJP returns the Japanese locale format.
func FormatJaJP() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayout(SizeShort, "2006/01/02"),
		WithDateLayout(SizeMedium, "2006/01/02"),
		WithDateLayout(SizeLong, "2006/01/02"),
		WithDateLayout(SizeFull, "2006/01/02"),
		WithTimeLayout(SizeShort, "15:04"),
		WithTimeLayout(SizeMedium, "15:04:05"),
		WithTimeLayout(SizeLong, "15:04:05 MST"),
		WithTimeLayout(SizeFull, "15:04:05 MST"),
		WithDateTimeLayout(SizeShort, "2006/01/02 15:04"),
		WithDateTimeLayout(SizeMedium, "2006/01/02 15:04:05"),
		WithDateTimeLayout(SizeLong, "2006/01/02 15:04:05 MST"),
		WithDateTimeLayout(SizeFull, "2006/01/02 15:04:05 MST"),
	)
}

// FormatZhCN returns the Simplified Chinese locale format.
func FormatZhCN() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayout(SizeShort, "2006-01-02"),
		WithDateLayout(SizeMedium, "2006-01-02"),
		WithDateLayout(SizeLong, "2006-01-02"),
		WithDateLayout(SizeFull, "2006-01-02"),
		WithTimeLayout(SizeShort, "15:04"),
		WithTimeLayout(SizeMedium, "15:04:05"),
		WithTimeLayout(SizeLong, "15:04:05 MST"),
		WithTimeLayout(SizeFull, "15:04:05 MST"),
		WithDateTimeLayout(SizeShort, "2006-01-02 15:04"),
		WithDateTimeLayout(SizeMedium, "2006-01-02 15:04:05"),
		WithDateTimeLayout(SizeLong, "2006-01-02 15:04:05 MST"),
		WithDateTimeLayout(SizeFull, "2006-01-02 15:04:05 MST"),
	)
}

var builtinLocaleFormats = map[string]*LocaleFormat{
	"en":    FormatEnUS(),
	"en-GB": FormatEnGB(),
	"de":    FormatDeDE(),
	"fr":    FormatFrFR(),
	"es":    FormatEsES(),
	"pl":    FormatPlPL(),
	"ru":    FormatRuRU(),
	"ja":    FormatJaJP(),
	"zh":    FormatZhCN(),
}

// localeFormatFor picks the locale format for a tag: the Babel registry by
// exact tag then base language, then the built-ins, then US English.
func localeFormatFor(b *Babel, tag language.Tag) *LocaleFormat {
	id := tag.String()
	base, _ := tag.Base()

	if b != nil {
		if lf, ok := b.localeFormats[id]; ok {
			return lf
		}
		if lf, ok := b.localeFormats[base.String()]; ok {
			return lf
		}
	}
	if lf, ok := builtinLocaleFormats[id]; ok {
		return lf
	}
	if lf, ok := builtinLocaleFormats[base.String()]; ok {
		return lf
	}
	return builtinLocaleFormats["en"]
}
