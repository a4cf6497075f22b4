package babel

import (
	"context"
	"math"
	"time"
)

// defaultDateFormats mirrors the baseline format-kind map: each kind
// defaults to its medium size, and no kind.size override is set, so the
// locale's own layout applies.
var defaultDateFormats = map[string]string{
	"time":     SizeMedium,
	"date":     SizeMedium,
	"datetime": SizeMedium,
}

// resolveFormat performs the two-step format lookup for a kind: an explicit
// format wins; otherwise the kind's configured default applies; when the
// result is a named size, a configured "kind.size" override may replace it
// with a concrete layout.
func resolveFormat(b *Babel, kind, format string) string {
	formats := defaultDateFormats
	if b != nil {
		formats = b.dateFormats
	}

	if format == "" {
		format = formats[kind]
	}

	switch format {
	case SizeShort, SizeMedium, SizeLong, SizeFull:
		if rv := formats[kind+"."+format]; rv != "" {
			format = rv
		}
	}

	return format
}

// layoutFor turns the resolved format into a Go layout: named sizes go
// through the locale's layout table, anything else is already a layout.
func layoutFor(ctx context.Context, kind, format string) (string, error) {
	tag, err := GetLocale(ctx)
	if err != nil {
		return "", err
	}

	switch format {
	case SizeShort, SizeMedium, SizeLong, SizeFull:
		return localeFormatFor(babelFrom(ctx), tag).layout(kind, format), nil
	}
	return format, nil
}

// ToUserTimezone converts an instant to the request's timezone. This happens
// automatically in all date formatting; use it directly whenever a raw
// time.Time has to be shown in the user's wall-clock zone.
func ToUserTimezone(ctx context.Context, t time.Time) (time.Time, error) {
	tzinfo, err := GetTimezone(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(tzinfo), nil
}

// ToUTC reinterprets the wall-clock reading of t in the request's timezone
// and returns the corresponding UTC instant, the opposite operation to
// ToUserTimezone. The location t carries is ignored; only its clock fields
// count.
func ToUTC(ctx context.Context, t time.Time) (time.Time, error) {
	tzinfo, err := GetTimezone(ctx)
	if err != nil {
		return time.Time{}, err
	}
	local := time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), tzinfo)
	return local.UTC(), nil
}

// FormatDatetime formats an instant's date and time for the request's
// locale, rebased into the request's timezone. The format is "" for the
// configured default, a named size ("short", "medium", "long", "full"), or
// a Go layout.
func FormatDatetime(ctx context.Context, t time.Time, format string) (string, error) {
	return formatDated(ctx, t, "datetime", format)
}

// FormatDate formats the date part of an instant for the request's locale,
// rebased into the request's timezone. See FormatDatetime for the format
// parameter.
func FormatDate(ctx context.Context, t time.Time, format string) (string, error) {
	return formatDated(ctx, t, "date", format)
}

// FormatTime formats the time part of an instant for the request's locale,
// rebased into the request's timezone. See FormatDatetime for the format
// parameter.
func FormatTime(ctx context.Context, t time.Time, format string) (string, error) {
	return formatDated(ctx, t, "time", format)
}

func formatDated(ctx context.Context, t time.Time, kind, format string) (string, error) {
	format = resolveFormat(babelFrom(ctx), kind, format)

	layout, err := layoutFor(ctx, kind, format)
	if err != nil {
		return "", err
	}

	rebased, err := ToUserTimezone(ctx, t)
	if err != nil {
		return "", err
	}

	return rebased.Format(layout), nil
}

// TimedeltaOption configures FormatTimedelta.
type TimedeltaOption func(*timedeltaConfig)

type timedeltaConfig struct {
	granularity string
	threshold   float64
	direction   bool
}

// WithGranularity sets the smallest unit the delta is expressed in
// ("year", "month", "week", "day", "hour", "minute", "second").
func WithGranularity(unit string) TimedeltaOption {
	return func(cfg *timedeltaConfig) {
		cfg.granularity = unit
	}
}

// WithThreshold sets the factor at which the next larger unit takes over.
// The default 0.85 renders 6 days as "1 week"; a threshold of 1 keeps it at
// "6 days".
func WithThreshold(threshold float64) TimedeltaOption {
	return func(cfg *timedeltaConfig) {
		cfg.threshold = threshold
	}
}

// WithDirection renders the delta relative to now: "3 hours ago" for
// positive (elapsed) durations, "in 3 hours" for negative ones.
func WithDirection() TimedeltaOption {
	return func(cfg *timedeltaConfig) {
		cfg.direction = true
	}
}

type timedeltaUnit struct {
	name     string
	secs     float64
	singular string
	plural   string
}

// Unit names route through NGettext so apps can localize them in their own
// catalogs alongside the rest of their messages.
var timedeltaUnits = []timedeltaUnit{
	{"year", 365 * 24 * 3600, "%(num)d year", "%(num)d years"},
	{"month", 30 * 24 * 3600, "%(num)d month", "%(num)d months"},
	{"week", 7 * 24 * 3600, "%(num)d week", "%(num)d weeks"},
	{"day", 24 * 3600, "%(num)d day", "%(num)d days"},
	{"hour", 3600, "%(num)d hour", "%(num)d hours"},
	{"minute", 60, "%(num)d minute", "%(num)d minutes"},
	{"second", 1, "%(num)d second", "%(num)d seconds"},
}

// FormatTimedelta renders an elapsed duration in the largest unit that
// crosses the threshold ("1 week", "6 days"). A zero delta renders as an
// empty string. Callers format a timestamp's age with time.Since.
func FormatTimedelta(ctx context.Context, delta time.Duration, opts ...TimedeltaOption) string {
	cfg := &timedeltaConfig{
		granularity: "second",
		threshold:   0.85,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	secs := math.Abs(delta.Seconds())

	for _, unit := range timedeltaUnits {
		value := secs / unit.secs
		if value >= cfg.threshold || unit.name == cfg.granularity {
			// The granularity unit clamps to one: a nonzero delta below it
			// renders as one unit, never as an empty string.
			if unit.name == cfg.granularity && value > 0 {
				value = math.Max(value, 1)
			}
			num := int(math.Round(value))
			if num == 0 {
				return ""
			}
			formatted := NGettext(ctx, unit.singular, unit.plural, num)
			return applyDirection(ctx, cfg, delta, formatted)
		}
	}

	return ""
}

func applyDirection(ctx context.Context, cfg *timedeltaConfig, delta time.Duration, formatted string) string {
	if !cfg.direction {
		return formatted
	}
	if delta < 0 {
		return Gettext(ctx, "in %(delta)s", M{"delta": formatted})
	}
	return Gettext(ctx, "%(delta)s ago", M{"delta": formatted})
}
