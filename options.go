package babel

import (
	"log/slog"
	"maps"
)

// Option configures a Babel instance during construction.
type Option func(*Babel) error

// WithDefaultLocale sets the default locale identifier ("en", "de_DE").
func WithDefaultLocale(id string) Option {
	return func(b *Babel) error {
		if id == "" {
			return ErrEmptyLocale
		}
		b.defaultLocaleID = id
		return nil
	}
}

// WithDefaultTimezone sets the default timezone identifier ("Europe/Vienna").
func WithDefaultTimezone(id string) Option {
	return func(b *Babel) error {
		b.defaultTZID = id
		return nil
	}
}

// WithTranslationDirectories sets the catalog directories searched for
// <locale>/LC_MESSAGES trees. Relative paths are resolved against the root
// path. The default is a single "translations" directory.
func WithTranslationDirectories(dirs ...string) Option {
	return func(b *Babel) error {
		if len(dirs) > 0 {
			b.directories = dirs
		}
		return nil
	}
}

// WithRootPath sets the application root against which relative translation
// directories are resolved.
func WithRootPath(path string) Option {
	return func(b *Babel) error {
		b.rootPath = path
		return nil
	}
}

// WithDateFormat overrides a single entry of the format-kind map. The key is
// either a kind ("datetime", "date", "time") whose value is a named size or
// a Go layout, or a kind.size pair ("datetime.medium") whose value replaces
// the locale's layout for that size.
func WithDateFormat(key, format string) Option {
	return func(b *Babel) error {
		b.dateFormats[key] = format
		return nil
	}
}

// WithDateFormats merges a format-kind map into the defaults.
func WithDateFormats(formats map[string]string) Option {
	return func(b *Babel) error {
		maps.Copy(b.dateFormats, formats)
		return nil
	}
}

// WithLocaleFormat registers a locale format for a locale identifier,
// replacing the built-in one. The identifier may be a full tag ("de-DE") or
// a base language ("de").
func WithLocaleFormat(locale string, lf *LocaleFormat) Option {
	return func(b *Babel) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		tag, err := ParseLocale(locale)
		if err != nil {
			return err
		}
		b.localeFormats[tag.String()] = lf
		return nil
	}
}

// WithLogger sets the logger used for catalog loading diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Babel) error {
		if logger != nil {
			b.logger = logger
		}
		return nil
	}
}

// WithoutTemplateFuncs disables the template integration entirely:
// FuncMap returns nil.
func WithoutTemplateFuncs() Option {
	return func(b *Babel) error {
		b.templateFuncs = false
		return nil
	}
}
