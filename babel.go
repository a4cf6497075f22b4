package babel

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
)

// DefaultLocale is the locale identifier used when no default is configured.
const DefaultLocale = "en"

// DefaultTimezone is the timezone identifier used when no default is configured.
const DefaultTimezone = "UTC"

// DefaultDirectory is the translation directory used when none are configured.
const DefaultDirectory = "translations"

// LocaleSelectorFunc resolves the locale identifier for a request.
// It receives the request context and returns an identifier such as "de_DE"
// or "en-US". Returning an empty string means "no opinion" and falls back to
// the configured default locale.
type LocaleSelectorFunc func(ctx context.Context) string

// TimezoneSelectorFunc resolves the timezone for a request.
// It may return a textual zone identifier (string, e.g. "Europe/Vienna"),
// an already-resolved *time.Location, or nil for "no opinion".
// Any other value surfaces as ErrInvalidTimezone.
type TimezoneSelectorFunc func(ctx context.Context) any

// Babel resolves locale, timezone, and gettext translation catalogs per
// request, and backs the package-level formatting and translation functions.
// Its configuration is immutable after New; the only mutable state is the
// selector hook slots and the process-wide catalog cache.
type Babel struct {
	defaultLocale   language.Tag
	defaultLocaleID string
	defaultTZID     string
	defaultTZ       *time.Location
	directories     []string
	rootPath        string

	// Format-kind map in the two-step lookup scheme: "datetime" maps to a
	// named size by default, "datetime.medium" overrides the locale layout
	// when non-empty.
	dateFormats map[string]string

	localeFormats map[string]*LocaleFormat
	templateFuncs bool
	logger        *slog.Logger

	localeSelector   LocaleSelectorFunc
	timezoneSelector TimezoneSelectorFunc

	mu       sync.RWMutex
	catalogs map[string]*Catalog
	loads    singleflight.Group
}

// New creates a Babel instance with the given options. The default locale,
// timezone, and translation directory follow the package constants unless
// overridden. Invalid locale or timezone identifiers fail construction.
func New(opts ...Option) (*Babel, error) {
	b := &Babel{
		defaultLocaleID: DefaultLocale,
		defaultTZID:     DefaultTimezone,
		directories:     []string{DefaultDirectory},
		dateFormats:     maps.Clone(defaultDateFormats),
		localeFormats:   make(map[string]*LocaleFormat),
		templateFuncs:   true,
		logger:          slog.Default(),
		catalogs:        make(map[string]*Catalog),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	tag, err := ParseLocale(b.defaultLocaleID)
	if err != nil {
		return nil, err
	}
	b.defaultLocale = tag

	loc, err := loadTimezone(b.defaultTZID)
	if err != nil {
		return nil, err
	}
	b.defaultTZ = loc

	return b, nil
}

// LocaleSelector registers the callback used to pick the locale for a
// request. The default behaves as if a selector always returning "" were
// registered, which falls back to the configured default locale.
//
// Registering a second selector is a programming error and panics.
func (b *Babel) LocaleSelector(f LocaleSelectorFunc) {
	if b.localeSelector != nil {
		panic("babel: a locale selector is already registered")
	}
	b.localeSelector = f
}

// TimezoneSelector registers the callback used to pick the timezone for a
// request. Registering a second selector is a programming error and panics.
func (b *Babel) TimezoneSelector(f TimezoneSelectorFunc) {
	if b.timezoneSelector != nil {
		panic("babel: a timezone selector is already registered")
	}
	b.timezoneSelector = f
}

// DefaultLocaleTag returns the configured default locale.
func (b *Babel) DefaultLocaleTag() language.Tag {
	return b.defaultLocale
}

// DefaultTimezoneLocation returns the configured default timezone.
func (b *Babel) DefaultTimezoneLocation() *time.Location {
	return b.defaultTZ
}

// TranslationDirectories returns the configured catalog directories with
// relative paths resolved against the root path.
func (b *Babel) TranslationDirectories() []string {
	dirs := make([]string, 0, len(b.directories))
	for _, dir := range b.directories {
		if !filepath.IsAbs(dir) && b.rootPath != "" {
			dir = filepath.Join(b.rootPath, dir)
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// ListTranslations enumerates the locales for which at least one catalog
// tree (<dir>/<locale>/LC_MESSAGES with .mo or .po files) exists in any
// configured directory. When nothing is found, the default locale is
// returned so callers always have at least one language to offer.
func (b *Babel) ListTranslations() []language.Tag {
	seen := make(map[string]bool)
	var result []language.Tag

	for _, dir := range b.TranslationDirectories() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if !hasCatalogFiles(filepath.Join(dir, entry.Name(), "LC_MESSAGES")) {
				continue
			}
			tag, err := ParseLocale(entry.Name())
			if err != nil {
				b.logger.Debug("skipping unparsable locale directory",
					slog.String("dir", dir), slog.String("name", entry.Name()))
				continue
			}
			if id := tag.String(); !seen[id] {
				seen[id] = true
				result = append(result, tag)
			}
		}
	}

	if len(result) == 0 {
		result = append(result, b.defaultLocale)
	}

	slices.SortFunc(result, func(a, c language.Tag) int {
		return strings.Compare(a.String(), c.String())
	})
	return result
}

func hasCatalogFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".mo", ".po":
			return true
		}
	}
	return false
}

// ParseLocale parses a locale identifier into a language tag. Both BCP 47
// ("de-DE") and POSIX ("de_DE") forms are accepted.
func ParseLocale(id string) (language.Tag, error) {
	if id == "" {
		return language.Tag{}, ErrEmptyLocale
	}
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return language.Tag{}, fmt.Errorf("%w: %q: %s", ErrInvalidLocale, id, err)
	}
	return tag, nil
}

// localeID converts a language tag into the POSIX-style identifier used for
// catalog directory lookups ("de-DE" becomes "de_DE").
func localeID(tag language.Tag) string {
	return strings.ReplaceAll(tag.String(), "-", "_")
}

func loadTimezone(id string) (*time.Location, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidTimezone, id, err)
	}
	return loc, nil
}
