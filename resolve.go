package babel

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// GetLocale returns the locale that should be used for the request carried
// by ctx. Outside a request scope it returns English. The resolved value is
// cached on the scope, so the selector hook runs at most once per request.
// An unparsable selector result surfaces as an error and is not cached.
func GetLocale(ctx context.Context) (language.Tag, error) {
	sc := scopeFrom(ctx)
	if sc == nil {
		return language.English, nil
	}
	if sc.locale != nil {
		return *sc.locale, nil
	}

	b := sc.babel
	tag := b.defaultLocale
	if b.localeSelector != nil {
		if rv := b.localeSelector(ctx); rv != "" {
			parsed, err := ParseLocale(rv)
			if err != nil {
				return language.Tag{}, err
			}
			tag = parsed
		}
	}

	sc.locale = &tag
	return tag, nil
}

// GetTimezone returns the timezone that should be used for the request
// carried by ctx. Outside a request scope it returns UTC. The selector hook
// may return either a zone identifier string or a *time.Location; anything
// else is reported as ErrInvalidTimezone.
func GetTimezone(ctx context.Context) (*time.Location, error) {
	sc := scopeFrom(ctx)
	if sc == nil {
		return time.UTC, nil
	}
	if sc.tzinfo != nil {
		return sc.tzinfo, nil
	}

	b := sc.babel
	tzinfo := b.defaultTZ
	if b.timezoneSelector != nil {
		switch rv := b.timezoneSelector(ctx).(type) {
		case nil:
		case string:
			if rv != "" {
				loc, err := loadTimezone(rv)
				if err != nil {
					return nil, err
				}
				tzinfo = loc
			}
		case *time.Location:
			if rv != nil {
				tzinfo = rv
			}
		default:
			return nil, fmt.Errorf("%w: selector returned %T", ErrInvalidTimezone, rv)
		}
	}

	sc.tzinfo = tzinfo
	return tzinfo, nil
}

// GetTranslations returns the translation catalog for the request carried by
// ctx. It never fails: outside a request scope, or when the selected locale
// has no catalogs, the returned catalog performs identity lookups. Catalogs
// are cached per locale for the process lifetime and per request on the
// scope.
func GetTranslations(ctx context.Context) *Catalog {
	sc := scopeFrom(ctx)
	if sc == nil {
		return nil
	}
	if sc.catalog != nil {
		return sc.catalog
	}

	tag, err := GetLocale(ctx)
	if err != nil {
		// Resolution must not fail here; fall back to the default locale
		// without poisoning the locale slot.
		tag = sc.babel.defaultLocale
	}

	catalog := sc.babel.catalog(localeID(tag))
	sc.catalog = catalog
	return catalog
}

// ForceLocale temporarily overrides the resolved locale while fn runs:
//
//	err := babel.ForceLocale(ctx, "en_US", func() error {
//		return sendEmail(babel.Gettext(ctx, "Hello!"), ...)
//	})
//
// It swaps the locale selector for one that always answers with the given
// locale, clears the request's locale and translation slots, and restores
// both the selector and the originally cached values on every exit path,
// including when fn returns an error.
//
// Known limitation: the selector slot is shared process state, so the
// override also affects requests that resolve their locale while fn runs.
// It is intended for the single-worker request model.
func ForceLocale(ctx context.Context, locale string, fn func() error) error {
	sc := scopeFrom(ctx)
	if sc == nil {
		return fn()
	}

	b := sc.babel
	origSelector := b.localeSelector
	origLocale := sc.locale
	origCatalog := sc.catalog

	b.localeSelector = func(context.Context) string { return locale }
	sc.locale = nil
	sc.catalog = nil

	defer func() {
		b.localeSelector = origSelector
		sc.locale = origLocale
		sc.catalog = origCatalog
	}()

	return fn()
}
