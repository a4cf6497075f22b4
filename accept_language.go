package babel

import (
	"context"

	"golang.org/x/text/language"
)

// AcceptLanguageSelector returns a locale selector that matches the
// request's Accept-Language header against the supported locales, honoring
// quality values. It has no opinion outside HTTP handling or when the
// header is absent.
//
//	b.LocaleSelector(babel.AcceptLanguageSelector(b.ListTranslations()...))
func AcceptLanguageSelector(supported ...language.Tag) LocaleSelectorFunc {
	if len(supported) == 0 {
		supported = []language.Tag{language.English}
	}
	matcher := language.NewMatcher(supported)

	return func(ctx context.Context) string {
		r := RequestFromContext(ctx)
		if r == nil {
			return ""
		}
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		desired, _, _ := language.ParseAcceptLanguage(header)
		_, index, conf := matcher.Match(desired...)
		if conf == language.No {
			return ""
		}
		return supported[index].String()
	}
}

// QuerySelector returns a locale selector that reads a query parameter
// ("?lang=de"). It has no opinion when the parameter is absent.
func QuerySelector(param string) LocaleSelectorFunc {
	return func(ctx context.Context) string {
		if r := RequestFromContext(ctx); r != nil {
			return r.URL.Query().Get(param)
		}
		return ""
	}
}

// CookieSelector returns a locale selector that reads a cookie value. It has
// no opinion when the cookie is absent.
func CookieSelector(name string) LocaleSelectorFunc {
	return func(ctx context.Context) string {
		if r := RequestFromContext(ctx); r != nil {
			if cookie, err := r.Cookie(name); err == nil {
				return cookie.Value
			}
		}
		return ""
	}
}

// ChainSelectors combines selectors; the first one with an opinion wins.
// Typical wiring is cookie preference first, Accept-Language second:
//
//	b.LocaleSelector(babel.ChainSelectors(
//		babel.CookieSelector("lang"),
//		babel.AcceptLanguageSelector(b.ListTranslations()...),
//	))
func ChainSelectors(selectors ...LocaleSelectorFunc) LocaleSelectorFunc {
	return func(ctx context.Context) string {
		for _, selector := range selectors {
			if rv := selector(ctx); rv != "" {
				return rv
			}
		}
		return ""
	}
}
