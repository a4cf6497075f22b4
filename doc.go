// Package babel adds i18n/l10n support to HTTP applications: per-request
// locale, timezone, and gettext catalog resolution, locale-aware date,
// number, and currency formatting, plural-aware translation, and lazy
// translated strings.
//
// The package contributes no locale data of its own. Number formatting and
// locale matching come from golang.org/x/text, catalog parsing and plural
// rules from github.com/leonelquinteros/gotext; this package supplies the
// per-request resolution and caching policy that glues them to a request
// lifecycle.
//
// # Setup
//
// Create a Babel instance at startup and mount its middleware:
//
//	b, err := babel.New(
//		babel.WithDefaultLocale("en"),
//		babel.WithDefaultTimezone("UTC"),
//		babel.WithTranslationDirectories("translations"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	handler := b.Middleware()(mux)
//
// Catalogs live in the conventional gettext layout:
//
//	translations/de/LC_MESSAGES/messages.mo
//	translations/de/LC_MESSAGES/messages.po
//
// # Per-request resolution
//
// Handlers call the package-level functions with the request context. The
// locale is resolved once per request through an optional selector hook and
// cached; translation catalogs are additionally cached per locale for the
// process lifetime:
//
//	b.LocaleSelector(func(ctx context.Context) string {
//		return userLocale(ctx) // "" falls back to the default
//	})
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		ctx := r.Context()
//		greeting := babel.Gettext(ctx, "Hello %(name)s!", babel.M{"name": "World"})
//		stamp, _ := babel.FormatDatetime(ctx, time.Now(), "")
//		...
//	}
//
// Outside any request scope every function degrades to fixed defaults:
// English, UTC, and identity translation.
//
// # Lazy strings
//
// LazyGettext defers translation until the value is used, so messages can be
// declared at package level and rendered with whatever locale the eventual
// request resolves:
//
//	var errRequired = babel.LazyGettext("This field is required")
//
//	func validate(ctx context.Context) string {
//		return errRequired.Translate(ctx)
//	}
package babel
