package babel

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/text/language"
)

// scope carries the per-request resolution cache. Each slot is populated at
// most once per request unless Refresh or ForceLocale clears it. Requests
// are handled by one worker at a time, so the slots are not locked.
type scope struct {
	babel   *Babel
	request *http.Request

	locale  *language.Tag
	tzinfo  *time.Location
	catalog *Catalog
}

type scopeKey struct{}

// Attach returns a context carrying a fresh request scope bound to this
// Babel instance. The HTTP middleware does this for every request; call it
// directly for non-HTTP work (jobs, mail rendering, tests).
func (b *Babel) Attach(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, &scope{babel: b})
}

func (b *Babel) attachRequest(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), scopeKey{}, &scope{babel: b, request: r})
	return r.WithContext(ctx)
}

// scopeFrom extracts the request scope, tolerating nil contexts so every
// resolver degrades to its no-request behavior.
func scopeFrom(ctx context.Context) *scope {
	if ctx == nil {
		return nil
	}
	sc, _ := ctx.Value(scopeKey{}).(*scope)
	return sc
}

// babelFrom returns the Babel instance bound to the context, or nil outside
// a request scope.
func babelFrom(ctx context.Context) *Babel {
	if sc := scopeFrom(ctx); sc != nil {
		return sc.babel
	}
	return nil
}

// RequestFromContext returns the *http.Request the scope was attached to by
// the middleware, or nil when the scope was attached outside HTTP handling.
func RequestFromContext(ctx context.Context) *http.Request {
	if sc := scopeFrom(ctx); sc != nil {
		return sc.request
	}
	return nil
}

// Refresh invalidates the cached locale, timezone, and translations for the
// request, forcing re-resolution on next access. Use it after changing
// locale-affecting state mid-request (e.g. the user saved new preferences)
// so subsequent calls pick the change up immediately.
func Refresh(ctx context.Context) {
	if sc := scopeFrom(ctx); sc != nil {
		sc.locale = nil
		sc.tzinfo = nil
		sc.catalog = nil
	}
}
