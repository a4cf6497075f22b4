package babel

import "net/http"

// Middleware returns a net/http middleware that binds every request to this
// Babel instance. It only attaches the per-request resolution scope; locale,
// timezone, and translations are resolved lazily by the first function that
// needs them.
//
// The middleware is router-agnostic and composes with chi, gin wrappers, or
// a plain mux:
//
//	mux := http.NewServeMux()
//	handler := b.Middleware()(mux)
func (b *Babel) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, b.attachRequest(r))
		})
	}
}
