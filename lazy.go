package babel

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"html/template"
	"iter"
	"strings"
)

// LazyString wraps a translation call whose evaluation is deferred until the
// value is actually used as a string. It lets translatable messages be
// declared before any request exists and rendered later against the locale
// the request resolves to:
//
//	var greeting = babel.LazyGettext("Hello World")
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		io.WriteString(w, greeting.Translate(r.Context()))
//	}
//
// A LazyString has two states: unevaluated (message, optional context, and
// variables captured at construction) and evaluated (the memoized result).
// The transition happens exactly once, on the first Translate call or
// string-style use, and construction can never fail; errors in the wrapped
// translation surface at first use.
//
// Serialization captures the unevaluated constructor form, never the
// memoized value, so a deserialized LazyString re-evaluates against the
// receiving process's state.
type LazyString struct {
	msgctx string
	msgid  string
	vars   M

	evaluated bool
	value     string
}

// LazyGettext wraps Gettext for deferred evaluation.
func LazyGettext(msgid string, vars ...M) *LazyString {
	return &LazyString{msgid: msgid, vars: mergeVars(vars)}
}

// LazyPGettext wraps PGettext for deferred evaluation.
func LazyPGettext(msgctx, msgid string, vars ...M) *LazyString {
	return &LazyString{msgctx: msgctx, msgid: msgid, vars: mergeVars(vars)}
}

// Translate evaluates the wrapped translation against the request carried by
// ctx and memoizes the result. Later calls return the memoized value
// regardless of ctx; build a fresh LazyString to resolve again.
func (s *LazyString) Translate(ctx context.Context) string {
	if !s.evaluated {
		var vars []M
		if len(s.vars) > 0 {
			vars = []M{s.vars}
		}
		if s.msgctx != "" {
			s.value = PGettext(ctx, s.msgctx, s.msgid, vars...)
		} else {
			s.value = Gettext(ctx, s.msgid, vars...)
		}
		s.evaluated = true
	}
	return s.value
}

// String forces evaluation. Outside any request scope the wrapped
// translation degrades to the source string with variables substituted.
func (s *LazyString) String() string {
	return s.Translate(context.Background())
}

// Format applies percent substitution to the materialized value:
//
//	babel.LazyGettext("Hello %(name)s").Translate(ctx)  // "Hello %(name)s"
//	lazy.Format(babel.M{"name": "test"})                // "Hello test"
func (s *LazyString) Format(vars ...M) string {
	return expandPercent(s.String(), mergeVars(vars))
}

// Equal forces evaluation of both sides and compares. The other side may be
// a string, a *LazyString, or any fmt.Stringer.
func (s *LazyString) Equal(other any) bool {
	materialized, ok := materialize(other)
	return ok && s.String() == materialized
}

// Compare forces evaluation of both sides and compares lexicographically,
// returning the usual -1, 0, or 1. Non-string operands compare as greater.
func (s *LazyString) Compare(other any) int {
	materialized, ok := materialize(other)
	if !ok {
		return -1
	}
	return strings.Compare(s.String(), materialized)
}

// Len returns the byte length of the materialized value.
func (s *LazyString) Len() int {
	return len(s.String())
}

// Bool reports whether the materialized value is non-empty.
func (s *LazyString) Bool() bool {
	return s.Len() > 0
}

// Contains reports whether the materialized value contains substr.
func (s *LazyString) Contains(substr string) bool {
	return strings.Contains(s.String(), substr)
}

// At returns the byte at index i of the materialized value.
func (s *LazyString) At(i int) byte {
	return s.String()[i]
}

// Slice returns the materialized value's substring [i:j].
func (s *LazyString) Slice(i, j int) string {
	return s.String()[i:j]
}

// Runes iterates over the materialized value's runes.
func (s *LazyString) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s.String() {
			if !yield(r) {
				return
			}
		}
	}
}

// Append concatenates the materialized value with a suffix.
func (s *LazyString) Append(suffix string) string {
	return s.String() + suffix
}

// Prepend concatenates a prefix with the materialized value.
func (s *LazyString) Prepend(prefix string) string {
	return prefix + s.String()
}

// Repeat returns the materialized value repeated count times.
func (s *LazyString) Repeat(count int) string {
	return strings.Repeat(s.String(), count)
}

// Hash returns an FNV-1a hash of the materialized value, equal for lazy and
// plain strings with the same content.
func (s *LazyString) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.String()))
	return h.Sum64()
}

// HTML marks the materialized value as already safe for HTML template
// rendering.
func (s *LazyString) HTML() template.HTML {
	return template.HTML(s.String())
}

type lazyStringJSON struct {
	Context string `json:"context,omitempty"`
	Message string `json:"message"`
	Vars    M      `json:"vars,omitempty"`
}

// MarshalJSON encodes the unevaluated constructor form.
func (s *LazyString) MarshalJSON() ([]byte, error) {
	return json.Marshal(lazyStringJSON{
		Context: s.msgctx,
		Message: s.msgid,
		Vars:    s.vars,
	})
}

// UnmarshalJSON reconstructs an unevaluated LazyString, discarding any
// memoized value a previous process may have had.
func (s *LazyString) UnmarshalJSON(data []byte) error {
	var raw lazyStringJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = LazyString{msgctx: raw.Context, msgid: raw.Message, vars: raw.Vars}
	return nil
}

// MarshalBinary encodes the unevaluated constructor form, for gob and
// similar codecs.
func (s *LazyString) MarshalBinary() ([]byte, error) {
	return s.MarshalJSON()
}

// UnmarshalBinary reconstructs an unevaluated LazyString.
func (s *LazyString) UnmarshalBinary(data []byte) error {
	return s.UnmarshalJSON(data)
}

func materialize(v any) (string, bool) {
	switch other := v.(type) {
	case string:
		return other, true
	case *LazyString:
		return other.String(), true
	case interface{ String() string }:
		return other.String(), true
	}
	return "", false
}
