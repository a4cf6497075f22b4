package babel_test

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel"
)

func TestLazyString(t *testing.T) {
	t.Parallel()

	t.Run("defers evaluation until first use", func(t *testing.T) {
		t.Parallel()
		ctx := germanContext(t)

		lazy := babel.LazyGettext("Yes")
		assert.Equal(t, "Ja", lazy.Translate(ctx))
	})

	t.Run("memoizes the first evaluation", func(t *testing.T) {
		t.Parallel()
		ctx := germanContext(t)

		lazy := babel.LazyGettext("Yes")
		require.Equal(t, "Ja", lazy.Translate(ctx))
		assert.Equal(t, "Ja", lazy.Translate(context.Background()))
		assert.Equal(t, "Ja", lazy.String())
	})

	t.Run("captures constructor variables", func(t *testing.T) {
		t.Parallel()
		ctx := germanContext(t)

		lazy := babel.LazyGettext("Hello %(name)s!", babel.M{"name": "Peter"})
		assert.Equal(t, "Hallo Peter!", lazy.Translate(ctx))
	})

	t.Run("disambiguation context", func(t *testing.T) {
		t.Parallel()
		ctx := germanContext(t)

		assert.Equal(t, "Mai", babel.LazyPGettext("month", "May").Translate(ctx))
		assert.Equal(t, "Dürfen", babel.LazyPGettext("verb", "May").Translate(ctx))
	})

	t.Run("degrades to the source string without a scope", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello World", babel.LazyGettext("Hello World").String())
	})

	t.Run("format substitutes after materialization", func(t *testing.T) {
		t.Parallel()
		lazy := babel.LazyGettext("Hello %(name)s")
		assert.Equal(t, "Hello %(name)s", lazy.String())
		assert.Equal(t, "Hello test", lazy.Format(babel.M{"name": "test"}))
	})
}

func TestLazyStringOperations(t *testing.T) {
	t.Parallel()

	lazy := babel.LazyGettext("Hello World")

	t.Run("equality", func(t *testing.T) {
		t.Parallel()
		assert.True(t, lazy.Equal("Hello World"))
		assert.True(t, lazy.Equal(babel.LazyGettext("Hello World")))
		assert.False(t, lazy.Equal("Goodbye"))
		assert.False(t, lazy.Equal(42))
	})

	t.Run("comparison", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, lazy.Compare("Hello World"))
		assert.Equal(t, -1, lazy.Compare("Z"))
		assert.Equal(t, 1, lazy.Compare("A"))
	})

	t.Run("string-like accessors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 11, lazy.Len())
		assert.True(t, lazy.Bool())
		assert.False(t, babel.LazyGettext("").Bool())
		assert.True(t, lazy.Contains("World"))
		assert.Equal(t, byte('H'), lazy.At(0))
		assert.Equal(t, "Hello", lazy.Slice(0, 5))
		assert.Equal(t, "Hello World!", lazy.Append("!"))
		assert.Equal(t, "> Hello World", lazy.Prepend("> "))
		assert.Equal(t, "ababab", babel.LazyGettext("ab").Repeat(3))
	})

	t.Run("runes", func(t *testing.T) {
		t.Parallel()
		got := slices.Collect(babel.LazyGettext("abc").Runes())
		assert.Equal(t, []rune{'a', 'b', 'c'}, got)
	})

	t.Run("hash matches the plain string hash", func(t *testing.T) {
		t.Parallel()
		a := babel.LazyGettext("Hello World")
		b := babel.LazyGettext("Hello World")
		assert.Equal(t, a.Hash(), b.Hash())
		assert.NotEqual(t, a.Hash(), babel.LazyGettext("other").Hash())
	})

	t.Run("html", func(t *testing.T) {
		t.Parallel()
		assert.EqualValues(t, "<b>hi</b>", babel.LazyGettext("<b>hi</b>").HTML())
	})
}

func TestLazyStringSerialization(t *testing.T) {
	t.Parallel()

	t.Run("round trip keeps the constructor form", func(t *testing.T) {
		t.Parallel()
		ctx := germanContext(t)

		lazy := babel.LazyGettext("Hello %(name)s!", babel.M{"name": "Peter"})
		require.Equal(t, "Hallo Peter!", lazy.Translate(ctx))

		data, err := json.Marshal(lazy)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "Hallo", "memoized value must not be encoded")

		var restored babel.LazyString
		require.NoError(t, json.Unmarshal(data, &restored))

		// The restored copy re-evaluates against the receiving process's
		// locale, here one with no catalogs at all.
		assert.Equal(t, "Hello Peter!", restored.String())

		var again babel.LazyString
		require.NoError(t, json.Unmarshal(data, &again))
		assert.Equal(t, "Hallo Peter!", again.Translate(germanContext(t)))
	})

	t.Run("context survives the round trip", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(babel.LazyPGettext("month", "May"))
		require.NoError(t, err)

		var restored babel.LazyString
		require.NoError(t, json.Unmarshal(data, &restored))
		assert.Equal(t, "Mai", restored.Translate(germanContext(t)))
	})

	t.Run("binary form delegates to the JSON form", func(t *testing.T) {
		t.Parallel()
		lazy := babel.LazyGettext("Yes")
		data, err := lazy.MarshalBinary()
		require.NoError(t, err)

		var restored babel.LazyString
		require.NoError(t, restored.UnmarshalBinary(data))
		assert.Equal(t, "Ja", restored.Translate(germanContext(t)))
	})
}
