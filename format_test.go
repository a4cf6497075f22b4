package babel_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel"
)

var refTime = time.Date(2010, time.April, 12, 13, 46, 0, 0, time.UTC)

func attachNew(t *testing.T, opts ...babel.Option) context.Context {
	t.Helper()
	b, err := babel.New(opts...)
	require.NoError(t, err)
	return b.Attach(context.Background())
}

func TestFormatDatetime(t *testing.T) {
	t.Parallel()

	t.Run("default format in the default locale", func(t *testing.T) {
		t.Parallel()
		got, err := babel.FormatDatetime(attachNew(t), refTime, "")
		require.NoError(t, err)
		assert.Equal(t, "Apr 12, 2010, 1:46:00 PM", got)
	})

	t.Run("rebases into the request timezone", func(t *testing.T) {
		t.Parallel()
		ctx := attachNew(t, babel.WithDefaultTimezone("Europe/Vienna"))
		got, err := babel.FormatDatetime(ctx, refTime, "")
		require.NoError(t, err)
		assert.Equal(t, "Apr 12, 2010, 3:46:00 PM", got)
	})

	t.Run("named sizes pick the locale layout", func(t *testing.T) {
		t.Parallel()
		got, err := babel.FormatDatetime(attachNew(t), refTime, "short")
		require.NoError(t, err)
		assert.Equal(t, "4/12/10, 1:46 PM", got)
	})

	t.Run("explicit layouts pass through", func(t *testing.T) {
		t.Parallel()
		got, err := babel.FormatDatetime(attachNew(t), refTime, "2006-01-02 15:04")
		require.NoError(t, err)
		assert.Equal(t, "2010-04-12 13:46", got)
	})

	t.Run("non-English locales use their own layouts", func(t *testing.T) {
		t.Parallel()
		ctx := attachNew(t, babel.WithDefaultLocale("de_DE"))
		got, err := babel.FormatDatetime(ctx, refTime, "")
		require.NoError(t, err)
		assert.Equal(t, "12.04.2010, 13:46:00", got)
	})

	t.Run("configured default size applies", func(t *testing.T) {
		t.Parallel()
		ctx := attachNew(t, babel.WithDateFormat("datetime", "short"))
		got, err := babel.FormatDatetime(ctx, refTime, "")
		require.NoError(t, err)
		assert.Equal(t, "4/12/10, 1:46 PM", got)
	})

	t.Run("kind.size override replaces the named size", func(t *testing.T) {
		t.Parallel()
		ctx := attachNew(t, babel.WithDateFormat("datetime.short", "02 Jan 2006 15:04"))
		got, err := babel.FormatDatetime(ctx, refTime, "short")
		require.NoError(t, err)
		assert.Equal(t, "12 Apr 2010 13:46", got)
	})
}

func TestFormatDateAndTime(t *testing.T) {
	t.Parallel()

	t.Run("date", func(t *testing.T) {
		t.Parallel()
		got, err := babel.FormatDate(attachNew(t), refTime, "")
		require.NoError(t, err)
		assert.Equal(t, "Apr 12, 2010", got)
	})

	t.Run("time", func(t *testing.T) {
		t.Parallel()
		got, err := babel.FormatTime(attachNew(t), refTime, "")
		require.NoError(t, err)
		assert.Equal(t, "1:46:00 PM", got)
	})

	t.Run("registered locale format wins over the built-ins", func(t *testing.T) {
		t.Parallel()
		ctx := attachNew(t,
			babel.WithDefaultLocale("de"),
			babel.WithLocaleFormat("de", babel.NewLocaleFormat(
				babel.WithDateLayout(babel.SizeMedium, "2006-01-02"),
			)),
		)
		got, err := babel.FormatDate(ctx, refTime, "")
		require.NoError(t, err)
		assert.Equal(t, "2010-04-12", got)
	})
}

func TestTimezoneConversions(t *testing.T) {
	t.Parallel()

	t.Run("ToUserTimezone", func(t *testing.T) {
		t.Parallel()
		ctx := attachNew(t, babel.WithDefaultTimezone("Europe/Vienna"))
		got, err := babel.ToUserTimezone(ctx, refTime)
		require.NoError(t, err)
		assert.Equal(t, 15, got.Hour())
		assert.Equal(t, "Europe/Vienna", got.Location().String())
	})

	t.Run("ToUTC reinterprets wall-clock readings", func(t *testing.T) {
		t.Parallel()
		ctx := attachNew(t, babel.WithDefaultTimezone("Europe/Vienna"))
		wall := time.Date(2010, time.April, 12, 15, 46, 0, 0, time.UTC)
		got, err := babel.ToUTC(ctx, wall)
		require.NoError(t, err)
		assert.Equal(t, refTime, got)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := attachNew(t, babel.WithDefaultTimezone("America/New_York"))
		local, err := babel.ToUserTimezone(ctx, refTime)
		require.NoError(t, err)
		back, err := babel.ToUTC(ctx, local)
		require.NoError(t, err)
		assert.True(t, refTime.Equal(back))
	})
}

func TestFormatTimedelta(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("picks the largest unit over the threshold", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 week", babel.FormatTimedelta(ctx, 6*24*time.Hour))
		assert.Equal(t, "3 hours", babel.FormatTimedelta(ctx, 3*time.Hour))
		assert.Equal(t, "1 minute", babel.FormatTimedelta(ctx, 70*time.Second))
	})

	t.Run("threshold of one keeps the smaller unit", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "6 days",
			babel.FormatTimedelta(ctx, 6*24*time.Hour, babel.WithThreshold(1)))
	})

	t.Run("granularity floors the unit", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 day",
			babel.FormatTimedelta(ctx, 30*time.Hour, babel.WithGranularity("day")))
	})

	t.Run("sub-granularity deltas clamp to one unit", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 day",
			babel.FormatTimedelta(ctx, 10*time.Hour, babel.WithGranularity("day")))
		assert.Equal(t, "1 minute",
			babel.FormatTimedelta(ctx, 20*time.Second, babel.WithGranularity("minute")))
		assert.Equal(t, "",
			babel.FormatTimedelta(ctx, 0, babel.WithGranularity("day")))
	})

	t.Run("zero renders empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", babel.FormatTimedelta(ctx, 0))
	})

	t.Run("direction", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "3 hours ago",
			babel.FormatTimedelta(ctx, 3*time.Hour, babel.WithDirection()))
		assert.Equal(t, "in 3 hours",
			babel.FormatTimedelta(ctx, -3*time.Hour, babel.WithDirection()))
	})

	t.Run("localizes unit names through the catalog", func(t *testing.T) {
		t.Parallel()
		dir := writeCatalog(t, t.TempDir(), "ru", "messages", russianCatalog)
		b, err := babel.New(
			babel.WithDefaultLocale("ru"),
			babel.WithTranslationDirectories(dir),
		)
		require.NoError(t, err)

		got := babel.FormatTimedelta(b.Attach(context.Background()),
			2*24*time.Hour, babel.WithThreshold(1))
		assert.Equal(t, "2 дня", got)
	})
}
