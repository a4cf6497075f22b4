package babel

import (
	"context"
	"maps"
)

// Gettext translates a string with the request's locale and applies percent
// substitution when variables are supplied:
//
//	babel.Gettext(ctx, "Hello World!")
//	babel.Gettext(ctx, "Hello %(name)s!", babel.M{"name": "World"})
//
// Without variables the looked-up string is returned untouched, even when it
// contains percent escapes, so literal sequences survive untranslated use.
// A missing catalog degrades to the source string and never fails.
func Gettext(ctx context.Context, msgid string, vars ...M) string {
	s := GetTranslations(ctx).Gettext(msgid)
	if merged := mergeVars(vars); len(merged) > 0 {
		return expandPercent(s, merged)
	}
	return s
}

// NGettext translates with plural dispatch on num. The count is always
// available to the format string as %(num)d unless the caller supplies its
// own "num" variable:
//
//	babel.NGettext(ctx, "%(num)d Apple", "%(num)d Apples", len(apples))
//
// The source language is expected to have a single plural form; the
// catalog's own plural rules pick the target form.
func NGettext(ctx context.Context, msgid, plural string, num int, vars ...M) string {
	merged := mergeVars(vars)
	if _, ok := merged["num"]; !ok {
		merged["num"] = num
	}
	s := GetTranslations(ctx).NGettext(msgid, plural, num)
	return expandPercent(s, merged)
}

// PGettext is Gettext with a disambiguation context.
func PGettext(ctx context.Context, msgctx, msgid string, vars ...M) string {
	s := GetTranslations(ctx).PGettext(msgctx, msgid)
	if merged := mergeVars(vars); len(merged) > 0 {
		return expandPercent(s, merged)
	}
	return s
}

// NPGettext is NGettext with a disambiguation context.
func NPGettext(ctx context.Context, msgctx, msgid, plural string, num int, vars ...M) string {
	merged := mergeVars(vars)
	if _, ok := merged["num"]; !ok {
		merged["num"] = num
	}
	s := GetTranslations(ctx).NPGettext(msgctx, msgid, plural, num)
	return expandPercent(s, merged)
}

func mergeVars(vars []M) M {
	merged := make(M)
	for _, v := range vars {
		maps.Copy(merged, v)
	}
	return merged
}
