package babel

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Catalog is a merged set of gettext translation sources for one locale.
//
// Instead of flattening every source into one table, which loses the
// plural-rule metadata carried in each file's Plural-Forms header, the
// catalog keeps the parsed sources in load order and answers from the first
// one that carries the message. Plural selection is therefore always done by
// the source that owns the translation.
//
// A nil or empty catalog performs identity lookups and never fails, which is
// the behavior outside a request scope and for locales without catalogs.
type Catalog struct {
	locale  string
	sources []gotext.Translator
}

// Locale returns the POSIX-style locale identifier the catalog was loaded
// for, or "" for the identity catalog.
func (c *Catalog) Locale() string {
	if c == nil {
		return ""
	}
	return c.locale
}

// Empty reports whether the catalog has no translation sources.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.sources) == 0
}

// Gettext returns the translation of msgid, or msgid itself when no source
// carries it.
func (c *Catalog) Gettext(msgid string) string {
	if c != nil {
		for _, src := range c.sources {
			if src.GetDomain().IsTranslated(msgid) {
				return src.Get(msgid)
			}
		}
	}
	return msgid
}

// NGettext returns the plural form of msgid appropriate for n, using the
// plural rules of the source that carries the message. Without a source the
// English fallback applies: singular iff n == 1.
func (c *Catalog) NGettext(msgid, plural string, n int) string {
	if c != nil {
		for _, src := range c.sources {
			if src.GetDomain().IsTranslatedN(msgid, n) {
				return src.GetN(msgid, plural, n)
			}
		}
	}
	if n == 1 {
		return msgid
	}
	return plural
}

// PGettext returns the translation of msgid qualified by a disambiguation
// context.
func (c *Catalog) PGettext(msgctx, msgid string) string {
	if c != nil {
		for _, src := range c.sources {
			if src.GetDomain().IsTranslatedC(msgid, msgctx) {
				return src.GetC(msgid, msgctx)
			}
		}
	}
	return msgid
}

// NPGettext combines NGettext and PGettext.
func (c *Catalog) NPGettext(msgctx, msgid, plural string, n int) string {
	if c != nil {
		for _, src := range c.sources {
			if src.GetDomain().IsTranslatedNC(msgid, n, msgctx) {
				return src.GetNC(msgid, plural, n, msgctx)
			}
		}
	}
	if n == 1 {
		return msgid
	}
	return plural
}

// catalog returns the process-cached catalog for a locale identifier,
// loading it on first use. Concurrent first accesses for one locale share a
// single construction.
func (b *Babel) catalog(id string) *Catalog {
	b.mu.RLock()
	cached, ok := b.catalogs[id]
	b.mu.RUnlock()
	if ok {
		return cached
	}

	loaded, _, _ := b.loads.Do(id, func() (any, error) {
		// Re-check under the flight: a caller that missed the cache may
		// arrive after an earlier flight already stored the catalog.
		b.mu.RLock()
		cached, ok := b.catalogs[id]
		b.mu.RUnlock()
		if ok {
			return cached, nil
		}

		c := b.loadCatalog(id)
		b.mu.Lock()
		b.catalogs[id] = c
		b.mu.Unlock()
		return c, nil
	})
	return loaded.(*Catalog)
}

// loadCatalog walks the configured directories and parses every catalog
// file found for the locale. A directory without a matching locale tree
// contributes nothing; a failed load of one directory never aborts the
// others.
func (b *Babel) loadCatalog(id string) *Catalog {
	c := &Catalog{locale: id}

	for _, dir := range b.TranslationDirectories() {
		localeDir, ok := findLocaleDir(dir, id)
		if !ok {
			b.logger.Debug("no catalog tree for locale",
				slog.String("dir", dir), slog.String("locale", id))
			continue
		}

		for _, path := range catalogFiles(localeDir) {
			var src gotext.Translator
			switch strings.ToLower(filepath.Ext(path)) {
			case ".mo":
				src = gotext.NewMo()
			case ".po":
				src = gotext.NewPo()
			default:
				continue
			}
			src.ParseFile(path)
			c.sources = append(c.sources, src)
		}
	}

	return c
}

// findLocaleDir locates the LC_MESSAGES directory for a locale inside one
// catalog root, trying the exact identifier, its hyphen/underscore variants,
// and finally the base language ("de" for "de_DE").
func findLocaleDir(root, id string) (string, bool) {
	candidates := []string{
		id,
		strings.ReplaceAll(id, "_", "-"),
		strings.ReplaceAll(id, "-", "_"),
	}
	if base, _, found := strings.Cut(id, "_"); found {
		candidates = append(candidates, base)
	}

	seen := make(map[string]bool, len(candidates))
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true

		dir := filepath.Join(root, name, "LC_MESSAGES")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, true
		}
	}
	return "", false
}

// catalogFiles lists the .mo and .po files of a LC_MESSAGES directory in a
// deterministic order, compiled .mo files first.
func catalogFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var mo, po []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".mo":
			mo = append(mo, filepath.Join(dir, entry.Name()))
		case ".po":
			po = append(po, filepath.Join(dir, entry.Name()))
		}
	}
	slices.Sort(mo)
	slices.Sort(po)
	return append(mo, po...)
}
