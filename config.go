package babel

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the environment configuration surface. Directory lists use the
// conventional semicolon separator so a single variable can carry several
// catalog roots.
type Config struct {
	DefaultLocale   string   `env:"BABEL_DEFAULT_LOCALE" envDefault:"en"`
	DefaultTimezone string   `env:"BABEL_DEFAULT_TIMEZONE" envDefault:"UTC"`
	Directories     []string `env:"BABEL_TRANSLATION_DIRECTORIES" envDefault:"translations" envSeparator:";"`
	RootPath        string   `env:"BABEL_ROOT_PATH"`
	FormatsFile     string   `env:"BABEL_FORMATS_FILE"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrParsingConfig, err)
	}
	return cfg, nil
}

// WithConfig applies an environment configuration as a construction option.
func WithConfig(cfg Config) Option {
	return func(b *Babel) error {
		if cfg.DefaultLocale != "" {
			b.defaultLocaleID = cfg.DefaultLocale
		}
		if cfg.DefaultTimezone != "" {
			b.defaultTZID = cfg.DefaultTimezone
		}
		if len(cfg.Directories) > 0 {
			b.directories = cfg.Directories
		}
		if cfg.RootPath != "" {
			b.rootPath = cfg.RootPath
		}
		if cfg.FormatsFile != "" {
			return WithFormatsFile(cfg.FormatsFile)(b)
		}
		return nil
	}
}

// formatsFile is the YAML schema of an optional formats override file.
type formatsFile struct {
	Formats map[string]string `yaml:"formats"`
	Locales map[string]struct {
		CurrencyPosition string            `yaml:"currency_position"`
		Date             map[string]string `yaml:"date"`
		Time             map[string]string `yaml:"time"`
		DateTime         map[string]string `yaml:"datetime"`
	} `yaml:"locales"`
}

// WithFormatsFile loads format-kind overrides and per-locale layout tables
// from a YAML file:
//
//	formats:
//	  datetime: medium
//	  datetime.short: "2006-01-02 15:04"
//	locales:
//	  de:
//	    currency_position: after
//	    date:
//	      medium: "02.01.2006"
func WithFormatsFile(path string) Option {
	return func(b *Babel) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: reading %q: %s", ErrInvalidFormatsFile, path, err)
		}

		var file formatsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFormatsFile, path, err)
		}

		for key, format := range file.Formats {
			b.dateFormats[key] = format
		}

		for locale, overrides := range file.Locales {
			tag, err := ParseLocale(locale)
			if err != nil {
				return err
			}

			opts := make([]LocaleFormatOption, 0, 4)
			if overrides.CurrencyPosition != "" {
				opts = append(opts, WithCurrencyPosition(overrides.CurrencyPosition))
			}
			for size, layout := range overrides.Date {
				opts = append(opts, WithDateLayout(size, layout))
			}
			for size, layout := range overrides.Time {
				opts = append(opts, WithTimeLayout(size, layout))
			}
			for size, layout := range overrides.DateTime {
				opts = append(opts, WithDateTimeLayout(size, layout))
			}

			base := localeFormatFor(b, tag)
			b.localeFormats[tag.String()] = base.clone(opts...)
		}

		return nil
	}
}
