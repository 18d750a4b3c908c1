package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/decibelcooper/plotaxis"
)

type config struct {
	Kind     plotaxis.Kind
	Min, Max plotaxis.Value
	Base     float64
	Timezone string
	Count    int
	Label    string

	WindowLeft, WindowRight float64
	MarginLeft, MarginRight float64

	Categories     []string
	CategoryValues []plotaxis.Value

	Format   string
	Lang     language.Tag
	LogLevel logrus.Level
}

func addFlags(fs *pflag.FlagSet) {
	fs.String("kind", "linear", "axis kind: linear, log, time, nanotime or category")
	fs.String("min", "0", "left bound (number, or RFC3339 timestamp on time axes)")
	fs.String("max", "1", "right bound (number, or RFC3339 timestamp on time axes)")
	fs.Float64("base", 10, "logarithm base of log axes")
	fs.String("timezone", "UTC", "time zone of time axes")
	fs.Int("count", 5, "suggested number of gridlines")
	fs.String("label", "", "axis title")
	fs.Float64("window-left", 0, "left edge of the visible window, as a fraction of the range")
	fs.Float64("window-right", 1, "right edge of the visible window, as a fraction of the range")
	fs.Float64("margin-left", 0, "left plot margin, as a fraction of the range")
	fs.Float64("margin-right", 0, "right plot margin, as a fraction of the range")
	fs.StringSlice("category", nil, "category name (repeatable)")
	fs.StringSlice("category-value", nil, "category position (repeatable)")
	fs.String("format", "text", "output format: text or yaml")
	fs.String("lang", "en", "language used to group digits")
	fs.String("log-level", "warning", "log level")
	fs.String("config", "", "config file (yaml, toml or json)")
}

// newViper layers flags over PLOTAXIS_* environment variables over the
// optional config file.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("PLOTAXIS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*config, error) {
	kind, err := plotaxis.ParseKind(v.GetString("kind"))
	if err != nil {
		return nil, err
	}

	cfg := &config{
		Kind:        kind,
		Base:        v.GetFloat64("base"),
		Timezone:    v.GetString("timezone"),
		Count:       v.GetInt("count"),
		Label:       v.GetString("label"),
		WindowLeft:  v.GetFloat64("window-left"),
		WindowRight: v.GetFloat64("window-right"),
		MarginLeft:  v.GetFloat64("margin-left"),
		MarginRight: v.GetFloat64("margin-right"),
		Categories:  v.GetStringSlice("category"),
		Format:      v.GetString("format"),
	}

	if cfg.Min, err = parseBound(kind, v.GetString("min")); err != nil {
		return nil, errors.Wrap(err, "min")
	}
	if cfg.Max, err = parseBound(kind, v.GetString("max")); err != nil {
		return nil, errors.Wrap(err, "max")
	}
	if cfg.Max.Cmp(cfg.Min) <= 0 {
		return nil, errors.Errorf("max must be greater than min, got [%s, %s]", cfg.Min, cfg.Max)
	}

	for _, s := range v.GetStringSlice("category-value") {
		d, err := plotaxis.ParseDecimal(s)
		if err != nil {
			return nil, errors.Wrap(err, "category-value")
		}
		cfg.CategoryValues = append(cfg.CategoryValues, plotaxis.Float(d.Float64()))
	}

	switch cfg.Format {
	case "text", "yaml":
	default:
		return nil, errors.Errorf("unknown output format %q", cfg.Format)
	}

	if cfg.Lang, err = language.Parse(v.GetString("lang")); err != nil {
		return nil, errors.Wrapf(err, "lang %q", v.GetString("lang"))
	}
	if cfg.LogLevel, err = logrus.ParseLevel(v.GetString("log-level")); err != nil {
		return nil, errors.Wrap(err, "log-level")
	}
	return cfg, nil
}

// parseBound reads an axis bound. Time axes also take RFC3339 timestamps,
// which become milliseconds (time) or nanoseconds (nanotime) since the
// epoch.
func parseBound(kind plotaxis.Kind, s string) (plotaxis.Value, error) {
	if kind.IsTime() {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			ns := plotaxis.DecimalFromInt(t.UnixNano())
			if kind == plotaxis.Nanotime {
				return ns, nil
			}
			return plotaxis.Float(ns.Div(plotaxis.DecimalFromInt(int64(time.Millisecond))).Float64()), nil
		}
	}

	d, err := plotaxis.ParseDecimal(s)
	if err != nil {
		return nil, err
	}
	if kind == plotaxis.Nanotime {
		return d, nil
	}
	return plotaxis.Float(d.Float64()), nil
}
