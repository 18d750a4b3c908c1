package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/decibelcooper/plotaxis"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "axisticks",
		Short: "Print the gridlines and labels of a chart axis",
		Long: `axisticks plans the gridlines of one chart axis and prints their
positions and labels. Settings come from flags, PLOTAXIS_* environment
variables and an optional config file, in that order of precedence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			logger := log.New()
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(cfg.LogLevel)
			return render(out, plan(cfg, logger), cfg.Format)
		},
	}
	addFlags(cmd.Flags())
	return cmd
}

func plan(cfg *config, logger log.FieldLogger) *plotaxis.Axis {
	a := plotaxis.New(cfg.Kind, plotaxis.WithLogger(logger), plotaxis.WithLanguage(cfg.Lang))
	a.SetLabel(cfg.Label)

	var param any
	switch {
	case cfg.Kind == plotaxis.Log:
		param = cfg.Base
	case cfg.Kind.IsTime():
		param = cfg.Timezone
	}
	a.SetRange(cfg.Min, cfg.Max, param)
	if cfg.Kind == plotaxis.Category {
		a.SetCategoryAxis(cfg.Categories, cfg.CategoryValues)
	}

	a.SetGridlines(cfg.WindowLeft, cfg.WindowRight, cfg.Count, cfg.MarginLeft, cfg.MarginRight)
	return a
}

type report struct {
	Kind  string `yaml:"kind"`
	Step  string `yaml:"step"`
	Label string `yaml:"label,omitempty"`
	Ticks []tick `yaml:"ticks"`
}

type tick struct {
	Percent float64 `yaml:"percent"`
	Value   string  `yaml:"value"`
	Label   string  `yaml:"label"`
}

func newReport(a *plotaxis.Axis) report {
	r := report{
		Kind:  a.Kind().String(),
		Step:  humanStep(a),
		Label: a.LabelWithCommon(),
	}
	labels := a.GridlineLabels()
	for i, pct := range a.Gridlines() {
		t := tick{Percent: pct, Value: a.ValueAt(pct).String()}
		if i < len(labels) {
			t.Label = labels[i]
		}
		r.Ticks = append(r.Ticks, t)
	}
	return r
}

func render(w io.Writer, a *plotaxis.Axis, format string) error {
	r := newReport(a)
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	}

	fmt.Fprintf(w, "kind:  %s\n", r.Kind)
	fmt.Fprintf(w, "step:  %s\n", r.Step)
	if r.Label != "" {
		fmt.Fprintf(w, "label: %s\n", r.Label)
	}
	for _, t := range r.Ticks {
		fmt.Fprintf(w, "%8.4f  %s\n", t.Percent, t.Label)
	}
	return nil
}

// humanStep renders the gridline step as a duration on time axes and with
// an SI prefix otherwise.
func humanStep(a *plotaxis.Axis) string {
	step := a.Step().Float64()
	switch a.Kind() {
	case plotaxis.Time:
		return time.Duration(step * float64(time.Millisecond)).String()
	case plotaxis.Nanotime:
		return time.Duration(step).String()
	}
	v, prefix := humanize.ComputeSI(step)
	return humanize.Ftoa(v) + prefix
}
