package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/plotaxis"
)

var (
	kindName = flag.String("kind", "linear", "x axis kind: linear, log, time or nanotime")
	nBins    = flag.Int("nbins", 50, "number of bins")
	count    = flag.Int("count", 5, "suggested number of ticks on each axis")
	title    = flag.String("title", "", "plot title")
	xLabel   = flag.String("xlabel", "", "x axis label")
	timezone = flag.String("timezone", "UTC", "time zone of time axes")
	output   = flag.String("output", "out.png", "output file")
	doProf   = flag.Bool("profile", false, "write a CPU profile to the working directory")
)

var edges plotaxis.FloatArrayFlags

func init() {
	flag.Var(&edges, "edge", "bin edge, repeat for variable width bins (overrides -nbins)")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <sample-files>...

Each sample file holds one value per line: a number, or an RFC3339
timestamp on time axes.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}
	if *doProf {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	kind, err := plotaxis.ParseKind(*kindName)
	if err != nil {
		log.Fatal(err)
	}
	if kind == plotaxis.Category {
		log.Fatal("category axes cannot be histogrammed")
	}

	var samples [][]float64
	for _, filename := range flag.Args() {
		s, err := readSamples(filename, kind)
		if err != nil {
			log.Fatal(err)
		}
		samples = append(samples, s)
	}

	p := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = *xLabel
	p.X.Tick.Marker = plotaxis.Ticks{Kind: kind, NSuggestedTicks: *count, Timezone: *timezone}
	p.Y.Tick.Marker = plotaxis.Ticks{NSuggestedTicks: *count}
	if kind == plotaxis.Log {
		p.X.Scale = plotaxis.LogScale{}
	}

	for i, hist := range makeHists(samples) {
		lineColor := color.RGBA{A: 255}
		switch i % 4 {
		case 1:
			lineColor = color.RGBA{G: 255, A: 255}
		case 2:
			lineColor = color.RGBA{B: 255, A: 255}
		case 3:
			lineColor = color.RGBA{R: 255, B: 127, G: 127, A: 255}
		}

		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = lineColor
		h.Infos.Style = hplot.HInfoNone

		p.Add(h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		log.Fatal(err)
	}
}

// readSamples reads one value per line. Time axes take RFC3339 timestamps
// and yield seconds since the epoch; blank lines and lines starting with #
// are skipped.
func readSamples(filename string, kind plotaxis.Kind) ([]float64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var samples []float64
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var v float64
		if t, err := time.Parse(time.RFC3339Nano, text); kind.IsTime() && err == nil {
			v = float64(t.UnixNano()) / 1e9
		} else if v, err = strconv.ParseFloat(text, 64); err != nil {
			return nil, errors.Wrapf(err, "%s:%d", filename, line)
		}
		if kind == plotaxis.Log && v <= 0 {
			log.WithFields(log.Fields{"file": filename, "line": line}).Warn("skipping non-positive sample on log axis")
			continue
		}
		samples = append(samples, v)
	}
	return samples, errors.Wrap(scanner.Err(), filename)
}

// makeHists bins every sample set on a common binning: the -edge values if
// given, otherwise nbins equal bins spanning all samples.
func makeHists(samples [][]float64) []*hbook.H1D {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		for _, v := range s {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		log.Fatal("no samples")
	}
	if hi == lo {
		hi = lo + 1
	}
	// Keep the maximum inside the last bin.
	hi = math.Nextafter(hi, math.Inf(1))

	hists := make([]*hbook.H1D, len(samples))
	for i, s := range samples {
		if len(edges.Array) > 1 {
			hists[i] = hbook.NewH1DFromEdges(edges.Array)
		} else {
			hists[i] = hbook.NewH1D(*nBins, lo, hi)
		}
		for _, v := range s {
			hists[i].Fill(v, 1)
		}
	}
	return hists
}
