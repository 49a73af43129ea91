package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Chart selects between the two chart families produced from a dataset.
type Chart struct {
	TitleFormat string // fmt string taking the pod count
	YLabel      string
	FilePrefix  string // output files are <FilePrefix>_<pod>pods.png
}

var (
	Readiness = Chart{TitleFormat: "Pod Readiness for %d Pods", YLabel: "Readiness Time (ms)", FilePrefix: "readiness"}
	Deletion  = Chart{TitleFormat: "Pod Deletion Time for %d Pods", YLabel: "Deletion Time (ms)", FilePrefix: "deletion"}
)

var platformColors = map[string]color.Color{
	"K8s":    color.RGBA{R: 214, G: 39, B: 40, A: 255},  // red
	"CODECO": color.RGBA{R: 31, G: 119, B: 180, A: 255}, // blue
}

// Bars for the two platforms sit half a bar width either side of the use
// case tick, in data units.
const barHalfOffset = 0.175

// yErrPoints pairs bar-center positions with asymmetric error magnitudes
// for plotter.NewYErrorBars.
type yErrPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Render draws one grouped bar chart per pod count in the dataset and
// writes the PNGs into outDir, creating it if needed. It returns the
// written file paths in pod-count order.
func Render(ds *Dataset, c Chart, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create output directory %s: %w", outDir, err)
	}

	ucs := make([]string, 0, len(ds.UseCases))
	for uc := range ds.UseCases {
		ucs = append(ucs, uc)
	}
	sort.Strings(ucs)

	paths := make([]string, 0, len(ds.PodCounts))
	for idx, pod := range ds.PodCounts {
		out := filepath.Join(outDir, fmt.Sprintf("%s_%dpods.png", c.FilePrefix, pod))
		if err := renderOne(ds, c, ucs, idx, pod, out); err != nil {
			return nil, err
		}
		paths = append(paths, out)
	}
	return paths, nil
}

// renderOne draws the chart for a single pod count (column idx of the stat
// slices) and saves it to out.
func renderOne(ds *Dataset, c Chart, ucs []string, idx, pod int, out string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf(c.TitleFormat, pod)
	p.X.Label.Text = "Use Case"
	p.Y.Label.Text = c.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{Y: 0xb0}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(grid)

	var ymax float64
	for j, platform := range Platforms {
		means := make(plotter.Values, len(ucs))
		errs := yErrPoints{
			XYs:     make(plotter.XYs, len(ucs)),
			YErrors: make(plotter.YErrors, len(ucs)),
		}
		labels := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(ucs)),
			Labels: make([]string, len(ucs)),
		}

		xoff := barHalfOffset
		if j == 0 {
			xoff = -barHalfOffset
		}
		for i, uc := range ucs {
			st := ds.UseCases[uc][platform]
			mean := st.Mean[idx]
			means[i] = mean

			errs.XYs[i] = plotter.XY{X: float64(i) + xoff, Y: mean}
			errs.YErrors[i].Low = math.Max(mean-st.Min[idx], 0)
			errs.YErrors[i].High = math.Max(st.Max[idx]-mean, 0)

			labels.XYs[i] = plotter.XY{X: float64(i) + xoff, Y: mean / 2}
			labels.Labels[i] = fmt.Sprintf("stdiv=%.0f", st.Std[idx])

			ymax = math.Max(ymax, st.Max[idx])
		}

		bars, err := plotter.NewBarChart(means, vg.Points(18))
		if err != nil {
			return err
		}
		bars.XMin = xoff
		bars.Color = platformColors[platform]
		bars.LineStyle.Color = color.Black
		bars.LineStyle.Width = vg.Points(0.3)

		ebars, err := plotter.NewYErrorBars(errs)
		if err != nil {
			return err
		}
		ebars.CapWidth = vg.Points(3)

		stdLabels, err := plotter.NewLabels(labels)
		if err != nil {
			return err
		}
		for i := range stdLabels.TextStyle {
			stdLabels.TextStyle[i].Color = color.White
			stdLabels.TextStyle[i].Rotation = math.Pi / 2
			stdLabels.TextStyle[i].XAlign = text.XCenter
			stdLabels.TextStyle[i].YAlign = text.YCenter
			stdLabels.TextStyle[i].Font.Size = vg.Points(7)
		}

		p.Add(bars, ebars, stdLabels)
		p.Legend.Add(platform, bars)
	}

	ticks := make([]plot.Tick, len(ucs))
	for i, uc := range ucs {
		ticks[i] = plot.Tick{Value: float64(i), Label: uc}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.X.Min = -0.5
	p.X.Max = float64(len(ucs)) - 0.5

	p.Y.Min = 0
	if ymax == 0 {
		ymax = 1 // all-zero placeholder rows still render
	}
	p.Y.Max = 1.45 * ymax // room for the error bar caps and labels

	p.Legend.Top = true
	p.Legend.Padding = vg.Points(2)
	p.Legend.TextStyle.Font.Size = vg.Points(9)

	return p.Save(8*vg.Inch, 5*vg.Inch, out)
}
