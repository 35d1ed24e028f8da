/*
 * granplot.go, part of granstat.
 *
 * Copyright 2026 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package granplot draws the results of a sweep with gonum/plot. The format
//of each figure is taken from the extension of its file name (png, svg, pdf...).
package granplot

import (
	"fmt"
	"path/filepath"

	"github.com/rmera/granstat/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Figure size
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

//Curve is a labeled series.
type Curve struct {
	Label string
	Stats *stats.MetricStats
}

type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func errorData(M *stats.MetricStats) errorPoints {
	ret := errorPoints{XYs: make(plotter.XYs, M.Len()), YErrors: make(plotter.YErrors, M.Len())}
	for i, p := range M.Points {
		ret.XYs[i].X = p.Time
		ret.XYs[i].Y = p.Mean
		ret.YErrors[i].Low = p.Std
		ret.YErrors[i].High = p.Std
	}
	return ret
}

//logFriendly returns true if every mean minus its std is positive, so the
//series can go in a log axis.
func logFriendly(M *stats.MetricStats) bool {
	for _, p := range M.Points {
		if p.Mean-p.Std <= 0 {
			return false
		}
	}
	return M.Len() > 0
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//setLogY makes the y axis logarithmic if the data range allows it.
func setLogY(p *plot.Plot) {
	if !(p.Y.Min > 0) || p.Y.Max <= p.Y.Min {
		return
	}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

func addCurve(p *plot.Plot, c Curve, key, steps int, bars bool) error {
	data := errorData(c.Stats)
	l, err := plotter.NewLine(data.XYs)
	if err != nil {
		return err
	}
	l.Color = colors(key, steps)
	l.Width = vg.Points(1.5)
	p.Add(l)
	if bars {
		e, err := plotter.NewYErrorBars(data)
		if err != nil {
			return err
		}
		e.Color = l.Color
		p.Add(e)
	}
	if c.Label != "" {
		p.Legend.Add(c.Label, l)
	}
	return nil
}

//SeriesPlot plots the mean of M against time, with the standard deviations as
//error bars. If logY is true, and the error bars allow it, the y axis is logarithmic.
func SeriesPlot(M *stats.MetricStats, title, ylabel string, logY bool, filename string) error {
	if M == nil || M.Len() == 0 {
		return fmt.Errorf("granplot: no points to plot in '%s'", title)
	}
	p := newPlot(title, "time", ylabel)
	if err := addCurve(p, Curve{Stats: M}, 0, 1, true); err != nil {
		return err
	}
	if logY && logFriendly(M) {
		setLogY(p)
	}
	return p.Save(Width, Height, filename)
}

//ComparisonPlot plots the mean of each curve against time in the same figure,
//with a legend and no error bars.
func ComparisonPlot(curves []Curve, title, ylabel string, logY bool, filename string) error {
	p := newPlot(title, "time", ylabel)
	n := 0
	for i, c := range curves {
		if c.Stats == nil || c.Stats.Len() == 0 {
			continue
		}
		if err := addCurve(p, c, i, len(curves), false); err != nil {
			return err
		}
		n++
	}
	if n == 0 {
		return fmt.Errorf("granplot: no curves to plot in '%s'", title)
	}
	if logY {
		setLogY(p)
	}
	p.Legend.Top = true
	return p.Save(Width, Height, filename)
}

//StabilizationPlot draws a bar per label, with the mean stabilization time as
//height and its standard deviation as error bar.
func StabilizationPlot(labels []string, points []stats.Point, title, filename string) error {
	if len(labels) != len(points) {
		return fmt.Errorf("granplot: %d labels for %d bars", len(labels), len(points))
	}
	if len(points) == 0 {
		return fmt.Errorf("granplot: no bars to plot in '%s'", title)
	}
	p := newPlot(title, "", "stabilization time")
	heights := make(plotter.Values, len(points))
	data := errorPoints{XYs: make(plotter.XYs, len(points)), YErrors: make(plotter.YErrors, len(points))}
	for i, pt := range points {
		heights[i] = pt.Mean
		data.XYs[i].X = float64(i)
		data.XYs[i].Y = pt.Mean
		data.YErrors[i].Low = pt.Std
		data.YErrors[i].High = pt.Std
	}
	bars, err := plotter.NewBarChart(heights, vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = colors(0, 1)
	bars.LineStyle.Width = vg.Length(0)
	e, err := plotter.NewYErrorBars(data)
	if err != nil {
		return err
	}
	p.Add(bars, e)
	p.NominalX(labels...)
	return p.Save(Width, Height, filename)
}

//Name returns the file name, in dir, for a figure with the given base name and format.
func Name(dir, base, format string) string {
	return filepath.Join(dir, base+"."+format)
}
