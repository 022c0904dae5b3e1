/*
 * chemplot.go, part of c3d-book
 *
 * Copyright 2024 Sam Chong <drsamchong{at}gmailDOTcom>
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

//Package chemplot renders the figures of the course: spectrum overlays
//(measured against calculated) and predicted-against-observed scatter
//plots for the regression models. Everything is written as PNG.
package chemplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/drsamchong/c3d-book/spectrum"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func specXYs(S *spectrum.Spectrum) plotter.XYs {
	pts := make(plotter.XYs, S.Len())
	x := S.X()
	y := S.Y()
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

//Spectra plots one or more spectra as lines in a shared frame and saves
//the figure as plotname.png. Colors are spread over the hue circle, one
//per spectrum. For NMR data (descending x) the x axis is reversed, as is
//the convention for chemical shift.
func Spectra(plotname, title string, specs ...*spectrum.Spectrum) error {
	if len(specs) == 0 {
		return fmt.Errorf("chemplot.Spectra: given no spectra")
	}
	p := basicPlot(title, "chemical shift (ppm)", "intensity")
	if specs[0].Descending() {
		p.X.Scale = reverseScale{}
	}
	for key, S := range specs {
		l, err := plotter.NewLine(specXYs(S))
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(specs))
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(l)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}

//FitOverlay plots a measured spectrum as points under the calculated
//(synthesized) one as a line, the standard way of eyeballing a peak fit,
//and saves the figure as plotname.png.
func FitOverlay(plotname, title string, measured, calculated *spectrum.Spectrum) error {
	if measured == nil || calculated == nil {
		return fmt.Errorf("chemplot.FitOverlay: given nil spectra")
	}
	p := basicPlot(title, "chemical shift (ppm)", "intensity")
	if measured.Descending() {
		p.X.Scale = reverseScale{}
	}
	s, err := plotter.NewScatter(specXYs(measured))
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	s.GlyphStyle.Color = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	p.Add(s)
	l, err := plotter.NewLine(specXYs(calculated))
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Color = color.RGBA{R: 200, A: 255}
	p.Add(l)
	p.Legend.Add("measured", s)
	p.Legend.Add("calculated", l)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}

//Residuals plots the point-by-point difference between a measured
//spectrum and the calculated one against chemical shift, and saves the
//figure as plotname.png. Structure left in the residuals means the
//model misses a peak, or fits the wrong shape.
func Residuals(plotname, title string, measured, calculated *spectrum.Spectrum) error {
	if measured == nil || calculated == nil {
		return fmt.Errorf("chemplot.Residuals: given nil spectra")
	}
	if measured.Len() != calculated.Len() {
		return fmt.Errorf("chemplot.Residuals: spectra have %d and %d points", measured.Len(), calculated.Len())
	}
	p := basicPlot(title, "chemical shift (ppm)", "residual")
	if measured.Descending() {
		p.X.Scale = reverseScale{}
	}
	pts := make(plotter.XYs, measured.Len())
	for i := range pts {
		pts[i].X = measured.XAt(i)
		pts[i].Y = measured.YAt(i) - calculated.YAt(i)
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(1)
	s.GlyphStyle.Color = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	p.Add(s)
	zero, err := plotter.NewLine(plotter.XYs{
		{X: measured.XAt(0), Y: 0},
		{X: measured.XAt(measured.Len() - 1), Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Color = color.RGBA{R: 200, A: 255}
	p.Add(zero)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 3*vg.Inch, filename)
}

//Scatter plots predicted against observed values with a y=x guide line
//and saves the figure as plotname.png. A good model hugs the guide.
func Scatter(plotname, title string, predicted, observed []float64) error {
	if len(predicted) != len(observed) {
		return fmt.Errorf("chemplot.Scatter: %d predicted but %d observed values", len(predicted), len(observed))
	}
	if len(predicted) == 0 {
		return fmt.Errorf("chemplot.Scatter: given no points")
	}
	p := basicPlot(title, "observed", "predicted")
	pts := make(plotter.XYs, len(predicted))
	lo, hi := observed[0], observed[0]
	for i := range pts {
		pts[i].X = observed[i]
		pts[i].Y = predicted[i]
		for _, v := range []float64{observed[i], predicted[i]} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{B: 200, A: 255}
	p.Add(s)
	guide, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return err
	}
	guide.LineStyle.Color = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	p.Add(guide)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}

//reverseScale flips the x axis, chemical-shift style: larger ppm to the
//left.
type reverseScale struct{}

func (reverseScale) Normalize(min, max, x float64) float64 {
	return (max - x) / (max - min)
}
