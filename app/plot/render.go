/*------------------------------------------------------------------------------
* render.go : displacement series chart
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* history : 2025/03/05  1.0 new
*-----------------------------------------------------------------------------*/
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"oloadgo"
)

const (
	dpi      = 72.0
	fontSize = 12.0

	borderTop    = 30
	borderLeft   = 70
	borderBottom = 40
	borderRight  = 20
)

var (
	background = color.White
	foreground = color.Black
	gridColor  = color.Gray{Y: 0xd0}
)

var dirNames = [3]string{"dU", "dS", "dW"}

// dirColor returns the line color of direction i (0:up,1:south,2:west).
func dirColor(i int) color.Color {
	return colorful.Hsv(float64(i)*120.0+10.0, 0.85, 0.80)
}

type Chart struct {
	Width  int
	Height int
	Title  string
	font   *truetype.Font
}

func NewChart(width, height int, title string) (*Chart, error) {
	if width < borderLeft+borderRight+10 || height < borderTop+borderBottom+10 {
		return nil, fmt.Errorf("chart too small: %dx%d", width, height)
	}
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Chart{Width: width, Height: height, Title: title, font: f}, nil
}

/* value range of series (m), symmetric about zero ---------------------------*/
func seriesRange(samples []oloadgo.Displacement) float64 {
	var vmax float64
	for _, s := range samples {
		vmax = math.Max(vmax, math.Max(math.Abs(s.U), math.Max(math.Abs(s.S), math.Abs(s.W))))
	}
	if vmax <= 0 {
		return 1e-3
	}
	return vmax * 1.1
}

/* draw line -------------------------------------------------------------------
* bresenham line clipped to image bounds
*-----------------------------------------------------------------------------*/
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

/* render chart ----------------------------------------------------------------
* draw dU, dS and dW against sample index with axis labels in mm
* args   : Displacement *samples I displacements
* return : image, error
*-----------------------------------------------------------------------------*/
func (c *Chart) Render(samples []oloadgo.Displacement) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	x0, x1 := borderLeft, c.Width-borderRight
	y0, y1 := borderTop, c.Height-borderBottom
	vmax := seriesRange(samples)

	ypix := func(v float64) int {
		return y0 + int(math.Round((vmax-v)/(2*vmax)*float64(y1-y0)))
	}
	xpix := func(i int) int {
		if len(samples) <= 1 {
			return x0
		}
		return x0 + int(math.Round(float64(i)/float64(len(samples)-1)*float64(x1-x0)))
	}
	/* frame and zero line */
	drawLine(img, x0, y0, x1, y0, foreground)
	drawLine(img, x0, y1, x1, y1, foreground)
	drawLine(img, x0, y0, x0, y1, foreground)
	drawLine(img, x1, y0, x1, y1, foreground)
	drawLine(img, x0+1, ypix(0), x1-1, ypix(0), gridColor)

	for i := 0; i < 3; i++ {
		col := dirColor(i)
		for j := 1; j < len(samples); j++ {
			a, b := dirValue(samples[j-1], i), dirValue(samples[j], i)
			drawLine(img, xpix(j-1), ypix(a), xpix(j), ypix(b), col)
		}
	}
	if err := c.annotate(img, samples, vmax); err != nil {
		return nil, err
	}
	return img, nil
}

func dirValue(s oloadgo.Displacement, i int) float64 {
	switch i {
	case 0:
		return s.U
	case 1:
		return s.S
	}
	return s.W
}

func (c *Chart) annotate(img *image.RGBA, samples []oloadgo.Displacement, vmax float64) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(c.font)
	ctx.SetFontSize(fontSize)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(foreground))

	labels := []struct {
		s    string
		x, y int
	}{
		{c.Title, borderLeft, borderTop - 10},
		{fmt.Sprintf("%+.1f mm", vmax*1e3), 4, borderTop + 10},
		{"0", borderLeft - 14, (borderTop+c.Height-borderBottom)/2 + 4},
		{fmt.Sprintf("%+.1f mm", -vmax*1e3), 4, c.Height - borderBottom},
	}
	if len(samples) > 0 {
		labels = append(labels,
			struct {
				s    string
				x, y int
			}{oloadgo.TimeStr(samples[0].Time, 0), borderLeft, c.Height - borderBottom + 16},
			struct {
				s    string
				x, y int
			}{oloadgo.TimeStr(samples[len(samples)-1].Time, 0), c.Width - borderRight - 130, c.Height - 6})
	}
	for _, l := range labels {
		if _, err := ctx.DrawString(l.s, freetype.Pt(l.x, l.y)); err != nil {
			return fmt.Errorf("drawing %q: %w", l.s, err)
		}
	}
	/* legend */
	for i, name := range dirNames {
		x := c.Width - borderRight - 40*(3-i)
		ctx.SetSrc(image.NewUniform(dirColor(i)))
		if _, err := ctx.DrawString(name, freetype.Pt(x, borderTop-10)); err != nil {
			return fmt.Errorf("drawing legend: %w", err)
		}
	}
	return nil
}

// WritePNG renders the chart and encodes it to w.
func (c *Chart) WritePNG(w io.Writer, samples []oloadgo.Displacement) error {
	img, err := c.Render(samples)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
