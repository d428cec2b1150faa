// Package coverage computes per-pixel analytic anti-aliased coverage for a
// single Alpha-class tile, given its tile-local edge list and backdrop.
//
// The technique is the standard signed-trapezoidal-area sweep: walk each
// edge's contribution
// column by column, accumulating the area to the right of the edge within
// each pixel plus whatever winding has carried in from pixels further
// left. Quadratic edges are handled exactly, not by further flattening:
// the Y-at-row-boundary crossing is found with the same Citardauq-stable
// quadratic solver internal/core already exposes, so a pixel row's
// chord endpoints are exact curve points rather than an approximation.
package coverage

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/tilerast/internal/core"
	"github.com/gogpu/tilerast/internal/interval"
)

// Compute returns a row-major coverage buffer of length
// cfg.TileWidth*cfg.TileHeight, one value per pixel in [0, 1], for a tile
// whose edges are already expressed in tile-local coordinates (origin at
// the tile's own top-left corner) and whose backdrop is the winding number
// carried in from the tile's left neighbor.
func Compute(edges []core.Edge, backdrop int, fill core.FillRule, cfg core.Config) []float32 {
	w, h := cfg.TileWidth, cfg.TileHeight
	winding := make([]float64, w*h)
	bd := float64(backdrop)
	for i := range winding {
		winding[i] = bd
	}

	for _, e := range edges {
		accumulateEdge(winding, e, w, h, cfg.AreaLUTSize)
	}

	cov := make([]float32, w*h)
	for i, wd := range winding {
		cov[i] = float32(accumulate(wd, fill))
	}
	return cov
}

// accumulate converts a winding number to a fill-rule-aware coverage
// fraction clamped to [0, 1]: nonzero fill takes the absolute winding;
// even-odd takes the distance from the nearest even integer.
func accumulate(winding float64, fill core.FillRule) float64 {
	var c float64
	switch fill {
	case core.FillEvenOdd:
		w := absf(winding)
		nearestEven := float64(2 * int64(w*0.5+0.5))
		c = absf(w - nearestEven)
	default:
		c = absf(winding)
	}
	if c > 1 {
		c = 1
	}
	return c
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// accumulateEdge folds one edge's contribution into every pixel row it
// overlaps. Horizontal edges (and axis-degenerate quadratics whose control
// point never moves the curve off a constant y) contribute nothing, as a
// pixel-row sweep only accumulates winding from edges that cross rows.
func accumulateEdge(winding []float64, e core.Edge, w, h, lutSize int) {
	if e.IsQuadratic() {
		lo, hi := minf(e.From.Y, e.To.Y), maxf(e.From.Y, e.To.Y)
		if e.Control.Y < lo || e.Control.Y > hi {
			// Not monotone in y: split at the y extremum, where the tangent
			// is horizontal, so both halves' control points share its y.
			t := (e.From.Y - e.Control.Y) / (e.From.Y - 2*e.Control.Y + e.To.Y)
			left, right := e.Subdivide(t)
			left.Control.Y, right.Control.Y = left.To.Y, right.From.Y
			accumulateEdge(winding, left, w, h, lutSize)
			accumulateEdge(winding, right, w, h, lutSize)
			return
		}
	}
	sign := float64(interval.WindingContribution(e.From, e.To))
	if sign == 0 {
		return
	}

	yTopEdge, yBotEdge := e.From.Y, e.To.Y
	if yTopEdge > yBotEdge {
		yTopEdge, yBotEdge = yBotEdge, yTopEdge
	}

	rowStart := int(yTopEdge)
	if float64(rowStart) > yTopEdge {
		rowStart--
	}
	if rowStart < 0 {
		rowStart = 0
	}
	rowEnd := int(yBotEdge) + 1
	if rowEnd > h {
		rowEnd = h
	}

	for row := rowStart; row < rowEnd; row++ {
		rowTop, rowBot := float64(row), float64(row+1)
		yTop := maxf(yTopEdge, rowTop)
		yBot := minf(yBotEdge, rowBot)
		if yTop >= yBot {
			continue
		}

		xAtTop := xAtY(e, yTop)
		xAtBot := xAtY(e, yBot)
		rowAccumulate(winding, row, w, xAtTop, xAtBot, yBot-yTop, sign, lutSize)
	}
}

// xAtY evaluates the edge's x coordinate at the given y, which must lie
// within the edge's y extent. Line edges solve for t in closed form;
// quadratic edges solve the curve's y(t)-y=0 equation with the
// Citardauq-stable quadratic solver so the root is found without the
// cancellation error a naive quadratic formula would suffer for
// near-tangent crossings.
func xAtY(e core.Edge, y float64) float64 {
	if e.IsLine() {
		y0, y1 := e.From.Y, e.To.Y
		if y0 == y1 {
			return e.From.X
		}
		t := (y - y0) / (y1 - y0)
		return e.Eval(t).X
	}

	y0, yc, y1 := e.From.Y, e.Control.Y, e.To.Y
	a := y0 - 2*yc + y1
	b := 2 * (yc - y0)
	c := y0 - y

	var t float64
	switch {
	case a == 0 && b == 0:
		t = 0
	case a == 0:
		t = -c / b
	default:
		roots := core.SolveQuadraticInUnitInterval(a, b, c)
		switch {
		case len(roots) == 0:
			if y <= y0 {
				t = 0
			} else {
				t = 1
			}
		default:
			t = roots[0]
		}
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return e.Eval(t).X
}

// rowAccumulate distributes one edge's contribution within a single pixel
// row, given the chord endpoints (xTop, xBot) it occupies over that row's
// y-height dy. It mirrors the signed-trapezoidal sweep: each column gets
// the area to the right of the chord within that column, plus whatever
// winding has accumulated from columns already swept, with the partial
// within-column width looked up from a quantized area table rather than
// computed by a fresh multiply each time.
func rowAccumulate(winding []float64, row, w int, xTop, xBot, dy, sign float64, lutSize int) {
	if dy <= 0 {
		return
	}
	widthF := float64(w)
	minX, maxX := xTop, xBot
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minX >= widthF {
		return
	}

	base := row * w
	if maxX <= 0 {
		full := dy * sign
		for x := 0; x < w; x++ {
			winding[base+x] += full
		}
		return
	}

	acc := 0.0
	if minX < 0 {
		acc = leftOffscreenWinding(xTop, xBot, dy, sign)
	}

	xStart := int(minX)
	if xStart < 0 {
		xStart = 0
	}
	xEnd := int(maxX) + 2
	if xEnd > w {
		xEnd = w
	}

	for x := 0; x < xStart; x++ {
		winding[base+x] += acc
	}

	dx := xBot - xTop
	var ySlope float64
	if dx == 0 {
		ySlope = 1e10
	} else {
		ySlope = dy / dx
	}
	xSlope := 1.0 / ySlope

	lut := areaLUT(lutSize)

	for x := xStart; x < xEnd; x++ {
		pxLeft := float64(x)
		pxRight := pxLeft + 1

		leftY := clampf((pxLeft-xTop)*ySlope, 0, dy)
		rightY := clampf((pxRight-xTop)*ySlope, 0, dy)

		leftX := xTop + leftY*xSlope
		rightX := xTop + rightY*xSlope

		segH := absf(rightY - leftY)
		if segH == 0 {
			winding[base+x] += acc
			continue
		}

		// widthAtLeft/widthAtRight are the fraction of the pixel column to
		// the right of the chord at the top and bottom of this sub-segment.
		widthAtLeft := clampf(pxRight-leftX, 0, 1)
		widthAtRight := clampf(pxRight-rightX, 0, 1)

		area := segH * lut.lookup(widthAtLeft, widthAtRight)
		winding[base+x] += area*sign + acc
		acc += segH * sign
	}

	for x := xEnd; x < w; x++ {
		winding[base+x] += acc
	}
}

// leftOffscreenWinding computes the winding contribution an edge makes to
// every on-tile column from the portion of its chord at x < 0, mirroring
// the off-screen-left accumulation the teacher's analytic filler performs
// before it starts per-pixel processing.
func leftOffscreenWinding(xTop, xBot, dy, sign float64) float64 {
	dx := xBot - xTop
	if dx == 0 {
		return 0
	}
	frac0 := clampf((0-xTop)/dx, 0, 1)
	var covered float64
	if dx > 0 {
		covered = frac0
	} else {
		covered = 1 - frac0
	}
	return covered * dy * sign
}

func clampf(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// table is a precomputed, immutable quantization of the trapezoid-area
// formula 0.5*(w0+w1) for a pair of fractional pixel widths w0, w1 each
// quantized to one of size+1 steps. It trades a small amount of precision
// (bounded by 1/(2*size)) for turning the per-pixel area lookup into a
// table index instead of a multiply-add, the same trade the teacher's
// fixed-point alpha tables make for run-length coverage.
type table struct {
	size int
	area [][]float32
}

func newAreaTable(size int) *table {
	if size < 1 {
		size = 1
	}
	area := make([][]float32, size+1)
	for i := range area {
		row := make([]float32, size+1)
		for j := range row {
			row[j] = float32(0.5 * (float64(i) + float64(j)) / float64(size))
		}
		area[i] = row
	}
	return &table{size: size, area: area}
}

func (t *table) lookup(w0, w1 float64) float64 {
	i := int(w0*float64(t.size) + 0.5)
	j := int(w1*float64(t.size) + 0.5)
	if i < 0 {
		i = 0
	} else if i > t.size {
		i = t.size
	}
	if j < 0 {
		j = 0
	} else if j > t.size {
		j = t.size
	}
	return float64(t.area[i][j])
}

var (
	areaLUTCache atomic.Pointer[map[int]*table]
	areaLUTMu    sync.Mutex
)

// areaLUT returns the process-wide quantized area table for the given
// resolution, built once per resolution and shared read-only thereafter.
// The fast path loads the current immutable snapshot without locking; a
// miss falls back to a mutex-guarded rebuild that re-checks the snapshot
// before publishing a new one, so concurrent first callers never race to
// build (or duplicate) the same table.
func areaLUT(size int) *table {
	if m := areaLUTCache.Load(); m != nil {
		if t, ok := (*m)[size]; ok {
			return t
		}
	}

	areaLUTMu.Lock()
	defer areaLUTMu.Unlock()

	cur := areaLUTCache.Load()
	if cur != nil {
		if t, ok := (*cur)[size]; ok {
			return t
		}
	}

	t := newAreaTable(size)
	next := make(map[int]*table)
	if cur != nil {
		for k, v := range *cur {
			next[k] = v
		}
	}
	next[size] = t
	areaLUTCache.Store(&next)
	return t
}
