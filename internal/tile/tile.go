// Package tile implements the tiler: a vertical sweep over flattened,
// monotonized edges that builds per-column winding intervals, followed
// by a horizontal sweep per strip that partitions those intervals into
// fixed-size tiles and classifies each one.
//
// Callers must pass edges that are already monotone in both x and y
// (see internal/monotone); the tiler's axis-clip operations assume a
// monotone piece's endpoints are its extrema on that axis.
package tile

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/gogpu/tilerast/internal/core"
	"github.com/gogpu/tilerast/internal/interval"
)

// Class classifies a Tile's relationship to the filled region.
type Class int

const (
	// Empty tiles lie wholly outside the path.
	Empty Class = iota
	// Solid tiles lie wholly inside the path.
	Solid
	// Alpha tiles are partially covered and carry an edge list driving
	// per-pixel coverage.
	Alpha
)

func (c Class) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Solid:
		return "Solid"
	case Alpha:
		return "Alpha"
	default:
		return "Class(?)"
	}
}

// Tile is one fixed-size cell of the tile grid, identified by its
// top-left corner in path coordinates. Edges are expressed in tile-local
// coordinates (origin at the tile's own top-left corner).
type Tile struct {
	Left, Top int
	Edges     []core.Edge
	Class     Class
	// Backdrop is the winding number carried into the tile from its left
	// neighbor; meaningful chiefly for Solid tiles, whose single
	// synthetic edge encodes exactly this value.
	Backdrop int
}

// Strip is one horizontal row of tiles at a fixed Top.
type Strip struct {
	Top   int
	Tiles []Tile
}

// Tile performs the full vertical-then-horizontal sweep over edges,
// which must already be flattened and monotonized, and returns the
// non-empty strip sequence. A path with no edges (or only degenerate
// ones) yields a nil slice and no error — degenerate input never
// produces an error from the tiler, which is a pure function of a
// finite input.
func Tile(edges []core.Edge, cfg core.Config) ([]Strip, error) {
	nIn := len(edges)
	edges = dropDegenerate(edges)
	if len(edges) == 0 {
		return nil, nil
	}

	bbox := boundingBox(edges)
	w, h := float64(cfg.TileWidth), float64(cfg.TileHeight)
	xMin := math.Floor(bbox.Min.X/w) * w
	xMax := math.Ceil(bbox.Max.X/w) * w
	yMin := math.Floor(bbox.Min.Y/h) * h
	yMax := math.Ceil(bbox.Max.Y/h) * h

	sorted := append([]core.Edge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool {
		return minY(sorted[i]) < minY(sorted[j])
	})

	ivs := interval.New(xMin, xMax)
	var active []core.Edge
	idx := 0
	tileTop := yMin

	var strips []Strip
	for tileTop < yMax {
		top := tileTop
		bottom := tileTop + h

		var stripEdges []core.Edge
		for _, iv := range ivs.Ranges() {
			if iv.Winding == 0 {
				continue
			}
			if iv.Winding < 0 {
				stripEdges = append(stripEdges, core.NewLineEdge(core.Pt(iv.Start, 0), core.Pt(iv.End, 0)))
			} else {
				stripEdges = append(stripEdges, core.NewLineEdge(core.Pt(iv.End, 0), core.Pt(iv.Start, 0)))
			}
		}

		// Edges already active from a previous strip have already made
		// their one interval-set contribution (at the strip where they
		// were first encountered); re-clipping here only continues to
		// feed their upper part into this strip's real edge list.
		var stillActive []core.Edge
		for _, e := range active {
			upper, lower, clipped := clipAtStripBottom(e, bottom)
			if !clipped {
				stripEdges = append(stripEdges, e.Translate(0, -top))
				continue
			}
			stripEdges = append(stripEdges, upper.Translate(0, -top))
			stillActive = append(stillActive, lower)
		}
		active = stillActive

		// Edges newly encountered in this strip make their single
		// interval-set contribution now, from their topmost point.
		for idx < len(sorted) && minY(sorted[idx]) < bottom {
			e := sorted[idx]
			idx++
			addColumnWinding(ivs, e, xMax)
			upper, lower, clipped := clipAtStripBottom(e, bottom)
			if !clipped {
				stripEdges = append(stripEdges, e.Translate(0, -top))
				continue
			}
			stripEdges = append(stripEdges, upper.Translate(0, -top))
			active = append(active, lower)
		}

		tiles := sweepHorizontal(stripEdges, xMin, xMax, cfg.TileWidth, int(top))
		if anyNonEmpty(tiles) {
			strips = append(strips, Strip{Top: int(top), Tiles: tiles})
		}

		tileTop = bottom
	}

	core.Logger().LogAttrs(context.Background(), slog.LevelDebug, "tiled path",
		slog.Int("edges_in", nIn), slog.Int("edges_kept", len(edges)), slog.Int("strips", len(strips)))

	return strips, nil
}

func anyNonEmpty(tiles []Tile) bool {
	for _, t := range tiles {
		if t.Class != Empty {
			return true
		}
	}
	return false
}

// addColumnWinding folds a newly encountered edge's contribution into
// the interval set that tracks backdrop winding for strips below this
// one. Following the standard left-to-right scanline rule, an edge
// toggles the winding count for every column at or to the right of its
// topmost point's x coordinate (the point closest to tileTop), with a
// sign given by its vertical orientation — so the contribution is the
// half-open range from that x out to the sweep's right boundary, not
// the edge's own (possibly zero-width) bounding box.
func addColumnWinding(ivs *interval.Set, e core.Edge, xMax float64) {
	w := interval.WindingContribution(e.From, e.To)
	if w == 0 {
		return
	}
	x0 := e.From.X
	if e.To.Y < e.From.Y {
		x0 = e.To.X
	}
	if x0 >= xMax {
		return
	}
	ivs.Add(interval.Range{Start: x0, End: xMax}, w)
}

// sweepHorizontal performs the horizontal sweep over one strip's edges
// (already in strip-local y coordinates), producing one Tile per column
// across [xMin, xMax).
func sweepHorizontal(edges []core.Edge, xMin, xMax float64, tileWidth, top int) []Tile {
	w := float64(tileWidth)

	sorted := append([]core.Edge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool {
		return minX(sorted[i]) < minX(sorted[j])
	})

	var active []core.Edge
	idx := 0
	tileLeft := xMin

	var tiles []Tile
	for tileLeft < xMax {
		left := tileLeft
		right := tileLeft + w

		var tileEdges []core.Edge
		var stillActive []core.Edge
		for _, e := range active {
			leftPart, rightPart, clipped := clipAtColumnRight(e, right)
			if !clipped {
				tileEdges = append(tileEdges, e.Translate(-left, 0))
				continue
			}
			tileEdges = append(tileEdges, leftPart.Translate(-left, 0))
			stillActive = append(stillActive, rightPart)
		}
		active = stillActive

		for idx < len(sorted) && minX(sorted[idx]) < right {
			e := sorted[idx]
			idx++
			leftPart, rightPart, clipped := clipAtColumnRight(e, right)
			if !clipped {
				tileEdges = append(tileEdges, e.Translate(-left, 0))
				continue
			}
			tileEdges = append(tileEdges, leftPart.Translate(-left, 0))
			active = append(active, rightPart)
		}

		class, backdrop := classify(tileEdges, tileWidth)
		tiles = append(tiles, Tile{
			Left: int(left), Top: top,
			Edges: tileEdges, Class: class, Backdrop: backdrop,
		})

		tileLeft = right
	}
	return tiles
}

// clipAtColumnRight clips e at x = right and returns its two pieces
// ordered left/right by e's own coordinates regardless of which endpoint
// is From or To: leftPart holds e's smaller-x endpoint (already within
// the current column), rightPart holds the larger-x endpoint (still to
// come in a later column).
func clipAtColumnRight(e core.Edge, right float64) (leftPart, rightPart core.Edge, ok bool) {
	before, after, clipped := interval.ClipEdgeAtX(e, right)
	if !clipped {
		return core.Edge{}, core.Edge{}, false
	}
	if e.From.X <= e.To.X {
		return before, after, true
	}
	return after, before, true
}

// classify implements the post-sweep tile classification: Empty if the
// tile carries no edges, Solid if its only edge is the synthetic
// backdrop spanning the full tile width at y=0, Alpha otherwise.
func classify(edges []core.Edge, tileWidth int) (Class, int) {
	if len(edges) == 0 {
		return Empty, 0
	}
	if len(edges) == 1 && isFullWidthBackdrop(edges[0], tileWidth) {
		backdrop := 1
		if edges[0].From.X < edges[0].To.X {
			backdrop = -1
		}
		return Solid, backdrop
	}
	return Alpha, 0
}

func isFullWidthBackdrop(e core.Edge, tileWidth int) bool {
	if !e.IsLine() || e.From.Y != 0 || e.To.Y != 0 {
		return false
	}
	lo, hi := e.From.X, e.To.X
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo == 0 && hi == float64(tileWidth)
}

func dropDegenerate(edges []core.Edge) []core.Edge {
	out := edges[:0:0]
	for _, e := range edges {
		if e.From.ApproxEq(e.To) && (e.IsLine() || e.Control.ApproxEq(e.From)) {
			core.Logger().Warn("dropped degenerate edge (zero-length, no area contribution)",
				"from", e.From, "to", e.To)
			continue
		}
		out = append(out, e)
	}
	return out
}

func boundingBox(edges []core.Edge) core.Rect {
	bbox := edges[0].BoundingBox()
	for _, e := range edges[1:] {
		bbox = bbox.Union(e.BoundingBox())
	}
	return bbox
}

// clipAtStripBottom clips e at y = bottom and returns its two pieces
// ordered by the sweep's notion of upper/lower regardless of e's own
// From/To orientation: upper is whichever piece holds e's smaller-y
// endpoint (already within the current strip), lower is whichever holds
// the larger-y endpoint (still to come in a later strip).
func clipAtStripBottom(e core.Edge, bottom float64) (upper, lower core.Edge, ok bool) {
	before, after, clipped := interval.ClipEdgeAtY(e, bottom)
	if !clipped {
		return core.Edge{}, core.Edge{}, false
	}
	if e.From.Y <= e.To.Y {
		return before, after, true
	}
	return after, before, true
}

func minY(e core.Edge) float64 {
	if e.From.Y < e.To.Y {
		return e.From.Y
	}
	return e.To.Y
}

func minX(e core.Edge) float64 {
	if e.From.X < e.To.X {
		return e.From.X
	}
	return e.To.X
}
