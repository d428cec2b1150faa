// Package tilerast implements the CPU-side geometry pipeline of a
// tile-based 2D vector rasterizer.
//
// # Overview
//
// tilerast turns arbitrary Bezier-curve paths (SVG-style outlines, glyph
// contours) into a versioned, GPU-consumable tile command stream, and
// defines the analytic (non-supersampled) pixel-coverage algorithm that
// stream implies. It does not own a GPU device, a compositing pipeline,
// or a parser for any particular path-description syntax — callers build
// a Path from abstract commands and hand it to a Rasterizer.
//
// # Pipeline
//
// A Path (subpaths of lines and quadratics, absolute coordinates) is:
//
//  1. Flattened — cubic and arc segments are approximated by quadratics
//     within a configured tolerance (internal/flatten).
//  2. Monotonized — every quadratic is split so it is monotone in both x
//     and y (internal/monotone).
//  3. Swept into an edge/interval engine that tracks winding-number
//     intervals along horizontal scanlines (internal/interval).
//  4. Tiled by a vertical-then-horizontal sweep into TileStrips, each
//     tile classified Empty, Solid, or Alpha (internal/tile).
//  5. Given analytic per-pixel coverage for Alpha tiles via a
//     precomputed area-under-line table (internal/coverage).
//  6. Packed into a command buffer a GPU fine-rasterization pass can
//     consume directly (internal/encode).
//
// # Quick Start
//
//	import "github.com/gogpu/tilerast"
//
//	p := tilerast.NewPath(tilerast.FillNonZero)
//	sp := p.MoveTo(tilerast.Pt(0, 0))
//	sp.LineTo(tilerast.Pt(64, 0))
//	sp.LineTo(tilerast.Pt(64, 64))
//	sp.LineTo(tilerast.Pt(0, 64))
//	sp.Close()
//
//	r := tilerast.NewRasterizer(tilerast.DefaultConfig())
//	strips, err := r.Rasterize(p)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin at top-left, x
// increases right, y increases down.
package tilerast
