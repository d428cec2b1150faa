package tilerast

import (
	"github.com/gogpu/tilerast/internal/coverage"
	"github.com/gogpu/tilerast/internal/encode"
	"github.com/gogpu/tilerast/internal/flatten"
	"github.com/gogpu/tilerast/internal/monotone"
	"github.com/gogpu/tilerast/internal/tile"
)

// Rasterizer runs the full pipeline — monotonize, tile, analytic coverage —
// for paths sharing one Config. It holds no per-path state, so a single
// Rasterizer may be reused, even concurrently, across any number of paths;
// the only shared resource is the coverage package's process-wide area
// lookup table, which is read-only after its first build.
type Rasterizer struct {
	cfg Config
}

// NewRasterizer creates a Rasterizer with the given configuration.
func NewRasterizer(cfg Config) *Rasterizer {
	return &Rasterizer{cfg: cfg}
}

// Config returns the configuration this Rasterizer was built with.
func (r *Rasterizer) Config() Config { return r.cfg }

// RasterTile is one fixed-size tile with its classification and, for
// Alpha-class tiles, its resolved per-pixel coverage buffer (row-major,
// length Config.TileWidth*Config.TileHeight, values in [0, 1]).
type RasterTile struct {
	tile.Tile
	Coverage []float32
}

// TileClass classifies a RasterTile's relationship to the filled region.
type TileClass = tile.Class

const (
	// ClassEmpty tiles lie wholly outside the path.
	ClassEmpty = tile.Empty
	// ClassSolid tiles lie wholly inside the path.
	ClassSolid = tile.Solid
	// ClassAlpha tiles are partially covered and carry a resolved
	// Coverage buffer.
	ClassAlpha = tile.Alpha
)

// RasterStrip is one horizontal row of resolved tiles at a fixed Top.
type RasterStrip struct {
	Top   int
	Tiles []RasterTile
}

// Rasterize runs the full pipeline on an already-built Path (see NewPath),
// returning one RasterStrip per non-empty tile row with analytic coverage
// resolved for every Alpha tile. Solid and Empty tiles carry a nil
// Coverage; their class and backdrop fully describe them.
func (r *Rasterizer) Rasterize(p *Path) ([]RasterStrip, error) {
	strips, err := r.tile(p)
	if err != nil {
		return nil, err
	}

	out := make([]RasterStrip, len(strips))
	for i, s := range strips {
		rs := RasterStrip{Top: s.Top, Tiles: make([]RasterTile, len(s.Tiles))}
		for j, t := range s.Tiles {
			rt := RasterTile{Tile: t}
			if t.Class == tile.Alpha {
				rt.Coverage = coverage.Compute(t.Edges, t.Backdrop, r.cfg.Fill, r.cfg)
			}
			rs.Tiles[j] = rt
		}
		out[i] = rs
	}
	return out, nil
}

// RasterizeTransformed maps p through m before rasterizing it, without
// mutating p. Use this to place a reusable path (e.g. a glyph outline or
// an icon) at an arbitrary position, scale, or rotation without having to
// rebuild its subpaths by hand.
func (r *Rasterizer) RasterizeTransformed(p *Path, m Affine) ([]RasterStrip, error) {
	return r.Rasterize(p.Transform(m))
}

// Encode runs the full pipeline and packs the result into a versioned
// binary command buffer ready for a GPU fine-rasterization pass to
// consume; see internal/encode for the wire format.
func (r *Rasterizer) Encode(p *Path) ([]byte, error) {
	strips, err := r.tile(p)
	if err != nil {
		return nil, err
	}
	return encode.Encode(strips), nil
}

// RasterizeCommands canonicalizes an abstract command stream — the output
// of an external SVG-path-style parser — and rasterizes it directly,
// combining path construction and Rasterize in one call.
func (r *Rasterizer) RasterizeCommands(cmds []Command, fill FillRule) ([]RasterStrip, error) {
	p, err := flatten.Canonicalize(cmds, fill, r.cfg)
	if err != nil {
		return nil, err
	}
	return r.Rasterize(p)
}

// tile runs monotonization and tiling, the shared first half of Rasterize
// and Encode.
func (r *Rasterizer) tile(p *Path) ([]tile.Strip, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	monoEdges, err := monotone.SplitAll(p.Edges())
	if err != nil {
		return nil, err
	}
	return tile.Tile(monoEdges, r.cfg)
}
