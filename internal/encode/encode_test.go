package encode

import (
	"testing"

	"github.com/gogpu/tilerast/internal/core"
	"github.com/gogpu/tilerast/internal/tile"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	strips := []tile.Strip{
		{
			Top: 0,
			Tiles: []tile.Tile{
				{Left: 0, Top: 0, Class: tile.Empty},
				{Left: 16, Top: 0, Class: tile.Solid, Backdrop: 1},
				{
					Left: 32, Top: 0, Class: tile.Alpha, Backdrop: 0,
					Edges: []core.Edge{
						core.NewLineEdge(core.Pt(0, 0), core.Pt(16, 16)),
						core.NewQuadEdge(core.Pt(16, 16), core.Pt(8, 0), core.Pt(0, 16)),
					},
				},
			},
		},
	}

	buf := Encode(strips)
	records, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	// The Empty tile must be omitted entirely.
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2 (Empty tile omitted)", len(records))
	}

	if records[0].Class != tile.Solid || records[0].Left != 16 || records[0].Backdrop != 1 {
		t.Errorf("records[0] = %+v, want Solid tile at (16,0) backdrop=1", records[0])
	}

	alpha := records[1]
	if alpha.Class != tile.Alpha || alpha.Left != 32 {
		t.Errorf("records[1] = %+v, want Alpha tile at (32,0)", alpha)
	}
	if len(alpha.Edges) != 2 {
		t.Fatalf("len(alpha.Edges) = %d, want 2", len(alpha.Edges))
	}
	if !alpha.Edges[0].IsLine() {
		t.Error("alpha.Edges[0] should be a line")
	}
	if !alpha.Edges[1].IsQuadratic() {
		t.Error("alpha.Edges[1] should be quadratic")
	}
	const eps = 1.0 / 64 // fixed.Int26_6 quantization
	if !alpha.Edges[0].From.ApproxEq(core.Pt(0, 0)) {
		t.Errorf("alpha.Edges[0].From = %v, want (0,0)", alpha.Edges[0].From)
	}
	if d := alpha.Edges[1].Control.X - 8; d > eps || d < -eps {
		t.Errorf("alpha.Edges[1].Control.X = %v, want ~8", alpha.Edges[1].Control.X)
	}
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	buf := Encode(nil)
	buf[0] = 0xFF // corrupt the version word (little-endian low byte)
	_, err := Decode(buf)
	if err == nil {
		t.Fatal("Decode() error = nil, want an UnsupportedVersionError")
	}
	var verErr *UnsupportedVersionError
	if !asUnsupportedVersion(err, &verErr) {
		t.Errorf("Decode() error = %v (%T), want *UnsupportedVersionError", err, err)
	}
}

func asUnsupportedVersion(err error, target **UnsupportedVersionError) bool {
	if e, ok := err.(*UnsupportedVersionError); ok {
		*target = e
		return true
	}
	return false
}

func TestDecodeRejectsTruncatedBuffer(t *testing.T) {
	strips := []tile.Strip{{Top: 0, Tiles: []tile.Tile{
		{Left: 0, Top: 0, Class: tile.Alpha, Edges: []core.Edge{
			core.NewLineEdge(core.Pt(0, 0), core.Pt(1, 1)),
		}},
	}}}
	buf := Encode(strips)
	truncated := buf[:len(buf)-8] // cut off the line edge's trailing words
	if _, err := Decode(truncated); err == nil {
		t.Fatal("Decode() error = nil, want a TruncatedBufferError")
	}
}

func TestEncodeEmptyStripsYieldsJustVersionAndEnd(t *testing.T) {
	buf := Encode(nil)
	if len(buf) != 8 {
		t.Fatalf("len(buf) = %d, want 8 (version + end tag)", len(buf))
	}
	records, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}
