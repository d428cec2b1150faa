// Package encode packs a Tiler's output into a versioned, contiguous binary
// command buffer: the external, GPU-facing contract of the rasterizer core.
//
// The layout is a flat stream of little-endian uint32 words, one tag per
// tile followed by that tag's fixed-size or edge-count-driven payload —
// the same "tag, then payload words" shape as the teacher's PTCL encoding,
// generalized from a full per-path command list down to one record per
// tile and with edge geometry carried inline rather than indexed into a
// separate segment buffer.
package encode

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tilerast/internal/core"
	"github.com/gogpu/tilerast/internal/tile"
)

// Version identifies the binary layout below. Consumers must reject a
// buffer whose version they do not recognize rather than guess at the
// payload shape.
const Version uint32 = 1

// Tile record tags.
const (
	tagEmpty uint32 = 0
	tagSolid uint32 = 1
	tagAlpha uint32 = 2
	tagEnd   uint32 = 0xFFFFFFFF
)

// edgeKindLine and edgeKindQuad tag the per-edge records within an Alpha
// tile's payload.
const (
	edgeKindLine uint32 = 0
	edgeKindQuad uint32 = 1
)

// UnsupportedVersionError reports a buffer encoded with a layout version
// this package does not know how to decode.
type UnsupportedVersionError struct {
	Got, Want uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("encode: unsupported buffer version %d (this package decodes version %d)", e.Got, e.Want)
}

// TruncatedBufferError reports a buffer that ends before a record it
// started is complete.
type TruncatedBufferError struct {
	Offset int
}

func (e *TruncatedBufferError) Error() string {
	return fmt.Sprintf("encode: truncated buffer at offset %d", e.Offset)
}

// Encode packs strips into a versioned binary buffer. Empty tiles are
// omitted entirely; Solid tiles emit a four-word header (tag, left, top,
// backdrop) with no edge-count word, the Solid tag alone marking the
// record as edge-free; Alpha tiles emit a header followed by one record
// per edge, vertex coordinates quantized to fixed.Int26_6 (1/64 px)
// subpixel precision — the same fixed-point representation
// golang.org/x/image's own rasterizers use for vertex data.
func Encode(strips []tile.Strip) []byte {
	var words []uint32
	words = append(words, Version)

	for _, strip := range strips {
		for _, t := range strip.Tiles {
			switch t.Class {
			case tile.Empty:
				continue
			case tile.Solid:
				words = append(words, tagSolid,
					uint32(int32(t.Left)), uint32(int32(t.Top)),
					uint32(int32(t.Backdrop)))
			case tile.Alpha:
				words = append(words, tagAlpha,
					uint32(int32(t.Left)), uint32(int32(t.Top)),
					uint32(len(t.Edges)), uint32(int32(t.Backdrop)))
				for _, e := range t.Edges {
					words = append(words, encodeEdge(e)...)
				}
			}
		}
	}
	words = append(words, tagEnd)

	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	return buf
}

func encodeEdge(e core.Edge) []uint32 {
	from := toFixed(e.From)
	to := toFixed(e.To)
	if e.IsLine() {
		return []uint32{
			edgeKindLine,
			uint32(from.X), uint32(from.Y),
			uint32(to.X), uint32(to.Y),
		}
	}
	ctrl := toFixed(e.Control)
	return []uint32{
		edgeKindQuad,
		uint32(from.X), uint32(from.Y),
		uint32(ctrl.X), uint32(ctrl.Y),
		uint32(to.X), uint32(to.Y),
	}
}

func toFixed(p core.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func fromFixed(x, y uint32) core.Point {
	fx := fixed.Int26_6(int32(x))
	fy := fixed.Int26_6(int32(y))
	return core.Pt(float64(fx)/64, float64(fy)/64)
}

// Record is one decoded tile entry: its position, classification, backdrop
// and (for Alpha tiles) its edge list, recovered from fixed-point storage
// back into float64 path coordinates.
type Record struct {
	Left, Top int
	Class     tile.Class
	Backdrop  int
	Edges     []core.Edge
}

// Decode parses a buffer produced by Encode back into a Record sequence.
// It returns an *UnsupportedVersionError if the buffer's version word is
// not one this package knows how to read, and a *TruncatedBufferError if a
// record's header promises more payload than the buffer contains.
func Decode(buf []byte) ([]Record, error) {
	if len(buf) < 4 {
		return nil, &TruncatedBufferError{Offset: 0}
	}
	words := make([]uint32, len(buf)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}

	if words[0] != Version {
		return nil, &UnsupportedVersionError{Got: words[0], Want: Version}
	}

	var records []Record
	i := 1
	for i < len(words) {
		tag := words[i]
		if tag == tagEnd {
			return records, nil
		}
		switch tag {
		case tagSolid:
			if i+4 > len(words) {
				return nil, &TruncatedBufferError{Offset: i}
			}
			records = append(records, Record{
				Left:     int(int32(words[i+1])),
				Top:      int(int32(words[i+2])),
				Class:    tile.Solid,
				Backdrop: int(int32(words[i+3])),
			})
			i += 4
		case tagAlpha:
			if i+5 > len(words) {
				return nil, &TruncatedBufferError{Offset: i}
			}
			left := int(int32(words[i+1]))
			top := int(int32(words[i+2]))
			edgeCount := int(words[i+3])
			backdrop := int(int32(words[i+4]))
			i += 5

			edges := make([]core.Edge, 0, edgeCount)
			for n := 0; n < edgeCount; n++ {
				if i >= len(words) {
					return nil, &TruncatedBufferError{Offset: i}
				}
				kind := words[i]
				switch kind {
				case edgeKindLine:
					if i+5 > len(words) {
						return nil, &TruncatedBufferError{Offset: i}
					}
					from := fromFixed(words[i+1], words[i+2])
					to := fromFixed(words[i+3], words[i+4])
					edges = append(edges, core.NewLineEdge(from, to))
					i += 5
				case edgeKindQuad:
					if i+7 > len(words) {
						return nil, &TruncatedBufferError{Offset: i}
					}
					from := fromFixed(words[i+1], words[i+2])
					ctrl := fromFixed(words[i+3], words[i+4])
					to := fromFixed(words[i+5], words[i+6])
					edges = append(edges, core.NewQuadEdge(from, ctrl, to))
					i += 7
				default:
					return nil, &TruncatedBufferError{Offset: i}
				}
			}
			records = append(records, Record{
				Left: left, Top: top, Class: tile.Alpha,
				Backdrop: backdrop, Edges: edges,
			})
		default:
			return nil, &TruncatedBufferError{Offset: i}
		}
	}
	return records, nil
}
