package tilerast

import (
	"log/slog"

	"github.com/gogpu/tilerast/internal/core"
)

// Geometry primitives. These are type aliases, not new types: a
// tilerast.Point and an internal/core.Point are the same type, so values
// cross the package boundary without conversion.
type (
	Point    = core.Point
	Affine   = core.Affine
	Rect     = core.Rect
	Line     = core.Line
	QuadBez  = core.QuadBez
	CubicBez = core.CubicBez
)

const Epsilon = core.Epsilon

var (
	Pt         = core.Pt
	Lerp       = core.Lerp
	ApproxEq   = core.ApproxEq
	Cross3     = core.Cross3
	NewLine    = core.NewLine
	NewQuadBez = core.NewQuadBez
	NewCubicBez = core.NewCubicBez
	NewRect    = core.NewRect
	EmptyRect  = core.EmptyRect

	IdentityAffine  = core.IdentityAffine
	TranslateAffine = core.TranslateAffine
	ScaleAffine     = core.ScaleAffine
	RotateAffine    = core.RotateAffine
)

// Path representation.
type (
	FillRule    = core.FillRule
	EdgeKind    = core.EdgeKind
	Edge        = core.Edge
	Subpath     = core.Subpath
	Path        = core.Path
	CommandKind = core.CommandKind
	Command     = core.Command
)

const (
	FillNonZero = core.FillNonZero
	FillEvenOdd = core.FillEvenOdd

	EdgeLine      = core.EdgeLine
	EdgeQuadratic = core.EdgeQuadratic

	CmdMoveTo        = core.CmdMoveTo
	CmdLineTo        = core.CmdLineTo
	CmdHorizontalTo  = core.CmdHorizontalTo
	CmdVerticalTo    = core.CmdVerticalTo
	CmdCubicTo       = core.CmdCubicTo
	CmdQuadTo        = core.CmdQuadTo
	CmdSmoothCubicTo = core.CmdSmoothCubicTo
	CmdSmoothQuadTo  = core.CmdSmoothQuadTo
	CmdArcTo         = core.CmdArcTo
	CmdClose         = core.CmdClose
)

var (
	NewLineEdge = core.NewLineEdge
	NewQuadEdge = core.NewQuadEdge
	NewPath     = core.NewPath
)

// Configuration and errors.
type (
	Config                        = core.Config
	MalformedSegmentError         = core.MalformedSegmentError
	DegenerateControlPointError   = core.DegenerateControlPointError
	SubdivisionDepthExceededError = core.SubdivisionDepthExceededError
	ConfigOutOfRangeError         = core.ConfigOutOfRangeError
)

var DefaultConfig = core.DefaultConfig

// Root solvers, exposed for callers that need to reason about curve
// extrema or intersections directly.
var (
	SolveQuadratic               = core.SolveQuadratic
	SolveQuadraticInUnitInterval = core.SolveQuadraticInUnitInterval
)

// SetLogger installs l as the package-wide diagnostics logger for the
// whole pipeline (flattening, monotonizing, tiling). A nil l restores the
// silent default.
func SetLogger(l *slog.Logger) { core.SetLogger(l) }

// Logger returns the logger currently installed by SetLogger.
func Logger() *slog.Logger { return core.Logger() }
