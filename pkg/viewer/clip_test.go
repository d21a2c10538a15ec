package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/geometry"
)

func clipProjector() *Projector {
	return NewProjector(mgl64.Ident4(), mgl64.Frustum(-1, 1, -1, 1, 1, 100), draw.Viewport{Width: 100, Height: 100})
}

func TestSegmentsClipEachSegment(t *testing.T) {
	p := clipProjector()
	strip := draw.Primitive{
		Kind:  draw.LineStrip,
		Space: draw.World,
		Vertices: draw.Opaque(
			geometry.NewVector3(-1, 0, -2),
			geometry.NewVector3(1, 0, -2),
			geometry.NewVector3(1, 0, 5),
			geometry.NewVector3(-1, 0, 5),
		),
	}

	segs := p.Segments(strip)
	if len(segs) != 2 {
		t.Fatalf("Segments failed: expected 2 visible segments, got %d", len(segs))
	}
	if !near(segs[0][0].Pos.X, 25) || !near(segs[0][1].Pos.X, 75) || !near(segs[0][0].Pos.Y, 50) {
		t.Errorf("visible segment failed: got %v to %v", segs[0][0].Pos, segs[0][1].Pos)
	}
	if !near(segs[1][0].Pos.X, 75) || !near(segs[1][1].Pos.X, 100) {
		t.Errorf("clipped segment failed: got %v to %v", segs[1][0].Pos, segs[1][1].Pos)
	}
}

func TestSegmentsPairsLines(t *testing.T) {
	p := clipProjector()
	lines := draw.Primitive{
		Kind:  draw.Lines,
		Space: draw.Screen,
		Vertices: draw.Opaque(
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(10, 0, 0),
			geometry.NewVector3(0, 5, 0),
			geometry.NewVector3(10, 5, 0),
			geometry.NewVector3(3, 3, 0),
		),
	}

	segs := p.Segments(lines)
	if len(segs) != 2 {
		t.Fatalf("Segments failed: expected 2 pairs, got %d", len(segs))
	}
	if segs[1][0].Pos.Y != 5 || segs[1][1].Pos.X != 10 {
		t.Errorf("screen segments should pass through unchanged, got %v", segs[1])
	}
}

func TestProjectTriangleClipping(t *testing.T) {
	p := clipProjector()
	v := func(x, z, alpha float64) draw.Vertex {
		return draw.Vertex{Pos: geometry.NewVector3(x, 0, z), Alpha: alpha}
	}

	if got := len(p.ProjectTriangle(v(-1, -2, 1), v(1, -2, 1), v(0, -3, 1))); got != 1 {
		t.Errorf("visible triangle failed: expected 1, got %d", got)
	}
	if got := len(p.ProjectTriangle(v(-1, 2, 1), v(1, 2, 1), v(0, 5, 1))); got != 0 {
		t.Errorf("hidden triangle failed: expected 0, got %d", got)
	}
	if got := len(p.ProjectTriangle(v(-1, -2, 1), v(1, -2, 1), v(0, 5, 1))); got != 2 {
		t.Errorf("one vertex behind failed: expected 2, got %d", got)
	}

	tris := p.ProjectTriangle(v(0, -2, 1), v(1, 5, 0), v(-1, 5, 0))
	if len(tris) != 1 {
		t.Fatalf("two vertices behind failed: expected 1, got %d", len(tris))
	}
	// the near plane z = -1 is a seventh of the way from z = -2 to z = 5
	for _, vert := range tris[0][1:] {
		if !near(vert.Alpha, 6.0/7.0) {
			t.Errorf("alpha interpolation failed: expected %v, got %v", 6.0/7.0, vert.Alpha)
		}
	}
}

func TestTrianglesOfQuad(t *testing.T) {
	p := clipProjector()
	floor := draw.Primitive{
		Kind:  draw.Quad,
		Space: draw.World,
		Vertices: draw.Opaque(
			geometry.NewVector3(-1, -0.5, -2),
			geometry.NewVector3(1, -0.5, -2),
			geometry.NewVector3(1, -0.5, 5),
			geometry.NewVector3(-1, -0.5, 5),
		),
	}

	tris := p.Triangles(floor)
	if len(tris) == 0 {
		t.Fatalf("quad crossing the near plane vanished")
	}
	for _, tri := range tris {
		for _, vert := range tri {
			if vert.Pos.Y < 62.5-eps || vert.Pos.Y > 75+eps {
				t.Errorf("vertex outside the visible floor band: %v", vert.Pos)
			}
		}
	}
}

func TestAnchor(t *testing.T) {
	p := clipProjector()

	if _, ok := p.Anchor(draw.Primitive{Kind: draw.Text, Space: draw.World, Vertices: draw.Opaque(geometry.NewVector3(0, 0, -0.5))}); ok {
		t.Errorf("anchor closer than the near plane should be rejected")
	}
	at, ok := p.Anchor(draw.Primitive{Kind: draw.Text, Space: draw.World, Vertices: draw.Opaque(geometry.NewVector3(0, 0, -2))})
	if !ok || !near(at.Pos.X, 50) || !near(at.Pos.Y, 50) {
		t.Errorf("Anchor failed: expected (50,50), got %v ok=%v", at.Pos, ok)
	}
	if _, ok := p.Anchor(draw.Primitive{Kind: draw.Text, Space: draw.Screen}); ok {
		t.Errorf("text without vertices should be rejected")
	}
}
