package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goplot3d/pkg/draw"
	"github.com/philipparndt/goplot3d/pkg/geometry"
)

// Project maps a world point to pixel coordinates. X grows to the right, Y grows
// downwards and Z is the depth in [0,1]. When the homogeneous w is zero the screen
// origin is returned with ok set to false.
func Project(world geometry.Vector3, modelView, projection mgl64.Mat4, vp draw.Viewport) (screen geometry.Vector3, ok bool) {
	clip := projection.Mul4(modelView).Mul4x1(world.Vec3().Vec4(1))
	return toScreen(clip, vp)
}

func toScreen(clip mgl64.Vec4, vp draw.Viewport) (geometry.Vector3, bool) {
	w := clip[3]
	if w == 0 {
		return geometry.Vector3{}, false
	}
	ndcX, ndcY, ndcZ := clip[0]/w, clip[1]/w, clip[2]/w

	return geometry.Vector3{
		X: (ndcX*0.5+0.5)*vp.Width + vp.X,
		Y: vp.Height - ((ndcY*0.5+0.5)*vp.Height + vp.Y),
		Z: (1.0 + ndcZ) * 0.5,
	}, true
}

// Projector caches the combined transform of one frame
type Projector struct {
	modelView  mgl64.Mat4
	projection mgl64.Mat4
	mvp        mgl64.Mat4
	viewport   draw.Viewport
	sentinels  int
}

// NewProjector creates a projector for the given transforms and viewport
func NewProjector(modelView, projection mgl64.Mat4, vp draw.Viewport) *Projector {
	return &Projector{
		modelView:  modelView,
		projection: projection,
		mvp:        projection.Mul4(modelView),
		viewport:   vp,
	}
}

// ForFrame creates a projector from a frame's transforms
func ForFrame(f *draw.Frame) *Projector {
	return NewProjector(f.ModelView, f.Projection, f.Viewport)
}

// Viewport returns the pixel rectangle
func (p *Projector) Viewport() draw.Viewport { return p.viewport }

// Sentinels returns how many projections hit w == 0
func (p *Projector) Sentinels() int { return p.sentinels }

// Project maps a world point to pixel coordinates, see Project
func (p *Projector) Project(world geometry.Vector3) (geometry.Vector3, bool) {
	screen, ok := toScreen(p.mvp.Mul4x1(world.Vec3().Vec4(1)), p.viewport)
	if !ok {
		p.sentinels++
	}
	return screen, ok
}

// EyeDepth returns the distance of a world point in front of the eye
func (p *Projector) EyeDepth(world geometry.Vector3) float64 {
	return -p.modelView.Mul4x1(world.Vec3().Vec4(1))[2]
}

// ScreenLine builds the six-vertex triangle strip of a line of constant pixel
// width between two world points. Alpha ramps from 0 on both outer edges to 1 on
// the center line. The segment is clipped to the near plane first; ok is false
// when nothing of it remains or an endpoint cannot be projected.
func (p *Projector) ScreenLine(from, to geometry.Vector3, width float64) ([]draw.Vertex, bool) {
	a, b, ok := p.ProjectSegment(draw.Vertex{Pos: from, Alpha: 1}, draw.Vertex{Pos: to, Alpha: 1})
	if !ok {
		return nil, false
	}
	return ScreenQuad(a.Pos, b.Pos, width), true
}

// ScreenQuad builds the anti-aliased strip for a segment already in pixel coordinates
func ScreenQuad(a, b geometry.Vector3, width float64) []draw.Vertex {
	dir := geometry.NewVector3(b.X-a.X, b.Y-a.Y, 0).Normalize()
	half := width / 2
	if half < 0.5 {
		half = 0.5
	}
	perp := geometry.NewVector3(-dir.Y, dir.X, 0).Mul(half)

	return []draw.Vertex{
		{Pos: a.Add(perp), Alpha: 0},
		{Pos: b.Add(perp), Alpha: 0},
		{Pos: a, Alpha: 1},
		{Pos: b, Alpha: 1},
		{Pos: a.Sub(perp), Alpha: 0},
		{Pos: b.Sub(perp), Alpha: 0},
	}
}
