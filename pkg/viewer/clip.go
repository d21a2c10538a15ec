package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goplot3d/pkg/draw"
)

// clipVertex is a vertex in homogeneous clip coordinates
type clipVertex struct {
	pos   mgl64.Vec4
	alpha float64
}

// nearDistance is non-negative for clip points on or beyond the near plane
func nearDistance(c mgl64.Vec4) float64 {
	return c[2] + c[3]
}

func (p *Projector) toClip(v draw.Vertex) clipVertex {
	return clipVertex{pos: p.mvp.Mul4x1(v.Pos.Vec3().Vec4(1)), alpha: v.Alpha}
}

// crossing interpolates the point where the edge a-b meets the near plane.
// The endpoints must lie on different sides.
func crossing(a, b clipVertex) clipVertex {
	da, db := nearDistance(a.pos), nearDistance(b.pos)
	t := da / (da - db)
	return clipVertex{
		pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
		alpha: a.alpha + t*(b.alpha-a.alpha),
	}
}

func (p *Projector) fromClip(c clipVertex) (draw.Vertex, bool) {
	pos, ok := toScreen(c.pos, p.viewport)
	if !ok {
		p.sentinels++
	}
	return draw.Vertex{Pos: pos, Alpha: c.alpha}, ok
}

// ProjectSegment projects the part of the world segment a-b that lies in front
// of the near plane. ok is false when none of it does.
func (p *Projector) ProjectSegment(a, b draw.Vertex) (draw.Vertex, draw.Vertex, bool) {
	ca, cb := p.toClip(a), p.toClip(b)
	da, db := nearDistance(ca.pos), nearDistance(cb.pos)
	switch {
	case da < 0 && db < 0:
		return draw.Vertex{}, draw.Vertex{}, false
	case da < 0:
		ca = crossing(ca, cb)
	case db < 0:
		cb = crossing(ca, cb)
	}
	sa, okA := p.fromClip(ca)
	sb, okB := p.fromClip(cb)
	return sa, sb, okA && okB
}

// ProjectTriangle clips a world triangle to the near plane and returns the
// visible part as zero, one or two pixel-space triangles.
func (p *Projector) ProjectTriangle(a, b, c draw.Vertex) [][3]draw.Vertex {
	in := [3]clipVertex{p.toClip(a), p.toClip(b), p.toClip(c)}

	poly := make([]clipVertex, 0, 4)
	for i := range in {
		cur, next := in[i], in[(i+1)%3]
		curIn, nextIn := nearDistance(cur.pos) >= 0, nearDistance(next.pos) >= 0
		if curIn {
			poly = append(poly, cur)
		}
		if curIn != nextIn {
			poly = append(poly, crossing(cur, next))
		}
	}
	if len(poly) < 3 {
		return nil
	}

	screen := make([]draw.Vertex, len(poly))
	for i, v := range poly {
		s, ok := p.fromClip(v)
		if !ok {
			return nil
		}
		screen[i] = s
	}
	tris := make([][3]draw.Vertex, 0, len(screen)-2)
	for i := 2; i < len(screen); i++ {
		tris = append(tris, [3]draw.Vertex{screen[0], screen[i-1], screen[i]})
	}
	return tris
}

// Triangles returns the pixel-space triangles of a Quad or TriangleStrip.
// World primitives are clipped to the near plane triangle by triangle.
func (p *Projector) Triangles(prim draw.Primitive) [][3]draw.Vertex {
	v := prim.Vertices
	var tris [][3]draw.Vertex
	switch prim.Kind {
	case draw.Quad:
		if len(v) == 4 {
			tris = [][3]draw.Vertex{{v[0], v[1], v[2]}, {v[0], v[2], v[3]}}
		}
	case draw.TriangleStrip:
		for i := 2; i < len(v); i++ {
			tris = append(tris, [3]draw.Vertex{v[i-2], v[i-1], v[i]})
		}
	}
	if prim.Space == draw.Screen {
		return tris
	}

	out := make([][3]draw.Vertex, 0, len(tris))
	for _, t := range tris {
		out = append(out, p.ProjectTriangle(t[0], t[1], t[2])...)
	}
	return out
}

// Segments returns the pixel-space segments of a Lines or LineStrip primitive.
// World primitives are clipped to the near plane segment by segment.
func (p *Projector) Segments(prim draw.Primitive) [][2]draw.Vertex {
	v := prim.Vertices
	var segs [][2]draw.Vertex
	switch prim.Kind {
	case draw.Lines:
		for i := 1; i < len(v); i += 2 {
			segs = append(segs, [2]draw.Vertex{v[i-1], v[i]})
		}
	case draw.LineStrip:
		for i := 1; i < len(v); i++ {
			segs = append(segs, [2]draw.Vertex{v[i-1], v[i]})
		}
	}
	if prim.Space == draw.Screen {
		return segs
	}

	out := segs[:0]
	for _, s := range segs {
		if a, b, ok := p.ProjectSegment(s[0], s[1]); ok {
			out = append(out, [2]draw.Vertex{a, b})
		}
	}
	return out
}

// Anchor returns the pixel position of a text primitive. ok is false when a
// world anchor lies closer to the eye than the near plane.
func (p *Projector) Anchor(prim draw.Primitive) (draw.Vertex, bool) {
	if len(prim.Vertices) == 0 {
		return draw.Vertex{}, false
	}
	v := prim.Vertices[0]
	if prim.Space == draw.Screen {
		return v, true
	}
	c := p.toClip(v)
	if nearDistance(c.pos) < 0 {
		return draw.Vertex{}, false
	}
	return p.fromClip(c)
}
