package common

// Box is an axis-aligned box described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

func (b Box) Intersects(other Box) bool {
	amin, amax := b.Min(), b.Max()
	bmin, bmax := other.Min(), other.Max()
	return amin.X < bmax.X &&
		amax.X > bmin.X &&
		amin.Y < bmax.Y &&
		amax.Y > bmin.Y
}

// IntersectsCircle reports whether the circle at c with radius r touches the box.
func (b Box) IntersectsCircle(c Vec2, r float64) bool {
	lo, hi := b.Min(), b.Max()
	nx := Clamp(c.X, lo.X, hi.X)
	ny := Clamp(c.Y, lo.Y, hi.Y)
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= r*r
}
