package motion

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Seg() PathSegment {
	return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
