package drawer

// Geometry is the container size, read fresh on every query.
type Geometry struct {
	Width  float64
	Height float64
}

type Point struct {
	X float64
	Y float64
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
