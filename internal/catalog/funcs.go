package catalog

import "math"

// The closed forms below (disk radii, ramp thresholds, Gaussian centering)
// are contractual: the catalog reference values depend on them exactly.

// quarterdisk is 1 inside the quarter disk of area 0.5 centered at (0,0)
// with radius sqrt(2/pi), 0 outside.
func quarterdisk(x, y float64) float64 {
	const radius2 = 2.0 / math.Pi
	if x*x+y*y < radius2 {
		return 1.0
	}
	return 0.0
}

// fulldisk is 1 inside the disk of area 0.5 centered at (0.5,0.5) with
// radius 1/sqrt(2 pi), 0 outside.
func fulldisk(x, y float64) float64 {
	const radius2 = 1.0 / (2.0 * math.Pi)
	x -= 0.5
	y -= 0.5
	if x*x+y*y < radius2 {
		return 1.0
	}
	return 0.0
}

// triangle is 1 below the diagonal x+y=1, 0 above.
func triangle(x, y float64) float64 {
	if x+y < 1.0 {
		return 1.0
	}
	return 0.0
}

// quarterdiskramp is a quarter disk centered at (0,0) with a linear fall-off
// between radius 0.7 and 0.9.
func quarterdiskramp(x, y float64) float64 {
	const innerRadius, outerRadius = 0.7, 0.9
	r := math.Sqrt(x*x + y*y)
	switch {
	case r <= innerRadius:
		return 1.0
	case r >= outerRadius:
		return 0.0
	default:
		return 1.0 - (r-innerRadius)/(outerRadius-innerRadius)
	}
}

// fulldiskramp is a disk centered at (0.5,0.5) with a linear fall-off
// between radius 0.35 and 0.45.
func fulldiskramp(x, y float64) float64 {
	const innerRadius, outerRadius = 0.35, 0.45
	x -= 0.5
	y -= 0.5
	r := math.Sqrt(x*x + y*y)
	switch {
	case r <= innerRadius:
		return 1.0
	case r >= outerRadius:
		return 0.0
	default:
		return 1.0 - (r-innerRadius)/(outerRadius-innerRadius)
	}
}

// triangleramp ramps across the diagonal: clamp(5(y-x), -0.5, 0.5) + 0.5.
func triangleramp(x, y float64) float64 {
	ymx := 5.0 * (y - x)
	if ymx >= 0.5 {
		ymx = 0.5
	} else if ymx <= -0.5 {
		ymx = -0.5
	}
	return ymx + 0.5
}

// quartergaussian is e^(-x^2-y^2).
func quartergaussian(x, y float64) float64 {
	return math.Exp(-x*x - y*y)
}

// fullgaussian is e^(-(x-0.5)^2-(y-0.5)^2), centered on the square.
func fullgaussian(x, y float64) float64 {
	x -= 0.5
	y -= 0.5
	return math.Exp(-x*x - y*y)
}

// bilinear is f(x,y) = xy.
func bilinear(x, y float64) float64 {
	return x * y
}

// biquadratic is f(x,y) = x^2 y^2.
func biquadratic(x, y float64) float64 {
	return x * x * y * y
}

// sinxy is f(x,y) = sin(pi (x+y)).
func sinxy(x, y float64) float64 {
	return math.Sin(math.Pi * (x + y))
}

// sininvr is sin(pi/r), with the removable value 1 at the origin. Mostly
// smooth but has very large derivatives near (0,0).
func sininvr(x, y float64) float64 {
	r := math.Sqrt(x*x + y*y)
	if r > 0.0 {
		return math.Sin(math.Pi / r)
	}
	return 1.0
}

// step is the 1D step function: 1 for u < 1/pi, 0 otherwise.
func step(u float64) float64 {
	if u < 1.0/math.Pi {
		return 1.0
	}
	return 0.0
}

// ramp is the 1D ramp function falling from 1 to 0 between 0.2 and 0.4.
func ramp(u float64) float64 {
	const left, right = 0.2, 0.4
	switch {
	case u <= left:
		return 1.0
	case u >= right:
		return 0.0
	default:
		return 1.0 - (u-left)/(right-left)
	}
}

// linear is the 1D identity.
func linear(u float64) float64 {
	return u
}

// gaussian1D is e^(-u^2).
func gaussian1D(u float64) float64 {
	return math.Exp(-u * u)
}

// sin1 is sin(pi u).
func sin1(u float64) float64 {
	return math.Sin(math.Pi * u)
}

// sin2 is sin(2 pi u).
func sin2(u float64) float64 {
	return math.Sin(2.0 * math.Pi * u)
}

// onX embeds a 1D function along the x axis of a 2D sample.
func onX(f func(float64) float64) func(x, y float64) float64 {
	return func(x, _ float64) float64 { return f(x) }
}

// onY embeds a 1D function along the y axis of a 2D sample.
func onY(f func(float64) float64) func(x, y float64) float64 {
	return func(_, y float64) float64 { return f(y) }
}
