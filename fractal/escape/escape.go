// Package escape renders escape-time fractals. The Mandelbrot set and
// its Julia companions share one orbit kernel, so every pixel in the
// module is judged by the same loop.
package escape

import (
	"math"
	"math/cmplx"
)

// DefaultJuliaC is the classic Julia constant the plain view uses.
var DefaultJuliaC = complex(-0.7, 0.27015)

// Orbit steps z through z squared plus c until the orbit leaves the
// radius-2 disc or the budget runs out. It reports the number of steps
// taken and the final value: a seed already outside the disc takes no
// steps, and bounded orbits report maxIter.
func Orbit(z, c complex128, maxIter int) (int, complex128) {
	n := 0
	for n < maxIter && real(z)*real(z)+imag(z)*imag(z) <= 4 {
		z = z*z + c
		n++
	}
	return n, z
}

// Iterations counts escape steps for the Mandelbrot orbit of c.
func Iterations(c complex128, maxIter int) int {
	n, _ := Orbit(0, c, maxIter)
	return n
}

// JuliaIterations counts escape steps for the orbit of z under the
// Julia constant k.
func JuliaIterations(z, k complex128, maxIter int) int {
	n, _ := Orbit(z, k, maxIter)
	return n
}

// Smooth returns the fractional escape count used for banding-free
// coloring. In-set orbits return maxIter exactly.
func Smooth(z, c complex128, maxIter int) float64 {
	n, last := Orbit(z, c, maxIter)
	if n >= maxIter {
		return float64(maxIter)
	}
	return float64(n) + 1 - math.Log(math.Log(cmplx.Abs(last)))/math.Log(2)
}
