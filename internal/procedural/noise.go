package procedural

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Field is a vector valued noise function sampled once per octave.
type Field func(pos mgl64.Vec3) mgl64.Vec3

// minOctaves is the number of octaves evaluated when complexity is zero.
const minOctaves = 4

var (
	sqrt5      = math.Sqrt(5)
	hashOffset = mgl64.Vec3{31.4159, 27.1828, 14.142}
)

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// Noisea hashes a point to a pseudo-random value in [-1, 1).
// It has no internal state: equal inputs give equal outputs.
func Noisea(pos mgl64.Vec3) float64 {
	p := mgl64.Vec3{
		fract(pos[0] * sqrt5),
		fract(pos[1] * sqrt5),
		fract(pos[2] * sqrt5),
	}

	// Fold the point back onto itself so the axes decorrelate
	d := p.Dot(p.Add(hashOffset))
	p = mgl64.Vec3{p[0] + d, p[1] + d, p[2] + d}

	return fract(p[2]*(p[0]+p[1]))*2 - 1
}

// Smooth is the cubic smoothstep of 1-x: 1 at x=0, 0 at x=1.
// Inputs outside [0, 1] are clamped.
func Smooth(x float64) float64 {
	t := mgl64.Clamp(1-x, 0, 1)
	return t * t * (3 - 2*t)
}

// Noiseg is smooth value noise: the hashes of the 8 corners of the lattice
// cell containing pos, blended with smoothstep weights. At integer points the
// result equals Noisea(pos). The scalar is broadcast to all three components.
func Noiseg(pos mgl64.Vec3) mgl64.Vec3 {
	minx, miny, minz := math.Floor(pos[0]), math.Floor(pos[1]), math.Floor(pos[2])
	maxx, maxy, maxz := minx+1, miny+1, minz+1

	fx, fy, fz := pos[0]-minx, pos[1]-miny, pos[2]-minz

	// Near weights belong to the min corner, far weights to the max corner.
	// Smooth(f) + Smooth(1-f) == 1 for every f.
	dx, dy, dz := Smooth(fx), Smooth(fy), Smooth(fz)
	mx, my, mz := Smooth(1-fx), Smooth(1-fy), Smooth(1-fz)

	n000 := Noisea(mgl64.Vec3{minx, miny, minz}) * dx * dy * dz
	n001 := Noisea(mgl64.Vec3{minx, miny, maxz}) * dx * dy * mz
	n010 := Noisea(mgl64.Vec3{minx, maxy, minz}) * dx * my * dz
	n011 := Noisea(mgl64.Vec3{minx, maxy, maxz}) * dx * my * mz
	n100 := Noisea(mgl64.Vec3{maxx, miny, minz}) * mx * dy * dz
	n101 := Noisea(mgl64.Vec3{maxx, miny, maxz}) * mx * dy * mz
	n110 := Noisea(mgl64.Vec3{maxx, maxy, minz}) * mx * my * dz
	n111 := Noisea(mgl64.Vec3{maxx, maxy, maxz}) * mx * my * mz

	n := n000 + n001 + n010 + n011 + n100 + n101 + n110 + n111
	return mgl64.Vec3{n, n, n}
}

// Octaves returns how many octaves a complexity value evaluates.
// Negative complexity counts as zero, so the result is never below 4.
func Octaves(complexity int) int {
	if complexity < 0 {
		complexity = 0
	}
	return complexity + minOctaves
}

// Accumulate sums field over the given number of octaves, doubling the
// frequency each time. Every octave has the same weight.
func Accumulate(pos mgl64.Vec3, octaves int, field Field) mgl64.Vec3 {
	var res mgl64.Vec3
	factor := 1.0
	for i := 0; i < octaves; i++ {
		res = res.Add(field(pos.Mul(factor)))
		factor += factor
	}
	return res
}

// MixFactor maps an accumulated noise value to the color blend factor.
// It is not clamped.
func MixFactor(res mgl64.Vec3) float64 {
	return (res[0] + 1) / 5
}

// DysonSphere paints the dyson sphere pattern at an object-space position.
// The returned color is an unclamped blend of params.Background toward
// params.Color; callers clamp when they write pixels.
func DysonSphere(params Params, position mgl64.Vec3) colorful.Color {
	res := Accumulate(params.NoiseSpace(position), Octaves(params.Complexity), Noiseg)
	return params.Background.BlendRgb(params.Color, MixFactor(res))
}
