package block

import "math"

// ramp gives the blend fraction toward endpoint b for each palette index,
// matching BuildPalette's "b-first" weights (p2 = 2/3 b + 1/3 a, p3 = 1/3
// b + 2/3 a).
var ramp = [4]float64{0: 0, 1: 1, 2: 2.0 / 3.0, 3: 1.0 / 3.0}

// refineIterations is the number of least-squares endpoint refinement
// passes performed after the initial principal-axis estimate.
const refineIterations = 3

// Encode compresses 16 RGBA texels, in row-major order, into an 8-byte
// GCT block. It uses a "high-quality" strategy: find the principal axis
// of the color distribution, take its extremes as initial endpoints,
// then refine them by least-squares fit to the 4-level ramp. Every texel
// is then re-assigned to whichever of the 4 palette entries minimizes
// squared error, ties broken toward the lower index.
//
// The encoder always emits the four-interpolated-color mode; GCT never
// uses BC1's three-color/one-bit-alpha mode, so endpoints a and b are
// always treated symmetrically regardless of their relative 565 value.
func Encode(texels [16]Color) [8]byte {
	a, b := initialEndpoints(texels)
	a, b = refine(texels, a, b)

	a16 := PackColor16(clamp8(a[0]), clamp8(a[1]), clamp8(a[2]))
	b16 := PackColor16(clamp8(b[0]), clamp8(b[1]), clamp8(b[2]))

	pal := BuildPalette(a16, b16)
	nat := naturalBlock{a: a16, b: b16}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			idx := bestIndex(pal, texels[r*4+c])
			nat.table |= uint32(idx) << uint(8*r+2*c)
		}
	}
	return nat.toGCT()
}

// rgbVec is a float64 RGB triple used for the endpoint search.
type rgbVec [3]float64

func colorToVec(c Color) rgbVec { return rgbVec{float64(c.R), float64(c.G), float64(c.B)} }

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// initialEndpoints finds the principal axis of the 16 texels' color
// distribution via power iteration on the covariance matrix, projects
// every texel onto it, and returns the two extremes as the initial
// endpoint guess.
func initialEndpoints(texels [16]Color) (rgbVec, rgbVec) {
	var mean rgbVec
	for _, t := range texels {
		v := colorToVec(t)
		mean[0] += v[0]
		mean[1] += v[1]
		mean[2] += v[2]
	}
	mean[0] /= 16
	mean[1] /= 16
	mean[2] /= 16

	var cov [3][3]float64
	for _, t := range texels {
		v := colorToVec(t)
		d := rgbVec{v[0] - mean[0], v[1] - mean[1], v[2] - mean[2]}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov[i][j] += d[i] * d[j]
			}
		}
	}

	// Start from the covariance column of the highest-variance channel: a
	// fixed start such as (1,1,1) is orthogonal to axes like "red rises
	// while green falls" and would collapse to zero on the first step.
	best := 0
	for k := 1; k < 3; k++ {
		if cov[k][k] > cov[best][best] {
			best = k
		}
	}
	axis := rgbVec{cov[0][best], cov[1][best], cov[2][best]}
	for iter := 0; iter < 8; iter++ {
		var next rgbVec
		for i := 0; i < 3; i++ {
			next[i] = cov[i][0]*axis[0] + cov[i][1]*axis[1] + cov[i][2]*axis[2]
		}
		n := math.Sqrt(next[0]*next[0] + next[1]*next[1] + next[2]*next[2])
		if n < 1e-9 {
			break
		}
		axis = rgbVec{next[0] / n, next[1] / n, next[2] / n}
	}

	minProj, maxProj := math.Inf(1), math.Inf(-1)
	for _, t := range texels {
		v := colorToVec(t)
		d := rgbVec{v[0] - mean[0], v[1] - mean[1], v[2] - mean[2]}
		p := d[0]*axis[0] + d[1]*axis[1] + d[2]*axis[2]
		if p < minProj {
			minProj = p
		}
		if p > maxProj {
			maxProj = p
		}
	}

	lo := rgbVec{mean[0] + axis[0]*minProj, mean[1] + axis[1]*minProj, mean[2] + axis[2]*minProj}
	hi := rgbVec{mean[0] + axis[0]*maxProj, mean[1] + axis[1]*maxProj, mean[2] + axis[2]*maxProj}

	// a is the endpoint nearer the low end of the axis, b the high end;
	// the palette ramp treats them asymmetrically, so the choice of which
	// extreme is "a" only affects which texels land on indices 2 vs 3,
	// not reconstruction error.
	return lo, hi
}

// refine repeatedly re-assigns each texel to its nearest current palette
// entry, then re-solves a per-channel least-squares fit of the endpoints
// against the 4-level ramp implied by those assignments.
func refine(texels [16]Color, a, b rgbVec) (rgbVec, rgbVec) {
	for iter := 0; iter < refineIterations; iter++ {
		a16 := PackColor16(clamp8(a[0]), clamp8(a[1]), clamp8(a[2]))
		b16 := PackColor16(clamp8(b[0]), clamp8(b[1]), clamp8(b[2]))
		pal := BuildPalette(a16, b16)

		var s0, s1, s2 float64
		var sumA, sumB rgbVec
		for _, t := range texels {
			idx := bestIndex(pal, t)
			tb := ramp[idx]
			ta := 1 - tb
			s0 += ta * ta
			s1 += ta * tb
			s2 += tb * tb
			v := colorToVec(t)
			for k := 0; k < 3; k++ {
				sumA[k] += ta * v[k]
				sumB[k] += tb * v[k]
			}
		}

		det := s0*s2 - s1*s1
		if math.Abs(det) < 1e-6 {
			break
		}
		var newA, newB rgbVec
		for k := 0; k < 3; k++ {
			newA[k] = (s2*sumA[k] - s1*sumB[k]) / det
			newB[k] = (s0*sumB[k] - s1*sumA[k]) / det
		}
		a, b = newA, newB
	}
	return a, b
}

// bestIndex picks the palette entry minimizing squared Euclidean
// distance to c, ties broken toward the lower index.
func bestIndex(pal Palette, c Color) int {
	best, bestDist := 0, 1<<30
	for i, p := range pal {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}
