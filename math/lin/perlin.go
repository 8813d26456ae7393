// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Classical (Ken Perlin, "Improved Noise", 2002) gradient noise over
// 2, 3 and 4 dimensions, plus a periodic (tileable) variant of each: a
// 256-entry permutation table duplicated to avoid wraparound checks,
// the quintic fade curve 6t^5-15t^4+10t^3, and gradient selection by
// the low bits of the permuted lattice-corner hash.

// perm is Ken Perlin's reference permutation table, duplicated so
// perm[i+256] == perm[i] and lattice indices never need to wrap.
var perm = [512]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// fade applies the quintic ease curve 6t^5-15t^4+10t^3.
func fade[T Float](t T) T { return t * t * t * (t*(t*6-15) + 10) }

func perlinWrap(i, period int) int {
	if period <= 0 {
		return i & 255
	}
	return i % period
}

func grad1[T Float](hash int, x T) T {
	if hash&1 == 0 {
		return x
	}
	return -x
}

func grad2[T Float](hash int, x, y T) T {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

func grad3[T Float](hash int, x, y, z T) T {
	h := hash & 15
	var u, v T
	if h < 8 {
		u = x
	} else {
		u = y
	}
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	r := T(0)
	if h&1 == 0 {
		r += u
	} else {
		r -= u
	}
	if h&2 == 0 {
		r += v
	} else {
		r -= v
	}
	return r
}

func grad4[T Float](hash int, x, y, z, w T) T {
	h := hash & 31
	var a, b, c T
	switch h >> 3 {
	case 0:
		a, b, c = y, z, w
	case 1:
		a, b, c = x, z, w
	case 2:
		a, b, c = x, y, w
	default:
		a, b, c = x, y, z
	}
	r := T(0)
	if h&1 == 0 {
		r += a
	} else {
		r -= a
	}
	if h&2 == 0 {
		r += b
	} else {
		r -= b
	}
	if h&4 == 0 {
		r += c
	} else {
		r -= c
	}
	return r
}

// Perlin2 returns classical Perlin noise at v, in roughly [-1,1].
func Perlin2[T Float](v Vec2[T]) T { return perlin2(v, 0) }

// PerlinPeriodic2 is Perlin2 tiled with the given integer period along
// each axis (period <= 0 means no tiling).
func PerlinPeriodic2[T Float](v Vec2[T], period int) T { return perlin2(v, period) }

func perlin2[T Float](v Vec2[T], period int) T {
	xi, yi := int(Floor(v.X)), int(Floor(v.Y))
	xf, yf := v.X-Floor(v.X), v.Y-Floor(v.Y)
	u, vv := fade(xf), fade(yf)

	x0, x1 := perlinWrap(xi, period), perlinWrap(xi+1, period)
	y0, y1 := perlinWrap(yi, period), perlinWrap(yi+1, period)

	aa := perm[perm[x0&255]+y0&255]
	ab := perm[perm[x0&255]+y1&255]
	ba := perm[perm[x1&255]+y0&255]
	bb := perm[perm[x1&255]+y1&255]

	n00 := grad2(aa, xf, yf)
	n10 := grad2(ba, xf-1, yf)
	n01 := grad2(ab, xf, yf-1)
	n11 := grad2(bb, xf-1, yf-1)

	nx0 := Mix(n00, n10, u)
	nx1 := Mix(n01, n11, u)
	return Mix(nx0, nx1, vv)
}

// Perlin3 returns classical Perlin noise at v, in roughly [-1,1].
func Perlin3[T Float](v Vec3[T]) T { return perlin3(v, 0) }

// PerlinPeriodic3 is Perlin3 tiled with the given integer period along
// each axis.
func PerlinPeriodic3[T Float](v Vec3[T], period int) T { return perlin3(v, period) }

func perlin3[T Float](v Vec3[T], period int) T {
	xi, yi, zi := int(Floor(v.X)), int(Floor(v.Y)), int(Floor(v.Z))
	xf, yf, zf := v.X-Floor(v.X), v.Y-Floor(v.Y), v.Z-Floor(v.Z)
	u, vv, w := fade(xf), fade(yf), fade(zf)

	x0, x1 := perlinWrap(xi, period)&255, perlinWrap(xi+1, period)&255
	y0, y1 := perlinWrap(yi, period)&255, perlinWrap(yi+1, period)&255
	z0, z1 := perlinWrap(zi, period)&255, perlinWrap(zi+1, period)&255

	aaa := perm[perm[perm[x0]+y0]+z0]
	aba := perm[perm[perm[x0]+y1]+z0]
	aab := perm[perm[perm[x0]+y0]+z1]
	abb := perm[perm[perm[x0]+y1]+z1]
	baa := perm[perm[perm[x1]+y0]+z0]
	bba := perm[perm[perm[x1]+y1]+z0]
	bab := perm[perm[perm[x1]+y0]+z1]
	bbb := perm[perm[perm[x1]+y1]+z1]

	n000 := grad3(aaa, xf, yf, zf)
	n100 := grad3(baa, xf-1, yf, zf)
	n010 := grad3(aba, xf, yf-1, zf)
	n110 := grad3(bba, xf-1, yf-1, zf)
	n001 := grad3(aab, xf, yf, zf-1)
	n101 := grad3(bab, xf-1, yf, zf-1)
	n011 := grad3(abb, xf, yf-1, zf-1)
	n111 := grad3(bbb, xf-1, yf-1, zf-1)

	nx00 := Mix(n000, n100, u)
	nx10 := Mix(n010, n110, u)
	nx01 := Mix(n001, n101, u)
	nx11 := Mix(n011, n111, u)
	nxy0 := Mix(nx00, nx10, vv)
	nxy1 := Mix(nx01, nx11, vv)
	return Mix(nxy0, nxy1, w)
}

// Perlin4 returns classical Perlin noise at v, in roughly [-1,1].
func Perlin4[T Float](v Vec4[T]) T { return perlin4(v, 0) }

// PerlinPeriodic4 is Perlin4 tiled with the given integer period along
// each axis.
func PerlinPeriodic4[T Float](v Vec4[T], period int) T { return perlin4(v, period) }

func perlin4[T Float](v Vec4[T], period int) T {
	xi, yi, zi, wi := int(Floor(v.X)), int(Floor(v.Y)), int(Floor(v.Z)), int(Floor(v.W))
	xf, yf, zf, wf := v.X-Floor(v.X), v.Y-Floor(v.Y), v.Z-Floor(v.Z), v.W-Floor(v.W)
	fu, fv, fw, ft := fade(xf), fade(yf), fade(zf), fade(wf)

	x0, x1 := perlinWrap(xi, period)&255, perlinWrap(xi+1, period)&255
	y0, y1 := perlinWrap(yi, period)&255, perlinWrap(yi+1, period)&255
	z0, z1 := perlinWrap(zi, period)&255, perlinWrap(zi+1, period)&255
	w0, w1 := perlinWrap(wi, period)&255, perlinWrap(wi+1, period)&255

	hash := func(x, y, z, w int) int {
		return perm[perm[perm[perm[x]+y]+z]+w]
	}

	n0000 := grad4(hash(x0, y0, z0, w0), xf, yf, zf, wf)
	n1000 := grad4(hash(x1, y0, z0, w0), xf-1, yf, zf, wf)
	n0100 := grad4(hash(x0, y1, z0, w0), xf, yf-1, zf, wf)
	n1100 := grad4(hash(x1, y1, z0, w0), xf-1, yf-1, zf, wf)
	n0010 := grad4(hash(x0, y0, z1, w0), xf, yf, zf-1, wf)
	n1010 := grad4(hash(x1, y0, z1, w0), xf-1, yf, zf-1, wf)
	n0110 := grad4(hash(x0, y1, z1, w0), xf, yf-1, zf-1, wf)
	n1110 := grad4(hash(x1, y1, z1, w0), xf-1, yf-1, zf-1, wf)
	n0001 := grad4(hash(x0, y0, z0, w1), xf, yf, zf, wf-1)
	n1001 := grad4(hash(x1, y0, z0, w1), xf-1, yf, zf, wf-1)
	n0101 := grad4(hash(x0, y1, z0, w1), xf, yf-1, zf, wf-1)
	n1101 := grad4(hash(x1, y1, z0, w1), xf-1, yf-1, zf, wf-1)
	n0011 := grad4(hash(x0, y0, z1, w1), xf, yf, zf-1, wf-1)
	n1011 := grad4(hash(x1, y0, z1, w1), xf-1, yf, zf-1, wf-1)
	n0111 := grad4(hash(x0, y1, z1, w1), xf, yf-1, zf-1, wf-1)
	n1111 := grad4(hash(x1, y1, z1, w1), xf-1, yf-1, zf-1, wf-1)

	nx000 := Mix(n0000, n1000, fu)
	nx100 := Mix(n0100, n1100, fu)
	nx010 := Mix(n0010, n1010, fu)
	nx110 := Mix(n0110, n1110, fu)
	nx001 := Mix(n0001, n1001, fu)
	nx101 := Mix(n0101, n1101, fu)
	nx011 := Mix(n0011, n1011, fu)
	nx111 := Mix(n0111, n1111, fu)

	nxy00 := Mix(nx000, nx100, fv)
	nxy10 := Mix(nx010, nx110, fv)
	nxy01 := Mix(nx001, nx101, fv)
	nxy11 := Mix(nx011, nx111, fv)

	nxyz0 := Mix(nxy00, nxy10, fw)
	nxyz1 := Mix(nxy01, nxy11, fw)
	return Mix(nxyz0, nxyz1, ft)
}
