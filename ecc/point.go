/*
 * Elliptic curve 'Secp256k1' point arithmetic.
 *
 * (c) 2011-2013 Bernd Fix   >Y<
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or (at
 * your option) any later version.
 *
 * This program is distributed in the hope that it will be useful, but
 * WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package ecc implements point arithmetic on the secp256k1 short-Weierstrass
// curve: y^2 = x^3 + a*x + b mod p. Points are a tagged variant of Identity
// and Affine{x,y}, never a nullable coordinate pair -- collapsing those two
// states into one is a frequent source of subtle bugs.
package ecc

import (
	"github.com/bfix/cryptos/errs"
	"github.com/bfix/cryptos/field"
)

// Point is either the identity ("point at infinity") or an affine pair
// (x,y) on the secp256k1 curve. It is a plain value type, freely copied.
type Point struct {
	x, y field.Elem
	inf  bool
}

// Infinity is the distinguished point-at-infinity sentinel.
var Infinity = Point{inf: true}

// NewAffine constructs a non-identity point from its coordinates. It does
// not check the curve equation; use IsOnCurve to validate untrusted input.
func NewAffine(x, y field.Elem) Point {
	return Point{x: x, y: y, inf: false}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// X returns the affine x-coordinate. Calling it on Infinity returns zero.
func (p Point) X() field.Elem {
	return p.x
}

// Y returns the affine y-coordinate. Calling it on Infinity returns zero.
func (p Point) Y() field.Elem {
	return p.y
}

// Equal reports whether p and q are the same point. Infinity equals only
// Infinity.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf && q.inf
	}
	return field.Equal(p.x, q.x) && field.Equal(p.y, q.y)
}

// IsOnCurve checks y^2 = x^3 + a*x + b (mod p) for a non-identity point.
// Infinity is considered on-curve by convention.
func (p Point) IsOnCurve(c CurveParams) bool {
	if p.inf {
		return true
	}
	y2 := field.MulMod(p.y, p.y, c.P)
	x3 := field.MulMod(field.MulMod(p.x, p.x, c.P), p.x, c.P)
	ax := field.MulMod(c.A, p.x, c.P)
	rhs := field.AddMod(field.AddMod(x3, ax, c.P), c.B, c.P)
	return field.Equal(y2, rhs)
}

// Add returns p+q on the curve described by c. It detects P=Q (doubling)
// and P=-Q (identity) before computing any slope, so no division by zero
// is ever attempted.
func Add(c CurveParams, p, q Point) Point {
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}
	if p.Equal(q) {
		return Double(c, p)
	}
	if field.Equal(p.x, q.x) {
		// same x, different y: p = -q, sum is the identity.
		return Infinity
	}
	// lambda = (yQ - yP) / (xQ - xP) mod p
	num := field.SubMod(q.y, p.y, c.P)
	den := field.SubMod(q.x, p.x, c.P)
	lambda, err := field.DivMod(num, den, c.P)
	if err != nil {
		// den != 0 is guaranteed by the x-equality check above.
		panic(err)
	}
	return affineFromSlope(c, p, q, lambda)
}

// Double returns p+p on the curve described by c.
func Double(c CurveParams, p Point) Point {
	if p.inf {
		return Infinity
	}
	if p.y.IsZero() {
		// vertical tangent: 2P = Infinity.
		return Infinity
	}
	// lambda = (3x^2 + a) / (2y) mod p
	three := field.FromUint64(3)
	two := field.FromUint64(2)
	num := field.AddMod(field.MulMod(three, field.MulMod(p.x, p.x, c.P), c.P), c.A, c.P)
	den := field.MulMod(two, p.y, c.P)
	lambda, err := field.DivMod(num, den, c.P)
	if err != nil {
		panic(err)
	}
	return affineFromSlope(c, p, p, lambda)
}

// affineFromSlope finishes an add/double given the already-computed slope.
func affineFromSlope(c CurveParams, p, q Point, lambda field.Elem) Point {
	xR := field.SubMod(field.SubMod(field.MulMod(lambda, lambda, c.P), p.x, c.P), q.x, c.P)
	yR := field.SubMod(field.MulMod(lambda, field.SubMod(p.x, xR, c.P), c.P), p.y, c.P)
	return NewAffine(xR, yR)
}

// ScalarMult computes k*P via the left-to-right double-and-add ladder over
// the bits of k from MSB to LSB. k=0 returns Infinity; k is accepted
// unreduced, the caller is responsible for reducing it mod n where the
// algorithm requires that.
func ScalarMult(c CurveParams, p Point, k field.Elem) Point {
	r := Infinity
	bits := k.BitLen()
	for i := bits - 1; i >= 0; i-- {
		r = Double(c, r)
		if k.Bit(uint(i)) == 1 {
			r = Add(c, r, p)
		}
	}
	return r
}

// ScalarBaseMult computes k*G for the secp256k1 generator.
func ScalarBaseMult(k field.Elem) Point {
	gen := Secp256k1()
	return ScalarMult(Params(), gen.G, k)
}

// SolveY returns the positive square root of x^3+a*x+b (mod p), i.e. one of
// the two y-coordinates for x on the curve. Valid because p = 3 mod 4 for
// secp256k1, so the square root is y = (y^2)^((p+1)/4) mod p.
func SolveY(c CurveParams, x field.Elem) (field.Elem, error) {
	x3 := field.MulMod(field.MulMod(x, x, c.P), x, c.P)
	ax := field.MulMod(c.A, x, c.P)
	y2 := field.AddMod(field.AddMod(x3, ax, c.P), c.B, c.P)

	// secp256k1's p satisfies p = 3 mod 4, so (p+1)/4 is an exact integer
	// and y = (y^2)^((p+1)/4) mod p recovers a square root directly. p+1
	// never overflows 256 bits (p is below 2^256 - 1), so this is
	// plain unsigned add-then-shift, not modular arithmetic.
	exp := field.Rsh(field.AddRaw(c.P, field.One), 2)
	y := field.ExpMod(y2, exp, c.P)

	check := field.MulMod(y, y, c.P)
	if !field.Equal(check, y2) {
		return field.Elem{}, errs.New(errs.ErrNotOnCurve, "x has no square root mod p")
	}
	return y, nil
}

// Bytes serialises p as a SEC1 octet string: a single 0x00 byte for
// Infinity, 0x04 || x || y (65 bytes) uncompressed, or 0x02/0x03 || x
// (33 bytes) compressed with the prefix carrying the parity of y.
func (p Point) Bytes(compressed bool) []byte {
	if p.inf {
		return []byte{0x00}
	}
	x := p.x.ToBytesBE()
	if !compressed {
		y := p.y.ToBytesBE()
		out := make([]byte, 0, 65)
		out = append(out, 0x04)
		out = append(out, x[:]...)
		out = append(out, y[:]...)
		return out
	}
	prefix := byte(0x02)
	if p.y.Bit(0) == 1 {
		prefix = 0x03
	}
	out := make([]byte, 0, 33)
	out = append(out, prefix)
	out = append(out, x[:]...)
	return out
}

// PointFromBytes parses a SEC1 octet string (as produced by Bytes) back
// into a Point, recovering the y-coordinate from its parity bit for the
// compressed encoding.
func PointFromBytes(c CurveParams, b []byte) (Point, error) {
	if len(b) == 0 {
		return Point{}, errs.New(errs.ErrInvalidEncoding, "empty point encoding")
	}
	switch b[0] {
	case 0x00:
		return Infinity, nil
	case 0x04:
		if len(b) != 65 {
			return Point{}, errs.New(errs.ErrInvalidEncoding, "uncompressed point: want 65 bytes, got %d", len(b))
		}
		x, err := field.FromBytes(b[1:33])
		if err != nil {
			return Point{}, err
		}
		y, err := field.FromBytes(b[33:65])
		if err != nil {
			return Point{}, err
		}
		pt := NewAffine(x, y)
		if !pt.IsOnCurve(c) {
			return Point{}, errs.New(errs.ErrNotOnCurve, "decoded point fails curve equation")
		}
		return pt, nil
	case 0x02, 0x03:
		if len(b) != 33 {
			return Point{}, errs.New(errs.ErrInvalidEncoding, "compressed point: want 33 bytes, got %d", len(b))
		}
		x, err := field.FromBytes(b[1:33])
		if err != nil {
			return Point{}, err
		}
		y, err := SolveY(c, x)
		if err != nil {
			return Point{}, err
		}
		wantOdd := b[0] == 0x03
		if (y.Bit(0) == 1) != wantOdd {
			y = field.SubMod(c.P, y, c.P)
		}
		return NewAffine(x, y), nil
	default:
		return Point{}, errs.New(errs.ErrInvalidEncoding, "unrecognized point prefix 0x%02x", b[0])
	}
}
