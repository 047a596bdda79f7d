/*
 * Constants for elliptic curve 'Secp256k1'.
 *
 * (c) 2011-2012 Bernd Fix   >Y<
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

package ecc

import (
	"github.com/bfix/cryptos/field"
)

// CurveParams is an immutable bundle describing the short-Weierstrass curve
// y^2 = x^3 + a*x + b mod p.
type CurveParams struct {
	P field.Elem // order of underlying field F_p
	A field.Elem // curve parameter 'a'
	B field.Elem // curve parameter 'b' (=7 for secp256k1)
}

// Generator bundles the curve's base point and the prime order of the
// group it generates.
type Generator struct {
	G Point      // base point
	N field.Elem // order of G
}

func fromHex(s string) field.Elem {
	e, err := field.FromBytes(hexDecode(s))
	if err != nil {
		panic(err)
	}
	return e
}

func hexDecode(s string) []byte {
	b := make([]byte, len(s)/2)
	for i := range b {
		b[i] = byte(hexNibble(s[i*2])<<4 | hexNibble(s[i*2+1]))
	}
	return b
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	return 0
}

// secp256k1 curve constants, per SEC2/NIST:
//
//	p = 2^256 - 2^32 - 977
//	a = 0, b = 7
var (
	curveP = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	curveA = field.Zero
	curveB = field.FromUint64(7)
	curveGx = fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	curveGy = fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
	curveN  = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
)

// Params returns the secp256k1 curve parameters {p, a, b}.
func Params() CurveParams {
	return CurveParams{P: curveP, A: curveA, B: curveB}
}

// secp256k1 is the process-wide generator singleton {G, n}, initialised
// eagerly at program startup from the constants above. It is read-only
// from that point on and safe to share across goroutines without locking.
var secp256k1 = &Generator{
	G: Point{x: curveGx, y: curveGy, inf: false},
	N: curveN,
}

// Secp256k1 returns the process-wide secp256k1 generator singleton {G, n}.
func Secp256k1() *Generator {
	return secp256k1
}
