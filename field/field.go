/*
 * 256-bit unsigned modular arithmetic.
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

// Package field implements a 256-bit unsigned integer value type with
// modular arithmetic over an externally supplied prime. Elem carries no
// prime of its own -- every operation takes the modulus as an explicit
// argument, the same way the curve package's pAdd/pMul/pSub helpers did
// in the original gospel/bitcoin draft, except here the backing store is
// a fixed 4-limb array instead of a heap-allocated math/big.Int.
package field

import (
	"github.com/bfix/cryptos/errs"
)

// Elem is a 256-bit unsigned integer, stored as four 64-bit limbs in
// little-endian order (d[0] holds bits 0..63). It is a plain value type:
// freely copied, no shared mutable state, no interior pointers.
type Elem struct {
	d [4]uint64
}

// Zero is the additive identity.
var Zero = Elem{}

// One is the multiplicative identity.
var One = Elem{d: [4]uint64{1, 0, 0, 0}}

// FromUint64 builds an Elem from a native 64-bit value.
func FromUint64(v uint64) Elem {
	return Elem{d: [4]uint64{v, 0, 0, 0}}
}

// FromBytes decodes a big-endian byte slice of at most 32 bytes,
// left-padding as needed. Longer inputs fail with errs.ErrOverflow.
func FromBytes(b []byte) (Elem, error) {
	if len(b) > 32 {
		return Elem{}, errs.New(errs.ErrOverflow, "field element: %d bytes", len(b))
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	var e Elem
	for limb := 0; limb < 4; limb++ {
		start := (3 - limb) * 8
		var v uint64
		for i := 0; i < 8; i++ {
			v = v<<8 | uint64(buf[start+i])
		}
		e.d[limb] = v
	}
	return e, nil
}

// ToBytesBE serialises the element as a left-padded 32-byte big-endian array.
func (e Elem) ToBytesBE() [32]byte {
	var out [32]byte
	for limb := 0; limb < 4; limb++ {
		start := (3 - limb) * 8
		v := e.d[limb]
		for i := 7; i >= 0; i-- {
			out[start+i] = byte(v)
			v >>= 8
		}
	}
	return out
}

// Bytes returns the minimal big-endian encoding, stripped of leading
// zero bytes but never empty (the DER integer convention: never a
// zero-length representation).
func (e Elem) Bytes() []byte {
	full := e.ToBytesBE()
	i := 0
	for i < 31 && full[i] == 0 {
		i++
	}
	out := make([]byte, 32-i)
	copy(out, full[i:])
	return out
}

// IsZero reports whether e is the zero element.
func (e Elem) IsZero() bool {
	return e.d[0] == 0 && e.d[1] == 0 && e.d[2] == 0 && e.d[3] == 0
}

// Equal reports whether a and b hold the same value.
func Equal(a, b Elem) bool {
	return a.d == b.d
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func Cmp(a, b Elem) int {
	for i := 3; i >= 0; i-- {
		if a.d[i] != b.d[i] {
			if a.d[i] < b.d[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// AddRaw adds a and b as plain 256-bit unsigned integers, with no modular
// reduction. Used for scratch computations on exponents (e.g. deriving
// (p+1)/4 for a square-root exponent) where the operands are not residues
// of some modulus and wrapping is the caller's concern, not this type's.
func AddRaw(a, b Elem) Elem {
	sum, _ := add4(a.d, b.d)
	return Elem{d: sum}
}

// Rsh shifts e right by n bits (0 <= n <= 255), logically (no sign).
func Rsh(e Elem, n uint) Elem {
	if n == 0 {
		return e
	}
	if n >= 256 {
		return Zero
	}
	limbShift := n / 64
	bitShift := n % 64
	var out [4]uint64
	for i := 0; i < 4; i++ {
		srcIdx := i + int(limbShift)
		if srcIdx >= 4 {
			continue
		}
		v := e.d[srcIdx] >> bitShift
		if bitShift != 0 && srcIdx+1 < 4 {
			v |= e.d[srcIdx+1] << (64 - bitShift)
		}
		out[i] = v
	}
	return Elem{d: out}
}

// Lsh shifts e left by n bits (0 <= n <= 255), discarding bits that fall
// off the top of the 256-bit range -- there is no modulus to reduce
// against here, so overflow is the caller's concern (e.g. Target()
// callers keep n small enough that the compact "bits" encoding never
// overflows 256 bits for any real Bitcoin header).
func Lsh(e Elem, n uint) Elem {
	if n == 0 {
		return e
	}
	if n >= 256 {
		return Zero
	}
	limbShift := n / 64
	bitShift := n % 64
	var out [4]uint64
	for i := 3; i >= 0; i-- {
		srcIdx := i - int(limbShift)
		if srcIdx < 0 {
			continue
		}
		v := e.d[srcIdx] << bitShift
		if bitShift != 0 && srcIdx-1 >= 0 {
			v |= e.d[srcIdx-1] >> (64 - bitShift)
		}
		out[i] = v
	}
	return Elem{d: out}
}

// Bit returns bit i (0 = least significant) of e, or 0 if i >= 256.
func (e Elem) Bit(i uint) uint {
	if i >= 256 {
		return 0
	}
	return uint((e.d[i/64] >> (i % 64)) & 1)
}

// BitLen returns the index of the highest set bit plus one (0 for zero).
func (e Elem) BitLen() int {
	for limb := 3; limb >= 0; limb-- {
		if e.d[limb] != 0 {
			return limb*64 + bitLen64(e.d[limb])
		}
	}
	return 0
}

func bitLen64(v uint64) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}
	return n
}
