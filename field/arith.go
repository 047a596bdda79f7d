package field

import "math/bits"

// add4 adds two 4-limb values, returning the sum and the carry out of the
// top limb (0 or 1).
func add4(a, b [4]uint64) (sum [4]uint64, carry uint64) {
	var c uint64
	for i := 0; i < 4; i++ {
		sum[i], c = bits.Add64(a[i], b[i], c)
		carry = c
	}
	return
}

// sub4 subtracts b from a, returning the difference and the borrow out of
// the top limb (0 or 1, i.e. whether a < b).
func sub4(a, b [4]uint64) (diff [4]uint64, borrow uint64) {
	var br uint64
	for i := 0; i < 4; i++ {
		diff[i], br = bits.Sub64(a[i], b[i], br)
		borrow = br
	}
	return
}

// mul4 multiplies two 4-limb values and returns the 8-limb product
// (little-endian), computed by schoolbook long multiplication.
func mul4(a, b [4]uint64) [8]uint64 {
	var prod [8]uint64
	for i := 0; i < 4; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var c uint64
			lo, c = bits.Add64(lo, prod[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			prod[i+j] = lo
			carry = hi
		}
		prod[i+4] += carry
	}
	return prod
}

// cmp4 compares two 4-limb values.
func cmp4(a, b [4]uint64) int {
	for i := 3; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// bit4 returns bit i (0 = least significant) of a 4-limb value.
func bit4(a [4]uint64, i uint) uint64 {
	return (a[i/64] >> (i % 64)) & 1
}

// setBit4 sets bit i of a 4-limb value in place.
func setBit4(a *[4]uint64, i uint) {
	a[i/64] |= uint64(1) << (i % 64)
}

// quoRem256 performs plain (non-modular) unsigned 256-by-256-bit division
// via the standard bit-serial restoring-division algorithm: shift the next
// dividend bit into the remainder, then subtract the divisor whenever the
// (possibly 257-bit, tracked via the shift-out carry) remainder is large
// enough to allow it. Used for integer ratios like proof-of-work
// difficulty, never for field arithmetic (which stays in MulMod/DivMod).
func quoRem256(a, b [4]uint64) (quo, rem [4]uint64) {
	for i := 255; i >= 0; i-- {
		var carry uint64
		for limb := 0; limb < 4; limb++ {
			next := rem[limb] >> 63
			rem[limb] = (rem[limb] << 1) | carry
			carry = next
		}
		if bit4(a, uint(i)) == 1 {
			rem[0] |= 1
		}
		if carry == 1 || cmp4(rem, b) >= 0 {
			rem, _ = sub4(rem, b)
			setBit4(&quo, uint(i))
		}
	}
	return
}

// cmp8 compares two 8-limb values.
func cmp8(a, b [8]uint64) int {
	for i := 7; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// sub8 subtracts b from a assuming a >= b.
func sub8(a, b [8]uint64) [8]uint64 {
	var diff [8]uint64
	var borrow uint64
	for i := 0; i < 8; i++ {
		diff[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return diff
}

// shr8by1 shifts an 8-limb value right by one bit (logical).
func shr8by1(a [8]uint64) [8]uint64 {
	var out [8]uint64
	var carry uint64
	for i := 7; i >= 0; i-- {
		out[i] = (a[i] >> 1) | (carry << 63)
		carry = a[i] & 1
	}
	return out
}

// reduce512 reduces a 512-bit value (given as an 8-limb product) modulo the
// 256-bit prime p, using word-aligned binary long division: p is shifted
// left by exactly 256 bits (four whole limbs) so the first alignment step
// needs no bit-level shift, then shifted right one bit at a time while the
// remainder is conditionally reduced: a naive long-division reduction,
// simpler than Barrett reduction at the cost of more iterations.
func reduce512(prod [8]uint64, p [4]uint64) [4]uint64 {
	var divisor [8]uint64
	divisor[4], divisor[5], divisor[6], divisor[7] = p[0], p[1], p[2], p[3]

	rem := prod
	for i := 0; i <= 256; i++ {
		if cmp8(rem, divisor) >= 0 {
			rem = sub8(rem, divisor)
		}
		divisor = shr8by1(divisor)
	}
	return [4]uint64{rem[0], rem[1], rem[2], rem[3]}
}
