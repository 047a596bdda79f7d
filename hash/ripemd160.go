package hash

// RIPEMD-160, implemented from its original specification (Dobbertin,
// Bosselaers, Preneel 1996): two parallel lines of five 16-step rounds
// over the same 512-bit block, combined into the running state at the
// end of each block.

var ripemdK = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var ripemdKp = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

// ripemdR and ripemdRp give the message-word index used at each of the 80
// steps of the left and right lines.
var ripemdR = [80]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var ripemdRp = [80]int{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// ripemdS and ripemdSp give the per-step rotation amounts for the two lines.
var ripemdS = [80]uint{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var ripemdSp = [80]uint{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

func rol32(n uint, x uint32) uint32 {
	return (x << n) | (x >> (32 - n))
}

// ripemdF is the round's nonlinear function, selected by the step's
// quintile (0..4) in the left line, and the mirrored quintile (4..0) in
// the right line.
func ripemdF(j int, x, y, z uint32) uint32 {
	switch j / 16 {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y &^ z)
	default:
		return x ^ (y | ^z)
	}
}

func ripemdFp(j int, x, y, z uint32) uint32 {
	return ripemdF(79-j, x, y, z)
}

// ripemdPad appends the RIPEMD-160 padding: 0x80, zero bytes up to 448
// mod 512 bits, then the 64-bit little-endian message bit length (unlike
// SHA-256's big-endian length field).
func ripemdPad(b []byte) []byte {
	bitLen := uint64(len(b)) * 8
	b = append(b, 0x80)
	for len(b)%64 != 56 {
		b = append(b, 0x00)
	}
	for i := 0; i < 8; i++ {
		b = append(b, byte(bitLen>>(uint(i)*8)))
	}
	return b
}

// ripemdTransform processes one 64-byte block, updating state in place.
func ripemdTransform(state *[5]uint32, block []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = uint32(block[4*i]) | uint32(block[4*i+1])<<8 |
			uint32(block[4*i+2])<<16 | uint32(block[4*i+3])<<24
	}

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]
	ap, bp, cp, dp, ep := state[0], state[1], state[2], state[3], state[4]

	for j := 0; j < 80; j++ {
		t := rol32(ripemdS[j], a+ripemdF(j, b, c, d)+x[ripemdR[j]]+ripemdK[j/16]) + e
		a, e, d, c, b = e, d, rol32(10, c), b, t

		tp := rol32(ripemdSp[j], ap+ripemdFp(j, bp, cp, dp)+x[ripemdRp[j]]+ripemdKp[j/16]) + ep
		ap, ep, dp, cp, bp = ep, dp, rol32(10, cp), bp, tp
	}

	t := state[1] + c + dp
	state[1] = state[2] + d + ep
	state[2] = state[3] + e + ap
	state[3] = state[4] + a + bp
	state[4] = state[0] + b + cp
	state[0] = t
}

// RipeMD160 computes RIPEMD-160(data).
func RipeMD160(data []byte) []byte {
	state := [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	msg := ripemdPad(append([]byte(nil), data...))
	for off := 0; off < len(msg); off += 64 {
		ripemdTransform(&state, msg[off:off+64])
	}
	out := make([]byte, 20)
	for i, v := range state {
		out[4*i] = byte(v)
		out[4*i+1] = byte(v >> 8)
		out[4*i+2] = byte(v >> 16)
		out[4*i+3] = byte(v >> 24)
	}
	return out
}

// Hash160 computes RIPEMD-160(SHA-256(data)), Bitcoin's address digest.
func Hash160(data []byte) []byte {
	return RipeMD160(Sha256(data))
}
