/*
 * Base58Check encoding for Bitcoin addresses and keys.
 *
 * (c) 2011-present Bernd Fix   >Y<
 *
 * This program is free software: you can redistribute it and/or modify it
 * under the terms of the GNU Affero General Public License as published
 * by the Free Software Foundation, either version 3 of the License,
 * or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful, but
 * WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package keys implements Bitcoin secret/public key pairs and the
// Base58Check address encoding built on top of them.
package keys

import (
	"bytes"

	"github.com/bfix/cryptos/errs"
	"github.com/bfix/cryptos/hash"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// base58Encode converts a byte slice to its base58 string representation,
// preserving leading zero bytes as leading '1' characters. Division is
// done directly on the byte buffer (repeated divide-by-58), the same
// technique as long division by hand -- no big-integer type needed for
// an operation this small.
func base58Encode(in []byte) string {
	buf := append([]byte(nil), in...)

	var out []byte
	for !allZero(buf) {
		var rem int
		for i := 0; i < len(buf); i++ {
			acc := rem*256 + int(buf[i])
			buf[i] = byte(acc / 58)
			rem = acc % 58
		}
		out = append(out, base58Alphabet[rem])
	}
	for _, b := range in {
		if b != 0 {
			break
		}
		out = append(out, base58Alphabet[0])
	}
	return string(reverseBytes(out))
}

// base58Decode reverses base58Encode, failing with errs.ErrInvalidEncoding
// on any character outside the alphabet.
func base58Decode(s string) ([]byte, error) {
	var out []byte
	for _, c := range []byte(s) {
		pos := indexByte(c)
		if pos < 0 {
			return nil, errs.New(errs.ErrInvalidEncoding, "base58 char %q", c)
		}
		carry := pos
		for i := len(out) - 1; i >= 0; i-- {
			acc := int(out[i])*58 + carry
			out[i] = byte(acc & 0xff)
			carry = acc >> 8
		}
		for carry > 0 {
			out = append([]byte{byte(carry & 0xff)}, out...)
			carry >>= 8
		}
	}
	var zeros []byte
	for _, c := range []byte(s) {
		if c != base58Alphabet[0] {
			break
		}
		zeros = append(zeros, 0)
	}
	return append(zeros, out...), nil
}

func indexByte(c byte) int {
	return bytes.IndexByte([]byte(base58Alphabet), c)
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func reverseBytes(in []byte) []byte {
	n := len(in)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = in[i]
	}
	return out
}

// Base58CheckEncode appends a 4-byte double-SHA-256 checksum to payload
// and encodes the result as base58.
func Base58CheckEncode(payload []byte) string {
	cs := hash.Hash256(payload)
	full := append(append([]byte(nil), payload...), cs[:4]...)
	return base58Encode(full)
}

// Base58CheckDecode decodes a base58check string, verifying the trailing
// 4-byte checksum, and returns the payload with the checksum stripped.
func Base58CheckDecode(s string) ([]byte, error) {
	full, err := base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(full) < 4 {
		return nil, errs.New(errs.ErrInvalidEncoding, "base58check string too short")
	}
	payload, cs := full[:len(full)-4], full[len(full)-4:]
	want := hash.Hash256(payload)
	if !bytes.Equal(cs, want[:4]) {
		return nil, errs.New(errs.ErrBadChecksum, "base58check checksum mismatch")
	}
	return payload, nil
}
