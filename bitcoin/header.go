/*
 * Bitcoin block header parsing and proof-of-work validation.
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

// Package bitcoin implements two boundary consumers of the crypto core:
// block header proof-of-work validation (this file) and P2PKH script
// evaluation (package bitcoin/script). Both are thin layers over the
// field/ecc/hash/keys/sig core; neither attempts full transaction parsing
// or network fetching.
package bitcoin

import (
	"encoding/binary"

	"github.com/bfix/cryptos/errs"
	"github.com/bfix/cryptos/field"
	"github.com/bfix/cryptos/hash"
)

// HeaderSize is the fixed wire size of a Bitcoin block header.
const HeaderSize = 80

// Header is an 80-byte Bitcoin block header. PrevBlock and MerkleRoot are
// stored in the order they naturally compare and print (big-endian, the
// way block explorers render them); on the wire they are byte-reversed,
// matching Bitcoin's convention of serialising hashes in little-endian.
type Header struct {
	Version    uint32
	PrevBlock  [32]byte
	MerkleRoot [32]byte
	Timestamp  uint32
	Bits       [4]byte
	Nonce      uint32
}

func reverse32(b [32]byte) [32]byte {
	var out [32]byte
	for i := range b {
		out[i] = b[31-i]
	}
	return out
}

// ParseHeader decodes an 80-byte Bitcoin block header.
func ParseHeader(raw [HeaderSize]byte) (Header, error) {
	var h Header
	h.Version = binary.LittleEndian.Uint32(raw[0:4])
	var prev, merkle [32]byte
	copy(prev[:], raw[4:36])
	copy(merkle[:], raw[36:68])
	h.PrevBlock = reverse32(prev)
	h.MerkleRoot = reverse32(merkle)
	h.Timestamp = binary.LittleEndian.Uint32(raw[68:72])
	copy(h.Bits[:], raw[72:76])
	h.Nonce = binary.LittleEndian.Uint32(raw[76:80])
	return h, nil
}

// ParseHeaderBytes is ParseHeader for a slice input, failing with
// errs.ErrInvalidEncoding if the length isn't exactly HeaderSize.
func ParseHeaderBytes(raw []byte) (Header, error) {
	if len(raw) != HeaderSize {
		return Header{}, errs.New(errs.ErrInvalidEncoding, "block header: want %d bytes, got %d", HeaderSize, len(raw))
	}
	var buf [HeaderSize]byte
	copy(buf[:], raw)
	return ParseHeader(buf)
}

// Bytes re-serialises h to its 80-byte wire form.
func (h Header) Bytes() [HeaderSize]byte {
	var out [HeaderSize]byte
	binary.LittleEndian.PutUint32(out[0:4], h.Version)
	prev := reverse32(h.PrevBlock)
	merkle := reverse32(h.MerkleRoot)
	copy(out[4:36], prev[:])
	copy(out[36:68], merkle[:])
	binary.LittleEndian.PutUint32(out[68:72], h.Timestamp)
	copy(out[72:76], h.Bits[:])
	binary.LittleEndian.PutUint32(out[76:80], h.Nonce)
	return out
}

// ID returns the header's double-SHA-256 block hash, byte-reversed to the
// big-endian order Bitcoin displays block IDs in.
func (h Header) ID() [32]byte {
	raw := h.Bytes()
	digest := hash.Hash256(raw[:])
	var id [32]byte
	copy(id[:], digest)
	return reverse32(id)
}

// bitsToTarget decodes a 4-byte compact "bits" representation into the
// full 256-bit proof-of-work target: coeff * 256^(exp-3), where coeff is
// the little-endian 24-bit value of bits[0:3] and exp = bits[3].
func bitsToTarget(bits [4]byte) field.Elem {
	exp := int(bits[3])
	coeff := field.FromUint64(uint64(bits[0]) | uint64(bits[1])<<8 | uint64(bits[2])<<16)
	if exp <= 3 {
		// shift right by 8*(3-exp); bitcoind never emits bits with exp<3
		// in practice, but the decode is well-defined either way.
		return field.Rsh(coeff, uint(8*(3-exp)))
	}
	return field.Lsh(coeff, uint(8*(exp-3)))
}

// genesisBits is the compact "bits" value of the mainnet genesis block,
// 0x1d00ffff, which also serves as the minimum-difficulty (easiest) target
// every other target is measured against.
var genesisBits = [4]byte{0xff, 0xff, 0x00, 0x1d}

// Target decodes h's "bits" field into the full 256-bit proof-of-work
// target.
func (h Header) Target() field.Elem {
	return bitsToTarget(h.Bits)
}

// Difficulty reports h's proof-of-work difficulty: the genesis block's
// target divided by h's own target. A larger value means more work was
// required to find a valid header than the easiest (genesis) difficulty.
func (h Header) Difficulty() field.Elem {
	return field.QuoRaw(bitsToTarget(genesisBits), h.Target())
}

// Valid reports whether h's proof-of-work is valid: its ID, read as a
// big-endian 256-bit integer, must be strictly less than its target.
func (h Header) Valid() bool {
	id := h.ID()
	idVal, err := field.FromBytes(id[:])
	if err != nil {
		return false
	}
	return field.Cmp(idVal, h.Target()) < 0
}
