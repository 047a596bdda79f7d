/*
 * Bitcoin secret/public key pairs.
 *
 * (c) 2011-2020 Bernd Fix   >Y<
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

package keys

import (
	"crypto/rand"

	"github.com/bfix/cryptos/ecc"
	"github.com/bfix/cryptos/errs"
	"github.com/bfix/cryptos/field"
)

// PublicKey is a Point on secp256k1: Q = d*G, where d is the private
// scalar and G the curve's base point.
type PublicKey struct {
	Q            ecc.Point
	IsCompressed bool
}

// Bytes returns the SEC1 encoding of the public key.
func (k PublicKey) Bytes() []byte {
	return k.Q.Bytes(k.IsCompressed)
}

// PublicKeyFromBytes parses a SEC1-encoded public key (compressed or
// uncompressed), validating that the decoded point lies on the curve.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	pnt, err := ecc.PointFromBytes(ecc.Params(), b)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{Q: pnt, IsCompressed: len(b) == 33}, nil
}

// PrivateKey is a secret scalar D together with the public key it derives.
type PrivateKey struct {
	PublicKey
	D field.Elem
}

// Bytes returns the 32-byte big-endian secret scalar, with a trailing
// 0x01 byte appended when the key is flagged as compressed (the same
// convention WIF-encoded Bitcoin private keys use).
func (k PrivateKey) Bytes() []byte {
	out := k.D.ToBytesBE()
	b := append([]byte(nil), out[:]...)
	if k.IsCompressed {
		b = append(b, 1)
	}
	return b
}

// PrivateKeyFromBytes reconstructs a private key from its 32- or 33-byte
// representation (see Bytes), deriving the matching public key.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var (
		raw   []byte
		compr bool
	)
	switch len(b) {
	case 32:
		raw, compr = b, false
	case 33:
		if b[32] != 1 {
			return PrivateKey{}, errs.New(errs.ErrInvalidEncoding, "private key compression flag must be 0x01")
		}
		raw, compr = b[:32], true
	default:
		return PrivateKey{}, errs.New(errs.ErrInvalidEncoding, "private key: want 32 or 33 bytes, got %d", len(b))
	}
	d, err := field.FromBytes(raw)
	if err != nil {
		return PrivateKey{}, err
	}
	return newKeyPair(d, compr), nil
}

func newKeyPair(d field.Elem, compr bool) PrivateKey {
	q := ecc.ScalarBaseMult(d)
	return PrivateKey{
		PublicKey: PublicKey{Q: q, IsCompressed: compr},
		D:         d,
	}
}

// Generate creates a new random key pair, drawing the secret scalar from
// crypto/rand and rejecting draws outside [1, n) (the curve order) or
// that happen to land on the identity -- both probability-zero events in
// practice, but checked rather than assumed.
func Generate(compressed bool) (PrivateKey, error) {
	n := ecc.Secp256k1().N
	for {
		var buf [32]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return PrivateKey{}, err
		}
		d, err := field.FromBytes(buf[:])
		if err != nil {
			return PrivateKey{}, err
		}
		if d.IsZero() || field.Cmp(d, n) >= 0 {
			continue
		}
		key := newKeyPair(d, compressed)
		if key.Q.IsInfinity() {
			continue
		}
		return key, nil
	}
}
