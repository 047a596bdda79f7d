/*
 * ECDSA sign/verify over secp256k1.
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

// Package sig implements ECDSA and (educational) Schnorr signatures on
// secp256k1, with DER encoding matching Bitcoin's script signature format.
package sig

import (
	"crypto/rand"

	"github.com/bfix/cryptos/ecc"
	"github.com/bfix/cryptos/errs"
	"github.com/bfix/cryptos/field"
	"github.com/bfix/cryptos/keys"
)

// Signature is a Bitcoin-style ECDSA signature pair; Schnorr signatures
// use the separate SchnorrSignature type.
type Signature struct {
	R, S field.Elem
}

// SignatureFromBytes parses the fixed 64-byte r||s compact encoding,
// rejecting any r or s outside [1, n).
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != 64 {
		return Signature{}, errs.New(errs.ErrInvalidEncoding, "compact signature: want 64 bytes, got %d", len(b))
	}
	n := ecc.Secp256k1().N
	r, err := field.FromBytes(b[:32])
	if err != nil {
		return Signature{}, err
	}
	s, err := field.FromBytes(b[32:])
	if err != nil {
		return Signature{}, err
	}
	if r.IsZero() || field.Cmp(r, n) >= 0 || s.IsZero() || field.Cmp(s, n) >= 0 {
		return Signature{}, errs.New(errs.ErrOutOfRange, "r or s not in [1, n)")
	}
	return Signature{R: r, S: s}, nil
}

// Bytes returns the fixed 64-byte r||s compact encoding.
func (sg Signature) Bytes() []byte {
	r := sg.R.ToBytesBE()
	s := sg.S.ToBytesBE()
	out := make([]byte, 0, 64)
	out = append(out, r[:]...)
	out = append(out, s[:]...)
	return out
}

// hashToScalar converts a digest to an integer mod n following SEC1: if
// the digest is longer than n's bit length in bytes, only the leftmost
// bits are used.
func hashToScalar(digest []byte, n field.Elem) field.Elem {
	maxBytes := (n.BitLen() + 7) / 8
	if len(digest) > maxBytes {
		digest = digest[:maxBytes]
	}
	e, err := field.FromBytes(digest)
	if err != nil {
		// a 32-byte SHA-256 digest always fits; this path is unreachable
		// for any caller passing a real hash output.
		panic(err)
	}
	excessBits := maxBytes*8 - n.BitLen()
	if excessBits > 0 {
		e = field.Rsh(e, uint(excessBits))
	}
	return reduceToN(e, n)
}

// Sign produces an ECDSA signature over digest using priv, following
// [SEC1] section 4.1.3. The nonce k is drawn fresh from crypto/rand for
// every attempt; k=0, r=0 and s=0 draws are rejected by looping, not
// reported as errors. The returned s is always normalised to the low-s
// form (s <= n/2), matching Bitcoin's canonical signature convention.
func Sign(priv keys.PrivateKey, digest []byte) (Signature, error) {
	c := ecc.Params()
	n := ecc.Secp256k1().N
	e := hashToScalar(digest, n)

	for {
		var buf [32]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return Signature{}, err
		}
		k, err := field.FromBytes(buf[:])
		if err != nil {
			return Signature{}, err
		}
		if k.IsZero() || field.Cmp(k, n) >= 0 {
			continue
		}
		kInv, err := field.InvMod(k, n)
		if err != nil {
			continue
		}
		R := ecc.ScalarMult(c, ecc.Secp256k1().G, k)
		if R.IsInfinity() {
			continue
		}
		r := reduceToN(R.X(), n)
		if r.IsZero() {
			continue
		}
		rd := field.MulMod(r, priv.D, n)
		s := field.MulMod(field.AddMod(rd, e, n), kInv, n)
		if s.IsZero() {
			continue
		}
		s = canonicalLowS(s, n)
		return Signature{R: r, S: s}, nil
	}
}

// reduceToN reduces a field-of-p element into the field of n by plain
// subtraction; valid because p and n are both ~256-bit and p > n for
// secp256k1, so at most one subtraction is ever needed. Passing x and n
// themselves as the modulus argument to SubMod is safe here: the branch
// that would use it only fires on a borrow, which the Cmp guard rules out.
func reduceToN(x field.Elem, n field.Elem) field.Elem {
	if field.Cmp(x, n) >= 0 {
		return field.SubMod(x, n, n)
	}
	return x
}

// canonicalLowS flips s to n-s when s > n/2, the BIP146 low-s rule.
func canonicalLowS(s, n field.Elem) field.Elem {
	half := field.Rsh(n, 1)
	if field.Cmp(s, half) > 0 {
		return field.SubMod(n, s, n)
	}
	return s
}

// Verify checks an ECDSA signature over digest against pub, following
// [SEC1] section 4.1.4. Both canonical (s <= n/2) and non-canonical
// signatures are accepted here; Sign only ever emits the canonical form.
func Verify(pub keys.PublicKey, digest []byte, sg Signature) bool {
	c := ecc.Params()
	n := ecc.Secp256k1().N
	if sg.R.IsZero() || field.Cmp(sg.R, n) >= 0 || sg.S.IsZero() || field.Cmp(sg.S, n) >= 0 {
		return false
	}
	e := hashToScalar(digest, n)
	w, err := field.InvMod(sg.S, n)
	if err != nil {
		return false
	}
	u1 := field.MulMod(e, w, n)
	u2 := field.MulMod(sg.R, w, n)

	p1 := ecc.ScalarMult(c, ecc.Secp256k1().G, u1)
	p2 := ecc.ScalarMult(c, pub.Q, u2)
	sum := ecc.Add(c, p1, p2)
	if sum.IsInfinity() {
		return false
	}
	r := reduceToN(sum.X(), n)
	return field.Equal(r, sg.R)
}
