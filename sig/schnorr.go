/*
 * Educational (non-BIP340) Schnorr sign/verify over secp256k1.
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

package sig

import (
	"crypto/rand"

	"github.com/bfix/cryptos/ecc"
	"github.com/bfix/cryptos/field"
	"github.com/bfix/cryptos/hash"
	"github.com/bfix/cryptos/keys"
)

// SchnorrSignature is the (r,s) pair this package's educational Schnorr
// scheme produces. It is NOT BIP-340: there is no key-prefixing, no
// tagged hash, and no even-y normalisation of the nonce point, so
// signatures produced here do not interoperate with Bitcoin Taproot.
type SchnorrSignature struct {
	R, S field.Elem
}

// schnorrChallenge computes e = hash256(r_bytes_BE(32) || msg) mod n, the
// challenge shared by SchnorrSign and SchnorrVerify.
func schnorrChallenge(r field.Elem, msg []byte, n field.Elem) field.Elem {
	rb := r.ToBytesBE()
	buf := append(append([]byte(nil), rb[:]...), msg...)
	digest := hash.Hash256(buf)
	return hashToScalar(digest[:], n)
}

// SchnorrSign produces a signature over msg using priv: draw a fresh
// nonce k from [1,n), R := k*G, r := x(R), e := challenge(r, msg), s :=
// (k + e*sk) mod n. The nonce is resampled if it lands on the identity
// or yields r = 0, mirroring the rejection-sampling contract ECDSA's
// Sign uses for the same reason.
func SchnorrSign(priv keys.PrivateKey, msg []byte) (SchnorrSignature, error) {
	c := ecc.Params()
	n := ecc.Secp256k1().N

	for {
		var buf [32]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return SchnorrSignature{}, err
		}
		k, err := field.FromBytes(buf[:])
		if err != nil {
			return SchnorrSignature{}, err
		}
		if k.IsZero() || field.Cmp(k, n) >= 0 {
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
		e := schnorrChallenge(r, msg, n)
		s := field.AddMod(k, field.MulMod(e, priv.D, n), n)
		return SchnorrSignature{R: r, S: s}, nil
	}
}

// SchnorrVerify checks sg over msg against pub: recompute e := challenge(r,
// msg), then accept iff x(s*G - e*Q) = r and that point isn't the identity.
func SchnorrVerify(pub keys.PublicKey, msg []byte, sg SchnorrSignature) bool {
	c := ecc.Params()
	n := ecc.Secp256k1().N
	if sg.R.IsZero() || field.Cmp(sg.R, n) >= 0 || field.Cmp(sg.S, n) >= 0 {
		return false
	}
	e := schnorrChallenge(sg.R, msg, n)

	sG := ecc.ScalarMult(c, ecc.Secp256k1().G, sg.S)
	eQ := ecc.ScalarMult(c, pub.Q, e)
	negEQ := ecc.NewAffine(eQ.X(), field.SubMod(c.P, eQ.Y(), c.P))
	if eQ.IsInfinity() {
		negEQ = ecc.Infinity
	}
	diff := ecc.Add(c, sG, negEQ)
	if diff.IsInfinity() {
		return false
	}
	return field.Equal(reduceToN(diff.X(), n), sg.R)
}
