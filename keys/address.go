/*
 * Bitcoin P2PKH addresses.
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
	"github.com/bfix/cryptos/errs"
	"github.com/bfix/cryptos/hash"
)

// Network selects the version byte used when deriving a P2PKH address.
type Network byte

const (
	// Mainnet is Bitcoin's production network (version byte 0x00).
	Mainnet Network = 0x00
	// Testnet is Bitcoin's test network (version byte 0x6f).
	Testnet Network = 0x6f
)

// Address computes the Base58Check P2PKH address for a public key on the
// given network: base58check(version || HASH160(pubkey)). Any network
// other than Mainnet or Testnet fails with errs.ErrInvalidNetwork.
func Address(key PublicKey, net Network) (string, error) {
	if net != Mainnet && net != Testnet {
		return "", errs.New(errs.ErrInvalidNetwork, "unrecognized network selector 0x%02x", byte(net))
	}
	kh := hash.Hash160(key.Bytes())
	payload := append([]byte{byte(net)}, kh...)
	return Base58CheckEncode(payload), nil
}

// DecodeAddress recovers the network and the HASH160 pubkey digest from a
// Base58Check P2PKH address, verifying the checksum and payload length.
func DecodeAddress(addr string) (Network, []byte, error) {
	payload, err := Base58CheckDecode(addr)
	if err != nil {
		return 0, nil, err
	}
	if len(payload) != 21 {
		return 0, nil, errs.New(errs.ErrInvalidEncoding, "address payload: want 21 bytes, got %d", len(payload))
	}
	net := Network(payload[0])
	if net != Mainnet && net != Testnet {
		return 0, nil, errs.New(errs.ErrInvalidNetwork, "unrecognized version byte 0x%02x", payload[0])
	}
	return net, payload[1:], nil
}
