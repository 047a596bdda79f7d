package script

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present Bernd Fix
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

import (
	"bytes"

	"github.com/bfix/cryptos/errs"
	"github.com/bfix/cryptos/hash"
	"github.com/bfix/cryptos/keys"
	"github.com/bfix/cryptos/sig"
)

// SighashAll is the only sighash type this evaluator accepts: the
// trailing signature byte must always indicate SIGHASH_ALL.
const SighashAll = 0x01

// EvaluateP2PKH runs a standard P2PKH script: scriptSig (push<sig>
// push<pubkey>) concatenated with scriptPubKey (OP_DUP OP_HASH160
// push<pubkey_hash> OP_EQUALVERIFY OP_CHECKSIG), against a digest the
// caller has already computed over the (out-of-scope) transaction
// serialisation. It reports true iff:
//
//   - the combined script parses to exactly the seven expected statements
//     in the expected order,
//   - HASH160(pubkey) equals the pushed pubkey_hash,
//   - the DER signature (with its trailing sighash byte stripped, which
//     must be SighashAll) verifies against pubkey and sigHash.
func EvaluateP2PKH(scriptSig, scriptPubKey []byte, sigHash [32]byte) (bool, error) {
	combined := append(append([]byte(nil), scriptSig...), scriptPubKey...)
	scr, err := ParseBin(combined)
	if err != nil {
		return false, err
	}
	if len(scr.Stmts) != 7 {
		return false, errs.New(errs.ErrInvalidEncoding, "P2PKH script: want 7 statements, got %d", len(scr.Stmts))
	}

	sigPush, pubkeyPush := scr.Stmts[0], scr.Stmts[1]
	opDup, opHash160 := scr.Stmts[2], scr.Stmts[3]
	hashPush := scr.Stmts[4]
	opEqualVerify, opCheckSig := scr.Stmts[5], scr.Stmts[6]

	if sigPush.Data == nil || pubkeyPush.Data == nil || hashPush.Data == nil {
		return false, errs.New(errs.ErrInvalidEncoding, "P2PKH script: expected data pushes at positions 0, 1 and 4")
	}
	if opDup.Opcode != OpDUP || opHash160.Opcode != OpHASH160 ||
		opEqualVerify.Opcode != OpEQUALVERIFY || opCheckSig.Opcode != OpCHECKSIG {
		return false, errs.New(errs.ErrInvalidEncoding, "P2PKH script: opcode sequence does not match OP_DUP OP_HASH160 ... OP_EQUALVERIFY OP_CHECKSIG")
	}

	st := NewStack()
	st.Push(sigPush.Data)
	st.Push(pubkeyPush.Data)

	// OP_DUP
	top, err := st.Peek()
	if err != nil {
		return false, err
	}
	st.Push(top)

	// OP_HASH160
	pubkeyBytes, err := st.Pop()
	if err != nil {
		return false, err
	}
	st.Push(hash.Hash160(pubkeyBytes))

	// push <pubkey_hash>
	st.Push(hashPush.Data)

	// OP_EQUALVERIFY
	a, err := st.Pop()
	if err != nil {
		return false, err
	}
	b, err := st.Pop()
	if err != nil {
		return false, err
	}
	if !bytes.Equal(a, b) {
		return false, nil
	}

	// OP_CHECKSIG
	pubkey, err := st.Pop()
	if err != nil {
		return false, err
	}
	sigBytes, err := st.Pop()
	if err != nil {
		return false, err
	}
	return checkSig(pubkey, sigBytes, sigHash)
}

// checkSig decodes a DER-with-trailing-sighash-byte signature and a SEC1
// public key, then verifies the signature over sigHash. The caller
// supplies the already-hashed digest; transaction serialisation and
// re-hashing happen outside this package.
func checkSig(pubkeyBytes, sigBytes []byte, sigHash [32]byte) (bool, error) {
	if len(sigBytes) == 0 {
		return false, errs.New(errs.ErrInvalidEncoding, "P2PKH script: empty signature")
	}
	hashType := sigBytes[len(sigBytes)-1]
	if hashType != SighashAll {
		return false, errs.New(errs.ErrInvalidEncoding, "P2PKH script: unsupported sighash type 0x%02x", hashType)
	}
	der := sigBytes[:len(sigBytes)-1]

	pub, err := keys.PublicKeyFromBytes(pubkeyBytes)
	if err != nil {
		return false, errs.New(errs.ErrInvalidEncoding, "P2PKH script: invalid pubkey: %v", err)
	}
	s, err := sig.SignatureFromDER(der)
	if err != nil {
		return false, errs.New(errs.ErrInvalidEncoding, "P2PKH script: invalid DER signature: %v", err)
	}
	return sig.Verify(pub, sigHash[:], s), nil
}
