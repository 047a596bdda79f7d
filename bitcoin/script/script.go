/*
 * Bitcoin script parsing, trimmed to the P2PKH opcode subset.
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

// Package script evaluates the standard Pay-to-Public-Key-Hash template:
// [sig, pubkey, OP_DUP, OP_HASH160, pubkey_hash, OP_EQUALVERIFY,
// OP_CHECKSIG]. General Script (OP_IF, arithmetic opcodes, multisig, …) is
// out of scope; only the four opcodes this template uses, plus push-data
// framing, are recognised.
package script

import "github.com/bfix/cryptos/errs"

// The opcodes a P2PKH script is built from. Any other opcode byte
// encountered during parsing is a parse error -- this package has no
// opcode table beyond these four and the push-data opcodes below.
const (
	OpDUP         = 0x76
	OpHASH160     = 0xA9
	OpEQUALVERIFY = 0x88
	OpCHECKSIG    = 0xAC

	// Push-data framing, needed to split data elements (signature,
	// pubkey, pubkey hash) out of a concatenated script byte string.
	opPUSHDATA1 = 0x4C
	opPUSHDATA2 = 0x4D
	opPUSHDATA4 = 0x4E
)

// Statement is a single parsed script element: either a data push (Data
// non-nil) or a bare opcode.
type Statement struct {
	Opcode byte
	Data   []byte
}

// Script is an ordered list of parsed statements.
type Script struct {
	Stmts []*Statement
}

// ParseBin dissects a binary script into its sequence of statements,
// recognising direct pushes (opcode 1-75), OP_PUSHDATA1/2/4, and the four
// named opcodes. Any other opcode byte is rejected with
// errs.ErrInvalidEncoding: nothing beyond P2PKH is in scope.
func ParseBin(code []byte) (*Script, error) {
	scr := &Script{}
	pos, length := 0, len(code)
	for pos < length {
		op := code[pos]
		switch {
		case op >= 1 && op <= 75:
			n := int(op)
			if pos+1+n > length {
				return nil, errs.New(errs.ErrInvalidEncoding, "script: push of %d bytes exceeds script length", n)
			}
			data := append([]byte(nil), code[pos+1:pos+1+n]...)
			scr.Stmts = append(scr.Stmts, &Statement{Opcode: op, Data: data})
			pos += 1 + n

		case op == opPUSHDATA1 || op == opPUSHDATA2 || op == opPUSHDATA4:
			lenBytes := map[byte]int{opPUSHDATA1: 1, opPUSHDATA2: 2, opPUSHDATA4: 4}[op]
			if pos+1+lenBytes > length {
				return nil, errs.New(errs.ErrInvalidEncoding, "script: truncated PUSHDATA length")
			}
			n := 0
			for i := 0; i < lenBytes; i++ {
				n |= int(code[pos+1+i]) << (8 * i)
			}
			start := pos + 1 + lenBytes
			if start+n > length {
				return nil, errs.New(errs.ErrInvalidEncoding, "script: PUSHDATA exceeds script length")
			}
			data := append([]byte{}, code[start:start+n]...)
			scr.Stmts = append(scr.Stmts, &Statement{Opcode: op, Data: data})
			pos = start + n

		case op == OpDUP || op == OpHASH160 || op == OpEQUALVERIFY || op == OpCHECKSIG:
			scr.Stmts = append(scr.Stmts, &Statement{Opcode: op})
			pos++

		default:
			return nil, errs.New(errs.ErrInvalidEncoding, "script: opcode 0x%02x is outside the supported P2PKH subset", op)
		}
	}
	return scr, nil
}
