//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-2023 Bernd Fix  >Y<
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

// Package errs defines the error taxonomy shared by the field, ecc, keys,
// sig, bitcoin and bitcoin/script packages: a small set of sentinel errors
// wrapped with call-specific context.
package errs

import "fmt"

// Sentinel errors for the kinds of failure the core can produce. Callers
// match on these with errors.Is; the wrapping Error carries the context.
var (
	// ErrInvalidEncoding is returned when a byte sequence does not conform
	// to the SEC, DER or Base58Check grammar (wrong prefix, wrong length,
	// non-alphabet character).
	ErrInvalidEncoding = fmt.Errorf("invalid encoding")
	// ErrBadChecksum is returned when a Base58Check checksum does not match.
	ErrBadChecksum = fmt.Errorf("bad checksum")
	// ErrInvalidNetwork is returned for an unknown network selector.
	ErrInvalidNetwork = fmt.Errorf("invalid network")
	// ErrNotInvertible is returned when a modular inverse of zero is requested.
	ErrNotInvertible = fmt.Errorf("not invertible")
	// ErrNotOnCurve is returned when a decoded point fails the curve equation.
	ErrNotOnCurve = fmt.Errorf("point not on curve")
	// ErrOutOfRange is returned when a scalar violates a documented
	// precondition (secret key, r or s not in [1,n), etc.).
	ErrOutOfRange = fmt.Errorf("value out of range")
	// ErrOverflow is returned when a big-endian byte input exceeds 32 bytes.
	ErrOverflow = fmt.Errorf("overflow")
)

// Error wraps a sentinel error with call-specific context.
type Error struct {
	Err error  // base error (for errors.Is() and errors.As() calls)
	Ctx string // error context
}

// Unwrap returns the wrapped sentinel so errors.Is/As keep working.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error returns a human-readable error description.
func (e *Error) Error() string {
	if e.Ctx == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " [" + e.Ctx + "]"
}

// New creates a new Error instance wrapping a sentinel with context.
func New(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err: err,
		Ctx: fmt.Sprintf(format, args...),
	}
}
