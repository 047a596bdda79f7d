package sig

import (
	"encoding/asn1"
	"math/big"

	"github.com/bfix/cryptos/errs"
	"github.com/bfix/cryptos/field"
)

// derSig mirrors the two-INTEGER ASN.1 SEQUENCE Bitcoin uses for script
// signatures; encoding/asn1 already produces the minimal-length DER
// integers the format requires, so no manual TLV writer is needed.
type derSig struct {
	R, S *big.Int
}

// DER returns the ASN.1 DER encoding of sg, as embedded in a Bitcoin
// script signature (with the trailing sighash-type byte appended by the
// caller, not by this function).
func (sg Signature) DER() ([]byte, error) {
	t := derSig{
		R: new(big.Int).SetBytes(sg.R.Bytes()),
		S: new(big.Int).SetBytes(sg.S.Bytes()),
	}
	return asn1.Marshal(t)
}

// SignatureFromDER parses a DER-encoded signature back into r and s,
// failing with errs.ErrInvalidEncoding on a malformed ASN.1 SEQUENCE or
// on trailing bytes after it (DER requires the encoding to be exact,
// not merely a parseable prefix).
func SignatureFromDER(b []byte) (Signature, error) {
	var t derSig
	rest, err := asn1.Unmarshal(b, &t)
	if err != nil {
		return Signature{}, errs.New(errs.ErrInvalidEncoding, "DER signature: %v", err)
	}
	if len(rest) != 0 {
		return Signature{}, errs.New(errs.ErrInvalidEncoding, "DER signature: %d trailing bytes", len(rest))
	}
	r, err := field.FromBytes(t.R.Bytes())
	if err != nil {
		return Signature{}, err
	}
	s, err := field.FromBytes(t.S.Bytes())
	if err != nil {
		return Signature{}, err
	}
	return Signature{R: r, S: s}, nil
}
