package field

import "github.com/bfix/cryptos/errs"

// AddMod computes (a+b) mod p. Inputs are assumed already reduced (a,b < p),
// as every operation in this package expects on entry.
func AddMod(a, b, p Elem) Elem {
	sum, carry := add4(a.d, b.d)
	if carry == 1 || Cmp(Elem{d: sum}, p) >= 0 {
		sum, _ = sub4(sum, p.d)
	}
	return Elem{d: sum}
}

// SubMod computes (a-b) mod p, adding p back when a < b so no negative
// intermediate is ever observable.
func SubMod(a, b, p Elem) Elem {
	diff, borrow := sub4(a.d, b.d)
	if borrow == 1 {
		diff, _ = add4(diff, p.d)
	}
	return Elem{d: diff}
}

// MulMod computes (a*b) mod p via a 512-bit schoolbook multiply followed by
// long-division reduction.
func MulMod(a, b, p Elem) Elem {
	prod := mul4(a.d, b.d)
	return Elem{d: reduce512(prod, p.d)}
}

// ExpMod computes base^exp mod p via square-and-multiply over the binary
// expansion of exp, least-significant bit first.
func ExpMod(base, exp, p Elem) Elem {
	result := One
	b := base
	bits := exp.BitLen()
	for i := 0; i < bits; i++ {
		if exp.Bit(uint(i)) == 1 {
			result = MulMod(result, b, p)
		}
		b = MulMod(b, b, p)
	}
	return result
}

// InvMod computes the multiplicative inverse of a in GF(p) via Fermat's
// little theorem (a^(p-2) mod p), valid for prime p. a=0 fails with
// errs.ErrNotInvertible.
func InvMod(a, p Elem) (Elem, error) {
	if a.IsZero() {
		return Elem{}, errs.New(errs.ErrNotInvertible, "zero has no modular inverse")
	}
	// p-2 needs no modular reduction: p is always a prime well above 2
	// for every modulus used in this package.
	diff, _ := sub4(p.d, FromUint64(2).d)
	pMinus2 := Elem{d: diff}
	return ExpMod(a, pMinus2, p), nil
}

// DivMod computes (a/b) mod p := a * b^-1 mod p.
func DivMod(a, b, p Elem) (Elem, error) {
	inv, err := InvMod(b, p)
	if err != nil {
		return Elem{}, err
	}
	return MulMod(a, inv, p), nil
}

// QuoRaw computes floor(a/b) as plain unsigned integer division, with no
// modulus involved -- used for ratios of two 256-bit integers that are not
// residues of a common prime field, such as proof-of-work difficulty
// (genesis target / current target). Like AddRaw, Lsh and Rsh, a zero
// divisor is the caller's concern, not a recoverable condition here.
func QuoRaw(a, b Elem) Elem {
	if b.IsZero() {
		panic("field: QuoRaw by zero")
	}
	quo, _ := quoRem256(a.d, b.d)
	return Elem{d: quo}
}
