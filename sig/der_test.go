package sig

import (
	"encoding/hex"
	"testing"

	"github.com/bfix/cryptos/field"
)

func mustFieldHex(t *testing.T, s string) field.Elem {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	e, err := field.FromBytes(b)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestDERKnownVector(t *testing.T) {
	r := mustFieldHex(t, "37206a0610995c58074999cb9767b87af4c4978db68c06e8e6e81d282047a7c6")
	s := mustFieldHex(t, "8ca63759c1157ebeaec0d03cecca119fc9a75bf8e6d0fa65c841c8e2738cdaec")
	sg := Signature{R: r, S: s}

	der, err := sg.DER()
	if err != nil {
		t.Fatal(err)
	}
	want := "3045022037206a0610995c58074999cb9767b87af4c4978db68c06e8e6e81d282047a7c60221008ca63759c1157ebeaec0d03cecca119fc9a75bf8e6d0fa65c841c8e2738cdaec"
	if got := hex.EncodeToString(der); got != want {
		t.Fatalf("DER encoding = %s, want %s", got, want)
	}

	back, err := SignatureFromDER(der)
	if err != nil {
		t.Fatal(err)
	}
	if !field.Equal(back.R, sg.R) || !field.Equal(back.S, sg.S) {
		t.Fatal("DER round trip mismatch")
	}
}

func TestDERRejectsMalformed(t *testing.T) {
	if _, err := SignatureFromDER([]byte{0x30, 0x02, 0x02, 0x01}); err == nil {
		t.Fatal("expected error decoding a truncated DER sequence")
	}
}

func TestDERRejectsTrailingBytes(t *testing.T) {
	r := mustFieldHex(t, "37206a0610995c58074999cb9767b87af4c4978db68c06e8e6e81d282047a7c6")
	s := mustFieldHex(t, "8ca63759c1157ebeaec0d03cecca119fc9a75bf8e6d0fa65c841c8e2738cdaec")
	der, err := (Signature{R: r, S: s}).DER()
	if err != nil {
		t.Fatal(err)
	}
	der = append(der, 0xff)
	if _, err := SignatureFromDER(der); err == nil {
		t.Fatal("expected error decoding a DER signature with trailing garbage")
	}
}

func TestDERRoundTripRandom(t *testing.T) {
	for i := 0; i < 8; i++ {
		prv := mustKey(t)
		sg := Signature{R: prv.D, S: prv.D}
		der, err := sg.DER()
		if err != nil {
			t.Fatal(err)
		}
		back, err := SignatureFromDER(der)
		if err != nil {
			t.Fatal(err)
		}
		if !field.Equal(back.R, sg.R) || !field.Equal(back.S, sg.S) {
			t.Fatal("DER round trip mismatch")
		}
	}
}
