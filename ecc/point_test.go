package ecc

import (
	"encoding/hex"
	"testing"

	"github.com/bfix/cryptos/field"
)

func TestBasePointOnCurve(t *testing.T) {
	g := Secp256k1().G
	if !g.IsOnCurve(Params()) {
		t.Fatal("base point fails curve equation")
	}
}

func TestScalarMultByOrderIsInfinity(t *testing.T) {
	g := Secp256k1().G
	n := Secp256k1().N
	p := ScalarMult(Params(), g, n)
	if !p.IsInfinity() {
		t.Fatalf("n*G should be Infinity, got (%x,%x)", p.X().Bytes(), p.Y().Bytes())
	}
}

func TestAddInverseIsInfinity(t *testing.T) {
	c := Params()
	g := Secp256k1().G
	neg := NewAffine(g.X(), field.SubMod(c.P, g.Y(), c.P))
	sum := Add(c, g, neg)
	if !sum.IsInfinity() {
		t.Fatalf("G + (-G) should be Infinity, got (%x,%x)", sum.X().Bytes(), sum.Y().Bytes())
	}
}

func TestAddIdentity(t *testing.T) {
	c := Params()
	g := Secp256k1().G
	if !Add(c, g, Infinity).Equal(g) {
		t.Fatal("G + Infinity != G")
	}
	if !Add(c, Infinity, g).Equal(g) {
		t.Fatal("Infinity + G != G")
	}
}

func TestDoubleMatchesScalarMultByTwo(t *testing.T) {
	c := Params()
	g := Secp256k1().G
	d := Double(c, g)
	s := ScalarMult(c, g, field.FromUint64(2))
	if !d.Equal(s) {
		t.Fatal("Double(G) != 2*G")
	}
	if !d.IsOnCurve(c) {
		t.Fatal("2G not on curve")
	}
}

func TestAddCommutes(t *testing.T) {
	c := Params()
	g := Secp256k1().G
	d := Double(c, g)
	p1 := Add(c, g, d)
	p2 := Add(c, d, g)
	if !p1.Equal(p2) {
		t.Fatal("G+2G != 2G+G")
	}
}

func TestAddDoubleMatchesScalarMultByThree(t *testing.T) {
	c := Params()
	g := Secp256k1().G
	p1 := Add(c, Double(c, g), g)
	p2 := ScalarMult(c, g, field.FromUint64(3))
	if !p1.Equal(p2) {
		t.Fatal("2G+G != 3G")
	}
}

func TestScalarMultDistributesOverAddition(t *testing.T) {
	c := Params()
	g := Secp256k1().G
	k1 := field.FromUint64(17)
	k2 := field.FromUint64(42)
	lhs := Add(c, ScalarMult(c, g, k1), ScalarMult(c, g, k2))
	rhs := ScalarMult(c, g, field.AddMod(k1, k2, Secp256k1().N))
	if !lhs.Equal(rhs) {
		t.Fatal("k1*G + k2*G != (k1+k2)*G")
	}
}

func TestSECRoundTripUncompressed(t *testing.T) {
	c := Params()
	g := Secp256k1().G
	enc := g.Bytes(false)
	if len(enc) != 65 || enc[0] != 0x04 {
		t.Fatalf("unexpected uncompressed encoding: %x", enc)
	}
	dec, err := PointFromBytes(c, enc)
	if err != nil {
		t.Fatal(err)
	}
	if !dec.Equal(g) {
		t.Fatal("uncompressed round trip mismatch")
	}
}

func TestSECRoundTripCompressed(t *testing.T) {
	c := Params()
	g := Secp256k1().G
	enc := g.Bytes(true)
	if len(enc) != 33 || (enc[0] != 0x02 && enc[0] != 0x03) {
		t.Fatalf("unexpected compressed encoding: %x", enc)
	}
	dec, err := PointFromBytes(c, enc)
	if err != nil {
		t.Fatal(err)
	}
	if !dec.Equal(g) {
		t.Fatal("compressed round trip mismatch")
	}
}

func TestInfinityEncodeDecode(t *testing.T) {
	enc := Infinity.Bytes(true)
	if len(enc) != 1 || enc[0] != 0x00 {
		t.Fatalf("infinity encoding wrong: %x", enc)
	}
	dec, err := PointFromBytes(Params(), enc)
	if err != nil {
		t.Fatal(err)
	}
	if !dec.IsInfinity() {
		t.Fatal("decoded infinity should report IsInfinity")
	}
}

func TestKnownSECUncompressed(t *testing.T) {
	g := Secp256k1().G
	p := ScalarMult(Params(), g, field.FromUint64(5000))
	got := hex.EncodeToString(p.Bytes(false))
	want := "04ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c315dc72890a4f10a1481c031b03b351b0dc79901ca18a00cf009dbdb157a1d10"
	if got != want {
		t.Fatalf("5000*G uncompressed = %s, want %s", got, want)
	}
}

func TestPointFromBytesRejectsBadLength(t *testing.T) {
	if _, err := PointFromBytes(Params(), []byte{0x04, 0x01}); err == nil {
		t.Fatal("expected error for truncated uncompressed point")
	}
}
