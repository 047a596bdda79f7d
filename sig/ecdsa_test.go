package sig

import (
	"testing"

	"github.com/bfix/cryptos/ecc"
	"github.com/bfix/cryptos/field"
	"github.com/bfix/cryptos/hash"
	"github.com/bfix/cryptos/keys"
)

func mustKey(t *testing.T) keys.PrivateKey {
	t.Helper()
	prv, err := keys.Generate(true)
	if err != nil {
		t.Fatal(err)
	}
	return prv
}

func TestSignVerifyRoundTrip(t *testing.T) {
	prv := mustKey(t)
	digest := hash.Hash256([]byte("the quick brown fox"))

	got, err := Sign(prv, digest)
	if err != nil {
		t.Fatal(err)
	}
	if !Verify(prv.PublicKey, digest, got) {
		t.Fatal("verify failed for a freshly produced signature")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	prv := mustKey(t)
	digest := hash.Hash256([]byte("original message"))
	sg, err := Sign(prv, digest)
	if err != nil {
		t.Fatal(err)
	}
	tampered := hash.Hash256([]byte("tampered message"))
	if Verify(prv.PublicKey, tampered, sg) {
		t.Fatal("verify accepted a signature over a different message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	prv1 := mustKey(t)
	prv2 := mustKey(t)
	digest := hash.Hash256([]byte("shared message"))

	sg, err := Sign(prv2, digest)
	if err != nil {
		t.Fatal(err)
	}
	if Verify(prv1.PublicKey, digest, sg) {
		t.Fatal("verify accepted prv2's signature against prv1's public key")
	}
}

func TestSignLowS(t *testing.T) {
	prv := mustKey(t)
	digest := hash.Hash256([]byte("low-s check"))

	sg, err := Sign(prv, digest)
	if err != nil {
		t.Fatal(err)
	}
	// n/2 via the same shift Sign uses internally, re-derived here so the
	// test doesn't just re-run production code against itself blind.
	half := field.Rsh(ecc.Secp256k1().N, 1)
	if field.Cmp(sg.S, half) > 0 {
		t.Fatalf("signature s is not canonical low-s")
	}
}

func TestCompactSignatureRoundTrip(t *testing.T) {
	prv := mustKey(t)
	digest := hash.Hash256([]byte("compact codec"))
	sg, err := Sign(prv, digest)
	if err != nil {
		t.Fatal(err)
	}
	b := sg.Bytes()
	if len(b) != 64 {
		t.Fatalf("compact signature length = %d, want 64", len(b))
	}
	back, err := SignatureFromBytes(b)
	if err != nil {
		t.Fatal(err)
	}
	if !field.Equal(back.R, sg.R) || !field.Equal(back.S, sg.S) {
		t.Fatal("compact signature round trip mismatch")
	}
}
