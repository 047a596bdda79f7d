package sig

import "testing"

func TestSchnorrSignVerifyRoundTrip(t *testing.T) {
	prv := mustKey(t)
	msg := []byte("schnorr message")

	sg, err := SchnorrSign(prv, msg)
	if err != nil {
		t.Fatal(err)
	}
	if !SchnorrVerify(prv.PublicKey, msg, sg) {
		t.Fatal("schnorr verify failed for a freshly produced signature")
	}
}

func TestSchnorrVerifyRejectsTamperedMessage(t *testing.T) {
	prv := mustKey(t)
	sg, err := SchnorrSign(prv, []byte("original"))
	if err != nil {
		t.Fatal(err)
	}
	if SchnorrVerify(prv.PublicKey, []byte("tampered"), sg) {
		t.Fatal("schnorr verify accepted a signature over a different message")
	}
}

func TestSchnorrVerifyRejectsWrongKey(t *testing.T) {
	prv1 := mustKey(t)
	prv2 := mustKey(t)
	msg := []byte("shared message")

	sg, err := SchnorrSign(prv2, msg)
	if err != nil {
		t.Fatal(err)
	}
	if SchnorrVerify(prv1.PublicKey, msg, sg) {
		t.Fatal("schnorr verify accepted prv2's signature against prv1's public key")
	}
}
