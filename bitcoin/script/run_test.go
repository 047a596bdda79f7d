package script

import (
	"crypto/rand"
	"testing"

	"github.com/bfix/cryptos/hash"
	"github.com/bfix/cryptos/keys"
	"github.com/bfix/cryptos/sig"
)

func pushData(b []byte) []byte {
	if len(b) > 75 {
		panic("test helper only handles direct pushes")
	}
	return append([]byte{byte(len(b))}, b...)
}

func buildP2PKH(t *testing.T, prv keys.PrivateKey, sigHash [32]byte) (scriptSig, scriptPubKey []byte) {
	t.Helper()
	s, err := sig.Sign(prv, sigHash[:])
	if err != nil {
		t.Fatal(err)
	}
	der, err := s.DER()
	if err != nil {
		t.Fatal(err)
	}
	sigBytes := append(der, SighashAll)
	pubkeyBytes := prv.PublicKey.Bytes()
	pkHash := hash.Hash160(pubkeyBytes)

	scriptSig = append(pushData(sigBytes), pushData(pubkeyBytes)...)
	scriptPubKey = append([]byte{OpDUP, OpHASH160}, pushData(pkHash)...)
	scriptPubKey = append(scriptPubKey, OpEQUALVERIFY, OpCHECKSIG)
	return
}

func randSigHash(t *testing.T) [32]byte {
	t.Helper()
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestEvaluateP2PKHAccepts(t *testing.T) {
	prv, err := keys.Generate(true)
	if err != nil {
		t.Fatal(err)
	}
	digest := randSigHash(t)
	scriptSig, scriptPubKey := buildP2PKH(t, prv, digest)

	ok, err := EvaluateP2PKH(scriptSig, scriptPubKey, digest)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a valid P2PKH script to evaluate true")
	}
}

func TestEvaluateP2PKHRejectsWrongPubkeyHash(t *testing.T) {
	prv, err := keys.Generate(true)
	if err != nil {
		t.Fatal(err)
	}
	other, err := keys.Generate(true)
	if err != nil {
		t.Fatal(err)
	}
	digest := randSigHash(t)
	scriptSig, _ := buildP2PKH(t, prv, digest)
	_, scriptPubKey := buildP2PKH(t, other, digest)

	ok, err := EvaluateP2PKH(scriptSig, scriptPubKey, digest)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected mismatched pubkey hash to fail")
	}
}

func TestEvaluateP2PKHRejectsBadSignature(t *testing.T) {
	prv, err := keys.Generate(true)
	if err != nil {
		t.Fatal(err)
	}
	digest := randSigHash(t)
	scriptSig, scriptPubKey := buildP2PKH(t, prv, digest)

	tampered := randSigHash(t)
	ok, err := EvaluateP2PKH(scriptSig, scriptPubKey, tampered)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected signature over a different digest to fail verification")
	}
}

func TestEvaluateP2PKHRejectsMalformedTemplate(t *testing.T) {
	scriptSig := pushData([]byte("not a real signature"))
	scriptPubKey := append([]byte{OpDUP, OpCHECKSIG}, pushData([]byte{1, 2, 3})...)
	if _, err := EvaluateP2PKH(scriptSig, scriptPubKey, [32]byte{}); err == nil {
		t.Fatal("expected a structural error for a non-P2PKH script")
	}
}
