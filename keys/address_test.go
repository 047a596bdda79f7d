package keys

import (
	"testing"

	"github.com/bfix/cryptos/field"
)

func TestKnownMainnetAddress(t *testing.T) {
	d, err := field.FromBytes(mustHex("18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725"))
	if err != nil {
		t.Fatal(err)
	}
	prv := newKeyPair(d, true)
	got, err := Address(prv.PublicKey, Mainnet)
	if err != nil {
		t.Fatal(err)
	}
	want := "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs"
	if got != want {
		t.Fatalf("address = %s, want %s", got, want)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	prv, err := Generate(true)
	if err != nil {
		t.Fatal(err)
	}
	for _, net := range []Network{Mainnet, Testnet} {
		addr, err := Address(prv.PublicKey, net)
		if err != nil {
			t.Fatal(err)
		}
		gotNet, digest, err := DecodeAddress(addr)
		if err != nil {
			t.Fatal(err)
		}
		if gotNet != net {
			t.Fatalf("network mismatch: got %x want %x", gotNet, net)
		}
		if len(digest) != 20 {
			t.Fatalf("hash160 digest wrong length: %d", len(digest))
		}
	}
}

func TestAddressRejectsUnknownNetwork(t *testing.T) {
	prv, err := Generate(true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Address(prv.PublicKey, Network(0x05)); err == nil {
		t.Fatal("expected error for an unrecognized network selector")
	}
}

func TestDecodeAddressBadChecksum(t *testing.T) {
	prv, err := Generate(true)
	if err != nil {
		t.Fatal(err)
	}
	addr, err := Address(prv.PublicKey, Mainnet)
	if err != nil {
		t.Fatal(err)
	}
	tampered := []byte(addr)
	tampered[len(tampered)-1]++
	if _, _, err := DecodeAddress(string(tampered)); err == nil {
		t.Fatal("expected checksum error for tampered address")
	}
}
