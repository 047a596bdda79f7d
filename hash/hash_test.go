package hash

import (
	"encoding/hex"
	"testing"
)

func TestSha256KnownVectors(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, c := range cases {
		got := hex.EncodeToString(Sha256([]byte(c.in)))
		if got != c.want {
			t.Fatalf("Sha256(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestSha256LongMultiBlock(t *testing.T) {
	msg := []byte("a longer message to make sure that a larger number of blocks works okay too")
	full := make([]byte, 0, len(msg)*15)
	for i := 0; i < 15; i++ {
		full = append(full, msg...)
	}
	got := hex.EncodeToString(Sha256(full))
	want := "8c67ff809686500cb39cdc9acfc2952ad255cd072b21d35d7d6306baa626e54e"
	if got != want {
		t.Fatalf("Sha256 of multi-block message = %s, want %s", got, want)
	}
}

func TestHash256IsDoubleSha256(t *testing.T) {
	data := []byte("bitcoin")
	want := Sha256(Sha256(data))
	got := Hash256(data)
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Fatal("Hash256 is not SHA256(SHA256(x))")
	}
}

func TestRipeMD160KnownVectors(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
		{"a", "0bdc9d2d256b3ee9daae347be6f4dc835a467ffe"},
		{"abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{"message digest", "5d0689ef49d2fae572b881b123a85ffa21595f36"},
	}
	for _, c := range cases {
		got := hex.EncodeToString(RipeMD160([]byte(c.in)))
		if got != c.want {
			t.Fatalf("RipeMD160(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestHash160IsRipemdOfSha256(t *testing.T) {
	data := []byte("bitcoin")
	want := RipeMD160(Sha256(data))
	got := Hash160(data)
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Fatal("Hash160 is not RIPEMD160(SHA256(x))")
	}
}
