package main

import (
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/weavetest/assert"
	"golang.org/x/crypto/ed25519"
)

const privKeyHex = "d34c1970ae90acf3405f2d99dcaca16d0c7db379f4beafcfdf667b9d69ce350d27f5fb440509dfa79ec883a0510bc9a9614c3d44188881f0c5e402898b4bf3c9"

func TestKeygen(t *testing.T) {
	random, err := keygen("", "")
	if err != nil {
		t.Fatalf("cannot generate a random key: %s", err)
	}
	assert.Equal(t, ed25519.PrivateKeySize, len(random))

	plain, err := keygen(privKeyHex, "")
	if err != nil {
		t.Fatalf("cannot use seed as a key: %s", err)
	}
	assert.Equal(t, fromHex(t, privKeyHex), []byte(plain))

	first, err := keygen(privKeyHex, "m/44'/234'/0'")
	if err != nil {
		t.Fatalf("cannot derive key: %s", err)
	}
	again, err := keygen(privKeyHex, "m/44'/234'/0'")
	if err != nil {
		t.Fatalf("cannot derive key: %s", err)
	}
	second, err := keygen(privKeyHex, "m/44'/234'/1'")
	if err != nil {
		t.Fatalf("cannot derive key: %s", err)
	}
	assert.Equal(t, ed25519.PrivateKeySize, len(first))
	assert.Equal(t, []byte(first), []byte(again))
	if bytes.Equal(first, second) {
		t.Fatal("different paths must derive different keys")
	}

	// Derived key must be usable for signing.
	msg := []byte("rescue")
	if !ed25519.Verify(first.Public().(ed25519.PublicKey), msg, ed25519.Sign(first, msg)) {
		t.Fatal("derived key signature cannot be verified")
	}
}

func TestKeygenErrors(t *testing.T) {
	cases := map[string]struct {
		seed string
		path string
	}{
		"path without a seed":     {seed: "", path: "m/44'/234'/0'"},
		"seed is not hex":         {seed: "zzzz", path: ""},
		"seed of a wrong size":    {seed: "d34c1970", path: ""},
		"invalid derivation path": {seed: privKeyHex, path: "m/44/234/0"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if _, err := keygen(tc.seed, tc.path); err == nil {
				t.Fatal("want error")
			}
		})
	}
}

func TestKeygenAndKeyaddr(t *testing.T) {
	dir, err := ioutil.TempDir("", "rescuecli")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	defer os.RemoveAll(dir)
	keyPath := filepath.Join(dir, "priv.key")

	if err := cmdKeygen(nil, ioutil.Discard, []string{"-key", keyPath, "-seed", privKeyHex}); err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	if err := cmdKeygen(nil, ioutil.Discard, []string{"-key", keyPath}); err == nil {
		t.Fatal("existing key file must not be overwritten")
	}

	key := &crypto.PrivateKey{
		Priv: &crypto.PrivateKey_Ed25519{Ed25519: fromHex(t, privKeyHex)},
	}
	want := key.PublicKey().Address()

	var hexOut bytes.Buffer
	if err := cmdKeyaddr(nil, &hexOut, []string{"-key", keyPath, "-hex"}); err != nil {
		t.Fatalf("cannot print address: %s", err)
	}
	assert.Equal(t, hex.EncodeToString(want), strings.TrimSpace(hexOut.String()))

	var bechOut bytes.Buffer
	if err := cmdKeyaddr(nil, &bechOut, []string{"-key", keyPath, "-hrp", "tiov"}); err != nil {
		t.Fatalf("cannot print address: %s", err)
	}
	hrp, payload, err := fromBech32(strings.TrimSpace(bechOut.String()))
	if err != nil {
		t.Fatalf("cannot decode printed address: %s", err)
	}
	assert.Equal(t, "tiov", hrp)
	assert.Equal(t, []byte(want), payload)
}
