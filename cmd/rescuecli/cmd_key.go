package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/weave/crypto"
	"github.com/stellar/go/exp/crypto/derivation"
	"golang.org/x/crypto/ed25519"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file with binary content containing private key is
created. This command fails if the private key file already exists.

A key is random unless a hex encoded seed is given. A seed is used either as
it is or, when a derivation path is provided, to derive the key using SLIP-0010.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKeyPath(fl, defaultKeyPath())
		seedFl    = fl.String("seed", "", "Optional hex encoded seed.")
		pathFl    = fl.String("path", "", `Optional derivation path, for example "m/44'/234'/0'". Requires seed.`)
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Do not allow to overwrite already existing private key. User
		// must manually delete it first.
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	priv, err := keygen(*seedFl, *pathFl)
	if err != nil {
		return err
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fd.Write(priv); err != nil {
		return fmt.Errorf("cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("cannot close private key file: %s", err)
	}
	return nil
}

// keygen returns an ed25519 private key. Without a seed the key is random.
func keygen(hexSeed, path string) (ed25519.PrivateKey, error) {
	if hexSeed == "" {
		if path != "" {
			return nil, fmt.Errorf("derivation path requires a seed")
		}
		_, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			return nil, fmt.Errorf("cannot generate ed25519 key: %s", err)
		}
		return priv, nil
	}

	seed, err := hex.DecodeString(hexSeed)
	if err != nil {
		return nil, fmt.Errorf("cannot decode seed: %s", err)
	}
	if path == "" {
		if len(seed) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("invalid seed length: %d", len(seed))
		}
		return ed25519.PrivateKey(seed), nil
	}

	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, fmt.Errorf("cannot derive key for path %q: %s", path, err)
	}
	pub, err := k.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("cannot derive public key: %s", err)
	}
	return ed25519.PrivateKey(append(k.Key, pub...)), nil
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out a bech32 address associated with your private key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKeyPath(fl, defaultKeyPath())
		hrpFl     = fl.String("hrp", "iov", "Human readable part of the bech32 address.")
		hexFl     = fl.Bool("hex", false, "Print the address in hex format instead.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return err
	}
	addr := key.PublicKey().Address()
	if *hexFl {
		_, err = fmt.Fprintln(output, hex.EncodeToString(addr))
		return err
	}
	bech, err := toBech32(*hrpFl, addr)
	if err != nil {
		return fmt.Errorf("cannot encode address: %s", err)
	}
	_, err = fmt.Fprintln(output, string(bech))
	return err
}

func decodePrivateKey(filepath string) (*crypto.PrivateKey, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q file: %s", filepath, err)
	}
	if len(data) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: %d", len(data))
	}
	key := &crypto.PrivateKey{
		Priv: &crypto.PrivateKey_Ed25519{Ed25519: data},
	}
	return key, nil
}
