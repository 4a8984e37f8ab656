package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *weave.Address {
	var a flagAddress
	if defaultVal != "" {
		if err := a.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q weave.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return (*weave.Address)(&a)
}

// flagAddress accepts both a hex and a bech32 encoded address.
type flagAddress weave.Address

func (a flagAddress) String() string {
	return hex.EncodeToString(a)
}

func (a *flagAddress) Set(raw string) error {
	addr, err := parseAddress(raw)
	if err != nil {
		return err
	}
	*a = flagAddress(addr)
	return nil
}

// parseAddress decodes an address given either in hex or in bech32 format.
func parseAddress(raw string) (weave.Address, error) {
	b, err := hex.DecodeString(raw)
	if err != nil {
		if _, b, err = fromBech32(raw); err != nil {
			return nil, fmt.Errorf("neither hex nor bech32: %s", err)
		}
	}
	addr := weave.Address(b)
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// toBech32 encodes given address payload using the human readable part.
func toBech32(hrp string, payload []byte) ([]byte, error) {
	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, fmt.Errorf("cannot convert bits: %s", err)
	}
	raw, err := bech32.Encode(hrp, conv)
	if err != nil {
		return nil, fmt.Errorf("cannot bech32 encode: %s", err)
	}
	return []byte(raw), nil
}

// fromBech32 returns the human readable part and the payload of a bech32
// encoded value.
func fromBech32(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, fmt.Errorf("cannot bech32 decode: %s", err)
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("cannot convert bits: %s", err)
	}
	return hrp, payload, nil
}

// flCoin returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		var err error
		c, err = coin.ParseHumanFormat(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q wave.Coin flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&c, name, usage)
	return &c
}

// flSeq returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. Value is
// a decimal sequence number and it is exposed in its binary form.
func flSeq(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	var s flagseq
	if defaultVal != "" {
		if err := s.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q sequence flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&s, name, usage)
	return (*[]byte)(&s)
}

type flagseq []byte

func (s flagseq) String() string {
	if len(s) == 0 {
		return ""
	}
	n, err := fromSequence(s)
	if err != nil {
		return hex.EncodeToString(s)
	}
	return fmt.Sprint(n)
}

func (s *flagseq) Set(raw string) error {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sequence number: %s", err)
	}
	*s = sequenceID(n)
	return nil
}

// flagDie terminates the program when a flag is invalid.
func flagDie(description string, args ...interface{}) {
	msg := fmt.Sprintf(description, args...)
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}

// Environment variables that take precedence over built-in flag defaults.
const (
	envTMAddr  = "RESCUECLI_TM_ADDR"
	envPrivKey = "RESCUECLI_PRIV_KEY"
)

// flTMAddr declares the tendermint node address flag.
func flTMAddr(fl *flag.FlagSet) *string {
	addr, ok := os.LookupEnv(envTMAddr)
	if !ok {
		addr = "http://localhost:26657"
	}
	return fl.String("tm", addr, "Tendermint node address. Can be set with "+envTMAddr+" environment variable.")
}

// flKeyPath declares the private key file flag. An empty fallback means no
// default location.
func flKeyPath(fl *flag.FlagSet, fallback string) *string {
	path, ok := os.LookupEnv(envPrivKey)
	if !ok {
		path = fallback
	}
	return fl.String("key", path, "Path to the private key file. Can be set with "+envPrivKey+" environment variable.")
}

// defaultKeyPath is where keygen writes a key when no path is given.
func defaultKeyPath() string {
	return filepath.Join(os.Getenv("HOME"), ".rescued.priv.key")
}

// sequenceID returns the orm encoding of a sequence value.
func sequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// fromSequence is the reverse of sequenceID.
func fromSequence(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("sequence must be 8 bytes, got %d", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}
