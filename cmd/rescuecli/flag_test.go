package main

import (
	"flag"
	"os"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestParseAddress(t *testing.T) {
	raw := fromHex(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0")
	bech, err := toBech32("tiov", raw)
	if err != nil {
		t.Fatalf("cannot encode bech32: %s", err)
	}

	corrupted := []byte(string(bech))
	if last := len(corrupted) - 1; corrupted[last] == 'q' {
		corrupted[last] = 'p'
	} else {
		corrupted[last] = 'q'
	}

	cases := map[string]struct {
		raw     string
		want    weave.Address
		wantErr bool
	}{
		"hex": {
			raw:  "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
			want: raw,
		},
		"lowercase hex": {
			raw:  "e28ae9a6eb94fc88b73eb7cbd6b87bf93eb9bef0",
			want: raw,
		},
		"bech32": {
			raw:  string(bech),
			want: raw,
		},
		"too short hex": {
			raw:     "E28AE9A6",
			wantErr: true,
		},
		"garbage": {
			raw:     "not an address",
			wantErr: true,
		},
		"corrupted bech32 checksum": {
			raw:     string(corrupted),
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := parseAddress(tc.raw)
			if hasErr := err != nil; hasErr != tc.wantErr {
				t.Fatalf("unexpected error: %+v", err)
			}
			if !tc.wantErr {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestBech32Roundtrip(t *testing.T) {
	payload := fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282")
	bech, err := toBech32("iov", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	hrp, got, err := fromBech32(string(bech))
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	assert.Equal(t, "iov", hrp)
	assert.Equal(t, payload, got)
}

func TestFlags(t *testing.T) {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	var (
		addr   = flAddress(fl, "addr", "", "")
		seq    = flSeq(fl, "seq", "", "")
		amount = flCoin(fl, "amount", "1 IOV", "")
	)
	err := fl.Parse([]string{
		"-addr", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-seq", "42",
		"-amount", "2.5 ETH",
	})
	if err != nil {
		t.Fatalf("cannot parse flags: %s", err)
	}
	assert.Equal(t, weave.Address(fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282")), *addr)
	assert.Equal(t, sequenceID(42), *seq)
	assert.Equal(t, coin.NewCoin(2, 500000000, "ETH"), *amount)
}

func TestFlagsDefaults(t *testing.T) {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	var (
		addr   = flAddress(fl, "addr", "", "")
		seq    = flSeq(fl, "seq", "1", "")
		amount = flCoin(fl, "amount", "1 IOV", "")
	)
	if err := fl.Parse(nil); err != nil {
		t.Fatalf("cannot parse flags: %s", err)
	}
	assert.Equal(t, 0, len(*addr))
	assert.Equal(t, sequenceID(1), *seq)
	assert.Equal(t, coin.NewCoin(1, 0, "IOV"), *amount)
}

func TestEnvironmentFlagDefaults(t *testing.T) {
	defer restoreEnv(envTMAddr)()
	defer restoreEnv(envPrivKey)()

	os.Setenv(envTMAddr, "http://node:26657")
	os.Unsetenv(envPrivKey)

	fl := flag.NewFlagSet("", flag.ContinueOnError)
	var (
		tmAddr  = flTMAddr(fl)
		keyPath = flKeyPath(fl, "/tmp/fallback.key")
	)
	if err := fl.Parse(nil); err != nil {
		t.Fatalf("cannot parse flags: %s", err)
	}
	assert.Equal(t, "http://node:26657", *tmAddr)
	assert.Equal(t, "/tmp/fallback.key", *keyPath)

	// An explicitly set empty value wins over the fallback.
	os.Setenv(envPrivKey, "")
	fl = flag.NewFlagSet("", flag.ContinueOnError)
	keyPath = flKeyPath(fl, "/tmp/fallback.key")
	if err := fl.Parse(nil); err != nil {
		t.Fatalf("cannot parse flags: %s", err)
	}
	assert.Equal(t, "", *keyPath)
}

// restoreEnv returns a function that sets the environment variable back to
// its current state.
func restoreEnv(name string) func() {
	prev, ok := os.LookupEnv(name)
	return func() {
		if ok {
			os.Setenv(name, prev)
		} else {
			os.Unsetenv(name)
		}
	}
}

func TestSequenceRoundtrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 12345, 1 << 63} {
		got, err := fromSequence(sequenceID(n))
		assert.Nil(t, err)
		assert.Equal(t, n, got)
	}
	if _, err := fromSequence([]byte{1, 2, 3}); err == nil {
		t.Fatal("short sequence must be rejected")
	}
}
