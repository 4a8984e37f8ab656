package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/rescue/x/rescue"
	"github.com/iov-one/weave"
	weaveapp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/client"
	"github.com/iov-one/weave/x/cash"
)

func cmdQuery(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Fetch an entity from the blockchain and print it out in JSON format. Exactly
one of instance, factory or wallet must be provided.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl   = flTMAddr(fl)
		instanceFl = flSeq(fl, "instance", "", "Sequence number of a rescue instance or a template.")
		factoryFl  = flSeq(fl, "factory", "", "Sequence number of a factory.")
		walletFl   = flAddress(fl, "wallet", "", "Address of a wallet.")
	)
	fl.Parse(args)

	path, key, obj, err := queryTarget(*instanceFl, *factoryFl, *walletFl)
	if err != nil {
		flagDie("%s", err)
	}

	c := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	resp := c.Query(client.RequestQuery{Path: path, Data: key})
	if resp.Code != 0 {
		return fmt.Errorf("query failed with code %d: %s", resp.Code, resp.Log)
	}
	if len(resp.Value) == 0 {
		return fmt.Errorf("not found")
	}
	if err := weaveapp.UnmarshalOneResult(resp.Value, obj); err != nil {
		return fmt.Errorf("cannot unmarshal result: %s", err)
	}

	pretty, err := json.MarshalIndent(obj, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}

// queryTarget returns the query path, the key and an empty entity that the
// result can be unmarshaled into.
func queryTarget(instance, factory []byte, wallet weave.Address) (string, []byte, weave.Persistent, error) {
	var n int
	for _, b := range [][]byte{instance, factory, wallet} {
		if len(b) != 0 {
			n++
		}
	}
	if n != 1 {
		return "", nil, nil, fmt.Errorf("exactly one query target must be provided")
	}

	switch {
	case len(instance) != 0:
		return "/rescueinstances", instance, &rescue.Instance{}, nil
	case len(factory) != 0:
		return "/rescuefactories", factory, &rescue.Factory{}, nil
	default:
		return "/wallets", wallet, &cash.Set{}, nil
	}
}
