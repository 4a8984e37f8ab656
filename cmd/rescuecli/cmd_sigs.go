package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"

	"github.com/iov-one/weave"
	weaveapp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/client"
	"github.com/iov-one/weave/x/sigs"
)

func cmdSignTransaction(
	input io.Reader,
	output io.Writer,
	args []string,
) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

Chain ID and the signer sequence are fetched from the node unless provided.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl  = flTMAddr(fl)
		keyPathFl = flKeyPath(fl, "")
		chainIDFl = fl.String("chain-id", "", "Optional chain ID. If not provided it is fetched from the genesis.")
		seqFl     = fl.Int64("seq", -1, "Optional signer sequence. If not provided it is fetched from the node.")
	)
	fl.Parse(args)

	if *keyPathFl == "" {
		return errors.New("private key is required")
	}
	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	chainID := *chainIDFl
	if chainID == "" {
		genesis, err := fetchGenesis(*tmAddrFl)
		if err != nil {
			return fmt.Errorf("cannot fetch genesis: %s", err)
		}
		chainID = genesis.ChainID
	}

	seq := *seqFl
	if seq < 0 {
		c := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
		seq, err = nextSequence(c, key.PublicKey().Address())
		if err != nil {
			return fmt.Errorf("cannot get the next sequence number: %s", err)
		}
	}

	sig, err := sigs.SignTx(key, tx, chainID, seq)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}

// nextSequence returns the sequence value that the next signature of given
// account must use.
func nextSequence(c *client.Client, addr weave.Address) (int64, error) {
	resp := c.Query(client.RequestQuery{Path: "/auth", Data: addr})
	if resp.Code != 0 {
		return 0, fmt.Errorf("query failed with code %d: %s", resp.Code, resp.Log)
	}
	if len(resp.Value) == 0 {
		// Account never signed a transaction.
		return 0, nil
	}
	var user sigs.UserData
	if err := weaveapp.UnmarshalOneResult(resp.Value, &user); err != nil {
		return 0, fmt.Errorf("cannot unmarshal user: %s", err)
	}
	return user.Sequence, nil
}

func fetchGenesis(serverURL string) (*genesis, error) {
	resp, err := http.Get(serverURL + "/genesis")
	if err != nil {
		return nil, fmt.Errorf("cannot fetch: %s", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Result struct {
			Genesis genesis `json:"genesis"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cannot decode response: %s", err)
	}
	return &payload.Result.Genesis, nil
}

type genesis struct {
	ChainID string `json:"chain_id"`
}
