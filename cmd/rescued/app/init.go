package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/rescue/x/rescue"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/pkg/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// collectorAddr receives all transaction fees.
var collectorAddr = weave.NewCondition("rescue", "fees", []byte("collector")).Address()

// GenInitOptions will produce some basic options for one rich account, to
// use for dev mode. The same account is the admin of all configurations.
//
// Optional arguments are the native ticker and the address of the account.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, fmt.Errorf("invalid ticker %s", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(keys)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": ticker,
					},
				},
			},
		},
		"conf": dict{
			"cash": dict{
				"metadata":          dict{"schema": 1},
				"collector_address": collectorAddr,
			},
			"migration": dict{
				"metadata": dict{"schema": 1},
				"admin":    addr,
			},
			"rescue": dict{
				"metadata":      dict{"schema": 1},
				"owner":         addr,
				"native_ticker": ticker,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "rescue", "ver": 1},
		},
		"rescue": dict{
			"templates": 1,
			"factories": array{
				dict{"implementation": 1},
			},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "rescue.db")
	}

	application, err := Application("rescued", Stack(), TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create application")
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&rescue.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key, along with a json
// representation of the keys. You can give coins to this address and import
// the keys in a client to use them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(err, "cannot serialize keys")
	}
	return addr, string(keys), nil
}
