package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
)

func cmdTransactionView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print every transaction read from the input in a human readable form. Each
transaction is preceded by the path of the message it carries. Check what you
authorize before signing.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	for i := 0; ; i++ {
		tx, _, err := readTx(input)
		if err == io.EOF && i > 0 {
			return nil
		}
		if err != nil {
			return fmt.Errorf("cannot read transaction %d: %s", i, err)
		}
		msg, err := tx.GetMsg()
		if err != nil {
			return fmt.Errorf("cannot extract message of transaction %d: %s", i, err)
		}
		// Generated types carry JSON tags for all attributes.
		pretty, err := json.MarshalIndent(tx, "", "\t")
		if err != nil {
			return fmt.Errorf("cannot JSON serialize transaction %d: %s", i, err)
		}
		if _, err := fmt.Fprintf(output, "# %s\n%s\n", msg.Path(), pretty); err != nil {
			return err
		}
	}
}
