package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/rescue/x/rescue"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/client"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it. Wait
until the transaction is included in a block.

For certain transactions response is written out. For example, when an
instance is created its sequence number is printed.

Make sure to collect enough signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl  = flTMAddr(fl)
		timeoutFl = fl.Duration("timeout", 30*time.Second, "Maximum time to wait for the transaction to be committed.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFl)
	defer cancel()

	c := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	res, err := c.CommitTx(ctx, tx)
	if err != nil {
		return fmt.Errorf("cannot commit transaction: %s", err)
	}
	if res.Err != nil {
		return fmt.Errorf("transaction failed: %s", res.Err)
	}

	var data []byte
	if res.Result != nil {
		data = res.Result.Data
	}
	resp, err := extractResponse(tx, data, formatters)
	if err != nil {
		return fmt.Errorf("cannot extract response: %s", err)
	}
	if resp != "" {
		fmt.Fprintln(output, resp)
	}
	return nil
}

// extractResponse parse given raw response data bytes according to what is
// expected considering the submitted transaction. It returns a human readable
// representation of given response. It can return no data (and no error) if
// response does not contain anythink worth showing to the user or response is
// not supported.
func extractResponse(tx weave.Tx, respData []byte, fmts map[string]func([]byte) (string, error)) (string, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return "", fmt.Errorf("cannot extract message from transaction: %s", err)
	}
	format, ok := fmts[msg.Path()]
	if !ok {
		// If no formatter is registered, we do not print the result.
		return "", nil
	}
	pretty, err := format(respData)
	if err != nil {
		return "", fmt.Errorf("cannot format result data %x: %s", respData, err)
	}
	return pretty, nil
}

// formatters contains a mapping of a message path to response parser. Response
// parse function accepts a raw bytes of serialized response and must return a
// human representation of that data.
var formatters = map[string]func([]byte) (string, error){
	rescue.CreateTemplateMsg{}.Path(): fmtSequence,
	rescue.CreateFactoryMsg{}.Path():  fmtSequence,
	rescue.CreateInstanceMsg{}.Path(): fmtSequence,
}

func fmtSequence(raw []byte) (string, error) {
	n, err := fromSequence(raw)
	if err != nil {
		return "", fmt.Errorf("cannot parse sequence: %s", err)
	}
	return fmt.Sprint(n), nil
}
