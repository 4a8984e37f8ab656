package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// command reads its input from stdin and writes its result to stdout so that
// commands can be chained with a pipe, for example
//
//   $ rescuecli retrieve-funds -instance 2 -beneficiary iov1... \
//       | rescuecli with-fee | rescuecli sign | rescuecli submit
//
// A command may write to stderr and exit with code 2 on an invalid flag.
type command struct {
	run  func(input io.Reader, output io.Writer, args []string) error
	info string
}

var commands = map[string]command{
	"accept-ownership":     {cmdAcceptOwnership, "accept a proposed owner role"},
	"create-factory":       {cmdCreateFactory, "register a factory of a template"},
	"create-instance":      {cmdCreateInstance, "create an instance using a factory"},
	"create-template":      {cmdCreateTemplate, "register a template instance"},
	"initialize":           {cmdInitialize, "assign roles of an instance"},
	"keyaddr":              {cmdKeyaddr, "print the address of a private key"},
	"keygen":               {cmdKeygen, "generate a private key file"},
	"query":                {cmdQuery, "print stored instances or factories"},
	"renounce-ownership":   {cmdRenounceOwnership, "hand the owner role back to the hacker"},
	"retrieve-funds":       {cmdRetrieveFunds, "release a balance of an instance"},
	"send-tokens":          {cmdSendTokens, "transfer coins, for example to fund an instance"},
	"sign":                 {cmdSignTransaction, "sign a transaction"},
	"submit":               {cmdSubmitTransaction, "broadcast a transaction and wait for the result"},
	"transfer-ownership":   {cmdTransferOwnership, "propose a new owner"},
	"update-committee":     {cmdUpdateCommittee, "reassign or resign the committee"},
	"update-configuration": {cmdUpdateConfiguration, "change the extension configuration"},
	"version":              {cmdVersion, "print the program version"},
	"view":                 {cmdTransactionView, "print transactions in a readable form"},
	"with-fee":             {cmdWithFee, "attach a fee to a transaction"},
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}
	if err := cmd.run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// usage writes the list of commands sorted by name.
func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "Usage: rescuecli <command> [<flags>]\n\nCommands:\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, commands[name].info)
	}
	tw.Flush()
	fmt.Fprintf(w, "\nRun 'rescuecli <command> -help' for the flags of a command.\n")
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, gitHash)
	return err
}

// gitHash is set at build time with -ldflags.
var gitHash = "dev"
