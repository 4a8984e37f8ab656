package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	rescued "github.com/iov-one/rescue/cmd/rescued/app"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/commands"
	"github.com/iov-one/weave/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

// subcommand runs with the node home directory and the arguments following
// the subcommand name.
type subcommand struct {
	info string
	run  func(logger log.Logger, home string, args []string) error
}

var subcommands = map[string]subcommand{
	"init": {
		info: "write the initial rescue state into the genesis file",
		run: func(logger log.Logger, home string, args []string) error {
			return server.InitCmd(rescued.GenInitOptions, logger, home, args)
		},
	},
	"start": {
		info: "run the ABCI server",
		run: func(logger log.Logger, home string, args []string) error {
			return server.StartCmd(rescued.GenerateApp, logger, home, args)
		},
	},
	"testgen": {
		info: "write example encodings into a directory",
		run: func(_ log.Logger, _ string, args []string) error {
			return commands.TestGenCmd(rescued.Examples(), args)
		},
	},
	"version": {
		info: "print the weave version",
		run: func(log.Logger, string, []string) error {
			fmt.Println(weave.Version)
			return nil
		},
	},
}

var home = flag.String("home", filepath.Join(os.Getenv("HOME"), ".rescued"), "node home directory")

func main() {
	flag.Usage = func() { usage(flag.CommandLine.Output()) }
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "help" {
		usage(os.Stderr)
		os.Exit(2)
	}
	sub, ok := subcommands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flag.Arg(0))
		usage(os.Stderr)
		os.Exit(2)
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "rescue")
	if err := sub.run(logger, *home, flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %+v\n", flag.Arg(0), err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "rescued is a white-hat rescue custody node.")
	fmt.Fprintln(w, "\nUsage: rescued [-home <dir>] <command> [<args>]\n\nCommands:")
	names := make([]string, 0, len(subcommands))
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-9s %s\n", name, subcommands[name].info)
	}
	fmt.Fprintln(w, "\nFlags:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}
