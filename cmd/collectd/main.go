package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/cmd/collectd/app"
	"github.com/iov-one/weave-collect/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

type command struct {
	help string
	run  func(logger log.Logger, home string, args []string) error
}

var commands = map[string]command{
	"init": {
		help: "Initialize app options in the genesis file",
		run: func(logger log.Logger, home string, args []string) error {
			return server.InitCmd(app.GenInitOptions, logger, home, args)
		},
	},
	"start": {
		help: "Run the ABCI server",
		run: func(logger log.Logger, home string, args []string) error {
			return server.StartCmd(app.GenerateApp, logger, home, args)
		},
	},
	"validate": {
		help: "Load given genesis files into an in-memory store",
		run: func(_ log.Logger, _ string, args []string) error {
			return server.ValidateGenesis(app.Initializers(), args)
		},
	},
	"version": {
		help: "Print the application version",
		run: func(log.Logger, string, []string) error {
			fmt.Println(weave.Version())
			return nil
		},
	},
}

func usage() {
	fmt.Fprintf(os.Stderr, "collectd - publication collection ABCI application\n\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-9s %s\n", name, commands[name].help)
	}
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	home := flag.String("home", filepath.Join(os.ExpandEnv("$HOME"), ".collectd"), "directory to store files under")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "help" {
		usage()
		if flag.NArg() == 0 {
			os.Exit(2)
		}
		return
	}
	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "collect")
	if err := cmd.run(logger, *home, flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
