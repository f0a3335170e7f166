package server

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"github.com/iov-one/weave-collect/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	appStateKey = "app_state"
	flagForce   = "f"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// genesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type genesisDoc map[string]json.RawMessage

func parseInitFlags(args []string) (bool, []string, error) {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite existing app_state")
	err := initFlags.Parse(args)
	return force, initFlags.Args(), err
}

// InitCmd will add the application state to the genesis file created by
// `tendermint init` in the home directory.
// The application can pass in a function to generate proper options.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	force, rest, err := parseInitFlags(args)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := filepath.Join(home, "config", "genesis.json")
	raw, err := os.ReadFile(genFile)
	if err != nil {
		return errors.Wrapf(errors.ErrNotFound, "cannot read genesis file %q: %s", genFile, err)
	}
	var doc genesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if state := doc[appStateKey]; len(state) > 0 && string(state) != "null" && !force {
		return errors.Wrapf(errors.ErrDuplicate, "%s already set in %q, use -%s to overwrite", appStateKey, genFile, flagForce)
	}

	options, err := gen(rest)
	if err != nil {
		return err
	}
	doc[appStateKey] = options

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrHuman, err.Error())
	}
	if err := os.WriteFile(genFile, out, 0600); err != nil {
		return errors.Wrapf(errors.ErrHuman, "cannot write genesis file: %s", err)
	}
	logger.Info("App state written to genesis file", "path", genFile)
	return nil
}
