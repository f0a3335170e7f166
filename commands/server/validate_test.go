package server

import (
	"os"
	"path/filepath"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireOwner fails unless the "collect" option names an owner.
type requireOwner struct{}

func (requireOwner) FromGenesis(opts weave.Options, _ weave.GenesisParams, _ weave.KVStore) error {
	var conf struct {
		Owner string `json:"owner"`
	}
	if err := opts.ReadOptions("collect", &conf); err != nil {
		return err
	}
	if conf.Owner == "" {
		return errors.Wrap(errors.ErrEmpty, "owner")
	}
	return nil
}

func TestValidateGenesisCases(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}
	valid := write("valid.json", `{"app_state": {"collect": {"owner": "alice"}}}`)
	invalid := write("invalid.json", `{"app_state": {"collect": {}}}`)
	garbage := write("garbage.json", `{"app_state": `)

	cases := map[string]struct {
		paths   []string
		wantErr *errors.Error
	}{
		"no files":        {},
		"valid state":     {paths: []string{valid}},
		"initializer err": {paths: []string{valid, invalid}, wantErr: errors.ErrEmpty},
		"malformed json":  {paths: []string{garbage}, wantErr: errors.ErrInput},
		"missing file":    {paths: []string{filepath.Join(dir, "nope.json")}, wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := ValidateGenesis(requireOwner{}, tc.paths)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, tc.wantErr.Is(err), "got %+v", err)
		})
	}
}
