// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunSelectedAdapter(t *testing.T) {
	out, logs, err := execute(t, "run", "--samples", "5", "--adapters", "option")
	require.NoError(t, err)
	assert.Equal(t,
		"PASS option functor\nPASS option applicative\nPASS option monad\nPASS option foldable\nPASS option traversable\n",
		out)
	assert.Contains(t, logs, "samples=5")
	assert.Contains(t, logs, "all laws hold")
}

func TestRunAll(t *testing.T) {
	out, _, err := execute(t, "run", "--samples", "3", "--seed", "9")
	require.NoError(t, err)
	assert.NotContains(t, out, "FAIL")
	for _, name := range []string{"option", "slice", "list", "result", "cont"} {
		assert.Contains(t, out, "PASS "+name+" monad")
	}
}

func TestRunUnknownAdapter(t *testing.T) {
	out, _, err := execute(t, "run", "--adapters", "tree")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown adapter")
	assert.Empty(t, out)
}

func TestRunRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "run", "extra")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hktlaws "+version+"\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laws.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\nsamples: 4\nadapters:\n  - cont\n"), 0o644))

	out, logs, err := execute(t, "--config", path, "run")
	require.NoError(t, err)
	assert.Equal(t, "PASS cont functor\nPASS cont applicative\nPASS cont monad\n", out)
	assert.Contains(t, logs, "seed=5")
	assert.Contains(t, logs, "samples=4")
}

func TestConfigFileMissing(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestFlagOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laws.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 4\nadapters: [cont]\n"), 0o644))

	out, _, err := execute(t, "--config", path, "run", "--adapters", "result")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "PASS result functor\n"))
	assert.NotContains(t, out, "cont")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("HKTLAWS_SAMPLES", "6")
	t.Setenv("HKTLAWS_ADAPTERS", "slice,list")

	out, logs, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, logs, "samples=6")
	assert.Contains(t, out, "PASS slice traversable")
	assert.Contains(t, out, "PASS list traversable")
	assert.NotContains(t, out, "option")
}

func TestLawsConfigRejectsNegativeSamples(t *testing.T) {
	v := viper.New()
	require.NoError(t, loadConfig(v, ""))
	v.Set(cfgKeySamples, -1)
	_, err := lawsConfig(v)
	assert.ErrorContains(t, err, "must not be negative")
}

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, loadConfig(v, ""))
	c, err := lawsConfig(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, 200, c.Samples)
}

func TestAdapterNames(t *testing.T) {
	assert.Equal(t, []string{"option", "slice", "list"}, adapterNames([]string{"option, slice", "", "list"}))
	assert.Nil(t, adapterNames(nil))
}
