// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"code.hybscloud.com/hkt/laws"
)

// errLawsFailed is returned when at least one check finds a violation.
var errLawsFailed = errors.New("one or more laws failed")

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the law checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}
	flags := cmd.Flags()
	flags.Uint64(cfgKeySeed, 0, "seed for the random sample stream")
	flags.Int(cfgKeySamples, 0, "samples drawn per check")
	flags.StringSlice(cfgKeyAdapters, nil, "adapters to check (default: all)")
	for _, key := range []string{cfgKeySeed, cfgKeySamples, cfgKeyAdapters} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	cfg, err := lawsConfig(a.v)
	if err != nil {
		return err
	}
	checks, err := laws.Select(laws.Builtin(), adapterNames(a.v.GetStringSlice(cfgKeyAdapters)))
	if err != nil {
		return err
	}

	a.log.Info("checking laws", "seed", cfg.Seed, "samples", cfg.Samples, "checks", len(checks))

	failed := 0
	out := cmd.OutOrStdout()
	for _, o := range laws.Suite(cfg, checks) {
		if o.Passed() {
			fmt.Fprintf(out, "PASS %s %s\n", o.Adapter, o.Law)
			continue
		}
		failed++
		fmt.Fprintf(out, "FAIL %s %s: %v\n", o.Adapter, o.Law, o.Err)
		a.log.Error("law violated", "adapter", o.Adapter, "law", o.Law, "err", o.Err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks: %w", failed, len(checks), errLawsFailed)
	}
	a.log.Info("all laws hold", "checks", len(checks))
	return nil
}

// adapterNames splits comma-separated entries, as given in HKTLAWS_ADAPTERS,
// and drops empty names.
func adapterNames(raw []string) []string {
	var names []string
	for _, r := range raw {
		for n := range strings.SplitSeq(r, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}
	return names
}
