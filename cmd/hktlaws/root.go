// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	configFile string
	v          *viper.Viper
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "hktlaws",
		Short: "Check hkt adapters against their laws",
		Long: `hktlaws draws seeded random containers for every adapter shipped
with hkt and checks the functor, applicative, monad, foldable and
traversable laws on them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			return loadConfig(a.v, a.configFile)
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./hktlaws.yaml)")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}
