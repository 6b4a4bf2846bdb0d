// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command hktlaws checks the adapters shipped with hkt against the laws
// of their capabilities.
//
// Usage:
//
//	hktlaws run [--seed N] [--samples N] [--adapters option,slice] [--config hktlaws.yaml]
//	hktlaws version
//
// Settings are read from flags, then HKTLAWS_* environment variables,
// then hktlaws.yaml in the working directory. The exit status is 1 when
// any law fails.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
