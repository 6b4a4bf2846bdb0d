//go:build mage

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package main provides build targets for hkt using Mage.
//
// Usage:
//
//	mage build   Compile hktlaws to bin/
//	mage test    Run all tests with the race detector
//	mage bench   Run benchmarks with allocation counts
//	mage lint    Run go vet and golangci-lint
//	mage laws    Build hktlaws and check every adapter
//	mage clean   Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "hktlaws"
	binaryDir  = "bin"
	cmdDir     = "./cmd/hktlaws"
)

// Build compiles the hktlaws binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Bench runs the benchmarks with allocation counts.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", "./...")
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	if err := sh.RunV(binGo, "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Laws builds hktlaws and checks every built-in adapter.
func Laws() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "run")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
