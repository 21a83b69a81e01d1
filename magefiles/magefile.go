//go:build mage

// Package main provides build targets for the stockpile project using Mage.
//
// Usage:
//
//	mage build    Compile stockpile binary to bin/
//	mage test     Run all tests
//	mage cover    Run tests with a coverage summary
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
//	mage install  Install stockpile to GOPATH/bin
//	mage demo     Build and run the demonstration scenario
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "stockpile"
	binaryDir  = "bin"
	cmdDir     = "./cmd/stockpile"
	coverFile  = "coverage.out"
)

// Build compiles the stockpile binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs all tests with a coverage profile and prints per-function totals.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile="+coverFile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+coverFile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := sh.Rm(coverFile); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Demo builds the binary and runs the demonstration scenario in a temp dir.
func Demo() error {
	mg.Deps(Build)
	dir, err := os.MkdirTemp("", "stockpile-demo-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	bin, err := filepath.Abs(filepath.Join(binaryDir, binaryName))
	if err != nil {
		return err
	}
	return sh.RunV(bin,
		"--config-dir", filepath.Join(dir, "config"),
		"--data-file", filepath.Join(dir, "inventory.json"),
		"demo")
}
