// Command zhconv converts Chinese/Japanese text between scripts (simplified,
// traditional, Taiwan/Hong Kong standard, Japanese Shinjitai) using the
// sixteen OpenCC-style configuration tags from pkg/zhconv.
package main

import (
	"os"
)

func main() {
	os.Exit(Run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:], os.Environ()))
}
