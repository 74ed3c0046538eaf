// Command mkarchive writes the HDF5 fixture archive used by the array I/O
// test suites.
//
// Run without arguments it creates archive.h5 in the working directory,
// replacing any existing file:
//
//	mkarchive
//
// Subcommands check and describe the result:
//
//	mkarchive verify [file]      compare a file with the fixture table
//	mkarchive inspect [file]     list groups and datasets
//	mkarchive manifest           print the fixture table as YAML
//	mkarchive hexdump [flags] file
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}
