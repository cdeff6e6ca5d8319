// Command svbytegen regenerates streamvbyte's 256-entry shuffle-mask table.
//
// Usage:
//
//	svbytegen -output streamvbyte/table.go
//	svbytegen -verify streamvbyte/table.go
//
// With -verify, the generator recomputes the table and diffs it against
// the file on disk instead of writing, exiting nonzero on any mismatch —
// this is how the table ships as a checked-in source artifact while still
// staying provably in sync with the algorithm that defines it.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "", "path to write the generated table to")
	verifyFile = flag.String("verify", "", "path to a generated table file to verify instead of writing")
	pkgName    = flag.String("pkg", "streamvbyte", "package name for the generated file")
)

func main() {
	flag.Parse()

	if *outputFile == "" && *verifyFile == "" {
		fmt.Fprintf(os.Stderr, "Error: one of -output or -verify is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *outputFile != "" && *verifyFile != "" {
		fmt.Fprintf(os.Stderr, "Error: -output and -verify are mutually exclusive\n")
		os.Exit(1)
	}

	gen := &Generator{PackageName: *pkgName}

	if *verifyFile != "" {
		ok, err := gen.Verify(*verifyFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "%s is out of date with the generator\n", *verifyFile)
			os.Exit(1)
		}
		fmt.Printf("%s matches the generated table\n", *verifyFile)
		return
	}

	if err := gen.WriteFile(*outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outputFile)
}
