// Command svbyte is a line-oriented demo for the streamvbyte codec.
//
// Usage:
//
//	svbyte enc < numbers.txt > encoded.bin
//	svbyte dec 5000 < encoded.bin > numbers.txt
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "svbyte",
		Short: "Encode or decode a Stream VByte integer sequence",
	}
	root.AddCommand(newEncCmd())
	root.AddCommand(newDecCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
