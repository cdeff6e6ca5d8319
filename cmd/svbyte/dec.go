package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marshallpierce/go-streamvbyte/streamvbyte"
)

func newDecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dec <count>",
		Short: "Read Stream VByte bytes from stdin, write count decoded integers one per line to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse count %q: %w", args[0], err)
			}
			return runDec(count, os.Stdin, os.Stdout, os.Stderr)
		},
	}
}

func runDec(count int, in *os.File, out *os.File, errOut *os.File) error {
	encoded, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	values := make([]uint32, count)
	if _, err := streamvbyte.Decode(encoded, count, values); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	w := out
	for _, x := range values {
		if _, err := fmt.Fprintln(w, x); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
	}
	fmt.Fprintf(errOut, "Decoded %d numbers\n", count)
	return nil
}
