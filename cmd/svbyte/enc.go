package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marshallpierce/go-streamvbyte/streamvbyte"
)

func newEncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enc",
		Short: "Read integers one per line from stdin, write Stream VByte bytes to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnc(os.Stdin, os.Stdout, os.Stderr)
		},
	}
}

func runEnc(in *os.File, out *os.File, errOut *os.File) error {
	var values []uint32
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		x, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return fmt.Errorf("parse %q: %w", line, err)
		}
		values = append(values, uint32(x))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	buf := make([]byte, streamvbyte.MaxEncodedLen(len(values)))
	n, err := streamvbyte.Encode(values, buf)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if _, err := out.Write(buf[:n]); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	fmt.Fprintf(errOut, "Encoded %d numbers\n", len(values))
	return nil
}
