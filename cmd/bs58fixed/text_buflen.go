package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/streamingfast/bs58fixed"

	. "github.com/streamingfast/cli"
)

var TextBufLenCmd = Command(textBufLenRunE,
	"buflen <max-str-len> [<max-str-len>...]",
	"Print the buffer length supported by base58 text of at most the given length",
)

func textBufLenRunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one max string length is required")
	}

	for _, arg := range args {
		maxStrLen, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid max string length %q: %w", arg, err)
		}

		if maxStrLen < 0 || maxStrLen > bs58fixed.MaxStrLenLimit {
			return fmt.Errorf("max string length %d out of supported range [0, %d]", maxStrLen, bs58fixed.MaxStrLenLimit)
		}

		fmt.Printf("%d\t->\t%d\n", maxStrLen, bs58fixed.BufLen(maxStrLen))
	}

	return nil
}
