package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamingfast/bs58fixed/cmd/bs58fixed/formatter"

	. "github.com/streamingfast/cli"
	"go.uber.org/zap"
)

var TextEncodeCmd = Command(textEncodeRunE,
	"encode <data>",
	"Encode a buffer of the selected size into base58 text",
	ExactArgs(1),
)

func textEncodeRunE(cmd *cobra.Command, args []string) error {
	size, err := getSize()
	if err != nil {
		return err
	}

	inputDecoder, err := formatter.NewDecoder(viper.GetString("text-global-input"))
	if err != nil {
		return fmt.Errorf("input decoder: %w", err)
	}

	data, err := inputDecoder.Decode(args[0])
	if err != nil {
		return fmt.Errorf("decode input %q: %w", args[0], err)
	}

	zlog.Info("encoding buffer", zap.String("size", size.Name), zap.Int("length", len(data)))

	text, err := size.Encode(data)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	fmt.Println(text)
	return nil
}
