package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamingfast/bs58fixed/cmd/bs58fixed/decoder"

	. "github.com/streamingfast/cli"
	"go.uber.org/zap"
)

var TextDecodeCmd = Command(textDecodeRunE,
	"decode <base58>",
	"Validate base58 text of the selected size and print the buffer it encodes",
	ExactArgs(1),
)

func textDecodeRunE(cmd *cobra.Command, args []string) error {
	size, err := getSize()
	if err != nil {
		return err
	}

	outputDecoder, err := decoder.NewDecoder(viper.GetString("text-global-output"))
	if err != nil {
		return fmt.Errorf("output decoder: %w", err)
	}

	text := args[0]
	zlog.Info("decoding text", zap.String("size", size.Name), zap.String("text", text))

	buf, err := size.Validate(text)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Println(outputDecoder.Decode(buf))
	return nil
}
