package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	. "github.com/streamingfast/cli"
)

var TextValidateCmd = Command(textValidateRunE,
	"validate <base58> [<base58>...]",
	"Check that every argument is base58 text of the selected size",
)

func textValidateRunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one base58 text is required")
	}

	size, err := getSize()
	if err != nil {
		return err
	}

	var errs error
	for _, text := range args {
		if _, err := size.Validate(text); err != nil {
			fmt.Printf("INVALID\t%s\t%s\n", text, err)
			errs = multierr.Append(errs, fmt.Errorf("%q: %w", text, err))
			continue
		}
		fmt.Printf("VALID\t%s\n", text)
	}

	invalid := len(multierr.Errors(errs))
	zlog.Info("validated texts", zap.String("size", size.Name), zap.Int("count", len(args)), zap.Int("invalid", invalid))

	fmt.Println("")
	fmt.Printf("Validated %d texts, %d invalid\n", len(args), invalid)

	return errs
}
