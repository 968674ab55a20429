package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/streamingfast/logging"

	. "github.com/streamingfast/cli"
)

// Commit sha1 value, injected via go build `ldflags` at build time
var commit = ""

// Version value, injected via go build `ldflags` at build time
var version = "dev"

// Date value, injected via go build `ldflags` at build time
var date = ""

var zlog, tracer = logging.RootLogger("bs58fixed", "github.com/streamingfast/bs58fixed/cmd/bs58fixed")

func init() {
	logging.InstantiateLoggers()
}

func main() {
	Run("bs58fixed", "Fixed-size base58 codec",
		ConfigureViper("BS58FIXED"),
		ConfigureVersion(),

		Group("text", "Encode, decode and validate fixed-size base58 text",
			TextEncodeCmd,
			TextDecodeCmd,
			TextValidateCmd,
			TextBufLenCmd,

			PersistentFlags(
				func(flags *pflag.FlagSet) {
					flags.String("input", "hex", "encode input scheme. Supported schemes: 'hex', 'ascii', 'base58'")
					flags.String("output", "hex", "decode output scheme. Supported schemes: 'hex', '0xhex', 'ascii', 'base58'")
				},
			),
		),

		PersistentFlags(
			func(flags *pflag.FlagSet) {
				flags.String("size", "pubkey", "name of the fixed size to work with. Supported sizes: 'u64' (8 bytes), 'hash16' (16 bytes), 'pubkey' (32 bytes), 'signature' (64 bytes)")
			},
		),
		AfterAllHook(func(cmd *cobra.Command) {
			cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
				return nil
			}
		}),
	)
}

// ConfigureVersion sets the `--version` output from the values injected at build time.
func ConfigureVersion() CommandOption {
	return CommandOptionFunc(func(cmd *cobra.Command) {
		cmd.Version = versionString(version, commit, date)
	})
}

func versionString(version, commit, date string) string {
	var labels []string
	if len(commit) >= 7 {
		labels = append(labels, "Commit "+commit[:7])
	}
	if date != "" {
		labels = append(labels, "Built "+date)
	}

	if len(labels) == 0 {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, strings.Join(labels, ", "))
}
