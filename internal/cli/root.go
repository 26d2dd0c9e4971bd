package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. This is
// typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOptions holds the persistent flag values shared by all subcommands.
type rootOptions struct {
	verbose    bool
	network    string
	node       string
	configPath string
}

// Execute runs the alliancectl CLI and returns an error if any command
// fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	options := &rootOptions{}

	root := &cobra.Command{
		Use:          "alliancectl",
		Short:        "alliancectl queries the Alliance module and builds contract messages",
		Long:         `alliancectl is a CLI for Alliance-enabled chains: it queries the module's state through an LCD endpoint and builds validated custom-message JSON for CosmWasm contract payloads.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if options.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("alliancectl %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&options.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&options.network, "network", "", "chain network (mainnet or testnet)")
	root.PersistentFlags().StringVar(&options.node, "node", "", "LCD base URL (overrides the network default)")
	root.PersistentFlags().StringVar(&options.configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newQueryCmd(options))
	root.AddCommand(newMsgCmd())

	return root
}
