package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/terra-money/alliance-sdk-go/pkg/alliance"
	"github.com/terra-money/alliance-sdk-go/pkg/lcd"
)

func newQueryCmd(options *rootOptions) *cobra.Command {
	query := &cobra.Command{
		Use:   "query",
		Short: "Query the Alliance module through an LCD endpoint",
	}

	var limit uint64
	var reverse bool
	addPageFlags := func(cmd *cobra.Command) {
		cmd.Flags().Uint64Var(&limit, "limit", 0, "page size (server default when 0)")
		cmd.Flags().BoolVar(&reverse, "reverse", false, "list in reverse order")
	}
	pageRequest := func() *alliance.PageRequest {
		if limit == 0 && !reverse {
			return nil
		}
		return &alliance.PageRequest{Limit: limit, Reverse: reverse}
	}

	params := &cobra.Command{
		Use:   "params",
		Short: "Show the Alliance module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, options, func(ctx context.Context, client *lcd.Client) (any, error) {
				return client.Params(ctx)
			})
		},
	}

	allianceCmd := &cobra.Command{
		Use:   "alliance <denom>",
		Short: "Show one alliance asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, options, func(ctx context.Context, client *lcd.Client) (any, error) {
				return client.Alliance(ctx, args[0])
			})
		},
	}

	alliances := &cobra.Command{
		Use:   "alliances",
		Short: "List alliance assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, options, func(ctx context.Context, client *lcd.Client) (any, error) {
				return client.Alliances(ctx, pageRequest())
			})
		},
	}
	addPageFlags(alliances)

	delegations := &cobra.Command{
		Use:   "delegations [delegator] [validator]",
		Short: "List alliance delegations, optionally scoped to one delegator/validator pair",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, options, func(ctx context.Context, client *lcd.Client) (any, error) {
				switch len(args) {
				case 2:
					return client.AlliancesDelegationByValidator(ctx, args[0], args[1], pageRequest())
				case 0:
					return client.AlliancesDelegations(ctx, pageRequest())
				default:
					return nil, fmt.Errorf("provide both a delegator and a validator, or neither")
				}
			})
		},
	}
	addPageFlags(delegations)

	delegation := &cobra.Command{
		Use:   "delegation <delegator> <validator> <denom>",
		Short: "Show one alliance delegation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, options, func(ctx context.Context, client *lcd.Client) (any, error) {
				return client.Delegation(ctx, args[0], args[1], args[2])
			})
		},
	}

	rewards := &cobra.Command{
		Use:   "rewards <delegator> <validator> <denom>",
		Short: "Show the pending rewards of one alliance delegation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, options, func(ctx context.Context, client *lcd.Client) (any, error) {
				return client.DelegationRewards(ctx, args[0], args[1], args[2])
			})
		},
	}

	validator := &cobra.Command{
		Use:   "validator <validator>",
		Short: "Show one alliance validator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, options, func(ctx context.Context, client *lcd.Client) (any, error) {
				return client.Validator(ctx, args[0])
			})
		},
	}

	validators := &cobra.Command{
		Use:   "validators",
		Short: "List alliance validators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, options, func(ctx context.Context, client *lcd.Client) (any, error) {
				return client.Validators(ctx, pageRequest())
			})
		},
	}
	addPageFlags(validators)

	query.AddCommand(params, allianceCmd, alliances, delegations, delegation, rewards, validator, validators)
	return query
}

func runQuery(
	cmd *cobra.Command,
	options *rootOptions,
	execute func(ctx context.Context, client *lcd.Client) (any, error),
) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	settings, err := resolveNodeSettings(options)
	if err != nil {
		return err
	}
	logger.Debug("querying LCD node", "network", settings.Network, "node", settings.LCDBaseURL)

	client, err := lcd.NewClient(lcd.Config{
		Network:           settings.Network,
		BaseURL:           settings.LCDBaseURL,
		RequestsPerSecond: settings.RequestsPerSecond,
	})
	if err != nil {
		return err
	}

	response, err := execute(ctx, client)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), response)
}

func printJSON(w io.Writer, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
