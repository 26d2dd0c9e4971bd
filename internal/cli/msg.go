package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/terra-money/alliance-sdk-go/pkg/alliance"
)

func newMsgCmd() *cobra.Command {
	msg := &cobra.Command{
		Use:   "msg",
		Short: "Build validated alliance custom-message JSON for contract payloads",
	}

	var (
		delegator    string
		validator    string
		srcValidator string
		dstValidator string
		amount       string
		denom        string
	)

	addStakeFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&delegator, "delegator", "", "delegator account address")
		cmd.Flags().StringVar(&validator, "validator", "", "validator operator address")
		cmd.Flags().StringVar(&amount, "amount", "", "coin to stake, e.g. 1000000uluna")
		_ = cmd.MarkFlagRequired("delegator")
		_ = cmd.MarkFlagRequired("validator")
		_ = cmd.MarkFlagRequired("amount")
	}

	buildStakeMsg := func(build func(string, string, alliance.Coin) alliance.Msg) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			coin, err := alliance.ParseCoin(amount)
			if err != nil {
				return err
			}
			return printMsg(cmd, build(delegator, validator, coin))
		}
	}

	delegate := &cobra.Command{
		Use:   "delegate",
		Short: "Build a delegate message",
		Args:  cobra.NoArgs,
		RunE:  buildStakeMsg(alliance.NewDelegateMsg),
	}
	addStakeFlags(delegate)

	undelegate := &cobra.Command{
		Use:   "undelegate",
		Short: "Build an undelegate message",
		Args:  cobra.NoArgs,
		RunE:  buildStakeMsg(alliance.NewUndelegateMsg),
	}
	addStakeFlags(undelegate)

	redelegate := &cobra.Command{
		Use:   "redelegate",
		Short: "Build a redelegate message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coin, err := alliance.ParseCoin(amount)
			if err != nil {
				return err
			}
			return printMsg(cmd, alliance.NewRedelegateMsg(delegator, srcValidator, dstValidator, coin))
		},
	}
	redelegate.Flags().StringVar(&delegator, "delegator", "", "delegator account address")
	redelegate.Flags().StringVar(&srcValidator, "src-validator", "", "source validator operator address")
	redelegate.Flags().StringVar(&dstValidator, "dst-validator", "", "destination validator operator address")
	redelegate.Flags().StringVar(&amount, "amount", "", "coin to move, e.g. 1000000uluna")
	_ = redelegate.MarkFlagRequired("delegator")
	_ = redelegate.MarkFlagRequired("src-validator")
	_ = redelegate.MarkFlagRequired("dst-validator")
	_ = redelegate.MarkFlagRequired("amount")

	claimRewards := &cobra.Command{
		Use:   "claim-rewards",
		Short: "Build a claim-delegation-rewards message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printMsg(cmd, alliance.NewClaimDelegationRewardsMsg(delegator, validator, denom))
		},
	}
	claimRewards.Flags().StringVar(&delegator, "delegator", "", "delegator account address")
	claimRewards.Flags().StringVar(&validator, "validator", "", "validator operator address")
	claimRewards.Flags().StringVar(&denom, "denom", "", "alliance asset denom")
	_ = claimRewards.MarkFlagRequired("delegator")
	_ = claimRewards.MarkFlagRequired("validator")
	_ = claimRewards.MarkFlagRequired("denom")

	msg.AddCommand(delegate, undelegate, redelegate, claimRewards)
	return msg
}

func printMsg(cmd *cobra.Command, msg alliance.Msg) error {
	payload, err := alliance.EncodeMsg(msg)
	if err != nil {
		return err
	}

	var pretty any
	if err := json.Unmarshal(payload, &pretty); err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), pretty)
}
