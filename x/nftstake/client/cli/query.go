package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"nftstake/x/nftstake/client/storeview"
	"nftstake/x/nftstake/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the nftstake module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		getParamsCmd(),
		getGateCmd(),
		getStakedCmd(),
		getStakedItemsCmd(),
	)
	return cmd
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			p, err := storeview.New(clientCtx).Params()
			if err != nil {
				return err
			}
			return printJSON(clientCtx, types.QueryParamsResponse{Params: p})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getGateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Shows whether staking is open and rewards are claimable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			g, err := storeview.New(clientCtx).Gate()
			if err != nil {
				return err
			}
			return printJSON(clientCtx, types.QueryGateResponse{Gate: g})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getStakedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staked [owner] [asset-id]",
		Short: "Shows whether owner has a unique asset staked",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			info, err := storeview.New(clientCtx).Staked(args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(clientCtx, types.QueryStakedResponse{Stake: info})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getStakedItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staked-items [owner] [type-id]",
		Short: "Lists the live stake entries owner holds for a fungible type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid type id %q: %w", args[1], err)
			}
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			entries, err := storeview.New(clientCtx).StakedFungible(args[0], typeID)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, types.QueryStakedFungibleResponse{Entries: entries})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func printJSON(clientCtx client.Context, v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(out) + "\n")
}
