package cli

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/paystream-chain/paystream/x/session/types"
)

const (
	FlagDepositor = "depositor"
	FlagHost      = "host"
)

// GetQueryCmd returns the query commands for the session module
func GetQueryCmd() *cobra.Command {
	sessionQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the session module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	sessionQueryCmd.AddCommand(
		CmdQueryParams(),
		CmdQuerySession(),
		CmdQuerySessions(),
		CmdQuerySessionProofs(),
		CmdQueryBalance(),
		CmdQueryEarnings(),
		CmdQueryTreasuryAccrual(),
	)

	return sessionQueryCmd
}

// CmdQueryParams returns a CLI command handler for querying module parameters
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current session module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Params(cmd.Context(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQuerySession returns a CLI command handler for querying one session
func CmdQuerySession() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session [session-id]",
		Short: "Query a session by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			sessionID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Session(cmd.Context(), &types.QuerySessionRequest{SessionId: sessionID})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQuerySessions returns a CLI command handler for listing sessions
func CmdQuerySessions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List sessions, optionally filtered by depositor or host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			depositor, err := cmd.Flags().GetString(FlagDepositor)
			if err != nil {
				return err
			}
			host, err := cmd.Flags().GetString(FlagHost)
			if err != nil {
				return err
			}
			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Sessions(cmd.Context(), &types.QuerySessionsRequest{
				Depositor:  depositor,
				Host:       host,
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().String(FlagDepositor, "", "Filter sessions by depositor address")
	cmd.Flags().String(FlagHost, "", "Filter sessions by host address")
	flags.AddPaginationFlagsToCmd(cmd, "sessions")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQuerySessionProofs returns a CLI command handler for listing session proofs
func CmdQuerySessionProofs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proofs [session-id]",
		Short: "List the accepted proofs of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			sessionID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.SessionProofs(cmd.Context(), &types.QuerySessionProofsRequest{SessionId: sessionID})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryBalance returns a CLI command handler for querying a ledger balance
func CmdQueryBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [owner] [denom]",
		Short: "Query an owner's prepaid ledger balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Balance(cmd.Context(), &types.QueryBalanceRequest{
				Owner: args[0],
				Denom: args[1],
			})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryEarnings returns a CLI command handler for querying host earnings
func CmdQueryEarnings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "earnings [host] [denom]",
		Short: "Query a host's unwithdrawn earnings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Earnings(cmd.Context(), &types.QueryEarningsRequest{
				Host:  args[0],
				Denom: args[1],
			})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryTreasuryAccrual returns a CLI command handler for querying treasury accrual
func CmdQueryTreasuryAccrual() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury [denom]",
		Short: "Query the protocol treasury accrual for a denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.TreasuryAccrual(cmd.Context(), &types.QueryTreasuryAccrualRequest{Denom: args[0]})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
