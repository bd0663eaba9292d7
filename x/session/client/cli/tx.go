package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

const (
	FlagFromBalance = "from-balance"
	FlagModel       = "model"
	FlagAuditRecord = "audit-record"
	FlagProofData   = "proof-data"
)

// GetTxCmd returns the transaction commands for the session module
func GetTxCmd() *cobra.Command {
	sessionTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Session transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	sessionTxCmd.AddCommand(
		CmdCreateSession(),
		CmdSubmitProof(),
		CmdCompleteSession(),
		CmdTimeoutSession(),
		CmdDeposit(),
		CmdWithdraw(),
		CmdWithdrawEarnings(),
	)

	return sessionTxCmd
}

// CmdCreateSession returns a CLI command handler for opening a metered session
func CmdCreateSession() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-session [host] [deposit] [price-per-token] [max-duration-seconds] [proof-interval-seconds]",
		Short: "Open a metered session against a host, locking the deposit",
		Long: `Open a metered session against a host, locking the deposit coin up front.

Example:
  $ paystreamd tx session create-session paystream1host... 1000000ustream 100 3600 60 \
    --model llama-70b \
    --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			deposit, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return fmt.Errorf("invalid deposit: %w", err)
			}
			price, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid price per token: %s", args[2])
			}
			maxDuration, err := cast.ToInt64E(args[3])
			if err != nil {
				return fmt.Errorf("invalid max duration: %w", err)
			}
			proofInterval, err := cast.ToInt64E(args[4])
			if err != nil {
				return fmt.Errorf("invalid proof interval: %w", err)
			}
			fromBalance, err := cmd.Flags().GetBool(FlagFromBalance)
			if err != nil {
				return err
			}
			modelID, err := cmd.Flags().GetString(FlagModel)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateSession{
				Depositor:            clientCtx.GetFromAddress().String(),
				Host:                 args[0],
				Denom:                deposit.Denom,
				Deposit:              deposit.Amount,
				PricePerToken:        price,
				MaxDurationSeconds:   maxDuration,
				ProofIntervalSeconds: proofInterval,
				ModelId:              modelID,
				FromBalance:          fromBalance,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagFromBalance, false, "Fund the session from the prepaid ledger balance")
	cmd.Flags().String(FlagModel, "", "Model identifier used for host price discovery")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitProof returns a CLI command handler for submitting a usage proof
func CmdSubmitProof() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-proof [session-id] [tokens] [proof-hash]",
		Short: "Submit a proof-of-work checkpoint for a session (host only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}
			tokens, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid token count: %s", args[1])
			}
			proofData, err := cmd.Flags().GetBytesHex(FlagProofData)
			if err != nil {
				return err
			}

			msg := &types.MsgSubmitProof{
				Host:      clientCtx.GetFromAddress().String(),
				SessionId: sessionID,
				Tokens:    tokens,
				ProofHash: args[2],
				ProofData: proofData,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().BytesHex(FlagProofData, nil, "Hex-encoded opaque proof payload")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCompleteSession returns a CLI command handler for completing a session
func CmdCompleteSession() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete-session [session-id]",
		Short: "Complete an active session and settle it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}
			auditRecord, err := cmd.Flags().GetString(FlagAuditRecord)
			if err != nil {
				return err
			}

			msg := &types.MsgCompleteSession{
				Caller:      clientCtx.GetFromAddress().String(),
				SessionId:   sessionID,
				AuditRecord: auditRecord,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagAuditRecord, "", "Opaque audit record stored with the settlement")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTimeoutSession returns a CLI command handler for timing out a session
func CmdTimeoutSession() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeout-session [session-id]",
		Short: "Force an expired session into timeout settlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}

			msg := &types.MsgTimeoutSession{
				Caller:    clientCtx.GetFromAddress().String(),
				SessionId: sessionID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns a CLI command handler for topping up the prepaid ledger
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [amount]",
		Short: "Deposit coins into the prepaid session ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			msg := &types.MsgDeposit{
				Owner:  clientCtx.GetFromAddress().String(),
				Amount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a CLI command handler for withdrawing free ledger balance
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Withdraw free balance from the prepaid session ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			msg := &types.MsgWithdraw{
				Owner:  clientCtx.GetFromAddress().String(),
				Amount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawEarnings returns a CLI command handler for withdrawing host earnings
func CmdWithdrawEarnings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-earnings [denom]",
		Short: "Withdraw accumulated host earnings in the given denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawEarnings{
				Host:  clientCtx.GetFromAddress().String(),
				Denom: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
