package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) CreateSession(ctx context.Context, msg *types.MsgCreateSession) (*types.MsgCreateSessionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("depositor: %v", err)
	}
	host, err := sdk.AccAddressFromBech32(msg.Host)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("host: %v", err)
	}

	id, err := k.Keeper.CreateSession(ctx, CreateSessionParams{
		Depositor:            depositor,
		Host:                 host,
		Denom:                msg.Denom,
		Deposit:              msg.Deposit,
		PricePerToken:        msg.PricePerToken,
		MaxDurationSeconds:   msg.MaxDurationSeconds,
		ProofIntervalSeconds: msg.ProofIntervalSeconds,
		ModelId:              msg.ModelId,
		FromBalance:          msg.FromBalance,
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateSessionResponse{SessionId: id}, nil
}

func (k msgServer) SubmitProof(ctx context.Context, msg *types.MsgSubmitProof) (*types.MsgSubmitProofResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	host, err := sdk.AccAddressFromBech32(msg.Host)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("host: %v", err)
	}

	used, err := k.Keeper.SubmitProof(ctx, host, msg.SessionId, msg.Tokens, types.ProofCheckpoint{
		Hash: msg.ProofHash,
		Data: msg.ProofData,
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSubmitProofResponse{TokensUsed: used}, nil
}

func (k msgServer) CompleteSession(ctx context.Context, msg *types.MsgCompleteSession) (*types.MsgCompleteSessionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	if err := k.Keeper.CompleteSession(ctx, caller, msg.SessionId, msg.AuditRecord); err != nil {
		return nil, err
	}
	return &types.MsgCompleteSessionResponse{}, nil
}

func (k msgServer) TimeoutSession(ctx context.Context, msg *types.MsgTimeoutSession) (*types.MsgTimeoutSessionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	if err := k.Keeper.TimeoutSession(ctx, caller, msg.SessionId); err != nil {
		return nil, err
	}
	return &types.MsgTimeoutSessionResponse{}, nil
}

func (k msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("owner: %v", err)
	}
	if err := k.Keeper.Deposit(ctx, owner, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{}, nil
}

func (k msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("owner: %v", err)
	}
	if err := k.Keeper.Withdraw(ctx, owner, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{}, nil
}

func (k msgServer) WithdrawEarnings(ctx context.Context, msg *types.MsgWithdrawEarnings) (*types.MsgWithdrawEarningsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	host, err := sdk.AccAddressFromBech32(msg.Host)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("host: %v", err)
	}
	amount, err := k.Keeper.WithdrawEarnings(ctx, host, msg.Denom)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawEarningsResponse{Amount: sdk.NewCoin(msg.Denom, amount)}, nil
}

func (k msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != k.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.GetAuthority(), msg.Authority)
	}
	if err := k.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
