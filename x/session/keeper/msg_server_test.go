package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/paystream-chain/paystream/testutil/keeper"
	"github.com/paystream-chain/paystream/x/session/keeper"
	"github.com/paystream-chain/paystream/x/session/types"
)

func TestMsgServer_FullSessionFlow(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)

	depositor := randomAddr()
	host := randomAddr()
	f.FundAccount(t, depositor, sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(1_000_000))))

	createRes, err := srv.CreateSession(f.Ctx, &types.MsgCreateSession{
		Depositor:            depositor.String(),
		Host:                 host.String(),
		Denom:                "ustream",
		Deposit:              math.NewInt(1_000_000),
		PricePerToken:        math.NewInt(100),
		MaxDurationSeconds:   7200,
		ProofIntervalSeconds: 600,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), createRes.SessionId)

	f.AdvanceTime(10 * time.Second)
	proofRes, err := srv.SubmitProof(f.Ctx, &types.MsgSubmitProof{
		Host:      host.String(),
		SessionId: createRes.SessionId,
		Tokens:    math.NewInt(6_000),
		ProofHash: "checkpoint-1",
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(6_000), proofRes.TokensUsed)

	_, err = srv.CompleteSession(f.Ctx, &types.MsgCompleteSession{
		Caller:    depositor.String(),
		SessionId: createRes.SessionId,
	})
	require.NoError(t, err)

	earningsRes, err := srv.WithdrawEarnings(f.Ctx, &types.MsgWithdrawEarnings{
		Host:  host.String(),
		Denom: "ustream",
	})
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoin("ustream", math.NewInt(540_000)), earningsRes.Amount)
}

func TestMsgServer_RejectsInvalidMessages(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)

	_, err := srv.CreateSession(f.Ctx, &types.MsgCreateSession{
		Depositor: "not-bech32",
	})
	require.Error(t, err)

	_, err = srv.SubmitProof(f.Ctx, &types.MsgSubmitProof{
		Host:      randomAddr().String(),
		SessionId: 0,
		Tokens:    math.NewInt(100),
		ProofHash: "h",
	})
	require.Error(t, err)
}

func TestMsgServer_DepositWithdraw(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)

	owner := randomAddr()
	f.FundAccount(t, owner, sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(100_000))))

	_, err := srv.Deposit(f.Ctx, &types.MsgDeposit{
		Owner:  owner.String(),
		Amount: sdk.NewCoin("ustream", math.NewInt(80_000)),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(80_000), f.Keeper.GetLedgerBalance(f.Ctx, owner, "ustream"))

	_, err = srv.Withdraw(f.Ctx, &types.MsgWithdraw{
		Owner:  owner.String(),
		Amount: sdk.NewCoin("ustream", math.NewInt(30_000)),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50_000), f.Keeper.GetLedgerBalance(f.Ctx, owner, "ustream"))
}

func TestMsgServer_UpdateParams(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)

	updated := types.DefaultParams()
	updated.FeeRateBps = 250

	_, err := srv.UpdateParams(f.Ctx, &types.MsgUpdateParams{
		Authority: randomAddr().String(),
		Params:    updated,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.UpdateParams(f.Ctx, &types.MsgUpdateParams{
		Authority: f.Authority,
		Params:    updated,
	})
	require.NoError(t, err)

	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(250), params.FeeRateBps)
}
