package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/paystream-chain/paystream/testutil/keeper"
	"github.com/paystream-chain/paystream/x/session/keeper"
)

func TestInvariants_HoldThroughLifecycle(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	invariant := keeper.AllInvariants(*f.Keeper)

	check := func(stage string) {
		msg, broken := invariant(f.Ctx)
		require.False(t, broken, "invariant broken at %s: %s", stage, msg)
	}

	check("empty state")

	id, depositor, host := openSession(t, &f, 1_000_000, 100)
	check("after session creation")

	submitProof(t, &f, host, id, 6_000, 10*time.Second)
	check("after proof")

	owner := randomAddr()
	f.FundAccount(t, owner, sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(250_000))))
	require.NoError(t, f.Keeper.Deposit(f.Ctx, owner, sdk.NewCoin("ustream", math.NewInt(250_000))))
	check("after ledger deposit")

	require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, ""))
	check("after settlement")

	_, err := f.Keeper.WithdrawEarnings(f.Ctx, host, "ustream")
	require.NoError(t, err)
	check("after earnings withdrawal")

	require.NoError(t, f.Keeper.Withdraw(f.Ctx, owner, sdk.NewCoin("ustream", math.NewInt(100_000))))
	check("after ledger withdrawal")
}

func TestModuleBalanceInvariant_DetectsDeficit(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	openSession(t, &f, 1_000_000, 100)

	// Drain the module account behind the books' back.
	moduleAddr := f.AccountKeeper.GetModuleAddress("session")
	drain := randomAddr()
	require.NoError(t, f.BankKeeper.SendCoins(f.Ctx, moduleAddr, drain,
		sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(400_000)))))

	msg, broken := keeper.ModuleBalanceInvariant(*f.Keeper)(f.Ctx)
	require.True(t, broken, msg)
}

func TestModuleBalanceInvariant_ToleratesSurplus(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	openSession(t, &f, 1_000_000, 100)

	moduleAddr := f.AccountKeeper.GetModuleAddress("session")
	donor := randomAddr()
	f.FundAccount(t, donor, sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(5_000))))
	require.NoError(t, f.BankKeeper.SendCoins(f.Ctx, donor, moduleAddr,
		sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(5_000)))))

	msg, broken := keeper.ModuleBalanceInvariant(*f.Keeper)(f.Ctx)
	require.False(t, broken, msg)
}
