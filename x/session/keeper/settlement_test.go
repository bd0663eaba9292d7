package keeper_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	testkeeper "github.com/paystream-chain/paystream/testutil/keeper"
	"github.com/paystream-chain/paystream/x/session/keeper"
	"github.com/paystream-chain/paystream/x/session/types"
)

// hookedBank wraps the real bank keeper so tests can fail or observe the
// refund leg of a settlement.
type hookedBank struct {
	bankkeeper.BaseKeeper
	sendErr error
	onSend  func()
}

func (b *hookedBank) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if b.onSend != nil {
		b.onSend()
	}
	if b.sendErr != nil {
		return b.sendErr
	}
	return b.BaseKeeper.SendCoinsFromModuleToAccount(ctx, senderModule, recipientAddr, amt)
}

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name       string
		tokensUsed int64
		price      int64
		deposit    int64
		feeBps     uint64
		gross      int64
		fee        int64
		net        int64
		refund     int64
	}{
		{
			name:       "metered usage with 10 percent fee",
			tokensUsed: 6_000,
			price:      100,
			deposit:    1_000_000,
			feeBps:     1000,
			gross:      600_000,
			fee:        60_000,
			net:        540_000,
			refund:     400_000,
		},
		{
			name:       "zero usage refunds everything",
			tokensUsed: 0,
			price:      100,
			deposit:    1_000_000,
			feeBps:     1000,
			gross:      0,
			fee:        0,
			net:        0,
			refund:     1_000_000,
		},
		{
			name:       "full usage leaves no refund",
			tokensUsed: 10_000,
			price:      100,
			deposit:    1_000_000,
			feeBps:     1000,
			gross:      1_000_000,
			fee:        100_000,
			net:        900_000,
			refund:     0,
		},
		{
			name:       "zero fee rate",
			tokensUsed: 500,
			price:      3,
			deposit:    10_000,
			feeBps:     0,
			gross:      1_500,
			fee:        0,
			net:        1_500,
			refund:     8_500,
		},
		{
			name:       "fee rounds down in host favor",
			tokensUsed: 333,
			price:      1,
			deposit:    10_000,
			feeBps:     1000,
			gross:      333,
			fee:        33,
			net:        300,
			refund:     9_667,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := keeper.ComputeSettlement(
				math.NewInt(tc.tokensUsed), math.NewInt(tc.price), math.NewInt(tc.deposit), tc.feeBps,
			)
			require.Equal(t, tc.gross, result.GrossPayment.Int64())
			require.Equal(t, tc.fee, result.TreasuryFee.Int64())
			require.Equal(t, tc.net, result.NetHostPayment.Int64())
			require.Equal(t, tc.refund, result.Refund.Int64())
		})
	}
}

// Every settlement conserves the deposit and never produces a negative
// leg, for any usage the deposit can fund and any valid fee rate.
func TestComputeSettlement_Conservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := rapid.Int64Range(1, 1_000_000).Draw(t, "price")
		deposit := rapid.Int64Range(1, 1_000_000_000_000).Draw(t, "deposit")
		maxTokens := deposit / price
		tokens := rapid.Int64Range(0, maxTokens).Draw(t, "tokens")
		feeBps := rapid.Uint64Range(0, types.FeeDenominator-1).Draw(t, "feeBps")

		result := keeper.ComputeSettlement(
			math.NewInt(tokens), math.NewInt(price), math.NewInt(deposit), feeBps,
		)

		require.False(t, result.GrossPayment.IsNegative())
		require.False(t, result.TreasuryFee.IsNegative())
		require.False(t, result.NetHostPayment.IsNegative())
		require.False(t, result.Refund.IsNegative())
		require.Equal(t, result.GrossPayment, result.NetHostPayment.Add(result.TreasuryFee))
		require.Equal(t, math.NewInt(deposit), result.GrossPayment.Add(result.Refund))
	})
}

func TestSettlement_CompletedSession(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	id, depositor, host := openSession(t, &f, 1_000_000, 100)

	submitProof(t, &f, host, id, 6_000, 10*time.Second)
	require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, "usage log"))

	session, err := f.Keeper.GetSession(f.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.StatusCompleted, session.Status)
	require.Equal(t, math.NewInt(540_000), session.WithdrawnByHost)
	require.Equal(t, math.NewInt(400_000), session.RefundedToUser)

	// Host payment is a ledger credit, not an immediate transfer.
	require.Equal(t, math.NewInt(540_000), f.Keeper.GetEarnings(f.Ctx, host, "ustream"))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, host, "ustream").IsZero())

	require.Equal(t, math.NewInt(60_000), f.Keeper.GetTreasuryAccrual(f.Ctx, "ustream"))

	// Refund was paid on-chain immediately for a direct-funded session.
	require.Equal(t, math.NewInt(400_000), f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").Amount)

	audit, found := f.Keeper.GetSettlementAudit(f.Ctx, id)
	require.True(t, found)
	require.Equal(t, "600000", audit.GrossPayment)
	require.Equal(t, "usage log", audit.AuditRecord)
}

func TestSettlement_ZeroProofFullRefund(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	id, depositor, host := openSession(t, &f, 1_000_000, 100)

	require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, ""))

	require.Equal(t, math.NewInt(1_000_000), f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").Amount)
	require.True(t, f.Keeper.GetEarnings(f.Ctx, host, "ustream").IsZero())
	require.True(t, f.Keeper.GetTreasuryAccrual(f.Ctx, "ustream").IsZero())
}

func TestSettlement_FromBalanceRefundsToLedger(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	depositor := randomAddr()
	host := randomAddr()
	f.FundAccount(t, depositor, sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(1_000_000))))
	require.NoError(t, f.Keeper.Deposit(f.Ctx, depositor, sdk.NewCoin("ustream", math.NewInt(1_000_000))))

	id, err := f.Keeper.CreateSession(f.Ctx, keeper.CreateSessionParams{
		Depositor:            depositor,
		Host:                 host,
		Denom:                "ustream",
		Deposit:              math.NewInt(1_000_000),
		PricePerToken:        math.NewInt(100),
		MaxDurationSeconds:   7200,
		ProofIntervalSeconds: 600,
		FromBalance:          true,
	})
	require.NoError(t, err)

	submitProof(t, &f, host, id, 6_000, 10*time.Second)
	require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, ""))

	// Refund returned to the prepaid ledger, not the bank account.
	require.Equal(t, math.NewInt(400_000), f.Keeper.GetLedgerBalance(f.Ctx, depositor, "ustream"))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").IsZero())
}

func TestSettlement_RunsExactlyOnce(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	id, depositor, _ := openSession(t, &f, 1_000_000, 100)

	require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, ""))

	// A settled session reports not-active before the settled marker is
	// ever consulted again.
	err := f.Keeper.CompleteSession(f.Ctx, depositor, id, "")
	require.ErrorIs(t, err, types.ErrSessionNotActive)

	f.AdvanceTime(3 * time.Hour)
	err = f.Keeper.TimeoutSession(f.Ctx, randomAddr(), id)
	require.ErrorIs(t, err, types.ErrSessionNotActive)

	// Only one refund was ever paid.
	require.Equal(t, math.NewInt(1_000_000), f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").Amount)
}

func TestSettlement_ReentryDuringRefund(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	id, depositor, host := openSession(t, &f, 1_000_000, 100)
	submitProof(t, &f, host, id, 6_000, 10*time.Second)

	bank := &hookedBank{BaseKeeper: f.BankKeeper}
	k := f.KeeperWithBank(bank)

	// Reenter the terminal transition from inside the refund transfer.
	// Bookkeeping runs before any coins move, so the inner call sees a
	// terminal session and is rejected before funds can split twice.
	var reentryErr error
	bank.onSend = func() {
		bank.onSend = nil
		reentryErr = k.CompleteSession(f.Ctx, depositor, id, "")
	}

	require.NoError(t, k.CompleteSession(f.Ctx, depositor, id, ""))
	require.ErrorIs(t, reentryErr, types.ErrSessionNotActive)

	// One settlement's worth of funds moved, no more.
	require.Equal(t, math.NewInt(400_000), f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").Amount)
	require.Equal(t, math.NewInt(540_000), f.Keeper.GetEarnings(f.Ctx, host, "ustream"))
	require.Equal(t, math.NewInt(60_000), f.Keeper.GetTreasuryAccrual(f.Ctx, "ustream"))
}

func TestSettlement_RefundFailureIsAtomic(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	id, depositor, host := openSession(t, &f, 1_000_000, 100)
	submitProof(t, &f, host, id, 6_000, 10*time.Second)

	bank := &hookedBank{BaseKeeper: f.BankKeeper, sendErr: fmt.Errorf("sends disabled")}
	k := f.KeeperWithBank(bank)

	// Message execution stages writes in a cache that is only committed
	// on success, so the failed refund rolls back the whole settlement.
	cacheCtx, commit := f.Ctx.CacheContext()
	err := k.CompleteSession(cacheCtx, depositor, id, "")
	require.ErrorIs(t, err, types.ErrTransferFailed)
	_ = commit

	session, err := f.Keeper.GetSession(f.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.StatusActive, session.Status)
	require.True(t, f.Keeper.GetEarnings(f.Ctx, host, "ustream").IsZero())
	require.True(t, f.Keeper.GetTreasuryAccrual(f.Ctx, "ustream").IsZero())
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").IsZero())

	// The session stayed Active, so the transition can be retried once
	// transfers work again.
	require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, ""))
	session, err = f.Keeper.GetSession(f.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.StatusCompleted, session.Status)
	require.Equal(t, math.NewInt(400_000), f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").Amount)
}

func TestSettlement_TimeoutPaysProvenWork(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	id, depositor, host := openSession(t, &f, 1_000_000, 100)

	submitProof(t, &f, host, id, 2_000, 10*time.Second)

	f.AdvanceTime(1801 * time.Second)
	require.NoError(t, f.Keeper.TimeoutSession(f.Ctx, randomAddr(), id))

	// Proven work is paid even on timeout; the rest refunds.
	require.Equal(t, math.NewInt(180_000), f.Keeper.GetEarnings(f.Ctx, host, "ustream"))
	require.Equal(t, math.NewInt(20_000), f.Keeper.GetTreasuryAccrual(f.Ctx, "ustream"))
	require.Equal(t, math.NewInt(800_000), f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").Amount)
}
