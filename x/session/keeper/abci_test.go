package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/paystream-chain/paystream/testutil/keeper"
	"github.com/paystream-chain/paystream/x/session/types"
)

func TestEndBlocker_SweepsExpiredSessions(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	expiredID, expiredDepositor, _ := openSession(t, &f, 1_000_000, 100)

	// Opened later, so its inactivity deadline is still in the future
	// when the first session expires.
	f.AdvanceTime(1200 * time.Second)
	freshID, _, _ := openSession(t, &f, 1_000_000, 100)

	// 601s past the first session's 1800s inactivity deadline, well
	// before the second session's.
	f.AdvanceTime(1201 * time.Second)
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	expired, err := f.Keeper.GetSession(f.Ctx, expiredID)
	require.NoError(t, err)
	require.Equal(t, types.StatusTimedOut, expired.Status)

	fresh, err := f.Keeper.GetSession(f.Ctx, freshID)
	require.NoError(t, err)
	require.Equal(t, types.StatusActive, fresh.Status)

	// The sweep settles like any timeout: zero proofs means full refund.
	require.Equal(t, math.NewInt(1_000_000),
		f.BankKeeper.GetBalance(f.Ctx, expiredDepositor, "ustream").Amount)
}

func TestEndBlocker_NoopWithoutDueSessions(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	id, _, _ := openSession(t, &f, 1_000_000, 100)
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	session, err := f.Keeper.GetSession(f.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.StatusActive, session.Status)
}

func TestEndBlocker_SettledSessionLeavesIndexClean(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	id, depositor, _ := openSession(t, &f, 1_000_000, 100)
	require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, ""))

	// The deadline index entry was removed at settlement; a later sweep
	// must not touch the session.
	f.AdvanceTime(3 * time.Hour)
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	session, err := f.Keeper.GetSession(f.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.StatusCompleted, session.Status)
	require.Equal(t, math.NewInt(1_000_000),
		f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").Amount)
}
