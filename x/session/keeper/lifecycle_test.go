package keeper_test

import (
	"fmt"
	stdmath "math"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/paystream-chain/paystream/testutil/keeper"
	"github.com/paystream-chain/paystream/x/session/keeper"
	"github.com/paystream-chain/paystream/x/session/types"
)

func randomAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// openSession funds a fresh depositor and opens a direct-funded session
// against a fresh host with the given deposit and price.
func openSession(t *testing.T, f *testkeeper.Fixture, deposit, price int64) (uint64, sdk.AccAddress, sdk.AccAddress) {
	t.Helper()

	depositor := randomAddr()
	host := randomAddr()
	f.FundAccount(t, depositor, sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(deposit))))

	id, err := f.Keeper.CreateSession(f.Ctx, keeper.CreateSessionParams{
		Depositor:            depositor,
		Host:                 host,
		Denom:                "ustream",
		Deposit:              math.NewInt(deposit),
		PricePerToken:        math.NewInt(price),
		MaxDurationSeconds:   7200,
		ProofIntervalSeconds: 600,
	})
	require.NoError(t, err)
	return id, depositor, host
}

// submitProof advances time and submits a proof with a unique hash.
func submitProof(t *testing.T, f *testkeeper.Fixture, host sdk.AccAddress, id uint64, tokens int64, wait time.Duration) math.Int {
	t.Helper()

	f.AdvanceTime(wait)
	used, err := f.Keeper.SubmitProof(f.Ctx, host, id, math.NewInt(tokens), types.ProofCheckpoint{
		Hash: fmt.Sprintf("proof-%d-%d", id, f.Ctx.BlockHeight()),
	})
	require.NoError(t, err)
	return used
}

func TestCreateSession(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	id, depositor, host := openSession(t, &f, 1_000_000, 100)
	require.Equal(t, uint64(1), id)

	session, err := f.Keeper.GetSession(f.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.StatusActive, session.Status)
	require.Equal(t, depositor.String(), session.Depositor)
	require.Equal(t, host.String(), session.Host)
	require.True(t, session.TokensUsed.IsZero())
	require.Equal(t, f.Ctx.BlockTime(), session.StartTime)
	require.Equal(t, session.StartTime, session.LastProofTime)
	require.Equal(t, math.NewInt(10_000), session.MaxTokens())

	// Deposit moved into the module account.
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, depositor, "ustream").IsZero())

	// Ids are sequential.
	id2, _, _ := openSession(t, &f, 1_000_000, 100)
	require.Equal(t, uint64(2), id2)
}

func TestCreateSession_Preconditions(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	depositor := randomAddr()
	host := randomAddr()
	f.FundAccount(t, depositor, sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(10_000_000))))

	base := keeper.CreateSessionParams{
		Depositor:            depositor,
		Host:                 host,
		Denom:                "ustream",
		Deposit:              math.NewInt(1_000_000),
		PricePerToken:        math.NewInt(100),
		MaxDurationSeconds:   7200,
		ProofIntervalSeconds: 600,
	}

	tests := []struct {
		name    string
		mutate  func(*keeper.CreateSessionParams)
		setup   func()
		wantErr error
	}{
		{
			name:    "depositor equals host",
			mutate:  func(p *keeper.CreateSessionParams) { p.Host = depositor },
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "denom not allow-listed",
			mutate:  func(p *keeper.CreateSessionParams) { p.Denom = "uatom" },
			wantErr: types.ErrAssetNotAllowed,
		},
		{
			name:    "deposit below asset minimum",
			mutate:  func(p *keeper.CreateSessionParams) { p.Deposit = math.NewInt(9_999) },
			wantErr: types.ErrInvalidDeposit,
		},
		{
			name: "deposit above asset maximum",
			mutate: func(p *keeper.CreateSessionParams) {
				p.Deposit = math.NewInt(1_000_000_000_001)
			},
			wantErr: types.ErrInvalidDeposit,
		},
		{
			name:    "zero price",
			mutate:  func(p *keeper.CreateSessionParams) { p.PricePerToken = math.ZeroInt() },
			wantErr: types.ErrInvalidPrice,
		},
		{
			name: "duration above cap",
			mutate: func(p *keeper.CreateSessionParams) {
				p.MaxDurationSeconds = types.MaxSessionDurationSeconds + 1
			},
			wantErr: types.ErrInvalidDuration,
		},
		{
			name:    "zero proof interval",
			mutate:  func(p *keeper.CreateSessionParams) { p.ProofIntervalSeconds = 0 },
			wantErr: types.ErrInvalidProofInterval,
		},
		{
			name: "deposit funds less than one minimum proof",
			mutate: func(p *keeper.CreateSessionParams) {
				// 10,000 / 200 = 50 tokens, floor is 100
				p.Deposit = math.NewInt(10_000)
				p.PricePerToken = math.NewInt(200)
			},
			wantErr: types.ErrDepositTooSmall,
		},
		{
			name:    "inactive host",
			mutate:  func(*keeper.CreateSessionParams) {},
			setup:   func() { f.HostKeeper.Inactive[host.String()] = true },
			wantErr: types.ErrHostNotActive,
		},
		{
			name:   "price below host minimum",
			mutate: func(*keeper.CreateSessionParams) {},
			setup: func() {
				delete(f.HostKeeper.Inactive, host.String())
				f.HostKeeper.MinPrices[host.String()] = math.NewInt(101)
			},
			wantErr: types.ErrPriceBelowMinimum,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setup != nil {
				tc.setup()
			}
			params := base
			tc.mutate(&params)
			_, err := f.Keeper.CreateSession(f.Ctx, params)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateSession_InsufficientFunds(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	depositor := randomAddr()
	_, err := f.Keeper.CreateSession(f.Ctx, keeper.CreateSessionParams{
		Depositor:            depositor,
		Host:                 randomAddr(),
		Denom:                "ustream",
		Deposit:              math.NewInt(1_000_000),
		PricePerToken:        math.NewInt(100),
		MaxDurationSeconds:   7200,
		ProofIntervalSeconds: 600,
	})
	require.ErrorIs(t, err, types.ErrTransferFailed)
}

func TestCreateSession_FromBalance(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	depositor := randomAddr()
	host := randomAddr()
	f.FundAccount(t, depositor, sdk.NewCoins(sdk.NewCoin("ustream", math.NewInt(2_000_000))))
	require.NoError(t, f.Keeper.Deposit(f.Ctx, depositor, sdk.NewCoin("ustream", math.NewInt(2_000_000))))

	params := keeper.CreateSessionParams{
		Depositor:            depositor,
		Host:                 host,
		Denom:                "ustream",
		Deposit:              math.NewInt(1_500_000),
		PricePerToken:        math.NewInt(100),
		MaxDurationSeconds:   7200,
		ProofIntervalSeconds: 600,
		FromBalance:          true,
	}
	_, err := f.Keeper.CreateSession(f.Ctx, params)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), f.Keeper.GetLedgerBalance(f.Ctx, depositor, "ustream"))

	// The remaining balance does not cover a second session of this size.
	_, err = f.Keeper.CreateSession(f.Ctx, params)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	require.Equal(t, math.NewInt(500_000), f.Keeper.GetLedgerBalance(f.Ctx, depositor, "ustream"))
}

func TestSubmitProof(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	id, _, host := openSession(t, &f, 1_000_000, 100)

	used := submitProof(t, &f, host, id, 2_000, 10*time.Second)
	require.Equal(t, math.NewInt(2_000), used)

	used = submitProof(t, &f, host, id, 3_000, 10*time.Second)
	require.Equal(t, math.NewInt(5_000), used)

	session, err := f.Keeper.GetSession(f.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(2), session.ProofCount)
	require.Equal(t, f.Ctx.BlockTime(), session.LastProofTime)

	proofs, err := f.Keeper.GetSessionProofs(f.Ctx, id)
	require.NoError(t, err)
	require.Len(t, proofs, 2)
	require.Equal(t, uint64(0), proofs[0].Index)
	require.Equal(t, uint64(1), proofs[1].Index)
	require.Equal(t, math.NewInt(2_000), proofs[0].Tokens)
}

func TestSubmitProof_Rejections(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	id, _, host := openSession(t, &f, 1_000_000, 100)

	// Advance so elapsed-time rejection does not mask the case under test.
	f.AdvanceTime(10 * time.Second)
	before, err := f.Keeper.GetSession(f.Ctx, id)
	require.NoError(t, err)

	checkpoint := types.ProofCheckpoint{Hash: "h1"}

	t.Run("only host may submit", func(t *testing.T) {
		_, err := f.Keeper.SubmitProof(f.Ctx, randomAddr(), id, math.NewInt(1_000), checkpoint)
		require.ErrorIs(t, err, types.ErrUnauthorized)
	})

	t.Run("claim below floor", func(t *testing.T) {
		_, err := f.Keeper.SubmitProof(f.Ctx, host, id, math.NewInt(99), checkpoint)
		require.ErrorIs(t, err, types.ErrClaimTooSmall)
	})

	t.Run("claim above throughput ceiling", func(t *testing.T) {
		// 10s elapsed, 1000/s rate, 2x burst: ceiling is 20,000 but the
		// deposit cap of 10,000 is checked after, so claim between them.
		_, err := f.Keeper.SubmitProof(f.Ctx, host, id, math.NewInt(20_001), checkpoint)
		require.ErrorIs(t, err, types.ErrClaimExceedsThroughput)
	})

	t.Run("claim above deposit capacity", func(t *testing.T) {
		_, err := f.Keeper.SubmitProof(f.Ctx, host, id, math.NewInt(10_001), checkpoint)
		require.ErrorIs(t, err, types.ErrClaimExceedsDeposit)
	})

	t.Run("verifier rejection", func(t *testing.T) {
		f.Verifier.Err = fmt.Errorf("bad signature")
		defer func() { f.Verifier.Err = nil }()
		_, err := f.Keeper.SubmitProof(f.Ctx, host, id, math.NewInt(1_000), checkpoint)
		require.ErrorIs(t, err, types.ErrProofRejected)
	})

	t.Run("rejections have no state effect", func(t *testing.T) {
		after, err := f.Keeper.GetSession(f.Ctx, id)
		require.NoError(t, err)
		require.Equal(t, before.TokensUsed, after.TokensUsed)
		require.Equal(t, before.LastProofTime, after.LastProofTime)
		require.Equal(t, before.ProofCount, after.ProofCount)
	})

	t.Run("replayed proof hash", func(t *testing.T) {
		_, err := f.Keeper.SubmitProof(f.Ctx, host, id, math.NewInt(1_000), checkpoint)
		require.NoError(t, err)

		f.AdvanceTime(10 * time.Second)
		_, err = f.Keeper.SubmitProof(f.Ctx, host, id, math.NewInt(1_000), checkpoint)
		require.ErrorIs(t, err, types.ErrProofReplayed)
	})

	t.Run("same-block claim exceeds zero ceiling", func(t *testing.T) {
		// LastProofTime equals block time right after an accepted proof.
		session, err := f.Keeper.GetSession(f.Ctx, id)
		require.NoError(t, err)
		require.Equal(t, f.Ctx.BlockTime(), session.LastProofTime)

		_, err = f.Keeper.SubmitProof(f.Ctx, host, id, math.NewInt(1_000), types.ProofCheckpoint{Hash: "h2"})
		require.ErrorIs(t, err, types.ErrClaimExceedsThroughput)
	})
}

func TestSubmitProof_ExtremeThroughputParams(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	// Governance can set arbitrarily large rates; the ceiling arithmetic
	// must stay positive instead of wrapping.
	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	params.MaxTokensPerSecond = stdmath.MaxUint64
	params.BurstMultiplier = stdmath.MaxUint64
	require.NoError(t, f.Keeper.SetParams(f.Ctx, params))

	id, _, host := openSession(t, &f, 1_000_000, 100)
	used := submitProof(t, &f, host, id, 10_000, 10*time.Second)
	require.Equal(t, math.NewInt(10_000), used)
}

func TestSubmitProof_TerminalSession(t *testing.T) {
	f := testkeeper.SessionFixture(t)
	id, depositor, host := openSession(t, &f, 1_000_000, 100)

	require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, ""))

	_, err := f.Keeper.SubmitProof(f.Ctx, host, id, math.NewInt(1_000), types.ProofCheckpoint{Hash: "h"})
	require.ErrorIs(t, err, types.ErrSessionNotActive)
}

func TestCompleteSession_Authorization(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	t.Run("depositor may complete immediately", func(t *testing.T) {
		id, depositor, _ := openSession(t, &f, 1_000_000, 100)
		require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, "receipt"))

		session, err := f.Keeper.GetSession(f.Ctx, id)
		require.NoError(t, err)
		require.Equal(t, types.StatusCompleted, session.Status)
		require.Equal(t, "receipt", session.AuditRecord)
	})

	t.Run("host blocked during dispute window", func(t *testing.T) {
		id, _, host := openSession(t, &f, 1_000_000, 100)
		err := f.Keeper.CompleteSession(f.Ctx, host, id, "")
		require.ErrorIs(t, err, types.ErrDisputeWindowActive)
	})

	t.Run("host may complete after dispute window", func(t *testing.T) {
		id, _, host := openSession(t, &f, 1_000_000, 100)
		f.AdvanceTime(time.Hour + time.Second)
		require.NoError(t, f.Keeper.CompleteSession(f.Ctx, host, id, ""))
	})

	t.Run("third party never completes", func(t *testing.T) {
		id, _, _ := openSession(t, &f, 1_000_000, 100)
		f.AdvanceTime(2 * time.Hour)
		err := f.Keeper.CompleteSession(f.Ctx, randomAddr(), id, "")
		require.ErrorIs(t, err, types.ErrUnauthorized)
	})

	t.Run("unknown session", func(t *testing.T) {
		err := f.Keeper.CompleteSession(f.Ctx, randomAddr(), 999, "")
		require.ErrorIs(t, err, types.ErrSessionNotFound)
	})
}

func TestTimeoutSession(t *testing.T) {
	f := testkeeper.SessionFixture(t)

	t.Run("not yet due", func(t *testing.T) {
		id, _, _ := openSession(t, &f, 1_000_000, 100)
		err := f.Keeper.TimeoutSession(f.Ctx, randomAddr(), id)
		require.ErrorIs(t, err, types.ErrTimeoutNotReached)
	})

	t.Run("inactivity deadline, any caller", func(t *testing.T) {
		id, _, _ := openSession(t, &f, 1_000_000, 100)
		// 3x the 600s proof interval plus a second
		f.AdvanceTime(1801 * time.Second)
		require.NoError(t, f.Keeper.TimeoutSession(f.Ctx, randomAddr(), id))

		session, err := f.Keeper.GetSession(f.Ctx, id)
		require.NoError(t, err)
		require.Equal(t, types.StatusTimedOut, session.Status)
	})

	t.Run("proofs push the inactivity deadline", func(t *testing.T) {
		id, _, host := openSession(t, &f, 1_000_000, 100)
		f.AdvanceTime(1500 * time.Second)
		submitProof(t, &f, host, id, 1_000, time.Second)

		f.AdvanceTime(1500 * time.Second)
		err := f.Keeper.TimeoutSession(f.Ctx, randomAddr(), id)
		require.ErrorIs(t, err, types.ErrTimeoutNotReached)
	})

	t.Run("hard duration deadline", func(t *testing.T) {
		id, _, host := openSession(t, &f, 1_000_000, 100)
		// Keep the session alive with proofs past its 7200s max duration.
		for i := 0; i < 14; i++ {
			submitProof(t, &f, host, id, 100, 520*time.Second)
		}
		require.NoError(t, f.Keeper.TimeoutSession(f.Ctx, randomAddr(), id))
	})

	t.Run("terminal session cannot time out again", func(t *testing.T) {
		id, depositor, _ := openSession(t, &f, 1_000_000, 100)
		require.NoError(t, f.Keeper.CompleteSession(f.Ctx, depositor, id, ""))

		f.AdvanceTime(3 * time.Hour)
		err := f.Keeper.TimeoutSession(f.Ctx, randomAddr(), id)
		require.ErrorIs(t, err, types.ErrSessionNotActive)
	})
}
