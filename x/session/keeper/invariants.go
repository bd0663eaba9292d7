package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

// RegisterInvariants registers all session module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "session-accounting", SessionAccountingInvariant(k))
}

// AllInvariants runs all invariants of the session module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		msg, broken := ModuleBalanceInvariant(k)(ctx)
		if broken {
			return msg, broken
		}
		return SessionAccountingInvariant(k)(ctx)
	}
}

// ModuleBalanceInvariant checks that the module account holds every coin
// the module's books claim to custody: active session deposits, prepaid
// ledger balances, unwithdrawn earnings, and treasury accruals. A surplus
// from direct bank sends to the module address is tolerated; a deficit is
// a broken invariant.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expected := make(map[string]math.Int)
		add := func(denom string, amount math.Int) {
			cur, ok := expected[denom]
			if !ok {
				cur = math.ZeroInt()
			}
			expected[denom] = cur.Add(amount)
		}

		err := k.IterateSessions(ctx, func(session types.Session) (bool, error) {
			if session.Status == types.StatusActive {
				add(session.Denom, session.Deposit)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance", fmt.Sprintf("session iteration failed: %v", err)), true
		}

		err = k.IterateLedgerBalances(ctx, func(balance types.LedgerBalance) (bool, error) {
			add(balance.Denom, balance.Amount)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance", fmt.Sprintf("ledger iteration failed: %v", err)), true
		}

		err = k.IterateEarnings(ctx, func(entry types.EarningsEntry) (bool, error) {
			add(entry.Denom, entry.Amount)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance", fmt.Sprintf("earnings iteration failed: %v", err)), true
		}

		err = k.IterateTreasuryAccruals(ctx, func(accrual types.TreasuryAccrual) (bool, error) {
			add(accrual.Denom, accrual.Amount)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance", fmt.Sprintf("treasury iteration failed: %v", err)), true
		}

		moduleAddr := k.moduleAddress()
		for denom, want := range expected {
			have := k.bankKeeper.GetBalance(ctx, moduleAddr, denom).Amount
			if have.LT(want) {
				return sdk.FormatInvariant(types.ModuleName, "module-balance",
					fmt.Sprintf("module account holds %s%s, books require %s%s", have, denom, want, denom)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "module-balance", "module account covers all booked liabilities"), false
	}
}

// SessionAccountingInvariant checks per-session arithmetic: usage never
// exceeds what the deposit funds, and terminal sessions account for the
// full deposit across payment, fee, and refund.
func SessionAccountingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false
		err := k.IterateSessions(ctx, func(session types.Session) (bool, error) {
			if !session.Status.Valid() {
				msg = fmt.Sprintf("session %d has invalid status %q", session.Id, session.Status)
				broken = true
				return true, nil
			}
			if session.TokensUsed.GT(session.MaxTokens()) {
				msg = fmt.Sprintf("session %d used %s tokens, deposit funds %s", session.Id, session.TokensUsed, session.MaxTokens())
				broken = true
				return true, nil
			}
			if session.Status.IsTerminal() {
				gross := session.TokensUsed.Mul(session.PricePerToken)
				accounted := gross.Add(session.RefundedToUser)
				if !accounted.Equal(session.Deposit) {
					msg = fmt.Sprintf("session %d settled %s of a %s%s deposit", session.Id, accounted, session.Deposit, session.Denom)
					broken = true
					return true, nil
				}
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "session-accounting", fmt.Sprintf("session iteration failed: %v", err)), true
		}
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "session-accounting", msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, "session-accounting", "all sessions consistent"), false
	}
}
