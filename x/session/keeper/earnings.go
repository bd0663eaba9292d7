package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

// The earnings ledger is a pull-payment accumulator: settlement credits a
// host's entry and the host later withdraws, decoupling settlement from
// host-controlled withdrawal logic. Coins stay in the module account
// until withdrawal.

// GetEarnings returns the unclaimed earnings for (host, denom).
func (k Keeper) GetEarnings(ctx context.Context, host sdk.AccAddress, denom string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(EarningsKey(host, denom))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("earnings for %s/%s corrupt: %v", host, denom, err))
	}
	return amount
}

// setEarnings writes the unclaimed earnings entry, deleting zero entries.
func (k Keeper) setEarnings(ctx context.Context, host sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("earnings for %s/%s cannot go negative", host, denom)
	}

	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(EarningsKey(host, denom))
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return fmt.Errorf("setEarnings: marshal: %w", err)
	}
	store.Set(EarningsKey(host, denom), bz)
	return nil
}

// creditEarnings accrues settled host payment. Called only by settlement.
func (k Keeper) creditEarnings(ctx context.Context, host sdk.AccAddress, denom string, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}

	current := k.GetEarnings(ctx, host, denom)
	if err := k.setEarnings(ctx, host, denom, current.Add(amount)); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEarningsCredited,
			sdk.NewAttribute(types.AttributeKeyHost, host.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// WithdrawEarnings pays out a host's full unclaimed earnings for a denom.
func (k Keeper) WithdrawEarnings(ctx context.Context, host sdk.AccAddress, denom string) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	amount := k.GetEarnings(ctx, host, denom)
	if !amount.IsPositive() {
		return math.ZeroInt(), types.ErrNoEarnings.Wrapf("host %s, denom %s", host, denom)
	}

	// Zero the entry before moving coins.
	if err := k.setEarnings(ctx, host, denom, math.ZeroInt()); err != nil {
		return math.ZeroInt(), err
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, host, coins); err != nil {
		return math.ZeroInt(), types.ErrTransferFailed.Wrapf("earnings withdrawal: %v", err)
	}

	k.metrics.EarningsWithdrawn.WithLabelValues(denom).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEarningsWithdrawn,
			sdk.NewAttribute(types.AttributeKeyHost, host.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return amount, nil
}

// IterateEarnings iterates over all unclaimed earnings entries.
func (k Keeper) IterateEarnings(ctx context.Context, cb func(entry types.EarningsEntry) (stop bool, err error)) error {
	return k.iterateAmountEntries(ctx, EarningsKeyPrefix, func(host sdk.AccAddress, denom string, amount math.Int) (bool, error) {
		return cb(types.EarningsEntry{Host: host.String(), Denom: denom, Amount: amount})
	})
}
