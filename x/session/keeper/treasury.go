package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

// The treasury accrual is a per-denom running total of uncollected
// protocol fees. It only grows, and only settlement grows it; the
// withdrawal side lives outside this module.

// GetTreasuryAccrual returns the accrued fees for a denom.
func (k Keeper) GetTreasuryAccrual(ctx context.Context, denom string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(TreasuryAccrualKey(denom))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("treasury accrual for %s corrupt: %v", denom, err))
	}
	return amount
}

// setTreasuryAccrual writes the accrual entry (genesis import and accrue).
func (k Keeper) setTreasuryAccrual(ctx context.Context, denom string, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("treasury accrual for %s cannot be negative", denom)
	}

	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(TreasuryAccrualKey(denom))
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return fmt.Errorf("setTreasuryAccrual: marshal: %w", err)
	}
	store.Set(TreasuryAccrualKey(denom), bz)
	return nil
}

// accrueTreasuryFee adds a settlement fee to the denom's running total.
func (k Keeper) accrueTreasuryFee(ctx context.Context, denom string, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}

	current := k.GetTreasuryAccrual(ctx, denom)
	if err := k.setTreasuryAccrual(ctx, denom, current.Add(amount)); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTreasuryAccrued,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// IterateTreasuryAccruals iterates over all per-denom accruals.
func (k Keeper) IterateTreasuryAccruals(ctx context.Context, cb func(accrual types.TreasuryAccrual) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, TreasuryAccrualKeyPrefix)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		denom := string(iter.Key()[len(TreasuryAccrualKeyPrefix):])

		var amount math.Int
		if err := amount.Unmarshal(iter.Value()); err != nil {
			return fmt.Errorf("treasury accrual for %s corrupt: %w", denom, err)
		}

		stop, err := cb(types.TreasuryAccrual{Denom: denom, Amount: amount})
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}
