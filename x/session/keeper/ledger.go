package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

// The deposit ledger tracks per-(owner, denom) prepaid balances backed by
// coins held in the module account. It is pure bookkeeping independent of
// any session; session deposits are carved out of it atomically at
// creation.

// GetLedgerBalance returns the prepaid balance for (owner, denom).
func (k Keeper) GetLedgerBalance(ctx context.Context, owner sdk.AccAddress, denom string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(BalanceKey(owner, denom))
	if bz == nil {
		return math.ZeroInt()
	}

	var balance math.Int
	if err := balance.Unmarshal(bz); err != nil {
		// Corrupt balance entries are unrecoverable bookkeeping; surface
		// loudly instead of treating them as zero.
		panic(fmt.Sprintf("ledger balance for %s/%s corrupt: %v", owner, denom, err))
	}
	return balance
}

// setLedgerBalance writes the prepaid balance, deleting zero entries.
func (k Keeper) setLedgerBalance(ctx context.Context, owner sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsNegative() {
		return types.ErrInsufficientBalance.Wrapf("balance for %s/%s would go negative", owner, denom)
	}

	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(BalanceKey(owner, denom))
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return fmt.Errorf("setLedgerBalance: marshal: %w", err)
	}
	store.Set(BalanceKey(owner, denom), bz)
	return nil
}

// Deposit moves coins from the owner into the module account and credits
// the owner's ledger balance.
func (k Keeper) Deposit(ctx context.Context, owner sdk.AccAddress, amount sdk.Coin) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if _, ok := params.AssetFor(amount.Denom); !ok {
		return types.ErrAssetNotAllowed.Wrapf("denom %s", amount.Denom)
	}
	if !amount.Amount.IsPositive() {
		return types.ErrValidationFailed.Wrap("deposit amount must be positive")
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, sdk.NewCoins(amount)); err != nil {
		return types.ErrTransferFailed.Wrapf("deposit: %v", err)
	}

	balance := k.GetLedgerBalance(ctx, owner, amount.Denom)
	if err := k.setLedgerBalance(ctx, owner, amount.Denom, balance.Add(amount.Amount)); err != nil {
		return err
	}

	k.metrics.DepositsReceived.WithLabelValues(amount.Denom).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDepositReceived,
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, amount.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.Amount.String()),
		),
	)
	return nil
}

// Withdraw debits the owner's ledger balance and returns coins from the
// module account. It fails atomically when the balance is insufficient.
func (k Keeper) Withdraw(ctx context.Context, owner sdk.AccAddress, amount sdk.Coin) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if !amount.Amount.IsPositive() {
		return types.ErrValidationFailed.Wrap("withdraw amount must be positive")
	}

	balance := k.GetLedgerBalance(ctx, owner, amount.Denom)
	if balance.LT(amount.Amount) {
		return types.ErrInsufficientBalance.Wrapf("have %s%s, want %s%s", balance, amount.Denom, amount.Amount, amount.Denom)
	}

	// Debit before the transfer so a recipient callback cannot observe a
	// stale balance.
	if err := k.setLedgerBalance(ctx, owner, amount.Denom, balance.Sub(amount.Amount)); err != nil {
		return err
	}

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, sdk.NewCoins(amount)); err != nil {
		return types.ErrTransferFailed.Wrapf("withdraw: %v", err)
	}

	k.metrics.WithdrawalsProcessed.WithLabelValues(amount.Denom).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawalProcessed,
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, amount.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.Amount.String()),
		),
	)
	return nil
}

// debitForSession carves a session deposit out of the owner's ledger
// balance. No coins move; they are already in the module account.
func (k Keeper) debitForSession(ctx context.Context, owner sdk.AccAddress, denom string, amount math.Int) error {
	balance := k.GetLedgerBalance(ctx, owner, denom)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("have %s%s, session needs %s%s", balance, denom, amount, denom)
	}
	return k.setLedgerBalance(ctx, owner, denom, balance.Sub(amount))
}

// creditFromSettlement returns an unused refund to the owner's ledger
// balance for balance-funded sessions.
func (k Keeper) creditFromSettlement(ctx context.Context, owner sdk.AccAddress, denom string, amount math.Int) error {
	balance := k.GetLedgerBalance(ctx, owner, denom)
	return k.setLedgerBalance(ctx, owner, denom, balance.Add(amount))
}

// IterateLedgerBalances iterates over all ledger balances.
func (k Keeper) IterateLedgerBalances(ctx context.Context, cb func(balance types.LedgerBalance) (stop bool, err error)) error {
	return k.iterateAmountEntries(ctx, BalanceKeyPrefix, func(owner sdk.AccAddress, denom string, amount math.Int) (bool, error) {
		return cb(types.LedgerBalance{Owner: owner.String(), Denom: denom, Amount: amount})
	})
}
