package keeper

import (
	"context"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

// SettlementResult is the full fund split of one terminal settlement.
// GrossPayment equals NetHostPayment plus TreasuryFee, and GrossPayment
// plus Refund equals the original deposit.
type SettlementResult struct {
	GrossPayment   math.Int
	TreasuryFee    math.Int
	NetHostPayment math.Int
	Refund         math.Int
}

// ComputeSettlement derives the settlement split from proven usage. All
// arithmetic is integer in base units; the fee rounds down, so rounding
// dust stays with the host rather than the treasury.
func ComputeSettlement(tokensUsed, pricePerToken, deposit math.Int, feeRateBps uint64) SettlementResult {
	gross := tokensUsed.Mul(pricePerToken)
	fee := gross.MulRaw(int64(feeRateBps)).QuoRaw(types.FeeDenominator)
	return SettlementResult{
		GrossPayment:   gross,
		TreasuryFee:    fee,
		NetHostPayment: gross.Sub(fee),
		Refund:         deposit.Sub(gross),
	}
}

// settle moves a session into its terminal status and splits the deposit.
// It runs at most once per session: a settled marker is written first and
// checked on entry, and any later failure reverts the whole transaction,
// marker included. All bookkeeping is recorded before any coins leave the
// module account.
func (k Keeper) settle(ctx context.Context, session types.Session, status types.SessionStatus) (SettlementResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	store := k.getStore(ctx)

	if store.Has(SettledKey(session.Id)) {
		return SettlementResult{}, types.ErrAlreadySettled.Wrapf("session %d", session.Id)
	}
	store.Set(SettledKey(session.Id), []byte{1})

	params, err := k.GetParams(ctx)
	if err != nil {
		return SettlementResult{}, err
	}
	result := ComputeSettlement(session.TokensUsed, session.PricePerToken, session.Deposit, params.FeeRateBps)

	session.Status = status
	session.WithdrawnByHost = result.NetHostPayment
	session.RefundedToUser = result.Refund
	if err := k.SetSession(ctx, session); err != nil {
		return SettlementResult{}, err
	}
	k.removeDeadlineIndex(ctx, session.Id)

	host, err := sdk.AccAddressFromBech32(session.Host)
	if err != nil {
		return SettlementResult{}, types.ErrInvalidAddress.Wrapf("host %s", session.Host)
	}
	depositor, err := sdk.AccAddressFromBech32(session.Depositor)
	if err != nil {
		return SettlementResult{}, types.ErrInvalidAddress.Wrapf("depositor %s", session.Depositor)
	}

	if err := k.creditEarnings(ctx, host, session.Denom, result.NetHostPayment); err != nil {
		return SettlementResult{}, err
	}
	if err := k.accrueTreasuryFee(ctx, session.Denom, result.TreasuryFee); err != nil {
		return SettlementResult{}, err
	}

	// Refund leg. Sessions funded from the prepaid ledger refund back to
	// it; direct-funded sessions refund on-chain immediately.
	if result.Refund.IsPositive() {
		if session.FundedFromBalance {
			if err := k.creditFromSettlement(ctx, depositor, session.Denom, result.Refund); err != nil {
				return SettlementResult{}, err
			}
		} else {
			coins := sdk.NewCoins(sdk.NewCoin(session.Denom, result.Refund))
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, coins); err != nil {
				return SettlementResult{}, types.ErrTransferFailed.Wrapf("refund: %v", err)
			}
		}
	}

	if err := k.recordSettlementAudit(ctx, session, result); err != nil {
		return SettlementResult{}, err
	}

	k.metrics.SettlementVolume.WithLabelValues(session.Denom).Add(floatFromInt(result.GrossPayment))
	k.metrics.TreasuryFees.WithLabelValues(session.Denom).Add(floatFromInt(result.TreasuryFee))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSettlement,
			sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", session.Id)),
			sdk.NewAttribute(types.AttributeKeyDenom, session.Denom),
			sdk.NewAttribute(types.AttributeKeyTokensUsed, session.TokensUsed.String()),
			sdk.NewAttribute(types.AttributeKeyGrossPayment, result.GrossPayment.String()),
			sdk.NewAttribute(types.AttributeKeyTreasuryFee, result.TreasuryFee.String()),
			sdk.NewAttribute(types.AttributeKeyNetPayment, result.NetHostPayment.String()),
			sdk.NewAttribute(types.AttributeKeyRefund, result.Refund.String()),
			sdk.NewAttribute(types.AttributeKeyCause, string(status)),
		),
	)

	k.Logger(sdkCtx).Info("session settled",
		"session_id", session.Id,
		"status", status,
		"tokens_used", session.TokensUsed.String(),
		"net_payment", result.NetHostPayment.String(),
		"refund", result.Refund.String(),
	)

	return result, nil
}

// floatFromInt converts a base-unit amount for metrics export. Precision
// loss past float64 range is acceptable for observability counters.
func floatFromInt(v math.Int) float64 {
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}
