package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

// CreateSessionParams carries the creation inputs after message-level
// validation.
type CreateSessionParams struct {
	Depositor            sdk.AccAddress
	Host                 sdk.AccAddress
	Denom                string
	Deposit              math.Int
	PricePerToken        math.Int
	MaxDurationSeconds   int64
	ProofIntervalSeconds int64
	ModelId              string
	FromBalance          bool
}

// CreateSession opens a new session in Active state and locks its deposit.
// Every precondition is checked before any funds move, so a failure never
// leaves a partial debit.
func (k Keeper) CreateSession(ctx context.Context, p CreateSessionParams) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if p.Depositor.Equals(p.Host) {
		return 0, types.ErrInvalidAddress.Wrap("depositor and host must be distinct")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	asset, ok := params.AssetFor(p.Denom)
	if !ok {
		return 0, types.ErrAssetNotAllowed.Wrapf("denom %s", p.Denom)
	}
	if p.Deposit.LT(asset.MinDeposit) || p.Deposit.GT(asset.MaxDeposit) {
		return 0, types.ErrInvalidDeposit.Wrapf("%s%s outside [%s, %s]", p.Deposit, p.Denom, asset.MinDeposit, asset.MaxDeposit)
	}
	if !p.PricePerToken.IsPositive() {
		return 0, types.ErrInvalidPrice
	}
	if p.MaxDurationSeconds <= 0 || p.MaxDurationSeconds > types.MaxSessionDurationSeconds {
		return 0, types.ErrInvalidDuration.Wrapf("%d seconds", p.MaxDurationSeconds)
	}
	if p.ProofIntervalSeconds <= 0 {
		return 0, types.ErrInvalidProofInterval
	}

	// The deposit must fund at least one minimum-sized proof, otherwise
	// the session could never accept a valid checkpoint.
	maxTokens := p.Deposit.Quo(p.PricePerToken)
	if maxTokens.LT(math.NewIntFromUint64(params.MinTokensPerProof)) {
		return 0, types.ErrDepositTooSmall.Wrapf("deposit funds %s tokens, minimum proof is %d", maxTokens, params.MinTokensPerProof)
	}

	if !k.hostKeeper.IsHostActive(ctx, p.Host) {
		return 0, types.ErrHostNotActive.Wrapf("host %s", p.Host)
	}
	minPrice, err := k.hostKeeper.MinPrice(ctx, p.Host, p.Denom, p.ModelId)
	if err != nil {
		return 0, types.ErrHostNotActive.Wrapf("price lookup for host %s: %v", p.Host, err)
	}
	if p.PricePerToken.LT(minPrice) {
		return 0, types.ErrPriceBelowMinimum.Wrapf("offered %s, host minimum %s", p.PricePerToken, minPrice)
	}

	// Fund the session: carve out of the prepaid ledger, or move coins
	// inline. This is the last step that can fail before persistence.
	if p.FromBalance {
		if err := k.debitForSession(ctx, p.Depositor, p.Denom, p.Deposit); err != nil {
			return 0, err
		}
	} else {
		coins := sdk.NewCoins(sdk.NewCoin(p.Denom, p.Deposit))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, p.Depositor, types.ModuleName, coins); err != nil {
			return 0, types.ErrTransferFailed.Wrapf("session funding: %v", err)
		}
	}

	now := sdkCtx.BlockTime()
	session := types.Session{
		Id:                   k.nextSessionID(ctx),
		Depositor:            p.Depositor.String(),
		Host:                 p.Host.String(),
		Denom:                p.Denom,
		ModelId:              p.ModelId,
		Deposit:              p.Deposit,
		PricePerToken:        p.PricePerToken,
		TokensUsed:           math.ZeroInt(),
		MaxDurationSeconds:   p.MaxDurationSeconds,
		ProofIntervalSeconds: p.ProofIntervalSeconds,
		StartTime:            now,
		LastProofTime:        now,
		Status:               types.StatusActive,
		FundedFromBalance:    p.FromBalance,
		WithdrawnByHost:      math.ZeroInt(),
		RefundedToUser:       math.ZeroInt(),
	}

	if err := k.SetSession(ctx, session); err != nil {
		return 0, fmt.Errorf("persist session: %w", err)
	}
	k.setDeadlineIndex(ctx, session.Id, nextDeadline(session))

	k.metrics.SessionsCreated.WithLabelValues(p.Denom).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSessionCreated,
			sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", session.Id)),
			sdk.NewAttribute(types.AttributeKeyDepositor, session.Depositor),
			sdk.NewAttribute(types.AttributeKeyHost, session.Host),
			sdk.NewAttribute(types.AttributeKeyDenom, session.Denom),
			sdk.NewAttribute(types.AttributeKeyModelID, session.ModelId),
			sdk.NewAttribute(types.AttributeKeyDeposit, session.Deposit.String()),
			sdk.NewAttribute(types.AttributeKeyPricePerToken, session.PricePerToken.String()),
		),
	)

	return session.Id, nil
}

// SubmitProof records one proof-of-work checkpoint. Rejected proofs have
// no state effect: neither TokensUsed nor LastProofTime advance.
func (k Keeper) SubmitProof(ctx context.Context, host sdk.AccAddress, sessionID uint64, tokens math.Int, checkpoint types.ProofCheckpoint) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	session, err := k.GetSession(ctx, sessionID)
	if err != nil {
		return math.ZeroInt(), err
	}
	if session.Host != host.String() {
		return math.ZeroInt(), types.ErrUnauthorized.Wrapf("only host %s may submit proofs", session.Host)
	}
	if session.Status != types.StatusActive {
		return math.ZeroInt(), types.ErrSessionNotActive.Wrapf("session %d is %s", sessionID, session.Status)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	if tokens.LT(math.NewIntFromUint64(params.MinTokensPerProof)) {
		return math.ZeroInt(), types.ErrClaimTooSmall.Wrapf("claimed %s, floor %d", tokens, params.MinTokensPerProof)
	}

	// Throughput ceiling: the elapsed time since the last accepted proof
	// bounds how much work is plausible. This is a fraud-resistance
	// control, not a physical limit.
	now := sdkCtx.BlockTime()
	elapsed := now.Unix() - session.LastProofTime.Unix()
	if elapsed < 0 {
		elapsed = 0
	}
	ceiling := math.NewInt(elapsed).
		Mul(math.NewIntFromUint64(params.MaxTokensPerSecond)).
		Mul(math.NewIntFromUint64(params.BurstMultiplier))
	if tokens.GT(ceiling) {
		return math.ZeroInt(), types.ErrClaimExceedsThroughput.Wrapf("claimed %s tokens in %ds, ceiling %s", tokens, elapsed, ceiling)
	}

	newUsed := session.TokensUsed.Add(tokens)
	if newUsed.GT(session.MaxTokens()) {
		return math.ZeroInt(), types.ErrClaimExceedsDeposit.Wrapf("cumulative %s tokens, deposit funds %s", newUsed, session.MaxTokens())
	}

	if k.HasProofHash(ctx, sessionID, checkpoint.Hash) {
		return math.ZeroInt(), types.ErrProofReplayed.Wrapf("hash %s", checkpoint.Hash)
	}
	if err := k.verifier.Verify(ctx, host, tokens, checkpoint); err != nil {
		k.metrics.ProofsRejected.WithLabelValues(session.Denom).Inc()
		return math.ZeroInt(), types.ErrProofRejected.Wrap(err.Error())
	}

	proof := types.ProofRecord{
		SessionId: sessionID,
		Index:     session.ProofCount,
		Hash:      checkpoint.Hash,
		Tokens:    tokens,
		Timestamp: now,
		Verified:  true,
	}
	if err := k.appendProof(ctx, proof); err != nil {
		return math.ZeroInt(), err
	}

	session.TokensUsed = newUsed
	session.LastProofTime = now
	session.ProofCount++
	if err := k.SetSession(ctx, session); err != nil {
		return math.ZeroInt(), err
	}
	k.setDeadlineIndex(ctx, session.Id, nextDeadline(session))

	k.metrics.ProofsAccepted.WithLabelValues(session.Denom).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProofSubmitted,
			sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", sessionID)),
			sdk.NewAttribute(types.AttributeKeyHost, session.Host),
			sdk.NewAttribute(types.AttributeKeyDenom, session.Denom),
			sdk.NewAttribute(types.AttributeKeyProofHash, checkpoint.Hash),
			sdk.NewAttribute(types.AttributeKeyProofIndex, fmt.Sprintf("%d", proof.Index)),
			sdk.NewAttribute(types.AttributeKeyTokens, tokens.String()),
			sdk.NewAttribute(types.AttributeKeyTokensUsed, session.TokensUsed.String()),
		),
	)

	return session.TokensUsed, nil
}

// CompleteSession voluntarily finishes a session and settles it. The
// depositor may complete at any time; the host only once the dispute
// window has elapsed, protecting the depositor's exclusive right to set
// the audit record during the window.
func (k Keeper) CompleteSession(ctx context.Context, caller sdk.AccAddress, sessionID uint64, auditRecord string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	session, err := k.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Status != types.StatusActive {
		return types.ErrSessionNotActive.Wrapf("session %d is %s", sessionID, session.Status)
	}

	switch caller.String() {
	case session.Depositor:
		// Always allowed.
	case session.Host:
		windowEnd := session.StartTime.Unix() + k.disputeWindowSeconds(ctx)
		if sdkCtx.BlockTime().Unix() < windowEnd {
			return types.ErrDisputeWindowActive.Wrapf("host may complete after %d", windowEnd)
		}
	default:
		return types.ErrUnauthorized.Wrap("only the depositor or host may complete a session")
	}

	session.AuditRecord = auditRecord
	result, err := k.settle(ctx, session, types.StatusCompleted)
	if err != nil {
		return err
	}

	k.metrics.SessionsCompleted.WithLabelValues(session.Denom).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSessionCompleted,
			sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", sessionID)),
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyDepositor, session.Depositor),
			sdk.NewAttribute(types.AttributeKeyHost, session.Host),
			sdk.NewAttribute(types.AttributeKeyDenom, session.Denom),
			sdk.NewAttribute(types.AttributeKeyTokensUsed, session.TokensUsed.String()),
			sdk.NewAttribute(types.AttributeKeyNetPayment, result.NetHostPayment.String()),
			sdk.NewAttribute(types.AttributeKeyRefund, result.Refund.String()),
			sdk.NewAttribute(types.AttributeKeyAuditRecord, auditRecord),
		),
	)
	return nil
}

// TimeoutSession forces an abandoned session into TimedOut. Anyone may
// trigger it once the duration or inactivity deadline has passed, so an
// abandoned session is always eventually closeable.
func (k Keeper) TimeoutSession(ctx context.Context, caller sdk.AccAddress, sessionID uint64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	session, err := k.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Status != types.StatusActive {
		return types.ErrSessionNotActive.Wrapf("session %d is %s", sessionID, session.Status)
	}

	now := sdkCtx.BlockTime().Unix()
	hardDeadline := session.StartTime.Unix() + session.MaxDurationSeconds
	inactivityDeadline := session.LastProofTime.Unix() + types.InactivityTimeoutMultiplier*session.ProofIntervalSeconds
	if now <= hardDeadline && now <= inactivityDeadline {
		return types.ErrTimeoutNotReached.Wrapf("deadlines at %d (duration) and %d (inactivity), now %d", hardDeadline, inactivityDeadline, now)
	}

	result, err := k.settle(ctx, session, types.StatusTimedOut)
	if err != nil {
		return err
	}

	k.metrics.SessionsTimedOut.WithLabelValues(session.Denom).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSessionTimedOut,
			sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", sessionID)),
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyDepositor, session.Depositor),
			sdk.NewAttribute(types.AttributeKeyHost, session.Host),
			sdk.NewAttribute(types.AttributeKeyDenom, session.Denom),
			sdk.NewAttribute(types.AttributeKeyTokensUsed, session.TokensUsed.String()),
			sdk.NewAttribute(types.AttributeKeyNetPayment, result.NetHostPayment.String()),
			sdk.NewAttribute(types.AttributeKeyRefund, result.Refund.String()),
		),
	)
	return nil
}

// disputeWindowSeconds reads the configured dispute window, falling back
// to the default on a params read failure.
func (k Keeper) disputeWindowSeconds(ctx context.Context) int64 {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.DefaultParams().DisputeWindowSeconds
	}
	return params.DisputeWindowSeconds
}
