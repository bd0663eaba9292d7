package keeper

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

// SettlementAuditEntry is the immutable per-settlement record kept for
// reconciliation and dispute review.
type SettlementAuditEntry struct {
	SessionId      uint64    `json:"session_id"`
	BlockHeight    int64     `json:"block_height"`
	Timestamp      time.Time `json:"timestamp"`
	TxHash         string    `json:"tx_hash,omitempty"`
	Status         string    `json:"status"`
	Depositor      string    `json:"depositor"`
	Host           string    `json:"host"`
	Denom          string    `json:"denom"`
	TokensUsed     string    `json:"tokens_used"`
	GrossPayment   string    `json:"gross_payment"`
	TreasuryFee    string    `json:"treasury_fee"`
	NetHostPayment string    `json:"net_host_payment"`
	Refund         string    `json:"refund"`
	AuditRecord    string    `json:"audit_record,omitempty"`
}

// recordSettlementAudit writes the settlement audit entry. One entry per
// session, keyed by session id; settlement runs once so the key is never
// overwritten.
func (k Keeper) recordSettlementAudit(ctx context.Context, session types.Session, result SettlementResult) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	entry := SettlementAuditEntry{
		SessionId:      session.Id,
		BlockHeight:    sdkCtx.BlockHeight(),
		Timestamp:      sdkCtx.BlockTime(),
		Status:         string(session.Status),
		Depositor:      session.Depositor,
		Host:           session.Host,
		Denom:          session.Denom,
		TokensUsed:     session.TokensUsed.String(),
		GrossPayment:   result.GrossPayment.String(),
		TreasuryFee:    result.TreasuryFee.String(),
		NetHostPayment: result.NetHostPayment.String(),
		Refund:         result.Refund.String(),
		AuditRecord:    session.AuditRecord,
	}
	if txBytes := sdkCtx.TxBytes(); len(txBytes) > 0 {
		hash := sha256.Sum256(txBytes)
		entry.TxHash = fmt.Sprintf("%X", hash)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal settlement audit entry: %w", err)
	}
	k.getStore(ctx).Set(AuditKey(session.Id), data)
	return nil
}

// GetSettlementAudit returns the audit entry for a settled session.
func (k Keeper) GetSettlementAudit(ctx context.Context, sessionID uint64) (SettlementAuditEntry, bool) {
	bz := k.getStore(ctx).Get(AuditKey(sessionID))
	if bz == nil {
		return SettlementAuditEntry{}, false
	}
	var entry SettlementAuditEntry
	if err := json.Unmarshal(bz, &entry); err != nil {
		return SettlementAuditEntry{}, false
	}
	return entry, true
}
