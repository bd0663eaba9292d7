package types

// Event types for the session module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeSessionCreated   = "session_created"
	EventTypeProofSubmitted   = "session_proof_submitted"
	EventTypeSessionCompleted = "session_completed"
	EventTypeSessionTimedOut  = "session_timed_out"
	EventTypeSettlement       = "session_settlement"

	EventTypeDepositReceived     = "session_deposit_received"
	EventTypeWithdrawalProcessed = "session_withdrawal_processed"

	EventTypeEarningsCredited  = "session_earnings_credited"
	EventTypeEarningsWithdrawn = "session_earnings_withdrawn"
	EventTypeTreasuryAccrued   = "session_treasury_accrued"
)

// Event attribute keys for the session module
const (
	AttributeKeySessionID = "session_id"
	AttributeKeyDepositor = "depositor"
	AttributeKeyHost      = "host"
	AttributeKeyOwner     = "owner"
	AttributeKeyDenom     = "denom"
	AttributeKeyModelID   = "model_id"

	AttributeKeyDeposit       = "deposit"
	AttributeKeyPricePerToken = "price_per_token"
	AttributeKeyAmount        = "amount"
	AttributeKeyTokens        = "tokens"
	AttributeKeyTokensUsed    = "tokens_used"
	AttributeKeyProofHash     = "proof_hash"
	AttributeKeyProofIndex    = "proof_index"

	AttributeKeyGrossPayment = "gross_payment"
	AttributeKeyNetPayment   = "net_payment"
	AttributeKeyTreasuryFee  = "treasury_fee"
	AttributeKeyRefund       = "refund"
	AttributeKeyCause        = "cause"
	AttributeKeyAuditRecord  = "audit_record"
	AttributeKeyCaller       = "caller"
)
