package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SessionStatus is the lifecycle state of a session. Active is the only
// non-terminal state; Completed and TimedOut are final.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
	StatusTimedOut  SessionStatus = "timed_out"
)

// IsTerminal reports whether the status admits no further transitions.
func (s SessionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusTimedOut
}

// Valid reports whether the status is one of the known states.
func (s SessionStatus) Valid() bool {
	return s == StatusActive || s.IsTerminal()
}

// Session is a bounded, priced, proof-metered unit of work between one
// depositor and one host. Deposit and PricePerToken are immutable after
// creation; TokensUsed only grows while the session is active;
// WithdrawnByHost and RefundedToUser are written exactly once, at
// settlement.
type Session struct {
	Id        uint64 `json:"id"`
	Depositor string `json:"depositor"`
	Host      string `json:"host"`
	Denom     string `json:"denom"`
	ModelId   string `json:"model_id,omitempty"`

	Deposit       math.Int `json:"deposit"`
	PricePerToken math.Int `json:"price_per_token"`
	TokensUsed    math.Int `json:"tokens_used"`

	MaxDurationSeconds   int64     `json:"max_duration_seconds"`
	ProofIntervalSeconds int64     `json:"proof_interval_seconds"`
	StartTime            time.Time `json:"start_time"`
	LastProofTime        time.Time `json:"last_proof_time"`

	Status     SessionStatus `json:"status"`
	ProofCount uint64        `json:"proof_count"`

	// FundedFromBalance records whether the deposit was carved out of the
	// depositor's ledger balance; refunds go back the same way.
	FundedFromBalance bool `json:"funded_from_balance"`

	WithdrawnByHost math.Int `json:"withdrawn_by_host"`
	RefundedToUser  math.Int `json:"refunded_to_user"`
	AuditRecord     string   `json:"audit_record,omitempty"`
}

// MaxTokens returns the most work tokens the deposit can ever fund,
// deposit / pricePerToken rounded down.
func (s Session) MaxTokens() math.Int {
	return s.Deposit.Quo(s.PricePerToken)
}

// RemainingTokens returns how many more tokens can still be proven.
func (s Session) RemainingTokens() math.Int {
	return s.MaxTokens().Sub(s.TokensUsed)
}

// Validate performs structural validation of a session record.
func (s Session) Validate() error {
	if s.Id == 0 {
		return fmt.Errorf("session id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(s.Depositor); err != nil {
		return fmt.Errorf("invalid depositor address %s: %w", s.Depositor, err)
	}
	if _, err := sdk.AccAddressFromBech32(s.Host); err != nil {
		return fmt.Errorf("invalid host address %s: %w", s.Host, err)
	}
	if s.Depositor == s.Host {
		return fmt.Errorf("depositor and host must be distinct")
	}
	if err := sdk.ValidateDenom(s.Denom); err != nil {
		return fmt.Errorf("invalid denom %s: %w", s.Denom, err)
	}
	if s.Deposit.IsNil() || !s.Deposit.IsPositive() {
		return fmt.Errorf("deposit must be positive")
	}
	if s.PricePerToken.IsNil() || !s.PricePerToken.IsPositive() {
		return fmt.Errorf("price per token must be positive")
	}
	if s.TokensUsed.IsNil() || s.TokensUsed.IsNegative() {
		return fmt.Errorf("tokens used cannot be negative")
	}
	if s.TokensUsed.GT(s.MaxTokens()) {
		return fmt.Errorf("tokens used %s exceed deposit capacity %s", s.TokensUsed, s.MaxTokens())
	}
	if s.MaxDurationSeconds <= 0 || s.MaxDurationSeconds > MaxSessionDurationSeconds {
		return fmt.Errorf("max duration must be in (0, 1 year]")
	}
	if s.ProofIntervalSeconds <= 0 {
		return fmt.Errorf("proof interval must be positive")
	}
	if !s.Status.Valid() {
		return fmt.Errorf("unknown status %q", s.Status)
	}
	if s.WithdrawnByHost.IsNil() || s.WithdrawnByHost.IsNegative() {
		return fmt.Errorf("withdrawn by host cannot be negative")
	}
	if s.RefundedToUser.IsNil() || s.RefundedToUser.IsNegative() {
		return fmt.Errorf("refunded to user cannot be negative")
	}
	if s.Status == StatusActive && (!s.WithdrawnByHost.IsZero() || !s.RefundedToUser.IsZero()) {
		return fmt.Errorf("active session cannot have settlement amounts")
	}
	return nil
}

// ProofRecord is one accepted proof-of-work checkpoint in a session's
// append-only proof log. Records are never mutated after insertion.
type ProofRecord struct {
	SessionId uint64    `json:"session_id"`
	Index     uint64    `json:"index"`
	Hash      string    `json:"hash"`
	Tokens    math.Int  `json:"tokens"`
	Timestamp time.Time `json:"timestamp"`
	Verified  bool      `json:"verified"`
}

// Validate performs structural validation of a proof record.
func (p ProofRecord) Validate() error {
	if p.SessionId == 0 {
		return fmt.Errorf("proof session id cannot be zero")
	}
	if p.Hash == "" {
		return fmt.Errorf("proof hash cannot be empty")
	}
	if p.Tokens.IsNil() || !p.Tokens.IsPositive() {
		return fmt.Errorf("proof tokens must be positive")
	}
	return nil
}

// ProofCheckpoint is the claimed-work record handed to the external proof
// verifier together with the claimed host and token count.
type ProofCheckpoint struct {
	Hash string `json:"hash"`
	Data []byte `json:"data,omitempty"`
}

// LedgerBalance is one (owner, denom) prepaid balance entry.
type LedgerBalance struct {
	Owner  string   `json:"owner"`
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// EarningsEntry is one (host, denom) unclaimed earnings entry in the
// pull-payment ledger.
type EarningsEntry struct {
	Host   string   `json:"host"`
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// TreasuryAccrual is the per-denom running total of uncollected fees.
type TreasuryAccrual struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}
