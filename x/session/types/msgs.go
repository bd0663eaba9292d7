package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreateSession    = "create_session"
	TypeMsgSubmitProof      = "submit_proof"
	TypeMsgCompleteSession  = "complete_session"
	TypeMsgTimeoutSession   = "timeout_session"
	TypeMsgDeposit          = "deposit"
	TypeMsgWithdraw         = "withdraw"
	TypeMsgWithdrawEarnings = "withdraw_earnings"
	TypeMsgUpdateParams     = "update_params"
)

var (
	_ sdk.Msg = &MsgCreateSession{}
	_ sdk.Msg = &MsgSubmitProof{}
	_ sdk.Msg = &MsgCompleteSession{}
	_ sdk.Msg = &MsgTimeoutSession{}
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgWithdrawEarnings{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgCreateSession opens a new metered session between a depositor and a
// host, locking the deposit for its lifetime.
type MsgCreateSession struct {
	Depositor            string   `json:"depositor"`
	Host                 string   `json:"host"`
	Denom                string   `json:"denom"`
	Deposit              math.Int `json:"deposit"`
	PricePerToken        math.Int `json:"price_per_token"`
	MaxDurationSeconds   int64    `json:"max_duration_seconds"`
	ProofIntervalSeconds int64    `json:"proof_interval_seconds"`
	ModelId              string   `json:"model_id,omitempty"`
	FromBalance          bool     `json:"from_balance"`
}

// MsgCreateSessionResponse carries the id of the created session.
type MsgCreateSessionResponse struct {
	SessionId uint64 `json:"session_id"`
}

// ValidateBasic performs stateless validation of MsgCreateSession.
func (msg *MsgCreateSession) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return fmt.Errorf("invalid depositor address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Host); err != nil {
		return fmt.Errorf("invalid host address: %w", err)
	}
	if msg.Depositor == msg.Host {
		return fmt.Errorf("depositor and host must be distinct")
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return fmt.Errorf("invalid denom: %w", err)
	}
	if msg.Deposit.IsNil() || !msg.Deposit.IsPositive() {
		return fmt.Errorf("deposit must be positive")
	}
	if msg.PricePerToken.IsNil() || !msg.PricePerToken.IsPositive() {
		return fmt.Errorf("price per token must be positive")
	}
	if msg.MaxDurationSeconds <= 0 || msg.MaxDurationSeconds > MaxSessionDurationSeconds {
		return fmt.Errorf("max duration must be in (0, 1 year]")
	}
	if msg.ProofIntervalSeconds <= 0 {
		return fmt.Errorf("proof interval must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgCreateSession.
func (msg *MsgCreateSession) GetSigners() []sdk.AccAddress {
	depositor, _ := sdk.AccAddressFromBech32(msg.Depositor)
	return []sdk.AccAddress{depositor}
}

// MsgSubmitProof submits one proof-of-work checkpoint for an active
// session. Only the session's host may submit.
type MsgSubmitProof struct {
	Host      string   `json:"host"`
	SessionId uint64   `json:"session_id"`
	Tokens    math.Int `json:"tokens"`
	ProofHash string   `json:"proof_hash"`
	ProofData []byte   `json:"proof_data,omitempty"`
}

// MsgSubmitProofResponse carries the cumulative proven tokens after the
// submission.
type MsgSubmitProofResponse struct {
	TokensUsed math.Int `json:"tokens_used"`
}

// ValidateBasic performs stateless validation of MsgSubmitProof.
func (msg *MsgSubmitProof) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Host); err != nil {
		return fmt.Errorf("invalid host address: %w", err)
	}
	if msg.SessionId == 0 {
		return fmt.Errorf("session id cannot be zero")
	}
	if msg.Tokens.IsNil() || !msg.Tokens.IsPositive() {
		return fmt.Errorf("claimed tokens must be positive")
	}
	if msg.ProofHash == "" {
		return fmt.Errorf("proof hash cannot be empty")
	}
	return nil
}

// GetSigners returns the expected signers for MsgSubmitProof.
func (msg *MsgSubmitProof) GetSigners() []sdk.AccAddress {
	host, _ := sdk.AccAddressFromBech32(msg.Host)
	return []sdk.AccAddress{host}
}

// MsgCompleteSession voluntarily finishes a session and settles it. The
// depositor may complete at any time; the host only after the dispute
// window has elapsed.
type MsgCompleteSession struct {
	Caller      string `json:"caller"`
	SessionId   uint64 `json:"session_id"`
	AuditRecord string `json:"audit_record,omitempty"`
}

// MsgCompleteSessionResponse is the response for MsgCompleteSession.
type MsgCompleteSessionResponse struct{}

// ValidateBasic performs stateless validation of MsgCompleteSession.
func (msg *MsgCompleteSession) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return fmt.Errorf("invalid caller address: %w", err)
	}
	if msg.SessionId == 0 {
		return fmt.Errorf("session id cannot be zero")
	}
	return nil
}

// GetSigners returns the expected signers for MsgCompleteSession.
func (msg *MsgCompleteSession) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// MsgTimeoutSession forces an abandoned session into its terminal state.
// Any caller may trigger it once the duration or inactivity deadline has
// passed.
type MsgTimeoutSession struct {
	Caller    string `json:"caller"`
	SessionId uint64 `json:"session_id"`
}

// MsgTimeoutSessionResponse is the response for MsgTimeoutSession.
type MsgTimeoutSessionResponse struct{}

// ValidateBasic performs stateless validation of MsgTimeoutSession.
func (msg *MsgTimeoutSession) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return fmt.Errorf("invalid caller address: %w", err)
	}
	if msg.SessionId == 0 {
		return fmt.Errorf("session id cannot be zero")
	}
	return nil
}

// GetSigners returns the expected signers for MsgTimeoutSession.
func (msg *MsgTimeoutSession) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// MsgDeposit credits the owner's prepaid ledger balance.
type MsgDeposit struct {
	Owner  string   `json:"owner"`
	Amount sdk.Coin `json:"amount"`
}

// MsgDepositResponse is the response for MsgDeposit.
type MsgDepositResponse struct{}

// ValidateBasic performs stateless validation of MsgDeposit.
func (msg *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	if err := msg.Amount.Validate(); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if msg.Amount.IsZero() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgDeposit.
func (msg *MsgDeposit) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// MsgWithdraw debits the owner's prepaid ledger balance back to their
// account.
type MsgWithdraw struct {
	Owner  string   `json:"owner"`
	Amount sdk.Coin `json:"amount"`
}

// MsgWithdrawResponse is the response for MsgWithdraw.
type MsgWithdrawResponse struct{}

// ValidateBasic performs stateless validation of MsgWithdraw.
func (msg *MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	if err := msg.Amount.Validate(); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if msg.Amount.IsZero() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgWithdraw.
func (msg *MsgWithdraw) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// MsgWithdrawEarnings pulls a host's accumulated settled earnings for one
// denom out of the module account.
type MsgWithdrawEarnings struct {
	Host  string `json:"host"`
	Denom string `json:"denom"`
}

// MsgWithdrawEarningsResponse carries the amount withdrawn.
type MsgWithdrawEarningsResponse struct {
	Amount sdk.Coin `json:"amount"`
}

// ValidateBasic performs stateless validation of MsgWithdrawEarnings.
func (msg *MsgWithdrawEarnings) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Host); err != nil {
		return fmt.Errorf("invalid host address: %w", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return fmt.Errorf("invalid denom: %w", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgWithdrawEarnings.
func (msg *MsgWithdrawEarnings) GetSigners() []sdk.AccAddress {
	host, _ := sdk.AccAddressFromBech32(msg.Host)
	return []sdk.AccAddress{host}
}

// MsgUpdateParams updates the module parameters. Only the governance
// authority may sign it.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the response for MsgUpdateParams.
type MsgUpdateParamsResponse struct{}

// ValidateBasic performs stateless validation of MsgUpdateParams.
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return msg.Params.Validate()
}

// GetSigners returns the expected signers for MsgUpdateParams.
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}
