package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Session module sentinel errors

var (
	// Precondition violations: bad caller, wrong state, out-of-range inputs.
	// These always reject the whole operation with no state change.
	ErrInvalidAddress       = sdkerrors.Register(ModuleName, 2, "invalid address")
	ErrValidationFailed     = sdkerrors.Register(ModuleName, 3, "message validation failed")
	ErrUnauthorized         = sdkerrors.Register(ModuleName, 4, "unauthorized operation")
	ErrSessionNotFound      = sdkerrors.Register(ModuleName, 5, "session not found")
	ErrSessionNotActive     = sdkerrors.Register(ModuleName, 6, "session is not active")
	ErrInvalidDeposit       = sdkerrors.Register(ModuleName, 7, "deposit out of allowed range")
	ErrInvalidPrice         = sdkerrors.Register(ModuleName, 8, "price per token must be positive")
	ErrInvalidDuration      = sdkerrors.Register(ModuleName, 9, "invalid session duration")
	ErrInvalidProofInterval = sdkerrors.Register(ModuleName, 10, "proof interval must be positive")
	ErrAssetNotAllowed      = sdkerrors.Register(ModuleName, 11, "payment asset is not allow-listed")
	ErrDepositTooSmall      = sdkerrors.Register(ModuleName, 12, "deposit cannot fund a minimum proof")
	ErrDisputeWindowActive  = sdkerrors.Register(ModuleName, 13, "dispute window has not elapsed")
	ErrTimeoutNotReached    = sdkerrors.Register(ModuleName, 14, "timeout conditions not met")

	// Host / pricing oracle errors
	ErrHostNotActive     = sdkerrors.Register(ModuleName, 20, "host is not registered or active")
	ErrPriceBelowMinimum = sdkerrors.Register(ModuleName, 21, "price below host minimum")

	// Proof submission errors
	ErrClaimTooSmall          = sdkerrors.Register(ModuleName, 30, "claimed tokens below protocol floor")
	ErrClaimExceedsThroughput = sdkerrors.Register(ModuleName, 31, "claimed tokens exceed throughput ceiling")
	ErrClaimExceedsDeposit    = sdkerrors.Register(ModuleName, 32, "claimed tokens exceed remaining deposit")
	ErrProofRejected          = sdkerrors.Register(ModuleName, 33, "proof failed verification")
	ErrProofReplayed          = sdkerrors.Register(ModuleName, 34, "proof hash already recorded")

	// Ledger / fund movement errors
	ErrInsufficientBalance = sdkerrors.Register(ModuleName, 40, "insufficient ledger balance")
	ErrTransferFailed      = sdkerrors.Register(ModuleName, 41, "asset transfer failed")
	ErrNoEarnings          = sdkerrors.Register(ModuleName, 42, "no earnings to withdraw")

	// Settlement errors
	ErrAlreadySettled    = sdkerrors.Register(ModuleName, 50, "session already settled")
	ErrSettlementReentry = sdkerrors.Register(ModuleName, 51, "settlement re-entered")

	// Params / genesis errors
	ErrInvalidParams  = sdkerrors.Register(ModuleName, 60, "invalid module parameters")
	ErrInvalidGenesis = sdkerrors.Register(ModuleName, 61, "invalid genesis state")
)
