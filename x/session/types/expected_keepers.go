package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected account keeper.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
	GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI
}

// BankKeeper defines the expected bank keeper. The module account holds
// session deposits, prepaid ledger balances, unclaimed host earnings and
// accrued treasury fees.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// HostKeeper is the host/model pricing oracle consumed at session
// creation. The session module never owns host registry state, it only
// queries it.
type HostKeeper interface {
	// IsHostActive reports whether the host identity is registered and
	// currently accepting sessions.
	IsHostActive(ctx context.Context, host sdk.AccAddress) bool

	// MinPrice returns the minimum price per token the host accepts for
	// the given asset and model. An error aborts session creation.
	MinPrice(ctx context.Context, host sdk.AccAddress, denom, modelId string) (math.Int, error)
}

// ProofVerifier authenticates a claimed-work checkpoint against the
// claimed host and token count. Implementations mark the record consumed,
// so a replayed checkpoint fails verification.
type ProofVerifier interface {
	Verify(ctx context.Context, host sdk.AccAddress, tokens math.Int, checkpoint ProofCheckpoint) error
}
