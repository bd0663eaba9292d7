package types

const (
	// ModuleName defines the module name
	ModuleName = "session"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for session
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

const (
	// FeeDenominator is the divisor for fee rates expressed in basis points.
	FeeDenominator = 10_000

	// MaxSessionDurationSeconds caps session lifetimes at one year.
	MaxSessionDurationSeconds = 365 * 24 * 3600

	// InactivityTimeoutMultiplier is how many missed proof intervals make a
	// host presumed unresponsive.
	InactivityTimeoutMultiplier = 3
)
