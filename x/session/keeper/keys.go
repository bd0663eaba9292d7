package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// SessionKeyPrefix is the prefix for session storage
	SessionKeyPrefix = []byte{0x02}

	// NextSessionIDKey is the key for the next session ID counter
	NextSessionIDKey = []byte{0x03}

	// ProofKeyPrefix is the prefix for the per-session append-only proof log
	ProofKeyPrefix = []byte{0x04}

	// ProofHashKeyPrefix marks proof hashes already recorded for a session
	ProofHashKeyPrefix = []byte{0x05}

	// BalanceKeyPrefix is the prefix for (owner, denom) ledger balances
	BalanceKeyPrefix = []byte{0x06}

	// EarningsKeyPrefix is the prefix for (host, denom) unclaimed earnings
	EarningsKeyPrefix = []byte{0x07}

	// TreasuryAccrualKeyPrefix is the prefix for per-denom fee accruals
	TreasuryAccrualKeyPrefix = []byte{0x08}

	// SessionsByDepositorPrefix indexes sessions by depositor
	SessionsByDepositorPrefix = []byte{0x09}

	// SessionsByHostPrefix indexes sessions by host
	SessionsByHostPrefix = []byte{0x0A}

	// SessionDeadlinePrefix indexes active sessions by their next timeout
	// deadline for the end-block sweep
	SessionDeadlinePrefix = []byte{0x0B}

	// SessionDeadlineReversePrefix maps session ID back to its indexed
	// deadline for O(1) removal
	SessionDeadlineReversePrefix = []byte{0x0C}

	// SettledKeyPrefix tracks whether a session has already settled funds.
	// It doubles as the single-entry guard on the settlement path.
	SettledKeyPrefix = []byte{0x0D}

	// AuditKeyPrefix is the prefix for stored settlement audit entries
	AuditKeyPrefix = []byte{0x0E}
)

func uint64Key(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return bz
}

// SessionKey returns the store key for a session.
func SessionKey(id uint64) []byte {
	return append(SessionKeyPrefix, uint64Key(id)...)
}

// ProofKey returns the store key for one proof log entry.
func ProofKey(sessionID, index uint64) []byte {
	key := append(ProofKeyPrefix, uint64Key(sessionID)...)
	return append(key, uint64Key(index)...)
}

// ProofKeyPrefixForSession returns the iteration prefix over a session's
// proof log.
func ProofKeyPrefixForSession(sessionID uint64) []byte {
	return append(ProofKeyPrefix, uint64Key(sessionID)...)
}

// ProofHashKey returns the replay-guard key for a proof hash within a
// session.
func ProofHashKey(sessionID uint64, hash string) []byte {
	key := append(ProofHashKeyPrefix, uint64Key(sessionID)...)
	return append(key, []byte(hash)...)
}

// BalanceKey returns the ledger balance key for (owner, denom).
func BalanceKey(owner sdk.AccAddress, denom string) []byte {
	key := append(BalanceKeyPrefix, address.MustLengthPrefix(owner)...)
	return append(key, []byte(denom)...)
}

// EarningsKey returns the earnings key for (host, denom).
func EarningsKey(host sdk.AccAddress, denom string) []byte {
	key := append(EarningsKeyPrefix, address.MustLengthPrefix(host)...)
	return append(key, []byte(denom)...)
}

// TreasuryAccrualKey returns the fee accrual key for a denom.
func TreasuryAccrualKey(denom string) []byte {
	return append(TreasuryAccrualKeyPrefix, []byte(denom)...)
}

// SessionByDepositorKey returns the depositor index key for a session.
func SessionByDepositorKey(depositor sdk.AccAddress, sessionID uint64) []byte {
	key := append(SessionsByDepositorPrefix, address.MustLengthPrefix(depositor)...)
	return append(key, uint64Key(sessionID)...)
}

// SessionByHostKey returns the host index key for a session.
func SessionByHostKey(host sdk.AccAddress, sessionID uint64) []byte {
	key := append(SessionsByHostPrefix, address.MustLengthPrefix(host)...)
	return append(key, uint64Key(sessionID)...)
}

// SessionDeadlineKey returns the deadline index key for a session.
func SessionDeadlineKey(deadlineUnix int64, sessionID uint64) []byte {
	key := append(SessionDeadlinePrefix, uint64Key(uint64(deadlineUnix))...)
	return append(key, uint64Key(sessionID)...)
}

// SessionDeadlineReverseKey returns the reverse deadline index key.
func SessionDeadlineReverseKey(sessionID uint64) []byte {
	return append(SessionDeadlineReversePrefix, uint64Key(sessionID)...)
}

// SettledKey returns the settled marker key for a session.
func SettledKey(sessionID uint64) []byte {
	return append(SettledKeyPrefix, uint64Key(sessionID)...)
}

// AuditKey returns the store key for a settlement audit entry.
func AuditKey(sessionID uint64) []byte {
	return append(AuditKeyPrefix, uint64Key(sessionID)...)
}
