package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the session module's exported state.
type GenesisState struct {
	Params           Params            `json:"params"`
	NextSessionId    uint64            `json:"next_session_id"`
	Sessions         []Session         `json:"sessions"`
	Proofs           []ProofRecord     `json:"proofs"`
	Balances         []LedgerBalance   `json:"balances"`
	Earnings         []EarningsEntry   `json:"earnings"`
	TreasuryAccruals []TreasuryAccrual `json:"treasury_accruals"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		NextSessionId: 1,
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if gs.NextSessionId == 0 {
		return fmt.Errorf("next session id must be positive")
	}

	seenIds := make(map[uint64]bool, len(gs.Sessions))
	for i, session := range gs.Sessions {
		if err := session.Validate(); err != nil {
			return fmt.Errorf("session %d (id=%d): %w", i, session.Id, err)
		}
		if seenIds[session.Id] {
			return fmt.Errorf("duplicate session id %d", session.Id)
		}
		seenIds[session.Id] = true
		if session.Id >= gs.NextSessionId {
			return fmt.Errorf("session id %d not below next session id %d", session.Id, gs.NextSessionId)
		}
	}

	for i, proof := range gs.Proofs {
		if err := proof.Validate(); err != nil {
			return fmt.Errorf("proof %d: %w", i, err)
		}
		if !seenIds[proof.SessionId] {
			return fmt.Errorf("proof %d references unknown session %d", i, proof.SessionId)
		}
	}

	seenBalances := make(map[string]bool, len(gs.Balances))
	for i, balance := range gs.Balances {
		if _, err := sdk.AccAddressFromBech32(balance.Owner); err != nil {
			return fmt.Errorf("balance %d: invalid owner: %w", i, err)
		}
		if err := sdk.ValidateDenom(balance.Denom); err != nil {
			return fmt.Errorf("balance %d: invalid denom: %w", i, err)
		}
		if balance.Amount.IsNil() || balance.Amount.IsNegative() {
			return fmt.Errorf("balance %d: amount cannot be negative", i)
		}
		key := balance.Owner + "/" + balance.Denom
		if seenBalances[key] {
			return fmt.Errorf("duplicate balance entry for %s", key)
		}
		seenBalances[key] = true
	}

	seenEarnings := make(map[string]bool, len(gs.Earnings))
	for i, entry := range gs.Earnings {
		if _, err := sdk.AccAddressFromBech32(entry.Host); err != nil {
			return fmt.Errorf("earnings %d: invalid host: %w", i, err)
		}
		if err := sdk.ValidateDenom(entry.Denom); err != nil {
			return fmt.Errorf("earnings %d: invalid denom: %w", i, err)
		}
		if entry.Amount.IsNil() || entry.Amount.IsNegative() {
			return fmt.Errorf("earnings %d: amount cannot be negative", i)
		}
		key := entry.Host + "/" + entry.Denom
		if seenEarnings[key] {
			return fmt.Errorf("duplicate earnings entry for %s", key)
		}
		seenEarnings[key] = true
	}

	seenAccruals := make(map[string]bool, len(gs.TreasuryAccruals))
	for i, accrual := range gs.TreasuryAccruals {
		if err := sdk.ValidateDenom(accrual.Denom); err != nil {
			return fmt.Errorf("treasury accrual %d: invalid denom: %w", i, err)
		}
		if accrual.Amount.IsNil() || accrual.Amount.IsNegative() {
			return fmt.Errorf("treasury accrual %d: amount cannot be negative", i)
		}
		if seenAccruals[accrual.Denom] {
			return fmt.Errorf("duplicate treasury accrual for %s", accrual.Denom)
		}
		seenAccruals[accrual.Denom] = true
	}

	return nil
}
