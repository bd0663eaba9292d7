package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paystream-chain/paystream/x/session/types"
)

// InitGenesis initializes the session module state from a genesis state.
// Terminal sessions get their settled marker so settlement can never run
// again for them; active sessions are re-indexed for the deadline sweep.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return types.ErrInvalidGenesis.Wrap(err.Error())
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.setNextSessionID(ctx, genState.NextSessionId)

	for _, session := range genState.Sessions {
		if err := k.SetSession(ctx, session); err != nil {
			return fmt.Errorf("session %d: %w", session.Id, err)
		}
		if session.Status.IsTerminal() {
			k.getStore(ctx).Set(SettledKey(session.Id), []byte{1})
		} else {
			k.setDeadlineIndex(ctx, session.Id, nextDeadline(session))
		}
	}

	for _, proof := range genState.Proofs {
		if err := k.appendProof(ctx, proof); err != nil {
			return fmt.Errorf("proof %d/%d: %w", proof.SessionId, proof.Index, err)
		}
	}

	for _, balance := range genState.Balances {
		owner, err := sdk.AccAddressFromBech32(balance.Owner)
		if err != nil {
			return err
		}
		if err := k.setLedgerBalance(ctx, owner, balance.Denom, balance.Amount); err != nil {
			return err
		}
	}

	for _, entry := range genState.Earnings {
		host, err := sdk.AccAddressFromBech32(entry.Host)
		if err != nil {
			return err
		}
		if err := k.setEarnings(ctx, host, entry.Denom, entry.Amount); err != nil {
			return err
		}
	}

	for _, accrual := range genState.TreasuryAccruals {
		if err := k.setTreasuryAccrual(ctx, accrual.Denom, accrual.Amount); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the session module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := types.GenesisState{
		Params:        params,
		NextSessionId: k.GetNextSessionID(ctx),
	}

	err = k.IterateSessions(ctx, func(session types.Session) (bool, error) {
		genState.Sessions = append(genState.Sessions, session)
		proofs, err := k.GetSessionProofs(ctx, session.Id)
		if err != nil {
			return true, err
		}
		genState.Proofs = append(genState.Proofs, proofs...)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateLedgerBalances(ctx, func(balance types.LedgerBalance) (bool, error) {
		genState.Balances = append(genState.Balances, balance)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateEarnings(ctx, func(entry types.EarningsEntry) (bool, error) {
		genState.Earnings = append(genState.Earnings, entry)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateTreasuryAccruals(ctx, func(accrual types.TreasuryAccrual) (bool, error) {
		genState.TreasuryAccruals = append(genState.TreasuryAccruals, accrual)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &genState, nil
}
