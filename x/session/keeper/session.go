package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/paystream-chain/paystream/x/session/types"
)

// GetSession returns a session by id.
func (k Keeper) GetSession(ctx context.Context, id uint64) (types.Session, error) {
	store := k.getStore(ctx)
	bz := store.Get(SessionKey(id))
	if bz == nil {
		return types.Session{}, types.ErrSessionNotFound.Wrapf("id %d", id)
	}

	var session types.Session
	if err := json.Unmarshal(bz, &session); err != nil {
		return types.Session{}, fmt.Errorf("GetSession: unmarshal: %w", err)
	}
	return session, nil
}

// SetSession stores a session and maintains the party indexes.
func (k Keeper) SetSession(ctx context.Context, session types.Session) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&session)
	if err != nil {
		return fmt.Errorf("SetSession: marshal: %w", err)
	}
	store.Set(SessionKey(session.Id), bz)

	depositor, err := sdk.AccAddressFromBech32(session.Depositor)
	if err != nil {
		return err
	}
	host, err := sdk.AccAddressFromBech32(session.Host)
	if err != nil {
		return err
	}
	store.Set(SessionByDepositorKey(depositor, session.Id), []byte{})
	store.Set(SessionByHostKey(host, session.Id), []byte{})
	return nil
}

// IterateSessions iterates over all sessions in id order.
func (k Keeper) IterateSessions(ctx context.Context, cb func(session types.Session) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, SessionKeyPrefix)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var session types.Session
		if err := json.Unmarshal(iter.Value(), &session); err != nil {
			return fmt.Errorf("IterateSessions: unmarshal: %w", err)
		}
		stop, err := cb(session)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}

// IterateSessionsByParty iterates over the sessions indexed under the
// given party-index prefix ({SessionsByDepositorPrefix} or
// {SessionsByHostPrefix}) for the given address, in id order.
func (k Keeper) IterateSessionsByParty(ctx context.Context, indexPrefix []byte, party sdk.AccAddress, cb func(session types.Session) (stop bool, err error)) error {
	store := k.getStore(ctx)
	prefix := append(indexPrefix, address.MustLengthPrefix(party)...)
	iter := storetypes.KVStorePrefixIterator(store, prefix)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		key := iter.Key()
		id := binary.BigEndian.Uint64(key[len(key)-8:])
		session, err := k.GetSession(ctx, id)
		if err != nil {
			return err
		}
		stop, err := cb(session)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}

// nextSessionID allocates a fresh monotonically increasing session id.
func (k Keeper) nextSessionID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NextSessionIDKey)

	var nextID uint64 = 1
	if bz != nil {
		nextID = binary.BigEndian.Uint64(bz)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, nextID+1)
	store.Set(NextSessionIDKey, next)
	return nextID
}

// GetNextSessionID reads the counter without consuming it.
func (k Keeper) GetNextSessionID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NextSessionIDKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// setNextSessionID seeds the counter (genesis import only).
func (k Keeper) setNextSessionID(ctx context.Context, id uint64) {
	store := k.getStore(ctx)
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, id)
	store.Set(NextSessionIDKey, next)
}

// appendProof appends a record to a session's proof log. The log is
// append-only; records are never rewritten.
func (k Keeper) appendProof(ctx context.Context, proof types.ProofRecord) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&proof)
	if err != nil {
		return fmt.Errorf("appendProof: marshal: %w", err)
	}
	store.Set(ProofKey(proof.SessionId, proof.Index), bz)
	store.Set(ProofHashKey(proof.SessionId, proof.Hash), []byte{1})
	return nil
}

// HasProofHash reports whether a proof hash was already recorded for the
// session.
func (k Keeper) HasProofHash(ctx context.Context, sessionID uint64, hash string) bool {
	store := k.getStore(ctx)
	return store.Has(ProofHashKey(sessionID, hash))
}

// GetSessionProofs returns the full proof log of a session in submission
// order.
func (k Keeper) GetSessionProofs(ctx context.Context, sessionID uint64) ([]types.ProofRecord, error) {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, ProofKeyPrefixForSession(sessionID))
	defer iter.Close()

	var proofs []types.ProofRecord
	for ; iter.Valid(); iter.Next() {
		var proof types.ProofRecord
		if err := json.Unmarshal(iter.Value(), &proof); err != nil {
			return nil, fmt.Errorf("GetSessionProofs: unmarshal: %w", err)
		}
		proofs = append(proofs, proof)
	}
	return proofs, nil
}

// setDeadlineIndex records the session's next timeout deadline for the
// end-block sweep, replacing any previous entry.
func (k Keeper) setDeadlineIndex(ctx context.Context, sessionID uint64, deadlineUnix int64) {
	store := k.getStore(ctx)
	k.removeDeadlineIndex(ctx, sessionID)
	store.Set(SessionDeadlineKey(deadlineUnix, sessionID), []byte{})
	store.Set(SessionDeadlineReverseKey(sessionID), uint64Key(uint64(deadlineUnix)))
}

// removeDeadlineIndex drops the session from the deadline index.
func (k Keeper) removeDeadlineIndex(ctx context.Context, sessionID uint64) {
	store := k.getStore(ctx)
	bz := store.Get(SessionDeadlineReverseKey(sessionID))
	if bz == nil {
		return
	}
	deadline := binary.BigEndian.Uint64(bz)
	store.Delete(SessionDeadlineKey(int64(deadline), sessionID))
	store.Delete(SessionDeadlineReverseKey(sessionID))
}

// nextDeadline returns the earlier of the session's hard duration
// deadline and its proof-inactivity deadline.
func nextDeadline(session types.Session) int64 {
	hard := session.StartTime.Unix() + session.MaxDurationSeconds
	inactivity := session.LastProofTime.Unix() + types.InactivityTimeoutMultiplier*session.ProofIntervalSeconds
	if inactivity < hard {
		return inactivity
	}
	return hard
}
