package keeper

import (
	"context"
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EndBlocker sweeps the deadline index and times out every session whose
// duration or inactivity deadline has passed. Each session settles in its
// own cache context so one failure cannot block the rest of the sweep.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	store := k.getStore(ctx)
	end := append([]byte{}, SessionDeadlinePrefix...)
	end = binary.BigEndian.AppendUint64(end, uint64(now+1))

	var due []uint64
	iterator := store.Iterator(SessionDeadlinePrefix, end)
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		// prefix byte, 8-byte deadline, 8-byte session id
		if len(key) != 17 {
			continue
		}
		due = append(due, binary.BigEndian.Uint64(key[9:]))
	}
	iterator.Close()

	if len(due) == 0 {
		return nil
	}
	k.metrics.DeadlineSweeps.Inc()

	sweeper := k.moduleAddress()
	for _, id := range due {
		cacheCtx, write := sdkCtx.CacheContext()
		if err := k.TimeoutSession(cacheCtx, sweeper, id); err != nil {
			// Stale index entries or not-yet-due sessions are skipped,
			// their index entry refreshed on the next proof or settle.
			k.Logger(sdkCtx).Debug("deadline sweep skipped session",
				"session_id", id, "err", err)
			continue
		}
		write()
		k.metrics.SweptSessions.Inc()
	}
	return nil
}
