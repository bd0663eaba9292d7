package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// iterateAmountEntries walks a store section whose keys are
// prefix + length-prefixed address + denom and whose values are
// math.Int amounts. Both the deposit ledger and the earnings ledger use
// this layout.
func (k Keeper) iterateAmountEntries(ctx context.Context, prefix []byte, cb func(addr sdk.AccAddress, denom string, amount math.Int) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, prefix)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		key := iter.Key()[len(prefix):]
		if len(key) < 2 {
			return fmt.Errorf("malformed amount entry key %X", iter.Key())
		}
		addrLen := int(key[0])
		if len(key) < 1+addrLen+1 {
			return fmt.Errorf("malformed amount entry key %X", iter.Key())
		}
		addr := sdk.AccAddress(key[1 : 1+addrLen])
		denom := string(key[1+addrLen:])

		var amount math.Int
		if err := amount.Unmarshal(iter.Value()); err != nil {
			return fmt.Errorf("amount entry for %s/%s corrupt: %w", addr, denom, err)
		}

		stop, err := cb(addr, denom, amount)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}
