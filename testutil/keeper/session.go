package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	"github.com/paystream-chain/paystream/x/session/keeper"
	"github.com/paystream-chain/paystream/x/session/types"
)

// MockHostKeeper is a configurable host registry for tests. Hosts default
// to active with a zero minimum price unless overridden.
type MockHostKeeper struct {
	Inactive  map[string]bool
	MinPrices map[string]math.Int
}

func NewMockHostKeeper() *MockHostKeeper {
	return &MockHostKeeper{
		Inactive:  make(map[string]bool),
		MinPrices: make(map[string]math.Int),
	}
}

func (m *MockHostKeeper) IsHostActive(_ context.Context, host sdk.AccAddress) bool {
	return !m.Inactive[host.String()]
}

func (m *MockHostKeeper) MinPrice(_ context.Context, host sdk.AccAddress, _ string, _ string) (math.Int, error) {
	if price, ok := m.MinPrices[host.String()]; ok {
		return price, nil
	}
	return math.ZeroInt(), nil
}

// MockVerifier accepts every proof unless Err is set.
type MockVerifier struct {
	Err error
}

func (m *MockVerifier) Verify(_ context.Context, _ sdk.AccAddress, _ math.Int, _ types.ProofCheckpoint) error {
	return m.Err
}

// Fixture bundles the session keeper with its real bank/auth backing
// stores and its mock collaborators.
type Fixture struct {
	Keeper        *keeper.Keeper
	Ctx           sdk.Context
	BankKeeper    bankkeeper.BaseKeeper
	AccountKeeper authkeeper.AccountKeeper
	HostKeeper    *MockHostKeeper
	Verifier      *MockVerifier
	Authority     string

	storeKey storetypes.StoreKey
	cdc      codec.Codec
}

// KeeperWithBank returns a keeper over the fixture's store with the bank
// keeper swapped out, for exercising transfer failures mid-operation.
func (f Fixture) KeeperWithBank(bk types.BankKeeper) *keeper.Keeper {
	return keeper.NewKeeper(f.cdc, f.storeKey, bk, f.AccountKeeper, f.HostKeeper, f.Verifier, f.Authority)
}

// SessionKeeper creates a test keeper for the session module backed by an
// in-memory multistore and real auth/bank keepers.
func SessionKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	f := SessionFixture(t)
	return f.Keeper, f.Ctx
}

// SessionFixture creates the full test fixture for the session module.
func SessionFixture(t testing.TB) Fixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		types.ModuleName:           nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	hostKeeper := NewMockHostKeeper()
	verifier := &MockVerifier{}

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bankKeeper,
		accountKeeper,
		hostKeeper,
		verifier,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{
		Height: 1,
		Time:   time.Unix(1_700_000_000, 0).UTC(),
	}, false, log.NewNopLogger())

	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return Fixture{
		Keeper:        k,
		Ctx:           ctx,
		BankKeeper:    bankKeeper,
		AccountKeeper: accountKeeper,
		HostKeeper:    hostKeeper,
		Verifier:      verifier,
		Authority:     authority.String(),
		storeKey:      storeKey,
		cdc:           cdc,
	}
}

// FundAccount mints coins and sends them to the given account.
func (f Fixture) FundAccount(t testing.TB, addr sdk.AccAddress, coins sdk.Coins) {
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, coins))
}

// AdvanceTime returns a context whose block time has moved forward by d
// and whose height has advanced one block.
func (f *Fixture) AdvanceTime(d time.Duration) sdk.Context {
	f.Ctx = f.Ctx.
		WithBlockTime(f.Ctx.BlockTime().Add(d)).
		WithBlockHeight(f.Ctx.BlockHeight() + 1)
	return f.Ctx
}
