package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/swaps-chain/swaps/x/swap/keeper"
	"github.com/swaps-chain/swaps/x/swap/types"
)

// GenesisTime is the fixed block time test contexts start at
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

// SwapKeeper creates a test keeper for the swap module backed by an
// in-memory multistore and a store-backed bank mock
func SwapKeeper(t testing.TB) (*keeper.Keeper, *BankMock, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	bankKey := storetypes.NewKVStoreKey("bankmock")
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	bank := NewBankMock(bankKey)

	k := keeper.NewKeeper(cdc, storeKey, bank)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, bank, ctx
}
