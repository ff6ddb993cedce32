package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// BankMock is a minimal bank keeper for tests. Balances live in a KVStore
// mounted on the same multistore as the module under test, so CacheContext
// branches roll balances back together with module state.
type BankMock struct {
	storeKey storetypes.StoreKey
}

var _ types.BankKeeper = (*BankMock)(nil)

// NewBankMock returns a bank mock persisting balances under storeKey
func NewBankMock(storeKey storetypes.StoreKey) *BankMock {
	return &BankMock{storeKey: storeKey}
}

func (b *BankMock) store(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(b.storeKey)
}

func balanceKey(addr sdk.AccAddress, denom string) []byte {
	key := []byte{byte(len(addr))}
	key = append(key, addr.Bytes()...)
	key = append(key, []byte(denom)...)
	return key
}

func (b *BankMock) getBalance(ctx context.Context, addr sdk.AccAddress, denom string) math.Int {
	bz := b.store(ctx).Get(balanceKey(addr, denom))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}

func (b *BankMock) setBalance(ctx context.Context, addr sdk.AccAddress, denom string, amount math.Int) {
	store := b.store(ctx)
	if amount.IsZero() {
		store.Delete(balanceKey(addr, denom))
		return
	}

	bz, err := amount.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(balanceKey(addr, denom), bz)
}

// SetBalance force-sets a balance, bypassing transfer checks
func (b *BankMock) SetBalance(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) {
	b.setBalance(ctx, addr, coin.Denom, coin.Amount)
}

// FundAccount credits coins to addr out of thin air
func (b *BankMock) FundAccount(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) {
	for _, coin := range coins {
		b.setBalance(ctx, addr, coin.Denom, b.getBalance(ctx, addr, coin.Denom).Add(coin.Amount))
	}
}

// GetBalance implements types.BankKeeper
func (b *BankMock) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.getBalance(ctx, addr, denom))
}

// GetAllBalances implements types.BankKeeper. The mock tracks denoms per
// lookup only, so it scans the full balance space.
func (b *BankMock) GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	var coins sdk.Coins
	prefix := []byte{byte(len(addr))}
	prefix = append(prefix, addr.Bytes()...)
	iterator := storetypes.KVStorePrefixIterator(b.store(ctx), prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom := string(iterator.Key()[len(prefix):])

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		coins = coins.Add(sdk.NewCoin(denom, amount))
	}
	return coins
}

// SpendableCoins implements types.BankKeeper; the mock has no vesting locks
func (b *BankMock) SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	return b.GetAllBalances(ctx, addr)
}

// SendCoins implements types.BankKeeper
func (b *BankMock) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		balance := b.getBalance(ctx, fromAddr, coin.Denom)
		if balance.LT(coin.Amount) {
			return sdkerrors.ErrInsufficientFunds.Wrapf("%s has %s%s, needs %s", fromAddr, balance, coin.Denom, coin)
		}
		b.setBalance(ctx, fromAddr, coin.Denom, balance.Sub(coin.Amount))
		b.setBalance(ctx, toAddr, coin.Denom, b.getBalance(ctx, toAddr, coin.Denom).Add(coin.Amount))
	}
	return nil
}

// SendCoinsFromAccountToModule implements types.BankKeeper
func (b *BankMock) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.SendCoins(ctx, senderAddr, sdk.AccAddress(address.Module(recipientModule)), amt)
}

// SendCoinsFromModuleToAccount implements types.BankKeeper
func (b *BankMock) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.SendCoins(ctx, sdk.AccAddress(address.Module(senderModule)), recipientAddr, amt)
}

// MintCoins implements types.BankKeeper
func (b *BankMock) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	moduleAddr := sdk.AccAddress(address.Module(moduleName))
	for _, coin := range amt {
		b.setBalance(ctx, moduleAddr, coin.Denom, b.getBalance(ctx, moduleAddr, coin.Denom).Add(coin.Amount))
	}
	return nil
}

// BurnCoins implements types.BankKeeper
func (b *BankMock) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	moduleAddr := sdk.AccAddress(address.Module(moduleName))
	for _, coin := range amt {
		balance := b.getBalance(ctx, moduleAddr, coin.Denom)
		if balance.LT(coin.Amount) {
			return sdkerrors.ErrInsufficientFunds.Wrapf("module %s has %s%s, burning %s", moduleName, balance, coin.Denom, coin)
		}
		b.setBalance(ctx, moduleAddr, coin.Denom, balance.Sub(coin.Amount))
	}
	return nil
}
