package types

// Event types emitted by the swap module
const (
	EventTypePairCreated      = "pair_created"
	EventTypeSwap             = "swap"
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeSwapResults      = "swap_results"
	EventTypeSkim             = "skim"
	EventTypeSync             = "sync"
	EventTypeDeposit          = "deposit"
	EventTypeWithdrawal       = "withdrawal"
	EventTypeCleanUp          = "clean_up"
	EventTypeFeeToUpdated     = "fee_to_updated"
)

// Event attribute keys
const (
	AttributeKeyAssetA     = "asset_a"
	AttributeKeyAssetB     = "asset_b"
	AttributeKeyAssetIn    = "asset_in"
	AttributeKeyAssetOut   = "asset_out"
	AttributeKeyAmountA    = "amount_a"
	AttributeKeyAmountB    = "amount_b"
	AttributeKeyAmountIn   = "amount_in"
	AttributeKeyAmountOut  = "amount_out"
	AttributeKeyAmountAIn  = "amount_a_in"
	AttributeKeyAmountBIn  = "amount_b_in"
	AttributeKeyAmountAOut = "amount_a_out"
	AttributeKeyAmountBOut = "amount_b_out"
	AttributeKeyAmount     = "amount"
	AttributeKeyAsset      = "asset"
	AttributeKeyPair       = "pair"
	AttributeKeyPairCount  = "pair_count"
	AttributeKeyShares     = "shares"
	AttributeKeyRecipient  = "recipient"
	AttributeKeySender     = "sender"
	AttributeKeyFeeTo      = "fee_to"
)
