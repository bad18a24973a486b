package solanaswapgo

import (
	"strconv"

	"github.com/gagliardetto/solana-go"
)

// TradeType classifies a Trade's direction relative to SOL/stablecoins.
type TradeType string

const (
	TradeBuy  TradeType = "BUY"
	TradeSell TradeType = "SELL"
)

// TransactionStatus mirrors the three-valued outcome the adapter derives
// from transaction meta.
type TransactionStatus string

const (
	StatusUnknown TransactionStatus = "UNKNOWN"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// PoolEventType distinguishes liquidity operations from swaps.
type PoolEventType string

const (
	PoolEventAddLiquidity    PoolEventType = "ADD_LIQUIDITY"
	PoolEventRemoveLiquidity PoolEventType = "REMOVE_LIQUIDITY"
)

// TokenAmount is the raw/decimals/ui triple shared by every amount field in
// the output. UI, when present, always equals Raw / 10^Decimals.
type TokenAmount struct {
	Raw      string   `json:"amount"`
	Decimals uint8    `json:"decimals"`
	UI       *float64 `json:"uiAmount,omitempty"`
}

// TokenInfo is the account-level view of a token leg of a Trade.
type TokenInfo struct {
	Mint             string  `json:"mint"`
	Amount           float64 `json:"amount"`
	AmountRaw        string  `json:"amountRaw"`
	Decimals         uint8   `json:"decimals"`
	Authority        *string `json:"authority,omitempty"`
	Source           *string `json:"source,omitempty"`
	Destination      *string `json:"destination,omitempty"`
	DestinationOwner *string `json:"destinationOwner,omitempty"`
}

// TransferRecord is the decoded form of a single compiled Transfer or
// TransferChecked instruction, indexed by C5.
type TransferRecord struct {
	Kind             string `json:"type"` // "transfer" | "transferChecked"
	ProgramID        string `json:"programId"`
	Source           string `json:"source"`
	Destination      string `json:"destination"`
	DestinationOwner string `json:"destinationOwner,omitempty"`
	Authority        string `json:"authority"`
	Mint             string `json:"mint"`
	TokenAmount      TokenAmount `json:"tokenAmount"`
	SourceBalance    *uint64 `json:"sourceBalance,omitempty"`
	SourcePreBalance *uint64 `json:"sourcePreBalance,omitempty"`
	DestBalance      *uint64 `json:"destBalance,omitempty"`
	DestPreBalance   *uint64 `json:"destPreBalance,omitempty"`
	Idx              string  `json:"idx"`
	IsFee            bool    `json:"isFee,omitempty"`
}

// ClassifiedInstruction is a single outer or inner instruction tagged with
// its program ID and position, as produced by C4.
type ClassifiedInstruction struct {
	ProgramID  solana.PublicKey
	Accounts   []solana.PublicKey
	Data       []byte
	OuterIndex int
	InnerIndex *int
}

func (ci ClassifiedInstruction) Idx() string {
	if ci.InnerIndex == nil {
		return strconv.Itoa(ci.OuterIndex)
	}
	return strconv.Itoa(ci.OuterIndex) + "-" + strconv.Itoa(*ci.InnerIndex)
}

// DexInfo identifies the DEX family an instruction belongs to.
type DexInfo struct {
	ProgramID *string `json:"programId,omitempty"`
	AMM       *string `json:"amm,omitempty"`
	Route     *string `json:"route,omitempty"`
}

// FeeInfo describes a fee leg attached to a Trade.
type FeeInfo struct {
	Mint      string  `json:"mint"`
	Amount    float64 `json:"amount"`
	AmountRaw string  `json:"amountRaw"`
	Decimals  uint8   `json:"decimals"`
}

// Trade is the canonical decoded-and-reconciled output of one DEX
// instruction (or, after aggregation, of a whole multi-hop route).
type Trade struct {
	User        string    `json:"user"`
	TradeType   TradeType `json:"tradeType"`
	Pool        []string  `json:"pool,omitempty"`
	InputToken  TokenInfo `json:"inputToken"`
	OutputToken TokenInfo `json:"outputToken"`
	Fee         *FeeInfo  `json:"fee,omitempty"`
	ProgramID   *string   `json:"programId,omitempty"`
	AMM         *string   `json:"amm,omitempty"`
	Route       *string   `json:"route,omitempty"`
	Slot        uint64    `json:"slot"`
	Timestamp   int64     `json:"timestamp"`
	Signature   string    `json:"signature"`
	Idx         string    `json:"idx"`
	Signers     []string  `json:"signers,omitempty"`
}

// BalanceChange is a {pre, post, change} triple for an account+mint or
// account+native entry.
type BalanceChange struct {
	Pre      uint64 `json:"pre"`
	Post     uint64 `json:"post"`
	Change   int64  `json:"change"`
	Decimals uint8  `json:"decimals"`
}

// PoolEvent records a detected add/remove-liquidity instruction (C10,
// supplemented beyond the distilled spec — see SPEC_FULL.md §4.11).
type PoolEvent struct {
	Type      PoolEventType `json:"type"`
	ProgramID string        `json:"programId"`
	AMM       string        `json:"amm"`
	Pool      string        `json:"pool,omitempty"`
	Idx       string        `json:"idx"`
	Signature string        `json:"signature"`
}

// ParseConfig mirrors the external Configuration contract (§6). TryUnknownDex
// and ThrowError are carried for wire-compatibility only; neither is read by
// any code path (see SPEC_FULL.md's Open Question decisions).
type ParseConfig struct {
	TryUnknownDex    bool     `json:"tryUnknownDex"`
	ProgramIDs       []string `json:"programIDs,omitempty"`
	IgnoreProgramIDs []string `json:"ignoreProgramIDs,omitempty"`
	ThrowError       bool     `json:"throwError"`
	AggregateTrades  bool     `json:"aggregateTrades"`
	DetectLiquidity  bool     `json:"detectLiquidity"`
}

// ParseResult is the orchestrator's (C8) output.
type ParseResult struct {
	State              bool                     `json:"state"`
	Fee                TokenAmount              `json:"fee"`
	Trades             []Trade                  `json:"trades,omitempty"`
	AggregateTrade      *Trade                  `json:"aggregateTrade,omitempty"`
	LiquidityEvents    []PoolEvent              `json:"liquidityEvents,omitempty"`
	Slot               uint64                   `json:"slot"`
	Timestamp          int64                    `json:"timestamp"`
	Signature          string                   `json:"signature"`
	Signer             []string                 `json:"signer,omitempty"`
	ComputeUnits       uint64                   `json:"computeUnits"`
	TxStatus           TransactionStatus        `json:"txStatus"`
	SolBalanceChange   *BalanceChange           `json:"solBalanceChange,omitempty"`
	TokenBalanceChange map[string]BalanceChange `json:"tokenBalanceChange,omitempty"`
}

// ClassifiedInstructionView is the serializable shape C9 groups under each
// DEX name.
type ClassifiedInstructionView struct {
	ProgramID  string `json:"programId"`
	OuterIndex int    `json:"outerIndex"`
	InnerIndex *int   `json:"innerIndex,omitempty"`
}

// ParseShredResult is the output of the lightweight pre-execution dispatch
// mode (C9).
type ParseShredResult struct {
	State        bool                                  `json:"state"`
	Signature    string                                 `json:"signature"`
	Instructions map[string][]ClassifiedInstructionView `json:"instructions,omitempty"`
}

