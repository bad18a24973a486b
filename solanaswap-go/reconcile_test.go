package solanaswapgo

import (
	"testing"

	"github.com/gagliardetto/solana-go"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	tx := &solana.Transaction{
		Signatures: []solana.Signature{{}},
		Message: solana.Message{
			AccountKeys: []solana.PublicKey{
				solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"),
			},
		},
	}
	return NewAdapter(tx, nil, 123, 1_700_000_000, &ParseConfig{})
}

func tr(mint string, amountRaw string, decimals uint8, isFee bool) TransferRecord {
	return TransferRecord{
		Mint:        mint,
		TokenAmount: TokenAmount{Raw: amountRaw, Decimals: decimals},
		IsFee:       isFee,
	}
}

// S2 — Raydium-style transfer-pair sell reconciliation.
func TestReconcileSwap_TwoLegs(t *testing.T) {
	a := newTestAdapter(t)
	bonk := "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
	transfers := []TransferRecord{
		tr(bonk, "1000000", 6, false),
		tr(WRAPPED_SOL_MINT.String(), "2000000000", 9, false),
	}
	trade, ok := ReconcileSwap(a, transfers, DexInfo{}, "3", true)
	if !ok {
		t.Fatal("ReconcileSwap returned ok=false")
	}
	if trade.TradeType != TradeSell {
		t.Fatalf("TradeType = %s, want Sell", trade.TradeType)
	}
	if trade.InputToken.Mint != bonk || trade.InputToken.AmountRaw != "1000000" {
		t.Fatalf("InputToken = %+v", trade.InputToken)
	}
	if trade.OutputToken.Mint != WRAPPED_SOL_MINT.String() || trade.OutputToken.AmountRaw != "2000000000" {
		t.Fatalf("OutputToken = %+v", trade.OutputToken)
	}
}

// S6 — a third transfer to a known fee account becomes Fee, not a third mint.
func TestReconcileSwap_FeeRecipientExcluded(t *testing.T) {
	a := newTestAdapter(t)
	bonk := "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
	transfers := []TransferRecord{
		tr(bonk, "1000000", 6, false),
		tr(WRAPPED_SOL_MINT.String(), "2000000000", 9, false),
		tr(WRAPPED_SOL_MINT.String(), "5000000", 9, true),
	}
	trade, ok := ReconcileSwap(a, transfers, DexInfo{}, "3", true)
	if !ok {
		t.Fatal("ReconcileSwap returned ok=false")
	}
	if trade.OutputToken.AmountRaw != "2000000000" {
		t.Fatalf("OutputToken.AmountRaw = %s, want 2000000000 (fee leg must not inflate the total)", trade.OutputToken.AmountRaw)
	}
	if trade.Fee == nil || trade.Fee.AmountRaw != "5000000" {
		t.Fatalf("Fee = %+v, want AmountRaw=5000000", trade.Fee)
	}
}

// S5 — Meteora DLMM truncates to the first two transfers before reconciling;
// a third surviving leg must not inflate either total.
func TestDecodeTransferBased_MeteoraTruncation(t *testing.T) {
	a := newTestAdapter(t)
	progID := METEORA_DLMM_PROGRAM_ID
	bonk := "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"

	tx := &solana.Transaction{
		Signatures: []solana.Signature{{}},
		Message: solana.Message{
			AccountKeys: []solana.PublicKey{
				solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"),
				progID,
			},
			Instructions: []solana.CompiledInstruction{
				{ProgramIDIndex: 1, Accounts: []uint16{}, Data: []byte{0xAA}},
			},
		},
	}
	a2 := NewAdapter(tx, nil, 1, 1, &ParseConfig{})
	classifier := NewClassifier(a2)
	ci := classifier.For(progID)[0]

	idx := &TransferIndex{records: map[string][]TransferRecord{
		progID.String() + ":0": {
			tr(bonk, "1000000", 6, false),
			tr(WRAPPED_SOL_MINT.String(), "2000000000", 9, false),
			tr(bonk, "999999999", 6, false), // must be dropped by truncateToTwo
		},
	}}

	fam := transferBasedFamily{programID: progID, isLiquidityOp: meteoraDLMMLiquidityOp, poolIndex: 0, truncateToTwo: true}
	trades := decodeTransferBased(a, []ClassifiedInstruction{ci}, idx, fam, DexInfo{})
	if len(trades) != 1 {
		t.Fatalf("len(trades) = %d, want 1", len(trades))
	}
	if trades[0].InputToken.AmountRaw != "1000000" {
		t.Fatalf("InputToken.AmountRaw = %s, want 1000000 (third transfer must not inflate it)", trades[0].InputToken.AmountRaw)
	}
}

func TestDeduplicateTrades(t *testing.T) {
	trades := []Trade{
		{Idx: "1", Signature: "sig"},
		{Idx: "1", Signature: "sig"},
		{Idx: "2", Signature: "sig"},
	}
	out := DeduplicateTrades(trades)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
}

// S3 — multi-hop aggregation: SOL -> USDC -> BONK collapses to SOL -> BONK.
func TestAggregateTrades_MultiHop(t *testing.T) {
	bonk := "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
	sol := WRAPPED_SOL_MINT.String()
	usdc := USDC_MINT.String()

	pool1 := "Pool1111111111111111111111111111111111111"
	pool2 := "Pool2222222222222222222222222222222222222"

	leg1AMM, leg1Route := "Raydium", "RaydiumV4"
	leg2AMM, leg2Route := "Orca", "OrcaWhirlpool"

	leg1 := Trade{
		Idx: "1", TradeType: TradeBuy, Pool: []string{pool1},
		InputToken:  TokenInfo{Mint: sol, AmountRaw: "500000000", Decimals: 9},
		OutputToken: TokenInfo{Mint: usdc, AmountRaw: "75000000", Decimals: 6},
		AMM:         &leg1AMM, Route: &leg1Route,
	}
	leg2 := Trade{
		Idx: "2", TradeType: TradeSell, Pool: []string{pool2},
		InputToken:  TokenInfo{Mint: usdc, AmountRaw: "75000000", Decimals: 6},
		OutputToken: TokenInfo{Mint: bonk, AmountRaw: "1000000000000", Decimals: 9},
		AMM:         &leg2AMM, Route: &leg2Route,
	}

	agg, ok := AggregateTrades([]Trade{leg2, leg1}) // out-of-order on purpose
	if !ok {
		t.Fatal("AggregateTrades returned ok=false")
	}
	if agg.InputToken.Mint != sol || agg.InputToken.AmountRaw != "500000000" {
		t.Fatalf("InputToken = %+v, want SOL/500000000", agg.InputToken)
	}
	if agg.OutputToken.Mint != bonk || agg.OutputToken.AmountRaw != "1000000000000" {
		t.Fatalf("OutputToken = %+v, want BONK/1000000000000", agg.OutputToken)
	}
	if len(agg.Pool) != 2 || agg.Pool[0] != pool1 || agg.Pool[1] != pool2 {
		t.Fatalf("Pool = %v, want [%s %s] in order", agg.Pool, pool1, pool2)
	}
	if agg.AMM == nil || *agg.AMM != leg1AMM {
		t.Fatalf("AMM = %v, want the first leg's %q, not the last leg's", agg.AMM, leg1AMM)
	}
	if agg.Route == nil || *agg.Route != leg1Route {
		t.Fatalf("Route = %v, want the first leg's %q, not the last leg's", agg.Route, leg1Route)
	}
}
