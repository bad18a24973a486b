package solanaswapgo

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// ReconcileSwap implements swap reconciliation (§4.7): given the transfers
// attached to a single DEX instruction, it infers input/output mints from
// first-seen ordering, separates out a fee leg, and sums the remaining
// amounts in big.Int arithmetic to avoid overflow across multi-leg routes.
// It returns ok=false when fewer than two unique mints remain.
func ReconcileSwap(a *Adapter, transfers []TransferRecord, dex DexInfo, idx string, skipNative bool) (Trade, bool) {
	uniqueMints := make([]string, 0, len(transfers))
	seen := make(map[string]bool)
	for _, tr := range transfers {
		if skipNative && tr.Mint == NATIVE_SOL_MINT_PROGRAM_ID.String() {
			continue
		}
		if !seen[tr.Mint] {
			seen[tr.Mint] = true
			uniqueMints = append(uniqueMints, tr.Mint)
		}
	}
	if len(uniqueMints) < 2 {
		return Trade{}, false
	}
	inputMint := uniqueMints[0]
	outputMint := uniqueMints[len(uniqueMints)-1]

	var fee *FeeInfo
	inputTotal := new(big.Int)
	outputTotal := new(big.Int)
	var inputDecimals, outputDecimals uint8
	dedup := make(map[string]bool)

	for _, tr := range transfers {
		if tr.IsFee {
			if fee == nil {
				fee = &FeeInfo{
					Mint:      tr.Mint,
					AmountRaw: tr.TokenAmount.Raw,
					Decimals:  tr.TokenAmount.Decimals,
					Amount:    convertToUIAmount(parseAmountBig(tr.TokenAmount.Raw).Uint64(), tr.TokenAmount.Decimals),
				}
			}
			continue
		}
		dedupKey := tr.TokenAmount.Raw + ":" + tr.Mint
		if dedup[dedupKey] {
			continue
		}
		dedup[dedupKey] = true

		switch tr.Mint {
		case inputMint:
			inputTotal.Add(inputTotal, parseAmountBig(tr.TokenAmount.Raw))
			inputDecimals = tr.TokenAmount.Decimals
		case outputMint:
			outputTotal.Add(outputTotal, parseAmountBig(tr.TokenAmount.Raw))
			outputDecimals = tr.TokenAmount.Decimals
		}
	}

	inMint := solana.MustPublicKeyFromBase58(inputMint)
	outMint := solana.MustPublicKeyFromBase58(outputMint)

	trade := Trade{
		TradeType: tradeType(inMint, outMint),
		InputToken: TokenInfo{
			Mint:      inputMint,
			AmountRaw: inputTotal.String(),
			Decimals:  inputDecimals,
			Amount:    convertToUIAmountBig(inputTotal, inputDecimals),
		},
		OutputToken: TokenInfo{
			Mint:      outputMint,
			AmountRaw: outputTotal.String(),
			Decimals:  outputDecimals,
			Amount:    convertToUIAmountBig(outputTotal, outputDecimals),
		},
		Fee:       fee,
		ProgramID: dex.ProgramID,
		AMM:       dex.AMM,
		Route:     dex.Route,
		Slot:      a.Slot(),
		Timestamp: a.BlockTime(),
		Signature: a.Signature(),
		Idx:       idx,
		Signers:   a.Signers(),
		User:      a.Signer().String(),
	}
	return trade, true
}

// DeduplicateTrades retains only the first trade for each (idx, signature)
// pair, preserving encounter order.
func DeduplicateTrades(trades []Trade) []Trade {
	seen := make(map[string]bool, len(trades))
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		key := t.Idx + "|" + t.Signature
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// AggregateTrades collapses a multi-hop route into a single canonical
// Trade per §4.7's aggregation rule: trades are ordered by idx, the
// aggregate's input/output mints come from the first/last trade, and legs
// matching those mints are summed in big.Int arithmetic.
func AggregateTrades(trades []Trade) (Trade, bool) {
	if len(trades) == 0 {
		return Trade{}, false
	}
	sorted := sortByIdx(trades)
	first := sorted[0]
	last := sorted[len(sorted)-1]

	inputTotal := new(big.Int)
	outputTotal := new(big.Int)
	pools := make([]string, 0, len(sorted))
	poolSeen := make(map[string]bool)

	for _, t := range sorted {
		if t.InputToken.Mint == first.InputToken.Mint {
			inputTotal.Add(inputTotal, parseAmountBig(t.InputToken.AmountRaw))
		}
		if t.OutputToken.Mint == last.OutputToken.Mint {
			outputTotal.Add(outputTotal, parseAmountBig(t.OutputToken.AmountRaw))
		}
		for _, p := range t.Pool {
			if !poolSeen[p] {
				poolSeen[p] = true
				pools = append(pools, p)
			}
		}
	}

	inMint := solana.MustPublicKeyFromBase58(first.InputToken.Mint)
	outMint := solana.MustPublicKeyFromBase58(last.OutputToken.Mint)

	agg := first
	agg.Pool = pools
	agg.InputToken = TokenInfo{
		Mint:      first.InputToken.Mint,
		AmountRaw: inputTotal.String(),
		Decimals:  first.InputToken.Decimals,
		Amount:    convertToUIAmountBig(inputTotal, first.InputToken.Decimals),
	}
	agg.OutputToken = TokenInfo{
		Mint:      last.OutputToken.Mint,
		AmountRaw: outputTotal.String(),
		Decimals:  last.OutputToken.Decimals,
		Amount:    convertToUIAmountBig(outputTotal, last.OutputToken.Decimals),
	}
	agg.TradeType = tradeType(inMint, outMint)
	return agg, true
}
