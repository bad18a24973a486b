package solanaswapgo

import (
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

func base58Encode(b []byte) string {
	return base58.Encode(b)
}

// convertToUIAmount renders a raw integer amount as a float, dividing by
// 10^decimals. decimals == 0 is a fast path to avoid a pow(10, 0) round trip.
func convertToUIAmount(amount uint64, decimals uint8) float64 {
	if decimals == 0 {
		return float64(amount)
	}
	return float64(amount) / math.Pow10(int(decimals))
}

// convertToUIAmountBig mirrors convertToUIAmount for big.Int sums produced
// by reconciliation/aggregation.
func convertToUIAmountBig(amount *big.Int, decimals uint8) float64 {
	f := new(big.Float).SetInt(amount)
	if decimals == 0 {
		v, _ := f.Float64()
		return v
	}
	scale := new(big.Float).SetFloat64(math.Pow10(int(decimals)))
	f.Quo(f, scale)
	v, _ := f.Float64()
	return v
}

// tradeType implements the §4.8 rule: SOL-in is always a Buy, SOL-out is
// always a Sell, a known stablecoin input is a Buy, everything else is Sell.
func tradeType(inputMint, outputMint solana.PublicKey) TradeType {
	if inputMint.Equals(WRAPPED_SOL_MINT) {
		return TradeBuy
	}
	if outputMint.Equals(WRAPPED_SOL_MINT) {
		return TradeSell
	}
	if isKnownStable(inputMint) {
		return TradeBuy
	}
	return TradeSell
}

// idxParts splits an "<outer>" or "<outer>-<inner>" idx into numeric
// (main, sub) for total ordering. Malformed segments parse as 0.
func idxParts(idx string) (main, sub uint32) {
	parts := strings.SplitN(idx, "-", 2)
	if len(parts) > 0 {
		if v, err := strconv.ParseUint(parts[0], 10, 32); err == nil {
			main = uint32(v)
		}
	}
	if len(parts) > 1 {
		if v, err := strconv.ParseUint(parts[1], 10, 32); err == nil {
			sub = uint32(v)
		}
	}
	return
}

// sortByIdx returns a stable, idx-ordered copy of trades. Stability matters
// for the "idx ordering is stable under arbitrary permutations" property.
func sortByIdx(trades []Trade) []Trade {
	sorted := make([]Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		aMain, aSub := idxParts(sorted[i].Idx)
		bMain, bSub := idxParts(sorted[j].Idx)
		if aMain != bMain {
			return aMain < bMain
		}
		return aSub < bSub
	})
	return sorted
}

// getTransferTokenMint resolves the mint for a Transfer (not TransferChecked)
// instruction from the destination and source token accounts' recorded
// mints, preferring the non-native side when both are known.
func getTransferTokenMint(destMint, sourceMint *solana.PublicKey) *solana.PublicKey {
	switch {
	case destMint != nil && sourceMint != nil:
		if destMint.Equals(*sourceMint) {
			return destMint
		}
		if !destMint.Equals(NATIVE_SOL_MINT_PROGRAM_ID) {
			return destMint
		}
		return sourceMint
	case destMint != nil:
		return destMint
	case sourceMint != nil:
		return sourceMint
	default:
		return nil
	}
}

func parseAmountBig(raw string) *big.Int {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return big.NewInt(0)
	}
	return v
}
