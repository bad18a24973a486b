package solanaswapgo

import "github.com/gagliardetto/solana-go"

// transferBasedFamily describes one DEX program's transfer-reconciliation
// shape: which compiled-instruction prefixes mark a liquidity operation
// (excluded from swap decoding), which account index (if any) holds the
// pool address, whether transfers are truncated to the first two before
// reconciliation (Meteora DLMM, Raydium), and whether a third transfer
// beyond the first two is recorded as the trade's fee (Raydium).
type transferBasedFamily struct {
	programID     solana.PublicKey
	isLiquidityOp func(data []byte) bool
	poolIndex     int // -1 = never populate
	truncateToTwo bool
	thirdAsFee    bool
}

// decodeTransferBased implements the shared shape of §4.6.2 (Raydium, Orca,
// Meteora): every non-liquidity instruction's transfers are reconciled into
// a swap Trade.
func decodeTransferBased(a *Adapter, instructions []ClassifiedInstruction, idx *TransferIndex, f transferBasedFamily, dex DexInfo) []Trade {
	var trades []Trade
	for _, ci := range instructions {
		if f.isLiquidityOp(ci.Data) {
			continue
		}
		all := idx.TransfersFor(f.programID, ci.OuterIndex, ci.InnerIndex)
		transfers := all
		if f.truncateToTwo && len(transfers) > 2 {
			transfers = transfers[:2]
		}
		if len(transfers) < 2 {
			continue
		}

		trade, ok := ReconcileSwap(a, transfers, dex, transfers[0].Idx, true)
		if !ok {
			continue
		}

		if f.thirdAsFee && trade.Fee == nil && len(all) >= 3 {
			third := all[2]
			trade.Fee = &FeeInfo{
				Mint:      third.Mint,
				AmountRaw: third.TokenAmount.Raw,
				Decimals:  third.TokenAmount.Decimals,
				Amount:    convertToUIAmount(parseAmountBig(third.TokenAmount.Raw).Uint64(), third.TokenAmount.Decimals),
			}
		}

		if f.poolIndex >= 0 && len(ci.Accounts) > 5 && f.poolIndex < len(ci.Accounts) {
			trade.Pool = []string{ci.Accounts[f.poolIndex].String()}
		}

		trades = append(trades, trade)
	}
	return trades
}

// decodeFamily finds progID's entry in a family table and runs
// decodeTransferBased against it, for the orchestrator's one-program-at-a
// -time dispatch loop.
func decodeFamily(families []transferBasedFamily, a *Adapter, classifier *Classifier, idx *TransferIndex, progID solana.PublicKey) []Trade {
	for _, fam := range families {
		if !fam.programID.Equals(progID) {
			continue
		}
		dex := DexInfo{ProgramID: strPtr(progID.String()), AMM: strPtr(programName(progID))}
		return decodeTransferBased(a, classifier.For(progID), idx, fam, dex)
	}
	return nil
}

func prefixMatches1(data []byte, op byte) bool {
	return len(data) >= 1 && data[0] == op
}

func prefixMatches8(data []byte, disc [8]byte) bool {
	return len(data) >= 8 && [8]byte(data[:8]) == disc
}
