package solanaswapgo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// jupiterFamilyIDs are treated as "Jupiter present" for the orchestrator's
// fast path, even though only the aggregator program itself emits route
// events and is dispatched to DecodeJupiter.
var jupiterFamilyIDs = []solana.PublicKey{
	JUPITER_PROGRAM_ID,
	JUPITER_DCA_PROGRAM_ID,
	JUPITER_VA_PROGRAM_ID,
	JUPITER_LIMIT_ORDER_V2_ID,
}

// Parse drives the end-to-end pipeline (§4.9) for a single transaction and
// assembles the ParseResult.
// A panic raised while decoding malformed input is recovered here; the
// result built up to that point (or an empty one) is returned instead.
func Parse(tx *solana.Transaction, meta *rpc.TransactionMeta, slot uint64, blockTime int64, config *ParseConfig) (result *ParseResult) {
	defer func() {
		if recover() != nil && result == nil {
			result = &ParseResult{}
		}
	}()
	if config == nil {
		config = &ParseConfig{}
	}

	a := NewAdapter(tx, meta, slot, blockTime, config)
	result = &ParseResult{
		State:        true,
		Fee:          a.Fee(),
		Slot:         a.Slot(),
		Timestamp:    a.BlockTime(),
		Signature:    a.Signature(),
		Signer:       a.Signers(),
		ComputeUnits: a.ComputeUnits(),
		TxStatus:     a.TxStatus(),
	}

	classifier := NewClassifier(a)
	allProgramIDs := classifier.AllProgramIDs()

	if len(config.ProgramIDs) > 0 && !intersects(allProgramIDs, config.ProgramIDs) {
		result.State = false
		return result
	}

	transferIdx := NewTransferIndex(a)

	jupiterFamilyPresent, _ := anyPresent(allProgramIDs, jupiterFamilyIDs)
	jupiterAggregatorPresent, _ := anyPresent(allProgramIDs, []solana.PublicKey{JUPITER_PROGRAM_ID})
	if config.AggregateTrades && jupiterFamilyPresent && jupiterAggregatorPresent {
		jupTrades := DecodeJupiter(a, classifier.For(JUPITER_PROGRAM_ID), DexInfo{ProgramID: strPtr(JUPITER_PROGRAM_ID.String()), AMM: strPtr(programName(JUPITER_PROGRAM_ID))})
		if agg, ok := AggregateTrades(jupTrades); ok {
			result.AggregateTrade = &agg
			return result
		}
	}

	var trades []Trade
	for _, progID := range allProgramIDs {
		if len(config.ProgramIDs) > 0 && !containsID(config.ProgramIDs, progID) {
			continue
		}
		if containsID(config.IgnoreProgramIDs, progID) {
			continue
		}
		trades = append(trades, decodeProgram(a, classifier, transferIdx, progID)...)
	}

	if len(trades) > 0 {
		trades = DeduplicateTrades(trades)
		if config.AggregateTrades {
			if agg, ok := AggregateTrades(trades); ok {
				result.AggregateTrade = &agg
			}
		}
	}
	result.Trades = trades

	if config.DetectLiquidity {
		result.LiquidityEvents = DetectLiquidityEvents(a, classifier, transferIdx)
	}

	if change, ok := a.GetAccountSolBalanceChange(0); ok {
		result.SolBalanceChange = &change
	}
	result.TokenBalanceChange = a.GetTokenAccountBalanceChanges(0)

	return result
}

func decodeProgram(a *Adapter, classifier *Classifier, idx *TransferIndex, progID solana.PublicKey) []Trade {
	dex := DexInfo{ProgramID: strPtr(progID.String()), AMM: strPtr(programName(progID))}
	switch {
	case progID.Equals(JUPITER_PROGRAM_ID):
		return DecodeJupiter(a, classifier.For(progID), dex)
	case progID.Equals(RAYDIUM_V4_PROGRAM_ID), progID.Equals(RAYDIUM_AMM_PROGRAM_ID),
		progID.Equals(RAYDIUM_CPMM_PROGRAM_ID), progID.Equals(RAYDIUM_CL_PROGRAM_ID),
		progID.Equals(RAYDIUM_ROUTE_PROGRAM_ID), progID.Equals(RAYDIUM_LAUNCHPAD_PROGRAM_ID):
		return decodeFamily(raydiumFamilies, a, classifier, idx, progID)
	case progID.Equals(ORCA_PROGRAM_ID):
		return DecodeOrca(a, classifier, idx)
	case progID.Equals(METEORA_DLMM_PROGRAM_ID), progID.Equals(METEORA_DAMM_PROGRAM_ID), progID.Equals(METEORA_DAMM_V2_PROGRAM_ID):
		return decodeFamily(meteoraFamilies, a, classifier, idx, progID)
	case progID.Equals(PUMP_FUN_PROGRAM_ID):
		return DecodePumpfun(a, classifier.For(progID), dex)
	case progID.Equals(PUMP_SWAP_PROGRAM_ID):
		return DecodePumpswap(a, classifier.For(progID), dex)
	default:
		return nil
	}
}

func intersects(ids []solana.PublicKey, allow []string) bool {
	for _, id := range ids {
		for _, s := range allow {
			if id.String() == s {
				return true
			}
		}
	}
	return false
}

func containsID(list []string, id solana.PublicKey) bool {
	for _, s := range list {
		if s == id.String() {
			return true
		}
	}
	return false
}

func anyPresent(ids []solana.PublicKey, family []solana.PublicKey) (bool, solana.PublicKey) {
	for _, id := range ids {
		for _, f := range family {
			if id.Equals(f) {
				return true, id
			}
		}
	}
	return false, solana.PublicKey{}
}
