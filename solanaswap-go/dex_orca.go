package solanaswapgo

func orcaLiquidityOp(data []byte) bool {
	return prefixMatches8(data, orcaCreateDiscriminator) ||
		prefixMatches8(data, orcaCreate2Discriminator) ||
		prefixMatches8(data, orcaIncreaseLiquidityDiscriminator) ||
		prefixMatches8(data, orcaIncreaseLiquidity2Discriminator) ||
		prefixMatches8(data, orcaDecreaseLiquidityDiscriminator)
}

// DecodeOrca implements the transfer-based Orca Whirlpools decoder
// (§4.6.2). Orca never populates a pool address.
func DecodeOrca(a *Adapter, classifier *Classifier, idx *TransferIndex) []Trade {
	instructions := classifier.For(ORCA_PROGRAM_ID)
	if len(instructions) == 0 {
		return nil
	}
	fam := transferBasedFamily{programID: ORCA_PROGRAM_ID, isLiquidityOp: orcaLiquidityOp, poolIndex: -1}
	dex := DexInfo{ProgramID: strPtr(ORCA_PROGRAM_ID.String()), AMM: strPtr(programName(ORCA_PROGRAM_ID))}
	return decodeTransferBased(a, instructions, idx, fam, dex)
}
