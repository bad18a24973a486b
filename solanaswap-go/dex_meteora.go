package solanaswapgo

func meteoraDLMMLiquidityOp(data []byte) bool {
	return prefixMatches8(data, meteoraDLMMAddLiquidityDiscriminator) ||
		prefixMatches8(data, meteoraDLMMRemoveLiquidityDiscriminator)
}

func meteoraDAMMLiquidityOp(data []byte) bool {
	return prefixMatches8(data, meteoraDAMMCreateDiscriminator) ||
		prefixMatches8(data, meteoraDAMMAddDiscriminator) ||
		prefixMatches8(data, meteoraDAMMRemoveDiscriminator)
}

func meteoraDAMMV2LiquidityOp(data []byte) bool {
	return prefixMatches8(data, meteoraDAMMV2InitDiscriminator) ||
		prefixMatches8(data, meteoraDAMMV2AddDiscriminator) ||
		prefixMatches8(data, meteoraDAMMV2RemoveDiscriminator)
}

// meteoraFamilies covers DLMM, Pools (DAMM) and DAMM-V2. Meteora DBC is
// intentionally excluded from dispatch (see DESIGN.md).
var meteoraFamilies = []transferBasedFamily{
	{programID: METEORA_DLMM_PROGRAM_ID, isLiquidityOp: meteoraDLMMLiquidityOp, poolIndex: 0, truncateToTwo: true},
	{programID: METEORA_DAMM_PROGRAM_ID, isLiquidityOp: meteoraDAMMLiquidityOp, poolIndex: 0},
	{programID: METEORA_DAMM_V2_PROGRAM_ID, isLiquidityOp: meteoraDAMMV2LiquidityOp, poolIndex: 1},
}
