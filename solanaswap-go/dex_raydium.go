package solanaswapgo

func raydiumLegacyLiquidityOp(data []byte) bool {
	return prefixMatches1(data, raydiumLegacyCreate) ||
		prefixMatches1(data, raydiumLegacyAdd) ||
		prefixMatches1(data, raydiumLegacyRemove)
}

func raydiumCPMMLiquidityOp(data []byte) bool {
	return prefixMatches8(data, raydiumCPMMCreateDiscriminator) ||
		prefixMatches8(data, raydiumCPMMAddLiquidityDiscriminator) ||
		prefixMatches8(data, raydiumCPMMRemoveLiquidityDiscriminator)
}

func noLiquidityOp([]byte) bool { return false }

// raydiumFamilies catalogues every Raydium program family's transfer
// -reconciliation shape (Route, V4, AMM, CPMM, CL, Launchpad); the
// orchestrator (C8) dispatches one matched program ID at a time via
// decodeFamily rather than walking this table itself.
var raydiumFamilies = []transferBasedFamily{
	{programID: RAYDIUM_ROUTE_PROGRAM_ID, isLiquidityOp: noLiquidityOp, poolIndex: -1, truncateToTwo: true},
	{programID: RAYDIUM_V4_PROGRAM_ID, isLiquidityOp: raydiumLegacyLiquidityOp, poolIndex: 1, thirdAsFee: true, truncateToTwo: true},
	{programID: RAYDIUM_AMM_PROGRAM_ID, isLiquidityOp: raydiumLegacyLiquidityOp, poolIndex: 1, thirdAsFee: true, truncateToTwo: true},
	{programID: RAYDIUM_CPMM_PROGRAM_ID, isLiquidityOp: raydiumCPMMLiquidityOp, poolIndex: 3, thirdAsFee: true, truncateToTwo: true},
	{programID: RAYDIUM_CL_PROGRAM_ID, isLiquidityOp: noLiquidityOp, poolIndex: 2, thirdAsFee: true, truncateToTwo: true},
	{programID: RAYDIUM_LAUNCHPAD_PROGRAM_ID, isLiquidityOp: noLiquidityOp, poolIndex: -1, thirdAsFee: true, truncateToTwo: true},
}
