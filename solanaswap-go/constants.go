package solanaswapgo

import "github.com/gagliardetto/solana-go"

// Program IDs for the DEX families this package decodes, plus the wider
// registry entries needed so programName never falls back to "Unknown" for
// anything the original project knew about.
var (
	JUPITER_PROGRAM_ID            = solana.MustPublicKeyFromBase58("JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4")
	JUPITER_DCA_PROGRAM_ID        = solana.MustPublicKeyFromBase58("DCA265Vj8a9CEuX1eb1LWRnDT7uK6q1xMipnNyatn23M")
	JUPITER_DCA_KEEPER1_ID        = solana.MustPublicKeyFromBase58("DCAKxn5PFNN1mBREPWGdk1RXg5aVH9rPErLfBFEi2Emb")
	JUPITER_DCA_KEEPER2_ID        = solana.MustPublicKeyFromBase58("DCAKuApAuZtVNYLk3KTAVW9GLWVvPbnb5CxxRRmVgcTr")
	JUPITER_DCA_KEEPER3_ID        = solana.MustPublicKeyFromBase58("DCAK36VfExkPdAkYUQg6ewgxyinvcEyPLyHjRbmveKFw")
	JUPITER_LIMIT_ORDER_ID        = solana.MustPublicKeyFromBase58("jupoNjAxXgZ4rjzxzPMP4oxduvQsQtZzyknqvzYNrNu")
	JUPITER_LIMIT_ORDER_V2_ID     = solana.MustPublicKeyFromBase58("j1o2qRpjcyUwEvwtcfhEQefh773ZgjxcVRry7LDqg5X")
	JUPITER_VA_PROGRAM_ID         = solana.MustPublicKeyFromBase58("VALaaymxQh2mNy2trH9jUqHT1mTow76wpTcGmSWSwJe")
	RAYDIUM_ROUTE_PROGRAM_ID      = solana.MustPublicKeyFromBase58("routeUGWgWzqBWFcrCfv8tritsqukccJPu3q5GPP3xS")
	RAYDIUM_V4_PROGRAM_ID         = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")
	RAYDIUM_AMM_PROGRAM_ID        = solana.MustPublicKeyFromBase58("5quBtoiQqxF9Jv6KYKctB59NT3gtJD2Y65kdnB1Uev3h")
	RAYDIUM_CPMM_PROGRAM_ID       = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")
	RAYDIUM_CL_PROGRAM_ID         = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")
	RAYDIUM_LAUNCHPAD_PROGRAM_ID  = solana.MustPublicKeyFromBase58("LanMV9sAd7wArD4vJFi2qDdfnVhFxYSUg6eADduJ3uj")
	ORCA_PROGRAM_ID               = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
	METEORA_DLMM_PROGRAM_ID       = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")
	METEORA_DAMM_PROGRAM_ID       = solana.MustPublicKeyFromBase58("Eo7WjKq67rjJQSZxS6z3YkapzY3eMj6Xy8X5EQVn5UaB")
	METEORA_DAMM_V2_PROGRAM_ID    = solana.MustPublicKeyFromBase58("cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG")
	METEORA_DBC_PROGRAM_ID        = solana.MustPublicKeyFromBase58("dbcij3LWUppWqq96dh6gJWwBifmcGfLSB5D4DuSMaqN")
	PUMP_FUN_PROGRAM_ID           = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	PUMP_SWAP_PROGRAM_ID          = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")
	MOONIT_PROGRAM_ID             = solana.MustPublicKeyFromBase58("MoonCVVNZFSYkqNXP6bxHLPL6QQJiMagDL3qcqUQTrG")
	BOOP_FUN_PROGRAM_ID           = solana.MustPublicKeyFromBase58("boop8hVGQGqehUK2iVEMEnMrL5RbjywRzHKBmBE7ry4")
	SUGAR_PROGRAM_ID              = solana.MustPublicKeyFromBase58("deus4Bvftd5QKcEkE5muQaWGWDoma8GrySvPFrBPjhS")
	HEAVEN_PROGRAM_ID             = solana.MustPublicKeyFromBase58("HEAVENoP2qxoeuF8Dj2oT1GHEnu49U5mJYkdeC8BAX2o")

	TOKEN_PROGRAM_ID              = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	TOKEN_2022_PROGRAM_ID         = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	ASSOCIATED_TOKEN_PROGRAM_ID   = solana.MustPublicKeyFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	COMPUTE_BUDGET_PROGRAM_ID     = solana.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")
	SYSTEM_PROGRAM_ID             = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
	DEXLAB_SWAP_PROGRAM_ID        = solana.MustPublicKeyFromBase58("srmqPvymJeFKQ4zGQed1GFppgkRHL9kaELCbyksJtPX")
	skipProgramID                 = solana.MustPublicKeyFromBase58("pfeeUxB6jkeY1Hxd7CsFCAjcbHA9rWtchMGdZ6VojVZ")

	// NATIVE_SOL_MINT_PROGRAM_ID is the all-ones placeholder used by the
	// runtime for "no SPL mint" (lamport transfers, not an SPL token).
	NATIVE_SOL_MINT_PROGRAM_ID = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
	// WRAPPED_SOL_MINT is the real SPL mint for wrapped SOL, which does
	// participate in swaps (unlike the native placeholder above).
	WRAPPED_SOL_MINT = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

	USDC_MINT  = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	USDT_MINT  = solana.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB")
	USD1_MINT  = solana.MustPublicKeyFromBase58("USD1ttGY1N17NEEHLmELoaybftRBUSErhqYiQzvEmuB")
	USDG_MINT  = solana.MustPublicKeyFromBase58("2u1tszSeqZ3qBWF3uNGPFc8TzMk2tdiwknnRMWGWjGWH")
	PYUSD_MINT = solana.MustPublicKeyFromBase58("2b1kV6DkPAnxd5ixfnxCpjxmKwqjjaYmCZfHsFu24GXo")
	EURC_MINT  = solana.MustPublicKeyFromBase58("HzwqbKZw8HxMN6bF2yFZNrht3c2iXXzpKcFu7uBEDKtr")
	USDY_MINT  = solana.MustPublicKeyFromBase58("A1KLoBrKBde8Ty9qtNQUtq3C2ortoC3u7twggz7sEto6")
	FDUSD_MINT = solana.MustPublicKeyFromBase58("9zNQRsGLjNKwCUU5Gq5LR8beUCPzQMVMqKAi3SSZh54u")
)

// dexProgram describes a single registry entry: program id, display name,
// and the tags used to tell a router apart from a pool.
type dexProgram struct {
	ID   solana.PublicKey
	Name string
	Tags []string
}

var dexPrograms = []dexProgram{
	{JUPITER_PROGRAM_ID, "Jupiter", []string{"route"}},
	{JUPITER_DCA_PROGRAM_ID, "JupiterDCA", []string{"route"}},
	{JUPITER_DCA_KEEPER1_ID, "JupiterDcaKeeper1", []string{"route"}},
	{JUPITER_DCA_KEEPER2_ID, "JupiterDcaKeeper2", []string{"route"}},
	{JUPITER_DCA_KEEPER3_ID, "JupiterDcaKeeper3", []string{"route"}},
	{JUPITER_LIMIT_ORDER_ID, "JupiterLimit", []string{"route"}},
	{JUPITER_LIMIT_ORDER_V2_ID, "JupiterLimitV2", []string{"route"}},
	{JUPITER_VA_PROGRAM_ID, "JupiterVA", []string{"route"}},
	{RAYDIUM_ROUTE_PROGRAM_ID, "RaydiumRoute", []string{"route"}},
	{RAYDIUM_V4_PROGRAM_ID, "RaydiumV4", []string{"amm"}},
	{RAYDIUM_AMM_PROGRAM_ID, "RaydiumAMM", []string{"amm"}},
	{RAYDIUM_CPMM_PROGRAM_ID, "RaydiumCPMM", []string{"amm"}},
	{RAYDIUM_CL_PROGRAM_ID, "RaydiumCL", []string{"amm"}},
	{RAYDIUM_LAUNCHPAD_PROGRAM_ID, "RaydiumLaunchpad", []string{"amm"}},
	{ORCA_PROGRAM_ID, "Orca", []string{"amm"}},
	{METEORA_DLMM_PROGRAM_ID, "MeteoraDLMM", []string{"amm"}},
	{METEORA_DAMM_PROGRAM_ID, "MeteoraDamm", []string{"amm"}},
	{METEORA_DAMM_V2_PROGRAM_ID, "MeteoraDammV2", []string{"amm"}},
	{METEORA_DBC_PROGRAM_ID, "MeteoraDBC", []string{"amm"}},
	{PUMP_FUN_PROGRAM_ID, "Pumpfun", []string{"amm"}},
	{PUMP_SWAP_PROGRAM_ID, "Pumpswap", []string{"amm"}},
	{MOONIT_PROGRAM_ID, "Moonit", []string{"amm"}},
	{BOOP_FUN_PROGRAM_ID, "Boopfun", []string{"amm"}},
	{SUGAR_PROGRAM_ID, "Sugar", []string{"amm"}},
	{HEAVEN_PROGRAM_ID, "Heaven", []string{"amm"}},
}

// systemProgramIDs are excluded from DEX discovery entirely.
var systemProgramIDs = []solana.PublicKey{
	COMPUTE_BUDGET_PROGRAM_ID,
	SYSTEM_PROGRAM_ID,
	TOKEN_PROGRAM_ID,
	TOKEN_2022_PROGRAM_ID,
	ASSOCIATED_TOKEN_PROGRAM_ID,
	DEXLAB_SWAP_PROGRAM_ID,
}

// skipProgramIDs is a small deny-list on top of systemProgramIDs.
var skipProgramIDs = []solana.PublicKey{skipProgramID}

// feeAccounts is the fixed set of addresses known to collect protocol fees;
// a transfer targeting one of these is classified as a fee, not a swap leg.
var feeAccounts = map[string]bool{
	"96gYZGLnJYVFmbjzopPSU6QiEV5fGqZNyN9nmNhvrZU5": true,
	"HFqU5x63VTqvQss8hp11i4wVV8bD44PvwucfZ2bU7gRe": true,
	"Cw8CFyM9FkoMi7K7Crf6HNQqf4uEMzpKw6QNghXLvLkY": true,
	"ADaUMid9yfUytqMBgopwjb2DTLSokTSzL1zt6iGPaS49": true,
	"DfXygSm4jCyNCybVYYK6DwvWqjKee8pbDmJGcLWNDXjh": true,
	"ADuUkR4vqLUMWXxW9gh6D6L8pMSawimctcNZ5pGwDcEt": true,
	"DttWaMuVvTiduZRnguLF7jNxTgiMBZ1hyAumKUiL2KRL": true,
	"3AVi9Tg9Uo68tJfuvoKvqKNWKkC5wPdSSdeBnizKZ6jT": true,
	"45ruCyfdRkWpRNGEqWzjCiXRHkZs8WXCLQ67Pnpye7Hp": true,
	"39azUYFWPz3VHgKCf3VChUwbpURdCHRxjWVowf5jUJjg": true,
	"FWsW1xNtWscwNmKv6wVsU1iTzRN6wmmk3MjxRP5tT7hz": true,
	"G5UZAVbAf46s7cKWoyKu8kYTip9DGTpbLZ2qa9Aq69dP": true,
	"7hTckgnGnLQR6sdH7YkqFTAA7VwTfYFaZ6EhEsU3saCX": true,
	"9rPYyANsfQZw3DnDmKE3YCQF5E8oD89UXoHn9JFEhJUz": true,
	"7VtfL8fvgNfhz17qKRMjzQEXgbdpnHHHQRh54R9jP2RJ": true,
	"AVmoTthdrX6tKt4nDjco2D775W2YK3sDhxPcMmzUAmTY": true,
	"62qc2CNXwrYqQScmEdiZFFAnJR262PxWEuNQtxfafNgV": true,
	"JCRGumoE9Qi5BBgULTgdgTLjSgkCMSbF62ZZfGs84JeU": true,
	"CebN5WGQ4jvEPvsVU4EoHEpgzq1VV7AbicfhtW4xC9iM": true,
	"AVUCZyuT35YSuj4RH7fwiyPu82Djn2Hfg7y2ND2XcnZH": true,
	"BUX7s2ef2htTGb2KKoPHWkmzxPj4nTWMWRgs5CSbQxf9": true,
	"CdQTNULjDiTsvyR5UKjYBMqWvYpxXj6HY4m6atm2hErk": true,
}

// stableMintDecimals is the known-tokens table: native SOL plus the
// stablecoin whitelist used by the trade-type rule.
var stableMintDecimals = map[solana.PublicKey]uint8{
	WRAPPED_SOL_MINT: 9,
	USDC_MINT:        6,
	USDT_MINT:        6,
	USD1_MINT:        6,
	USDG_MINT:        6,
	PYUSD_MINT:       6,
	EURC_MINT:        6,
	USDY_MINT:        6,
	FDUSD_MINT:       6,
}

// SPL token instruction opcodes (first data byte).
const (
	splInitializeMint   byte = 0
	splInitializeAccount byte = 1
	splTransfer         byte = 3
	splMintTo           byte = 7
	splBurn             byte = 8
	splCloseAccount     byte = 9
	splTransferChecked  byte = 12
	splMintToChecked    byte = 14
	splBurnChecked      byte = 15
)

// System program transfer opcode (first 4 bytes, little-endian u32).
const systemTransferOp uint32 = 2

// Discriminator widths, as catalogued in the registry.
var (
	jupiterRouteEventDiscriminator = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 64, 198, 205, 232, 38, 8, 113, 226}

	pumpfunCreateDiscriminator = [8]byte{24, 30, 200, 40, 5, 28, 7, 119}
	pumpfunBuyDiscriminator    = [8]byte{102, 6, 61, 18, 1, 218, 235, 234}
	pumpfunSellDiscriminator   = [8]byte{51, 230, 133, 164, 1, 127, 131, 173}

	pumpfunTradeEventDiscriminator  = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 189, 219, 127, 211, 78, 230, 97, 238}
	pumpfunCreateEventDiscriminator = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 27, 114, 169, 77, 222, 235, 99, 118}
	pumpswapBuyEventDiscriminator   = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 103, 244, 82, 31, 44, 245, 119, 119}
	pumpswapSellEventDiscriminator  = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 62, 47, 55, 10, 165, 3, 220, 42}

	raydiumCPMMCreateDiscriminator         = [8]byte{175, 175, 109, 31, 13, 152, 155, 237}
	raydiumCPMMAddLiquidityDiscriminator   = [8]byte{242, 35, 198, 137, 82, 225, 242, 182}
	raydiumCPMMRemoveLiquidityDiscriminator = [8]byte{183, 18, 70, 156, 148, 109, 161, 34}

	meteoraDLMMAddLiquidityDiscriminator    = [8]byte{181, 157, 89, 67, 143, 182, 52, 72}
	meteoraDLMMRemoveLiquidityDiscriminator = [8]byte{80, 85, 209, 72, 24, 206, 177, 108}

	orcaCreateDiscriminator            = [8]byte{242, 29, 134, 48, 58, 110, 14, 60}
	orcaCreate2Discriminator           = [8]byte{212, 47, 95, 92, 114, 102, 131, 250}
	orcaIncreaseLiquidityDiscriminator  = [8]byte{46, 156, 243, 118, 13, 205, 251, 178}
	orcaIncreaseLiquidity2Discriminator = [8]byte{133, 29, 89, 223, 69, 238, 176, 10}
	orcaDecreaseLiquidityDiscriminator  = [8]byte{160, 38, 208, 111, 104, 91, 44, 1}

	meteoraDAMMCreateDiscriminator   = [8]byte{7, 166, 138, 171, 206, 171, 236, 244}
	meteoraDAMMAddDiscriminator      = [8]byte{168, 227, 50, 62, 189, 171, 84, 176}
	meteoraDAMMRemoveDiscriminator   = [8]byte{133, 109, 44, 179, 56, 238, 114, 33}
	meteoraDAMMV2InitDiscriminator   = [8]byte{95, 180, 10, 172, 84, 174, 232, 40}
	meteoraDAMMV2AddDiscriminator    = meteoraDLMMAddLiquidityDiscriminator
	meteoraDAMMV2RemoveDiscriminator = meteoraDLMMRemoveLiquidityDiscriminator
)

// Legacy 1-byte Raydium instruction opcodes.
const (
	raydiumLegacyCreate byte = 1
	raydiumLegacyAdd    byte = 3
	raydiumLegacyRemove byte = 4
)

// programName returns the registry's display name for id, or "Unknown".
func programName(id solana.PublicKey) string {
	for _, p := range dexPrograms {
		if p.ID.Equals(id) {
			return p.Name
		}
	}
	return "Unknown"
}

func isSystemProgram(id solana.PublicKey) bool {
	for _, s := range systemProgramIDs {
		if s.Equals(id) {
			return true
		}
	}
	for _, s := range skipProgramIDs {
		if s.Equals(id) {
			return true
		}
	}
	return false
}

func isFeeAccount(addr string) bool {
	return feeAccounts[addr]
}

func knownTokenDecimals(mint solana.PublicKey) (uint8, bool) {
	d, ok := stableMintDecimals[mint]
	return d, ok
}

func isKnownStable(mint solana.PublicKey) bool {
	if mint.Equals(WRAPPED_SOL_MINT) {
		return false
	}
	_, ok := stableMintDecimals[mint]
	return ok
}
