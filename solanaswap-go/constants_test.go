package solanaswapgo

import "testing"

func TestProgramName(t *testing.T) {
	if got := programName(JUPITER_PROGRAM_ID); got != "Jupiter" {
		t.Fatalf("programName(Jupiter) = %s, want Jupiter", got)
	}
	if got := programName(RAYDIUM_V4_PROGRAM_ID); got != "RaydiumV4" {
		t.Fatalf("programName(RaydiumV4) = %s, want RaydiumV4", got)
	}
	if got := programName(TOKEN_PROGRAM_ID); got != "Unknown" {
		t.Fatalf("programName(TokenProgram) = %s, want Unknown", got)
	}
}

func TestIsSystemProgram(t *testing.T) {
	if !isSystemProgram(SYSTEM_PROGRAM_ID) {
		t.Fatal("SYSTEM_PROGRAM_ID must be a system program")
	}
	if !isSystemProgram(TOKEN_PROGRAM_ID) {
		t.Fatal("TOKEN_PROGRAM_ID must be excluded from DEX discovery")
	}
	if isSystemProgram(RAYDIUM_V4_PROGRAM_ID) {
		t.Fatal("RaydiumV4 must not be classified as a system program")
	}
}

func TestIsKnownStable(t *testing.T) {
	if !isKnownStable(USDC_MINT) {
		t.Fatal("USDC must be a known stable")
	}
	if isKnownStable(WRAPPED_SOL_MINT) {
		t.Fatal("wrapped SOL must not be counted among the stablecoins")
	}
}

func TestApplyExtraStableMints(t *testing.T) {
	t.Setenv("SWAPDECODE_EXTRA_STABLE_MINTS", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v:7")
	ApplyExtraStableMints()
	if d := stableMintDecimals[USDC_MINT]; d != 7 {
		t.Fatalf("stableMintDecimals[USDC] = %d, want 7 (env override)", d)
	}
	stableMintDecimals[USDC_MINT] = 6 // restore for any later test in this package
}
