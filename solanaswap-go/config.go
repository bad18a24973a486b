package solanaswapgo

import (
	"os"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
)

// LoadEnv best-effort loads a local .env file; a missing file is not an
// error, matching the teacher's dotenv usage.
func LoadEnv() {
	_ = godotenv.Load()
}

// RPCEndpoint resolves the RPC URL to use, preferring SOLANA_RPC_URL and
// falling back to fallback when unset or blank.
func RPCEndpoint(fallback string) string {
	if v := strings.TrimSpace(os.Getenv("SOLANA_RPC_URL")); v != "" {
		return v
	}
	return fallback
}

// ApplyExtraStableMints extends the known stablecoin whitelist (§2's
// "Known tokens") from SWAPDECODE_EXTRA_STABLE_MINTS, a comma-separated list
// of "mint:decimals" pairs. Malformed entries are skipped rather than
// failing startup, matching the pipeline's best-effort error policy.
func ApplyExtraStableMints() {
	raw := strings.TrimSpace(os.Getenv("SWAPDECODE_EXTRA_STABLE_MINTS"))
	if raw == "" {
		return
	}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			continue
		}
		mint, err := solana.PublicKeyFromBase58(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		decimals, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 8)
		if err != nil {
			continue
		}
		stableMintDecimals[mint] = uint8(decimals)
	}
}
