package solanaswapgo

import (
	"testing"

	"github.com/gagliardetto/solana-go"
)

// S8 — shred dispatch: a transaction touching Jupiter and Raydium, run
// through ParseShred, must group classified instructions under "Jupiter"
// and "RaydiumV4" without ever producing a Trade.
func TestParseShred_GroupsByDexName(t *testing.T) {
	user := solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")

	tx := &solana.Transaction{
		Signatures: []solana.Signature{{}},
		Message: solana.Message{
			AccountKeys: []solana.PublicKey{user, JUPITER_PROGRAM_ID, RAYDIUM_V4_PROGRAM_ID},
			Instructions: []solana.CompiledInstruction{
				{ProgramIDIndex: 1, Accounts: []uint16{0}, Data: []byte{0x01}},
				{ProgramIDIndex: 2, Accounts: []uint16{0}, Data: []byte{0x09}},
			},
		},
	}

	result := ParseShred(tx, nil, &ParseConfig{})

	if !result.State {
		t.Fatal("ParseShred.State = false, want true")
	}
	jupiter, ok := result.Instructions["Jupiter"]
	if !ok || len(jupiter) != 1 {
		t.Fatalf(`Instructions["Jupiter"] = %v, want exactly 1 entry`, jupiter)
	}
	raydium, ok := result.Instructions["RaydiumV4"]
	if !ok || len(raydium) != 1 {
		t.Fatalf(`Instructions["RaydiumV4"] = %v, want exactly 1 entry`, raydium)
	}
	if len(result.Instructions) != 2 {
		t.Fatalf("len(Instructions) = %d, want 2", len(result.Instructions))
	}
}

func TestParseShred_ProgramIDFilter(t *testing.T) {
	user := solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")

	tx := &solana.Transaction{
		Signatures: []solana.Signature{{}},
		Message: solana.Message{
			AccountKeys: []solana.PublicKey{user, JUPITER_PROGRAM_ID, RAYDIUM_V4_PROGRAM_ID},
			Instructions: []solana.CompiledInstruction{
				{ProgramIDIndex: 1, Accounts: []uint16{0}, Data: []byte{0x01}},
				{ProgramIDIndex: 2, Accounts: []uint16{0}, Data: []byte{0x09}},
			},
		},
	}

	result := ParseShred(tx, nil, &ParseConfig{ProgramIDs: []string{RAYDIUM_V4_PROGRAM_ID.String()}})
	if len(result.Instructions) != 1 {
		t.Fatalf("len(Instructions) = %d, want 1 (filtered to RaydiumV4 only)", len(result.Instructions))
	}
	if _, ok := result.Instructions["RaydiumV4"]; !ok {
		t.Fatal(`Instructions["RaydiumV4"] missing after program-ID filter`)
	}
}
