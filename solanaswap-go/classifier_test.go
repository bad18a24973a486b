package solanaswapgo

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

func TestNewClassifier_OuterAndInner(t *testing.T) {
	user := solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	raydium := RAYDIUM_V4_PROGRAM_ID

	tx := &solana.Transaction{
		Signatures: []solana.Signature{{}},
		Message: solana.Message{
			AccountKeys: []solana.PublicKey{user, raydium, TOKEN_PROGRAM_ID, SYSTEM_PROGRAM_ID},
			Instructions: []solana.CompiledInstruction{
				{ProgramIDIndex: 3, Accounts: []uint16{}, Data: []byte{}},
				{ProgramIDIndex: 1, Accounts: []uint16{0}, Data: []byte{0x01}},
			},
		},
	}
	meta := &rpc.TransactionMeta{
		InnerInstructions: []rpc.InnerInstruction{
			{
				Index: 1,
				Instructions: []solana.CompiledInstruction{
					{ProgramIDIndex: 2, Accounts: []uint16{0}, Data: []byte{0x03}},
				},
			},
		},
	}

	a := NewAdapter(tx, meta, 1, 1, &ParseConfig{})
	classifier := NewClassifier(a)

	all := classifier.AllProgramIDs()
	for _, id := range all {
		if id.Equals(SYSTEM_PROGRAM_ID) || id.Equals(TOKEN_PROGRAM_ID) {
			t.Fatalf("AllProgramIDs must exclude system/token programs, found %s", id)
		}
	}

	raydiumInstrs := classifier.For(raydium)
	if len(raydiumInstrs) != 1 {
		t.Fatalf("classifier.For(raydium) = %d entries, want 1", len(raydiumInstrs))
	}
	if raydiumInstrs[0].Idx() != "1" {
		t.Fatalf("outer instruction Idx() = %s, want 1", raydiumInstrs[0].Idx())
	}

	tokenInstrs := classifier.For(TOKEN_PROGRAM_ID)
	if len(tokenInstrs) != 1 {
		t.Fatalf("classifier.For(token) = %d entries, want 1", len(tokenInstrs))
	}
	if tokenInstrs[0].Idx() != "1-0" {
		t.Fatalf("inner instruction Idx() = %s, want 1-0", tokenInstrs[0].Idx())
	}
}
