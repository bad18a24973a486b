package solanaswapgo

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// S2 — Raydium V4 transfer-pair sell: one outer swap instruction with two
// inner token transfers, indexed under the wrapping program's ID.
func TestNewTransferIndex_InnerTransfers(t *testing.T) {
	user := solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	raydium := RAYDIUM_V4_PROGRAM_ID
	userTokenAccount := solana.MustPublicKeyFromBase58("DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263")
	poolTokenAccount := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	poolSolAccount := solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	userSolAccount := solana.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB")

	transferOut := make([]byte, 9)
	transferOut[0] = splTransfer
	binary.LittleEndian.PutUint64(transferOut[1:9], 1_000_000)

	transferIn := make([]byte, 9)
	transferIn[0] = splTransfer
	binary.LittleEndian.PutUint64(transferIn[1:9], 2_000_000_000)

	tx := &solana.Transaction{
		Signatures: []solana.Signature{{}},
		Message: solana.Message{
			AccountKeys: []solana.PublicKey{
				user, raydium, TOKEN_PROGRAM_ID,
				userTokenAccount, poolTokenAccount, poolSolAccount, userSolAccount,
			},
			Instructions: []solana.CompiledInstruction{
				{ProgramIDIndex: 1, Accounts: []uint16{1, 3, 4, 5, 6}, Data: []byte{}},
			},
		},
	}
	meta := &rpc.TransactionMeta{
		InnerInstructions: []rpc.InnerInstruction{
			{
				Index: 0,
				Instructions: []solana.CompiledInstruction{
					{ProgramIDIndex: 2, Accounts: []uint16{3, 4}, Data: transferOut},
					{ProgramIDIndex: 2, Accounts: []uint16{5, 6}, Data: transferIn},
				},
			},
		},
	}

	a := NewAdapter(tx, meta, 1, 1, &ParseConfig{})
	idx := NewTransferIndex(a)

	transfers := idx.TransfersFor(raydium, 0, nil)
	if len(transfers) != 2 {
		t.Fatalf("len(transfers) = %d, want 2", len(transfers))
	}
	if transfers[0].TokenAmount.Raw != "1000000" {
		t.Fatalf("transfers[0].TokenAmount.Raw = %s, want 1000000", transfers[0].TokenAmount.Raw)
	}
	if transfers[1].TokenAmount.Raw != "2000000000" {
		t.Fatalf("transfers[1].TokenAmount.Raw = %s, want 2000000000", transfers[1].TokenAmount.Raw)
	}
}
