package solanaswapgo

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

func TestAnchorDiscriminator8_Stable(t *testing.T) {
	d1 := anchorDiscriminator8("add_liquidity")
	d2 := anchorDiscriminator8("add_liquidity")
	if d1 != d2 {
		t.Fatal("anchorDiscriminator8 is not deterministic for the same input")
	}
	if d1 == anchorDiscriminator8("remove_liquidity") {
		t.Fatal("add_liquidity and remove_liquidity collided")
	}
}

func TestHasPrefix8(t *testing.T) {
	d := anchorDiscriminator8("add_liquidity")
	data := append(d[:], 0x01, 0x02, 0x03)
	if !hasPrefix8(data, addLiquidityAnchors) {
		t.Fatal("expected add_liquidity discriminator to match addLiquidityAnchors")
	}
	if hasPrefix8([]byte{1, 2, 3}, addLiquidityAnchors) {
		t.Fatal("short data must never match")
	}
}

func TestIsAMMProgram(t *testing.T) {
	if !isAMMProgram(RAYDIUM_V4_PROGRAM_ID) {
		t.Fatal("RaydiumV4 must be an AMM program")
	}
	if isAMMProgram(JUPITER_PROGRAM_ID) {
		t.Fatal("Jupiter is a router, not an AMM")
	}
}

// S7 — a Raydium V4 instruction whose first byte is the legacy add-liquidity
// opcode (3), alongside the sibling LP-token MintTo it always issues, must
// produce zero swap trades and exactly one AddLiquidity PoolEvent.
func TestDetectLiquidityEvents_RaydiumLegacyAdd(t *testing.T) {
	if !raydiumLegacyLiquidityOp([]byte{raydiumLegacyAdd}) {
		t.Fatal("raydiumLegacyLiquidityOp must recognize the legacy add opcode")
	}

	progID := RAYDIUM_V4_PROGRAM_ID
	user := solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	lpMint := solana.MustPublicKeyFromBase58("DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263")
	lpTokenAccount := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

	tx := &solana.Transaction{
		Signatures: []solana.Signature{{}},
		Message: solana.Message{
			AccountKeys: []solana.PublicKey{user, progID, TOKEN_PROGRAM_ID, lpMint, lpTokenAccount},
			Instructions: []solana.CompiledInstruction{
				{ProgramIDIndex: 1, Accounts: []uint16{}, Data: []byte{raydiumLegacyAdd}},
			},
		},
	}

	mintToData := make([]byte, 9)
	mintToData[0] = splMintTo

	meta := &rpc.TransactionMeta{
		InnerInstructions: []rpc.InnerInstruction{
			{
				Index: 0,
				Instructions: []solana.CompiledInstruction{
					{ProgramIDIndex: 2, Accounts: []uint16{3, 4}, Data: mintToData},
				},
			},
		},
	}

	a := NewAdapter(tx, meta, 1, 1, &ParseConfig{})
	classifier := NewClassifier(a)
	transferIdx := NewTransferIndex(a)

	trades := decodeFamily(raydiumFamilies, a, classifier, transferIdx, progID)
	if len(trades) != 0 {
		t.Fatalf("len(trades) = %d, want 0 (liquidity instruction must not decode as a swap)", len(trades))
	}

	events := DetectLiquidityEvents(a, classifier, transferIdx)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Type != PoolEventAddLiquidity {
		t.Fatalf("events[0].Type = %s, want AddLiquidity", events[0].Type)
	}
}
