package solanaswapgo

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

func putU64(b []byte, v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return append(b, buf...)
}

func putPubkey(b []byte, key solana.PublicKey) []byte {
	return append(b, key[:]...)
}

// S1 — Jupiter single-hop buy: the aggregator program's self-CPI route
// event, reached as an inner instruction, decodes straight to one Trade
// without needing any per-leg transfer reconciliation.
func TestParse_JupiterSingleHopBuy(t *testing.T) {
	user := solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	jupiter := JUPITER_PROGRAM_ID
	raydium := RAYDIUM_V4_PROGRAM_ID
	sol := WRAPPED_SOL_MINT
	bonk := solana.MustPublicKeyFromBase58("DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263")

	tx := &solana.Transaction{
		Signatures: []solana.Signature{{}},
		Message: solana.Message{
			AccountKeys: []solana.PublicKey{user, jupiter},
			Instructions: []solana.CompiledInstruction{
				{ProgramIDIndex: 1, Accounts: []uint16{0}, Data: []byte{0xe5, 0x1a, 0x5c, 0xb5, 0xb4, 0x2e, 0x13, 0xb9}},
			},
		},
	}

	eventData := append([]byte{}, jupiterRouteEventDiscriminator[:]...)
	eventData = putPubkey(eventData, raydium)
	eventData = putPubkey(eventData, sol)
	eventData = putU64(eventData, 1_000_000_000)
	eventData = putPubkey(eventData, bonk)
	eventData = putU64(eventData, 42_000_000)

	meta := &rpc.TransactionMeta{
		InnerInstructions: []rpc.InnerInstruction{
			{
				Index: 0,
				Instructions: []solana.CompiledInstruction{
					{ProgramIDIndex: 1, Accounts: []uint16{}, Data: eventData},
				},
			},
		},
	}

	result := Parse(tx, meta, 100, 1_700_000_000, &ParseConfig{})

	if !result.State {
		t.Fatal("result.State = false, want true")
	}
	if len(result.Trades) != 1 {
		t.Fatalf("len(result.Trades) = %d, want 1", len(result.Trades))
	}
	trade := result.Trades[0]
	if trade.TradeType != TradeBuy {
		t.Fatalf("TradeType = %s, want Buy (SOL in)", trade.TradeType)
	}
	if trade.InputToken.Mint != sol.String() {
		t.Fatalf("InputToken.Mint = %s, want %s", trade.InputToken.Mint, sol.String())
	}
	if trade.OutputToken.Mint != bonk.String() {
		t.Fatalf("OutputToken.Mint = %s, want %s", trade.OutputToken.Mint, bonk.String())
	}
	if trade.InputToken.AmountRaw != "1000000000" {
		t.Fatalf("InputToken.AmountRaw = %s, want 1000000000", trade.InputToken.AmountRaw)
	}
	if trade.Pool == nil || trade.Pool[0] != raydium.String() {
		t.Fatalf("Pool = %v, want [%s]", trade.Pool, raydium.String())
	}
}

// S4 — Pumpfun buy event with fee trailer: the bonding-curve trade event,
// including its optional fee-lamports trailer, decodes to a single Buy
// Trade with a SOL-denominated Fee attached.
func TestParse_PumpfunBuyWithFeeTrailer(t *testing.T) {
	pumpfun := PUMP_FUN_PROGRAM_ID
	mint := solana.MustPublicKeyFromBase58("DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263")
	trader := solana.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB")
	someAddr := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

	tx := &solana.Transaction{
		Signatures: []solana.Signature{{}},
		Message: solana.Message{
			AccountKeys: []solana.PublicKey{trader, pumpfun},
			Instructions: []solana.CompiledInstruction{
				{ProgramIDIndex: 1, Accounts: []uint16{0}, Data: []byte{0x66, 0x06, 0x3d, 0x12, 0x01, 0xda, 0xeb, 0xea}},
			},
		},
	}

	body := []byte{}
	body = putPubkey(body, mint)
	body = putU64(body, 5_000_000_000)  // solAmount
	body = putU64(body, 900_000_000)    // tokenAmount
	body = append(body, 1)              // isBuy = true
	body = putPubkey(body, trader)       // user
	body = putU64(body, 1_700_000_000)  // timestamp (i64 LE, positive)
	body = putU64(body, 0)              // discarded u64 #1
	body = putU64(body, 0)              // discarded u64 #2
	// trailer: two discarded u64s, a 32-byte address, a u16, then feeLamports
	body = putU64(body, 0)
	body = putU64(body, 0)
	body = putPubkey(body, someAddr)
	body = append(body, 0, 0) // u16 LE
	body = putU64(body, 12_500_000)

	eventData := append([]byte{}, pumpfunTradeEventDiscriminator[:]...)
	eventData = append(eventData, body...)

	meta := &rpc.TransactionMeta{
		InnerInstructions: []rpc.InnerInstruction{
			{
				Index: 0,
				Instructions: []solana.CompiledInstruction{
					{ProgramIDIndex: 1, Accounts: []uint16{}, Data: eventData},
				},
			},
		},
	}

	result := Parse(tx, meta, 200, 1_700_000_001, &ParseConfig{})

	if len(result.Trades) != 1 {
		t.Fatalf("len(result.Trades) = %d, want 1", len(result.Trades))
	}
	trade := result.Trades[0]
	if trade.TradeType != TradeBuy {
		t.Fatalf("TradeType = %s, want Buy", trade.TradeType)
	}
	if trade.OutputToken.Mint != mint.String() {
		t.Fatalf("OutputToken.Mint = %s, want %s", trade.OutputToken.Mint, mint.String())
	}
	if trade.InputToken.AmountRaw != "5000000000" {
		t.Fatalf("InputToken.AmountRaw = %s, want 5000000000", trade.InputToken.AmountRaw)
	}
	if trade.Fee == nil {
		t.Fatal("trade.Fee = nil, want the trailer's feeLamports")
	}
	if trade.Fee.AmountRaw != "12500000" {
		t.Fatalf("trade.Fee.AmountRaw = %s, want 12500000", trade.Fee.AmountRaw)
	}
}
