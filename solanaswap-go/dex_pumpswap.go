package solanaswapgo

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
)

type pumpswapEvent struct {
	isBuy                 bool
	baseAmount            uint64 // base_amount_out (buy) / base_amount_in (sell)
	quoteAmount           uint64 // quote_amount_in_with_lp_fee (buy) / user_quote_amount_out (sell)
	protocolFee           uint64
	coinCreatorFee        uint64
	pool                  string
	user                  string
	userBaseTokenAccount  string
	userQuoteTokenAccount string
	feeRecipient          string
	feeRecipientTokenAcct string
}

// decodePumpswapEvent reads the shared §4.6.4 tail layout: a run of u64
// fields (most of which carry no semantics this pipeline exposes) followed
// by six fixed addresses and an optional coin-creator-fee trailer.
func decodePumpswapEvent(data []byte, isBuy bool) (*pumpswapEvent, bool) {
	r := NewBinaryReader(data)
	if _, err := r.ReadI64LE(); err != nil { // timestamp, unused
		return nil, false
	}
	baseAmount, err := r.ReadU64LE() // base_amount_out / base_amount_in
	if err != nil {
		return nil, false
	}
	for i := 0; i < 6; i++ { // max/min_quote, user+pool base/quote reserves, quote_in/out
		if _, err := r.ReadU64LE(); err != nil {
			return nil, false
		}
	}
	for i := 0; i < 2; i++ { // lp_bps, lp_fee
		if _, err := r.ReadU64LE(); err != nil {
			return nil, false
		}
	}
	if _, err := r.ReadU64LE(); err != nil { // proto_bps, unused
		return nil, false
	}
	protocolFee, err := r.ReadU64LE()
	if err != nil {
		return nil, false
	}
	quoteAmount, err := r.ReadU64LE() // quote_amount_in_with_lp_fee / quote_out_no_lp
	if err != nil {
		return nil, false
	}
	if !isBuy {
		// sell's user_quote_amount_out is the field this pipeline keeps;
		// quoteAmount above was the discarded quote_out_no_lp.
		userQuoteOut, err := r.ReadU64LE()
		if err != nil {
			return nil, false
		}
		quoteAmount = userQuoteOut
	} else {
		if _, err := r.ReadU64LE(); err != nil { // user_quote_in, unused
			return nil, false
		}
	}

	pool, err := r.ReadPubkey()
	if err != nil {
		return nil, false
	}
	user, err := r.ReadPubkey()
	if err != nil {
		return nil, false
	}
	userBase, err := r.ReadPubkey()
	if err != nil {
		return nil, false
	}
	userQuote, err := r.ReadPubkey()
	if err != nil {
		return nil, false
	}
	feeRecipient, err := r.ReadPubkey()
	if err != nil {
		return nil, false
	}
	feeRecipientTokenAcct, err := r.ReadPubkey()
	if err != nil {
		return nil, false
	}

	var coinCreatorFee uint64
	if r.Remaining() >= 48 {
		if _, err := r.ReadFixed(32); err == nil { // coin_creator address, unused
			if _, err := r.ReadU64LE(); err == nil { // bps, unused
				if fee, err := r.ReadU64LE(); err == nil {
					coinCreatorFee = fee
				}
			}
		}
	}

	return &pumpswapEvent{
		isBuy:                 isBuy,
		baseAmount:            baseAmount,
		quoteAmount:           quoteAmount,
		protocolFee:           protocolFee,
		coinCreatorFee:        coinCreatorFee,
		pool:                  pool,
		user:                  user,
		userBaseTokenAccount:  userBase,
		userQuoteTokenAccount: userQuote,
		feeRecipient:          feeRecipient,
		feeRecipientTokenAcct: feeRecipientTokenAcct,
	}, true
}

// DecodePumpswap implements the event-based Pumpswap AMM decoder (§4.6.4).
func DecodePumpswap(a *Adapter, instructions []ClassifiedInstruction, dex DexInfo) []Trade {
	var trades []Trade
	for _, ci := range instructions {
		if len(ci.Data) < 16 {
			continue
		}
		var evt *pumpswapEvent
		var ok bool
		switch {
		case bytes.Equal(ci.Data[:16], pumpswapBuyEventDiscriminator[:]):
			evt, ok = decodePumpswapEvent(ci.Data[16:], true)
		case bytes.Equal(ci.Data[:16], pumpswapSellEventDiscriminator[:]):
			evt, ok = decodePumpswapEvent(ci.Data[16:], false)
		default:
			continue
		}
		if !ok {
			continue
		}

		var inAccount, outAccount string
		if evt.isBuy {
			inAccount, outAccount = evt.userQuoteTokenAccount, evt.userBaseTokenAccount
		} else {
			inAccount, outAccount = evt.userBaseTokenAccount, evt.userQuoteTokenAccount
		}
		inInfo, inOK := a.GetTokenInfo(mustPubkey(inAccount))
		outInfo, outOK := a.GetTokenInfo(mustPubkey(outAccount))
		feeInfo, feeOK := a.GetTokenInfo(mustPubkey(evt.feeRecipientTokenAcct))
		if !inOK || !outOK || !feeOK || inInfo.Mint == "" || outInfo.Mint == "" || feeInfo.Mint == "" {
			continue
		}

		inMint := mustPubkey(inInfo.Mint)
		outMint := mustPubkey(outInfo.Mint)
		inDec := a.GetTokenDecimals(inMint)
		outDec := a.GetTokenDecimals(outMint)
		feeDec := a.GetTokenDecimals(mustPubkey(feeInfo.Mint))
		feeAmount := evt.protocolFee + evt.coinCreatorFee

		var inAmount, outAmount uint64
		if evt.isBuy {
			inAmount, outAmount = evt.quoteAmount, evt.baseAmount
		} else {
			inAmount, outAmount = evt.baseAmount, evt.quoteAmount
		}

		trades = append(trades, Trade{
			User:      evt.user,
			TradeType: tradeType(inMint, outMint),
			Pool:      []string{evt.pool},
			InputToken: TokenInfo{
				Mint:      inInfo.Mint,
				AmountRaw: uint64ToString(inAmount),
				Decimals:  inDec,
				Amount:    convertToUIAmount(inAmount, inDec),
			},
			OutputToken: TokenInfo{
				Mint:      outInfo.Mint,
				AmountRaw: uint64ToString(outAmount),
				Decimals:  outDec,
				Amount:    convertToUIAmount(outAmount, outDec),
			},
			Fee: &FeeInfo{
				Mint:      feeInfo.Mint,
				AmountRaw: uint64ToString(feeAmount),
				Decimals:  feeDec,
				Amount:    convertToUIAmount(feeAmount, feeDec),
			},
			ProgramID: strPtr(PUMP_SWAP_PROGRAM_ID.String()),
			AMM:       strPtr(programName(PUMP_SWAP_PROGRAM_ID)),
			Route:     dex.Route,
			Slot:      a.Slot(),
			Timestamp: a.BlockTime(),
			Signature: a.Signature(),
			Idx:       ci.Idx(),
			Signers:   a.Signers(),
		})
	}
	return trades
}

func mustPubkey(s string) solana.PublicKey {
	return solana.MustPublicKeyFromBase58(s)
}
