package solanaswapgo

import "bytes"

type pumpfunTradeEvent struct {
	mint       string
	solAmount  uint64
	tokenAmount uint64
	isBuy      bool
	user       string
	timestamp  int64
	fee        *uint64
}

// decodePumpfunTradeEvent reads the §4.6.3 layout. The optional trailer's
// first two u64s and the 32-byte address preceding feeLamports carry no
// semantics this pipeline exposes; they are read and discarded positionally
// to keep the cursor aligned.
func decodePumpfunTradeEvent(data []byte) (*pumpfunTradeEvent, bool) {
	r := NewBinaryReader(data)
	mint, err := r.ReadPubkey()
	if err != nil {
		return nil, false
	}
	solAmount, err := r.ReadU64LE()
	if err != nil {
		return nil, false
	}
	tokenAmount, err := r.ReadU64LE()
	if err != nil {
		return nil, false
	}
	isBuyByte, err := r.ReadU8()
	if err != nil {
		return nil, false
	}
	user, err := r.ReadPubkey()
	if err != nil {
		return nil, false
	}
	timestamp, err := r.ReadI64LE()
	if err != nil {
		return nil, false
	}
	if _, err := r.ReadU64LE(); err != nil {
		return nil, false
	}
	if _, err := r.ReadU64LE(); err != nil {
		return nil, false
	}

	evt := &pumpfunTradeEvent{
		mint:        mint,
		solAmount:   solAmount,
		tokenAmount: tokenAmount,
		isBuy:       isBuyByte == 1,
		user:        user,
		timestamp:   timestamp,
	}

	if r.Remaining() >= 58 {
		if _, err := r.ReadU64LE(); err != nil {
			return evt, true
		}
		if _, err := r.ReadU64LE(); err != nil {
			return evt, true
		}
		if _, err := r.ReadFixed(32); err != nil {
			return evt, true
		}
		if _, err := r.ReadU16LE(); err != nil {
			return evt, true
		}
		fee, err := r.ReadU64LE()
		if err == nil {
			evt.fee = &fee
		}
	}
	return evt, true
}

// DecodePumpfun implements the event-based Pumpfun bonding-curve decoder
// (§4.6.3).
func DecodePumpfun(a *Adapter, instructions []ClassifiedInstruction, dex DexInfo) []Trade {
	var trades []Trade
	for _, ci := range instructions {
		if len(ci.Data) < 16 || !bytes.Equal(ci.Data[:16], pumpfunTradeEventDiscriminator[:]) {
			continue
		}
		evt, ok := decodePumpfunTradeEvent(ci.Data[16:])
		if !ok {
			continue
		}

		var inputMint, outputMint string
		var inputAmount, outputAmount uint64
		var inputDec, outputDec uint8
		if evt.isBuy {
			inputMint, inputAmount, inputDec = NATIVE_SOL_MINT_PROGRAM_ID.String(), evt.solAmount, 9
			outputMint, outputAmount, outputDec = evt.mint, evt.tokenAmount, 6
		} else {
			inputMint, inputAmount, inputDec = evt.mint, evt.tokenAmount, 6
			outputMint, outputAmount, outputDec = NATIVE_SOL_MINT_PROGRAM_ID.String(), evt.solAmount, 9
		}
		tt := TradeSell
		if evt.isBuy {
			tt = TradeBuy
		}

		trade := Trade{
			User:      evt.user,
			TradeType: tt,
			InputToken: TokenInfo{
				Mint:      inputMint,
				AmountRaw: uint64ToString(inputAmount),
				Decimals:  inputDec,
				Amount:    convertToUIAmount(inputAmount, inputDec),
			},
			OutputToken: TokenInfo{
				Mint:      outputMint,
				AmountRaw: uint64ToString(outputAmount),
				Decimals:  outputDec,
				Amount:    convertToUIAmount(outputAmount, outputDec),
			},
			ProgramID: strPtr(PUMP_FUN_PROGRAM_ID.String()),
			AMM:       strPtr(programName(PUMP_FUN_PROGRAM_ID)),
			Route:     dex.Route,
			Slot:      a.Slot(),
			Timestamp: evt.timestamp,
			Signature: a.Signature(),
			Idx:       ci.Idx(),
			Signers:   a.Signers(),
		}
		if evt.fee != nil {
			trade.Fee = &FeeInfo{
				Mint:      NATIVE_SOL_MINT_PROGRAM_ID.String(),
				AmountRaw: uint64ToString(*evt.fee),
				Decimals:  9,
				Amount:    convertToUIAmount(*evt.fee, 9),
			}
		}
		trades = append(trades, trade)
	}
	return trades
}
