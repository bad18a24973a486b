package solanaswapgo

import (
	"bytes"
	"strconv"

	"github.com/AlekSi/pointer"
	ag_binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// jupiterRouteEvent is the fixed Borsh layout of the self-CPI route event
// Jupiter's aggregator program emits after `data[0..16]`.
type jupiterRouteEvent struct {
	Amm          solana.PublicKey
	InputMint    solana.PublicKey
	InputAmount  uint64
	OutputMint   solana.PublicKey
	OutputAmount uint64
}

// DecodeJupiter implements the event-based Jupiter decoder (§4.6.1).
func DecodeJupiter(a *Adapter, instructions []ClassifiedInstruction, dex DexInfo) []Trade {
	var trades []Trade

	user := a.Signer().String()
	if signers, ok := a.containsDCAProgram(); ok {
		user = signers
	}

	for _, ci := range instructions {
		if len(ci.Data) < 16 || !bytes.Equal(ci.Data[:16], jupiterRouteEventDiscriminator[:]) {
			continue
		}
		var event jupiterRouteEvent
		if err := ag_binary.NewBorshDecoder(ci.Data[16:]).Decode(&event); err != nil {
			continue
		}

		inDecimals := a.GetTokenDecimals(event.InputMint)
		outDecimals := a.GetTokenDecimals(event.OutputMint)
		route := "Jupiter"
		if dex.Route != nil {
			route = *dex.Route
		}
		amm := programName(event.Amm)

		inner := 0
		if ci.InnerIndex != nil {
			inner = *ci.InnerIndex
		}
		idx := strconv.Itoa(ci.OuterIndex) + "-" + strconv.Itoa(inner)
		trades = append(trades, Trade{
			User:      user,
			TradeType: tradeType(event.InputMint, event.OutputMint),
			Pool:      []string{event.Amm.String()},
			InputToken: TokenInfo{
				Mint:      event.InputMint.String(),
				AmountRaw: uint64ToString(event.InputAmount),
				Decimals:  inDecimals,
				Amount:    convertToUIAmount(event.InputAmount, inDecimals),
			},
			OutputToken: TokenInfo{
				Mint:      event.OutputMint.String(),
				AmountRaw: uint64ToString(event.OutputAmount),
				Decimals:  outDecimals,
				Amount:    convertToUIAmount(event.OutputAmount, outDecimals),
			},
			ProgramID: strPtr(JUPITER_PROGRAM_ID.String()),
			AMM:       strPtr(amm),
			Route:     strPtr(route),
			Slot:      a.Slot(),
			Timestamp: a.BlockTime(),
			Signature: a.Signature(),
			Idx:       idx,
			Signers:   a.Signers(),
		})
	}
	return trades
}

// containsDCAProgram reports whether the Jupiter DCA program is present in
// the account keys; when it is, account_keys[2] is the swap's user instead
// of the transaction signer.
func (a *Adapter) containsDCAProgram() (string, bool) {
	for _, key := range a.accountKeys {
		if key.Equals(JUPITER_DCA_PROGRAM_ID) {
			if user, ok := a.GetAccountKey(2); ok {
				return user.String(), true
			}
		}
	}
	return "", false
}

// strPtr wraps pointer.ToString for the package's *string optional-field
// fields (DexInfo, Trade.ProgramID/AMM/Route), mirroring the teacher's own
// use of AlekSi/pointer for RPC-parameter optionals in spltoken/price.
func strPtr(s string) *string { return pointer.ToString(s) }
