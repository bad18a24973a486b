package solanaswapgo

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// TransferIndex decodes every compiled Transfer/TransferChecked instruction
// nested as an inner instruction into a TransferRecord, keyed by the program
// ID of the enclosing top-level instruction plus that instruction's outer
// index. A top-level transfer is never indexed: its program ID is a token
// program, which is on the system-program list.
type TransferIndex struct {
	records map[string][]TransferRecord
}

// NewTransferIndex walks every outer and inner instruction and indexes the
// Token/Token-2022 transfers it finds.
func NewTransferIndex(a *Adapter) *TransferIndex {
	t := &TransferIndex{records: make(map[string][]TransferRecord)}

	for outerIdx, ix := range a.tx.Message.Instructions {
		outerProgID, ok := a.GetAccountKey(int(ix.ProgramIDIndex))
		if !ok || isSystemProgram(outerProgID) {
			continue
		}
		rec, ok := a.decodeTransfer(ix, fmt.Sprintf("%d", outerIdx))
		if !ok {
			continue
		}
		key := outerProgID.String() + ":" + rec.Idx
		t.records[key] = append(t.records[key], rec)
	}

	if a.meta == nil {
		return t
	}
	for _, set := range a.meta.InnerInstructions {
		outerIdx := int(set.Index)
		if outerIdx < 0 || outerIdx >= len(a.tx.Message.Instructions) {
			continue
		}
		outerIx := a.tx.Message.Instructions[outerIdx]
		outerProgID, ok := a.GetAccountKey(int(outerIx.ProgramIDIndex))
		if !ok || isSystemProgram(outerProgID) {
			continue
		}
		for innerIdx, ix := range set.Instructions {
			rec, ok := a.decodeTransfer(ix, fmt.Sprintf("%d-%d", outerIdx, innerIdx))
			if !ok {
				continue
			}
			key := outerProgID.String() + ":" + fmt.Sprintf("%d", outerIdx)
			t.records[key] = append(t.records[key], rec)
		}
	}
	return t
}

// decodeTransfer returns a TransferRecord for a compiled Transfer or
// TransferChecked instruction, or ok=false for anything else.
func (a *Adapter) decodeTransfer(ix solana.CompiledInstruction, idx string) (TransferRecord, bool) {
	progID, ok := a.GetAccountKey(int(ix.ProgramIDIndex))
	if !ok || !(progID.Equals(solana.TokenProgramID) || progID.Equals(solana.Token2022ProgramID)) {
		return TransferRecord{}, false
	}
	if len(ix.Data) == 0 {
		return TransferRecord{}, false
	}
	accounts := make([]solana.PublicKey, 0, len(ix.Accounts))
	for _, i := range ix.Accounts {
		if key, ok := a.GetAccountKey(int(i)); ok {
			accounts = append(accounts, key)
		}
	}

	var rec TransferRecord
	switch ix.Data[0] {
	case splTransfer:
		if len(accounts) < 2 || len(ix.Data) < 9 {
			return TransferRecord{}, false
		}
		amount := binary.LittleEndian.Uint64(ix.Data[1:9])
		source, dest := accounts[0], accounts[1]
		destMint := a.mintOf(dest)
		srcMint := a.mintOf(source)
		mint := getTransferTokenMint(destMint, srcMint)
		if mint == nil {
			return TransferRecord{}, false
		}
		decimals := a.GetTokenDecimals(*mint)
		authority := ""
		if len(accounts) >= 3 {
			authority = accounts[2].String()
		}
		rec = TransferRecord{
			Kind:        "transfer",
			ProgramID:   progID.String(),
			Source:      source.String(),
			Destination: dest.String(),
			Authority:   authority,
			Mint:        mint.String(),
			TokenAmount: TokenAmount{Raw: uint64ToString(amount), Decimals: decimals},
		}
	case splTransferChecked:
		if len(accounts) < 4 || len(ix.Data) < 10 {
			return TransferRecord{}, false
		}
		amount := binary.LittleEndian.Uint64(ix.Data[1:9])
		decimals := ix.Data[9]
		rec = TransferRecord{
			Kind:        "transferChecked",
			ProgramID:   progID.String(),
			Source:      accounts[0].String(),
			Mint:        accounts[1].String(),
			Destination: accounts[2].String(),
			Authority:   accounts[3].String(),
			TokenAmount: TokenAmount{Raw: uint64ToString(amount), Decimals: decimals},
		}
	default:
		return TransferRecord{}, false
	}
	rec.Idx = idx

	destKey := solana.MustPublicKeyFromBase58(rec.Destination)
	if info, ok := a.GetTokenInfo(destKey); ok && info.DestinationOwner != nil {
		rec.DestinationOwner = *info.DestinationOwner
	}
	if isFeeAccount(rec.Destination) || (rec.DestinationOwner != "" && isFeeAccount(rec.DestinationOwner)) {
		rec.IsFee = true
	}
	return rec, true
}

// TransfersFor returns the transfer/transferChecked records enclosed within
// programID's top-level instruction at outerIndex, in stored order.
// Solana surfaces inner instructions as one flat list per top-level
// instruction, so every transfer a DEX call's CPI tree produces — however
// many inner instructions deep — shares the same outerIndex; the specific
// inner slot a ClassifiedInstruction was found at plays no part in the
// lookup.
func (t *TransferIndex) TransfersFor(programID solana.PublicKey, outerIndex int, _ *int) []TransferRecord {
	return t.records[programID.String()+":"+fmt.Sprintf("%d", outerIndex)]
}
