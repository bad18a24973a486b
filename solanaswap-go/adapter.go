package solanaswapgo

import (
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Adapter is the unified, read-only view over a transaction built once at
// construction time: account keys (including address-table lookups), a
// token-account-to-mint map, and a mint-to-decimals map. Every decoder and
// the orchestrator hold it by shared reference.
type Adapter struct {
	tx     *solana.Transaction
	meta   *rpc.TransactionMeta
	config *ParseConfig
	slot   uint64
	block  int64

	accountKeys solana.PublicKeySlice
	splTokenMap map[string]TokenInfo
	splDecimals map[string]uint8
}

// NewAdapter builds the adapter from a parsed transaction and its execution
// meta. meta may carry a nil LoadedAddresses (pre-versioned transactions).
// slot and blockTime come from the enclosing GetTransactionResult envelope,
// which solana-go keeps separate from both the transaction and its meta.
func NewAdapter(tx *solana.Transaction, meta *rpc.TransactionMeta, slot uint64, blockTime int64, config *ParseConfig) *Adapter {
	keys := make(solana.PublicKeySlice, len(tx.Message.AccountKeys))
	copy(keys, tx.Message.AccountKeys)
	if meta != nil {
		keys = append(keys, meta.LoadedAddresses.Writable...)
		keys = append(keys, meta.LoadedAddresses.ReadOnly...)
	}

	a := &Adapter{
		tx:          tx,
		meta:        meta,
		config:      config,
		slot:        slot,
		block:       blockTime,
		accountKeys: keys,
		splTokenMap: make(map[string]TokenInfo),
		splDecimals: make(map[string]uint8),
	}
	a.extractTokenInfo()
	return a
}

func (a *Adapter) AccountKeys() solana.PublicKeySlice { return a.accountKeys }

func (a *Adapter) GetAccountKey(index int) (solana.PublicKey, bool) {
	if index < 0 || index >= len(a.accountKeys) {
		return solana.PublicKey{}, false
	}
	return a.accountKeys[index], true
}

func (a *Adapter) GetAccountIndex(addr solana.PublicKey) (int, bool) {
	for i, k := range a.accountKeys {
		if k.Equals(addr) {
			return i, true
		}
	}
	return 0, false
}

func (a *Adapter) Signature() string {
	if len(a.tx.Signatures) == 0 {
		return ""
	}
	return base58Encode(a.tx.Signatures[0][:])
}

func (a *Adapter) Signer() solana.PublicKey {
	if len(a.accountKeys) == 0 {
		return solana.PublicKey{}
	}
	return a.accountKeys[0]
}

func (a *Adapter) Signers() []string {
	if len(a.accountKeys) == 0 {
		return nil
	}
	return []string{a.accountKeys[0].String()}
}

func (a *Adapter) Slot() uint64 { return a.slot }

func (a *Adapter) BlockTime() int64 { return a.block }

func (a *Adapter) Fee() TokenAmount {
	var fee uint64
	if a.meta != nil {
		fee = a.meta.Fee
	}
	ui := convertToUIAmount(fee, 9)
	return TokenAmount{Raw: uint64ToString(fee), Decimals: 9, UI: &ui}
}

func (a *Adapter) ComputeUnits() uint64 {
	if a.meta == nil || a.meta.ComputeUnitsConsumed == nil {
		return 0
	}
	return *a.meta.ComputeUnitsConsumed
}

func (a *Adapter) TxStatus() TransactionStatus {
	if a.meta == nil {
		return StatusUnknown
	}
	if a.meta.Err != nil {
		return StatusFailed
	}
	return StatusSuccess
}

// GetTokenDecimals returns the decimals recorded for mint, or 0 if unknown.
func (a *Adapter) GetTokenDecimals(mint solana.PublicKey) uint8 {
	return a.splDecimals[mint.String()]
}

// GetTokenInfo returns the recorded per-account token info, if any.
func (a *Adapter) GetTokenInfo(account solana.PublicKey) (TokenInfo, bool) {
	info, ok := a.splTokenMap[account.String()]
	return info, ok
}

func (a *Adapter) innerInstructionsFor(outerIndex int) []solana.CompiledInstruction {
	if a.meta == nil {
		return nil
	}
	for _, set := range a.meta.InnerInstructions {
		if int(set.Index) == outerIndex {
			return set.Instructions
		}
	}
	return nil
}

// extractTokenInfo reconstructs the token-account-to-mint and
// mint-to-decimals maps. Order matters: post-token-balance snapshots seed
// the map first, then compiled transfer/mint/burn instructions backfill
// anything the snapshots missed, and finally native SOL is guaranteed an
// entry.
func (a *Adapter) extractTokenInfo() {
	a.extractFromPostBalances()
	a.extractFromInstructions()
	if _, ok := a.splTokenMap[NATIVE_SOL_MINT_PROGRAM_ID.String()]; !ok {
		a.splTokenMap[NATIVE_SOL_MINT_PROGRAM_ID.String()] = TokenInfo{
			Mint:      NATIVE_SOL_MINT_PROGRAM_ID.String(),
			AmountRaw: "0",
			Decimals:  9,
		}
	}
	a.splDecimals[NATIVE_SOL_MINT_PROGRAM_ID.String()] = 9
}

func (a *Adapter) extractFromPostBalances() {
	if a.meta == nil {
		return
	}
	for _, bal := range a.meta.PostTokenBalances {
		if bal.Mint.IsZero() {
			continue
		}
		key, ok := a.GetAccountKey(int(bal.AccountIndex))
		if !ok {
			continue
		}
		keyStr := key.String()
		if _, exists := a.splTokenMap[keyStr]; !exists {
			var owner *string
			if !bal.Owner.IsZero() {
				o := bal.Owner.String()
				owner = &o
			}
			ui := 0.0
			if bal.UiTokenAmount.UiAmount != nil {
				ui = *bal.UiTokenAmount.UiAmount
			}
			a.splTokenMap[keyStr] = TokenInfo{
				Mint:             bal.Mint.String(),
				Amount:           ui,
				AmountRaw:        bal.UiTokenAmount.Amount,
				Decimals:         bal.UiTokenAmount.Decimals,
				DestinationOwner: owner,
			}
		}
		a.splDecimals[bal.Mint.String()] = bal.UiTokenAmount.Decimals
	}
}

func (a *Adapter) extractFromInstructions() {
	for _, ix := range a.tx.Message.Instructions {
		a.extractFromCompiledTransfer(ix)
	}
	if a.meta == nil {
		return
	}
	for _, set := range a.meta.InnerInstructions {
		for _, ix := range set.Instructions {
			a.extractFromCompiledTransfer(ix)
		}
	}
}

func (a *Adapter) extractFromCompiledTransfer(ix solana.CompiledInstruction) {
	if len(ix.Data) == 0 {
		return
	}
	progID, ok := a.GetAccountKey(int(ix.ProgramIDIndex))
	if !ok || !(progID.Equals(solana.TokenProgramID) || progID.Equals(solana.Token2022ProgramID)) {
		return
	}

	accounts := make([]solana.PublicKey, 0, len(ix.Accounts))
	for _, idx := range ix.Accounts {
		if key, ok := a.GetAccountKey(int(idx)); ok {
			accounts = append(accounts, key)
		}
	}

	var source, destination, mint *solana.PublicKey
	var decimals *uint8

	switch ix.Data[0] {
	case splTransfer:
		if len(accounts) < 2 {
			return
		}
		src, dst := accounts[0], accounts[1]
		source, destination = &src, &dst
		destMint := a.mintOf(dst)
		srcMint := a.mintOf(src)
		mint = getTransferTokenMint(destMint, srcMint)
	case splTransferChecked:
		if len(accounts) < 3 {
			return
		}
		src, m, dst := accounts[0], accounts[1], accounts[2]
		source, destination, mint = &src, &dst, &m
		if len(ix.Data) >= 10 {
			d := ix.Data[9]
			decimals = &d
		}
	case splMintTo, splMintToChecked:
		if len(accounts) < 2 {
			return
		}
		m, dst := accounts[0], accounts[1]
		destination, mint = &dst, &m
		if ix.Data[0] == splMintToChecked && len(ix.Data) >= 10 {
			d := ix.Data[9]
			decimals = &d
		}
	case splBurn, splBurnChecked:
		if len(accounts) < 2 {
			return
		}
		src, m := accounts[0], accounts[1]
		source, mint = &src, &m
		if ix.Data[0] == splBurnChecked && len(ix.Data) >= 10 {
			d := ix.Data[9]
			decimals = &d
		}
	default:
		return
	}

	if mint != nil && decimals != nil {
		a.splDecimals[mint.String()] = *decimals
	}
	for _, acc := range []*solana.PublicKey{source, destination} {
		if acc == nil {
			continue
		}
		key := acc.String()
		if _, exists := a.splTokenMap[key]; exists {
			continue
		}
		info := TokenInfo{AmountRaw: "0", Decimals: 9}
		if mint != nil {
			info.Mint = mint.String()
		} else {
			info.Mint = NATIVE_SOL_MINT_PROGRAM_ID.String()
		}
		if decimals != nil {
			info.Decimals = *decimals
		}
		a.splTokenMap[key] = info
	}
}

func (a *Adapter) mintOf(account solana.PublicKey) *solana.PublicKey {
	info, ok := a.splTokenMap[account.String()]
	if !ok || info.Mint == "" {
		return nil
	}
	m := solana.MustPublicKeyFromBase58(info.Mint)
	return &m
}

// GetAccountSolBalanceChange returns the {pre, post, change} triple for a
// single account, or ok=false when the balance snapshots don't cover it or
// the change is zero.
func (a *Adapter) GetAccountSolBalanceChange(index int) (BalanceChange, bool) {
	if a.meta == nil {
		return BalanceChange{}, false
	}
	if index < 0 || index >= len(a.meta.PreBalances) || index >= len(a.meta.PostBalances) {
		return BalanceChange{}, false
	}
	pre := a.meta.PreBalances[index]
	post := a.meta.PostBalances[index]
	change := int64(post) - int64(pre)
	if change == 0 {
		return BalanceChange{}, false
	}
	if change < 0 {
		change = -change
	}
	return BalanceChange{Pre: pre, Post: post, Change: change, Decimals: 9}, true
}

// GetTokenAccountBalanceChanges reports, for the given account, the
// per-mint {pre, post, change} triples derived from pre/post-token-balance
// snapshots. Entries whose change is zero are pruned.
func (a *Adapter) GetTokenAccountBalanceChanges(index int) map[string]BalanceChange {
	changes := make(map[string]BalanceChange)
	if a.meta == nil {
		return changes
	}
	for _, bal := range a.meta.PreTokenBalances {
		if int(bal.AccountIndex) != index || bal.Mint.IsZero() {
			continue
		}
		raw := parseAmountBig(bal.UiTokenAmount.Amount)
		changes[bal.Mint.String()] = BalanceChange{Pre: raw.Uint64(), Decimals: bal.UiTokenAmount.Decimals}
	}
	for _, bal := range a.meta.PostTokenBalances {
		if int(bal.AccountIndex) != index || bal.Mint.IsZero() {
			continue
		}
		mint := bal.Mint.String()
		post := parseAmountBig(bal.UiTokenAmount.Amount).Uint64()
		existing, ok := changes[mint]
		if !ok {
			existing = BalanceChange{Decimals: bal.UiTokenAmount.Decimals}
		}
		existing.Post = post
		existing.Change = int64(post) - int64(existing.Pre)
		if existing.Change == 0 {
			delete(changes, mint)
			continue
		}
		changes[mint] = existing
	}
	for mint, c := range changes {
		if c.Change == 0 {
			delete(changes, mint)
		}
	}
	return changes
}

func uint64ToString(v uint64) string {
	return strconv.FormatUint(v, 10)
}
