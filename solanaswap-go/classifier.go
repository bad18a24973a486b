package solanaswapgo

import "github.com/gagliardetto/solana-go"

// Classifier flattens outer and inner instructions into a programID-indexed
// map, built once from an Adapter.
type Classifier struct {
	byProgram map[solana.PublicKey][]ClassifiedInstruction
	order     []solana.PublicKey
}

// NewClassifier walks every outer instruction and every inner-instruction
// set and groups the resulting ClassifiedInstructions by the program ID
// they target. Instructions whose program ID can't be resolved are skipped.
func NewClassifier(a *Adapter) *Classifier {
	c := &Classifier{byProgram: make(map[solana.PublicKey][]ClassifiedInstruction)}

	for outerIdx, ix := range a.tx.Message.Instructions {
		progID, ok := a.GetAccountKey(int(ix.ProgramIDIndex))
		if !ok {
			continue
		}
		c.add(progID, a.resolveAccounts(ix.Accounts), ix.Data, outerIdx, nil)
	}

	if a.meta != nil {
		for _, set := range a.meta.InnerInstructions {
			outerIdx := int(set.Index)
			for innerIdx, ix := range set.Instructions {
				progID, ok := a.GetAccountKey(int(ix.ProgramIDIndex))
				if !ok {
					continue
				}
				idx := innerIdx
				c.add(progID, a.resolveAccounts(ix.Accounts), ix.Data, outerIdx, &idx)
			}
		}
	}

	return c
}

func (c *Classifier) add(progID solana.PublicKey, accounts []solana.PublicKey, data []byte, outerIdx int, innerIdx *int) {
	if _, seen := c.byProgram[progID]; !seen {
		c.order = append(c.order, progID)
	}
	c.byProgram[progID] = append(c.byProgram[progID], ClassifiedInstruction{
		ProgramID:  progID,
		Accounts:   accounts,
		Data:       data,
		OuterIndex: outerIdx,
		InnerIndex: innerIdx,
	})
}

// For returns every ClassifiedInstruction targeting programID, in
// discovery order.
func (c *Classifier) For(programID solana.PublicKey) []ClassifiedInstruction {
	return c.byProgram[programID]
}

// AllProgramIDs returns every distinct program ID present in the
// transaction, excluding system programs and the skip-list. Order is
// discovery order (the order in which each ID was first seen); callers that
// need a different order must impose one.
func (c *Classifier) AllProgramIDs() []solana.PublicKey {
	ids := make([]solana.PublicKey, 0, len(c.order))
	for _, id := range c.order {
		if isSystemProgram(id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (a *Adapter) resolveAccounts(indexes []uint16) []solana.PublicKey {
	accounts := make([]solana.PublicKey, 0, len(indexes))
	for _, idx := range indexes {
		if key, ok := a.GetAccountKey(int(idx)); ok {
			accounts = append(accounts, key)
		}
	}
	return accounts
}
