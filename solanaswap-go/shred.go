package solanaswapgo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ParseShred implements the lightweight pre-execution dispatch mode (C9):
// instructions are classified and grouped by DEX name without requiring
// balance snapshots, for use against shred-stream or otherwise
// meta-incomplete input. Unlike Parse, an empty program-ID filter match
// leaves State true — callers inspect the (empty) Instructions map instead.
func ParseShred(tx *solana.Transaction, meta *rpc.TransactionMeta, config *ParseConfig) *ParseShredResult {
	if config == nil {
		config = &ParseConfig{}
	}
	a := NewAdapter(tx, meta, 0, 0, config)
	result := &ParseShredResult{
		State:        true,
		Signature:    a.Signature(),
		Instructions: make(map[string][]ClassifiedInstructionView),
	}

	classifier := NewClassifier(a)
	allProgramIDs := classifier.AllProgramIDs()

	if len(config.ProgramIDs) > 0 && !intersects(allProgramIDs, config.ProgramIDs) {
		return result
	}

	for _, progID := range allProgramIDs {
		if len(config.ProgramIDs) > 0 && !containsID(config.ProgramIDs, progID) {
			continue
		}
		if containsID(config.IgnoreProgramIDs, progID) {
			continue
		}
		instructions := classifier.For(progID)
		views := make([]ClassifiedInstructionView, 0, len(instructions))
		for _, ci := range instructions {
			views = append(views, ClassifiedInstructionView{
				ProgramID:  ci.ProgramID.String(),
				OuterIndex: ci.OuterIndex,
				InnerIndex: ci.InnerIndex,
			})
		}
		result.Instructions[programName(progID)] = views
	}
	return result
}
