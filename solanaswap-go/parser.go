package solanaswapgo

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"
)

// Log is the package-level logger, styled after the teacher's per-Parser
// logrus.Logger. Pipeline functions take tx/meta/config directly (C3-C10
// already carry everything needed), so there is no Parser value to hang it
// off; callers that want request-scoped fields should wrap Log themselves.
var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	return log
}

// TransactionParser is the public entrypoint wrapping a single fetched
// transaction, mirroring the teacher's NewTransactionParser/ParseTransaction
// shape while delegating all decode work to the orchestrator (C8/C9).
type TransactionParser struct {
	tx   *solana.Transaction
	meta *rpc.TransactionMeta
	slot uint64
	time int64
}

// NewTransactionParser builds a TransactionParser from an RPC
// GetTransactionResult, extracting the versioned transaction and carrying
// its slot/blockTime alongside (neither lives on Transaction or
// TransactionMeta themselves).
func NewTransactionParser(result *rpc.GetTransactionResult) (*TransactionParser, error) {
	tx, err := result.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	var blockTime int64
	if result.BlockTime != nil {
		blockTime = int64(*result.BlockTime)
	}
	return NewTransactionParserFromTransaction(tx, result.Meta, result.Slot, blockTime)
}

// NewTransactionParserFromTransaction builds a TransactionParser from an
// already-decoded transaction and its meta, for callers (shred streams,
// tests) that assemble these themselves.
func NewTransactionParserFromTransaction(tx *solana.Transaction, meta *rpc.TransactionMeta, slot uint64, blockTime int64) (*TransactionParser, error) {
	if tx == nil {
		return nil, fmt.Errorf("nil transaction")
	}
	return &TransactionParser{tx: tx, meta: meta, slot: slot, time: blockTime}, nil
}

// Parse runs the full decode-and-reconcile pipeline (§4.9) and returns the
// assembled ParseResult.
func (p *TransactionParser) Parse(config *ParseConfig) *ParseResult {
	return Parse(p.tx, p.meta, p.slot, p.time, config)
}

// ParseShred runs the lightweight pre-execution dispatch (§4.10), ignoring
// the parser's carried slot/blockTime since shred-stream input has none.
func (p *TransactionParser) ParseShred(config *ParseConfig) *ParseShredResult {
	return ParseShred(p.tx, p.meta, config)
}
