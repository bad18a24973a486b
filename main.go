package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	solanaswapgo "github.com/soluntrace/swapdecode/solanaswap-go"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type parseReq struct {
	Signature string `json:"signature"`
}

type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSONMaybePretty(w http.ResponseWriter, status int, v interface{}, pretty bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(v)
}

func configFromQuery(q map[string][]string) *solanaswapgo.ParseConfig {
	cfg := &solanaswapgo.ParseConfig{}
	if vs, ok := q["aggregateTrades"]; ok && len(vs) > 0 && (vs[0] == "1" || vs[0] == "true") {
		cfg.AggregateTrades = true
	}
	if vs, ok := q["detectLiquidity"]; ok && len(vs) > 0 && (vs[0] == "1" || vs[0] == "true") {
		cfg.DetectLiquidity = true
	}
	if vs, ok := q["programIDs"]; ok && len(vs) > 0 && vs[0] != "" {
		cfg.ProgramIDs = strings.Split(vs[0], ",")
	}
	if vs, ok := q["ignoreProgramIDs"]; ok && len(vs) > 0 && vs[0] != "" {
		cfg.IgnoreProgramIDs = strings.Split(vs[0], ",")
	}
	return cfg
}

func main() {
	solanaswapgo.LoadEnv()
	solanaswapgo.ApplyExtraStableMints()
	rpcURL := solanaswapgo.RPCEndpoint(rpc.MainNetBeta_RPC)

	const rpcTimeout = 30 * time.Second
	var maxTxVersionU64 uint64 = 0

	client := rpc.New(rpcURL)

	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`
<!doctype html>
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Solana Swap Decode</title>
<div style="font: 16px system-ui; max-width: 900px; margin: 40px auto; line-height:1.5;">
  <h1 style="margin:0 0 16px;">Solana Swap Decode (browser)</h1>
  <form action="/parse" method="get">
    <label>Signature<br>
      <input name="signature" style="width: 100%; padding: 8px;" placeholder="Paste a transaction signature" autofocus>
    </label>
    <div style="margin: 12px 0;">
      <label><input type="checkbox" name="aggregateTrades" value="1"> aggregateTrades</label>
      <label><input type="checkbox" name="detectLiquidity" value="1"> detectLiquidity</label>
      <label><input type="checkbox" name="pretty" value="1" checked> pretty</label>
    </div>
    <button type="submit" style="padding: 8px 14px;">Parse</button>
  </form>
  <p style="margin-top: 24px; color:#666;">This page issues GETs to <code>/parse?signature=...&pretty=1</code>.</p>
</div>
`))
	})

	// Parse endpoint: supports POST (JSON) and GET (?signature=...&pretty=1).
	http.HandleFunc("/parse", func(w http.ResponseWriter, r *http.Request) {
		pretty := r.URL.Query().Get("pretty") == "1" || r.URL.Query().Get("pretty") == "true"

		var sigStr string
		switch r.Method {
		case http.MethodPost:
			var req parseReq
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: "invalid JSON body"}, pretty)
				return
			}
			sigStr = req.Signature
		case http.MethodGet:
			sigStr = r.URL.Query().Get("signature")
		default:
			writeJSONMaybePretty(w, http.StatusMethodNotAllowed, apiError{Error: "method_not_allowed"}, pretty)
			return
		}

		if sigStr == "" {
			writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: "signature is required"}, pretty)
			return
		}

		var sig solana.Signature
		var sigErr error
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					sigErr = errors.New("invalid signature format")
				}
			}()
			sig = solana.MustSignatureFromBase58(sigStr)
		}()
		if sigErr != nil {
			writeJSONMaybePretty(w, http.StatusBadRequest, apiError{Error: "bad_request", Details: "invalid signature (base58)"}, pretty)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
		defer cancel()

		tx, err := client.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
			Commitment:                     rpc.CommitmentConfirmed,
			MaxSupportedTransactionVersion: &maxTxVersionU64,
		})
		if err != nil {
			low := strings.ToLower(err.Error())
			if errors.Is(err, context.DeadlineExceeded) || strings.Contains(low, "deadline") || strings.Contains(low, "timeout") {
				writeJSONMaybePretty(w, http.StatusOK, solanaswapgo.ParseResult{}, pretty)
				return
			}
			writeJSONMaybePretty(w, http.StatusBadGateway, apiError{Error: "rpc_error", Details: err.Error()}, pretty)
			return
		}
		if tx == nil {
			writeJSONMaybePretty(w, http.StatusNotFound, apiError{Error: "not_found", Details: "transaction not found"}, pretty)
			return
		}

		parser, err := solanaswapgo.NewTransactionParser(tx)
		if err != nil {
			writeJSONMaybePretty(w, http.StatusUnprocessableEntity, apiError{Error: "parse_init_error", Details: err.Error()}, pretty)
			return
		}

		result := parser.Parse(configFromQuery(r.URL.Query()))
		writeJSONMaybePretty(w, http.StatusOK, result, pretty)
	})

	addr := ":8080"
	srv := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      65 * time.Second,
		IdleTimeout:       65 * time.Second,
	}

	log.Printf("listening on http://%s (tx rpc=%s, per-request tx timeout=%ss)",
		addr, rpcURL, strconv.Itoa(int(rpcTimeout/time.Second)))
	log.Fatal(srv.ListenAndServe())
}
