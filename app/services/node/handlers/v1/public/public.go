// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ardanlabs/nicecoin/business/web/errs"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/database/storage"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/state"
	"github.com/ardanlabs/nicecoin/foundation/events"
	"github.com/ardanlabs/nicecoin/foundation/nameservice"
	"github.com/ardanlabs/nicecoin/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log      *zap.SugaredLogger
	State    *state.State
	NS       *nameservice.NameService
	WS       websocket.Upgrader
	Evts     *events.Events
	MinerID  database.AccountID
	DumpPath string
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	id, ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(id)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// SubmitTransaction adds a signed transaction to the pending transactions.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var stx submitTx
	if err := web.Decode(r, &stx); err != nil {
		return err
	}

	tx := stx.toTx()

	h.Log.Infow("add tran", "traceid", v.TraceID, "from", h.NS.Lookup(tx.FromID), "to", h.NS.Lookup(tx.ToID), "value", tx.Value)
	if err := h.State.AddTransaction(tx); err != nil {
		return errs.FromLedger(err)
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "transaction added to pending",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Pending returns the set of uncommitted transactions.
func (h Handlers) Pending(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	pending := h.State.RetrievePending()
	return web.Respond(ctx, w, h.toTxs(pending), http.StatusOK)
}

// Balances returns the derived balances for all accounts, or the balance of
// the specified account.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	account := database.AccountID(web.Param(r, "account"))

	var bals []balance
	switch account {
	case "":
		for _, act := range h.State.QueryAccounts() {
			if act.AccountID == database.RewardAccountID {
				continue
			}
			bals = append(bals, balance{
				Account: act.AccountID,
				Name:    h.NS.Lookup(act.AccountID),
				Balance: act.Balance,
			})
		}

	default:
		bals = append(bals, balance{
			Account: account,
			Name:    h.NS.Lookup(account),
			Balance: h.State.BalanceOf(account),
		})
	}

	resp := balances{
		LatestBlock: h.State.LatestBlock().Hash,
		Uncommitted: len(h.State.RetrievePending()),
		Balances:    bals,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// BlocksByAccount returns all the blocks and their details.
func (h Handlers) BlocksByAccount(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	account := database.AccountID(web.Param(r, "account"))

	dbBlocks := h.State.QueryBlocksByAccount(account)
	if len(dbBlocks) == 0 {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}

	blocks := make([]block, len(dbBlocks))
	for i, blk := range dbBlocks {
		blocks[i] = h.toBlock(blk)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// Mine mines the pending transactions into a block while the caller waits.
// The reward for the block is credited to the node's miner account.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blk, err := h.State.MinePendingTransactions(ctx, h.MinerID)
	if err != nil {
		return errs.NewTrusted(fmt.Errorf("mining cancelled: %w", err), http.StatusServiceUnavailable)
	}

	return web.Respond(ctx, w, h.toBlock(blk), http.StatusOK)
}

// SignalMining signals the background worker to mine the pending transactions.
func (h Handlers) SignalMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if h.State.Worker == nil {
		return errs.NewTrusted(errors.New("background mining is not running"), http.StatusServiceUnavailable)
	}

	h.State.Worker.SignalStartMining()

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining signalled",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// ValidateChain reports whether the chain is still valid and the reason
// when it is not.
func (h Handlers) ValidateChain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := chainStatus{
		Valid:  true,
		Blocks: len(h.State.RetrieveChain()),
	}

	if err := h.State.ValidateChain(); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Dump writes the chain to the configured dump folder, one file per block.
func (h Handlers) Dump(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	disk, err := storage.NewDisk(h.DumpPath)
	if err != nil {
		return err
	}
	defer disk.Close()

	if err := h.State.Dump(disk); err != nil {
		return err
	}

	resp := struct {
		Status string `json:"status"`
		Path   string `json:"path"`
	}{
		Status: "chain dumped",
		Path:   h.DumpPath,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// =============================================================================

func (h Handlers) toTxs(trans []database.Tx) []tx {
	txs := make([]tx, len(trans))
	for i, tran := range trans {
		txs[i] = tx{
			FromAccount: tran.FromID,
			To:          tran.ToID,
			ToName:      h.NS.Lookup(tran.ToID),
			Value:       tran.Value,
			Sig:         tran.Signature,
		}

		if !tran.IsReward() {
			txs[i].FromName = h.NS.Lookup(tran.FromID)
		}
	}
	return txs
}

func (h Handlers) toBlock(blk database.Block) block {
	return block{
		Number:        blk.Header.Number,
		PrevBlockHash: blk.Header.PrevBlockHash,
		TimeStamp:     blk.Header.TimeStamp,
		Nonce:         blk.Header.Nonce,
		Hash:          blk.Hash,
		Transactions:  h.toTxs(blk.Trans),
	}
}
