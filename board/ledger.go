package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strconv"

	"github.com/alex-pricope/idea-board/logging"
	"github.com/alex-pricope/idea-board/storage"
)

// DefaultLedgerKey is the storage key holding the serialized ledger.
const DefaultLedgerKey = "votedIdeas"

// VoteLedger records the single vote this client cast per idea.
// It is not safe for concurrent use; Board serializes access.
type VoteLedger struct {
	kv    storage.KeyValueStore
	key   string
	votes map[int64]Direction
}

// LoadVoteLedger rehydrates the ledger from kv. A missing or malformed snapshot
// yields an empty ledger.
func LoadVoteLedger(ctx context.Context, kv storage.KeyValueStore, key string) *VoteLedger {
	if key == "" {
		key = DefaultLedgerKey
	}
	l := &VoteLedger{kv: kv, key: key, votes: make(map[int64]Direction)}

	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			logging.Log.Infof("LEDGER: no snapshot under '%s', starting empty", key)
		} else {
			logging.Log.Warnf("LEDGER: failed to read snapshot '%s', starting empty: %v", key, err)
		}
		return l
	}

	votes, err := decodeLedger(raw)
	if err != nil {
		logging.Log.Warnf("LEDGER: malformed snapshot '%s', starting empty: %v", key, err)
		return l
	}

	l.votes = votes
	logging.Log.Infof("LEDGER: loaded %d votes", len(votes))
	return l
}

func decodeLedger(raw string) (map[int64]Direction, error) {
	var stored map[string]string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, err
	}

	votes := make(map[int64]Direction, len(stored))
	for k, v := range stored {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("idea id %q: %w", k, err)
		}
		dir := Direction(v)
		if dir != DirectionUp && dir != DirectionDown {
			return nil, fmt.Errorf("idea %d: unknown direction %q", id, v)
		}
		votes[id] = dir
	}
	return votes, nil
}

func (l *VoteLedger) HasVoted(ideaID int64) bool {
	_, ok := l.votes[ideaID]
	return ok
}

func (l *VoteLedger) Direction(ideaID int64) (Direction, bool) {
	d, ok := l.votes[ideaID]
	return d, ok
}

func (l *VoteLedger) Snapshot() map[int64]Direction {
	return maps.Clone(l.votes)
}

// CastVote records dir for ideaID and persists the whole ledger. It reports false
// without touching anything when the idea already has a vote. A failed write
// leaves the ledger as it was.
func (l *VoteLedger) CastVote(ctx context.Context, ideaID int64, dir Direction) (bool, error) {
	if l.HasVoted(ideaID) {
		return false, nil
	}
	if dir != DirectionUp && dir != DirectionDown {
		return false, ErrInvalidDirection
	}

	l.votes[ideaID] = dir
	if err := l.persist(ctx); err != nil {
		delete(l.votes, ideaID)
		return false, err
	}
	return true, nil
}

func (l *VoteLedger) persist(ctx context.Context) error {
	data, err := json.Marshal(l.votes)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	if err := l.kv.Set(ctx, l.key, string(data)); err != nil {
		logging.Log.Errorf("LEDGER: failed to persist snapshot '%s': %v", l.key, err)
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}
