package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orbitln/orbithub/ledger"
	"github.com/orbitln/orbithub/logger"
)

// Snapshot is one immutable view of the wallet's ledger. A refresh replaces
// the snapshot wholesale; entries are never mutated or patched in place.
type Snapshot struct {
	ID          string
	RefreshedAt time.Time
	Entries     []ledger.HistoryEntry
}

type Filter struct {
	OnChainOnly bool
	Flow        *ledger.Flow
	Status      *ledger.Status
}

type HistoryService interface {
	Replace(entries []ledger.HistoryEntry) Snapshot
	Current() Snapshot
	Entries(filter Filter) []ledger.HistoryEntry
}

type historyService struct {
	snapshot Snapshot
	mu       sync.RWMutex
}

func NewHistoryService() *historyService {
	return &historyService{
		snapshot: Snapshot{
			ID:          uuid.NewString(),
			RefreshedAt: time.Now(),
		},
	}
}

// Replace swaps in a fresh snapshot. Concurrent refreshes are expected to be
// serialized by the ingestion side; the lock only protects readers against a
// torn swap.
func (svc *historyService) Replace(entries []ledger.HistoryEntry) Snapshot {
	snapshot := Snapshot{
		ID:          uuid.NewString(),
		RefreshedAt: time.Now(),
		Entries:     entries,
	}

	svc.mu.Lock()
	svc.snapshot = snapshot
	svc.mu.Unlock()

	logger.Logger.Info().
		Str("snapshot_id", snapshot.ID).
		Int("entries", len(entries)).
		Msg("Replaced wallet history snapshot")

	return snapshot
}

func (svc *historyService) Current() Snapshot {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.snapshot
}

// Entries returns the current snapshot's entries matching the filter. The
// result is a fresh slice; the snapshot itself stays untouched.
func (svc *historyService) Entries(filter Filter) []ledger.HistoryEntry {
	snapshot := svc.Current()

	entries := make([]ledger.HistoryEntry, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		if filter.OnChainOnly && !entry.IsOnChain() {
			continue
		}
		header := entry.Header()
		if filter.Flow != nil && header.Flow != *filter.Flow {
			continue
		}
		if filter.Status != nil && header.Status != *filter.Status {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
