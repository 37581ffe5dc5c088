package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/contestants/internal/domain/contestant"
)

type contestantEntry struct {
	item contestant.Contestant
	seq  uint64
}

type ContestantRepository struct {
	mu      sync.RWMutex
	items   map[string]contestantEntry
	nextSeq uint64
	now     func() time.Time
}

func NewContestantRepository(seed ...contestant.Contestant) *ContestantRepository {
	r := &ContestantRepository{
		items: make(map[string]contestantEntry, len(seed)),
		now:   time.Now,
	}
	for _, item := range seed {
		r.nextSeq++
		r.items[item.ID] = contestantEntry{item: item, seq: r.nextSeq}
	}

	return r
}

func (r *ContestantRepository) Create(_ context.Context, item contestant.Contestant) (contestant.Contestant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return contestant.Contestant{}, fmt.Errorf("contestant %s already exists", item.ID)
	}

	r.nextSeq++
	r.items[item.ID] = contestantEntry{item: item, seq: r.nextSeq}

	return item, nil
}

func (r *ContestantRepository) List(_ context.Context) ([]contestant.Contestant, error) {
	r.mu.RLock()
	entries := make([]contestantEntry, 0, len(r.items))
	for _, entry := range r.items {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].item.CreatedAt.Equal(entries[j].item.CreatedAt) {
			return entries[i].item.CreatedAt.After(entries[j].item.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	out := make([]contestant.Contestant, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.item)
	}

	return out, nil
}

func (r *ContestantRepository) GetByID(_ context.Context, contestantID string) (contestant.Contestant, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.items[contestantID]
	if !ok {
		return contestant.Contestant{}, false, nil
	}

	return entry.item, true, nil
}

// Update stores the descriptive fields of item; identity, counters and created_at stay as stored.
func (r *ContestantRepository) Update(_ context.Context, item contestant.Contestant) (contestant.Contestant, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.items[item.ID]
	if !ok {
		return contestant.Contestant{}, false, nil
	}

	stored := entry.item
	stored.Name = item.Name
	stored.Nickname = item.Nickname
	stored.CountryCode = item.CountryCode
	stored.AvatarURL = item.AvatarURL
	stored.UpdatedAt = item.UpdatedAt
	entry.item = stored
	r.items[item.ID] = entry

	return stored, true, nil
}

func (r *ContestantRepository) Delete(_ context.Context, contestantID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[contestantID]; !ok {
		return 0, nil
	}
	delete(r.items, contestantID)

	return 1, nil
}

func (r *ContestantRepository) Increment(_ context.Context, contestantID string, counter contestant.Counter) (contestant.Contestant, bool, error) {
	if !counter.Valid() {
		return contestant.Contestant{}, false, fmt.Errorf("unknown contestant counter %q", counter)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.items[contestantID]
	if !ok {
		return contestant.Contestant{}, false, nil
	}
	entry.item = counter.Bump(entry.item)
	entry.item.UpdatedAt = r.now().UTC()
	r.items[contestantID] = entry

	return entry.item, true, nil
}
