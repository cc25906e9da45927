package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"punchclock/internal/kv"
	"punchclock/internal/session"

	"github.com/google/uuid"
)

// Cache is the local-first attendance store. All of one user's records
// live under a single storage key as one JSON blob; every write replaces
// the whole collection. There is one logical writer per user (punches
// are human-paced), so a per-key mutex around the read-modify-write
// cycle is the only coordination needed.
type Cache struct {
	store kv.Store
	keys  *session.KeyProvider

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCache(store kv.Store, keys *session.KeyProvider) *Cache {
	return &Cache{
		store: store,
		keys:  keys,
		locks: make(map[string]*sync.Mutex),
	}
}

func (c *Cache) keyLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[key] = lock
	}
	return lock
}

// RecordPunch upserts the record for date: the first punch-in for a date
// creates it, later punches for the same date mutate it in place. The
// record ID is set once at creation and never regenerated. This is the
// only write path into the cache; persistence failures propagate because
// silently dropping a punch is worse than surfacing the error.
func (c *Cache) RecordPunch(ctx context.Context, date string, kind PunchKind, ts time.Time, loc *Location) (Record, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Record{}, fmt.Errorf("invalid punch date %q: %w", date, err)
	}
	switch kind {
	case PunchIn, PunchOut:
	default:
		return Record{}, fmt.Errorf("invalid punch kind %q", kind)
	}

	key, err := c.keys.StorageKey()
	if err != nil {
		return Record{}, err
	}

	lock := c.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.load(ctx, key)
	if err != nil {
		return Record{}, fmt.Errorf("error loading attendance records: %w", err)
	}

	idx := -1
	for i := range records {
		if records[i].Date == date {
			idx = i
			break
		}
	}
	if idx == -1 {
		records = append(records, Record{
			ID:     uuid.NewString(),
			Date:   date,
			Status: StatusPresent,
		})
		idx = len(records) - 1
	}

	rec := &records[idx]
	switch kind {
	case PunchIn:
		rec.PunchInTime = &ts
		rec.PunchInLocation = loc
	case PunchOut:
		rec.PunchOutTime = &ts
		rec.PunchOutLocation = loc
	}
	rec.recompute()

	if err := c.persist(ctx, key, records); err != nil {
		return Record{}, err
	}
	return *rec, nil
}

// GetAll returns the user's full record collection. Storage read
// failures degrade to an empty slice: this path backs opportunistic UI
// reads and must never block rendering on corrupt or missing state.
func (c *Cache) GetAll(ctx context.Context) ([]Record, error) {
	key, err := c.keys.StorageKey()
	if err != nil {
		return nil, err
	}

	records, err := c.load(ctx, key)
	if err != nil {
		log.Printf("attendance: unreadable local records for %s: %v", key, err)
		return []Record{}, nil
	}
	return records, nil
}

// GetByRange returns records whose date falls within [start, end]
// inclusive, in collection order. Calendar-date comparison, not
// timestamp comparison.
func (c *Cache) GetByRange(ctx context.Context, start, end string) ([]Record, error) {
	if _, err := time.Parse(DateLayout, start); err != nil {
		return nil, fmt.Errorf("invalid range start %q: %w", start, err)
	}
	if _, err := time.Parse(DateLayout, end); err != nil {
		return nil, fmt.Errorf("invalid range end %q: %w", end, err)
	}

	records, err := c.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// DateLayout strings order the same lexicographically as by calendar.
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.Date >= start && rec.Date <= end {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Clear removes every record for the current user. Diagnostic use.
func (c *Cache) Clear(ctx context.Context) error {
	key, err := c.keys.StorageKey()
	if err != nil {
		return err
	}

	lock := c.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("error clearing attendance records: %w", err)
	}
	return nil
}

// MigrateLegacy moves records written under the old unscoped key into
// the current user's slot. It is a no-op when the user already has
// scoped records or no legacy blob exists. Never called implicitly;
// callers opt in once after sign-in.
func (c *Cache) MigrateLegacy(ctx context.Context) error {
	key, err := c.keys.StorageKey()
	if err != nil {
		return err
	}

	lock := c.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if _, err := c.store.Get(ctx, key); err == nil {
		return nil
	} else if !errors.Is(err, kv.ErrNotFound) {
		return fmt.Errorf("error probing scoped records: %w", err)
	}

	blob, err := c.store.Get(ctx, session.LegacyStorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading legacy records: %w", err)
	}
	if _, err := decodeRecords(blob); err != nil {
		return fmt.Errorf("legacy records are not migratable: %w", err)
	}

	if err := c.store.Set(ctx, key, blob); err != nil {
		return fmt.Errorf("error migrating legacy records: %w", err)
	}
	if err := c.store.Delete(ctx, session.LegacyStorageKey); err != nil {
		return fmt.Errorf("error removing legacy records: %w", err)
	}
	return nil
}

// load reads and decodes the collection under key. A missing key is an
// empty collection; read and decode failures are returned to the caller,
// who decides whether to degrade or propagate.
func (c *Cache) load(ctx context.Context, key string) ([]Record, error) {
	blob, err := c.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeRecords(blob)
}

func (c *Cache) persist(ctx context.Context, key string, records []Record) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error encoding attendance records: %w", err)
	}
	if err := c.store.Set(ctx, key, blob); err != nil {
		return fmt.Errorf("error persisting attendance records: %w", err)
	}
	return nil
}

// decodeRecords is the single place the persisted blob's schema is
// checked, so a corrupt slot fails the same way on every path.
func decodeRecords(blob []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("error decoding attendance records: %w", err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}
