package service_test

import (
	"bytes"
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/repository"
	"github.com/limbo/wellness/pkg/entity"
)

type activityKey struct {
	uid  uuid.UUID
	date string
}

// fakeStore keeps users, stats and activities in memory. WithinTx holds the
// store lock for the whole callback and restores the maps if it fails.
type fakeStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
	stats map[uuid.UUID]entity.UserStats
	acts  map[activityKey]entity.ActivityRecord
	// Next transactions to fail with ErrConflict before running the callback
	conflicts int
	txCount   int
	// Runs inside Upsert before the write, with the store lock held
	beforeUpsert func(acts map[activityKey]entity.ActivityRecord)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[uuid.UUID]entity.User),
		stats: make(map[uuid.UUID]entity.UserStats),
		acts:  make(map[activityKey]entity.ActivityRecord),
	}
}

func (s *fakeStore) addUser(name string, createdAt time.Time) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	uid := uuid.New()
	s.users[uid] = entity.User{ID: uid, Name: name, CreatedAt: createdAt}
	s.stats[uid] = entity.UserStats{UserID: uid}
	return uid
}

func (s *fakeStore) userStats(uid uuid.UUID) entity.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats[uid]
}

func (s *fakeStore) activity(uid uuid.UUID, date string) entity.ActivityRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acts[activityKey{uid, date}]
}

func (s *fakeStore) transactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txCount
}

func (s *fakeStore) WithinTx(ctx context.Context, fn func(ctx context.Context, activities repository.ActivitiesRepositoryI, stats repository.StatsRepositoryI) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txCount++
	if s.conflicts > 0 {
		s.conflicts--
		return errorvalues.ErrConflict
	}
	statsBackup, actsBackup := maps.Clone(s.stats), maps.Clone(s.acts)
	tx := fakeTx{s}
	if err := fn(ctx, tx, tx); err != nil {
		s.stats, s.acts = statsBackup, actsBackup
		return err
	}
	return nil
}

func (s *fakeStore) FindByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.ActivityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeTx{s}.FindByDate(ctx, uid, date)
}

func (s *fakeStore) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.ActivityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeTx{s}.ListByUser(ctx, uid)
}

func (s *fakeStore) ListSince(ctx context.Context, uid uuid.UUID, since string) ([]*entity.ActivityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeTx{s}.ListSince(ctx, uid, since)
}

func (s *fakeStore) Upsert(ctx context.Context, act *entity.ActivityRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeTx{s}.Upsert(ctx, act)
}

func (s *fakeStore) UpsertWater(ctx context.Context, uid uuid.UUID, date string, water entity.Water) (*entity.ActivityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeTx{s}.UpsertWater(ctx, uid, date, water)
}

func (s *fakeStore) FindByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeTx{s}.FindByUserID(ctx, uid)
}

func (s *fakeStore) FindByUserIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	return s.FindByUserID(ctx, uid)
}

func (s *fakeStore) Update(ctx context.Context, stats *entity.UserStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeTx{s}.Update(ctx, stats)
}

func (s *fakeStore) ListRanked(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeTx{s}.ListRanked(ctx, limit)
}

func (s *fakeStore) CountAhead(ctx context.Context, uid uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fakeTx{s}.CountAhead(ctx, uid)
}

// fakeTx works on the store maps directly; its caller already holds the lock.
type fakeTx struct {
	s *fakeStore
}

func (tx fakeTx) FindByDate(_ context.Context, uid uuid.UUID, date string) (*entity.ActivityRecord, error) {
	act, ok := tx.s.acts[activityKey{uid, date}]
	if !ok {
		return nil, errorvalues.ErrActivityNotFound
	}
	return &act, nil
}

func (tx fakeTx) ListByUser(_ context.Context, uid uuid.UUID) ([]*entity.ActivityRecord, error) {
	result := tx.collect(uid, "")
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (tx fakeTx) ListSince(_ context.Context, uid uuid.UUID, since string) ([]*entity.ActivityRecord, error) {
	result := tx.collect(uid, since)
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (tx fakeTx) collect(uid uuid.UUID, since string) []*entity.ActivityRecord {
	result := make([]*entity.ActivityRecord, 0)
	for key, act := range tx.s.acts {
		if key.uid == uid && key.date >= since {
			act := act
			result = append(result, &act)
		}
	}
	return result
}

func (tx fakeTx) Upsert(_ context.Context, act *entity.ActivityRecord) error {
	if _, ok := tx.s.users[act.UserID]; !ok {
		return errorvalues.ErrUserNotFound
	}
	if tx.s.beforeUpsert != nil {
		tx.s.beforeUpsert(tx.s.acts)
	}
	key := activityKey{act.UserID, act.Date}
	now := time.Now()
	stored, ok := tx.s.acts[key]
	if !ok {
		stored = entity.ActivityRecord{ID: uuid.New(), UserID: act.UserID, Date: act.Date, CreatedAt: now}
	}
	stored.Exercise, stored.Diet, stored.SkinCare = act.Exercise, act.Diet, act.SkinCare
	stored.PointsEarned, stored.MilestoneBonus = act.PointsEarned, act.MilestoneBonus
	stored.UpdatedAt = now
	tx.s.acts[key] = stored
	*act = stored
	return nil
}

func (tx fakeTx) UpsertWater(_ context.Context, uid uuid.UUID, date string, water entity.Water) (*entity.ActivityRecord, error) {
	if _, ok := tx.s.users[uid]; !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	key := activityKey{uid, date}
	now := time.Now()
	stored, ok := tx.s.acts[key]
	if !ok {
		stored = entity.ActivityRecord{ID: uuid.New(), UserID: uid, Date: date, CreatedAt: now}
	}
	stored.Water = water
	stored.UpdatedAt = now
	tx.s.acts[key] = stored
	return &stored, nil
}

func (tx fakeTx) FindByUserID(_ context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	stats, ok := tx.s.stats[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &stats, nil
}

func (tx fakeTx) FindByUserIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	return tx.FindByUserID(ctx, uid)
}

func (tx fakeTx) Update(_ context.Context, stats *entity.UserStats) error {
	if _, ok := tx.s.stats[stats.UserID]; !ok {
		return errorvalues.ErrUserNotFound
	}
	stored := *stats
	stored.UpdatedAt = time.Now()
	tx.s.stats[stats.UserID] = stored
	return nil
}

func (tx fakeTx) ranked() []*entity.LeaderboardEntry {
	entries := make([]*entity.LeaderboardEntry, 0, len(tx.s.stats))
	for uid, st := range tx.s.stats {
		entries = append(entries, &entity.LeaderboardEntry{
			UserID:        uid,
			Name:          tx.s.users[uid].Name,
			TotalPoints:   st.TotalPoints,
			CurrentStreak: st.CurrentStreak,
			LongestStreak: st.LongestStreak,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		ca, cb := tx.s.users[a.UserID].CreatedAt, tx.s.users[b.UserID].CreatedAt
		if !ca.Equal(cb) {
			return ca.Before(cb)
		}
		return bytes.Compare(a.UserID[:], b.UserID[:]) < 0
	})
	return entries
}

func (tx fakeTx) ListRanked(_ context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	entries := tx.ranked()
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (tx fakeTx) CountAhead(_ context.Context, uid uuid.UUID) (int, error) {
	for i, e := range tx.ranked() {
		if e.UserID == uid {
			return i, nil
		}
	}
	return 0, nil
}
