package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestStore(t *testing.T) (*Store, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	s := New(kv, WithClock(fixedClock(time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC))))
	_, err := s.Load()
	require.NoError(t, err)
	return s, kv
}

func TestLoad_Empty(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, DefaultKey, s.Key())
}

func TestAdd_ValidDraft(t *testing.T) {
	s, _ := newTestStore(t)
	on := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

	drafts := []model.Draft{
		{Name: "Coffee", Amount: "50000", Category: model.CategoryFood},
		{Name: "Grab", Amount: "32000.5", Category: model.CategoryTransport},
		{Name: "Refund", Amount: "-10000", Category: model.CategoryOther},
		{Name: "Free sample", Amount: "0", Category: model.CategoryShopping},
	}

	ids := make(map[int64]struct{})
	for i, d := range drafts {
		before := s.Len()
		e, err := s.Add(d, on)
		require.NoError(t, err, "draft %d", i)
		assert.Equal(t, before+1, s.Len())

		want, _ := ParseAmount(d.Amount)
		assert.Equal(t, d.Name, e.Name)
		assert.Equal(t, want, e.Amount)
		assert.Equal(t, d.Category, e.Category)
		assert.True(t, e.Date.Equal(on))

		_, dup := ids[e.ID]
		assert.False(t, dup, "id %d reused", e.ID)
		ids[e.ID] = struct{}{}
	}
}

func TestAdd_IncompleteDraftIsNoop(t *testing.T) {
	s, kv := newTestStore(t)
	on := time.Now()

	tests := []struct {
		name  string
		draft model.Draft
	}{
		{"missing name", model.Draft{Amount: "100", Category: model.CategoryFood}},
		{"blank name", model.Draft{Name: "   ", Amount: "100", Category: model.CategoryFood}},
		{"missing amount", model.Draft{Name: "Coffee", Category: model.CategoryFood}},
		{"both missing", model.NewDraft()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(tt.draft, on)
			assert.ErrorIs(t, err, ErrIncompleteDraft)
			assert.Equal(t, 0, s.Len())
		})
	}

	_, ok, err := kv.Get(DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok, "no-op adds must not write")
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Add(model.Draft{Name: "Coffee", Amount: "abc", Category: model.CategoryFood}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = s.Add(model.Draft{Name: "Coffee", Amount: "12", Category: "Du lịch"}, time.Now())
	assert.ErrorIs(t, err, ErrUnknownCategory)

	assert.Equal(t, 0, s.Len())
}

func TestAdd_EmptyCategoryUsesDefault(t *testing.T) {
	s, _ := newTestStore(t)
	e, err := s.Add(model.Draft{Name: "Bánh mì", Amount: "20000"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategory, e.Category)
}

func TestAdd_IDsUniqueWithinOneMillisecond(t *testing.T) {
	s, _ := newTestStore(t)
	d := model.Draft{Name: "Tea", Amount: "10000", Category: model.CategoryFood}

	a, err := s.Add(d, time.Now())
	require.NoError(t, err)
	b, err := s.Add(d, time.Now())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC).UnixMilli(), a.ID)
	assert.Equal(t, a.ID+1, b.ID)
}

func TestAdd_PersistsWholeList(t *testing.T) {
	s, kv := newTestStore(t)
	on := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	_, err := s.Add(model.Draft{Name: "Coffee", Amount: "50000", Category: model.CategoryFood}, on)
	require.NoError(t, err)

	raw, ok, err := kv.Get(DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t,
		`[{"id":1715331600000,"name":"Coffee","amount":50000,"category":"Ăn uống","date":"2024-05-10T09:00:00.000Z"}]`,
		raw)

	reloaded := New(kv)
	all, err := reloaded.Load()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Coffee", all[0].Name)
	assert.True(t, all[0].Date.Equal(on))
}

func TestAdd_PersistFailureKeepsMemoryState(t *testing.T) {
	s, kv := newTestStore(t)
	kv.FailWrites = errors.New("quota exceeded")

	e, err := s.Add(model.Draft{Name: "Coffee", Amount: "50000", Category: model.CategoryFood}, time.Now())
	require.Error(t, err)

	var perr *PersistError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "add", perr.Op)
	assert.Equal(t, 1, s.Len())
	got, ok := s.Get(e.ID)
	assert.True(t, ok)
	assert.Equal(t, "Coffee", got.Name)
}

func TestLoad_OriginalBrowserFormat(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(DefaultKey,
		`[{"name":"Phở","amount":45000,"category":"Ăn uống","date":"2024-05-10T03:15:42.123Z","id":1715310942123}]`))

	s := New(kv)
	all, err := s.Load()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(1715310942123), all[0].ID)
	assert.Equal(t, 45000.0, all[0].Amount)
	assert.Equal(t, model.CategoryFood, all[0].Category)
	assert.Equal(t, 123*time.Millisecond, time.Duration(all[0].Date.Nanosecond()))
}

func TestLoad_MalformedFailsClosed(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(DefaultKey, `{"not":"an array"`))

	s := New(kv)
	all, err := s.Load()
	assert.ErrorIs(t, err, ErrMalformedData)
	assert.Empty(t, all)
	assert.Equal(t, 0, s.Len())

	backup, ok, err := kv.Get(DefaultKey + ".corrupt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"not":"an array"`, backup)

	// The store keeps working after a failed load.
	_, err = s.Add(model.Draft{Name: "Coffee", Amount: "1", Category: model.CategoryFood}, time.Now())
	assert.NoError(t, err)
}

func TestLoad_SkipsInvalidRecords(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(DefaultKey, `[
		{"id":1,"name":"ok","amount":10,"category":"Y tế","date":"2024-01-05T00:00:00.000Z"},
		{"id":2,"name":"nan","amount":null,"category":"Y tế","date":"2024-01-05T00:00:00.000Z"},
		{"id":3,"name":"bad cat","amount":5,"category":"Du lịch","date":"2024-01-05T00:00:00.000Z"},
		{"id":1,"name":"dup","amount":5,"category":"Y tế","date":"2024-01-05T00:00:00.000Z"},
		{"id":4,"name":"","amount":5,"category":"Y tế","date":"2024-01-05T00:00:00.000Z"},
		{"id":5,"name":"no date","amount":5,"category":"Y tế"},
		"garbage"
	]`))

	s := New(kv)
	all, err := s.Load()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ok", all[0].Name)
	assert.Equal(t, 6, s.Skipped())

	// New ids continue past the largest loaded id.
	s.now = fixedClock(time.UnixMilli(0))
	e, err := s.Add(model.Draft{Name: "next", Amount: "1", Category: model.CategoryOther}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.ID)
}

func TestDelete_TwoStep(t *testing.T) {
	s, kv := newTestStore(t)
	on := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	e, err := s.Add(model.Draft{Name: "Coffee", Amount: "50000", Category: model.CategoryFood}, on)
	require.NoError(t, err)

	p, err := s.RequestDelete(e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, p.Expense)
	assert.Equal(t, 1, s.Len(), "request alone must not delete")

	removed, err := s.ResolveDelete(p, false)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 1, s.Len())

	// A resolved request cannot be replayed.
	removed, err = s.ResolveDelete(p, true)
	require.NoError(t, err)
	assert.False(t, removed)

	p, err = s.RequestDelete(e.ID)
	require.NoError(t, err)
	removed, err = s.ResolveDelete(p, true)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, s.Len())

	raw, _, _ := kv.Get(DefaultKey)
	assert.JSONEq(t, `[]`, raw)
}

func TestDelete_MissingID(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.RequestDelete(42)
	assert.ErrorIs(t, err, ErrNotFound)

	asked := false
	removed, err := s.Delete(42, ConfirmFunc(func(model.Expense) (bool, error) {
		asked = true
		return true, nil
	}))
	require.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, asked, "missing records need no confirmation")
}

func TestDelete_ConfirmerDecides(t *testing.T) {
	s, _ := newTestStore(t)
	e, err := s.Add(model.Draft{Name: "Coffee", Amount: "1", Category: model.CategoryFood}, time.Now())
	require.NoError(t, err)

	removed, err := s.Delete(e.ID, ConfirmFunc(func(model.Expense) (bool, error) { return false, nil }))
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 1, s.Len())

	boom := errors.New("tty closed")
	_, err = s.Delete(e.ID, ConfirmFunc(func(model.Expense) (bool, error) { return false, boom }))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.Len())

	removed, err = s.Delete(e.ID, AlwaysConfirm)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, s.Len())
}

func TestDelete_PreservesOrderOfRemaining(t *testing.T) {
	s, _ := newTestStore(t)
	var ids []int64
	for _, name := range []string{"a", "b", "c", "d"} {
		e, err := s.Add(model.Draft{Name: name, Amount: "1", Category: model.CategoryOther}, time.Now())
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	removed, err := s.Delete(ids[1], AlwaysConfirm)
	require.NoError(t, err)
	require.True(t, removed)

	var names []string
	for _, e := range s.All() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a", "c", "d"}, names)
}

func TestDelete_PersistFailureKeepsRemoval(t *testing.T) {
	s, kv := newTestStore(t)
	e, err := s.Add(model.Draft{Name: "Coffee", Amount: "1", Category: model.CategoryFood}, time.Now())
	require.NoError(t, err)

	kv.FailWrites = errors.New("disk full")
	removed, err := s.Delete(e.ID, AlwaysConfirm)
	assert.True(t, removed)

	var perr *PersistError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "delete", perr.Op)
	assert.Equal(t, 0, s.Len())
}

func TestAll_ReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Add(model.Draft{Name: "Coffee", Amount: "1", Category: model.CategoryFood}, time.Now())
	require.NoError(t, err)

	all := s.All()
	all[0].Name = "mutated"
	got := s.All()
	assert.Equal(t, "Coffee", got[0].Name)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr error
	}{
		{"50000", 50000, nil},
		{" 12.5 ", 12.5, nil},
		{"-3", -3, nil},
		{"0", 0, nil},
		{"1e3", 1000, nil},
		{"", 0, ErrIncompleteDraft},
		{"abc", 0, ErrInvalidAmount},
		{"12,5", 0, ErrInvalidAmount},
		{"NaN", 0, ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
