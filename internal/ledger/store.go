// Package ledger owns the expense list and the pure aggregations the UI
// derives from it.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/log"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/store"
)

// DefaultKey is the storage key holding the serialized list.
const DefaultKey = "expenses"

// Store is the single writer of the expense list. Every successful
// mutation rewrites the whole list to the backing KV.
//
// A Store is not safe for concurrent use.
type Store struct {
	kv  store.KV
	key string
	log *log.Logger
	now func() time.Time

	expenses []model.Expense
	lastID   int64
	skipped  int
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for load warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock replaces time.Now for id assignment.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store over kv. Call Load to rehydrate it.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		key: DefaultKey,
		log: log.Discard(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key in use.
func (s *Store) Key() string { return s.key }

// Load reads the persisted list, replacing the in-memory one.
//
// A missing entry yields an empty list. An entry that is not a JSON array
// yields an empty list and an error wrapping ErrMalformedData; the raw value
// is copied to "<key>.corrupt" first so a later save cannot destroy it.
// Records that fail validation are skipped; see Skipped.
func (s *Store) Load() ([]model.Expense, error) {
	s.expenses = nil
	s.lastID = 0
	s.skipped = 0

	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.Expense{}, nil
	}

	expenses, skipped, err := decode(raw)
	if err != nil {
		backup := s.key + ".corrupt"
		if berr := s.kv.Set(backup, raw); berr != nil {
			s.log.Error("could not back up malformed data", "key", backup, "err", berr)
		}
		s.log.Warn("stored expenses are malformed, starting empty", "key", s.key, "backup", backup, "err", err)
		return []model.Expense{}, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	if skipped > 0 {
		s.log.Warn("skipped invalid expense records", "key", s.key, "skipped", skipped)
	}
	s.skipped = skipped
	s.expenses = expenses
	for _, e := range expenses {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	s.log.Debug("loaded expenses", "key", s.key, "count", len(expenses))
	return s.All(), nil
}

// Skipped returns how many stored records the last Load dropped.
func (s *Store) Skipped() int { return s.skipped }

// All returns a copy of the list in insertion order.
func (s *Store) All() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.expenses) }

// Get returns the record with the given id.
func (s *Store) Get(id int64) (model.Expense, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.expenses[i], true
	}
	return model.Expense{}, false
}

// Add validates d, stamps it with a fresh id and onDate, appends it and
// persists the list.
//
// A blank name or amount returns ErrIncompleteDraft and changes nothing.
// An empty category selects model.DefaultCategory. When only the save
// fails, the record is kept and returned together with a *PersistError.
func (s *Store) Add(d model.Draft, onDate time.Time) (model.Expense, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" || strings.TrimSpace(d.Amount) == "" {
		return model.Expense{}, ErrIncompleteDraft
	}
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return model.Expense{}, err
	}
	cat := d.Category
	if cat == "" {
		cat = model.DefaultCategory
	}
	if !cat.Valid() {
		return model.Expense{}, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}

	e := model.Expense{
		ID:       s.nextID(),
		Name:     name,
		Amount:   amount,
		Category: cat,
		Date:     onDate.Truncate(time.Millisecond),
	}
	s.expenses = append(s.expenses, e)

	if err := s.save(); err != nil {
		return e, &PersistError{Op: "add", Err: err}
	}
	return e, nil
}

// PendingDelete is a delete awaiting the user's decision.
type PendingDelete struct {
	Expense  model.Expense
	resolved bool
}

// RequestDelete starts a delete of the record with the given id. Nothing
// changes until ResolveDelete is called with the decision.
func (s *Store) RequestDelete(id int64) (*PendingDelete, error) {
	e, ok := s.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return &PendingDelete{Expense: e}, nil
}

// ResolveDelete applies the user's decision. A declined or already
// resolved request changes nothing. It reports whether a record was
// removed; a failed save keeps the removal and returns a *PersistError.
func (s *Store) ResolveDelete(p *PendingDelete, approved bool) (bool, error) {
	if p == nil || p.resolved {
		return false, nil
	}
	p.resolved = true
	if !approved {
		return false, nil
	}

	i := s.indexOf(p.Expense.ID)
	if i < 0 {
		return false, nil
	}
	s.expenses = append(s.expenses[:i:i], s.expenses[i+1:]...)

	if err := s.save(); err != nil {
		return true, &PersistError{Op: "delete", Err: err}
	}
	return true, nil
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	ConfirmDelete(e model.Expense) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(e model.Expense) (bool, error)

// ConfirmDelete implements Confirmer.
func (f ConfirmFunc) ConfirmDelete(e model.Expense) (bool, error) { return f(e) }

// AlwaysConfirm approves every request. It backs --yes.
var AlwaysConfirm = ConfirmFunc(func(model.Expense) (bool, error) { return true, nil })

// Delete runs both delete steps through c. A missing id returns false
// without asking.
func (s *Store) Delete(id int64, c Confirmer) (bool, error) {
	p, err := s.RequestDelete(id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	approved, err := c.ConfirmDelete(p.Expense)
	if err != nil {
		return false, fmt.Errorf("confirming delete: %w", err)
	}
	return s.ResolveDelete(p, approved)
}

func (s *Store) indexOf(id int64) int {
	for i, e := range s.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// nextID returns the current Unix millisecond, bumped past the largest id
// seen so ids stay unique when several records land in one millisecond.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) save() error {
	data, err := encode(s.expenses)
	if err != nil {
		return err
	}
	if err := s.kv.Set(s.key, data); err != nil {
		s.log.Error("saving expenses failed, keeping in-memory state", "key", s.key, "err", err)
		return err
	}
	return nil
}
