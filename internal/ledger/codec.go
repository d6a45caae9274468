package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
)

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// record is the persisted shape of one expense.
type record struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Amount   *float64 `json:"amount"`
	Category string   `json:"category"`
	Date     string   `json:"date"`
}

func encode(expenses []model.Expense) (string, error) {
	records := make([]record, len(expenses))
	for i, e := range expenses {
		amount := e.Amount
		records[i] = record{
			ID:       e.ID,
			Name:     e.Name,
			Amount:   &amount,
			Category: string(e.Category),
			Date:     e.Date.UTC().Format(isoLayout),
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decode parses the persisted array. A value that is not a JSON array is an
// error; individual records that fail validation are skipped and counted.
func decode(raw string) ([]model.Expense, int, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, 0, err
	}

	expenses := make([]model.Expense, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	skipped := 0
	for _, item := range items {
		e, err := decodeRecord(item)
		if err != nil {
			skipped++
			continue
		}
		if _, dup := seen[e.ID]; dup {
			skipped++
			continue
		}
		seen[e.ID] = struct{}{}
		expenses = append(expenses, e)
	}
	return expenses, skipped, nil
}

func decodeRecord(item json.RawMessage) (model.Expense, error) {
	var r record
	if err := json.Unmarshal(item, &r); err != nil {
		return model.Expense{}, err
	}
	if strings.TrimSpace(r.Name) == "" {
		return model.Expense{}, errors.New("blank name")
	}
	if r.Amount == nil || math.IsNaN(*r.Amount) || math.IsInf(*r.Amount, 0) {
		return model.Expense{}, ErrInvalidAmount
	}
	cat := model.Category(r.Category)
	if !cat.Valid() {
		return model.Expense{}, fmt.Errorf("%w: %q", ErrUnknownCategory, r.Category)
	}
	date, err := time.Parse(time.RFC3339Nano, r.Date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("bad date: %w", err)
	}
	return model.Expense{
		ID:       r.ID,
		Name:     r.Name,
		Amount:   *r.Amount,
		Category: cat,
		Date:     date,
	}, nil
}

// ParseAmount converts user-typed text into a finite amount. Zero and
// negative values are accepted.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrIncompleteDraft
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return f, nil
}
