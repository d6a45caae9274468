// Package model defines the domain types for chitieu expenses.
package model

import "time"

// Category is one label from the fixed expense classification.
type Category string

// The fixed category set, in display order.
const (
	CategoryFood          Category = "Ăn uống"
	CategoryTransport     Category = "Di chuyển"
	CategoryShopping      Category = "Mua sắm"
	CategoryEntertainment Category = "Giải trí"
	CategoryBills         Category = "Hóa đơn"
	CategoryHealth        Category = "Y tế"
	CategoryOther         Category = "Khác"
)

// Categories lists every category in display order. The first entry is the
// default selection of the add form.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealth,
	CategoryOther,
}

// DefaultCategory is preselected when a new draft is started.
const DefaultCategory = CategoryFood

// Valid reports whether c belongs to the fixed category set.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the display position of c, or -1 if c is unknown.
func (c Category) Index() int {
	for i, known := range Categories {
		if known == c {
			return i
		}
	}
	return -1
}

func (c Category) String() string { return string(c) }

// Expense is one recorded transaction. Records are never mutated after
// creation.
type Expense struct {
	ID       int64
	Name     string
	Amount   float64
	Category Category
	Date     time.Time
}

// Draft holds raw add-form input before validation.
type Draft struct {
	Name     string
	Amount   string
	Category Category
}

// NewDraft returns an empty draft with the default category selected.
func NewDraft() Draft {
	return Draft{Category: DefaultCategory}
}
