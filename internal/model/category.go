package model

import "strings"

// CategoryType is the cash-flow direction of a category group.
type CategoryType string

const (
	CategoryTypeIncome   CategoryType = "income"
	CategoryTypeExpense  CategoryType = "expense"
	CategoryTypeTransfer CategoryType = "transfer"
)

// SystemCategoryCCPayment is the provider system category that marks a
// credit-card bill payment transfer.
const SystemCategoryCCPayment = "credit_card_payment"

// Category is one transaction category from the provider.
type Category struct {
	ID             string
	Name           string
	GroupName      string
	Type           CategoryType
	SystemCategory string
}

// IsCCPayment reports whether this category denotes a credit-card bill payment.
func (c Category) IsCCPayment() bool {
	return c.SystemCategory == SystemCategoryCCPayment
}

// CategorySet is the category lookup keyed by category ID.
type CategorySet map[string]Category

// ByName finds a category by name with a case-insensitive exact match.
func (s CategorySet) ByName(name string) (Category, bool) {
	for _, c := range s {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// CCPayment returns the category flagged as the credit-card payment
// transfer, if the set has one.
func (s CategorySet) CCPayment() (Category, bool) {
	for _, c := range s {
		if c.IsCCPayment() {
			return c, true
		}
	}
	return Category{}, false
}

// ByType returns all categories of the given type.
func (s CategorySet) ByType(t CategoryType) []Category {
	var result []Category
	for _, c := range s {
		if c.Type == t {
			result = append(result, c)
		}
	}
	return result
}
