package models

// RecordKind names one of the two financial record collections.
type RecordKind string

const (
	KindDebt    RecordKind = "debts"
	KindRevenue RecordKind = "revenues"
)

// ListMonth holds the type-specific leaf fields of a single debt or revenue
// entry for a given month. The set of keys differs between debts
// (debt, category, value, expirationDate) and revenues
// (typeRevenue, value, dateEntry); values submitted by clients are strings.
// Kept as a map so the same document shape serves both collections.
type ListMonth map[string]any

// Field returns the value for key if it is a string, or "" otherwise.
func (l ListMonth) Field(key string) string {
	s, _ := l[key].(string)
	return s
}

// RecordMonth is the per-month slice of a financial record.
type RecordMonth struct {
	Title     string    `json:"title"`
	ListMonth ListMonth `json:"listMonth"`
}

// RecordUser labels a financial record with a free-text owner title.
// Title is NOT a foreign key to a User: list filtering is substring-based,
// not a join.
type RecordUser struct {
	Title string      `json:"title"`
	Date  string      `json:"date,omitempty"`
	Month RecordMonth `json:"month"`
}

// FinancialRecord is the nested payload shape shared by debts and revenues:
// { user: { title, date?, month: { title, listMonth: {...} } } }.
type FinancialRecord struct {
	User RecordUser `json:"user"`
}

// StoredRecord is a FinancialRecord as persisted: the document plus its
// generated identifier. It marshals the way the store returns documents,
// with the identifier under "_id".
type StoredRecord struct {
	ID        string     `json:"_id"`
	Kind      RecordKind `json:"-"`
	User      RecordUser `json:"user"`
	CreatedAt int64      `json:"-"`
}
