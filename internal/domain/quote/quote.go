package quote

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one priced entry of a quote. Items are immutable once created;
// the only operations on the set are append, duplicate, delete and clear.
type LineItem struct {
	Service     string          `json:"service"`
	Description string          `json:"description"`
	Details     string          `json:"details"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Header carries the client/consultant metadata printed on every export.
// Contact is optional; the names are only demanded at export time.
type Header struct {
	ClientName     string `json:"client_name"`
	ClientContact  string `json:"client_contact"`
	ConsultantName string `json:"consultant_name"`
	ValidityDays   int    `json:"validity_days"`
}

// Adjustments are the session-wide financial settings layered on top of the
// item subtotal. Expenses is an absolute amount, the other two percentages.
type Adjustments struct {
	Expenses      decimal.Decimal `json:"expenses"`
	TaxPercent    decimal.Decimal `json:"tax_percent"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// Quote is one session's full quoting state. It owns its items exclusively.
type Quote struct {
	Header      Header
	Items       []LineItem
	Adjustments Adjustments
	Notes       string
}

const (
	DefaultValidityDays = 7
	MaxNotesLen         = 1000
)

// New returns an empty quote with the default validity period.
func New() *Quote {
	return &Quote{Header: Header{ValidityDays: DefaultValidityDays}}
}

// AddItem appends item to the end of the quote. Insertion order drives the
// numbering in every later display and export.
func (q *Quote) AddItem(item LineItem) {
	q.Items = append(q.Items, item)
}

// DuplicateItem appends an independent copy of the item at idx. LineItem has
// value semantics, so the copy shares nothing mutable with the original.
// A stale index is a no-op.
func (q *Quote) DuplicateItem(idx int) {
	if idx < 0 || idx >= len(q.Items) {
		return
	}
	q.Items = append(q.Items, q.Items[idx])
}

// DeleteItem removes the item at idx, shifting later items down. A stale
// index is a no-op.
func (q *Quote) DeleteItem(idx int) {
	if idx < 0 || idx >= len(q.Items) {
		return
	}
	q.Items = append(q.Items[:idx], q.Items[idx+1:]...)
}

// ClearItems empties the quote unconditionally.
func (q *Quote) ClearItems() {
	q.Items = nil
}

// ItemsSubtotal is the sum of all item subtotals; zero for an empty quote.
func (q *Quote) ItemsSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range q.Items {
		sum = sum.Add(it.Subtotal)
	}
	return sum
}

// SetHeader replaces the header. The names may still be blank at this point;
// ExportReady demands them later.
func (q *Quote) SetHeader(h Header) error {
	if h.ValidityDays < 1 {
		return invalid("validity_days", "must be at least 1")
	}
	q.Header = h
	return nil
}

// SetAdjustments replaces the financial settings. Stored items are untouched;
// the next roll-up read picks the new values up.
func (q *Quote) SetAdjustments(a Adjustments) error {
	if a.Expenses.IsNegative() {
		return invalid("expenses", "must not be negative")
	}
	if a.TaxPercent.IsNegative() {
		return invalid("tax_percent", "must not be negative")
	}
	if a.MarginPercent.IsNegative() {
		return invalid("margin_percent", "must not be negative")
	}
	q.Adjustments = a
	return nil
}

// SetNotes replaces the general notes.
func (q *Quote) SetNotes(s string) error {
	if len([]rune(s)) > MaxNotesLen {
		return invalid("notes", "must be at most 1000 characters")
	}
	q.Notes = s
	return nil
}

// ValidityUntil resolves the validity period into an absolute date against
// now, so the date is always fresh at render time.
func (h Header) ValidityUntil(now time.Time) time.Time {
	days := h.ValidityDays
	if days < 1 {
		days = 1
	}
	return now.AddDate(0, 0, days)
}

// Export preconditions. Both block the export action until the user corrects
// the quote; neither is fatal.
var (
	ErrNoItems          = errors.New("quote has no items")
	ErrHeaderIncomplete = errors.New("client and consultant names are required")
)

// ExportReady reports whether the quote may be exported.
func (q *Quote) ExportReady() error {
	if len(q.Items) == 0 {
		return ErrNoItems
	}
	if strings.TrimSpace(q.Header.ClientName) == "" || strings.TrimSpace(q.Header.ConsultantName) == "" {
		return ErrHeaderIncomplete
	}
	return nil
}

// Summary is the cascading financial roll-up: taxes apply to items plus
// expenses, margin compounds on top of taxes.
type Summary struct {
	ItemsSubtotal decimal.Decimal `json:"items_subtotal"`
	Expenses      decimal.Decimal `json:"expenses"`
	TaxPercent    decimal.Decimal `json:"tax_percent"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	MarginAmount  decimal.Decimal `json:"margin_amount"`
	Total         decimal.Decimal `json:"total"`
}

var hundred = decimal.NewFromInt(100)

// Summarize computes the roll-up for the given inputs. All-zero input yields
// an all-zero summary.
func Summarize(itemsSubtotal, expenses, taxPct, marginPct decimal.Decimal) Summary {
	taxBase := itemsSubtotal.Add(expenses)
	tax := taxBase.Mul(taxPct).Div(hundred)
	marginBase := taxBase.Add(tax)
	margin := marginBase.Mul(marginPct).Div(hundred)
	return Summary{
		ItemsSubtotal: itemsSubtotal,
		Expenses:      expenses,
		TaxPercent:    taxPct,
		TaxAmount:     tax,
		MarginPercent: marginPct,
		MarginAmount:  margin,
		Total:         marginBase.Add(margin),
	}
}

// Summary recomputes the roll-up over the quote's current items and
// adjustments.
func (q *Quote) Summary() Summary {
	a := q.Adjustments
	return Summarize(q.ItemsSubtotal(), a.Expenses, a.TaxPercent, a.MarginPercent)
}
