// Package model defines domain types for fintrack transactions and settings.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type distinguishes money coming in from money going out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the persisted transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseType normalizes user or file input into a Type.
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Transaction is a single dated money movement.
type Transaction struct {
	ID          string          `json:"id"`
	Type        Type            `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewTransaction holds the caller-supplied fields of a transaction before
// the store assigns its ID and creation time.
type NewTransaction struct {
	Type        Type
	Category    string
	Amount      decimal.Decimal
	Date        Date
	Description string
}

// TransactionInput is raw form input as collected by a presentation layer.
// Nothing in it has been parsed or checked.
type TransactionInput struct {
	Type        string
	Category    string
	Amount      string
	Date        string
	Description string
}

// TransactionPatch is a partial update. Nil fields are left untouched.
type TransactionPatch struct {
	Type        *Type            `json:"type,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *Date            `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Type == nil && p.Category == nil && p.Amount == nil &&
		p.Date == nil && p.Description == nil
}

// Apply returns a copy of t with the patch fields merged in.
// ID and CreatedAt are never touched.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	return t
}

// DecodePatch parses a JSON patch, rejecting fields the patch does not know.
func DecodePatch(data []byte) (TransactionPatch, error) {
	var p TransactionPatch
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return TransactionPatch{}, fmt.Errorf("decoding patch: %w", err)
	}
	return p, nil
}

// Filter narrows a transaction list. Zero values match everything.
type Filter struct {
	Type     Type
	Category string
	Month    string // YYYY-MM
}
