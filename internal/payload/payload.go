// Package payload builds placeholder mint/swap/stake records. Records are
// shaped locally and never transmitted anywhere.
package payload

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"auroraledger/internal/network"
)

// Op enumerates the supported placeholder operations.
type Op string

const (
	OpMint  Op = "mint"
	OpSwap  Op = "swap"
	OpStake Op = "stake"
)

// Ops lists every supported operation in display order.
var Ops = []Op{OpMint, OpSwap, OpStake}

var (
	// ErrInvalidOperation reports an operation outside the fixed set.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidAmount reports an amount that does not parse as a decimal.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ParseOp maps a string onto the fixed operation set.
func ParseOp(s string) (Op, error) {
	op := Op(strings.ToLower(s))
	switch op {
	case OpMint, OpSwap, OpStake:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q (want mint, swap, or stake)", ErrInvalidOperation, s)
}

// Record is one locally constructed payload. Target is deliberately
// free-form and amount deliberately unchecked for sign or range; shaping
// rules beyond these fields are future schema work.
type Record struct {
	ID        string          `json:"id"`
	Op        Op              `json:"op"`
	Target    string          `json:"target"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	Network   string          `json:"network,omitempty"`
	RPC       string          `json:"rpc,omitempty"`
	Plan      string          `json:"plan,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Params carries the raw user-supplied inputs for one record.
type Params struct {
	Op      string
	Target  string
	Amount  string
	Note    string
	Network string
	Plan    string
}

// Builder assembles records, resolving optional network profiles through a
// catalog.
type Builder struct {
	catalog *network.Catalog
	log     zerolog.Logger
}

// NewBuilder wraps a catalog and logger. The catalog may be nil when no
// network tagging is requested.
func NewBuilder(catalog *network.Catalog, log zerolog.Logger) *Builder {
	return &Builder{catalog: catalog, log: log}
}

// Build validates params and returns a fully populated record. It performs
// no side effects.
func (b *Builder) Build(p Params) (Record, error) {
	op, err := ParseOp(p.Op)
	if err != nil {
		return Record{}, err
	}
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidAmount, p.Amount)
	}

	now := time.Now().UTC()
	rec := Record{
		ID:        NewID(now),
		Op:        op,
		Target:    p.Target,
		Amount:    amount,
		Note:      p.Note,
		Plan:      p.Plan,
		CreatedAt: now,
	}

	if p.Network != "" {
		if b.catalog == nil {
			return Record{}, fmt.Errorf("%w: %q (no catalog loaded)", network.ErrUnknownNetwork, p.Network)
		}
		profile, err := b.catalog.Lookup(p.Network)
		if err != nil {
			return Record{}, err
		}
		rec.Network = profile.Name
		rec.RPC = profile.RPC
	}

	b.log.Debug().Str("id", rec.ID).Str("op", string(rec.Op)).Msg("payload built")
	return rec, nil
}

// NewID returns a timestamp-prefixed id with a random suffix. Ids are unique
// by construction and sort in creation order.
func NewID(now time.Time) string {
	return fmt.Sprintf("%s-%s", now.Format("20060102T150405"), uuid.NewString()[:8])
}
