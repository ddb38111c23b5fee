package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// ChannelBankTransfer marks a contribution received by domestic wire.
	ChannelBankTransfer Channel = "bank_transfer"
	// ChannelPayPal marks a contribution received through PayPal.
	ChannelPayPal Channel = "paypal"
)

// Sentinel classification values. A sentinel is a normal campaign outcome,
// not an error: unmatched labels still count toward week totals (as invalid
// votes) and out-of-window dates are excluded by the aggregator.
const (
	VoteInvalid    = "INVALID"
	VoteOutOfRange = "OUT_OF_RANGE"

	// WeekOutOfRange is the ordinal stamped on contributions whose date
	// falls outside every configured week window.
	WeekOutOfRange = 0
)

type (
	Channel string

	Money struct {
		// Units is the amount in whole currency units; the campaign
		// currency has minor unit 1, so no cents are tracked.
		Units int64
	}

	// Contribution is the transactional entity. WeekOrdinal and VoteOption
	// are pure functions of (Date, PayerLabel) and the campaign
	// configuration; they are stored as a cache and recomputed on every
	// create or edit, never hand-set.
	Contribution struct {
		ID          string
		Channel     Channel
		Date        string // YYYY-MM-DD
		Time        string // HH:MM:SS
		PayerLabel  string
		Amount      Money
		WeekOrdinal int
		VoteOption  string
	}
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidTime    = errors.New("invalid time")
	ErrInvalidChannel = errors.New("invalid channel")
	ErrEmptyLabel     = errors.New("empty payer label")
)

func (ch Channel) Valid() bool {
	return ch == ChannelBankTransfer || ch == ChannelPayPal
}

// ParseChannel maps a wire/form value to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch Channel(strings.TrimSpace(strings.ToLower(s))) {
	case ChannelBankTransfer:
		return ChannelBankTransfer, nil
	case ChannelPayPal:
		return ChannelPayPal, nil
	}
	return "", ErrInvalidChannel
}

func (m Money) Validate() error {
	if m.Units < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c Contribution) Validate() error {
	if !c.Channel.Valid() {
		return ErrInvalidChannel
	}
	if _, err := time.Parse("2006-01-02", c.Date); err != nil {
		return ErrInvalidDate
	}
	if _, err := time.Parse("15:04:05", c.Time); err != nil {
		return ErrInvalidTime
	}
	if len(strings.TrimSpace(c.PayerLabel)) == 0 {
		return ErrEmptyLabel
	}
	if len(c.PayerLabel) > 200 {
		return errors.New("payer label too long (max 200 characters)")
	}
	return c.Amount.Validate()
}
