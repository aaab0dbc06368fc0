package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type SendStep string

const (
	SendStepIdle     SendStep = "idle"
	SendStepFetching SendStep = "fetching"
	SendStepFound    SendStep = "found"
	SendStepSending  SendStep = "sending"
	SendStepSuccess  SendStep = "success"
)

// Next returns the step that follows s. The sequence is linear and wraps
// from success back to idle.
func (s SendStep) Next() SendStep {
	switch s {
	case SendStepIdle:
		return SendStepFetching
	case SendStepFetching:
		return SendStepFound
	case SendStepFound:
		return SendStepSending
	case SendStepSending:
		return SendStepSuccess
	default:
		return SendStepIdle
	}
}

// Selection is the user's package choice. CustomAmount matters only when
// the selected package is the custom entry.
type Selection struct {
	PackageID    string
	CustomAmount string
}

type Quote struct {
	Coins int64
	Price decimal.Decimal
}

// FormState is a consistent snapshot of the send form.
type FormState struct {
	Username        string
	Validity        Validity
	Recipient       *Recipient
	Selection       Selection
	Quote           Quote
	Balance         Balance
	Step            SendStep
	StatusText      string
	DeliveryMessage string
	CanSend         bool
	UpdatedAt       time.Time
}
