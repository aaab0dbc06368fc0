package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type Receipt struct {
	ID              uuid.UUID
	Recipient       Recipient
	Coins           int64
	Price           decimal.Decimal
	DeliveryMessage string
	SentAt          time.Time
}

// DeliveryMessage renders the estimated delivery note shown after a send.
func DeliveryMessage(hours, minutes int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Note: The coins will be sent to the user within %d hour", hours)
	if hours > 1 {
		b.WriteString("s")
	}
	if minutes > 0 {
		fmt.Fprintf(&b, " and %d minute", minutes)
		if minutes > 1 {
			b.WriteString("s")
		}
	}
	b.WriteString(".")
	return b.String()
}
