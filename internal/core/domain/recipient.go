package domain

import "strings"

// UsernameMarker prefixes every normalized username.
const UsernameMarker = "@"

type Recipient struct {
	Username  string
	AvatarURL string
}

// NormalizeUsername prepends the marker and collapses repeated leading markers.
func NormalizeUsername(raw string) string {
	return UsernameMarker + strings.TrimLeft(raw, UsernameMarker)
}

type ValidityState string

const (
	ValidityIdle    ValidityState = "idle"
	ValidityLoading ValidityState = "loading"
	ValidityValid   ValidityState = "valid"
	ValidityInvalid ValidityState = "invalid"
)

const ReasonNotFound = "not_found"

// Validity is the resolver's verdict on the current username. Reason is set
// only for ValidityInvalid.
type Validity struct {
	State  ValidityState
	Reason string
}

var (
	IdleValidity     = Validity{State: ValidityIdle}
	LoadingValidity  = Validity{State: ValidityLoading}
	ValidValidity    = Validity{State: ValidityValid}
	NotFoundValidity = Validity{State: ValidityInvalid, Reason: ReasonNotFound}
)
