package port

import (
	"context"
)

type LookupResult struct {
	Found     bool
	AvatarURL string
}

//go:generate mockgen -source=lookup.go -destination=mock/lookup.go -package=mock
type UserLookup interface {
	// Lookup checks that a normalized username exists. It may block for an
	// arbitrary time and must give up when ctx is done.
	Lookup(ctx context.Context, username string) (*LookupResult, error)
}
