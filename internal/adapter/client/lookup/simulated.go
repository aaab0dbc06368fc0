package lookup

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/MikeRez0/coinsend/internal/core/port"
	"go.uber.org/zap"
)

// Simulated pretends to query a user directory: after a random delay any
// handle longer than two characters exists.
type Simulated struct {
	random   port.Random
	delayMin time.Duration
	delayMax time.Duration
	logger   *zap.Logger
}

func NewSimulated(random port.Random, delayMin, delayMax time.Duration, log *zap.Logger) *Simulated {
	return &Simulated{
		random:   random,
		delayMin: delayMin,
		delayMax: delayMax,
		logger:   log,
	}
}

func (s *Simulated) Lookup(ctx context.Context, username string) (*port.LookupResult, error) {
	delay := s.delayMin
	if span := s.delayMax - s.delayMin; span > 0 {
		delay += time.Duration(s.random.IntN(int(span) + 1))
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if !strings.HasPrefix(username, domain.UsernameMarker) || len(username) <= 2 {
		s.logger.Debug("Simulated user not found", zap.String("username", username))
		return &port.LookupResult{Found: false}, nil
	}

	return &port.LookupResult{Found: true, AvatarURL: AvatarURL(username)}, nil
}

// AvatarURL is a stable placeholder picture for a username.
func AvatarURL(username string) string {
	return "https://picsum.photos/seed/" + url.PathEscape(username) + "/150/150"
}
