package notify

import (
	"context"
	"fmt"
	"testing"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFeed_KeepsLatest(t *testing.T) {
	f := NewFeed(3, zap.NewNop())
	for i := range 5 {
		f.Notify(context.Background(), domain.NotificationInfo, "t", fmt.Sprint(i))
	}

	recent := f.Recent()
	assert.Len(t, recent, 3)
	assert.Equal(t, "2", recent[0].Message)
	assert.Equal(t, "4", recent[2].Message)
	assert.NotEqual(t, recent[0].ID, recent[1].ID)

	recent[0].Message = "changed"
	assert.Equal(t, "2", f.Recent()[0].Message)
}

func TestFeed_DefaultLimit(t *testing.T) {
	f := NewFeed(0, zap.NewNop())
	f.Notify(context.Background(), domain.NotificationError, "Error", "Insufficient credits.")

	recent := f.Recent()
	assert.Len(t, recent, 1)
	assert.Equal(t, domain.NotificationError, recent[0].Kind)
	assert.Equal(t, DefaultFeedSize, f.limit)
}
