package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/MikeRez0/coinsend/internal/core/port"
	"github.com/MikeRez0/coinsend/internal/core/port/mock"
	"github.com/MikeRez0/coinsend/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

const (
	testWindow = 30 * time.Millisecond
	waitFor    = 2 * time.Second
	tick       = 5 * time.Millisecond
)

func validityOf(r *service.Resolver) domain.ValidityState {
	_, v, _ := r.State()
	return v.State
}

func TestResolver_DebounceCoalescing(t *testing.T) {
	defer goleak.VerifyNone(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	lookup := mock.NewMockUserLookup(mockCtrl)
	lookup.EXPECT().Lookup(gomock.Any(), "@abc").
		Return(&port.LookupResult{Found: true, AvatarURL: "https://avatar/abc"}, nil).
		Times(1)

	r := service.NewResolver(lookup, nil, testWindow, zap.NewNop())
	defer r.Close()

	for _, in := range []string{"a", "ab", "abc"} {
		assert.Equal(t, "@"+in, r.SetInput(in))
		assert.Equal(t, domain.ValidityIdle, validityOf(r))
	}

	assert.Eventually(t, func() bool {
		return validityOf(r) == domain.ValidityValid
	}, waitFor, tick)

	username, validity, recipient := r.State()
	assert.Equal(t, "@abc", username)
	assert.Equal(t, domain.ValidValidity, validity)
	assert.Equal(t, &domain.Recipient{Username: "@abc", AvatarURL: "https://avatar/abc"}, recipient)

	// no late lookups for the intermediate values
	time.Sleep(3 * testWindow)
}

func TestResolver_Supersession(t *testing.T) {
	defer goleak.VerifyNone(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	release := make(chan struct{})
	slowDone := make(chan struct{})

	lookup := mock.NewMockUserLookup(mockCtrl)
	lookup.EXPECT().Lookup(gomock.Any(), "@slow").
		DoAndReturn(func(ctx context.Context, username string) (*port.LookupResult, error) {
			defer close(slowDone)
			<-release
			return &port.LookupResult{Found: true}, nil
		})
	lookup.EXPECT().Lookup(gomock.Any(), "@fast").
		Return(&port.LookupResult{Found: false}, nil)

	r := service.NewResolver(lookup, nil, testWindow, zap.NewNop())
	defer r.Close()

	r.SetInput("slow")
	assert.Eventually(t, func() bool {
		return validityOf(r) == domain.ValidityLoading
	}, waitFor, tick)

	r.SetInput("fast")
	assert.Eventually(t, func() bool {
		return validityOf(r) == domain.ValidityInvalid
	}, waitFor, tick)

	close(release)
	<-slowDone
	time.Sleep(testWindow)

	username, validity, recipient := r.State()
	assert.Equal(t, "@fast", username)
	assert.Equal(t, domain.NotFoundValidity, validity)
	assert.Nil(t, recipient)
}

func TestResolver_IdleThreshold(t *testing.T) {
	defer goleak.VerifyNone(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// any call fails the test
	lookup := mock.NewMockUserLookup(mockCtrl)

	r := service.NewResolver(lookup, nil, testWindow, zap.NewNop())
	defer r.Close()

	for _, in := range []string{"", "@", "@@"} {
		assert.Equal(t, "@", r.SetInput(in))
		time.Sleep(3 * testWindow)
		assert.Equal(t, domain.ValidityIdle, validityOf(r))
	}
}

func TestResolver_LookupError(t *testing.T) {
	defer goleak.VerifyNone(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	lookup := mock.NewMockUserLookup(mockCtrl)
	lookup.EXPECT().Lookup(gomock.Any(), "@broken").
		Return(nil, errors.New("connection refused"))

	r := service.NewResolver(lookup, nil, testWindow, zap.NewNop())
	defer r.Close()

	r.SetInput("broken")
	assert.Eventually(t, func() bool {
		return validityOf(r) == domain.ValidityInvalid
	}, waitFor, tick)

	_, validity, recipient := r.State()
	assert.Equal(t, domain.ReasonNotFound, validity.Reason)
	assert.Nil(t, recipient)
}

func TestResolver_EditClearsRecipient(t *testing.T) {
	defer goleak.VerifyNone(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	lookup := mock.NewMockUserLookup(mockCtrl)
	lookup.EXPECT().Lookup(gomock.Any(), "@creator").
		Return(&port.LookupResult{Found: true}, nil)

	r := service.NewResolver(lookup, nil, testWindow, zap.NewNop())
	defer r.Close()

	r.SetInput("creator")
	assert.Eventually(t, func() bool {
		return validityOf(r) == domain.ValidityValid
	}, waitFor, tick)

	r.SetInput("@")
	_, validity, recipient := r.State()
	assert.Equal(t, domain.IdleValidity, validity)
	assert.Nil(t, recipient)

	r.SetInput("creat")
	r.Reset()
	time.Sleep(3 * testWindow)
	username, validity, _ := r.State()
	assert.Equal(t, "@", username)
	assert.Equal(t, domain.IdleValidity, validity)
}

func TestResolver_CloseCancelsLookup(t *testing.T) {
	defer goleak.VerifyNone(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	started := make(chan struct{})
	lookup := mock.NewMockUserLookup(mockCtrl)
	lookup.EXPECT().Lookup(gomock.Any(), "@hang").
		DoAndReturn(func(ctx context.Context, username string) (*port.LookupResult, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	r := service.NewResolver(lookup, nil, testWindow, zap.NewNop())
	r.SetInput("hang")
	<-started
	r.Close()

	assert.Equal(t, "@hang", r.SetInput("hang"))
}

func TestResolver_SameInputKeepsVerdict(t *testing.T) {
	defer goleak.VerifyNone(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	lookup := mock.NewMockUserLookup(mockCtrl)
	lookup.EXPECT().Lookup(gomock.Any(), "@creator").
		Return(&port.LookupResult{Found: true, AvatarURL: "https://avatar/creator"}, nil).
		Times(1)

	r := service.NewResolver(lookup, nil, testWindow, zap.NewNop())
	defer r.Close()

	r.SetInput("creator")
	assert.Eventually(t, func() bool {
		return validityOf(r) == domain.ValidityValid
	}, waitFor, tick)

	for _, in := range []string{"@creator", "creator", "@@creator"} {
		assert.Equal(t, "@creator", r.SetInput(in))
		_, validity, recipient := r.State()
		assert.Equal(t, domain.ValidValidity, validity)
		assert.Equal(t, &domain.Recipient{Username: "@creator", AvatarURL: "https://avatar/creator"}, recipient)
	}

	time.Sleep(3 * testWindow)
	assert.Equal(t, domain.ValidityValid, validityOf(r))
}
