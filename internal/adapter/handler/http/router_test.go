package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/MikeRez0/coinsend/internal/core/port"
	"github.com/MikeRez0/coinsend/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type routerMocks struct {
	service  *mock.MockFormService
	lookup   *mock.MockUserLookup
	notifier *mock.MockNotificationReader
}

func newTestRouter(t *testing.T, ctrl *gomock.Controller) (*Router, routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	m := routerMocks{
		service:  mock.NewMockFormService(ctrl),
		lookup:   mock.NewMockUserLookup(ctrl),
		notifier: mock.NewMockNotificationReader(ctrl),
	}

	fh, err := NewFormHandler(m.service, logger)
	require.NoError(t, err)
	uh, err := NewUserHandler(m.lookup, logger)
	require.NoError(t, err)
	nh, err := NewNotificationHandler(m.notifier, logger)
	require.NoError(t, err)

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r, err := NewRouter(nil, fh, uh, nh, metrics, logger)
	require.NoError(t, err)
	return r, m
}

func serve(r *Router, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func idleState() *domain.FormState {
	return &domain.FormState{
		Username: "@",
		Validity: domain.IdleValidity,
		Quote:    domain.Quote{Price: decimal.Zero},
		Balance:  domain.Balance{Current: 1000},
		Step:     domain.SendStepIdle,
	}
}

func TestRouter_ListPackages(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	r, m := newTestRouter(t, mockCtrl)
	m.service.EXPECT().Catalog().Return(domain.DefaultCatalog())

	rec := serve(r, http.MethodGet, "/api/packages", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []struct {
		ID             string          `json:"id"`
		Coins          *int64          `json:"coins"`
		Price          json.RawMessage `json:"price"`
		PriceFormatted string          `json:"priceFormatted"`
		IsCustom       bool            `json:"isCustom"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 8)
	assert.Equal(t, "700", got[2].ID)
	assert.Equal(t, "7,59 €", got[2].PriceFormatted)
	assert.True(t, got[7].IsCustom)
	assert.Nil(t, got[7].Coins)
	assert.Equal(t, "null", string(got[7].Price))
}

func TestRouter_Form(t *testing.T) {
	type formTest struct {
		name      string
		method    string
		path      string
		body      string
		mock      func(m routerMocks)
		expStatus int
		expBody   string
	}

	sending := idleState()
	sending.Step = domain.SendStepFetching
	sending.StatusText = "Fetching user account..."

	resolved := idleState()
	resolved.Username = "@creator"
	resolved.Validity = domain.ValidValidity
	resolved.Recipient = &domain.Recipient{Username: "@creator", AvatarURL: "https://avatar"}

	tests := []formTest{
		{
			name:   "snapshot",
			method: http.MethodGet,
			path:   "/api/form",
			mock: func(m routerMocks) {
				m.service.EXPECT().Snapshot(gomock.Any()).Return(idleState())
			},
			expStatus: http.StatusOK,
			expBody:   `"status":"idle"`,
		},
		{
			name:   "set username",
			method: http.MethodPut,
			path:   "/api/form/username",
			body:   `{"username":"creator"}`,
			mock: func(m routerMocks) {
				m.service.EXPECT().SetUsername(gomock.Any(), "creator").Return(resolved, nil)
			},
			expStatus: http.StatusOK,
			expBody:   `"recipient":{"username":"@creator","avatarUrl":"https://avatar"}`,
		},
		{
			name:      "set username bad body",
			method:    http.MethodPut,
			path:      "/api/form/username",
			body:      `{"username":`,
			mock:      func(m routerMocks) {},
			expStatus: http.StatusBadRequest,
			expBody:   domain.ErrBadRequest.Error(),
		},
		{
			name:   "select unknown package",
			method: http.MethodPut,
			path:   "/api/form/package",
			body:   `{"packageId":"42"}`,
			mock: func(m routerMocks) {
				m.service.EXPECT().SelectPackage(gomock.Any(), domain.Selection{PackageID: "42"}).
					Return(nil, domain.ErrUnknownPackage)
			},
			expStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "select custom package",
			method: http.MethodPut,
			path:   "/api/form/package",
			body:   `{"packageId":"custom","customAmount":"1000"}`,
			mock: func(m routerMocks) {
				s := idleState()
				s.Selection = domain.Selection{PackageID: "custom", CustomAmount: "1000"}
				s.Quote = domain.Quote{Coins: 1000, Price: decimal.MustParse("11.00")}
				m.service.EXPECT().
					SelectPackage(gomock.Any(), domain.Selection{PackageID: "custom", CustomAmount: "1000"}).
					Return(s, nil)
			},
			expStatus: http.StatusOK,
			expBody:   `"totalPriceFormatted":"11,00 €"`,
		},
		{
			name:   "send started",
			method: http.MethodPost,
			path:   "/api/form/send",
			mock: func(m routerMocks) {
				m.service.EXPECT().Submit(gomock.Any()).Return(sending, nil)
			},
			expStatus: http.StatusAccepted,
			expBody:   `"step":"fetching"`,
		},
		{
			name:   "send insufficient balance",
			method: http.MethodPost,
			path:   "/api/form/send",
			mock: func(m routerMocks) {
				m.service.EXPECT().Submit(gomock.Any()).Return(nil, domain.ErrInsufficientBalance)
			},
			expStatus: http.StatusPaymentRequired,
			expBody:   domain.ErrInsufficientBalance.Error(),
		},
		{
			name:   "send in progress",
			method: http.MethodPost,
			path:   "/api/form/send",
			mock: func(m routerMocks) {
				m.service.EXPECT().Submit(gomock.Any()).Return(nil, domain.ErrSendInProgress)
			},
			expStatus: http.StatusConflict,
		},
		{
			name:   "send unavailable",
			method: http.MethodPost,
			path:   "/api/form/send",
			mock: func(m routerMocks) {
				m.service.EXPECT().Submit(gomock.Any()).Return(nil, domain.ErrSendUnavailable)
			},
			expStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "unexpected error hidden",
			method: http.MethodPost,
			path:   "/api/form/send",
			mock: func(m routerMocks) {
				m.service.EXPECT().Submit(gomock.Any()).Return(nil, errors.New("disk on fire"))
			},
			expStatus: http.StatusInternalServerError,
			expBody:   domain.ErrInternal.Error(),
		},
		{
			name:   "receipts",
			method: http.MethodGet,
			path:   "/api/receipts",
			mock: func(m routerMocks) {
				m.service.EXPECT().Receipts(gomock.Any()).Return([]domain.Receipt{{
					ID:        uuid.MustParse("6f1c27a4-5d2b-4c84-9d59-0b1a3f3c2e11"),
					Recipient: domain.Recipient{Username: "@creator"},
					Coins:     700,
					Price:     decimal.MustParse("7.59"),
				}})
			},
			expStatus: http.StatusOK,
			expBody:   `"id":"6f1c27a4-5d2b-4c84-9d59-0b1a3f3c2e11","recipient":"@creator","coins":700`,
		},
		{
			name:   "lookup user",
			method: http.MethodGet,
			path:   "/api/users/creator",
			mock: func(m routerMocks) {
				m.lookup.EXPECT().Lookup(gomock.Any(), "@creator").
					Return(&port.LookupResult{Found: true, AvatarURL: "https://avatar"}, nil)
			},
			expStatus: http.StatusOK,
			expBody:   `{"found":true,"avatarUrl":"https://avatar"}`,
		},
		{
			name:   "notifications",
			method: http.MethodGet,
			path:   "/api/notifications",
			mock: func(m routerMocks) {
				m.notifier.EXPECT().Recent().Return([]domain.Notification{{
					Kind:    domain.NotificationError,
					Title:   "Error",
					Message: "Insufficient credits.",
				}})
			},
			expStatus: http.StatusOK,
			expBody:   `"kind":"error","title":"Error","message":"Insufficient credits."`,
		},
		{
			name:      "metrics",
			method:    http.MethodGet,
			path:      "/metrics",
			mock:      func(m routerMocks) {},
			expStatus: http.StatusOK,
			expBody:   "ok",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			r, m := newTestRouter(t, mockCtrl)
			test.mock(m)

			rec := serve(r, test.method, test.path, test.body)

			assert.Equal(t, test.expStatus, rec.Code)
			if test.expBody != "" {
				assert.Contains(t, rec.Body.String(), test.expBody)
			}
		})
	}
}

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0,00 €"},
		{"0.33", "0,33 €"},
		{"189.35", "189,35 €"},
		{"1234.5", "1.234,50 €"},
		{"1234567.891", "1.234.567,89 €"},
		{"-7.59", "-7,59 €"},
		{"0.005", "0,01 €"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, formatEUR(decimal.MustParse(test.in)))
	}
}
