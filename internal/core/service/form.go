package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/MikeRez0/coinsend/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	insufficientTitle   = "Error"
	insufficientMessage = "Insufficient credits."
	sentTitle           = "Coins Sent!"
)

type Options struct {
	InitialBalance int64
	Debounce       time.Duration
	SendCycleMin   time.Duration
	SendCycleMax   time.Duration
	SuccessWindow  time.Duration
}

// Form owns the whole send flow: the recipient verdict, the package
// selection, the balance and the send sequence. All mutations go through
// its mutex.
type Form struct {
	catalog  domain.Catalog
	resolver *Resolver
	notifier port.Notifier
	random   port.Random
	metrics  port.Metrics
	logger   *zap.Logger
	opts     Options

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	selection domain.Selection
	balance   domain.Balance
	step      domain.SendStep
	active    *sendAttempt
	receipts  []domain.Receipt
	updatedAt time.Time
}

// sendAttempt is set exactly while the step is not idle.
type sendAttempt struct {
	recipient       domain.Recipient
	quote           domain.Quote
	deliveryMessage string
	phases          [3]time.Duration
}

func NewForm(catalog domain.Catalog, lookup port.UserLookup, notifier port.Notifier,
	random port.Random, metrics port.Metrics, opts Options, logger *zap.Logger) (*Form, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if opts.InitialBalance < 0 {
		return nil, fmt.Errorf("negative initial balance %d", opts.InitialBalance)
	}
	if opts.SendCycleMin <= 0 || opts.SendCycleMax < opts.SendCycleMin {
		return nil, fmt.Errorf("bad send cycle range %s..%s", opts.SendCycleMin, opts.SendCycleMax)
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &Form{
		catalog:   catalog,
		resolver:  NewResolver(lookup, metrics, opts.Debounce, logger.Named("Resolver")),
		notifier:  notifier,
		random:    random,
		metrics:   metrics,
		logger:    logger,
		opts:      opts,
		ctx:       ctx,
		cancel:    cancel,
		balance:   domain.Balance{Current: opts.InitialBalance},
		step:      domain.SendStepIdle,
		updatedAt: time.Now(),
	}
	metrics.SetBalance(opts.InitialBalance)

	return f, nil
}

func (f *Form) Catalog() domain.Catalog {
	c := make(domain.Catalog, len(f.catalog))
	copy(c, f.catalog)
	return c
}

func (f *Form) SetUsername(ctx context.Context, raw string) (*domain.FormState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != domain.SendStepIdle {
		return nil, domain.ErrSendInProgress
	}
	f.resolver.SetInput(raw)
	f.touch()

	return f.snapshot(), nil
}

func (f *Form) SelectPackage(ctx context.Context, selection domain.Selection) (*domain.FormState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != domain.SendStepIdle {
		return nil, domain.ErrSendInProgress
	}
	if selection.PackageID != "" {
		if _, ok := f.catalog.Find(selection.PackageID); !ok {
			return nil, domain.ErrUnknownPackage
		}
	}
	f.selection = selection
	f.touch()

	return f.snapshot(), nil
}

// Submit starts the send sequence. The sequence runs in the background on
// the form's own context, so it outlives the caller's request.
func (f *Form) Submit(ctx context.Context) (*domain.FormState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != domain.SendStepIdle {
		return nil, domain.ErrSendInProgress
	}
	if f.ctx.Err() != nil {
		return nil, domain.ErrInternal
	}

	_, validity, recipient := f.resolver.State()
	quote := Price(f.catalog, f.selection)
	if !sendable(validity, recipient, f.selection, quote) {
		return nil, domain.ErrSendUnavailable
	}
	if err := f.balance.CanDebit(quote.Coins); err != nil {
		f.logger.Info("Send rejected",
			zap.Int64("coins", quote.Coins), zap.Int64("balance", f.balance.Current))
		f.notifier.Notify(ctx, domain.NotificationError, insufficientTitle, insufficientMessage)
		return nil, err
	}

	attempt := &sendAttempt{
		recipient:       *recipient,
		quote:           quote,
		deliveryMessage: f.deliveryMessage(),
		phases:          f.phaseDurations(),
	}
	f.active = attempt
	f.advance()

	f.logger.Info("Send started",
		zap.String("recipient", attempt.recipient.Username),
		zap.Int64("coins", quote.Coins),
		zap.Durations("phases", attempt.phases[:]))

	f.wg.Add(1)
	go f.run(attempt)

	return f.snapshot(), nil
}

func (f *Form) Snapshot(ctx context.Context) *domain.FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.snapshot()
}

func (f *Form) Receipts(ctx context.Context) []domain.Receipt {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]domain.Receipt, len(f.receipts))
	copy(result, f.receipts)
	return result
}

// Close abandons a running sequence and stops background work.
func (f *Form) Close() {
	f.cancel()
	f.resolver.Close()
	f.wg.Wait()
}

func (f *Form) run(attempt *sendAttempt) {
	defer f.wg.Done()

	// fetching -> found -> sending -> success
	for _, d := range attempt.phases {
		if !f.sleep(d) {
			f.logger.Debug("Send abandoned", zap.String("recipient", attempt.recipient.Username))
			return
		}
		f.mu.Lock()
		f.advance()
		f.mu.Unlock()
	}

	if !f.sleep(f.opts.SuccessWindow) {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.advance()
}

// advance moves the sequence one step forward. Must be called with mu held.
func (f *Form) advance() {
	f.step = f.step.Next()
	f.touch()

	switch f.step {
	case domain.SendStepSuccess:
		f.complete(f.active)
	case domain.SendStepIdle:
		f.active = nil
		f.selection = domain.Selection{}
		f.resolver.Reset()
	}
}

func (f *Form) complete(attempt *sendAttempt) {
	if err := f.balance.Debit(attempt.quote.Coins); err != nil {
		f.logger.Error("Debit after guard", zap.Error(err))
		return
	}

	receipt := domain.Receipt{
		ID:              uuid.New(),
		Recipient:       attempt.recipient,
		Coins:           attempt.quote.Coins,
		Price:           attempt.quote.Price,
		DeliveryMessage: attempt.deliveryMessage,
		SentAt:          time.Now(),
	}
	f.receipts = append(f.receipts, receipt)

	f.metrics.ObserveSend(attempt.quote.Coins)
	f.metrics.SetBalance(f.balance.Current)
	f.logger.Info("Coins sent",
		zap.Stringer("receipt", receipt.ID),
		zap.String("recipient", attempt.recipient.Username),
		zap.Int64("coins", attempt.quote.Coins),
		zap.Int64("balance", f.balance.Current))

	f.notifier.Notify(f.ctx, domain.NotificationInfo, sentTitle, sentText(attempt))
}

func (f *Form) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-f.ctx.Done():
		return false
	}
}

// phaseDurations draws the total cycle time and splits it 40/20/40.
func (f *Form) phaseDurations() [3]time.Duration {
	total := f.opts.SendCycleMin
	if span := f.opts.SendCycleMax - f.opts.SendCycleMin; span > 0 {
		total += time.Duration(f.random.IntN(int(span) + 1))
	}
	fetching := total * 4 / 10
	found := total * 2 / 10

	return [3]time.Duration{fetching, found, total - fetching - found}
}

func (f *Form) deliveryMessage() string {
	hours := f.random.IntN(3) + 1
	minutes := f.random.IntN(60)
	return domain.DeliveryMessage(hours, minutes)
}

func (f *Form) touch() {
	f.updatedAt = time.Now()
}

// snapshot must be called with mu held.
func (f *Form) snapshot() *domain.FormState {
	username, validity, recipient := f.resolver.State()
	quote := Price(f.catalog, f.selection)

	state := &domain.FormState{
		Username:  username,
		Validity:  validity,
		Recipient: recipient,
		Selection: f.selection,
		Quote:     quote,
		Balance:   f.balance,
		Step:      f.step,
		UpdatedAt: f.updatedAt,
	}

	if f.active != nil {
		state.StatusText = statusText(f.step, f.active)
		if f.step == domain.SendStepSuccess {
			state.DeliveryMessage = f.active.deliveryMessage
		}
	} else {
		state.CanSend = sendable(validity, recipient, f.selection, quote)
	}

	return state
}

func sendable(validity domain.Validity, recipient *domain.Recipient,
	selection domain.Selection, quote domain.Quote) bool {
	return validity.State == domain.ValidityValid &&
		recipient != nil &&
		selection.PackageID != "" &&
		quote.Coins > 0
}

func statusText(step domain.SendStep, attempt *sendAttempt) string {
	switch step {
	case domain.SendStepFetching:
		return "Fetching user account..."
	case domain.SendStepFound:
		return fmt.Sprintf("User account %s found.", attempt.recipient.Username)
	case domain.SendStepSending:
		return "Sending coins..."
	case domain.SendStepSuccess:
		return sentText(attempt)
	}
	return ""
}

func sentText(attempt *sendAttempt) string {
	return fmt.Sprintf("You have successfully sent %d coins to %s.",
		attempt.quote.Coins, attempt.recipient.Username)
}
