package checkout

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/dev-star23/Audiophile/internal/domain"
	"github.com/google/uuid"
)

// State is the submission pipeline state. Idle -> Submitting -> Confirmed on
// success, Submitting -> Failed on a collaborator failure; both end states
// allow a fresh submission.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// cartStore is the slice of the cart store the pipeline needs.
type cartStore interface {
	Items() []domain.CartItem
	TotalPrice() int64
	RemoveAll(ctx context.Context)
}

// Notifier dispatches the order confirmation to the external collaborator.
type Notifier interface {
	SendConfirmation(ctx context.Context, order domain.Order) error
}

// Service orchestrates order submission: validation, price snapshot,
// notification dispatch, cart clearing, confirmation. A single in-flight
// guard rejects concurrent submissions; there are no automatic retries.
type Service struct {
	cart     cartStore
	notifier Notifier
	logger   *log.Logger

	mu       sync.Mutex
	inFlight bool
	state    State
}

func New(cart cartStore, notifier Notifier, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		cart:     cart,
		notifier: notifier,
		logger:   logger,
		state:    StateIdle,
	}
}

// State returns the pipeline's current state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit runs one submission attempt. It returns ErrSubmissionInFlight while
// a previous attempt is outstanding, ErrEmptyCart for an empty cart, a
// *ValidationError when the form fails validation, and a wrapped error when
// the notification collaborator fails. On success the cart is cleared and
// the confirmation, with payment secrets stripped, is returned.
func (s *Service) Submit(ctx context.Context, form domain.CheckoutForm) (*domain.Confirmation, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, domain.ErrSubmissionInFlight
	}

	items := s.cart.Items()
	if len(items) == 0 {
		s.mu.Unlock()
		return nil, domain.ErrEmptyCart
	}
	if fields := Validate(form); len(fields) > 0 {
		s.mu.Unlock()
		return nil, &ValidationError{Fields: fields}
	}

	order := domain.Order{
		ID:        uuid.NewString(),
		Number:    newOrderNumber(),
		Items:     items,
		Totals:    ComputeTotals(s.cart.TotalPrice()),
		Form:      form,
		CreatedAt: time.Now().UTC(),
	}
	s.inFlight = true
	s.state = StateSubmitting
	s.mu.Unlock()

	err := s.notifier.SendConfirmation(ctx, order)

	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		s.state = StateFailed
		s.mu.Unlock()
		s.logger.Printf("checkout: submission %s failed: %v", order.ID, err)
		return nil, fmt.Errorf("send confirmation: %w", err)
	}
	s.state = StateConfirmed
	s.mu.Unlock()

	s.cart.RemoveAll(ctx)
	s.logger.Printf("checkout: order %s confirmed (%s)", order.Number, order.ID)

	confirmation := order.Confirmation()
	return &confirmation, nil
}

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newOrderNumber builds a user-facing reference: prefix, millisecond
// timestamp, and a short random suffix. Unique with overwhelming probability
// but not guaranteed; it is not a persistence key.
func newOrderNumber() string {
	suffix := make([]byte, 7)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the timestamp alone rather than panic.
		return fmt.Sprintf("AUD-%d", time.Now().UnixMilli())
	}
	for i, b := range suffix {
		suffix[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}
	return fmt.Sprintf("AUD-%d-%s", time.Now().UnixMilli(), suffix)
}
