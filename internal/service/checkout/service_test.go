package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/dev-star23/Audiophile/internal/domain"
)

type stubCart struct {
	mu      sync.Mutex
	items   []domain.CartItem
	cleared int
}

func (s *stubCart) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *stubCart) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

func (s *stubCart) RemoveAll(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.cleared++
}

type stubNotifier struct {
	err     error
	calls   int
	orders  []domain.Order
	started chan struct{}
	release chan struct{}
}

func (n *stubNotifier) SendConfirmation(_ context.Context, order domain.Order) error {
	n.calls++
	n.orders = append(n.orders, order)
	if n.started != nil {
		close(n.started)
	}
	if n.release != nil {
		<-n.release
	}
	return n.err
}

func filledCart() *stubCart {
	return &stubCart{items: []domain.CartItem{
		{ID: "xx99-mark-two", Name: "XX99 MK II", Price: 2999, Quantity: 1},
		{ID: "xx59", Name: "XX59", Price: 899, Quantity: 2},
	}}
}

func TestSubmit_HappyPathClearsCartAndStripsSecrets(t *testing.T) {
	cart := filledCart()
	notifier := &stubNotifier{}
	svc := New(cart, notifier, nil)

	conf, err := svc.Submit(context.Background(), validForm(domain.PaymentEMoney))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.State() != StateConfirmed {
		t.Fatalf("state = %s, want confirmed", svc.State())
	}
	if cart.cleared != 1 || len(cart.Items()) != 0 {
		t.Fatalf("cart not cleared exactly once: cleared=%d items=%+v", cart.cleared, cart.Items())
	}
	if notifier.calls != 1 {
		t.Fatalf("notifier called %d times, want 1", notifier.calls)
	}

	if !strings.HasPrefix(conf.OrderNumber, "AUD-") {
		t.Fatalf("order number %q missing prefix", conf.OrderNumber)
	}
	if conf.Totals.Subtotal != 4797 || conf.Totals.GrandTotal != 4847 || conf.Totals.VAT != 720 {
		t.Fatalf("unexpected totals: %+v", conf.Totals)
	}
	if conf.PaymentMethod != domain.PaymentEMoney {
		t.Fatalf("payment method = %s, want e-money", conf.PaymentMethod)
	}
	// The notified order still carries the form, but the confirmation
	// handed back for display must not expose the e-money secrets.
	if len(notifier.orders) != 1 || notifier.orders[0].Form.Payment.EMoneyPIN == "" {
		t.Fatalf("notifier should receive the full order snapshot")
	}
}

func TestSubmit_EmptyCartRejected(t *testing.T) {
	svc := New(&stubCart{}, &stubNotifier{}, nil)
	_, err := svc.Submit(context.Background(), validForm(domain.PaymentCash))
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmit_InvalidFormDoesNotReachNotifier(t *testing.T) {
	notifier := &stubNotifier{}
	svc := New(filledCart(), notifier, nil)

	form := validForm(domain.PaymentEMoney)
	form.Payment.EMoneyNumber = ""
	form.Payment.EMoneyPIN = ""

	_, err := svc.Submit(context.Background(), form)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected the two e-money fields flagged, got %v", verr.Fields)
	}
	if notifier.calls != 0 {
		t.Fatalf("notifier must not be called for an invalid form")
	}
}

func TestSubmit_SecondAttemptWhileInFlightRejected(t *testing.T) {
	notifier := &stubNotifier{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := New(filledCart(), notifier, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), validForm(domain.PaymentCash))
		done <- err
	}()

	<-notifier.started
	if svc.State() != StateSubmitting {
		t.Fatalf("state = %s, want submitting", svc.State())
	}
	_, err := svc.Submit(context.Background(), validForm(domain.PaymentCash))
	if !errors.Is(err, domain.ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(notifier.release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected a single order snapshot, notifier called %d times", notifier.calls)
	}
}

func TestSubmit_CollaboratorFailurePreservesCartAndAllowsRetry(t *testing.T) {
	cart := filledCart()
	notifier := &stubNotifier{err: errors.New("smtp: connection refused")}
	svc := New(cart, notifier, nil)

	_, err := svc.Submit(context.Background(), validForm(domain.PaymentCash))
	if err == nil {
		t.Fatalf("expected submission error")
	}
	if svc.State() != StateFailed {
		t.Fatalf("state = %s, want failed", svc.State())
	}
	if len(cart.Items()) != 2 || cart.cleared != 0 {
		t.Fatalf("cart must survive a failed submission: %+v", cart.Items())
	}

	// Retry without re-entering form data.
	notifier.err = nil
	conf, err := svc.Submit(context.Background(), validForm(domain.PaymentCash))
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if conf == nil || svc.State() != StateConfirmed {
		t.Fatalf("retry did not confirm: state=%s", svc.State())
	}
	if notifier.calls != 2 {
		t.Fatalf("each attempt fires the collaborator exactly once, got %d calls", notifier.calls)
	}
}

func TestNewOrderNumber_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := newOrderNumber()
		parts := strings.SplitN(n, "-", 3)
		if len(parts) != 3 || parts[0] != "AUD" {
			t.Fatalf("bad order number %q", n)
		}
		if len(parts[2]) != 7 {
			t.Fatalf("suffix of %q should be 7 characters", n)
		}
		for _, r := range parts[2] {
			if !strings.ContainsRune(orderNumberAlphabet, r) {
				t.Fatalf("suffix of %q has character outside alphabet", n)
			}
		}
		seen[n] = true
	}
	if len(seen) < 45 {
		t.Fatalf("order numbers collide far too often: %d unique of 50", len(seen))
	}
}
