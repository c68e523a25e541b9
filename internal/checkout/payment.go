package checkout

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// ErrPaymentDeclined signals the simulated payment did not go through.
// Nothing is persisted; the caller may simply retry.
var ErrPaymentDeclined = errors.New("payment declined")

// Decider decides the outcome of a payment attempt. Injectable so tests
// can force either branch.
type Decider interface {
	Approve() bool
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func() bool

func (f DeciderFunc) Approve() bool { return f() }

// RandomDecider approves with a fixed probability.
type RandomDecider struct {
	SuccessRate float64
	rng         *rand.Rand
}

// NewRandomDecider seeds a decider with the given success probability.
func NewRandomDecider(successRate float64) *RandomDecider {
	return &RandomDecider{
		SuccessRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (d *RandomDecider) Approve() bool {
	return d.rng.Float64() < d.SuccessRate
}

// Processor simulates a payment gateway: a fixed delay followed by an
// approve/decline decision.
type Processor struct {
	delay   time.Duration
	decider Decider
}

// NewProcessor builds a Processor. A nil decider defaults to a random
// one with a 95% success rate.
func NewProcessor(delay time.Duration, decider Decider) *Processor {
	if decider == nil {
		decider = NewRandomDecider(0.95)
	}
	return &Processor{delay: delay, decider: decider}
}

// Process waits out the simulated gateway delay, then returns
// ErrPaymentDeclined when the decider rejects the attempt. The delay is
// interruptible through the context.
func (p *Processor) Process(ctx context.Context) error {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if !p.decider.Approve() {
		return ErrPaymentDeclined
	}
	return nil
}
