package extension

import (
	"context"
	"errors"
	"log"
	"time"
)

// Outcome is the result of one strategy attempt.
type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeRejected  Outcome = "rejected"
	OutcomeFailed    Outcome = "failed"
)

// Attempt describes one strategy attempt for the download ledger.
type Attempt struct {
	Owner    string
	Strategy string
	Outcome  Outcome
	Detail   string
	Bytes    int64
}

// Recorder persists attempts. Recording errors are logged and ignored.
type Recorder interface {
	Record(ctx context.Context, a Attempt) error
}

// Orchestrator tries an ordered list of strategies to get the archive to
// the user. Failures never reach the caller: a run always ends with the
// status back at Idle.
type Orchestrator struct {
	source     Source
	strategies []Strategy
	recorder   Recorder
}

// NewOrchestrator creates an orchestrator for src. recorder may be nil.
func NewOrchestrator(src Source, recorder Recorder, strategies ...Strategy) *Orchestrator {
	return &Orchestrator{
		source:     src,
		strategies: strategies,
		recorder:   recorder,
	}
}

// Source returns the archive this orchestrator delivers.
func (o *Orchestrator) Source() Source { return o.source }

// Run performs one download attempt on behalf of owner. It returns false,
// doing nothing, if st already has an attempt in progress. Otherwise dispatch
// is called once with the first successful delivery, and st is reset to Idle
// afterwards, or after the delivery's Linger delay.
func (o *Orchestrator) Run(ctx context.Context, owner string, st *Status, dispatch func(*Delivery)) bool {
	if !st.begin() {
		return false
	}

	var linger time.Duration
	defer func() {
		if linger > 0 {
			st.finishAfter(linger)
		} else {
			st.finish()
		}
	}()

	d := o.deliver(ctx, owner)
	if d == nil {
		return true
	}
	linger = d.Linger
	dispatch(d)
	return true
}

func (o *Orchestrator) deliver(ctx context.Context, owner string) *Delivery {
	for _, s := range o.strategies {
		d, err := s.Attempt(ctx, o.source)
		if err != nil {
			outcome := OutcomeFailed
			if errors.Is(err, ErrRejected) {
				outcome = OutcomeRejected
			}
			log.Printf("extension: %s strategy: %v", s.Name(), err)
			o.record(ctx, Attempt{
				Owner:    owner,
				Strategy: s.Name(),
				Outcome:  outcome,
				Detail:   err.Error(),
			})
			continue
		}

		d.Strategy = s.Name()
		o.record(ctx, Attempt{
			Owner:    owner,
			Strategy: s.Name(),
			Outcome:  OutcomeDelivered,
			Detail:   string(d.Kind),
			Bytes:    int64(len(d.Payload)),
		})
		return d
	}

	log.Printf("extension: all %d download strategies exhausted", len(o.strategies))
	return nil
}

func (o *Orchestrator) record(ctx context.Context, a Attempt) {
	if o.recorder == nil {
		return
	}
	// The request context may already be cancelled when the visitor left.
	if err := o.recorder.Record(context.WithoutCancel(ctx), a); err != nil {
		log.Printf("extension: recording attempt: %v", err)
	}
}
