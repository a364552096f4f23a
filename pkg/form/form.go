package form

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/statemachine"
	"github.com/dmitrymomot/formstate/pkg/storage"
)

// Values maps field names to their current values.
type Values map[string]any

// Touched records which fields have been blurred or explicitly set.
type Touched map[string]bool

// Errors maps field names to display messages. A missing key means the field is valid.
type Errors map[string]string

// InputKind describes the widget a change event came from.
type InputKind string

const (
	InputText     InputKind = "text"
	InputTextarea InputKind = "textarea"
	InputSelect   InputKind = "select"
	InputRadio    InputKind = "radio"
	InputCheckbox InputKind = "checkbox"
)

// Validator maps a values snapshot to field errors. It must depend on values only.
type Validator func(ctx context.Context, values Values) Errors

// SubmitFunc performs the actual submission. It may block for as long as it needs.
type SubmitFunc func(ctx context.Context, values Values) error

// Params is everything a controller needs at construction.
type Params struct {
	// Name identifies the form and is the persistence key.
	Name string
	// Initial is deep-copied and restored by Reset.
	Initial Values
	// Validate runs after every mutation. Required.
	Validate Validator
	// Submit is invoked by Submit when validation passes. Nil means "nothing to do".
	Submit SubmitFunc
	// Persist writes the full state to the store after every change.
	Persist bool
}

// State is a point-in-time copy of a controller's state.
type State struct {
	Name         string  `json:"name" yaml:"name"`
	InitialState Values  `json:"initialState" yaml:"initialState"`
	Values       Values  `json:"values" yaml:"values"`
	Touched      Touched `json:"touched" yaml:"touched"`
	Errors       Errors  `json:"errors" yaml:"errors"`
	IsSubmitting bool    `json:"isSubmitting" yaml:"isSubmitting"`
}

// Events bundles the handlers native inputs are wired to.
type Events struct {
	OnChange func(field string, raw any, kind InputKind)
	OnBlur   func(field string)
}

// Controller owns the state of a single form.
//
// All methods are safe for concurrent use. Mutations apply immediately;
// validation runs in the background and its result is applied only if no newer
// pass has already been applied, so errors never go back to describing stale
// values. Use Wait or WaitValidation to observe settled state.
type Controller struct {
	id       string
	name     string
	initial  Values
	validate Validator
	submit   SubmitFunc

	codec         Codec
	store         Store
	persistOn     bool
	persist       *persister
	onSubmitError func(context.Context, error)

	log    *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	phase       *statemachine.Machine[Phase, trigger]
	passes      tracker
	submissions tracker

	mu       sync.Mutex
	values   Values
	touched  Touched
	errors   Errors
	revision uint64 // bumped by every mutation
	applied  uint64 // revision of the last applied validation pass or reset
	inflight int    // submissions not yet settled
}

// New creates a controller for one form.
func New(p Params, opts ...Option) (*Controller, error) {
	if p.Validate == nil {
		return nil, ErrNilValidator
	}
	if p.Persist && p.Name == "" {
		return nil, ErrEmptyName
	}

	c := &Controller{
		id:        uuid.NewString(),
		name:      p.Name,
		initial:   cloneValues(p.Initial),
		validate:  p.Validate,
		submit:    p.Submit,
		persistOn: p.Persist,
		codec:     JSONCodec,
		log:       slog.Default(),
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.log = c.log.With(logger.Component("form"), logger.Form(c.name), logger.Instance(c.id))
	c.ctx, c.cancel = context.WithCancel(c.ctx)
	c.phase = newPhaseMachine(c.log)

	c.values = cloneValues(c.initial)
	c.touched = Touched{}
	c.errors = Errors{}

	if c.persistOn {
		if c.store == nil {
			c.store = storage.Default()
		}
		c.persist = newPersister(c.ctx, c.store, c.name, c.log)

		c.mu.Lock()
		c.persistLocked()
		c.mu.Unlock()
	}

	return c, nil
}

// MustNew is like New but panics on invalid parameters.
func MustNew(p Params, opts ...Option) *Controller {
	c, err := New(p, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// ID returns the random instance id used in logs.
func (c *Controller) ID() string { return c.id }

// Name returns the form name.
func (c *Controller) Name() string { return c.name }

// Snapshot returns a deep copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// IsValid reports whether the errors map has at least one entry.
//
// NOTE: the name reads the wrong way round: it returns true when there ARE
// errors. Callers depend on this polarity, so it is kept as is.
func (c *Controller) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors) > 0
}

// IsSubmitting reports whether a submission is in flight.
func (c *Controller) IsSubmitting() bool {
	return c.phase.Is(PhaseSubmitting)
}

// Events returns the change/blur handler bundle for native inputs.
func (c *Controller) Events() Events {
	return Events{OnChange: c.HandleChange, OnBlur: c.HandleBlur}
}

// WaitValidation blocks until every validation pass started so far has
// finished, or ctx is done. It does not wait for submit actions.
func (c *Controller) WaitValidation(ctx context.Context) error {
	return c.passes.wait(ctx)
}

// Wait blocks until all background work started so far (validation passes,
// submissions and persistence writes) has finished, or ctx is done.
func (c *Controller) Wait(ctx context.Context) error {
	if err := c.submissions.wait(ctx); err != nil {
		return err
	}
	if err := c.passes.wait(ctx); err != nil {
		return err
	}
	if c.persist != nil {
		return c.persist.wait(ctx)
	}
	return nil
}

// Close cancels the controller's background context. Pending validation,
// submissions and writes are abandoned; in-flight submissions settle.
func (c *Controller) Close() {
	c.cancel()
}

// snapshotLocked must be called with c.mu held.
func (c *Controller) snapshotLocked() State {
	return State{
		Name:         c.name,
		InitialState: cloneValues(c.initial),
		Values:       cloneValues(c.values),
		Touched:      cloneTouched(c.touched),
		Errors:       cloneErrors(c.errors),
		IsSubmitting: c.phase.Is(PhaseSubmitting),
	}
}
