package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wakili/console/internal/moderation"
)

var (
	ErrNotFound = errors.New("entity not in store")
	ErrInFlight = errors.New("a transition for this entity is already in flight")
)

// Executor applies a status transition to exactly one entity and reconciles
// the collaborator's answer into the store. The store is only ever mutated
// after a confirmed success, so a failed call leaves local state untouched.
type Executor[T any] struct {
	store    *Store[T]
	rules    moderation.Ruleset
	status   func(T) string
	notifier Notifier

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewExecutor[T any](store *Store[T], rules moderation.Ruleset, status func(T) string, notifier Notifier) *Executor[T] {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Executor[T]{
		store:    store,
		rules:    rules,
		status:   status,
		notifier: notifier,
		inFlight: make(map[string]bool),
	}
}

// Transition validates the requested status change locally, then runs call
// against the collaborator and merges the returned entity on success. At most
// one transition per entity is in flight at a time; a second attempt while
// the first is pending is refused without touching the network.
func (e *Executor[T]) Transition(ctx context.Context, id, to, reason string, call func(ctx context.Context) (*T, error)) error {
	action := fmt.Sprintf("%s %s -> %s", e.rules.Kind, id, to)

	if err := e.acquire(id); err != nil {
		e.notifier.Failure(action, err.Error())
		return err
	}
	defer e.release(id)

	current, ok := e.store.Get(id)
	if !ok {
		e.notifier.Failure(action, "entity not found")
		return fmt.Errorf("%w: %s %s", ErrNotFound, e.rules.Kind, id)
	}

	// Local preconditions first; a refused transition makes no network call.
	if err := e.rules.Check(e.status(current), to, reason); err != nil {
		e.notifier.Failure(action, err.Error())
		return err
	}

	updated, err := call(ctx)
	if err != nil {
		e.notifier.Failure(action, err.Error())
		return err
	}
	if updated == nil {
		err := fmt.Errorf("collaborator returned no entity for %s %s", e.rules.Kind, id)
		e.notifier.Failure(action, err.Error())
		return err
	}

	e.store.ReplaceOne(id, *updated)
	e.notifier.Success(action, "done")
	return nil
}

// Remove deletes one entity after the guard passes. Used for the operations
// that remove rather than re-status an entity (review deletion, admin
// deletion). The guard runs before any network call.
func (e *Executor[T]) Remove(ctx context.Context, id string, guard func(T) error, call func(ctx context.Context) error) error {
	action := fmt.Sprintf("delete %s %s", e.rules.Kind, id)

	if err := e.acquire(id); err != nil {
		e.notifier.Failure(action, err.Error())
		return err
	}
	defer e.release(id)

	current, ok := e.store.Get(id)
	if !ok {
		e.notifier.Failure(action, "entity not found")
		return fmt.Errorf("%w: %s %s", ErrNotFound, e.rules.Kind, id)
	}

	if guard != nil {
		if err := guard(current); err != nil {
			e.notifier.Failure(action, err.Error())
			return err
		}
	}

	if err := call(ctx); err != nil {
		e.notifier.Failure(action, err.Error())
		return err
	}

	e.store.RemoveOne(id)
	e.notifier.Success(action, "done")
	return nil
}

func (e *Executor[T]) acquire(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight[id] {
		return ErrInFlight
	}
	e.inFlight[id] = true
	return nil
}

func (e *Executor[T]) release(id string) {
	e.mu.Lock()
	delete(e.inFlight, id)
	e.mu.Unlock()
}
