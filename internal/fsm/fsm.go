// Package fsm implements the per-entity finite-state machine ("brain") that
// drives simulated entities. States are registered by name; the machine runs
// the active state's actions once per tick and follows the transition its
// conditions ask for.
package fsm

import (
	"errors"
	"fmt"
)

// ErrStateNotFound is returned when a transition names an unregistered state.
// It signals a bug in the transition table, not a runtime condition.
var ErrStateNotFound = errors.New("fsm: state not found")

// State is one behavior of an entity.
// The machine calls these hooks; a state never switches itself.
type State interface {
	// Name identifies the state within its machine.
	Name() string

	// EntryActions runs once when the machine switches to this state.
	EntryActions()

	// ExitActions runs once when the machine leaves this state.
	ExitActions()

	// DoActions runs every tick while the state is active.
	DoActions()

	// CheckConditions runs after DoActions and returns the name of the next
	// state, or "" to stay.
	CheckConditions() string
}

// BaseState supplies no-op hooks. Concrete states embed it and override
// the hooks they need.
type BaseState struct {
	name string
}

// NewBaseState creates a BaseState with the given name.
func NewBaseState(name string) BaseState {
	return BaseState{name: name}
}

// Name returns the state name.
func (s BaseState) Name() string { return s.name }

// EntryActions does nothing.
func (BaseState) EntryActions() {}

// ExitActions does nothing.
func (BaseState) ExitActions() {}

// DoActions does nothing.
func (BaseState) DoActions() {}

// CheckConditions never requests a transition.
func (BaseState) CheckConditions() string { return "" }

// TransitionFunc observes a completed transition. from is "" for the first
// state a machine enters.
type TransitionFunc func(from, to string)

// Machine owns a set of named states and at most one active state.
// A machine with no active state is inert: Think does nothing.
type Machine struct {
	states       map[string]State
	active       State
	onTransition TransitionFunc
}

// NewMachine creates an empty, inert machine.
func NewMachine() *Machine {
	return &Machine{
		states: make(map[string]State),
	}
}

// AddState registers a state under its name, replacing any previous state
// with the same name.
func (m *Machine) AddState(s State) {
	m.states[s.Name()] = s
}

// OnTransition installs a hook called after every SetState.
func (m *Machine) OnTransition(fn TransitionFunc) {
	m.onTransition = fn
}

// State returns the registered state with the given name.
func (m *Machine) State(name string) (State, bool) {
	s, ok := m.states[name]
	return s, ok
}

// Active returns the active state, or nil before the first SetState.
func (m *Machine) Active() State {
	return m.active
}

// ActiveName returns the active state's name, or "" when inert.
func (m *Machine) ActiveName() string {
	if m.active == nil {
		return ""
	}
	return m.active.Name()
}

// SetState switches to the named state: the active state's ExitActions run,
// then the new state's EntryActions. Setting the already active name runs
// both again. An unknown name fails before any hook runs, leaving the
// machine unchanged.
func (m *Machine) SetState(name string) error {
	next, ok := m.states[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStateNotFound, name)
	}

	from := ""
	if m.active != nil {
		from = m.active.Name()
		m.active.ExitActions()
	}

	m.active = next
	m.active.EntryActions()

	if m.onTransition != nil {
		m.onTransition(from, name)
	}
	return nil
}

// Think runs one tick: DoActions, then CheckConditions, then the requested
// transition in the same call.
func (m *Machine) Think() error {
	if m.active == nil {
		return nil
	}

	m.active.DoActions()

	if next := m.active.CheckConditions(); next != "" {
		return m.SetState(next)
	}
	return nil
}
