package domain

import (
	"context"
	"time"
)

type LifecycleState string

const (
	LifecycleStateStopped    LifecycleState = "stopped"
	LifecycleStateStarting   LifecycleState = "starting"
	LifecycleStateRunning    LifecycleState = "running"
	LifecycleStateStopping   LifecycleState = "stopping"
	LifecycleStateRestarting LifecycleState = "restarting"
)

// Stable reports whether the state is one a transition can end in.
func (s LifecycleState) Stable() bool {
	return s == LifecycleStateStopped || s == LifecycleStateRunning
}

// Label is the capitalized form shown on status lines and indicators.
func (s LifecycleState) Label() string {
	switch s {
	case LifecycleStateStopped:
		return "Stopped"
	case LifecycleStateStarting:
		return "Starting"
	case LifecycleStateRunning:
		return "Running"
	case LifecycleStateStopping:
		return "Stopping"
	case LifecycleStateRestarting:
		return "Restarting"
	}
	return string(s)
}

type TransitionKind string

const (
	TransitionStop    TransitionKind = "stop"
	TransitionStart   TransitionKind = "start"
	TransitionRestart TransitionKind = "restart"
)

// StepAction is optional work bound to a step. It runs right before the step's entry is
// appended; an error aborts the transition.
type StepAction func(ctx context.Context) error

type Step struct {
	Name   string
	Delay  time.Duration
	Text   string
	Kind   EntryKind
	Action StepAction
}

// StepPlan describes one transition: the state held while it runs, the entry appended when
// it is accepted, the timed steps, and the stable state it ends in.
type StepPlan struct {
	Kind      TransitionKind
	Transient LifecycleState
	Terminal  LifecycleState
	Initiated string
	Steps     []Step
}

func DefaultStepPlans() map[TransitionKind]StepPlan {
	return map[TransitionKind]StepPlan{
		TransitionStop: {
			Kind:      TransitionStop,
			Transient: LifecycleStateStopping,
			Terminal:  LifecycleStateStopped,
			Initiated: "Stopping server...",
			Steps: []Step{
				{Name: "disconnect", Delay: 500 * time.Millisecond, Text: "Disconnecting players...", Kind: EntryKindOutput},
				{Name: "save", Delay: time.Second, Text: "Saving world data...", Kind: EntryKindOutput},
				{Name: "stopped", Delay: 500 * time.Millisecond, Text: "Server stopped successfully.", Kind: EntryKindSuccess},
			},
		},
		TransitionStart: {
			Kind:      TransitionStart,
			Transient: LifecycleStateStarting,
			Terminal:  LifecycleStateRunning,
			Initiated: "Starting server...",
			Steps: []Step{
				{Name: "config", Delay: 500 * time.Millisecond, Text: "Loading configuration...", Kind: EntryKindOutput},
				{Name: "world", Delay: time.Second, Text: "Loading world data...", Kind: EntryKindOutput},
				{Name: "network", Delay: 500 * time.Millisecond, Text: "Binding network listeners...", Kind: EntryKindOutput},
				{Name: "started", Delay: 500 * time.Millisecond, Text: "Server started successfully.", Kind: EntryKindSuccess},
			},
		},
		TransitionRestart: {
			Kind:      TransitionRestart,
			Transient: LifecycleStateRestarting,
			Terminal:  LifecycleStateRunning,
			Initiated: "Restarting server...",
			Steps: []Step{
				{Name: "save", Delay: 500 * time.Millisecond, Text: "Saving world data...", Kind: EntryKindOutput},
				{Name: "stop", Delay: time.Second, Text: "Server stopped.", Kind: EntryKindOutput},
				{Name: "start", Delay: 1500 * time.Millisecond, Text: "Starting server...", Kind: EntryKindOutput},
				{Name: "restarted", Delay: 500 * time.Millisecond, Text: "Server restarted successfully.", Kind: EntryKindSuccess},
			},
		},
	}
}
