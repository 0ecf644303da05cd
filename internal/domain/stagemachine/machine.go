// Package stagemachine holds the transition table of the scheduling form.
//
// Every stage move is a named event:
//
//	accept_<field>       any stage below unlock(field)  -> unlock(field)
//	no_existing_booking  any stage below bairro         -> bairro
//	rewind_<stage>       any other stage                -> stage
//	reset                any stage but cpf              -> cpf
//
// The CPF field has no accept event: it only moves the form through the
// existing-booking lookup (no_existing_booking).
package stagemachine

import (
	"context"
	"fmt"

	"agendamento_cras/internal/domain/entities"

	"github.com/looplab/fsm"
)

const (
	EventNoExistingBooking = "no_existing_booking"
	EventReset             = "reset"
)

// AcceptEvent is the event fired when a field receives a valid value.
func AcceptEvent(f entities.Field) string {
	return "accept_" + string(f)
}

// RewindEvent is the event that moves the form back to the given stage.
func RewindEvent(s entities.Stage) string {
	return "rewind_" + s.String()
}

var transitions = buildTransitions()

func buildTransitions() fsm.Events {
	events := fsm.Events{}
	for _, f := range entities.Fields {
		if f == entities.FieldCPF {
			continue
		}
		events = append(events, fsm.EventDesc{
			Name: AcceptEvent(f),
			Src:  stageNames(stagesBelow(f.UnlockStage())),
			Dst:  f.UnlockStage().String(),
		})
	}
	events = append(events, fsm.EventDesc{
		Name: EventNoExistingBooking,
		Src:  stageNames(stagesBelow(entities.StageNeighborhood)),
		Dst:  entities.StageNeighborhood.String(),
	})
	for _, s := range entities.Stages {
		events = append(events, fsm.EventDesc{
			Name: RewindEvent(s),
			Src:  stageNames(stagesExcept(s)),
			Dst:  s.String(),
		})
	}
	events = append(events, fsm.EventDesc{
		Name: EventReset,
		Src:  stageNames(stagesExcept(entities.StageCPF)),
		Dst:  entities.StageCPF.String(),
	})
	return events
}

func stagesBelow(limit entities.Stage) []entities.Stage {
	out := make([]entities.Stage, 0, int(limit))
	for _, s := range entities.Stages {
		if s < limit {
			out = append(out, s)
		}
	}
	return out
}

func stagesExcept(skip entities.Stage) []entities.Stage {
	out := make([]entities.Stage, 0, len(entities.Stages)-1)
	for _, s := range entities.Stages {
		if s != skip {
			out = append(out, s)
		}
	}
	return out
}

func stageNames(stages []entities.Stage) []string {
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = s.String()
	}
	return out
}

// Machine drives the stage of a single form session.
type Machine struct {
	fsm *fsm.FSM
}

// New starts a machine at the given stage.
func New(current entities.Stage) *Machine {
	return &Machine{fsm: fsm.NewFSM(current.String(), transitions, fsm.Callbacks{})}
}

// Current returns the stage the machine is in.
func (m *Machine) Current() entities.Stage {
	s, ok := entities.ParseStage(m.fsm.Current())
	if !ok {
		return entities.StageCPF
	}
	return s
}

// Fire applies an event. It reports false, without error, when the event is not
// allowed from the current stage.
func (m *Machine) Fire(ctx context.Context, event string) (bool, error) {
	if !m.fsm.Can(event) {
		return false, nil
	}
	if err := m.fsm.Event(ctx, event); err != nil {
		return false, fmt.Errorf("stage transition %s from %s: %w", event, m.fsm.Current(), err)
	}
	return true, nil
}
