package lifecycle

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/statekit"

	"gestion_tramites/internal/domain/entities"
)

// Document micro-states are tiny statecharts run through statekit. They share
// nothing with the case/procedure tables: every state has exactly one ADVANCE
// successor and only presentado accepts REJECT.

const (
	eventAdvance statekit.EventType = "ADVANCE"
	eventReject  statekit.EventType = "REJECT"

	procedureDocumentMachineID = "procedure_document"
	clientDocumentMachineID    = "client_document"
)

// documentTrail is the machine context; recordStep stores the last event that
// actually fired a transition.
type documentTrail struct {
	last statekit.EventType
}

var (
	procedureDocumentMachine = mustBuildMachine(newProcedureDocumentMachine)
	clientDocumentMachine    = mustBuildMachine(newClientDocumentMachine)
)

func mustBuildMachine(build func() (*statekit.MachineConfig[*documentTrail], error)) *statekit.MachineConfig[*documentTrail] {
	m, err := build()
	if err != nil {
		panic(fmt.Sprintf("lifecycle: building document machine: %v", err))
	}
	return m
}

func recordStep(ctx **documentTrail, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	(*ctx).last = event.Type
}

func newProcedureDocumentMachine() (*statekit.MachineConfig[*documentTrail], error) {
	var (
		pendiente  = statekit.StateID(entities.ProcedureDocumentPendiente)
		presentado = statekit.StateID(entities.ProcedureDocumentPresentado)
		aprobado   = statekit.StateID(entities.ProcedureDocumentAprobado)
		rechazado  = statekit.StateID(entities.ProcedureDocumentRechazado)
		vencido    = statekit.StateID(entities.ProcedureDocumentVencido)
	)
	return statekit.NewMachine[*documentTrail](procedureDocumentMachineID).
		WithInitial(pendiente).
		WithContext(&documentTrail{}).
		WithAction("recordStep", recordStep).
		State(pendiente).
			On(eventAdvance).Target(presentado).Do("recordStep").
			Done().
		State(presentado).
			On(eventAdvance).Target(aprobado).Do("recordStep").
			On(eventReject).Target(rechazado).Do("recordStep").
			Done().
		State(aprobado).
			On(eventAdvance).Target(pendiente).Do("recordStep").
			Done().
		State(rechazado).
			On(eventAdvance).Target(pendiente).Do("recordStep").
			Done().
		State(vencido).
			On(eventAdvance).Target(pendiente).Do("recordStep").
			Done().
		Build()
}

func newClientDocumentMachine() (*statekit.MachineConfig[*documentTrail], error) {
	var (
		vigente   = statekit.StateID(entities.ClientDocumentVigente)
		vencido   = statekit.StateID(entities.ClientDocumentVencido)
		pendiente = statekit.StateID(entities.ClientDocumentPendiente)
	)
	return statekit.NewMachine[*documentTrail](clientDocumentMachineID).
		WithInitial(pendiente).
		WithContext(&documentTrail{}).
		WithAction("recordStep", recordStep).
		State(vigente).
			On(eventAdvance).Target(vencido).Do("recordStep").
			Done().
		State(vencido).
			On(eventAdvance).Target(pendiente).Do("recordStep").
			Done().
		State(pendiente).
			On(eventAdvance).Target(vigente).Do("recordStep").
			Done().
		Build()
}

// fire resumes machine at current, sends event and returns the resulting state.
func fire(machine *statekit.MachineConfig[*documentTrail], machineID string, current string, event statekit.EventType) (string, error) {
	trail := &documentTrail{}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **documentTrail) {
		*c = trail
	})
	snapshot := statekit.Snapshot[*documentTrail]{
		MachineID:    machineID,
		CurrentState: statekit.StateID(current),
		Context:      trail,
		CreatedAt:    time.Now(),
	}
	if err := interp.Restore(snapshot); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnknownDocumentStatus, current, err)
	}

	interp.Send(statekit.Event{Type: event})
	if trail.last != event {
		return "", fmt.Errorf("%w: %q has no %s transition", ErrUnknownDocumentStatus, current, event)
	}
	return string(interp.State().Value), nil
}

// CycleProcedureDocument returns the successor of current on a single click:
// pendiente → presentado → aprobado → pendiente, rechazado → pendiente,
// vencido → pendiente.
func CycleProcedureDocument(current entities.ProcedureDocumentStatus) (entities.ProcedureDocumentStatus, error) {
	if !current.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDocumentStatus, current)
	}
	next, err := fire(procedureDocumentMachine, procedureDocumentMachineID, string(current), eventAdvance)
	if err != nil {
		return "", err
	}
	return entities.ProcedureDocumentStatus(next), nil
}

// RejectProcedureDocument models a reviewer rejecting a submission.
func RejectProcedureDocument(current entities.ProcedureDocumentStatus) (entities.ProcedureDocumentStatus, error) {
	if current != entities.ProcedureDocumentPresentado {
		return "", ErrDocumentRejectNotAllowed
	}
	next, err := fire(procedureDocumentMachine, procedureDocumentMachineID, string(current), eventReject)
	if err != nil {
		return "", err
	}
	return entities.ProcedureDocumentStatus(next), nil
}

// CanRejectProcedureDocument reports whether reject is offered for current.
func CanRejectProcedureDocument(current entities.ProcedureDocumentStatus) bool {
	return current == entities.ProcedureDocumentPresentado
}

// CycleClientDocument returns vigente → vencido → pendiente → vigente.
func CycleClientDocument(current entities.ClientDocumentStatus) (entities.ClientDocumentStatus, error) {
	if !current.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDocumentStatus, current)
	}
	next, err := fire(clientDocumentMachine, clientDocumentMachineID, string(current), eventAdvance)
	if err != nil {
		return "", err
	}
	return entities.ClientDocumentStatus(next), nil
}
