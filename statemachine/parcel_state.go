package statemachine

import (
	"github.com/niroj-tamang6988/RNJLogistic/apperr"
	"github.com/niroj-tamang6988/RNJLogistic/models"
)

// Op names the operation attempting a state change. Assignment and
// delivery updates admit different transitions, so the table is keyed by
// operation as well as by actor.
type Op string

const (
	OpAssign   Op = "assign"
	OpDelivery Op = "delivery_update"
)

// Transition defines a valid state change and who can perform it.
type Transition struct {
	Op    Op
	From  models.ParcelStatus
	To    models.ParcelStatus
	Actor models.Role
}

var allStatuses = []models.ParcelStatus{
	models.StatusPending,
	models.StatusPlaced,
	models.StatusAssigned,
	models.StatusDelivered,
	models.StatusNotDelivered,
}

// validTransitions is the authoritative state machine definition.
var validTransitions = func() []Transition {
	var ts []Transition
	// Admin assigns a rider to a pending or placed parcel. Re-assigning an
	// already assigned parcel is valid: it overwrites the rider and keeps
	// the status.
	for _, from := range AssignSources() {
		ts = append(ts, Transition{Op: OpAssign, From: from, To: models.StatusAssigned, Actor: models.RoleAdmin})
	}
	// Delivery updates may retarget a parcel in any state to any
	// allow-listed status, which lets a parcel be re-opened after a failed
	// delivery. Riders are additionally confined to their own rows by the
	// query scope.
	for _, from := range allStatuses {
		for _, to := range DeliveryTargets() {
			ts = append(ts, Transition{Op: OpDelivery, From: from, To: to, Actor: models.RoleRider})
			ts = append(ts, Transition{Op: OpDelivery, From: from, To: to, Actor: models.RoleAdmin})
		}
	}
	return ts
}()

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	Op    Op
	From  models.ParcelStatus
	To    models.ParcelStatus
	Actor models.Role
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.Op, t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransition checks if a given actor can move a parcel from one state
// to another through the named operation.
func CanTransition(op Op, from, to models.ParcelStatus, actor models.Role) error {
	if transitionMap[transitionKey{Op: op, From: from, To: to, Actor: actor}] {
		return nil
	}
	return apperr.Newf(apperr.KindValidation,
		"invalid transition: %s cannot move a %s parcel to %s via %s",
		actor, from, to, op)
}

// ValidTransitionsFrom returns all valid next states from a given state
// for one operation and actor.
func ValidTransitionsFrom(op Op, from models.ParcelStatus, actor models.Role) []models.ParcelStatus {
	var nexts []models.ParcelStatus
	seen := map[models.ParcelStatus]bool{}
	for _, t := range validTransitions {
		if t.Op == op && t.From == from && t.Actor == actor && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanAssign checks whether a parcel in state from may enter assignment.
func CanAssign(from models.ParcelStatus) error {
	if err := CanTransition(OpAssign, from, models.StatusAssigned, models.RoleAdmin); err != nil {
		return apperr.Newf(apperr.KindValidation,
			"cannot assign a %s parcel; assignable states are: %s",
			from, statusList(AssignSources()))
	}
	return nil
}

// ValidateDeliveryTarget checks a requested delivery-update status against
// the allow-list. The current state is not consulted: the delivery path
// updates by scoped query without reading the row first, and every state
// admits the same targets.
func ValidateDeliveryTarget(to models.ParcelStatus) error {
	if transitionMap[transitionKey{Op: OpDelivery, From: models.StatusAssigned, To: to, Actor: models.RoleRider}] {
		return nil
	}
	return apperr.New(apperr.KindValidation, "Invalid status value")
}

// AssignSources returns the states assignment accepts, in a fixed order.
func AssignSources() []models.ParcelStatus {
	return []models.ParcelStatus{
		models.StatusPending,
		models.StatusPlaced,
		models.StatusAssigned,
	}
}

// DeliveryTargets returns the delivery allow-list, in a fixed order.
func DeliveryTargets() []models.ParcelStatus {
	return []models.ParcelStatus{
		models.StatusDelivered,
		models.StatusNotDelivered,
		models.StatusAssigned,
		models.StatusPending,
		models.StatusPlaced,
	}
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

// IsTerminal reports whether a status is a delivery outcome. not_delivered
// stays re-openable through the delivery-update path.
func IsTerminal(s models.ParcelStatus) bool {
	return s == models.StatusDelivered || s == models.StatusNotDelivered
}

func statusList(statuses []models.ParcelStatus) string {
	out := ""
	for i, s := range statuses {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}
