package events

import "github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"

// ReservationEventType identifies a reservation lifecycle event.
type ReservationEventType string

const (
	// ReservationCreated is published when a booking is persisted.
	ReservationCreated ReservationEventType = "ReservationCreated"

	// ReservationStatusMoved is published when a reservation's status
	// changes (confirmation, cancellation, completion).
	ReservationStatusMoved ReservationEventType = "ReservationStatusMoved"
)

// ReservationEvent is the payload placed on the bus.
type ReservationEvent struct {
	Type        ReservationEventType
	Reservation models.Reservation
	OldStatus   models.ReservationStatus
}

// ReservationEventBus is buffered so publishing from a request handler
// never blocks on the consumer.
var ReservationEventBus = make(chan ReservationEvent, 100)

// Publish drops the event when the bus is full rather than stalling the
// request path.
func Publish(e ReservationEvent) {
	select {
	case ReservationEventBus <- e:
	default:
	}
}
