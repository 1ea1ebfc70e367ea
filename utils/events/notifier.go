package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

// StartNotifierConsumer drains the reservation bus and writes an audit line
// per event. This is the hook point for staff notifications; the shop front
// desk currently works off the admin calendar, so logging is enough.
func StartNotifierConsumer(ctx context.Context, log *logrus.Logger) {
	go func() {
		log.Info("reservation notifier consumer started")

		for {
			select {
			case <-ctx.Done():
				return
			case e := <-ReservationEventBus:
				entry := log.WithFields(logrus.Fields{
					"event":          string(e.Type),
					"reservation_id": e.Reservation.ID,
					"date":           e.Reservation.Date,
					"time":           e.Reservation.Time,
					"status":         string(e.Reservation.Status),
				})
				if e.Type == ReservationStatusMoved {
					entry = entry.WithField("old_status", string(e.OldStatus))
				}
				entry.Info("reservation event")
			}
		}
	}()
}
