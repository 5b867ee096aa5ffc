// Package notification turns entity mutation events into notification
// records, the in-app inbox the notifications page lists.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicore/admin-api/internal/model"
	"github.com/clinicore/admin-api/internal/resolve"
	"github.com/clinicore/admin-api/internal/store"
	"github.com/clinicore/admin-api/pkg/event"
	"github.com/clinicore/admin-api/pkg/logger"
)

type Service struct {
	drv      store.Driver
	resolver *resolve.Resolver
	log      *logger.Logger
}

func NewService(drv store.Driver, resolver *resolve.Resolver, log *logger.Logger) *Service {
	return &Service{drv: drv, resolver: resolver, log: log}
}

// HandleEvent is subscribed to the emitter. Appointment creations
// produce an unread notification for the assigned doctor; everything
// else only invalidates the resolver cache for the touched collection.
func (s *Service) HandleEvent(ctx context.Context, evt event.EntityEvent) {
	s.resolver.Invalidate(evt.Collection)

	if evt.Collection != model.CollectionAppointments || evt.Action != event.ActionCreated {
		return
	}

	rec, err := s.drv.Get(ctx, model.CollectionAppointments, evt.ID)
	if err != nil {
		s.log.Error(err, "failed to load appointment for notification")
		return
	}

	patientID := store.RefID(rec, "patient_id")
	doctorID := store.RefID(rec, "doctor_id")
	patientName := s.resolver.PatientName(ctx, patientID)
	doctorName := s.resolver.DoctorName(ctx, doctorID)
	if patientName == "" {
		patientName = "a patient"
	}
	recipient := doctorName
	if recipient == "" {
		recipient = "All Staff"
	}

	notification := store.Record{
		"title":     "New Appointment Request",
		"message":   fmt.Sprintf("%s has a new appointment request from %s", recipient, patientName),
		"type":      string(model.NotificationTypeAppointment),
		"priority":  string(model.NotificationPriorityHigh),
		"timestamp": time.Now().Format("2006-01-02 03:04 PM"),
		"status":    string(model.NotificationStatusUnread),
		"recipient": recipient,
	}
	if _, err := s.drv.Insert(ctx, model.CollectionNotifications, notification); err != nil {
		s.log.Error(err, "failed to create appointment notification")
	}
}
