// Package seed inserts the fixed example rows into any collection that
// is observed empty, mirroring first-run behavior of the dashboard.
package seed

import (
	"context"
	"fmt"

	"github.com/clinicore/admin-api/internal/model"
	"github.com/clinicore/admin-api/internal/store"
	"github.com/clinicore/admin-api/pkg/logger"
)

// Defaults returns the seed rows per collection. Ids are store-assigned
// at insert time; the cross-references below assume the 1..n ids an
// empty collection hands out.
func Defaults() map[string][]store.Record {
	return map[string][]store.Record{
		model.CollectionPatients: {
			{"name": "John Doe", "age": 35, "gender": "Male", "phone": "(555) 123-4567", "email": "john.doe@example.com", "last_visit": "2024-03-15"},
			{"name": "Jane Smith", "age": 28, "gender": "Female", "phone": "(555) 234-5678", "email": "jane.smith@example.com", "last_visit": "2024-03-10"},
			{"name": "Robert Brown", "age": 52, "gender": "Male", "phone": "(555) 345-6789", "email": "robert.brown@example.com", "last_visit": "2024-03-08"},
		},
		model.CollectionDoctors: {
			{"name": "Dr. Sarah Johnson", "specialization": "Cardiology", "experience": 10, "phone": "(555) 123-4567", "email": "sarah.johnson@clinic.com", "availability": "Mon, Wed, Fri"},
			{"name": "Dr. Michael Chen", "specialization": "Pediatrics", "experience": 8, "phone": "(555) 234-5678", "email": "michael.chen@clinic.com", "availability": "Tue, Thu, Sat"},
			{"name": "Dr. Emily Brown", "specialization": "Dermatology", "experience": 12, "phone": "(555) 345-6789", "email": "emily.brown@clinic.com", "availability": "Mon-Fri"},
		},
		model.CollectionAppointments: {
			{"patient_id": 1, "doctor_id": 1, "date": "2024-03-22", "time": "09:00 AM", "type": "Check-up", "status": "scheduled"},
			{"patient_id": 2, "doctor_id": 2, "date": "2024-03-22", "time": "10:30 AM", "type": "Follow-up", "status": "confirmed"},
			{"patient_id": 3, "doctor_id": 3, "date": "2024-03-23", "time": "02:00 PM", "type": "Consultation", "status": "scheduled"},
		},
		model.CollectionConsultations: {
			{"patient_id": 1, "doctor_id": 1, "date": "2024-03-20", "time": "09:00 AM", "type": "Initial Consultation", "diagnosis": "Hypertension", "status": "completed", "notes": "Patient reported high blood pressure symptoms"},
			{"patient_id": 2, "doctor_id": 2, "date": "2024-03-20", "time": "10:30 AM", "type": "Follow-up", "diagnosis": "Diabetes Type 2", "status": "in-progress", "notes": "Regular check-up for blood sugar levels"},
			{"patient_id": 3, "doctor_id": 3, "date": "2024-03-21", "time": "02:00 PM", "type": "Specialist Consultation", "diagnosis": "Pending", "status": "scheduled", "notes": "Referred by primary care physician"},
		},
		model.CollectionTreatments: {
			{"patient_id": 1, "doctor_id": 1, "treatment_type": "Physical Therapy", "start_date": "2024-03-15", "end_date": "2024-04-15", "status": "ongoing", "cost": 1200},
			{"patient_id": 2, "doctor_id": 2, "treatment_type": "Dental Surgery", "start_date": "2024-03-20", "end_date": "2024-03-20", "status": "completed", "cost": 2500},
			{"patient_id": 3, "doctor_id": 3, "treatment_type": "Chemotherapy", "start_date": "2024-04-01", "end_date": "2024-07-01", "status": "scheduled", "cost": 5000},
		},
		model.CollectionInvoices: {
			{"invoice_number": "INV-2024-001", "patient_id": 1, "doctor_id": 1, "date": "2024-03-15", "due_date": "2024-04-15", "amount": 1500, "status": "pending", "items": []interface{}{
				store.Record{"description": "Consultation", "quantity": 1, "price": 200},
				store.Record{"description": "Treatment", "quantity": 1, "price": 1300},
			}},
			{"invoice_number": "INV-2024-002", "patient_id": 2, "doctor_id": 2, "date": "2024-03-10", "due_date": "2024-04-10", "amount": 2500, "status": "paid", "items": []interface{}{
				store.Record{"description": "Surgery", "quantity": 1, "price": 2000},
				store.Record{"description": "Medication", "quantity": 2, "price": 250},
			}},
			{"invoice_number": "INV-2024-003", "patient_id": 3, "doctor_id": 3, "date": "2024-02-15", "due_date": "2024-03-15", "amount": 800, "status": "overdue", "items": []interface{}{
				store.Record{"description": "Follow-up", "quantity": 1, "price": 150},
				store.Record{"description": "Tests", "quantity": 3, "price": 650},
			}},
		},
		model.CollectionPayments: {
			{"invoice_id": 1, "date": "2024-03-15", "amount": 1500, "method": "credit_card", "status": "completed", "reference": "TXN-123456"},
			{"invoice_id": 2, "date": "2024-03-10", "amount": 2500, "method": "bank_transfer", "status": "pending", "reference": "TXN-234567"},
			{"invoice_id": 3, "date": "2024-03-08", "amount": 800, "method": "cash", "status": "completed", "reference": "TXN-345678"},
		},
		model.CollectionSchedules: {
			{"doctor_id": 1, "day_of_week": "Monday", "start_time": "09:00 AM", "end_time": "05:00 PM", "max_patients": 12, "current_bookings": 8, "status": "available"},
			{"doctor_id": 2, "day_of_week": "Tuesday", "start_time": "08:00 AM", "end_time": "04:00 PM", "max_patients": 15, "current_bookings": 15, "status": "fully-booked"},
			{"doctor_id": 3, "day_of_week": "Wednesday", "start_time": "10:00 AM", "end_time": "06:00 PM", "max_patients": 10, "current_bookings": 6, "status": "available"},
		},
		model.CollectionNotifications: {
			{"title": "New Appointment Request", "message": "Dr. Sarah Johnson has a new appointment request from John Doe", "type": "appointment", "priority": "high", "timestamp": "2024-03-20 09:30 AM", "status": "unread", "recipient": "Dr. Sarah Johnson"},
			{"title": "Medication Reminder", "message": "Reminder to update prescription for patient Jane Smith", "type": "reminder", "priority": "medium", "timestamp": "2024-03-20 10:15 AM", "status": "read", "recipient": "Dr. Michael Chen"},
			{"title": "System Maintenance", "message": "System will undergo maintenance on Saturday at 2 AM", "type": "system", "priority": "low", "timestamp": "2024-03-19 03:45 PM", "status": "read", "recipient": "All Staff"},
		},
	}
}

// EnsureSeeded inserts the default rows into every empty collection as
// a sequence of individual inserts. Seeding is not transactional: a
// failure mid-sequence leaves the rows inserted so far in place and is
// reported, not rolled back.
func EnsureSeeded(ctx context.Context, drv store.Driver, log *logger.Logger) error {
	defaults := Defaults()
	for _, collection := range model.Collections() {
		rows, ok := defaults[collection]
		if !ok {
			continue
		}
		existing, err := drv.ListAll(ctx, collection)
		if err != nil {
			return fmt.Errorf("seed %s: %w", collection, err)
		}
		if len(existing) > 0 {
			continue
		}
		for i, row := range rows {
			if _, err := drv.Insert(ctx, collection, row); err != nil {
				return fmt.Errorf("seed %s: row %d of %d: %w", collection, i+1, len(rows), err)
			}
		}
		log.Info(fmt.Sprintf("seeded %s with %d rows", collection, len(rows)))
	}
	return nil
}
