package schema

import "github.com/clinicore/admin-api/internal/model"

// Entities maps every collection to its field and column definitions.
// These are static configuration, the typed equivalent of the schemas
// each page used to declare inline.
func Entities() map[string]Entity {
	return map[string]Entity{
		model.CollectionPatients: {
			Title: "Patients",
			Fields: []Field{
				{Name: "name", Label: "Name", Kind: KindText},
				{Name: "age", Label: "Age", Kind: KindNumber},
				{Name: "gender", Label: "Gender", Kind: KindSelect, Options: []string{"Male", "Female", "Other"}},
				{Name: "phone", Label: "Phone", Kind: KindTel},
				{Name: "email", Label: "Email", Kind: KindEmail},
				{Name: "last_visit", Label: "Last Visit", Kind: KindDate},
			},
			Columns: []Column{
				{Header: "Name", Accessor: "name"},
				{Header: "Age", Accessor: "age"},
				{Header: "Gender", Accessor: "gender"},
				{Header: "Phone", Accessor: "phone"},
				{Header: "Email", Accessor: "email"},
				{Header: "Last Visit", Accessor: "last_visit"},
			},
		},
		model.CollectionDoctors: {
			Title: "Doctors",
			Fields: []Field{
				{Name: "name", Label: "Name", Kind: KindText},
				{Name: "specialization", Label: "Specialization", Kind: KindText},
				{Name: "experience", Label: "Experience (Years)", Kind: KindNumber},
				{Name: "phone", Label: "Phone", Kind: KindTel},
				{Name: "email", Label: "Email", Kind: KindEmail},
				{Name: "availability", Label: "Availability", Kind: KindText},
			},
			Columns: []Column{
				{Header: "Name", Accessor: "name"},
				{Header: "Specialization", Accessor: "specialization"},
				{Header: "Experience (Years)", Accessor: "experience"},
				{Header: "Phone", Accessor: "phone"},
				{Header: "Email", Accessor: "email"},
				{Header: "Availability", Accessor: "availability"},
			},
		},
		model.CollectionAppointments: {
			Title: "Appointments",
			Fields: []Field{
				{Name: "patient_id", Label: "Patient", Kind: KindNumber},
				{Name: "doctor_id", Label: "Doctor", Kind: KindNumber},
				{Name: "date", Label: "Date", Kind: KindDate},
				{Name: "time", Label: "Time", Kind: KindText},
				{Name: "type", Label: "Type", Kind: KindText},
				{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"scheduled", "confirmed", "cancelled"}},
			},
			Columns: []Column{
				{Header: "Patient", Accessor: "patient_id"},
				{Header: "Doctor", Accessor: "doctor_id"},
				{Header: "Date", Accessor: "date"},
				{Header: "Time", Accessor: "time"},
				{Header: "Type", Accessor: "type"},
				{Header: "Status", Accessor: "status"},
			},
		},
		model.CollectionConsultations: {
			Title: "Consultations",
			Fields: []Field{
				{Name: "patient_id", Label: "Patient", Kind: KindNumber},
				{Name: "doctor_id", Label: "Doctor", Kind: KindNumber},
				{Name: "date", Label: "Date", Kind: KindDate},
				{Name: "time", Label: "Time", Kind: KindText},
				{Name: "type", Label: "Type", Kind: KindText},
				{Name: "diagnosis", Label: "Diagnosis", Kind: KindText},
				{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"scheduled", "in-progress", "completed"}},
				{Name: "notes", Label: "Notes", Kind: KindText},
			},
			Columns: []Column{
				{Header: "Patient", Accessor: "patient_id"},
				{Header: "Doctor", Accessor: "doctor_id"},
				{Header: "Date", Accessor: "date"},
				{Header: "Time", Accessor: "time"},
				{Header: "Type", Accessor: "type"},
				{Header: "Diagnosis", Accessor: "diagnosis"},
				{Header: "Status", Accessor: "status"},
			},
		},
		model.CollectionTreatments: {
			Title: "Treatments",
			Fields: []Field{
				{Name: "patient_id", Label: "Patient", Kind: KindNumber},
				{Name: "doctor_id", Label: "Doctor", Kind: KindNumber},
				{Name: "treatment_type", Label: "Treatment Type", Kind: KindText},
				{Name: "start_date", Label: "Start Date", Kind: KindDate},
				{Name: "end_date", Label: "End Date", Kind: KindDate},
				{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"ongoing", "completed", "scheduled"}},
				{Name: "cost", Label: "Cost", Kind: KindNumber},
			},
			Columns: []Column{
				{Header: "Patient", Accessor: "patient_id"},
				{Header: "Doctor", Accessor: "doctor_id"},
				{Header: "Treatment Type", Accessor: "treatment_type"},
				{Header: "Start Date", Accessor: "start_date"},
				{Header: "End Date", Accessor: "end_date"},
				{Header: "Status", Accessor: "status"},
				{Header: "Cost", Accessor: "cost"},
			},
		},
		model.CollectionInvoices: {
			Title: "Invoices",
			Fields: []Field{
				{Name: "invoice_number", Label: "Invoice Number", Kind: KindText},
				{Name: "patient_id", Label: "Patient", Kind: KindNumber},
				{Name: "doctor_id", Label: "Doctor", Kind: KindNumber},
				{Name: "date", Label: "Date", Kind: KindDate},
				{Name: "due_date", Label: "Due Date", Kind: KindDate},
				{Name: "amount", Label: "Amount", Kind: KindNumber},
				{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"paid", "pending", "overdue"}},
			},
			Columns: []Column{
				{Header: "Invoice #", Accessor: "invoice_number"},
				{Header: "Patient", Accessor: "patient_id"},
				{Header: "Doctor", Accessor: "doctor_id"},
				{Header: "Date", Accessor: "date"},
				{Header: "Due Date", Accessor: "due_date"},
				{Header: "Amount", Accessor: "amount"},
				{Header: "Status", Accessor: "status"},
			},
		},
		model.CollectionPayments: {
			Title: "Payments",
			Fields: []Field{
				{Name: "invoice_id", Label: "Invoice", Kind: KindNumber},
				{Name: "date", Label: "Date", Kind: KindDate},
				{Name: "amount", Label: "Amount", Kind: KindNumber},
				{Name: "method", Label: "Method", Kind: KindSelect, Options: []string{"cash", "credit_card", "debit_card", "bank_transfer"}},
				{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"completed", "pending", "failed"}},
				{Name: "reference", Label: "Reference", Kind: KindText},
			},
			Columns: []Column{
				{Header: "Invoice", Accessor: "invoice_id"},
				{Header: "Date", Accessor: "date"},
				{Header: "Amount", Accessor: "amount"},
				{Header: "Method", Accessor: "method"},
				{Header: "Status", Accessor: "status"},
				{Header: "Reference", Accessor: "reference"},
			},
		},
		model.CollectionSchedules: {
			Title: "Schedules",
			Fields: []Field{
				{Name: "doctor_id", Label: "Doctor", Kind: KindNumber},
				{Name: "day_of_week", Label: "Day", Kind: KindSelect, Options: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}},
				{Name: "start_time", Label: "Start Time", Kind: KindText},
				{Name: "end_time", Label: "End Time", Kind: KindText},
				{Name: "max_patients", Label: "Max Patients", Kind: KindNumber},
				{Name: "current_bookings", Label: "Current Bookings", Kind: KindNumber},
				{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"available", "fully-booked", "off-duty"}},
			},
			Columns: []Column{
				{Header: "Doctor", Accessor: "doctor_id"},
				{Header: "Day", Accessor: "day_of_week"},
				{Header: "Start Time", Accessor: "start_time"},
				{Header: "End Time", Accessor: "end_time"},
				{Header: "Max Patients", Accessor: "max_patients"},
				{Header: "Current Bookings", Accessor: "current_bookings"},
				{Header: "Status", Accessor: "status"},
			},
		},
		model.CollectionNotifications: {
			Title: "Notifications",
			Fields: []Field{
				{Name: "title", Label: "Title", Kind: KindText},
				{Name: "message", Label: "Message", Kind: KindText},
				{Name: "type", Label: "Type", Kind: KindSelect, Options: []string{"appointment", "reminder", "system", "alert"}},
				{Name: "priority", Label: "Priority", Kind: KindSelect, Options: []string{"high", "medium", "low"}},
				{Name: "timestamp", Label: "Timestamp", Kind: KindText},
				{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"unread", "read"}},
				{Name: "recipient", Label: "Recipient", Kind: KindText},
			},
			Columns: []Column{
				{Header: "Title", Accessor: "title"},
				{Header: "Message", Accessor: "message"},
				{Header: "Type", Accessor: "type"},
				{Header: "Priority", Accessor: "priority"},
				{Header: "Timestamp", Accessor: "timestamp"},
				{Header: "Status", Accessor: "status"},
				{Header: "Recipient", Accessor: "recipient"},
			},
		},
	}
}
