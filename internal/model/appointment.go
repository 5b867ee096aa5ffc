package model

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment references patients and doctors by id. Referential
// integrity is not enforced; orphan references are resolved to empty
// display names by the resolver.
type Appointment struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patient_id"`
	DoctorID  int64  `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Status    string `json:"status"`
}

type ConsultationStatus string

const (
	ConsultationStatusScheduled  ConsultationStatus = "scheduled"
	ConsultationStatusInProgress ConsultationStatus = "in-progress"
	ConsultationStatusCompleted  ConsultationStatus = "completed"
)

type Consultation struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patient_id"`
	DoctorID  int64  `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Diagnosis string `json:"diagnosis"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type TreatmentStatus string

const (
	TreatmentStatusOngoing   TreatmentStatus = "ongoing"
	TreatmentStatusCompleted TreatmentStatus = "completed"
	TreatmentStatusScheduled TreatmentStatus = "scheduled"
)

type Treatment struct {
	ID            int64   `json:"id"`
	PatientID     int64   `json:"patient_id"`
	DoctorID      int64   `json:"doctor_id"`
	TreatmentType string  `json:"treatment_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	Cost          float64 `json:"cost"`
}
