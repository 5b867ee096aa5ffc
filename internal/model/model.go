package model

// Collection names, one store collection per entity kind.
const (
	CollectionPatients      = "patients"
	CollectionDoctors       = "doctors"
	CollectionAppointments  = "appointments"
	CollectionConsultations = "consultations"
	CollectionTreatments    = "treatments"
	CollectionInvoices      = "invoices"
	CollectionPayments      = "payments"
	CollectionSchedules     = "schedules"
	CollectionNotifications = "notifications"
)

// Collections lists every known collection. Open creates each one if absent.
func Collections() []string {
	return []string{
		CollectionPatients,
		CollectionDoctors,
		CollectionAppointments,
		CollectionConsultations,
		CollectionTreatments,
		CollectionInvoices,
		CollectionPayments,
		CollectionSchedules,
		CollectionNotifications,
	}
}

// Pagination represents common pagination parameters
type Pagination struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"page_size"`
}
