package model

type ScheduleStatus string

const (
	ScheduleStatusAvailable   ScheduleStatus = "available"
	ScheduleStatusFullyBooked ScheduleStatus = "fully-booked"
	ScheduleStatusOffDuty     ScheduleStatus = "off-duty"
)

// Schedule carries currentBookings and maxPatients as independent
// fields. currentBookings <= maxPatients is a display convention, not
// an enforced invariant.
type Schedule struct {
	ID              int64  `json:"id"`
	DoctorID        int64  `json:"doctor_id"`
	DayOfWeek       string `json:"day_of_week"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	MaxPatients     int    `json:"max_patients"`
	CurrentBookings int    `json:"current_bookings"`
	Status          string `json:"status"`
}

type NotificationType string

const (
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeReminder    NotificationType = "reminder"
	NotificationTypeSystem      NotificationType = "system"
	NotificationTypeAlert       NotificationType = "alert"
)

type NotificationPriority string

const (
	NotificationPriorityHigh   NotificationPriority = "high"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityLow    NotificationPriority = "low"
)

type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Recipient string `json:"recipient"`
}
