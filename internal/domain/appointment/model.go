package appointment

// Appointment maps to the appointments table. The id and status are assigned
// by the store; the insert path never writes status. PatientMobile is a
// denormalized copy of the patient's phone at booking time and is not
// re-derived later.
type Appointment struct {
	ID            int    `json:"appointment_id"`
	PatientID     int    `json:"patient_id"`
	DoctorID      int    `json:"doctor_id"`
	PatientMobile string `json:"patient_mobile"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
}

// View is the search projection: an appointment joined with the patient and
// doctor names instead of their raw ids.
type View struct {
	AppointmentID int    `json:"appointment_id"`
	PatientName   string `json:"patient_name"`
	DoctorName    string `json:"doctor_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
}

// Criteria narrows Search with AND semantics. Zero values impose no
// constraint; with all fields unset every appointment matches.
type Criteria struct {
	// PatientName matches case-insensitively as a substring.
	PatientName string
	// AppointmentID matches exactly; 0 means unset.
	AppointmentID int
	// DoctorName matches case-insensitively as a substring.
	DoctorName string
	// Date matches exactly against the stored string.
	Date string
}
