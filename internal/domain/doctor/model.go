package doctor

// Doctor maps to the doctors table. Doctors are pre-seeded; this system
// never creates or updates them. The id is not part of the listing payload.
type Doctor struct {
	ID              int     `json:"-"`
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	ConsultationFee float64 `json:"consultation_fee"`
	AvailableFrom   string  `json:"available_from"`
	AvailableTo     string  `json:"available_to"`
	WorkingDays     string  `json:"working_days"`
}
