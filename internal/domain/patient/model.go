package patient

// Patient maps to the patients table. The id is assigned by the store on
// creation; (name, phone) is the lookup key used by the registry.
type Patient struct {
	ID      int    `json:"patient_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
}
