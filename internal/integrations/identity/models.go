package identity

// Worker модель работника из IdentityService
type Worker struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Phone      string `json:"phone"`
	Pincode    string `json:"pincode"`
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
