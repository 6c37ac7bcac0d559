package dto

// OptOutRequest is the body of POST /api/optouts.
type OptOutRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Template string `json:"template" validate:"required"`
	Reason   string `json:"reason" validate:"max=500"`
}
