package models

// UserProfile is the authenticated vehicle owner's account as reported by
// the billing service. WalletBalance and DueAmount are server-authoritative;
// the client displays them and refreshes after mutating actions, it never
// derives them from the toll ledger.
type UserProfile struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phone_number"`
	VehicleNumber string  `json:"vehicle_number"`
	AddressLine1  string  `json:"address_line1"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
	Pin           string  `json:"pin"`
	WalletBalance Amount  `json:"wallet_balance"`
	DueAmount     Amount  `json:"due_amount"`
	CreatedAt     string  `json:"created_at"`
}

// Credentials is a login request body for both user and admin login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the identity block inside a successful user login payload.
type LoginUser struct {
	Email         string `json:"email"`
	VehicleNumber string `json:"vehicle_number"`
}

// LoginResult is the successful user login payload.
type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// RegisterRequest is the user registration body. Field names follow the
// wire contract exactly.
type RegisterRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phone_number"`
	VehicleNumber string `json:"vehicle_number"`
	AddressLine1  string `json:"address_line1"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	Pin           string `json:"pin"`
}

// MessageResponse is the generic {message} payload returned by several
// endpoints (registration, deletion, login failures).
type MessageResponse struct {
	Message string `json:"message"`
}

// AddFundsRequest is a wallet top-up request.
type AddFundsRequest struct {
	Email  string  `json:"email"`
	Amount float64 `json:"amount"`
}

// AddFundsResponse carries the authoritative post-top-up balance. It
// supersedes whatever balance the client held before submission.
type AddFundsResponse struct {
	NewBalance Amount `json:"newBalance"`
}
