package handler

const (
	errServerError        = "Server error"
	errContactNotFound    = "Contact not found"
	errEmailPasswordReq   = "Email & password required"
	errPasswordsMismatch  = "Passwords do not match"
	errEmailRegistered    = "Email already registered"
	errInvalidCredentials = "Invalid credentials"
	errNamePhoneRequired  = "Name and phone required"
	errInvalidBody        = "Invalid request body"
)
