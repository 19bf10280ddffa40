package models

// LoginRequest is the credential payload sent to the backend.
type LoginRequest struct {
	EmailID  string `json:"emailId"`
	Password string `json:"password"`
}

// LoginResponse is what the backend returns on a successful login.
// AccessToken is an opaque bearer token from the console's point of view;
// only its expiry claim is read locally, and only as a UX check.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ResourceID  uint64 `json:"resourceId"`
	EmailID     string `json:"emailId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Role        Role   `json:"role"`
	RoleName    string `json:"roleName"`
	ExpiresIn   int64  `json:"expiresIn"`
}
