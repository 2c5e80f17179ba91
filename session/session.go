package session

// Session pairs the bearer token issued at login with the seller profile it
// was issued for. The two halves live and die together: a session missing
// either one is treated as no session at all.
type Session struct {
	Token   string         `json:"token"`
	Profile *SellerProfile `json:"profile"`
}

// Valid reports whether the session carries both a token and a profile.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.Profile != nil
}

// SellerProfile is the backend's seller document. The console treats it as a
// passthrough value; the backend owns its shape and business meaning.
type SellerProfile struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	BusinessName      string `json:"businessName,omitempty"`
	BusinessType      string `json:"businessType,omitempty"`
	GSTNumber         string `json:"gstNumber,omitempty"`
	PANNumber         string `json:"panNumber,omitempty"`
	Address           string `json:"address,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	Country           string `json:"country,omitempty"`
	Pincode           string `json:"pincode,omitempty"`
	BankAccountNumber string `json:"bankAccountNumber,omitempty"`
	BankName          string `json:"bankName,omitempty"`
	IFSCCode          string `json:"ifscCode,omitempty"`
	UPIID             string `json:"upiId,omitempty"`
	Status            string `json:"status,omitempty"`
	IsVerified        bool   `json:"isVerified,omitempty"`
	KYCStatus         string `json:"kycStatus,omitempty"`
}
