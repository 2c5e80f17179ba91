package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/marketdesk/sellerctl/session"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful login: the issued token plus the
// seller it belongs to.
type LoginResponse struct {
	Token  string                 `json:"token"`
	Seller *session.SellerProfile `json:"seller"`
}

// Registration is the register request body. The backend validates the
// business fields; the console just passes them through.
type Registration struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Password          string `json:"password"`
	BusinessName      string `json:"businessName"`
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
}

// Login authenticates the seller. A 401 here means wrong credentials and is
// returned to the caller as a plain RequestError - the forced-logout path is
// never taken for the login endpoint, so a failed attempt cannot bounce the
// user around.
//
// Installing the returned token and profile into the session controller is
// the caller's job; the client itself never mutates session state on success.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, loginPath, Credentials{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	if out.Token == "" || out.Seller == nil {
		return nil, errors.New("[Client.Login] backend returned an incomplete login response")
	}
	return &out, nil
}

// Register creates a new seller account. The seller still has to log in
// afterwards; registration issues no token.
func (c *Client) Register(ctx context.Context, registration Registration) error {
	return c.do(ctx, http.MethodPost, registerPath, registration, nil)
}
