package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kovawear/kova/internal/domain"
)

// Credentials is the reply from the verify-code endpoint.
type Credentials struct {
	AccessToken string `json:"access_token"`
	IsAdmin     bool   `json:"is_admin"`
}

// SendOTP asks the backend to email a one-time code to the address.
func (c *Client) SendOTP(ctx context.Context, email string) error {
	query := url.Values{"email": {email}}
	return c.do(ctx, http.MethodPost, "/auth/send-otp", query, nil, nil)
}

// VerifyOTP exchanges an emailed code for a bearer credential.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*Credentials, error) {
	query := url.Values{"email": {email}, "otp": {otp}}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/verify-otp", query, nil, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile replaces the authenticated user's contact details.
func (c *Client) UpdateProfile(ctx context.Context, firstName, lastName, phone string) error {
	body := map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"phone":      phone,
	}
	return c.do(ctx, http.MethodPut, "/users/profile", nil, body, nil)
}
