// Package auth drives the two-step email+code login against the backend.
// The flow is an explicit tagged-state machine rather than a pile of
// booleans: Email -> Code -> Done, with an explicit way back.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/kovawear/kova/internal/api"
)

// State is the current step of the login flow.
type State int

const (
	// StateEmail is the initial step: waiting for an email address.
	StateEmail State = iota
	// StateCode means a code was sent and the flow awaits it.
	StateCode
	// StateDone means credentials were obtained and stored.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateEmail:
		return "email"
	case StateCode:
		return "code"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// ErrInFlight is returned when a submission arrives while a send or verify
// call is still outstanding. The outstanding call is never aborted; new
// ones are simply refused until it settles.
var ErrInFlight = errors.New("a request is already in flight")

// Fallback messages when the backend supplies no error detail.
const (
	sendFallback   = "Failed to send code. Please try again."
	verifyFallback = "Invalid code. Please try again."
)

// Authenticator is the slice of the API client the flow needs.
type Authenticator interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) (*api.Credentials, error)
}

// CredentialSink receives the credentials on successful verification.
type CredentialSink interface {
	SetCredentials(token string, isAdmin bool, email string)
}

// Flow is the login state machine. Safe for use from TUI command
// goroutines; all transitions are serialized.
type Flow struct {
	mu      sync.Mutex
	state   State
	email   string
	errMsg  string
	busy    bool
	isAdmin bool

	auth Authenticator
	sink CredentialSink
}

// NewFlow builds a flow in StateEmail.
func NewFlow(auth Authenticator, sink CredentialSink) *Flow {
	return &Flow{auth: auth, sink: sink}
}

// State returns the current step.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Email returns the address retained after a successful send, for display
// and for the verify request.
func (f *Flow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// ErrMsg returns the user-visible error from the last failed submission.
func (f *Flow) ErrMsg() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Busy reports whether a send or verify call is outstanding.
func (f *Flow) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// IsAdmin reports the admin flag obtained at verification; valid once the
// flow reaches StateDone.
func (f *Flow) IsAdmin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.isAdmin
}

// begin claims the busy flag for a submission in the expected state.
func (f *Flow) begin(want State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return ErrInFlight
	}
	if f.state != want {
		return errors.New("login flow is not at the " + want.String() + " step")
	}
	f.busy = true
	return nil
}

// SubmitEmail sends a login code to the address. On success the flow moves
// to StateCode; on failure it stays at StateEmail with a user-visible error.
func (f *Flow) SubmitEmail(ctx context.Context, email string) error {
	if err := f.begin(StateEmail); err != nil {
		return err
	}

	email = strings.TrimSpace(email)
	err := f.auth.SendOTP(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.errMsg = userMessage(err, sendFallback)
		return err
	}
	f.state = StateCode
	f.email = email
	f.errMsg = ""
	return nil
}

// SubmitCode verifies the emailed code. On success the credentials are
// written to the sink and the flow reaches StateDone; on failure it stays
// at StateCode with a user-visible error.
func (f *Flow) SubmitCode(ctx context.Context, code string) error {
	if err := f.begin(StateCode); err != nil {
		return err
	}

	f.mu.Lock()
	email := f.email
	f.mu.Unlock()

	creds, err := f.auth.VerifyOTP(ctx, email, strings.TrimSpace(code))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.errMsg = userMessage(err, verifyFallback)
		return err
	}
	f.sink.SetCredentials(creds.AccessToken, creds.IsAdmin, email)
	f.state = StateDone
	f.isAdmin = creds.IsAdmin
	f.errMsg = ""
	return nil
}

// Back returns from StateCode to StateEmail ("wrong email"), discarding
// any error. No-op while a call is in flight or in other states.
func (f *Flow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy || f.state != StateCode {
		return
	}
	f.state = StateEmail
	f.errMsg = ""
}

// userMessage extracts the backend detail when present, otherwise the
// given fallback. Transport errors also map to the fallback.
func userMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
