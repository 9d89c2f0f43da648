package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovawear/kova/internal/api"
)

type fakeAuth struct {
	mu          sync.Mutex
	sendCalls   []string
	verifyCalls [][2]string
	sendErr     error
	verifyErr   error
	creds       api.Credentials

	// When set, SendOTP blocks until released; for busy-guard tests.
	block chan struct{}
}

func (f *fakeAuth) SendOTP(ctx context.Context, email string) error {
	f.mu.Lock()
	f.sendCalls = append(f.sendCalls, email)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	return f.sendErr
}

func (f *fakeAuth) VerifyOTP(ctx context.Context, email, otp string) (*api.Credentials, error) {
	f.mu.Lock()
	f.verifyCalls = append(f.verifyCalls, [2]string{email, otp})
	f.mu.Unlock()
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	creds := f.creds
	return &creds, nil
}

type fakeSink struct {
	token   string
	isAdmin bool
	email   string
	calls   int
}

func (f *fakeSink) SetCredentials(token string, isAdmin bool, email string) {
	f.token = token
	f.isAdmin = isAdmin
	f.email = email
	f.calls++
}

func TestFlow_HappyPath(t *testing.T) {
	fake := &fakeAuth{creds: api.Credentials{AccessToken: "tok-1", IsAdmin: true}}
	sink := &fakeSink{}
	flow := NewFlow(fake, sink)

	require.Equal(t, StateEmail, flow.State())

	require.NoError(t, flow.SubmitEmail(context.Background(), "me@kova.example"))
	assert.Equal(t, StateCode, flow.State())
	assert.Equal(t, "me@kova.example", flow.Email())
	assert.Empty(t, flow.ErrMsg())

	require.NoError(t, flow.SubmitCode(context.Background(), "123456"))
	assert.Equal(t, StateDone, flow.State())
	assert.True(t, flow.IsAdmin())

	assert.Equal(t, "tok-1", sink.token)
	assert.True(t, sink.isAdmin)
	assert.Equal(t, "me@kova.example", sink.email)
	assert.Equal(t, [2]string{"me@kova.example", "123456"}, fake.verifyCalls[0])
}

func TestSubmitEmail_TrimsWhitespace(t *testing.T) {
	fake := &fakeAuth{}
	flow := NewFlow(fake, &fakeSink{})

	require.NoError(t, flow.SubmitEmail(context.Background(), "  me@kova.example \n"))
	assert.Equal(t, "me@kova.example", fake.sendCalls[0])
	assert.Equal(t, "me@kova.example", flow.Email())
}

func TestSubmitCode_TrimsWhitespace(t *testing.T) {
	fake := &fakeAuth{}
	flow := NewFlow(fake, &fakeSink{})
	require.NoError(t, flow.SubmitEmail(context.Background(), "me@kova.example"))

	require.NoError(t, flow.SubmitCode(context.Background(), " 123456 "))
	assert.Equal(t, "123456", fake.verifyCalls[0][1])
}

func TestSubmitEmail_FailureStaysAtEmailWithDetail(t *testing.T) {
	fake := &fakeAuth{sendErr: &api.APIError{Status: http.StatusBadRequest, Detail: "mail rejected"}}
	flow := NewFlow(fake, &fakeSink{})

	err := flow.SubmitEmail(context.Background(), "me@kova.example")
	require.Error(t, err)
	assert.Equal(t, StateEmail, flow.State())
	assert.Equal(t, "mail rejected", flow.ErrMsg())
}

func TestSubmitEmail_TransportFailureUsesFallbackMessage(t *testing.T) {
	fake := &fakeAuth{sendErr: errors.New("connection refused")}
	flow := NewFlow(fake, &fakeSink{})

	require.Error(t, flow.SubmitEmail(context.Background(), "me@kova.example"))
	assert.Equal(t, sendFallback, flow.ErrMsg())
}

func TestSubmitCode_FailureStaysAtCode(t *testing.T) {
	fake := &fakeAuth{verifyErr: &api.APIError{Status: http.StatusBadRequest, Detail: "Invalid or expired OTP"}}
	sink := &fakeSink{}
	flow := NewFlow(fake, sink)
	require.NoError(t, flow.SubmitEmail(context.Background(), "me@kova.example"))

	require.Error(t, flow.SubmitCode(context.Background(), "000000"))
	assert.Equal(t, StateCode, flow.State())
	assert.Equal(t, "Invalid or expired OTP", flow.ErrMsg())
	assert.Zero(t, sink.calls, "failed verification must not store credentials")
}

func TestBack_ReturnsToEmailAndClearsError(t *testing.T) {
	fake := &fakeAuth{verifyErr: errors.New("nope")}
	flow := NewFlow(fake, &fakeSink{})
	require.NoError(t, flow.SubmitEmail(context.Background(), "me@kova.example"))
	_ = flow.SubmitCode(context.Background(), "000000")

	flow.Back()
	assert.Equal(t, StateEmail, flow.State())
	assert.Empty(t, flow.ErrMsg())
}

func TestBack_NoOpOutsideCodeState(t *testing.T) {
	flow := NewFlow(&fakeAuth{}, &fakeSink{})
	flow.Back()
	assert.Equal(t, StateEmail, flow.State())
}

func TestBusyGuard_SuppressesDuplicateSubmissions(t *testing.T) {
	fake := &fakeAuth{block: make(chan struct{})}
	flow := NewFlow(fake, &fakeSink{})

	done := make(chan error, 1)
	go func() {
		done <- flow.SubmitEmail(context.Background(), "me@kova.example")
	}()

	// Wait until the first call is in flight.
	for {
		fake.mu.Lock()
		inFlight := len(fake.sendCalls) == 1
		fake.mu.Unlock()
		if inFlight {
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.True(t, flow.Busy())

	// Repeated submission is refused, not queued; no second request.
	err := flow.SubmitEmail(context.Background(), "me@kova.example")
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Len(t, fake.sendCalls, 1)

	close(fake.block)
	require.NoError(t, <-done)
	assert.False(t, flow.Busy())
	assert.Equal(t, StateCode, flow.State())
}

func TestSubmitCode_RefusedInEmailState(t *testing.T) {
	flow := NewFlow(&fakeAuth{}, &fakeSink{})
	err := flow.SubmitCode(context.Background(), "123456")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInFlight)
}
