package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type providerCall struct {
	path    string
	channel string
	code    string
}

// fakeProvider simulates the verification API, failing the channels listed
// in failChannels and answering checkStatus on verification checks.
func fakeProvider(t *testing.T, failChannels map[string]bool, checkStatus string) (*httptest.Server, *[]providerCall) {
	t.Helper()
	calls := &[]providerCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		call := providerCall{
			path:    r.URL.Path,
			channel: r.PostForm.Get("Channel"),
			code:    r.PostForm.Get("Code"),
		}
		*calls = append(*calls, call)

		if call.channel != "" && failChannels[call.channel] {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"message":"delivery failed"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if call.code != "" {
			w.Write([]byte(`{"status":"` + checkStatus + `"}`))
			return
		}
		w.Write([]byte(`{"status":"pending"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func newTestClient(baseURL string) *Client {
	return &Client{
		AccountSID: "AC_test",
		AuthToken:  "token",
		ServiceID:  "VA_test",
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestRequestVerificationToken_SMSSucceeds(t *testing.T) {
	srv, calls := fakeProvider(t, nil, "")
	c := newTestClient(srv.URL)

	err := c.RequestVerificationToken(context.Background(), "+15551230001")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, "sms", (*calls)[0].channel)
	assert.Equal(t, "/Services/VA_test/Verifications", (*calls)[0].path)
}

func TestRequestVerificationToken_FallsBackToCall(t *testing.T) {
	srv, calls := fakeProvider(t, map[string]bool{"sms": true}, "")
	c := newTestClient(srv.URL)

	err := c.RequestVerificationToken(context.Background(), "+15551230001")
	require.NoError(t, err)

	// exactly one extra attempt, on the voice channel
	require.Len(t, *calls, 2)
	assert.Equal(t, "sms", (*calls)[0].channel)
	assert.Equal(t, "call", (*calls)[1].channel)
}

func TestRequestVerificationToken_BothChannelsFail(t *testing.T) {
	srv, calls := fakeProvider(t, map[string]bool{"sms": true, "call": true}, "")
	c := newTestClient(srv.URL)

	err := c.RequestVerificationToken(context.Background(), "+15551230001")
	require.Error(t, err)
	assert.Len(t, *calls, 2)
}

func TestCheckVerificationToken_Approved(t *testing.T) {
	srv, calls := fakeProvider(t, nil, "approved")
	c := newTestClient(srv.URL)

	ok := c.CheckVerificationToken(context.Background(), "+15551230001", "123456")
	assert.True(t, ok)

	require.Len(t, *calls, 1)
	assert.Equal(t, "/Services/VA_test/VerificationCheck", (*calls)[0].path)
	assert.Equal(t, "123456", (*calls)[0].code)
}

func TestCheckVerificationToken_NotApprovedStatuses(t *testing.T) {
	for _, status := range []string{"pending", "canceled", "denied"} {
		srv, _ := fakeProvider(t, nil, status)
		c := newTestClient(srv.URL)

		ok := c.CheckVerificationToken(context.Background(), "+15551230001", "123456")
		assert.False(t, ok, "status %q must not verify", status)
	}
}

func TestCheckVerificationToken_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(srv.URL)

	// provider outage must read as "not approved", never as approved
	assert.False(t, c.CheckVerificationToken(context.Background(), "+15551230001", "123456"))
}

func TestCheckVerificationToken_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := newTestClient(srv.URL)

	assert.False(t, c.CheckVerificationToken(context.Background(), "+15551230001", "123456"))
}
