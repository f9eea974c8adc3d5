package enoki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/votedapp/sponsorvote/log"
)

func newTestClient(t *testing.T, ts *httptest.Server) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.URL = ts.URL
	cfg.APIKey = "secret"
	client, err := NewClient(cfg, withCustomHttpClient(ts.Client()), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := NewClient(DefaultConfig())
		require.ErrorIs(t, err, ErrUnauthorized)
	})
	t.Run("add https if missing", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.URL = "sponsor.local"
		cfg.APIKey = "k"
		client, err := NewClient(cfg)
		require.NoError(t, err)
		require.Equal(t, "https://sponsor.local", client.baseURL.String())
	})
}

func TestCreateSponsoredTransaction(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/transaction-blocks/sponsor", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var req SponsorRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "testnet", req.Network)
		require.Equal(t, "AQID", req.TransactionBlockKindBytes)
		require.Equal(t, []string{"0x1"}, req.AllowedAddresses)
		require.Equal(t, []string{"0x2::voting_dapp::vote"}, req.AllowedMoveCallTargets)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{"bytes":"BAUG","digest":"abc"}}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts)
	ctx := log.WithRequestID(context.Background(), "req-1")
	res, err := client.CreateSponsoredTransaction(ctx, SponsorRequest{
		TransactionBlockKindBytes: "AQID",
		Sender:                    "0x1",
		AllowedAddresses:          []string{"0x1"},
		AllowedMoveCallTargets:    []string{"0x2::voting_dapp::vote"},
	})
	require.NoError(t, err)
	require.Equal(t, &SponsoredTransaction{Bytes: "BAUG", Digest: "abc"}, res)
}

func TestExecuteSponsoredTransaction(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/transaction-blocks/sponsor/abc", r.URL.Path)
		var req ExecuteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "c2ln", req.Signature)
		w.Write([]byte(`{"data":{"digest":"abc","effects":{"status":{"status":"success"}}}}`))
	}))
	defer ts.Close()

	res, err := newTestClient(t, ts).ExecuteSponsoredTransaction(context.Background(), "abc", "c2ln")
	require.NoError(t, err)
	require.Equal(t, "abc", res.Digest)
	require.NotNil(t, res.Effects)
	require.Equal(t, "success", res.Effects.Status.Status)
}

func TestErrorsAreNotRetried(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		status int
		body   string
		kind   error
		code   string
	}{
		{"bad request", http.StatusBadRequest, `{"errors":[{"code":"invalid_sender","message":"nope"}]}`, ErrInvalidRequest, "invalid_sender"},
		{"unauthorized", http.StatusUnauthorized, `{"errors":[{"code":"unauthorized","message":"bad key"}]}`, ErrUnauthorized, "unauthorized"},
		{"not found", http.StatusNotFound, `not here`, ErrNotFound, ""},
		{"internal", http.StatusInternalServerError, `{}`, ErrUnavailable, ""},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			var calls atomic.Int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			_, err := newTestClient(t, ts).CreateSponsoredTransaction(context.Background(), SponsorRequest{Sender: "0x1"})
			require.ErrorIs(t, err, tc.kind)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tc.status, apiErr.Status)
			require.Equal(t, tc.code, apiErr.Code)
			require.EqualValues(t, 1, calls.Load())
		})
	}
}

func TestUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	client := newTestClient(t, ts)
	ts.Close()

	_, err := client.ExecuteSponsoredTransaction(context.Background(), "abc", "sig")
	require.ErrorIs(t, err, ErrUnavailable)
}
