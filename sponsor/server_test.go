package sponsor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/enoki"
)

type testServer struct {
	*testService
	ts     *httptest.Server
	client *Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	svc := newTestService(t)
	cfg := DefaultConfig()
	cfg.AllowedOrigins = []string{"https://vote.example"}
	srv, err := NewServer(svc.Service, cfg, WithServerLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client, err := NewClient(ts.URL, withHTTPClient(ts.Client()), WithClientLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return &testServer{testService: svc, ts: ts, client: client}
}

func TestServerSponsorAndExecute(t *testing.T) {
	srv := newTestServer(t)
	sender := types.MustStringToAddress("0xa1")
	sig := testSignature(t)

	srv.upstream.EXPECT().CreateSponsoredTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req enoki.SponsorRequest) (*enoki.SponsoredTransaction, error) {
			require.Equal(t, "AQID", req.TransactionBlockKindBytes)
			require.Equal(t, []string{sender.String()}, req.AllowedAddresses)
			return &enoki.SponsoredTransaction{Bytes: "BAUG", Digest: "d1"}, nil
		})
	sponsored, err := srv.client.Sponsor(context.Background(), types.UnsignedBallot{1, 2, 3}, sender)
	require.NoError(t, err)
	require.Equal(t, types.SponsoredBallot{Bytes: []byte{4, 5, 6}, Digest: "d1"}, sponsored)

	srv.upstream.EXPECT().ExecuteSponsoredTransaction(gomock.Any(), "d1", sig.String()).
		Return(&enoki.ExecutedTransaction{Digest: "d1"}, nil)
	result, err := srv.client.Execute(context.Background(), sponsored.Digest, sig)
	require.NoError(t, err)
	require.Equal(t, types.ExecutionResult{Digest: "d1", Status: types.ExecutionSuccess}, result)

	_, err = srv.client.Execute(context.Background(), sponsored.Digest, sig)
	require.ErrorIs(t, err, ErrReplayedDigest)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, http.StatusConflict, svcErr.Status)
	require.Equal(t, phaseExecute, svcErr.Phase)
}

func TestServerUpstreamFailureKeepsFixedMessage(t *testing.T) {
	srv := newTestServer(t)
	srv.upstream.EXPECT().CreateSponsoredTransaction(gomock.Any(), gomock.Any()).
		Return(nil, enoki.ErrUnauthorized)

	_, err := srv.client.Sponsor(context.Background(), types.UnsignedBallot{1}, types.MustStringToAddress("0x1"))
	require.ErrorIs(t, err, ErrUpstream)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, http.StatusInternalServerError, svcErr.Status)
	require.Equal(t, "Failed to sponsor transaction", svcErr.Message)
	require.Equal(t, CodeUpstreamFailure, svcErr.Code)
	require.Equal(t, phaseSponsor, svcErr.Phase)
}

func TestServerRejectsMalformedBodies(t *testing.T) {
	srv := newTestServer(t)
	for _, tc := range []struct {
		desc, path, body string
	}{
		{"not json", "/sponsor/transaction", `{`},
		{"missing sender", "/sponsor/transaction", `{"transactionKindBytes":"AQID"}`},
		{"bad sender", "/sponsor/transaction", `{"transactionKindBytes":"AQID","sender":"alice"}`},
		{"bad base64", "/sponsor/transaction", `{"transactionKindBytes":"***","sender":"0x1"}`},
		{"missing signature", "/sponsor/execute", `{"digest":"d1"}`},
		{"bad signature", "/sponsor/execute", `{"digest":"d1","signature":"AQID"}`},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			resp, err := srv.ts.Client().Post(srv.ts.URL+tc.path, "application/json", strings.NewReader(tc.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, CodeMalformedRequest, body.Code)
			require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
		})
	}
}

func TestServerHealthAndCORS(t *testing.T) {
	srv := newTestServer(t)
	resp, err := srv.ts.Client().Get(srv.ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, srv.ts.URL+"/sponsor/transaction", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://vote.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err = srv.ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "https://vote.example", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	resp, err = srv.ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
