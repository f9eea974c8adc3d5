package sponsor

import (
	"encoding/base64"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/enoki"
)

// Phase codes reported to callers in error bodies.
const (
	CodeUpstreamFailure  = "upstream_failure"
	CodeMalformedRequest = "malformed_request"
	CodeRateLimited      = "rate_limited"
	CodeReplayedDigest   = "replayed_digest"
)

// Fixed messages of failed requests.
const (
	msgSponsorFailed = "Failed to sponsor transaction"
	msgExecuteFailed = "Failed to execute transaction"
)

type transactionRequest struct {
	TransactionKindBytes string `json:"transactionKindBytes"`
	Sender               string `json:"sender"`
}

type transactionResponse struct {
	Bytes  string `json:"bytes"`
	Digest string `json:"digest"`
}

type executeRequest struct {
	Digest    string `json:"digest"`
	Signature string `json:"signature"`
}

type executeResponse struct {
	Digest  string         `json:"digest"`
	Effects *enoki.Effects `json:"effects,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Phase string `json:"phase"`
	Code  string `json:"code"`
}

func enokiSponsorRequest(kind []byte, sender types.Address, targets []string) enoki.SponsorRequest {
	return enoki.SponsorRequest{
		TransactionBlockKindBytes: base64.StdEncoding.EncodeToString(kind),
		Sender:                    sender.String(),
		AllowedAddresses:          []string{sender.String()},
		AllowedMoveCallTargets:    targets,
	}
}

func effectsOf(result types.ExecutionResult) *enoki.Effects {
	return &enoki.Effects{Status: enoki.ExecutionStatus{
		Status: string(result.Status),
		Error:  result.Error,
	}}
}
