package ledgersim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/enoki"
	"github.com/votedapp/sponsorvote/ledger"
)

const (
	sponsorPath = "/v1/transaction-blocks/sponsor"
	maxBodySize = 1 << 20

	rpcParseError     = -32700
	rpcInvalidRequest = -32600
	rpcMethodNotFound = -32601
	rpcInvalidParams  = -32602
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      uint64            `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type rpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      uint64           `json:"id"`
	Result  any              `json:"result,omitempty"`
	Error   *ledger.RPCError `json:"error,omitempty"`
}

type voterField struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

type ServerOpt func(*Server)

func WithServerLogger(logger *zap.Logger) ServerOpt {
	return func(s *Server) {
		s.logger = logger
	}
}

// Server exposes the sponsorship API at /v1/transaction-blocks/sponsor and the JSON-RPC
// read API at /.
type Server struct {
	logger  *zap.Logger
	ledger  *Ledger
	sponsor *Sponsor
	handler http.Handler
}

func NewServer(l *Ledger, sponsor *Sponsor, opts ...ServerOpt) *Server {
	s := &Server{
		logger:  zap.NewNop(),
		ledger:  l,
		sponsor: sponsor,
	}
	for _, opt := range opts {
		opt(s)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+sponsorPath, s.authorized(s.createSponsored))
	mux.HandleFunc("POST "+sponsorPath+"/{digest}", s.authorized(s.executeSponsored))
	mux.HandleFunc("POST /{$}", s.rpc)
	s.handler = mux
	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on lis until ctx is canceled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	s.logger.Info("ledger simulator listening", zap.Stringer("address", lis.Addr()))
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(lis) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !s.sponsor.Authorized(key) {
			s.fail(w, ErrUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) createSponsored(w http.ResponseWriter, r *http.Request) {
	var req enoki.SponsorRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		s.fail(w, fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}
	res, err := s.sponsor.Create(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"data": res})
}

func (s *Server) executeSponsored(w http.ResponseWriter, r *http.Request) {
	var req enoki.ExecuteRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		s.fail(w, fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}
	res, err := s.sponsor.Execute(r.PathValue("digest"), req.Signature)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"data": res})
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status, code := http.StatusBadRequest, "invalid_request"
	switch {
	case errors.Is(err, ErrUnauthorized):
		status, code = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, ErrUnknownDigest):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, ErrExpired):
		code = "expired"
	case errors.Is(err, ErrBadSignature):
		code = "invalid_signature"
	case errors.Is(err, ErrNotAllowed):
		code = "not_allowed"
	}
	s.logger.Debug("sponsorship request rejected", zap.String("code", code), zap.Error(err))
	s.respond(w, status, map[string]any{"errors": []apiError{{Code: code, Message: err.Error()}}})
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Debug("write response", zap.Error(err))
	}
}

func (s *Server) rpc(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		s.respond(w, http.StatusOK, rpcResponse{JSONRPC: "2.0", Error: &ledger.RPCError{
			Code: rpcParseError, Message: err.Error(),
		}})
		return
	}
	res := rpcResponse{JSONRPC: "2.0", ID: req.ID}
	var err *ledger.RPCError
	switch req.Method {
	case ledger.MethodGetObject:
		res.Result, err = s.getObject(req.Params)
	case ledger.MethodGetDynamicFieldObject:
		res.Result, err = s.getDynamicField(req.Params)
	case "":
		err = &ledger.RPCError{Code: rpcInvalidRequest, Message: "missing method"}
	default:
		err = &ledger.RPCError{Code: rpcMethodNotFound, Message: "Method not found: " + req.Method}
	}
	res.Error = err
	s.respond(w, http.StatusOK, res)
}

func objectParam(params []json.RawMessage, i int) (types.ObjectID, *ledger.RPCError) {
	if len(params) <= i {
		return types.ObjectID{}, &ledger.RPCError{Code: rpcInvalidParams, Message: "missing object id"}
	}
	var raw string
	if err := json.Unmarshal(params[i], &raw); err != nil {
		return types.ObjectID{}, &ledger.RPCError{Code: rpcInvalidParams, Message: err.Error()}
	}
	id, err := types.StringToAddress(raw)
	if err != nil {
		return types.ObjectID{}, &ledger.RPCError{Code: rpcInvalidParams, Message: err.Error()}
	}
	return id, nil
}

func notExists(id types.ObjectID) *ledger.ObjectResponse {
	return &ledger.ObjectResponse{Error: &ledger.ObjectError{Code: ledger.CodeNotExists, ObjectID: id.String()}}
}

func (s *Server) getObject(params []json.RawMessage) (*ledger.ObjectResponse, *ledger.RPCError) {
	id, rpcErr := objectParam(params, 0)
	if rpcErr != nil {
		return nil, rpcErr
	}
	snapshot, registry, version, err := s.ledger.Poll(id)
	if err != nil {
		return notExists(id), nil
	}
	voters, err := s.ledger.Voters(registry)
	if err != nil {
		return notExists(id), nil
	}
	fields := ledger.PollFields{
		Question:   snapshot.Question,
		Options:    snapshot.Options,
		VoteCounts: make([]ledger.U64, len(snapshot.VoteCounts)),
		Voters: ledger.TableField{
			Type: "0x2::table::Table<address, bool>",
			Fields: ledger.TableFields{
				ID:   ledger.UID{ID: registry.String()},
				Size: ledger.U64(voters),
			},
		},
	}
	for i, c := range snapshot.VoteCounts {
		fields.VoteCounts[i] = ledger.U64(c)
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, &ledger.RPCError{Code: rpcInvalidRequest, Message: err.Error()}
	}
	return &ledger.ObjectResponse{Data: &ledger.ObjectData{
		ObjectID: id.String(),
		Version:  strconv.FormatUint(version, 10),
		Type:     s.ledger.PollType(),
		Content: &ledger.MoveContent{
			DataType: ledger.DataTypeMoveObject,
			Type:     s.ledger.PollType(),
			Fields:   raw,
		},
	}}, nil
}

func (s *Server) getDynamicField(params []json.RawMessage) (*ledger.ObjectResponse, *ledger.RPCError) {
	parent, rpcErr := objectParam(params, 0)
	if rpcErr != nil {
		return nil, rpcErr
	}
	if len(params) < 2 {
		return nil, &ledger.RPCError{Code: rpcInvalidParams, Message: "missing field name"}
	}
	var name ledger.DynamicFieldName
	if err := json.Unmarshal(params[1], &name); err != nil || name.Type != ledger.DynamicFieldTypeAddress {
		return nil, &ledger.RPCError{Code: rpcInvalidParams, Message: "field name must be an address"}
	}
	voter, err := types.StringToAddress(name.Value)
	if err != nil {
		return nil, &ledger.RPCError{Code: rpcInvalidParams, Message: err.Error()}
	}
	voted, err := s.ledger.HasVoted(parent, voter)
	if err != nil {
		return notExists(parent), nil
	}
	if !voted {
		return &ledger.ObjectResponse{Error: &ledger.ObjectError{
			Code:     ledger.CodeDynamicFieldNotFound,
			ObjectID: parent.String(),
		}}, nil
	}
	raw, err := json.Marshal(voterField{Name: voter.String(), Value: true})
	if err != nil {
		return nil, &ledger.RPCError{Code: rpcInvalidRequest, Message: err.Error()}
	}
	fieldType := "0x2::dynamic_field::Field<address, bool>"
	return &ledger.ObjectResponse{Data: &ledger.ObjectData{
		ObjectID: fieldID(parent, voter).String(),
		Version:  "1",
		Type:     fieldType,
		Content: &ledger.MoveContent{
			DataType: ledger.DataTypeMoveObject,
			Type:     fieldType,
			Fields:   raw,
		},
	}}, nil
}
