package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paystream-chain/paystream/x/session/types"
)

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer
// interface for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) Session(ctx context.Context, req *types.QuerySessionRequest) (*types.QuerySessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	session, err := q.GetSession(ctx, req.SessionId)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "session %d not found", req.SessionId)
	}
	return &types.QuerySessionResponse{Session: session}, nil
}

func (q queryServer) Sessions(ctx context.Context, req *types.QuerySessionsRequest) (*types.QuerySessionsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	limit := uint64(defaultPaginationLimit)
	offset := uint64(0)
	if req.Pagination != nil {
		if req.Pagination.Limit > 0 {
			limit = req.Pagination.Limit
		}
		if limit > maxPaginationLimit {
			limit = maxPaginationLimit
		}
		offset = req.Pagination.Offset
	}

	var sessions []types.Session
	var skipped, total uint64
	collect := func(session types.Session) (bool, error) {
		if req.Depositor != "" && session.Depositor != req.Depositor {
			return false, nil
		}
		if req.Host != "" && session.Host != req.Host {
			return false, nil
		}
		total++
		if skipped < offset {
			skipped++
			return false, nil
		}
		if uint64(len(sessions)) < limit {
			sessions = append(sessions, session)
		}
		return false, nil
	}

	// Use the party indexes when a filter narrows the scan.
	var err error
	switch {
	case req.Depositor != "":
		var depositor sdk.AccAddress
		depositor, err = sdk.AccAddressFromBech32(req.Depositor)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid depositor address")
		}
		err = q.IterateSessionsByParty(ctx, SessionsByDepositorPrefix, depositor, collect)
	case req.Host != "":
		var host sdk.AccAddress
		host, err = sdk.AccAddressFromBech32(req.Host)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid host address")
		}
		err = q.IterateSessionsByParty(ctx, SessionsByHostPrefix, host, collect)
	default:
		err = q.IterateSessions(ctx, collect)
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QuerySessionsResponse{
		Sessions:   sessions,
		Pagination: &query.PageResponse{Total: total},
	}, nil
}

func (q queryServer) SessionProofs(ctx context.Context, req *types.QuerySessionProofsRequest) (*types.QuerySessionProofsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if _, err := q.GetSession(ctx, req.SessionId); err != nil {
		return nil, status.Errorf(codes.NotFound, "session %d not found", req.SessionId)
	}
	proofs, err := q.GetSessionProofs(ctx, req.SessionId)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QuerySessionProofsResponse{Proofs: proofs}, nil
}

func (q queryServer) Balance(ctx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid owner address")
	}
	if err := sdk.ValidateDenom(req.Denom); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid denom")
	}
	return &types.QueryBalanceResponse{Balance: q.GetLedgerBalance(ctx, owner, req.Denom)}, nil
}

func (q queryServer) Earnings(ctx context.Context, req *types.QueryEarningsRequest) (*types.QueryEarningsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	host, err := sdk.AccAddressFromBech32(req.Host)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid host address")
	}
	if err := sdk.ValidateDenom(req.Denom); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid denom")
	}
	return &types.QueryEarningsResponse{Earnings: q.GetEarnings(ctx, host, req.Denom)}, nil
}

func (q queryServer) TreasuryAccrual(ctx context.Context, req *types.QueryTreasuryAccrualRequest) (*types.QueryTreasuryAccrualResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if err := sdk.ValidateDenom(req.Denom); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid denom")
	}
	return &types.QueryTreasuryAccrualResponse{Accrued: q.GetTreasuryAccrual(ctx, req.Denom)}, nil
}
