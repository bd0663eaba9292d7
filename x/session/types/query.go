package types

import (
	context "context"
	fmt "fmt"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// Query request/response types for the session module.

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QuerySessionRequest struct {
	SessionId uint64 `json:"session_id"`
}

type QuerySessionResponse struct {
	Session Session `json:"session"`
}

type QuerySessionsRequest struct {
	// Depositor and Host optionally filter by party.
	Depositor  string             `json:"depositor,omitempty"`
	Host       string             `json:"host,omitempty"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QuerySessionsResponse struct {
	Sessions   []Session           `json:"sessions"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QuerySessionProofsRequest struct {
	SessionId uint64 `json:"session_id"`
}

type QuerySessionProofsResponse struct {
	Proofs []ProofRecord `json:"proofs"`
}

type QueryBalanceRequest struct {
	Owner string `json:"owner"`
	Denom string `json:"denom"`
}

type QueryBalanceResponse struct {
	Balance math.Int `json:"balance"`
}

type QueryEarningsRequest struct {
	Host  string `json:"host"`
	Denom string `json:"denom"`
}

type QueryEarningsResponse struct {
	Earnings math.Int `json:"earnings"`
}

type QueryTreasuryAccrualRequest struct {
	Denom string `json:"denom"`
}

type QueryTreasuryAccrualResponse struct {
	Accrued math.Int `json:"accrued"`
}

func (m *QueryParamsRequest) Reset()          { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string  { return fmt.Sprintf("%+v", *m) }
func (m *QueryParamsRequest) ProtoMessage()   {}
func (m *QueryParamsRequest) XXX_MessageName() string {
	return "paystream.session.v1.QueryParamsRequest"
}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QueryParamsResponse) ProtoMessage()  {}
func (m *QueryParamsResponse) XXX_MessageName() string {
	return "paystream.session.v1.QueryParamsResponse"
}

func (m *QuerySessionRequest) Reset()         { *m = QuerySessionRequest{} }
func (m *QuerySessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QuerySessionRequest) ProtoMessage()  {}
func (m *QuerySessionRequest) XXX_MessageName() string {
	return "paystream.session.v1.QuerySessionRequest"
}

func (m *QuerySessionResponse) Reset()         { *m = QuerySessionResponse{} }
func (m *QuerySessionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QuerySessionResponse) ProtoMessage()  {}
func (m *QuerySessionResponse) XXX_MessageName() string {
	return "paystream.session.v1.QuerySessionResponse"
}

func (m *QuerySessionsRequest) Reset()         { *m = QuerySessionsRequest{} }
func (m *QuerySessionsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QuerySessionsRequest) ProtoMessage()  {}
func (m *QuerySessionsRequest) XXX_MessageName() string {
	return "paystream.session.v1.QuerySessionsRequest"
}

func (m *QuerySessionsResponse) Reset()         { *m = QuerySessionsResponse{} }
func (m *QuerySessionsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QuerySessionsResponse) ProtoMessage()  {}
func (m *QuerySessionsResponse) XXX_MessageName() string {
	return "paystream.session.v1.QuerySessionsResponse"
}

func (m *QuerySessionProofsRequest) Reset()         { *m = QuerySessionProofsRequest{} }
func (m *QuerySessionProofsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QuerySessionProofsRequest) ProtoMessage()  {}
func (m *QuerySessionProofsRequest) XXX_MessageName() string {
	return "paystream.session.v1.QuerySessionProofsRequest"
}

func (m *QuerySessionProofsResponse) Reset()         { *m = QuerySessionProofsResponse{} }
func (m *QuerySessionProofsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QuerySessionProofsResponse) ProtoMessage()  {}
func (m *QuerySessionProofsResponse) XXX_MessageName() string {
	return "paystream.session.v1.QuerySessionProofsResponse"
}

func (m *QueryBalanceRequest) Reset()         { *m = QueryBalanceRequest{} }
func (m *QueryBalanceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QueryBalanceRequest) ProtoMessage()  {}
func (m *QueryBalanceRequest) XXX_MessageName() string {
	return "paystream.session.v1.QueryBalanceRequest"
}

func (m *QueryBalanceResponse) Reset()         { *m = QueryBalanceResponse{} }
func (m *QueryBalanceResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QueryBalanceResponse) ProtoMessage()  {}
func (m *QueryBalanceResponse) XXX_MessageName() string {
	return "paystream.session.v1.QueryBalanceResponse"
}

func (m *QueryEarningsRequest) Reset()         { *m = QueryEarningsRequest{} }
func (m *QueryEarningsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QueryEarningsRequest) ProtoMessage()  {}
func (m *QueryEarningsRequest) XXX_MessageName() string {
	return "paystream.session.v1.QueryEarningsRequest"
}

func (m *QueryEarningsResponse) Reset()         { *m = QueryEarningsResponse{} }
func (m *QueryEarningsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QueryEarningsResponse) ProtoMessage()  {}
func (m *QueryEarningsResponse) XXX_MessageName() string {
	return "paystream.session.v1.QueryEarningsResponse"
}

func (m *QueryTreasuryAccrualRequest) Reset()         { *m = QueryTreasuryAccrualRequest{} }
func (m *QueryTreasuryAccrualRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QueryTreasuryAccrualRequest) ProtoMessage()  {}
func (m *QueryTreasuryAccrualRequest) XXX_MessageName() string {
	return "paystream.session.v1.QueryTreasuryAccrualRequest"
}

func (m *QueryTreasuryAccrualResponse) Reset()         { *m = QueryTreasuryAccrualResponse{} }
func (m *QueryTreasuryAccrualResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *QueryTreasuryAccrualResponse) ProtoMessage()  {}
func (m *QueryTreasuryAccrualResponse) XXX_MessageName() string {
	return "paystream.session.v1.QueryTreasuryAccrualResponse"
}

// QueryClient is the client API for the session Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Session(ctx context.Context, in *QuerySessionRequest, opts ...grpc.CallOption) (*QuerySessionResponse, error)
	Sessions(ctx context.Context, in *QuerySessionsRequest, opts ...grpc.CallOption) (*QuerySessionsResponse, error)
	SessionProofs(ctx context.Context, in *QuerySessionProofsRequest, opts ...grpc.CallOption) (*QuerySessionProofsResponse, error)
	Balance(ctx context.Context, in *QueryBalanceRequest, opts ...grpc.CallOption) (*QueryBalanceResponse, error)
	Earnings(ctx context.Context, in *QueryEarningsRequest, opts ...grpc.CallOption) (*QueryEarningsResponse, error)
	TreasuryAccrual(ctx context.Context, in *QueryTreasuryAccrualRequest, opts ...grpc.CallOption) (*QueryTreasuryAccrualResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient returns a QueryClient over the given connection.
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/paystream.session.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Session(ctx context.Context, in *QuerySessionRequest, opts ...grpc.CallOption) (*QuerySessionResponse, error) {
	out := new(QuerySessionResponse)
	err := c.cc.Invoke(ctx, "/paystream.session.v1.Query/Session", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Sessions(ctx context.Context, in *QuerySessionsRequest, opts ...grpc.CallOption) (*QuerySessionsResponse, error) {
	out := new(QuerySessionsResponse)
	err := c.cc.Invoke(ctx, "/paystream.session.v1.Query/Sessions", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SessionProofs(ctx context.Context, in *QuerySessionProofsRequest, opts ...grpc.CallOption) (*QuerySessionProofsResponse, error) {
	out := new(QuerySessionProofsResponse)
	err := c.cc.Invoke(ctx, "/paystream.session.v1.Query/SessionProofs", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Balance(ctx context.Context, in *QueryBalanceRequest, opts ...grpc.CallOption) (*QueryBalanceResponse, error) {
	out := new(QueryBalanceResponse)
	err := c.cc.Invoke(ctx, "/paystream.session.v1.Query/Balance", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Earnings(ctx context.Context, in *QueryEarningsRequest, opts ...grpc.CallOption) (*QueryEarningsResponse, error) {
	out := new(QueryEarningsResponse)
	err := c.cc.Invoke(ctx, "/paystream.session.v1.Query/Earnings", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) TreasuryAccrual(ctx context.Context, in *QueryTreasuryAccrualRequest, opts ...grpc.CallOption) (*QueryTreasuryAccrualResponse, error) {
	out := new(QueryTreasuryAccrualResponse)
	err := c.cc.Invoke(ctx, "/paystream.session.v1.Query/TreasuryAccrual", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryServer is the server API for the session Query service.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Session(context.Context, *QuerySessionRequest) (*QuerySessionResponse, error)
	Sessions(context.Context, *QuerySessionsRequest) (*QuerySessionsResponse, error)
	SessionProofs(context.Context, *QuerySessionProofsRequest) (*QuerySessionProofsResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Earnings(context.Context, *QueryEarningsRequest) (*QueryEarningsResponse, error)
	TreasuryAccrual(context.Context, *QueryTreasuryAccrualRequest) (*QueryTreasuryAccrualResponse, error)
}

// RegisterQueryServer registers the Query service implementation with the
// given gRPC server (the SDK's grpc query router).
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paystream.session.v1.Query/Params",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Session_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Session(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paystream.session.v1.Query/Session",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Session(ctx, req.(*QuerySessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Sessions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySessionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Sessions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paystream.session.v1.Query/Sessions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Sessions(ctx, req.(*QuerySessionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_SessionProofs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySessionProofsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).SessionProofs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paystream.session.v1.Query/SessionProofs",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).SessionProofs(ctx, req.(*QuerySessionProofsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Balance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Balance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paystream.session.v1.Query/Balance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Balance(ctx, req.(*QueryBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Earnings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryEarningsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Earnings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paystream.session.v1.Query/Earnings",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Earnings(ctx, req.(*QueryEarningsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_TreasuryAccrual_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryTreasuryAccrualRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).TreasuryAccrual(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paystream.session.v1.Query/TreasuryAccrual",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).TreasuryAccrual(ctx, req.(*QueryTreasuryAccrualRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "paystream.session.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Params",
			Handler:    _Query_Params_Handler,
		},
		{
			MethodName: "Session",
			Handler:    _Query_Session_Handler,
		},
		{
			MethodName: "Sessions",
			Handler:    _Query_Sessions_Handler,
		},
		{
			MethodName: "SessionProofs",
			Handler:    _Query_SessionProofs_Handler,
		},
		{
			MethodName: "Balance",
			Handler:    _Query_Balance_Handler,
		},
		{
			MethodName: "Earnings",
			Handler:    _Query_Earnings_Handler,
		},
		{
			MethodName: "TreasuryAccrual",
			Handler:    _Query_TreasuryAccrual_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "paystream/session/v1/query.proto",
}
