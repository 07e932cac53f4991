package grpc

// proto.go defines the gRPC server interface derived from
// creditosur/lending/v1/lending.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/creditosur/lending-engine/api/gen/go/creditosur/lending/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/creditosur/lending-engine/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Messages. Wire representation is JSON via the registered "json" codec.
// ---------------------------------------------------------------------------

// PreviewScheduleRequest asks for an amortization preview of the given terms.
type PreviewScheduleRequest struct {
	Terms dto.LoanTermsRequest `json:"terms"`
}

// PreviewScheduleResponse carries the computed schedule and credit summary.
type PreviewScheduleResponse struct {
	Preview dto.SchedulePreviewResponse `json:"preview"`
}

// RegisterClientRequest registers a new client.
type RegisterClientRequest struct {
	Client dto.RegisterClientRequest `json:"client"`
}

// RegisterClientResponse carries the registered client.
type RegisterClientResponse struct {
	Client dto.ClientResponse `json:"client"`
}

// ScoreClientRequest recomputes a client's risk profile.
type ScoreClientRequest struct {
	ClientID      string `json:"client_id"`
	MonthlyIncome string `json:"monthly_income"`
	TenureMonths  int    `json:"tenure_months"`
}

// ScoreClientResponse carries the rescored client.
type ScoreClientResponse struct {
	Client dto.ClientResponse `json:"client"`
}

// CreateLoanRequest opens a loan for a client on the given terms.
type CreateLoanRequest struct {
	ClientID string               `json:"client_id"`
	Terms    dto.LoanTermsRequest `json:"terms"`
}

// CreateLoanResponse carries the created loan including its schedule.
type CreateLoanResponse struct {
	Loan dto.LoanResponse `json:"loan"`
}

// GetLoanRequest retrieves a loan by ID.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// GetLoanResponse carries the loan.
type GetLoanResponse struct {
	Loan dto.LoanResponse `json:"loan"`
}

// GetClientRequest retrieves a client by ID.
type GetClientRequest struct {
	ClientID string `json:"client_id"`
}

// GetClientResponse carries the client.
type GetClientResponse struct {
	Client dto.ClientResponse `json:"client"`
}

// RegisterPaymentRequest records a collected payment against a loan.
type RegisterPaymentRequest struct {
	LoanID string `json:"loan_id"`
	Amount string `json:"amount"`
}

// RegisterPaymentResponse carries the payment result.
type RegisterPaymentResponse struct {
	Payment dto.PaymentResponse `json:"payment"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// LendingServiceServer is the server API for LendingService.
// It mirrors the proto-generated interface from creditosur.lending.v1.LendingService.
type LendingServiceServer interface {
	PreviewSchedule(context.Context, *PreviewScheduleRequest) (*PreviewScheduleResponse, error)
	RegisterClient(context.Context, *RegisterClientRequest) (*RegisterClientResponse, error)
	ScoreClient(context.Context, *ScoreClientRequest) (*ScoreClientResponse, error)
	CreateLoan(context.Context, *CreateLoanRequest) (*CreateLoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	GetClient(context.Context, *GetClientRequest) (*GetClientResponse, error)
	RegisterPayment(context.Context, *RegisterPaymentRequest) (*RegisterPaymentResponse, error)
	mustEmbedUnimplementedLendingServiceServer()
}

// UnimplementedLendingServiceServer provides forward-compatible default implementations.
type UnimplementedLendingServiceServer struct{}

func (UnimplementedLendingServiceServer) PreviewSchedule(context.Context, *PreviewScheduleRequest) (*PreviewScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewSchedule not implemented")
}
func (UnimplementedLendingServiceServer) RegisterClient(context.Context, *RegisterClientRequest) (*RegisterClientResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterClient not implemented")
}
func (UnimplementedLendingServiceServer) ScoreClient(context.Context, *ScoreClientRequest) (*ScoreClientResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreClient not implemented")
}
func (UnimplementedLendingServiceServer) CreateLoan(context.Context, *CreateLoanRequest) (*CreateLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLoan not implemented")
}
func (UnimplementedLendingServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLendingServiceServer) GetClient(context.Context, *GetClientRequest) (*GetClientResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClient not implemented")
}
func (UnimplementedLendingServiceServer) RegisterPayment(context.Context, *RegisterPaymentRequest) (*RegisterPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterPayment not implemented")
}
func (UnimplementedLendingServiceServer) mustEmbedUnimplementedLendingServiceServer() {}

// RegisterLendingServiceServer registers the LendingServiceServer with the gRPC server.
func RegisterLendingServiceServer(s *grpclib.Server, srv LendingServiceServer) {
	s.RegisterService(&_LendingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LendingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "creditosur.lending.v1.LendingService",
	HandlerType: (*LendingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "PreviewSchedule", Handler: _LendingService_PreviewSchedule_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "RegisterClient", Handler: _LendingService_RegisterClient_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "ScoreClient", Handler: _LendingService_ScoreClient_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "CreateLoan", Handler: _LendingService_CreateLoan_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LendingService_GetLoan_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetClient", Handler: _LendingService_GetClient_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "RegisterPayment", Handler: _LendingService_RegisterPayment_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_PreviewSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).PreviewSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/creditosur.lending.v1.LendingService/PreviewSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).PreviewSchedule(ctx, req.(*PreviewScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_RegisterClient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).RegisterClient(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/creditosur.lending.v1.LendingService/RegisterClient",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).RegisterClient(ctx, req.(*RegisterClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ScoreClient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ScoreClient(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/creditosur.lending.v1.LendingService/ScoreClient",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ScoreClient(ctx, req.(*ScoreClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_CreateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).CreateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/creditosur.lending.v1.LendingService/CreateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).CreateLoan(ctx, req.(*CreateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/creditosur.lending.v1.LendingService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_GetClient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).GetClient(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/creditosur.lending.v1.LendingService/GetClient",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).GetClient(ctx, req.(*GetClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_RegisterPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).RegisterPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/creditosur.lending.v1.LendingService/RegisterPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).RegisterPayment(ctx, req.(*RegisterPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}
