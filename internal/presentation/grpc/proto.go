package grpc

// proto.go defines the gRPC server interface derived from bib/messageadapter/v1/message_adapter.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/bibbank/bib/api/gen/go/bib/messageadapter/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MessageAdapterServiceServer is the server API for MessageAdapterService.
// It mirrors the proto-generated interface from bib.messageadapter.v1.MessageAdapterService.
type MessageAdapterServiceServer interface {
	SubmitMessage(context.Context, *SubmitMessageRequest) (*SubmitMessageResponse, error)
	GetMessage(context.Context, *GetMessageRequestMsg) (*GetMessageResponseMsg, error)
	ListMessages(context.Context, *ListMessagesRequestMsg) (*ListMessagesResponseMsg, error)
	mustEmbedUnimplementedMessageAdapterServiceServer()
}

// UnimplementedMessageAdapterServiceServer provides forward-compatible default implementations.
type UnimplementedMessageAdapterServiceServer struct{}

func (UnimplementedMessageAdapterServiceServer) SubmitMessage(context.Context, *SubmitMessageRequest) (*SubmitMessageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitMessage not implemented")
}
func (UnimplementedMessageAdapterServiceServer) GetMessage(context.Context, *GetMessageRequestMsg) (*GetMessageResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMessage not implemented")
}
func (UnimplementedMessageAdapterServiceServer) ListMessages(context.Context, *ListMessagesRequestMsg) (*ListMessagesResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMessages not implemented")
}
func (UnimplementedMessageAdapterServiceServer) mustEmbedUnimplementedMessageAdapterServiceServer() {}

// RegisterMessageAdapterServiceServer registers the MessageAdapterServiceServer with the gRPC server.
func RegisterMessageAdapterServiceServer(s *grpclib.Server, srv MessageAdapterServiceServer) {
	s.RegisterService(&_MessageAdapterService_serviceDesc, srv)
}

var _MessageAdapterService_serviceDesc = grpclib.ServiceDesc{ //nolint:revive
	ServiceName: "bib.messageadapter.v1.MessageAdapterService",
	HandlerType: (*MessageAdapterServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SubmitMessage", Handler: _MessageAdapterService_SubmitMessage_Handler},
		{MethodName: "GetMessage", Handler: _MessageAdapterService_GetMessage_Handler},
		{MethodName: "ListMessages", Handler: _MessageAdapterService_ListMessages_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _MessageAdapterService_SubmitMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(SubmitMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageAdapterServiceServer).SubmitMessage(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.messageadapter.v1.MessageAdapterService/SubmitMessage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageAdapterServiceServer).SubmitMessage(ctx, req.(*SubmitMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessageAdapterService_GetMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(GetMessageRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageAdapterServiceServer).GetMessage(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.messageadapter.v1.MessageAdapterService/GetMessage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageAdapterServiceServer).GetMessage(ctx, req.(*GetMessageRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessageAdapterService_ListMessages_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ListMessagesRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageAdapterServiceServer).ListMessages(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bib.messageadapter.v1.MessageAdapterService/ListMessages",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageAdapterServiceServer).ListMessages(ctx, req.(*ListMessagesRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}
