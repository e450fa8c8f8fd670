// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: kbsearch.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	KBSearchService_SearchChunks_FullMethodName    = "/shu.kbsearch.KBSearchService/SearchChunks"
	KBSearchService_SearchDocuments_FullMethodName = "/shu.kbsearch.KBSearchService/SearchDocuments"
	KBSearchService_GetDocument_FullMethodName     = "/shu.kbsearch.KBSearchService/GetDocument"
	KBSearchService_CheckRead_FullMethodName       = "/shu.kbsearch.KBSearchService/CheckRead"
)

// KBSearchServiceClient is the client API for KBSearchService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// KBSearchService is the external knowledge-base search service. Every
// query carries the caller's bound knowledge base IDs; the service must
// never return results outside that set.
type KBSearchServiceClient interface {
	SearchChunks(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error)
	SearchDocuments(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	CheckRead(ctx context.Context, in *CheckReadRequest, opts ...grpc.CallOption) (*CheckReadResponse, error)
}

type kBSearchServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewKBSearchServiceClient(cc grpc.ClientConnInterface) KBSearchServiceClient {
	return &kBSearchServiceClient{cc}
}

func (c *kBSearchServiceClient) SearchChunks(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchResponse)
	err := c.cc.Invoke(ctx, KBSearchService_SearchChunks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kBSearchServiceClient) SearchDocuments(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchResponse)
	err := c.cc.Invoke(ctx, KBSearchService_SearchDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kBSearchServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, KBSearchService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kBSearchServiceClient) CheckRead(ctx context.Context, in *CheckReadRequest, opts ...grpc.CallOption) (*CheckReadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckReadResponse)
	err := c.cc.Invoke(ctx, KBSearchService_CheckRead_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// KBSearchServiceServer is the server API for KBSearchService service.
// All implementations must embed UnimplementedKBSearchServiceServer
// for forward compatibility.
//
// KBSearchService is the external knowledge-base search service. Every
// query carries the caller's bound knowledge base IDs; the service must
// never return results outside that set.
type KBSearchServiceServer interface {
	SearchChunks(context.Context, *SearchRequest) (*SearchResponse, error)
	SearchDocuments(context.Context, *SearchRequest) (*SearchResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	CheckRead(context.Context, *CheckReadRequest) (*CheckReadResponse, error)
	mustEmbedUnimplementedKBSearchServiceServer()
}

// UnimplementedKBSearchServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedKBSearchServiceServer struct{}

func (UnimplementedKBSearchServiceServer) SearchChunks(context.Context, *SearchRequest) (*SearchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchChunks not implemented")
}
func (UnimplementedKBSearchServiceServer) SearchDocuments(context.Context, *SearchRequest) (*SearchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchDocuments not implemented")
}
func (UnimplementedKBSearchServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedKBSearchServiceServer) CheckRead(context.Context, *CheckReadRequest) (*CheckReadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckRead not implemented")
}
func (UnimplementedKBSearchServiceServer) mustEmbedUnimplementedKBSearchServiceServer() {}
func (UnimplementedKBSearchServiceServer) testEmbeddedByValue()                         {}

// UnsafeKBSearchServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to KBSearchServiceServer will
// result in compilation errors.
type UnsafeKBSearchServiceServer interface {
	mustEmbedUnimplementedKBSearchServiceServer()
}

func RegisterKBSearchServiceServer(s grpc.ServiceRegistrar, srv KBSearchServiceServer) {
	// If the following call panics, it indicates UnimplementedKBSearchServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&KBSearchService_ServiceDesc, srv)
}

func _KBSearchService_SearchChunks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KBSearchServiceServer).SearchChunks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: KBSearchService_SearchChunks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KBSearchServiceServer).SearchChunks(ctx, req.(*SearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _KBSearchService_SearchDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KBSearchServiceServer).SearchDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: KBSearchService_SearchDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KBSearchServiceServer).SearchDocuments(ctx, req.(*SearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _KBSearchService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KBSearchServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: KBSearchService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KBSearchServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _KBSearchService_CheckRead_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KBSearchServiceServer).CheckRead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: KBSearchService_CheckRead_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KBSearchServiceServer).CheckRead(ctx, req.(*CheckReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// KBSearchService_ServiceDesc is the grpc.ServiceDesc for KBSearchService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var KBSearchService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shu.kbsearch.KBSearchService",
	HandlerType: (*KBSearchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SearchChunks",
			Handler:    _KBSearchService_SearchChunks_Handler,
		},
		{
			MethodName: "SearchDocuments",
			Handler:    _KBSearchService_SearchDocuments_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _KBSearchService_GetDocument_Handler,
		},
		{
			MethodName: "CheckRead",
			Handler:    _KBSearchService_CheckRead_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "kbsearch.proto",
}
