package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Full method names of the translation service
const (
	ServiceName = "babele.v1alpha1.TranslationService"

	MergeMethod     = "/" + ServiceName + "/Merge"
	TranslateMethod = "/" + ServiceName + "/Translate"
)

// TranslationServiceServer is the server API for the translation service.
// Documents are schemaless, so requests and responses are Structs.
type TranslationServiceServer interface {
	Merge(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Translate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterTranslationServiceServer registers srv with s
func RegisterTranslationServiceServer(s grpc.ServiceRegistrar, srv TranslationServiceServer) {
	s.RegisterService(&TranslationServiceDesc, srv)
}

// TranslationServiceDesc is the grpc.ServiceDesc for the translation service.
// It is written by hand and no file descriptor backs Metadata, so the service
// cannot be described through server reflection.
var TranslationServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TranslationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Merge",
			Handler:    mergeHandler,
		},
		{
			MethodName: "Translate",
			Handler:    translateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "babele/v1alpha1/translation.proto",
}

func mergeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TranslationServiceServer).Merge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MergeMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TranslationServiceServer).Merge(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func translateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TranslationServiceServer).Translate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TranslateMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TranslationServiceServer).Translate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
