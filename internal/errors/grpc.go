package errors

import (
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts err to a gRPC status error. Metadata travels as a
// Struct detail when it is representable; status errors pass through.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !As(err, &e) {
		return status.Error(CodeInternal.GRPCCode(), err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) > 0 {
		if details, detailErr := structpb.NewStruct(e.Meta); detailErr == nil {
			if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
				st = withDetails
			}
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC status error back to an *Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			out.Meta = meta.AsMap()
			break
		}
	}
	return out
}
