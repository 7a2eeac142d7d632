package errors

import "google.golang.org/grpc/codes"

// Code classifies an error. Values mirror the gRPC status codes this
// service can produce.
type Code string

const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

var toGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(toGRPC))
	for code, grpcCode := range toGRPC {
		m[grpcCode] = code
	}
	return m
}()

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the gRPC status code for c; unknown codes map to Unknown
func (c Code) GRPCCode() codes.Code {
	if grpcCode, ok := toGRPC[c]; ok {
		return grpcCode
	}
	return codes.Unknown
}

// codeFromGRPC maps a gRPC status code back; codes this service never
// produces become Internal
func codeFromGRPC(grpcCode codes.Code) Code {
	if code, ok := fromGRPC[grpcCode]; ok {
		return code
	}
	return CodeInternal
}
