package grpc

import (
	"context"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryInterceptor turns a panic in any handler into an INTERNAL
// status instead of crashing the process, with the stack trace logged
// for diagnosis.
func RecoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered in gRPC handler",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.String("stack", string(debug.Stack())),
				)
				err = status.Errorf(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// LoggingInterceptor logs every call at debug, and NotFound errors at
// info rather than error — per §7, NotFound is an expected outcome, not
// a failure worth alarming on. Every call gets a fresh request ID so
// its debug/info/error line can be grepped out of a shared log stream.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		reqID := uuid.New().String()
		resp, err := handler(ctx, req)
		if err == nil {
			logger.Debug("gRPC call", zap.String("request_id", reqID), zap.String("method", info.FullMethod))
			return resp, nil
		}

		st, _ := status.FromError(err)
		if st.Code() == codes.NotFound {
			logger.Info("gRPC call not found", zap.String("request_id", reqID), zap.String("method", info.FullMethod), zap.String("message", st.Message()))
		} else {
			logger.Error("gRPC call failed", zap.String("request_id", reqID), zap.String("method", info.FullMethod), zap.Error(err))
		}
		return resp, err
	}
}
