package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/common"
	pb "github.com/dmitrijs2005/picdiary/internal/proto"
	"github.com/dmitrijs2005/picdiary/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userNameKey ctxKey = "userName"

// publicMethods can be called without an access token.
var publicMethods = map[string]struct{}{
	pb.DiaryService_Register_FullMethodName:     {},
	pb.DiaryService_Login_FullMethodName:        {},
	pb.DiaryService_RefreshToken_FullMethodName: {},
	pb.DiaryService_Ping_FullMethodName:         {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userName, err := auth.GetUserNameFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = context.WithValue(ctx, userNameKey, userName)

	return handler(ctx, req)
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if s.metrics == nil {
		return handler(ctx, req)
	}

	start := time.Now()
	resp, err := handler(ctx, req)

	s.metrics.RPCDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	s.metrics.RPCRequests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	return resp, err
}

// userNameFromContext returns the caller set by accessTokenInterceptor.
func userNameFromContext(ctx context.Context) (string, error) {
	userName, ok := ctx.Value(userNameKey).(string)
	if !ok || userName == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return userName, nil
}
