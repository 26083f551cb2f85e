package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/picdiary/internal/logging"
	"github.com/dmitrijs2005/picdiary/internal/observe"
	pb "github.com/dmitrijs2005/picdiary/internal/proto"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedDiaryServiceServer
	address    string
	users      UserService
	interviews InterviewService
	diary      DiaryService
	logger     logging.Logger
	jwtSecret  []byte
	metrics    *observe.Collector
}

func NewGRPCServer(a string, l logging.Logger, us UserService, is InterviewService, ds DiaryService,
	secretKey string, metrics *observe.Collector) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		interviews: is,
		diary:      ds,
		jwtSecret:  []byte(secretKey),
		metrics:    metrics,
	}
}

// newServer builds the grpc.Server with interceptors and the Diary service.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.accessTokenInterceptor))
	pb.RegisterDiaryServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
