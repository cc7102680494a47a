// Package grpc exposes the account, entry and export services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/models"
	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"github.com/dmitrijs2005/gophvault/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type accountSvc interface {
	Register(ctx context.Context, acc *models.Account) (*models.Account, error)
	GetAccount(ctx context.Context, email string) (*models.Account, error)
	Login(ctx context.Context, email string, verifier []byte) (string, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type entrySvc interface {
	List(ctx context.Context, accountID string) ([]models.Entry, error)
	Add(ctx context.Context, accountID string, e models.Entry) (models.Entry, error)
	Update(ctx context.Context, accountID string, e models.Entry) (models.Entry, error)
	Delete(ctx context.Context, accountID, entryID string) error
}

type exportSvc interface {
	Export(ctx context.Context, accountID string) (*services.Export, error)
}

type GRPCServer struct {
	pb.UnimplementedVaultServiceServer
	address   string
	accounts  accountSvc
	entries   entrySvc
	exports   exportSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, as accountSvc, es entrySvc, xs exportSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  as,
		entries:   es,
		exports:   xs,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with the vault and health services
// registered.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterVaultServiceServer(srv, s)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv, hs
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
