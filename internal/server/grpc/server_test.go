package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/models"
	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeAccounts{}, &fakeEntries{}, &fakeExports{}, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, &fakeAccounts{}, &fakeEntries{}, &fakeExports{}, "secret")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected listen error for invalid port")
	}
}

// startBufServer serves s over an in-memory listener and returns a client
// connection to it.
func startBufServer(t *testing.T, s *GRPCServer) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestServe_RoundTrip(t *testing.T) {
	accounts := &fakeAccounts{
		getResp: &models.Account{Email: "alice@example.com", Salt: "00"},
	}
	entries := &fakeEntries{
		listResp: []models.Entry{{ID: "e1", Data: "aa", IV: "bb"}},
	}
	s := NewGRPCServer("", nopLogger{}, accounts, entries, &fakeExports{}, "secret")
	conn := startBufServer(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hc, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if hc.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("unexpected health status: %v", hc.GetStatus())
	}

	client := pb.NewVaultServiceClient(conn)

	acc, err := client.GetAccount(ctx, &pb.GetAccountRequest{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if acc.GetAccount().GetEmail() != "alice@example.com" || acc.GetAccount().GetSalt() != "00" {
		t.Fatalf("unexpected account: %+v", acc.Account)
	}

	_, err = client.ListEntries(ctx, &pb.ListEntriesRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without token, got %v", err)
	}

	token, err := auth.GenerateToken("acc-1", []byte("secret"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	authCtx := metadata.AppendToOutgoingContext(ctx, "access_token", token)

	list, err := client.ListEntries(authCtx, &pb.ListEntriesRequest{})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(list.Entries) != 1 || list.Entries[0].GetId() != "e1" {
		t.Fatalf("unexpected entries: %+v", list.Entries)
	}
	if entries.lastAccount != "acc-1" {
		t.Fatalf("entries listed for %q, want acc-1", entries.lastAccount)
	}
}
