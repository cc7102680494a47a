package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/models"
	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"github.com/dmitrijs2005/gophvault/internal/session"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCClient is the remote Backend. Calls made with a session in the context
// (see session.NewContext) carry its access token.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.VaultServiceClient
	health      healthpb.HealthClient
	dialOpts    []grpc.DialOption

	// refreshMu serialises token refreshes so that a refresh token, which
	// the server accepts once, is not redeemed twice.
	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	sess, ok := session.FromContext(ctx)
	if !ok || method == pb.VaultService_RefreshToken_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	tokens, err := sess.Tokens()
	if err != nil {
		return err
	}

	err = invoker(withAccessToken(ctx, tokens.Access), method, req, reply, cc, opts...)
	if !isTokenExpired(err) || tokens.Refresh == "" {
		return err
	}

	fresh, err := s.refresh(ctx, sess, tokens)
	if err != nil {
		return err
	}

	return invoker(withAccessToken(ctx, fresh.Access), method, req, reply, cc, opts...)
}

// refresh redeems the refresh token of used and stores the new pair in sess.
// If another call already rotated the pair, that pair is returned as is.
func (s *GRPCClient) refresh(ctx context.Context, sess *session.Session, used session.Tokens) (session.Tokens, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	current, err := sess.Tokens()
	if err != nil {
		return session.Tokens{}, err
	}
	if current.Access != used.Access {
		return current, nil
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: current.Refresh})
	if err != nil {
		return session.Tokens{}, s.mapError(err)
	}

	fresh := session.Tokens{Access: resp.GetAccessToken(), Refresh: resp.GetRefreshToken()}
	if err := sess.Rotate(fresh); err != nil {
		return session.Tokens{}, err
	}
	return fresh, nil
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVaultServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// FindAccount never reports an unknown email: the server answers every
// lookup with a record, real or not.
func (s *GRPCClient) FindAccount(ctx context.Context, email string) (*models.Account, error) {
	resp, err := s.client.GetAccount(ctx, &pb.GetAccountRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	acc := pb.AccountFromProto(resp.GetAccount())
	return &acc, nil
}

func (s *GRPCClient) CreateAccount(ctx context.Context, acc *models.Account) (*models.Account, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Account: pb.AccountToProto(*acc)})
	if err != nil {
		return nil, s.mapError(err)
	}
	created := pb.AccountFromProto(resp.GetAccount())
	return &created, nil
}

// ListEntries lists the entries of the account the session token belongs
// to; accountID is implied by the token.
func (s *GRPCClient) ListEntries(ctx context.Context, accountID string) ([]models.Entry, error) {
	resp, err := s.client.ListEntries(ctx, &pb.ListEntriesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return pb.EntriesFromProto(resp.GetEntries()), nil
}

func (s *GRPCClient) AppendEntry(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	resp, err := s.client.AddEntry(ctx, &pb.AddEntryRequest{Entry: pb.EntryToProto(e)})
	if err != nil {
		return models.Entry{}, s.mapError(err)
	}
	return pb.EntryFromProto(resp.GetEntry()), nil
}

func (s *GRPCClient) UpdateEntry(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	resp, err := s.client.UpdateEntry(ctx, &pb.UpdateEntryRequest{Entry: pb.EntryToProto(e)})
	if err != nil {
		return models.Entry{}, s.mapError(err)
	}
	return pb.EntryFromProto(resp.GetEntry()), nil
}

func (s *GRPCClient) DeleteEntry(ctx context.Context, accountID, entryID string) error {
	if _, err := s.client.DeleteEntry(ctx, &pb.DeleteEntryRequest{Id: entryID}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Authenticate(ctx context.Context, email string, verifier []byte) (string, session.Tokens, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Verifier: verifier})
	if err != nil {
		return "", session.Tokens{}, s.mapError(err)
	}
	return resp.GetAccountId(), session.Tokens{Access: resp.GetAccessToken(), Refresh: resp.GetRefreshToken()}, nil
}

func (s *GRPCClient) Revoke(ctx context.Context, tokens session.Tokens) error {
	if tokens.Refresh == "" {
		return nil
	}
	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: tokens.Refresh}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return common.ErrStoreUnavailable
	}
	return nil
}

func (s *GRPCClient) Export(ctx context.Context) (*ExportLink, error) {
	resp, err := s.client.ExportVault(ctx, &pb.ExportVaultRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &ExportLink{URL: resp.GetUrl(), ExpiresAt: resp.GetExpiresAt().AsTime()}, nil
}

// mapError turns gRPC statuses into the sentinel errors of package common.
// Errors that are not statuses pass through unchanged.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		if st.Message() == common.ErrInvalidCredentials.Error() {
			return common.ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %s", common.ErrUnauthenticated, st.Message())
	case codes.AlreadyExists:
		return common.ErrDuplicateAccount
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		if st.Message() == common.ErrInvalidEmail.Error() {
			return common.ErrInvalidEmail
		}
		return fmt.Errorf("%w: %s", common.ErrInvalidRecord, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.ErrStoreUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
