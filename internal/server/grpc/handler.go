package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/common"
	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors onto gRPC codes. Unknown errors are reported
// as Internal without detail.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateAccount):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInvalidRecord),
		errors.Is(err, common.ErrInvalidEmail):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.GetAccountResponse, error) {
	acc, err := s.accounts.GetAccount(ctx, req.GetEmail())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetAccountResponse{Account: pb.AccountToProto(*acc)}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	in := pb.AccountFromProto(req.GetAccount())
	acc, err := s.accounts.Register(ctx, &in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RegisterResponse{Account: pb.AccountToProto(acc.Public())}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	accountID, tokens, err := s.accounts.Login(ctx, req.GetEmail(), req.GetVerifier())
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "login", common.AccountIDKey, accountID)
	return &pb.LoginResponse{AccountId: accountID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.accounts.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.accounts.Logout(ctx, req.GetRefreshToken()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) ListEntries(ctx context.Context, req *pb.ListEntriesRequest) (*pb.ListEntriesResponse, error) {
	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	list, err := s.entries.List(ctx, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListEntriesResponse{Entries: pb.EntriesToProto(list)}, nil
}

func (s *GRPCServer) AddEntry(ctx context.Context, req *pb.AddEntryRequest) (*pb.AddEntryResponse, error) {
	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	e, err := s.entries.Add(ctx, accountID, pb.EntryFromProto(req.GetEntry()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AddEntryResponse{Entry: pb.EntryToProto(e)}, nil
}

func (s *GRPCServer) UpdateEntry(ctx context.Context, req *pb.UpdateEntryRequest) (*pb.UpdateEntryResponse, error) {
	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	e, err := s.entries.Update(ctx, accountID, pb.EntryFromProto(req.GetEntry()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateEntryResponse{Entry: pb.EntryToProto(e)}, nil
}

func (s *GRPCServer) DeleteEntry(ctx context.Context, req *pb.DeleteEntryRequest) (*pb.DeleteEntryResponse, error) {
	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	if err := s.entries.Delete(ctx, accountID, req.GetId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteEntryResponse{}, nil
}

func (s *GRPCServer) ExportVault(ctx context.Context, req *pb.ExportVaultRequest) (*pb.ExportVaultResponse, error) {
	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	exp, err := s.exports.Export(ctx, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ExportVaultResponse{Key: exp.Key, Url: exp.URL, ExpiresAt: timestamppb.New(exp.ExpiresAt)}, nil
}
