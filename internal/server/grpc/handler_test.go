package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/models"
	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"github.com/dmitrijs2005/gophvault/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeAccounts struct {
	regResp *models.Account
	regErr  error

	getResp *models.Account
	getErr  error

	loginID   string
	loginResp *services.TokenPair
	loginErr  error

	refreshResp *services.TokenPair
	refreshErr  error

	logoutErr error
}

func (f *fakeAccounts) Register(ctx context.Context, acc *models.Account) (*models.Account, error) {
	return f.regResp, f.regErr
}
func (f *fakeAccounts) GetAccount(ctx context.Context, email string) (*models.Account, error) {
	return f.getResp, f.getErr
}
func (f *fakeAccounts) Login(ctx context.Context, email string, verifier []byte) (string, *services.TokenPair, error) {
	return f.loginID, f.loginResp, f.loginErr
}
func (f *fakeAccounts) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}
func (f *fakeAccounts) Logout(ctx context.Context, refreshToken string) error { return f.logoutErr }

type fakeEntries struct {
	lastAccount string
	listResp    []models.Entry
	err         error
}

func (f *fakeEntries) List(ctx context.Context, accountID string) ([]models.Entry, error) {
	f.lastAccount = accountID
	return f.listResp, f.err
}
func (f *fakeEntries) Add(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	f.lastAccount = accountID
	e.ID = "new-id"
	return e, f.err
}
func (f *fakeEntries) Update(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	f.lastAccount = accountID
	return e, f.err
}
func (f *fakeEntries) Delete(ctx context.Context, accountID, entryID string) error {
	f.lastAccount = accountID
	return f.err
}

type fakeExports struct {
	resp *services.Export
	err  error
}

func (f *fakeExports) Export(ctx context.Context, accountID string) (*services.Export, error) {
	return f.resp, f.err
}

func newServer(a accountSvc, e entrySvc, x exportSvc) *GRPCServer {
	return &GRPCServer{
		accounts:  a,
		entries:   e,
		exports:   x,
		logger:    nopLogger{},
		jwtSecret: []byte("k"),
	}
}

func authed(accountID string) context.Context {
	return context.WithValue(context.Background(), accountIDKey, accountID)
}

// ---- tests ----

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrDuplicateAccount, codes.AlreadyExists},
		{common.ErrInvalidCredentials, codes.Unauthenticated},
		{common.ErrInvalidToken, codes.Unauthenticated},
		{common.ErrRefreshTokenExpired, codes.Unauthenticated},
		{common.ErrorNotFound, codes.NotFound},
		{common.ErrInvalidRecord, codes.InvalidArgument},
		{common.ErrInvalidEmail, codes.InvalidArgument},
		{common.ErrStoreUnavailable, codes.Unavailable},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		if got := status.Code(toStatus(tt.err)); got != tt.want {
			t.Errorf("toStatus(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}

	if st, _ := status.FromError(toStatus(errors.New("secret detail"))); st.Message() != "internal error" {
		t.Fatalf("internal errors must not leak detail, got %q", st.Message())
	}
}

func TestRegister(t *testing.T) {
	a := &fakeAccounts{regResp: &models.Account{ID: "acc-1", Email: "a@b.c", Verifier: []byte("v")}}
	s := newServer(a, &fakeEntries{}, &fakeExports{})

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetAccount().GetEmail() != "a@b.c" || resp.GetAccount().GetVerifier() != nil {
		t.Fatalf("unexpected account: %+v", resp.Account)
	}

	a.regErr = common.ErrDuplicateAccount
	_, err = s.Register(context.Background(), &pb.RegisterRequest{})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", err)
	}
}

func TestGetAccount_InternalOnError(t *testing.T) {
	s := newServer(&fakeAccounts{getErr: errors.New("db")}, &fakeEntries{}, &fakeExports{})
	_, err := s.GetAccount(context.Background(), &pb.GetAccountRequest{Email: "a@b.c"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	a := &fakeAccounts{loginID: "acc-1", loginResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	s := newServer(a, &fakeEntries{}, &fakeExports{})

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@b.c", Verifier: []byte("v")})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetAccountId() != "acc-1" || resp.AccessToken != "a" || resp.RefreshToken != "r" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	a.loginErr = common.ErrInvalidCredentials
	_, err = s.Login(context.Background(), &pb.LoginRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func TestRefreshTokenAndLogout(t *testing.T) {
	a := &fakeAccounts{refreshResp: &services.TokenPair{AccessToken: "a2", RefreshToken: "r2"}}
	s := newServer(a, &fakeEntries{}, &fakeExports{})

	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r"})
	if err != nil || resp.AccessToken != "a2" || resp.RefreshToken != "r2" {
		t.Fatalf("RefreshToken resp=%+v err=%v", resp, err)
	}

	a.refreshErr = common.ErrRefreshTokenExpired
	if _, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}

	if _, err := s.Logout(context.Background(), &pb.LogoutRequest{RefreshToken: "r"}); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	a.logoutErr = common.ErrorInternal
	if _, err := s.Logout(context.Background(), &pb.LogoutRequest{}); status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", err)
	}
}

func TestEntryHandlers_RequireAccount(t *testing.T) {
	s := newServer(&fakeAccounts{}, &fakeEntries{}, &fakeExports{})
	ctx := context.Background()

	checks := map[string]error{}
	_, checks["list"] = s.ListEntries(ctx, &pb.ListEntriesRequest{})
	_, checks["add"] = s.AddEntry(ctx, &pb.AddEntryRequest{})
	_, checks["update"] = s.UpdateEntry(ctx, &pb.UpdateEntryRequest{})
	_, checks["delete"] = s.DeleteEntry(ctx, &pb.DeleteEntryRequest{})
	_, checks["export"] = s.ExportVault(ctx, &pb.ExportVaultRequest{})

	for name, err := range checks {
		if status.Code(err) != codes.Unauthenticated {
			t.Errorf("%s: want Unauthenticated, got %v", name, err)
		}
	}
}

func TestEntryHandlers(t *testing.T) {
	e := &fakeEntries{}
	s := newServer(&fakeAccounts{}, e, &fakeExports{})
	ctx := authed("acc-7")

	add, err := s.AddEntry(ctx, &pb.AddEntryRequest{Entry: &pb.Entry{Data: "aa", Iv: "bb"}})
	if err != nil || add.GetEntry().GetId() != "new-id" || e.lastAccount != "acc-7" {
		t.Fatalf("AddEntry resp=%+v err=%v account=%q", add, err, e.lastAccount)
	}

	upd, err := s.UpdateEntry(ctx, &pb.UpdateEntryRequest{Entry: &pb.Entry{Id: "e1", Data: "cc", Iv: "dd"}})
	if err != nil || upd.GetEntry().GetData() != "cc" {
		t.Fatalf("UpdateEntry resp=%+v err=%v", upd, err)
	}

	if _, err := s.DeleteEntry(ctx, &pb.DeleteEntryRequest{Id: "e1"}); err != nil {
		t.Fatalf("DeleteEntry error: %v", err)
	}

	e.err = common.ErrorNotFound
	if _, err := s.DeleteEntry(ctx, &pb.DeleteEntryRequest{Id: "e1"}); status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", err)
	}
	if _, err := s.UpdateEntry(ctx, &pb.UpdateEntryRequest{}); status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", err)
	}

	e.err = common.ErrInvalidRecord
	if _, err := s.AddEntry(ctx, &pb.AddEntryRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", err)
	}
}

func TestExportVault(t *testing.T) {
	exp := &services.Export{Key: "k", URL: "http://u", ExpiresAt: time.Date(2025, 1, 1, 0, 15, 0, 0, time.UTC)}
	x := &fakeExports{resp: exp}
	s := newServer(&fakeAccounts{}, &fakeEntries{}, x)

	resp, err := s.ExportVault(authed("acc-1"), &pb.ExportVaultRequest{})
	if err != nil {
		t.Fatalf("ExportVault error: %v", err)
	}
	if resp.Key != "k" || resp.GetUrl() != "http://u" || !resp.GetExpiresAt().AsTime().Equal(exp.ExpiresAt) {
		t.Fatalf("unexpected response: %+v", resp)
	}

	x.err = common.ErrStoreUnavailable
	if _, err := s.ExportVault(authed("acc-1"), &pb.ExportVaultRequest{}); status.Code(err) != codes.Unavailable {
		t.Fatalf("want Unavailable, got %v", err)
	}
}
