// Package proto holds the gophvault gRPC service generated from vault.proto
// and the conversions between its messages and internal/models.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/vault.proto

import (
	"time"

	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ServiceName is the fully qualified name health checks report on.
const ServiceName = "gophvault.v1.VaultService"

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func ParamsToProto(p cryptox.Params) *KdfParams {
	return &KdfParams{
		Version:         int32(p.Version),
		Cost:            int32(p.Cost),
		BlockSize:       int32(p.BlockSize),
		Parallelization: int32(p.Parallelization),
		MaxMem:          p.MaxMem,
	}
}

// ParamsFromProto returns zero Params for a missing message, which
// cryptox.Params.Validate rejects.
func ParamsFromProto(p *KdfParams) cryptox.Params {
	return cryptox.Params{
		Version:         int(p.GetVersion()),
		Cost:            int(p.GetCost()),
		BlockSize:       int(p.GetBlockSize()),
		Parallelization: int(p.GetParallelization()),
		MaxMem:          p.GetMaxMem(),
	}
}

func AccountToProto(a models.Account) *Account {
	return &Account{
		Id:          a.ID,
		Email:       a.Email,
		Salt:        a.Salt,
		KdfParams:   ParamsToProto(a.KDFParams),
		AuthTagData: a.AuthTagData,
		AuthTagIv:   a.AuthTagIV,
		Verifier:    a.Verifier,
		CreatedAt:   timestamp(a.CreatedAt),
	}
}

func AccountFromProto(a *Account) models.Account {
	return models.Account{
		ID:          a.GetId(),
		Email:       a.GetEmail(),
		Salt:        a.GetSalt(),
		KDFParams:   ParamsFromProto(a.GetKdfParams()),
		AuthTagData: a.GetAuthTagData(),
		AuthTagIV:   a.GetAuthTagIv(),
		Verifier:    a.GetVerifier(),
		CreatedAt:   fromTimestamp(a.GetCreatedAt()),
	}
}

func EntryToProto(e models.Entry) *Entry {
	pe := &Entry{
		Id:        e.ID,
		Data:      e.Data,
		Iv:        e.IV,
		CreatedAt: timestamp(e.CreatedAt),
	}
	if e.UpdatedAt != nil {
		pe.UpdatedAt = timestamppb.New(*e.UpdatedAt)
	}
	return pe
}

func EntryFromProto(e *Entry) models.Entry {
	me := models.Entry{
		ID:        e.GetId(),
		Data:      e.GetData(),
		IV:        e.GetIv(),
		CreatedAt: fromTimestamp(e.GetCreatedAt()),
	}
	if ts := e.GetUpdatedAt(); ts != nil {
		t := ts.AsTime()
		me.UpdatedAt = &t
	}
	return me
}

func EntriesToProto(list []models.Entry) []*Entry {
	out := make([]*Entry, 0, len(list))
	for _, e := range list {
		out = append(out, EntryToProto(e))
	}
	return out
}

func EntriesFromProto(list []*Entry) []models.Entry {
	out := make([]models.Entry, 0, len(list))
	for _, e := range list {
		out = append(out, EntryFromProto(e))
	}
	return out
}
