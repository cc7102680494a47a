package proto

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gproto "google.golang.org/protobuf/proto"
)

func TestAccount_WireRoundTrip(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	acc := models.Account{
		ID:          "a1",
		Email:       "alice@example.com",
		Salt:        "00112233445566778899aabbccddeeff",
		KDFParams:   cryptox.DefaultParams(),
		AuthTagData: "deadbeef",
		AuthTagIV:   "cafebabe",
		Verifier:    []byte{1, 2, 3},
		CreatedAt:   created,
	}

	raw, err := gproto.Marshal(&RegisterRequest{Account: AccountToProto(acc)})
	require.NoError(t, err)

	var got RegisterRequest
	require.NoError(t, gproto.Unmarshal(raw, &got))
	assert.Equal(t, acc, AccountFromProto(got.GetAccount()))
}

func TestAccountFromProto_Missing(t *testing.T) {
	acc := AccountFromProto(nil)
	assert.Equal(t, models.Account{}, acc)
	assert.Error(t, acc.KDFParams.Validate())
}

func TestAccountToProto_ZeroTimeOmitted(t *testing.T) {
	pa := AccountToProto(models.Account{Email: "bob@example.com"})
	assert.Nil(t, pa.GetCreatedAt())
	assert.True(t, AccountFromProto(pa).CreatedAt.IsZero())
}

func TestEntry_UpdatedAt(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	tests := []struct {
		name  string
		entry models.Entry
	}{
		{name: "never updated", entry: models.Entry{ID: "e1", Data: "aa", IV: "bb", CreatedAt: created}},
		{name: "updated", entry: models.Entry{ID: "e2", Data: "cc", IV: "dd", CreatedAt: created, UpdatedAt: &updated}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := gproto.Marshal(EntryToProto(tt.entry))
			require.NoError(t, err)

			var got Entry
			require.NoError(t, gproto.Unmarshal(raw, &got))
			assert.Equal(t, tt.entry, EntryFromProto(&got))
		})
	}
}

func TestEntries_Lists(t *testing.T) {
	list := []models.Entry{{ID: "e1"}, {ID: "e2"}}
	back := EntriesFromProto(EntriesToProto(list))
	assert.Equal(t, list, back)
	assert.Empty(t, EntriesFromProto(nil))
}

func TestServiceName(t *testing.T) {
	assert.Equal(t, VaultService_ServiceDesc.ServiceName, ServiceName)
}
