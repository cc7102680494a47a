// Package vault seals and opens credential entries with a session key.
package vault

import (
	"context"
	"encoding/json"
	"runtime"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"golang.org/x/sync/errgroup"
)

// Credential is the plaintext of one entry. It only exists on the client.
type Credential struct {
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Seal encrypts c under key.
func Seal(c Credential, key []byte) (cryptox.Envelope, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return cryptox.Envelope{}, err
	}
	defer common.WipeByteArray(raw)
	return cryptox.Encrypt(string(raw), key)
}

// Open decrypts one entry. Ciphertext that decrypts but does not hold a
// credential is reported as *cryptox.DecryptionError as well.
func Open(ciphertext, iv string, key []byte) (Credential, error) {
	plain, err := cryptox.Decrypt(ciphertext, iv, key)
	if err != nil {
		return Credential{}, err
	}

	var c Credential
	if err := json.Unmarshal([]byte(plain), &c); err != nil {
		return Credential{}, &cryptox.DecryptionError{}
	}
	return c, nil
}

// Reseal replaces the sealed content of e with c under a fresh IV.
// ID and CreatedAt are preserved; UpdatedAt is left to the store.
func Reseal(e models.Entry, c Credential, key []byte) (models.Entry, error) {
	env, err := Seal(c, key)
	if err != nil {
		return models.Entry{}, err
	}
	e.Data = env.Ciphertext
	e.IV = env.IV
	return e, nil
}

// Result is the outcome of opening one entry in a batch.
type Result struct {
	Entry      models.Entry
	Credential Credential
	Err        error
}

// OpenAll decrypts entries concurrently. The i-th result always belongs to the
// i-th entry, and a failing entry does not affect the others. Entries not yet
// started when ctx is cancelled carry ctx.Err().
func OpenAll(ctx context.Context, entries []models.Entry, key []byte) []Result {
	results := make([]Result, len(entries))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, e := range entries {
		results[i].Entry = e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Credential, results[i].Err = Open(e.Data, e.IV, key)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
