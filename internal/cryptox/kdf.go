// Package cryptox holds the client-side cryptographic primitives: scrypt key
// derivation, the AES-256-CBC envelope used for vault entries and the auth
// tag, and the verifier presented to the server's auth layer.
package cryptox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/bits"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"golang.org/x/crypto/scrypt"
)

const (
	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// SaltSize is the number of random bytes in a freshly generated salt.
	SaltSize = 16

	// ParamsVersion is the only KDF parameter layout understood today.
	ParamsVersion = 1

	// DefaultMaxMem is the memory ceiling applied when Params.MaxMem is zero.
	DefaultMaxMem = 64 * 1024 * 1024
)

// Params describes one scrypt configuration. It is stored next to the
// account so that keys can be re-derived with exactly the same cost.
type Params struct {
	// Version identifies the layout. Zero is read as ParamsVersion, which
	// covers records written before the field existed.
	Version int `json:"version,omitempty"`
	// Cost is scrypt N; must be a power of two greater than one.
	Cost int `json:"cost"`
	// BlockSize is scrypt r.
	BlockSize int `json:"blockSize"`
	// Parallelization is scrypt p.
	Parallelization int `json:"parallelization"`
	// MaxMem caps the memory a derivation may use, in bytes.
	MaxMem int64 `json:"maxmem,omitempty"`
}

// DefaultParams returns the parameters used for new accounts.
func DefaultParams() Params {
	return Params{
		Version:         ParamsVersion,
		Cost:            1 << 15,
		BlockSize:       8,
		Parallelization: 1,
		MaxMem:          DefaultMaxMem,
	}
}

// ParameterError reports KDF parameters that cannot be used as given.
// Parameters are never adjusted to make them fit.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid kdf parameter %s: %s", e.Field, e.Reason)
}

// MemoryRequired returns the number of bytes scrypt allocates for p.
func (p Params) MemoryRequired() uint64 {
	r := uint64(p.BlockSize)
	return 128 * r * (uint64(p.Cost) + uint64(p.Parallelization) + 2)
}

// MemoryLimit returns p.MaxMem, or DefaultMaxMem when it is unset.
func (p Params) MemoryLimit() int64 {
	if p.MaxMem == 0 {
		return DefaultMaxMem
	}
	return p.MaxMem
}

// Validate checks p without touching it.
func (p Params) Validate() error {
	if p.Version != 0 && p.Version != ParamsVersion {
		return &ParameterError{Field: "version", Reason: fmt.Sprintf("unsupported version %d", p.Version)}
	}
	if p.Cost <= 1 || bits.OnesCount(uint(p.Cost)) != 1 {
		return &ParameterError{Field: "cost", Reason: "must be a power of two greater than 1"}
	}
	if p.BlockSize <= 0 {
		return &ParameterError{Field: "blockSize", Reason: "must be positive"}
	}
	if p.Parallelization <= 0 {
		return &ParameterError{Field: "parallelization", Reason: "must be positive"}
	}
	if uint64(p.BlockSize)*uint64(p.Parallelization) >= 1<<30 {
		return &ParameterError{Field: "blockSize", Reason: "blockSize*parallelization must be below 2^30"}
	}
	if p.MaxMem < 0 {
		return &ParameterError{Field: "maxmem", Reason: "must not be negative"}
	}
	if need := p.MemoryRequired(); need > uint64(p.MemoryLimit()) {
		return &ParameterError{
			Field:  "maxmem",
			Reason: fmt.Sprintf("derivation needs %d bytes, limit is %d", need, p.MemoryLimit()),
		}
	}
	return nil
}

// UnmarshalJSON rejects unknown fields so that a record written by a newer
// layout is not silently misread.
func (p *Params) UnmarshalJSON(data []byte) error {
	type plain Params
	var v plain

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return &ParameterError{Field: "params", Reason: err.Error()}
	}

	*p = Params(v)
	return nil
}

// Derive stretches password with salt into a KeySize-byte key.
// The same inputs always produce the same key.
//
// limit is the caller's memory ceiling in bytes (DefaultMaxMem when not
// positive). Params read from a stored record may lower it through MaxMem
// but never raise it.
func Derive(password, salt []byte, p Params, limit int64) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultMaxMem
	}
	if need := p.MemoryRequired(); need > uint64(limit) {
		return nil, &ParameterError{
			Field:  "cost",
			Reason: fmt.Sprintf("derivation needs %d bytes, caller allows %d", need, limit),
		}
	}
	key, err := scrypt.Key(password, salt, p.Cost, p.BlockSize, p.Parallelization, KeySize)
	if err != nil {
		return nil, &ParameterError{Field: "params", Reason: err.Error()}
	}
	return key, nil
}

// NewSalt returns SaltSize random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}
