// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonSaltLen = 16
	argonKeyLen  = 32

	// maxCostFactor bounds the cost a stored verifier may ask for, relative
	// to the larger of the configured and the default parameters.
	maxCostFactor = 16
	maxKeyLen     = 128
)

var b64 = base64.RawStdEncoding

// ErrEntropy is returned by Hash when random salt generation fails.
var ErrEntropy = errors.New("failed to read random salt")

// Argon2Params are the argon2id cost parameters embedded in every verifier.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgon2Params follow the OWASP minimum recommendation for argon2id:
// 19 MiB of memory, 2 iterations, 1 degree of parallelism.
var DefaultArgon2Params = Argon2Params{Time: 2, Memory: 19 * 1024, Threads: 1}

// argon2Hasher is the argon2id implementation of [PasswordHasher].
//
// Verifiers use the PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>
//
// with unpadded standard base64 for salt and key. Verification reads the
// parameters from the verifier, so changing the configured cost never
// invalidates existing users.
type argon2Hasher struct {
	params Argon2Params
	random io.Reader
}

// NewArgon2Hasher constructs a [PasswordHasher] with the given cost.
func NewArgon2Hasher(params Argon2Params) PasswordHasher {
	return &argon2Hasher{params: params, random: rand.Reader}
}

// Hash implements [PasswordHasher].
func (h *argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.params.Time, h.params.Memory, h.params.Threads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Time, h.params.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// Verify implements [PasswordHasher].
func (h *argon2Hasher) Verify(plaintext, verifier string) bool {
	params, salt, key, ok := decodeVerifier(verifier)
	if !ok || !h.affordable(params) || len(key) > maxKeyLen {
		return false
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, params.Time, params.Memory, params.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

// affordable reports whether p stays within maxCostFactor times the larger of
// the hasher's own and the default parameters.
func (h *argon2Hasher) affordable(p Argon2Params) bool {
	within := func(got, configured, def uint32) bool {
		return uint64(got) <= uint64(max(configured, def))*maxCostFactor
	}
	return within(p.Time, h.params.Time, DefaultArgon2Params.Time) &&
		within(p.Memory, h.params.Memory, DefaultArgon2Params.Memory) &&
		within(uint32(p.Threads), uint32(h.params.Threads), uint32(DefaultArgon2Params.Threads))
}

// decodeVerifier splits a PHC argon2id string. ok is false for anything that
// is not a well-formed argon2id verifier of the supported version.
func decodeVerifier(verifier string) (params Argon2Params, salt, key []byte, ok bool) {
	parts := strings.Split(verifier, "$")
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, false
	}
	if params.Memory == 0 || params.Time == 0 || params.Threads == 0 {
		return params, nil, nil, false
	}

	var err error
	if salt, err = b64.DecodeString(parts[4]); err != nil || len(salt) == 0 {
		return params, nil, nil, false
	}
	if key, err = b64.DecodeString(parts[5]); err != nil || len(key) == 0 {
		return params, nil, nil, false
	}

	return params, salt, key, true
}
