package crypto

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// cheap parameters keep the suite fast; the format is identical.
var testParams = Argon2Params{Time: 1, Memory: 64, Threads: 1}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	h := NewArgon2Hasher(testParams)

	verifier, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(verifier, "$argon2id$v=19$m=64,t=1,p=1$"))
	assert.NotContains(t, verifier, "secret1")
	assert.True(t, h.Verify("secret1", verifier))
	assert.False(t, h.Verify("secret2", verifier))
	assert.False(t, h.Verify("", verifier))
}

func TestArgon2Hasher_SaltedVerifiersDiffer(t *testing.T) {
	h := NewArgon2Hasher(testParams)

	v1, err := h.Hash("same password")
	require.NoError(t, err)
	v2, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, v1, v2)
	assert.True(t, h.Verify("same password", v1))
	assert.True(t, h.Verify("same password", v2))
}

func TestArgon2Hasher_VerifyUsesEmbeddedParams(t *testing.T) {
	old := NewArgon2Hasher(testParams)
	verifier, err := old.Hash("pw")
	require.NoError(t, err)

	upgraded := NewArgon2Hasher(Argon2Params{Time: 2, Memory: 128, Threads: 2})
	assert.True(t, upgraded.Verify("pw", verifier))
}

func TestArgon2Hasher_MalformedVerifier(t *testing.T) {
	h := NewArgon2Hasher(testParams)

	tests := []struct {
		name     string
		verifier string
	}{
		{name: "empty", verifier: ""},
		{name: "plaintext", verifier: "secret1"},
		{name: "wrong algorithm", verifier: "$argon2i$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$a2V5"},
		{name: "wrong version", verifier: "$argon2id$v=16$m=64,t=1,p=1$c2FsdHNhbHQ$a2V5"},
		{name: "bad params", verifier: "$argon2id$v=19$m=x,t=1,p=1$c2FsdHNhbHQ$a2V5"},
		{name: "zero threads", verifier: "$argon2id$v=19$m=64,t=1,p=0$c2FsdHNhbHQ$a2V5"},
		{name: "bad salt", verifier: "$argon2id$v=19$m=64,t=1,p=1$!!!$a2V5"},
		{name: "empty key", verifier: "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$"},
		{name: "too many fields", verifier: "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$a2V5$x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("secret1", tt.verifier))
			})
		})
	}
}

func TestArgon2Hasher_RejectsExcessiveCost(t *testing.T) {
	h := NewArgon2Hasher(testParams)
	longKey := b64.EncodeToString(make([]byte, maxKeyLen+1))

	tests := []struct {
		name     string
		verifier string
	}{
		{name: "time", verifier: "$argon2id$v=19$m=64,t=2000,p=1$c2FsdHNhbHQ$a2V5"},
		{name: "memory", verifier: "$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHQ$a2V5"},
		{name: "threads", verifier: "$argon2id$v=19$m=64,t=1,p=255$c2FsdHNhbHQ$a2V5"},
		{name: "key length", verifier: "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$" + longKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("secret1", tt.verifier))
		})
	}
}

func TestArgon2Hasher_CostCeilingFollowsConfiguredParams(t *testing.T) {
	costly := Argon2Params{Time: 40, Memory: 64, Threads: 1}
	verifier, err := NewArgon2Hasher(costly).Hash("pw")
	require.NoError(t, err)

	assert.True(t, NewArgon2Hasher(costly).Verify("pw", verifier))
	assert.False(t, NewArgon2Hasher(testParams).Verify("pw", verifier),
		"t=40 is above 16x the default time cost")
}

func TestArgon2Hasher_EntropyFailure(t *testing.T) {
	h := &argon2Hasher{params: testParams, random: failingReader{}}

	verifier, err := h.Hash("secret1")

	assert.ErrorIs(t, err, ErrEntropy)
	assert.Empty(t, verifier)
}

func TestArgon2Hasher_Properties(t *testing.T) {
	h := NewArgon2Hasher(testParams)

	rapid.Check(t, func(t *rapid.T) {
		pw := rapid.String().Draw(t, "password")
		other := rapid.String().Filter(func(s string) bool { return s != pw }).Draw(t, "other")

		verifier, err := h.Hash(pw)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		if !h.Verify(pw, verifier) {
			t.Fatalf("verify(p, hash(p)) is false")
		}
		if h.Verify(other, verifier) {
			t.Fatalf("verify(q, hash(p)) is true for q != p")
		}
	})
}
