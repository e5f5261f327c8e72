package content

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinIsValid(t *testing.T) {
	require.NoError(t, Validate(Builtin()))
}

func TestBuiltinCounts(t *testing.T) {
	p := Builtin()
	assert.Len(t, p.TrueFalse[1], 5)
	assert.Len(t, p.TrueFalse[2], 4)
	assert.Len(t, p.TrueFalse[3], 4)
	assert.Len(t, p.Match[1], 8)
	assert.Empty(t, p.Match[3])
	assert.Empty(t, p.Scenarios[1])
	assert.Len(t, p.Scenarios[2], 4)
	assert.Len(t, p.Scenarios[3], 3)
	assert.Len(t, p.Trivia[1], 4)
	assert.Len(t, p.Badges, 3)
	assert.Equal(t, Thresholds{Avanzado: 400, Experto: 800, Maestro: 1200}, p.Thresholds)
}

func TestPoolLevel(t *testing.T) {
	p := Builtin()
	tests := []struct {
		module Module
		level  int
		want   int
	}{
		{ModuleTrueFalse, 1, 1},
		{ModuleTrueFalse, 3, 3},
		{ModuleMatch, 3, 2},    // level 3 has no pairs, fall back down
		{ModuleScenario, 1, 2}, // nothing at or below 1, take nearest above
		{ModuleScenario, 3, 3},
		{ModuleTrivia, 2, 2},
	}
	for _, tt := range tests {
		got, ok := p.PoolLevel(tt.module, tt.level)
		if !ok {
			t.Errorf("PoolLevel(%s, %d): no content", tt.module, tt.level)
			continue
		}
		if got != tt.want {
			t.Errorf("PoolLevel(%s, %d) = %d, want %d", tt.module, tt.level, got, tt.want)
		}
	}
}

func TestPoolLevelEmptyModule(t *testing.T) {
	p := &Pack{}
	_, ok := p.PoolLevel(ModuleTrivia, 1)
	assert.False(t, ok)
}

func TestPoolIDs(t *testing.T) {
	p := Builtin()
	assert.Equal(t, []string{"tf-101", "tf-102", "tf-103", "tf-104", "tf-105"}, p.PoolIDs(ModuleTrueFalse, 1))
	assert.Equal(t, []string{"trivia-11", "trivia-12", "trivia-13", "trivia-14"}, p.PoolIDs(ModuleTrivia, 1))
	assert.Nil(t, p.PoolIDs(ModuleMatch, 1))
}

func TestValidateRejectsAsymmetricPair(t *testing.T) {
	p := Builtin()
	p.Match[1][1].MatchID = "2a"
	err := Validate(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not symmetric")
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	p := Builtin()
	p.TrueFalse[2] = append(p.TrueFalse[2], TrueFalseQuestion{ID: 101, Statement: "x"})
	err := Validate(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate true-false item ID: 101")
}

func TestValidateRejectsTriviaIndex(t *testing.T) {
	p := Builtin()
	p.Trivia[1][0].CorrectIndex = 3
	err := Validate(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestExportLoadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Builtin()))

	p, err := Load(&buf, "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, Builtin(), p)
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	_, err := Load(strings.NewReader(`{"version":"1"}`), "1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{`), "1.0.0")
	require.Error(t, err)
}

func TestLoadVersionGate(t *testing.T) {
	p := Builtin()
	p.MinAppVersion = "2.1.0"
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, p))
	raw := buf.Bytes()

	_, err := Load(bytes.NewReader(raw), "2.0.5")
	assert.True(t, errors.Is(err, ErrIncompatible), "got %v", err)

	_, err = Load(bytes.NewReader(raw), "v2.1.0")
	assert.NoError(t, err)

	// Development builds are not gated.
	_, err = Load(bytes.NewReader(raw), "(devel)")
	assert.NoError(t, err)
}
