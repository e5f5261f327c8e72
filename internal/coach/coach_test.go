package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/llm"
	"github.com/santgross/BIOFIT-EXPERT/internal/logging"
)

var scenario = content.Scenario{
	ID:            7,
	Customer:      "¿BIOFIT me sirve para el colesterol?",
	ClerkResponse: "No, solo es para el estreñimiento.",
	IsCorrect:     false,
	CorrectAction: "Explicar que la fibra soluble ayuda a reducir la absorción de colesterol.",
	Feedback:      "BIOFIT también apoya el control metabólico.",
}

func TestSuggest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(Tip{
		Tip:    " Menciona el beneficio metabólico. ",
		Phrase: "La fibra de BIOFIT ayuda a controlar el colesterol.",
	}))
	c := New(mock, DefaultConfig(), logging.Discard())
	require.True(t, c.Enabled())

	tip, err := c.Suggest(context.Background(), scenario, true)
	require.NoError(t, err)
	assert.Equal(t, "Menciona el beneficio metabólico.", tip.Tip)
	assert.NotEmpty(t, tip.Phrase)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Same(t, TipSchema, calls[0].Schema)
	prompt := calls[0].Messages[0].Content
	assert.Contains(t, prompt, scenario.Customer)
	assert.Contains(t, prompt, "no era adecuada")
	assert.Contains(t, prompt, "calificó como adecuada")
	assert.Contains(t, prompt, scenario.CorrectAction)
}

func TestSuggestRejectsInvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{"tip": "solo tip"}))
	c := New(mock, DefaultConfig(), logging.Discard())

	_, err := c.Suggest(context.Background(), scenario, true)
	require.Error(t, err)
	var invalid *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid))
}

func TestSuggestProviderError(t *testing.T) {
	c := New(llm.NewMockProvider(), DefaultConfig(), logging.Discard())
	_, err := c.Suggest(context.Background(), scenario, false)
	assert.Error(t, err)
}

func TestNilCoachDisabled(t *testing.T) {
	c := New(nil, DefaultConfig(), nil)
	assert.Nil(t, c)
	assert.False(t, c.Enabled())
	_, err := c.Suggest(context.Background(), scenario, true)
	assert.Error(t, err)
}
