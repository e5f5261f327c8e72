// Package coach asks a language model for a short sales tip after the
// trainee misjudges a counter scenario.
package coach

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/llm"
)

// Purpose tags coach requests in the LLM event log.
const Purpose = "sales-coach"

// Config tunes coach requests.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns the coach defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 300, Temperature: 0.4, Timeout: 20 * time.Second}
}

// Tip is the coaching reply.
type Tip struct {
	Tip    string `json:"tip"`
	Phrase string `json:"phrase"`
}

// TipSchema constrains the model output.
var TipSchema = &llm.Schema{
	Name:        "sales-tip",
	Description: "A short coaching tip for a pharmacy clerk",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tip": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining what the clerk should do instead",
				"minLength":   1,
				"maxLength":   400,
			},
			"phrase": map[string]any{
				"type":        "string",
				"description": "A sentence the clerk can say to the customer",
				"minLength":   1,
				"maxLength":   250,
			},
		},
		"required":             []string{"tip", "phrase"},
		"additionalProperties": false,
	},
}

// Coach produces tips. A nil *Coach is valid and reports Enabled false.
type Coach struct {
	provider llm.Provider
	cfg      Config
	logger   *slog.Logger
}

// New returns a coach backed by provider, or nil when provider is nil.
func New(provider llm.Provider, cfg Config, logger *slog.Logger) *Coach {
	if provider == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coach{provider: provider, cfg: cfg, logger: logger}
}

// Enabled reports whether tips can be requested.
func (c *Coach) Enabled() bool {
	return c != nil && c.provider != nil
}

// Suggest asks for a tip on scenario sc, which the trainee judged as
// judgedCorrect.
func (c *Coach) Suggest(ctx context.Context, sc content.Scenario, judgedCorrect bool) (*Tip, error) {
	if !c.Enabled() {
		return nil, errors.New("coach disabled")
	}
	ctx = llm.WithPurpose(ctx, Purpose)
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	prompt, err := buildPrompt(sc, judgedCorrect)
	if err != nil {
		return nil, fmt.Errorf("build coach prompt: %w", err)
	}
	req := llm.UserPrompt(systemPrompt, prompt)
	req.Schema = TipSchema
	req.MaxTokens = c.cfg.MaxTokens
	req.Temperature = c.cfg.Temperature

	tip, _, err := llm.GenerateJSON[Tip](ctx, c.provider, req)
	if err != nil {
		c.logger.Warn("coach request failed", "scenarioId", sc.ID, "error", err)
		return nil, fmt.Errorf("coach tip: %w", err)
	}
	tip.Tip = strings.TrimSpace(tip.Tip)
	tip.Phrase = strings.TrimSpace(tip.Phrase)
	return &tip, nil
}

const systemPrompt = `Eres un entrenador de ventas para personal de farmacia en Ecuador. El producto es BIOFIT, fibra natural de psyllium muciloide de PharmaBrand S.A.

Reglas:
- Responde en español neutro, con tono cordial y profesional.
- No hagas afirmaciones médicas que no estén en el escenario.
- "tip" explica en una o dos frases qué debió hacer el dependiente.
- "phrase" es una frase breve que el dependiente puede decir al cliente.`

type promptData struct {
	content.Scenario
	JudgedCorrect bool
}

var promptTemplate = template.Must(template.New("coach").Parse(`Cliente: {{.Customer}}
Respuesta del dependiente: {{.ClerkResponse}}
La respuesta del dependiente {{if .IsCorrect}}era adecuada{{else}}no era adecuada{{end}}.
El alumno la calificó como {{if .JudgedCorrect}}adecuada{{else}}inadecuada{{end}}.
{{if .CorrectAction}}Acción recomendada: {{.CorrectAction}}
{{end}}Retroalimentación del curso: {{.Feedback}}`))

func buildPrompt(sc content.Scenario, judgedCorrect bool) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, promptData{Scenario: sc, JudgedCorrect: judgedCorrect}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
