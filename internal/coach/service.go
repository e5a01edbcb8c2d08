package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/akrishn/studyhub/internal/llm"
)

// Service generates interview drills asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Drill
	err     error
	ready   bool
}

// NewService creates a drill generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestDrill starts async drill generation. Only one drill is in-flight
// at a time — new requests replace pending ones.
func (s *Service) RequestDrill(ctx context.Context, input DrillInput) {
	go func() {
		drill, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = drill
		s.err = err
		s.ready = true
	}()
}

// ConsumeDrill returns the pending drill if one is ready.
// Returns (nil, false) if no drill is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeDrill() (*Drill, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	drill := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return drill, drill != nil
}

type drillOutput struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

func (s *Service) generate(ctx context.Context, input DrillInput) (*Drill, error) {
	ctx = llm.WithPurpose(ctx, "drill")

	req := llm.Request{
		System: drillSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDrillUserMessage(input)},
		},
		Schema:      DrillSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("drill generation: %w", err)
	}

	var out drillOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse drill response: %w", err)
	}
	if out.CorrectIndex < 0 || out.CorrectIndex >= len(out.Options) {
		return nil, fmt.Errorf("drill correct_index %d out of range", out.CorrectIndex)
	}

	return &Drill{
		TopicID:      input.Topic.ID,
		Question:     out.Question,
		Options:      out.Options,
		CorrectIndex: out.CorrectIndex,
		Explanation:  out.Explanation,
	}, nil
}
