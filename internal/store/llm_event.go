package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/topiq/ent"
	"github.com/abhisek/topiq/ent/llmrequestevent"
)

// LLMRequestEventData captures one provider call for the audit log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored provider call, newest-first from Recent.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo records LLM provider calls. Logging failures are the caller's
// problem to report; they never fail the request that triggered them.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	Recent(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}

// eventRepo implements EventRepo backed by ent.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) Recent(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	events := make([]LLMRequestEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, LLMRequestEvent{
			ID:        row.ID,
			Timestamp: row.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return events, nil
}
