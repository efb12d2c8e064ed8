package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/topiq/ent"
	"github.com/abhisek/topiq/ent/quizsession"
	"github.com/abhisek/topiq/internal/question"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

// sessionPayload is the JSON document stored in the payload column. Scalar
// fields that queries filter or sort on live in their own columns instead.
type sessionPayload struct {
	Questions []question.Question `json:"questions"`
	Answers   []question.Answer   `json:"answers"`
}

func (r *sessionRepo) Save(ctx context.Context, rec *SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	payload, err := payloadToMap(sessionPayload{
		Questions: rec.Questions,
		Answers:   rec.Answers,
	})
	if err != nil {
		return "", fmt.Errorf("marshal session payload: %w", err)
	}

	n, err := r.client.QuizSession.Update().
		Where(quizsession.SessionID(rec.ID)).
		SetTopic(rec.Topic).
		SetQuestionCount(len(rec.Questions)).
		SetPayload(payload).
		SetCurrentIndex(rec.CurrentIndex).
		SetScore(rec.Score).
		SetStatus(string(rec.Status)).
		SetNillableCompletedAt(timePtr(rec.CompletedAt)).
		SetNillableLastSavedAt(timePtr(rec.LastSavedAt)).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("update session: %w", err)
	}
	if n > 0 {
		return rec.ID, nil
	}

	create := r.client.QuizSession.Create().
		SetSessionID(rec.ID).
		SetTopic(rec.Topic).
		SetQuestionCount(len(rec.Questions)).
		SetPayload(payload).
		SetCurrentIndex(rec.CurrentIndex).
		SetScore(rec.Score).
		SetStatus(string(rec.Status)).
		SetNillableCompletedAt(timePtr(rec.CompletedAt)).
		SetNillableLastSavedAt(timePtr(rec.LastSavedAt))
	if !rec.CreatedAt.IsZero() {
		create.SetCreatedAt(rec.CreatedAt)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	rec.CreatedAt = row.CreatedAt
	return rec.ID, nil
}

func (r *sessionRepo) Load(ctx context.Context, id string) (*SessionRecord, error) {
	row, err := r.client.QuizSession.Query().
		Where(quizsession.SessionID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session %s: %w", id, err)
	}
	return entSessionToRecord(row)
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.QuizSession.Delete().
		Where(quizsession.SessionID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context, f Filter) ([]*SessionRecord, error) {
	q := r.client.QuizSession.Query()
	if f.Status != "" {
		q = q.Where(quizsession.Status(string(f.Status)))
	}
	if f.Topic != "" {
		q = q.Where(quizsession.TopicContainsFold(f.Topic))
	}
	if !f.Since.IsZero() {
		q = q.Where(quizsession.CreatedAtGTE(f.Since))
	}

	rows, err := q.Order(ent.Desc(quizsession.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	recs := make([]*SessionRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := entSessionToRecord(row)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// timePtr maps the zero time to nil for nillable ent columns.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// payloadToMap converts the payload struct to map[string]any for ent JSON storage.
func payloadToMap(p sessionPayload) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSessionToRecord converts an ent QuizSession row to a SessionRecord. The
// payload is schema-checked before unmarshalling so a hand-edited or corrupt
// row surfaces a clear error rather than a half-populated session.
func entSessionToRecord(row *ent.QuizSession) (*SessionRecord, error) {
	if err := validatePayload(row.Payload); err != nil {
		return nil, fmt.Errorf("session %s payload: %w", row.SessionID, err)
	}

	b, err := json.Marshal(row.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal ent payload: %w", err)
	}
	var p sessionPayload
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal session payload: %w", err)
	}

	rec := &SessionRecord{
		ID:           row.SessionID,
		Topic:        row.Topic,
		Questions:    p.Questions,
		Answers:      p.Answers,
		CurrentIndex: row.CurrentIndex,
		Score:        row.Score,
		Status:       Status(row.Status),
		CreatedAt:    row.CreatedAt,
	}
	if row.CompletedAt != nil {
		rec.CompletedAt = *row.CompletedAt
	}
	if row.LastSavedAt != nil {
		rec.LastSavedAt = *row.LastSavedAt
	}

	// Answers must parallel questions; pad older rows saved before the
	// first answer was submitted.
	for len(rec.Answers) < len(rec.Questions) {
		rec.Answers = append(rec.Answers, question.Answer{})
	}
	return rec, nil
}

// payloadSchemaDef constrains the stored payload shape. Only structure is
// checked here; per-question semantics are the parser's concern.
var payloadSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"questions"},
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"kind", "prompt"},
				"properties": map[string]any{
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"multiple-choice", "ordering", "matching"},
					},
					"prompt": map[string]any{"type": "string", "minLength": 1},
				},
			},
		},
		"answers": map[string]any{
			"type": "array",
			"items": map[string]any{"type": "object"},
		},
	},
}

var (
	payloadSchemaOnce sync.Once
	payloadSchema     *jsonschema.Schema
	payloadSchemaErr  error
)

// validatePayload checks a payload map against the session payload schema.
func validatePayload(payload map[string]any) error {
	payloadSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so round-trip
		// the definition through encoding/json first.
		b, err := json.Marshal(payloadSchemaDef)
		if err != nil {
			payloadSchemaErr = fmt.Errorf("marshal payload schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(b, &def); err != nil {
			payloadSchemaErr = fmt.Errorf("parse payload schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://session-payload.json"
		if err := c.AddResource(url, def); err != nil {
			payloadSchemaErr = fmt.Errorf("add payload schema: %w", err)
			return
		}
		payloadSchema, payloadSchemaErr = c.Compile(url)
	})
	if payloadSchemaErr != nil {
		return payloadSchemaErr
	}

	// Round-trip through JSON so the validator sees plain decoded values.
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for validation: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("parse payload for validation: %w", err)
	}
	if err := payloadSchema.Validate(doc); err != nil {
		return fmt.Errorf("payload schema validation failed: %w", err)
	}
	return nil
}
