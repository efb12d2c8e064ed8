package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizSession is one user's attempt at a generated quiz, from creation
// through completion. Questions and answers travel together as a single
// JSON payload; the scalar columns exist for history filtering and sorting.
type QuizSession struct {
	ent.Schema
}

func (QuizSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Opaque UUID assigned on first persist"),
		field.String("topic").
			NotEmpty().
			Comment("User-provided quiz topic"),
		field.Int("question_count").
			Positive().
			Comment("Number of questions, fixed at creation"),
		field.JSON("payload", map[string]any{}).
			Comment("Questions and answers as JSON"),
		field.Int("current_index").
			Default(0).
			Comment("0-based index of the question being viewed"),
		field.Int("score").
			Default(0).
			Comment("Count of correctly answered questions"),
		field.String("status").
			Default("incomplete").
			Comment("incomplete or completed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the session was created"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the session was finished"),
		field.Time("last_saved_at").
			Optional().
			Nillable().
			Comment("When the last snapshot was written"),
	}
}

func (QuizSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("status"),
		index.Fields("topic"),
		index.Fields("created_at"),
	}
}
