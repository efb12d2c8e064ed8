// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// QuizSessionsColumns holds the columns for the "quiz_sessions" table.
	QuizSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "current_index", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "incomplete"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_saved_at", Type: field.TypeTime, Nullable: true},
	}
	// QuizSessionsTable holds the schema information for the "quiz_sessions" table.
	QuizSessionsTable = &schema.Table{
		Name:       "quiz_sessions",
		Columns:    QuizSessionsColumns,
		PrimaryKey: []*schema.Column{QuizSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsession_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[1]},
			},
			{
				Name:    "quizsession_status",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[7]},
			},
			{
				Name:    "quizsession_topic",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[2]},
			},
			{
				Name:    "quizsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuizSessionsTable,
	}
)

func init() {
}
