// Code generated by ent, DO NOT EDIT.

package quizsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizsession type in the database.
	Label = "quiz_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCurrentIndex holds the string denoting the current_index field in the database.
	FieldCurrentIndex = "current_index"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastSavedAt holds the string denoting the last_saved_at field in the database.
	FieldLastSavedAt = "last_saved_at"
	// Table holds the table name of the quizsession in the database.
	Table = "quiz_sessions"
)

// Columns holds all SQL columns for quizsession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTopic,
	FieldQuestionCount,
	FieldPayload,
	FieldCurrentIndex,
	FieldScore,
	FieldStatus,
	FieldCreatedAt,
	FieldCompletedAt,
	FieldLastSavedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// QuestionCountValidator is a validator for the "question_count" field. It is called by the builders before save.
	QuestionCountValidator func(int) error
	// DefaultCurrentIndex holds the default value on creation for the "current_index" field.
	DefaultCurrentIndex int
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the QuizSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByCurrentIndex orders the results by the current_index field.
func ByCurrentIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentIndex, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastSavedAt orders the results by the last_saved_at field.
func ByLastSavedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSavedAt, opts...).ToFunc()
}
