// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/topiq/ent/llmrequestevent"
	"github.com/abhisek/topiq/ent/quizsession"
	"github.com/abhisek/topiq/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	quizsessionFields := schema.QuizSession{}.Fields()
	_ = quizsessionFields
	// quizsessionDescSessionID is the schema descriptor for session_id field.
	quizsessionDescSessionID := quizsessionFields[0].Descriptor()
	// quizsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizsession.SessionIDValidator = quizsessionDescSessionID.Validators[0].(func(string) error)
	// quizsessionDescTopic is the schema descriptor for topic field.
	quizsessionDescTopic := quizsessionFields[1].Descriptor()
	// quizsession.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizsession.TopicValidator = quizsessionDescTopic.Validators[0].(func(string) error)
	// quizsessionDescQuestionCount is the schema descriptor for question_count field.
	quizsessionDescQuestionCount := quizsessionFields[2].Descriptor()
	// quizsession.QuestionCountValidator is a validator for the "question_count" field. It is called by the builders before save.
	quizsession.QuestionCountValidator = quizsessionDescQuestionCount.Validators[0].(func(int) error)
	// quizsessionDescCurrentIndex is the schema descriptor for current_index field.
	quizsessionDescCurrentIndex := quizsessionFields[4].Descriptor()
	// quizsession.DefaultCurrentIndex holds the default value on creation for the current_index field.
	quizsession.DefaultCurrentIndex = quizsessionDescCurrentIndex.Default.(int)
	// quizsessionDescScore is the schema descriptor for score field.
	quizsessionDescScore := quizsessionFields[5].Descriptor()
	// quizsession.DefaultScore holds the default value on creation for the score field.
	quizsession.DefaultScore = quizsessionDescScore.Default.(int)
	// quizsessionDescStatus is the schema descriptor for status field.
	quizsessionDescStatus := quizsessionFields[6].Descriptor()
	// quizsession.DefaultStatus holds the default value on creation for the status field.
	quizsession.DefaultStatus = quizsessionDescStatus.Default.(string)
	// quizsessionDescCreatedAt is the schema descriptor for created_at field.
	quizsessionDescCreatedAt := quizsessionFields[7].Descriptor()
	// quizsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizsession.DefaultCreatedAt = quizsessionDescCreatedAt.Default.(func() time.Time)
}
