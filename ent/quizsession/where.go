// Code generated by ent, DO NOT EDIT.

package quizsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/topiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldSessionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldTopic, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldQuestionCount, v))
}

// CurrentIndex applies equality check predicate on the "current_index" field. It's identical to CurrentIndexEQ.
func CurrentIndex(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldCurrentIndex, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldScore, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldCompletedAt, v))
}

// LastSavedAt applies equality check predicate on the "last_saved_at" field. It's identical to LastSavedAtEQ.
func LastSavedAt(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldLastSavedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContainsFold(FieldTopic, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldQuestionCount, v))
}

// CurrentIndexEQ applies the EQ predicate on the "current_index" field.
func CurrentIndexEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldCurrentIndex, v))
}

// CurrentIndexNEQ applies the NEQ predicate on the "current_index" field.
func CurrentIndexNEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldCurrentIndex, v))
}

// CurrentIndexIn applies the In predicate on the "current_index" field.
func CurrentIndexIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldCurrentIndex, vs...))
}

// CurrentIndexNotIn applies the NotIn predicate on the "current_index" field.
func CurrentIndexNotIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldCurrentIndex, vs...))
}

// CurrentIndexGT applies the GT predicate on the "current_index" field.
func CurrentIndexGT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldCurrentIndex, v))
}

// CurrentIndexGTE applies the GTE predicate on the "current_index" field.
func CurrentIndexGTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldCurrentIndex, v))
}

// CurrentIndexLT applies the LT predicate on the "current_index" field.
func CurrentIndexLT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldCurrentIndex, v))
}

// CurrentIndexLTE applies the LTE predicate on the "current_index" field.
func CurrentIndexLTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldCurrentIndex, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotNull(FieldCompletedAt))
}

// LastSavedAtEQ applies the EQ predicate on the "last_saved_at" field.
func LastSavedAtEQ(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldLastSavedAt, v))
}

// LastSavedAtNEQ applies the NEQ predicate on the "last_saved_at" field.
func LastSavedAtNEQ(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldLastSavedAt, v))
}

// LastSavedAtIn applies the In predicate on the "last_saved_at" field.
func LastSavedAtIn(vs ...time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldLastSavedAt, vs...))
}

// LastSavedAtNotIn applies the NotIn predicate on the "last_saved_at" field.
func LastSavedAtNotIn(vs ...time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldLastSavedAt, vs...))
}

// LastSavedAtGT applies the GT predicate on the "last_saved_at" field.
func LastSavedAtGT(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldLastSavedAt, v))
}

// LastSavedAtGTE applies the GTE predicate on the "last_saved_at" field.
func LastSavedAtGTE(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldLastSavedAt, v))
}

// LastSavedAtLT applies the LT predicate on the "last_saved_at" field.
func LastSavedAtLT(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldLastSavedAt, v))
}

// LastSavedAtLTE applies the LTE predicate on the "last_saved_at" field.
func LastSavedAtLTE(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldLastSavedAt, v))
}

// LastSavedAtIsNil applies the IsNil predicate on the "last_saved_at" field.
func LastSavedAtIsNil() predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIsNull(FieldLastSavedAt))
}

// LastSavedAtNotNil applies the NotNil predicate on the "last_saved_at" field.
func LastSavedAtNotNil() predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotNull(FieldLastSavedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizSession) predicate.QuizSession {
	return predicate.QuizSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizSession) predicate.QuizSession {
	return predicate.QuizSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizSession) predicate.QuizSession {
	return predicate.QuizSession(sql.NotPredicates(p))
}
