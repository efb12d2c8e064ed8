// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/topiq/ent/predicate"
	"github.com/abhisek/topiq/ent/quizsession"
)

// QuizSessionUpdate is the builder for updating QuizSession entities.
type QuizSessionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizSessionMutation
}

// Where appends a list predicates to the QuizSessionUpdate builder.
func (_u *QuizSessionUpdate) Where(ps ...predicate.QuizSession) *QuizSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizSessionUpdate) SetTopic(v string) *QuizSessionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableTopic(v *string) *QuizSessionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizSessionUpdate) SetQuestionCount(v int) *QuizSessionUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableQuestionCount(v *int) *QuizSessionUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizSessionUpdate) AddQuestionCount(v int) *QuizSessionUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QuizSessionUpdate) SetPayload(v map[string]interface{}) *QuizSessionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *QuizSessionUpdate) SetCurrentIndex(v int) *QuizSessionUpdate {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableCurrentIndex(v *int) *QuizSessionUpdate {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *QuizSessionUpdate) AddCurrentIndex(v int) *QuizSessionUpdate {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizSessionUpdate) SetScore(v int) *QuizSessionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableScore(v *int) *QuizSessionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizSessionUpdate) AddScore(v int) *QuizSessionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuizSessionUpdate) SetStatus(v string) *QuizSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableStatus(v *string) *QuizSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizSessionUpdate) SetCompletedAt(v time.Time) *QuizSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableCompletedAt(v *time.Time) *QuizSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QuizSessionUpdate) ClearCompletedAt() *QuizSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastSavedAt sets the "last_saved_at" field.
func (_u *QuizSessionUpdate) SetLastSavedAt(v time.Time) *QuizSessionUpdate {
	_u.mutation.SetLastSavedAt(v)
	return _u
}

// SetNillableLastSavedAt sets the "last_saved_at" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableLastSavedAt(v *time.Time) *QuizSessionUpdate {
	if v != nil {
		_u.SetLastSavedAt(*v)
	}
	return _u
}

// ClearLastSavedAt clears the value of the "last_saved_at" field.
func (_u *QuizSessionUpdate) ClearLastSavedAt() *QuizSessionUpdate {
	_u.mutation.ClearLastSavedAt()
	return _u
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_u *QuizSessionUpdate) Mutation() *QuizSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizsession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizSession.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionCount(); ok {
		if err := quizsession.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`ent: validator failed for field "QuizSession.question_count": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsession.Table, quizsession.Columns, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizsession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizsession.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizsession.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(quizsession.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(quizsession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(quizsession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizsession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizsession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(quizsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSavedAt(); ok {
		_spec.SetField(quizsession.FieldLastSavedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSavedAtCleared() {
		_spec.ClearField(quizsession.FieldLastSavedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizSessionUpdateOne is the builder for updating a single QuizSession entity.
type QuizSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizSessionMutation
}

// SetTopic sets the "topic" field.
func (_u *QuizSessionUpdateOne) SetTopic(v string) *QuizSessionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableTopic(v *string) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizSessionUpdateOne) SetQuestionCount(v int) *QuizSessionUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableQuestionCount(v *int) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizSessionUpdateOne) AddQuestionCount(v int) *QuizSessionUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QuizSessionUpdateOne) SetPayload(v map[string]interface{}) *QuizSessionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *QuizSessionUpdateOne) SetCurrentIndex(v int) *QuizSessionUpdateOne {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableCurrentIndex(v *int) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *QuizSessionUpdateOne) AddCurrentIndex(v int) *QuizSessionUpdateOne {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizSessionUpdateOne) SetScore(v int) *QuizSessionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableScore(v *int) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizSessionUpdateOne) AddScore(v int) *QuizSessionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuizSessionUpdateOne) SetStatus(v string) *QuizSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableStatus(v *string) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizSessionUpdateOne) SetCompletedAt(v time.Time) *QuizSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QuizSessionUpdateOne) ClearCompletedAt() *QuizSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastSavedAt sets the "last_saved_at" field.
func (_u *QuizSessionUpdateOne) SetLastSavedAt(v time.Time) *QuizSessionUpdateOne {
	_u.mutation.SetLastSavedAt(v)
	return _u
}

// SetNillableLastSavedAt sets the "last_saved_at" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableLastSavedAt(v *time.Time) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetLastSavedAt(*v)
	}
	return _u
}

// ClearLastSavedAt clears the value of the "last_saved_at" field.
func (_u *QuizSessionUpdateOne) ClearLastSavedAt() *QuizSessionUpdateOne {
	_u.mutation.ClearLastSavedAt()
	return _u
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_u *QuizSessionUpdateOne) Mutation() *QuizSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizSessionUpdate builder.
func (_u *QuizSessionUpdateOne) Where(ps ...predicate.QuizSession) *QuizSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizSessionUpdateOne) Select(field string, fields ...string) *QuizSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizSession entity.
func (_u *QuizSessionUpdateOne) Save(ctx context.Context) (*QuizSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionUpdateOne) SaveX(ctx context.Context) *QuizSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizsession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizSession.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionCount(); ok {
		if err := quizsession.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`ent: validator failed for field "QuizSession.question_count": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionUpdateOne) sqlSave(ctx context.Context) (_node *QuizSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsession.Table, quizsession.Columns, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizsession.FieldID)
		for _, f := range fields {
			if !quizsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizsession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizsession.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizsession.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(quizsession.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(quizsession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(quizsession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizsession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizsession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(quizsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSavedAt(); ok {
		_spec.SetField(quizsession.FieldLastSavedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSavedAtCleared() {
		_spec.ClearField(quizsession.FieldLastSavedAt, field.TypeTime)
	}
	_node = &QuizSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
