// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/topiq/ent/quizsession"
)

// QuizSessionCreate is the builder for creating a QuizSession entity.
type QuizSessionCreate struct {
	config
	mutation *QuizSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *QuizSessionCreate) SetSessionID(v string) *QuizSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuizSessionCreate) SetTopic(v string) *QuizSessionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *QuizSessionCreate) SetQuestionCount(v int) *QuizSessionCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QuizSessionCreate) SetPayload(v map[string]interface{}) *QuizSessionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCurrentIndex sets the "current_index" field.
func (_c *QuizSessionCreate) SetCurrentIndex(v int) *QuizSessionCreate {
	_c.mutation.SetCurrentIndex(v)
	return _c
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableCurrentIndex(v *int) *QuizSessionCreate {
	if v != nil {
		_c.SetCurrentIndex(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizSessionCreate) SetScore(v int) *QuizSessionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableScore(v *int) *QuizSessionCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuizSessionCreate) SetStatus(v string) *QuizSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableStatus(v *string) *QuizSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuizSessionCreate) SetCreatedAt(v time.Time) *QuizSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableCreatedAt(v *time.Time) *QuizSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QuizSessionCreate) SetCompletedAt(v time.Time) *QuizSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableCompletedAt(v *time.Time) *QuizSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastSavedAt sets the "last_saved_at" field.
func (_c *QuizSessionCreate) SetLastSavedAt(v time.Time) *QuizSessionCreate {
	_c.mutation.SetLastSavedAt(v)
	return _c
}

// SetNillableLastSavedAt sets the "last_saved_at" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableLastSavedAt(v *time.Time) *QuizSessionCreate {
	if v != nil {
		_c.SetLastSavedAt(*v)
	}
	return _c
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_c *QuizSessionCreate) Mutation() *QuizSessionMutation {
	return _c.mutation
}

// Save creates the QuizSession in the database.
func (_c *QuizSessionCreate) Save(ctx context.Context) (*QuizSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizSessionCreate) SaveX(ctx context.Context) *QuizSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizSessionCreate) defaults() {
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		v := quizsession.DefaultCurrentIndex
		_c.mutation.SetCurrentIndex(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := quizsession.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := quizsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quizsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuizSession.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := quizsession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizSession.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "QuizSession.question_count"`)}
	}
	if v, ok := _c.mutation.QuestionCount(); ok {
		if err := quizsession.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`ent: validator failed for field "QuizSession.question_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "QuizSession.payload"`)}
	}
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		return &ValidationError{Name: "current_index", err: errors.New(`ent: missing required field "QuizSession.current_index"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizSession.score"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuizSession.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuizSession.created_at"`)}
	}
	return nil
}

func (_c *QuizSessionCreate) sqlSave(ctx context.Context) (*QuizSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizSessionCreate) createSpec() (*QuizSession, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizsession.Table, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(quizsession.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(quizsession.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(quizsession.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CurrentIndex(); ok {
		_spec.SetField(quizsession.FieldCurrentIndex, field.TypeInt, value)
		_node.CurrentIndex = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizsession.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(quizsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quizsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(quizsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastSavedAt(); ok {
		_spec.SetField(quizsession.FieldLastSavedAt, field.TypeTime, value)
		_node.LastSavedAt = &value
	}
	return _node, _spec
}

// QuizSessionCreateBulk is the builder for creating many QuizSession entities in bulk.
type QuizSessionCreateBulk struct {
	config
	err      error
	builders []*QuizSessionCreate
}

// Save creates the QuizSession entities in the database.
func (_c *QuizSessionCreateBulk) Save(ctx context.Context) ([]*QuizSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizSessionCreateBulk) SaveX(ctx context.Context) []*QuizSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
