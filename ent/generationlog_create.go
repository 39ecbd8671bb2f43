// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/example/vocaquiz/ent/generationlog"
)

// GenerationLogCreate is the builder for creating a GenerationLog entity.
type GenerationLogCreate struct {
	config
	mutation *GenerationLogMutation
	hooks    []Hook
}

// SetBatchID sets the "batch_id" field.
func (_c *GenerationLogCreate) SetBatchID(v string) *GenerationLogCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetGeneratedDate sets the "generated_date" field.
func (_c *GenerationLogCreate) SetGeneratedDate(v string) *GenerationLogCreate {
	_c.mutation.SetGeneratedDate(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *GenerationLogCreate) SetDifficulty(v int) *GenerationLogCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetRequested sets the "requested" field.
func (_c *GenerationLogCreate) SetRequested(v int) *GenerationLogCreate {
	_c.mutation.SetRequested(v)
	return _c
}

// SetSucceeded sets the "succeeded" field.
func (_c *GenerationLogCreate) SetSucceeded(v int) *GenerationLogCreate {
	_c.mutation.SetSucceeded(v)
	return _c
}

// SetFailed sets the "failed" field.
func (_c *GenerationLogCreate) SetFailed(v int) *GenerationLogCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *GenerationLogCreate) SetModel(v string) *GenerationLogCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *GenerationLogCreate) SetPromptTokens(v int) *GenerationLogCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *GenerationLogCreate) SetNillablePromptTokens(v *int) *GenerationLogCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *GenerationLogCreate) SetCompletionTokens(v int) *GenerationLogCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *GenerationLogCreate) SetNillableCompletionTokens(v *int) *GenerationLogCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *GenerationLogCreate) SetTotalCost(v float64) *GenerationLogCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *GenerationLogCreate) SetNillableTotalCost(v *float64) *GenerationLogCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GenerationLogCreate) SetStatus(v string) *GenerationLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GenerationLogCreate) SetErrorMessage(v string) *GenerationLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GenerationLogCreate) SetNillableErrorMessage(v *string) *GenerationLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GenerationLogCreate) SetCreatedAt(v time.Time) *GenerationLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GenerationLogCreate) SetNillableCreatedAt(v *time.Time) *GenerationLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the GenerationLogMutation object of the builder.
func (_c *GenerationLogCreate) Mutation() *GenerationLogMutation {
	return _c.mutation
}

// Save creates the GenerationLog in the database.
func (_c *GenerationLogCreate) Save(ctx context.Context) (*GenerationLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationLogCreate) SaveX(ctx context.Context) *GenerationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationLogCreate) defaults() {
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := generationlog.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := generationlog.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		v := generationlog.DefaultTotalCost
		_c.mutation.SetTotalCost(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := generationlog.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generationlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationLogCreate) check() error {
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "GenerationLog.batch_id"`)}
	}
	if _, ok := _c.mutation.GeneratedDate(); !ok {
		return &ValidationError{Name: "generated_date", err: errors.New(`ent: missing required field "GenerationLog.generated_date"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "GenerationLog.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := generationlog.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GenerationLog.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Requested(); !ok {
		return &ValidationError{Name: "requested", err: errors.New(`ent: missing required field "GenerationLog.requested"`)}
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		return &ValidationError{Name: "succeeded", err: errors.New(`ent: missing required field "GenerationLog.succeeded"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "GenerationLog.failed"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "GenerationLog.model"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "GenerationLog.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "GenerationLog.completion_tokens"`)}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "GenerationLog.total_cost"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GenerationLog.status"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "GenerationLog.error_message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GenerationLog.created_at"`)}
	}
	return nil
}

func (_c *GenerationLogCreate) sqlSave(ctx context.Context) (*GenerationLog, error) {
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

func (_c *GenerationLogCreate) createSpec() (*GenerationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationlog.Table, sqlgraph.NewFieldSpec(generationlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(generationlog.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.GeneratedDate(); ok {
		_spec.SetField(generationlog.FieldGeneratedDate, field.TypeString, value)
		_node.GeneratedDate = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(generationlog.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Requested(); ok {
		_spec.SetField(generationlog.FieldRequested, field.TypeInt, value)
		_node.Requested = value
	}
	if value, ok := _c.mutation.Succeeded(); ok {
		_spec.SetField(generationlog.FieldSucceeded, field.TypeInt, value)
		_node.Succeeded = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(generationlog.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(generationlog.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(generationlog.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(generationlog.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(generationlog.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generationlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(generationlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generationlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// GenerationLogCreateBulk is the builder for creating many GenerationLog entities in bulk.
type GenerationLogCreateBulk struct {
	config
	err      error
	builders []*GenerationLogCreate
}

// Save creates the GenerationLog entities in the database.
func (_c *GenerationLogCreateBulk) Save(ctx context.Context) ([]*GenerationLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationLogMutation)
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
func (_c *GenerationLogCreateBulk) SaveX(ctx context.Context) []*GenerationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
