// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/example/vocaquiz/ent/generationlog"
	"github.com/example/vocaquiz/ent/predicate"
)

// GenerationLogUpdate is the builder for updating GenerationLog entities.
type GenerationLogUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationLogMutation
}

// Where appends a list predicates to the GenerationLogUpdate builder.
func (_u *GenerationLogUpdate) Where(ps ...predicate.GenerationLog) *GenerationLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGeneratedDate sets the "generated_date" field.
func (_u *GenerationLogUpdate) SetGeneratedDate(v string) *GenerationLogUpdate {
	_u.mutation.SetGeneratedDate(v)
	return _u
}

// SetNillableGeneratedDate sets the "generated_date" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableGeneratedDate(v *string) *GenerationLogUpdate {
	if v != nil {
		_u.SetGeneratedDate(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GenerationLogUpdate) SetDifficulty(v int) *GenerationLogUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableDifficulty(v *int) *GenerationLogUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *GenerationLogUpdate) AddDifficulty(v int) *GenerationLogUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetRequested sets the "requested" field.
func (_u *GenerationLogUpdate) SetRequested(v int) *GenerationLogUpdate {
	_u.mutation.ResetRequested()
	_u.mutation.SetRequested(v)
	return _u
}

// SetNillableRequested sets the "requested" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableRequested(v *int) *GenerationLogUpdate {
	if v != nil {
		_u.SetRequested(*v)
	}
	return _u
}

// AddRequested adds value to the "requested" field.
func (_u *GenerationLogUpdate) AddRequested(v int) *GenerationLogUpdate {
	_u.mutation.AddRequested(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *GenerationLogUpdate) SetSucceeded(v int) *GenerationLogUpdate {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableSucceeded(v *int) *GenerationLogUpdate {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *GenerationLogUpdate) AddSucceeded(v int) *GenerationLogUpdate {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *GenerationLogUpdate) SetFailed(v int) *GenerationLogUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableFailed(v *int) *GenerationLogUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *GenerationLogUpdate) AddFailed(v int) *GenerationLogUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *GenerationLogUpdate) SetModel(v string) *GenerationLogUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableModel(v *string) *GenerationLogUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *GenerationLogUpdate) SetPromptTokens(v int) *GenerationLogUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillablePromptTokens(v *int) *GenerationLogUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *GenerationLogUpdate) AddPromptTokens(v int) *GenerationLogUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *GenerationLogUpdate) SetCompletionTokens(v int) *GenerationLogUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableCompletionTokens(v *int) *GenerationLogUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *GenerationLogUpdate) AddCompletionTokens(v int) *GenerationLogUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *GenerationLogUpdate) SetTotalCost(v float64) *GenerationLogUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableTotalCost(v *float64) *GenerationLogUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *GenerationLogUpdate) AddTotalCost(v float64) *GenerationLogUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationLogUpdate) SetStatus(v string) *GenerationLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableStatus(v *string) *GenerationLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationLogUpdate) SetErrorMessage(v string) *GenerationLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationLogUpdate) SetNillableErrorMessage(v *string) *GenerationLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the GenerationLogMutation object of the builder.
func (_u *GenerationLogUpdate) Mutation() *GenerationLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationLogUpdate) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := generationlog.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GenerationLog.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationlog.Table, generationlog.Columns, sqlgraph.NewFieldSpec(generationlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GeneratedDate(); ok {
		_spec.SetField(generationlog.FieldGeneratedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(generationlog.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(generationlog.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Requested(); ok {
		_spec.SetField(generationlog.FieldRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequested(); ok {
		_spec.AddField(generationlog.FieldRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(generationlog.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(generationlog.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(generationlog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(generationlog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(generationlog.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(generationlog.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(generationlog.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(generationlog.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(generationlog.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(generationlog.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(generationlog.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationlog.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationLogUpdateOne is the builder for updating a single GenerationLog entity.
type GenerationLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationLogMutation
}

// SetGeneratedDate sets the "generated_date" field.
func (_u *GenerationLogUpdateOne) SetGeneratedDate(v string) *GenerationLogUpdateOne {
	_u.mutation.SetGeneratedDate(v)
	return _u
}

// SetNillableGeneratedDate sets the "generated_date" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableGeneratedDate(v *string) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetGeneratedDate(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GenerationLogUpdateOne) SetDifficulty(v int) *GenerationLogUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableDifficulty(v *int) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *GenerationLogUpdateOne) AddDifficulty(v int) *GenerationLogUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetRequested sets the "requested" field.
func (_u *GenerationLogUpdateOne) SetRequested(v int) *GenerationLogUpdateOne {
	_u.mutation.ResetRequested()
	_u.mutation.SetRequested(v)
	return _u
}

// SetNillableRequested sets the "requested" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableRequested(v *int) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetRequested(*v)
	}
	return _u
}

// AddRequested adds value to the "requested" field.
func (_u *GenerationLogUpdateOne) AddRequested(v int) *GenerationLogUpdateOne {
	_u.mutation.AddRequested(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *GenerationLogUpdateOne) SetSucceeded(v int) *GenerationLogUpdateOne {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableSucceeded(v *int) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *GenerationLogUpdateOne) AddSucceeded(v int) *GenerationLogUpdateOne {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *GenerationLogUpdateOne) SetFailed(v int) *GenerationLogUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableFailed(v *int) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *GenerationLogUpdateOne) AddFailed(v int) *GenerationLogUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *GenerationLogUpdateOne) SetModel(v string) *GenerationLogUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableModel(v *string) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *GenerationLogUpdateOne) SetPromptTokens(v int) *GenerationLogUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillablePromptTokens(v *int) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *GenerationLogUpdateOne) AddPromptTokens(v int) *GenerationLogUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *GenerationLogUpdateOne) SetCompletionTokens(v int) *GenerationLogUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableCompletionTokens(v *int) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *GenerationLogUpdateOne) AddCompletionTokens(v int) *GenerationLogUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *GenerationLogUpdateOne) SetTotalCost(v float64) *GenerationLogUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableTotalCost(v *float64) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *GenerationLogUpdateOne) AddTotalCost(v float64) *GenerationLogUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationLogUpdateOne) SetStatus(v string) *GenerationLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableStatus(v *string) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationLogUpdateOne) SetErrorMessage(v string) *GenerationLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationLogUpdateOne) SetNillableErrorMessage(v *string) *GenerationLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the GenerationLogMutation object of the builder.
func (_u *GenerationLogUpdateOne) Mutation() *GenerationLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationLogUpdate builder.
func (_u *GenerationLogUpdateOne) Where(ps ...predicate.GenerationLog) *GenerationLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationLogUpdateOne) Select(field string, fields ...string) *GenerationLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationLog entity.
func (_u *GenerationLogUpdateOne) Save(ctx context.Context) (*GenerationLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationLogUpdateOne) SaveX(ctx context.Context) *GenerationLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationLogUpdateOne) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := generationlog.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GenerationLog.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationLogUpdateOne) sqlSave(ctx context.Context) (_node *GenerationLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationlog.Table, generationlog.Columns, sqlgraph.NewFieldSpec(generationlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationlog.FieldID)
		for _, f := range fields {
			if !generationlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationlog.FieldID {
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
	if value, ok := _u.mutation.GeneratedDate(); ok {
		_spec.SetField(generationlog.FieldGeneratedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(generationlog.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(generationlog.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Requested(); ok {
		_spec.SetField(generationlog.FieldRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequested(); ok {
		_spec.AddField(generationlog.FieldRequested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(generationlog.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(generationlog.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(generationlog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(generationlog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(generationlog.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(generationlog.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(generationlog.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(generationlog.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(generationlog.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(generationlog.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(generationlog.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationlog.FieldErrorMessage, field.TypeString, value)
	}
	_node = &GenerationLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
