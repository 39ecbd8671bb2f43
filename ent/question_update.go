// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/example/vocaquiz/ent/predicate"
	"github.com/example/vocaquiz/ent/question"
	"github.com/example/vocaquiz/ent/vocabulary"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVocabularyID sets the "vocabulary_id" field.
func (_u *QuestionUpdate) SetVocabularyID(v int) *QuestionUpdate {
	_u.mutation.SetVocabularyID(v)
	return _u
}

// SetNillableVocabularyID sets the "vocabulary_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableVocabularyID(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetVocabularyID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuestionUpdate) SetKind(v string) *QuestionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableKind(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v int) *QuestionUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuestionUpdate) AddDifficulty(v int) *QuestionUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionUpdate) SetQuestionText(v string) *QuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetQuestionTranslation sets the "question_translation" field.
func (_u *QuestionUpdate) SetQuestionTranslation(v string) *QuestionUpdate {
	_u.mutation.SetQuestionTranslation(v)
	return _u
}

// SetNillableQuestionTranslation sets the "question_translation" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionTranslation(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionTranslation(*v)
	}
	return _u
}

// SetChoices sets the "choices" field.
func (_u *QuestionUpdate) SetChoices(v []string) *QuestionUpdate {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *QuestionUpdate) AppendChoices(v []string) *QuestionUpdate {
	_u.mutation.AppendChoices(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *QuestionUpdate) SetCorrectIndex(v int) *QuestionUpdate {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectIndex(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *QuestionUpdate) AddCorrectIndex(v int) *QuestionUpdate {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdate) SetExplanation(v string) *QuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExplanation(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetGeneratedDate sets the "generated_date" field.
func (_u *QuestionUpdate) SetGeneratedDate(v string) *QuestionUpdate {
	_u.mutation.SetGeneratedDate(v)
	return _u
}

// SetNillableGeneratedDate sets the "generated_date" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableGeneratedDate(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetGeneratedDate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *QuestionUpdate) SetIsActive(v bool) *QuestionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIsActive(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *QuestionUpdate) SetUsageCount(v int) *QuestionUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableUsageCount(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *QuestionUpdate) AddUsageCount(v int) *QuestionUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetVocabulary sets the "vocabulary" edge to the Vocabulary entity.
func (_u *QuestionUpdate) SetVocabulary(v *Vocabulary) *QuestionUpdate {
	return _u.SetVocabularyID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearVocabulary clears the "vocabulary" edge to the Vocabulary entity.
func (_u *QuestionUpdate) ClearVocabulary() *QuestionUpdate {
	_u.mutation.ClearVocabulary()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectIndex(); ok {
		if err := question.CorrectIndexValidator(v); err != nil {
			return &ValidationError{Name: "correct_index", err: fmt.Errorf(`ent: validator failed for field "Question.correct_index": %w`, err)}
		}
	}
	if _u.mutation.VocabularyCleared() && len(_u.mutation.VocabularyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.vocabulary"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(question.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionTranslation(); ok {
		_spec.SetField(question.FieldQuestionTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(question.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldChoices, value)
		})
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(question.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(question.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedDate(); ok {
		_spec.SetField(question.FieldGeneratedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(question.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(question.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(question.FieldUsageCount, field.TypeInt, value)
	}
	if _u.mutation.VocabularyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.VocabularyTable,
			Columns: []string{question.VocabularyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabulary.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VocabularyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.VocabularyTable,
			Columns: []string{question.VocabularyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabulary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetVocabularyID sets the "vocabulary_id" field.
func (_u *QuestionUpdateOne) SetVocabularyID(v int) *QuestionUpdateOne {
	_u.mutation.SetVocabularyID(v)
	return _u
}

// SetNillableVocabularyID sets the "vocabulary_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableVocabularyID(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetVocabularyID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuestionUpdateOne) SetKind(v string) *QuestionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableKind(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v int) *QuestionUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuestionUpdateOne) AddDifficulty(v int) *QuestionUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionUpdateOne) SetQuestionText(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetQuestionTranslation sets the "question_translation" field.
func (_u *QuestionUpdateOne) SetQuestionTranslation(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionTranslation(v)
	return _u
}

// SetNillableQuestionTranslation sets the "question_translation" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionTranslation(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionTranslation(*v)
	}
	return _u
}

// SetChoices sets the "choices" field.
func (_u *QuestionUpdateOne) SetChoices(v []string) *QuestionUpdateOne {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *QuestionUpdateOne) AppendChoices(v []string) *QuestionUpdateOne {
	_u.mutation.AppendChoices(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *QuestionUpdateOne) SetCorrectIndex(v int) *QuestionUpdateOne {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectIndex(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *QuestionUpdateOne) AddCorrectIndex(v int) *QuestionUpdateOne {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdateOne) SetExplanation(v string) *QuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExplanation(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetGeneratedDate sets the "generated_date" field.
func (_u *QuestionUpdateOne) SetGeneratedDate(v string) *QuestionUpdateOne {
	_u.mutation.SetGeneratedDate(v)
	return _u
}

// SetNillableGeneratedDate sets the "generated_date" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableGeneratedDate(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetGeneratedDate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *QuestionUpdateOne) SetIsActive(v bool) *QuestionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIsActive(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *QuestionUpdateOne) SetUsageCount(v int) *QuestionUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableUsageCount(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *QuestionUpdateOne) AddUsageCount(v int) *QuestionUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetVocabulary sets the "vocabulary" edge to the Vocabulary entity.
func (_u *QuestionUpdateOne) SetVocabulary(v *Vocabulary) *QuestionUpdateOne {
	return _u.SetVocabularyID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearVocabulary clears the "vocabulary" edge to the Vocabulary entity.
func (_u *QuestionUpdateOne) ClearVocabulary() *QuestionUpdateOne {
	_u.mutation.ClearVocabulary()
	return _u
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectIndex(); ok {
		if err := question.CorrectIndexValidator(v); err != nil {
			return &ValidationError{Name: "correct_index", err: fmt.Errorf(`ent: validator failed for field "Question.correct_index": %w`, err)}
		}
	}
	if _u.mutation.VocabularyCleared() && len(_u.mutation.VocabularyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.vocabulary"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(question.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionTranslation(); ok {
		_spec.SetField(question.FieldQuestionTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(question.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldChoices, value)
		})
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(question.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(question.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedDate(); ok {
		_spec.SetField(question.FieldGeneratedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(question.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(question.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(question.FieldUsageCount, field.TypeInt, value)
	}
	if _u.mutation.VocabularyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.VocabularyTable,
			Columns: []string{question.VocabularyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabulary.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VocabularyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.VocabularyTable,
			Columns: []string{question.VocabularyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabulary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
