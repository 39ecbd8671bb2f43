// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/example/vocaquiz/ent/predicate"
	"github.com/example/vocaquiz/ent/question"
	"github.com/example/vocaquiz/ent/vocabulary"
)

// VocabularyUpdate is the builder for updating Vocabulary entities.
type VocabularyUpdate struct {
	config
	hooks    []Hook
	mutation *VocabularyMutation
}

// Where appends a list predicates to the VocabularyUpdate builder.
func (_u *VocabularyUpdate) Where(ps ...predicate.Vocabulary) *VocabularyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWord sets the "word" field.
func (_u *VocabularyUpdate) SetWord(v string) *VocabularyUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *VocabularyUpdate) SetNillableWord(v *string) *VocabularyUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *VocabularyUpdate) SetKind(v string) *VocabularyUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *VocabularyUpdate) SetNillableKind(v *string) *VocabularyUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *VocabularyUpdate) SetDifficulty(v int) *VocabularyUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *VocabularyUpdate) SetNillableDifficulty(v *int) *VocabularyUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *VocabularyUpdate) AddDifficulty(v int) *VocabularyUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *VocabularyUpdate) SetMeaning(v string) *VocabularyUpdate {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *VocabularyUpdate) SetNillableMeaning(v *string) *VocabularyUpdate {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_u *VocabularyUpdate) SetPartOfSpeech(v string) *VocabularyUpdate {
	_u.mutation.SetPartOfSpeech(v)
	return _u
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_u *VocabularyUpdate) SetNillablePartOfSpeech(v *string) *VocabularyUpdate {
	if v != nil {
		_u.SetPartOfSpeech(*v)
	}
	return _u
}

// SetExample sets the "example" field.
func (_u *VocabularyUpdate) SetExample(v string) *VocabularyUpdate {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *VocabularyUpdate) SetNillableExample(v *string) *VocabularyUpdate {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *VocabularyUpdate) AddQuestionIDs(ids ...int) *VocabularyUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *VocabularyUpdate) AddQuestions(v ...*Question) *VocabularyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the VocabularyMutation object of the builder.
func (_u *VocabularyUpdate) Mutation() *VocabularyMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *VocabularyUpdate) ClearQuestions() *VocabularyUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *VocabularyUpdate) RemoveQuestionIDs(ids ...int) *VocabularyUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *VocabularyUpdate) RemoveQuestions(v ...*Question) *VocabularyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VocabularyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabularyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VocabularyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabularyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabularyUpdate) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := vocabulary.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Vocabulary.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabularyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabulary.Table, vocabulary.Columns, sqlgraph.NewFieldSpec(vocabulary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(vocabulary.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(vocabulary.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(vocabulary.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(vocabulary.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(vocabulary.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartOfSpeech(); ok {
		_spec.SetField(vocabulary.FieldPartOfSpeech, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(vocabulary.FieldExample, field.TypeString, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vocabulary.QuestionsTable,
			Columns: []string{vocabulary.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vocabulary.QuestionsTable,
			Columns: []string{vocabulary.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vocabulary.QuestionsTable,
			Columns: []string{vocabulary.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabulary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VocabularyUpdateOne is the builder for updating a single Vocabulary entity.
type VocabularyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabularyMutation
}

// SetWord sets the "word" field.
func (_u *VocabularyUpdateOne) SetWord(v string) *VocabularyUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *VocabularyUpdateOne) SetNillableWord(v *string) *VocabularyUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *VocabularyUpdateOne) SetKind(v string) *VocabularyUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *VocabularyUpdateOne) SetNillableKind(v *string) *VocabularyUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *VocabularyUpdateOne) SetDifficulty(v int) *VocabularyUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *VocabularyUpdateOne) SetNillableDifficulty(v *int) *VocabularyUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *VocabularyUpdateOne) AddDifficulty(v int) *VocabularyUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *VocabularyUpdateOne) SetMeaning(v string) *VocabularyUpdateOne {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *VocabularyUpdateOne) SetNillableMeaning(v *string) *VocabularyUpdateOne {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_u *VocabularyUpdateOne) SetPartOfSpeech(v string) *VocabularyUpdateOne {
	_u.mutation.SetPartOfSpeech(v)
	return _u
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_u *VocabularyUpdateOne) SetNillablePartOfSpeech(v *string) *VocabularyUpdateOne {
	if v != nil {
		_u.SetPartOfSpeech(*v)
	}
	return _u
}

// SetExample sets the "example" field.
func (_u *VocabularyUpdateOne) SetExample(v string) *VocabularyUpdateOne {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *VocabularyUpdateOne) SetNillableExample(v *string) *VocabularyUpdateOne {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *VocabularyUpdateOne) AddQuestionIDs(ids ...int) *VocabularyUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *VocabularyUpdateOne) AddQuestions(v ...*Question) *VocabularyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the VocabularyMutation object of the builder.
func (_u *VocabularyUpdateOne) Mutation() *VocabularyMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *VocabularyUpdateOne) ClearQuestions() *VocabularyUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *VocabularyUpdateOne) RemoveQuestionIDs(ids ...int) *VocabularyUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *VocabularyUpdateOne) RemoveQuestions(v ...*Question) *VocabularyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the VocabularyUpdate builder.
func (_u *VocabularyUpdateOne) Where(ps ...predicate.Vocabulary) *VocabularyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VocabularyUpdateOne) Select(field string, fields ...string) *VocabularyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vocabulary entity.
func (_u *VocabularyUpdateOne) Save(ctx context.Context) (*Vocabulary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabularyUpdateOne) SaveX(ctx context.Context) *Vocabulary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VocabularyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabularyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabularyUpdateOne) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := vocabulary.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Vocabulary.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabularyUpdateOne) sqlSave(ctx context.Context) (_node *Vocabulary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabulary.Table, vocabulary.Columns, sqlgraph.NewFieldSpec(vocabulary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vocabulary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabulary.FieldID)
		for _, f := range fields {
			if !vocabulary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocabulary.FieldID {
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
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(vocabulary.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(vocabulary.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(vocabulary.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(vocabulary.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(vocabulary.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartOfSpeech(); ok {
		_spec.SetField(vocabulary.FieldPartOfSpeech, field.TypeString, value)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(vocabulary.FieldExample, field.TypeString, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vocabulary.QuestionsTable,
			Columns: []string{vocabulary.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vocabulary.QuestionsTable,
			Columns: []string{vocabulary.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vocabulary.QuestionsTable,
			Columns: []string{vocabulary.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Vocabulary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabulary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
