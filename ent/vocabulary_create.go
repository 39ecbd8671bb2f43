// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/example/vocaquiz/ent/question"
	"github.com/example/vocaquiz/ent/vocabulary"
)

// VocabularyCreate is the builder for creating a Vocabulary entity.
type VocabularyCreate struct {
	config
	mutation *VocabularyMutation
	hooks    []Hook
}

// SetWord sets the "word" field.
func (_c *VocabularyCreate) SetWord(v string) *VocabularyCreate {
	_c.mutation.SetWord(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *VocabularyCreate) SetKind(v string) *VocabularyCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *VocabularyCreate) SetDifficulty(v int) *VocabularyCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetMeaning sets the "meaning" field.
func (_c *VocabularyCreate) SetMeaning(v string) *VocabularyCreate {
	_c.mutation.SetMeaning(v)
	return _c
}

// SetPartOfSpeech sets the "part_of_speech" field.
func (_c *VocabularyCreate) SetPartOfSpeech(v string) *VocabularyCreate {
	_c.mutation.SetPartOfSpeech(v)
	return _c
}

// SetNillablePartOfSpeech sets the "part_of_speech" field if the given value is not nil.
func (_c *VocabularyCreate) SetNillablePartOfSpeech(v *string) *VocabularyCreate {
	if v != nil {
		_c.SetPartOfSpeech(*v)
	}
	return _c
}

// SetExample sets the "example" field.
func (_c *VocabularyCreate) SetExample(v string) *VocabularyCreate {
	_c.mutation.SetExample(v)
	return _c
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_c *VocabularyCreate) SetNillableExample(v *string) *VocabularyCreate {
	if v != nil {
		_c.SetExample(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VocabularyCreate) SetCreatedAt(v time.Time) *VocabularyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VocabularyCreate) SetNillableCreatedAt(v *time.Time) *VocabularyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *VocabularyCreate) AddQuestionIDs(ids ...int) *VocabularyCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *VocabularyCreate) AddQuestions(v ...*Question) *VocabularyCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the VocabularyMutation object of the builder.
func (_c *VocabularyCreate) Mutation() *VocabularyMutation {
	return _c.mutation
}

// Save creates the Vocabulary in the database.
func (_c *VocabularyCreate) Save(ctx context.Context) (*Vocabulary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VocabularyCreate) SaveX(ctx context.Context) *Vocabulary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabularyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabularyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VocabularyCreate) defaults() {
	if _, ok := _c.mutation.PartOfSpeech(); !ok {
		v := vocabulary.DefaultPartOfSpeech
		_c.mutation.SetPartOfSpeech(v)
	}
	if _, ok := _c.mutation.Example(); !ok {
		v := vocabulary.DefaultExample
		_c.mutation.SetExample(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vocabulary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VocabularyCreate) check() error {
	if _, ok := _c.mutation.Word(); !ok {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required field "Vocabulary.word"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Vocabulary.kind"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Vocabulary.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := vocabulary.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Vocabulary.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Meaning(); !ok {
		return &ValidationError{Name: "meaning", err: errors.New(`ent: missing required field "Vocabulary.meaning"`)}
	}
	if _, ok := _c.mutation.PartOfSpeech(); !ok {
		return &ValidationError{Name: "part_of_speech", err: errors.New(`ent: missing required field "Vocabulary.part_of_speech"`)}
	}
	if _, ok := _c.mutation.Example(); !ok {
		return &ValidationError{Name: "example", err: errors.New(`ent: missing required field "Vocabulary.example"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vocabulary.created_at"`)}
	}
	return nil
}

func (_c *VocabularyCreate) sqlSave(ctx context.Context) (*Vocabulary, error) {
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

func (_c *VocabularyCreate) createSpec() (*Vocabulary, *sqlgraph.CreateSpec) {
	var (
		_node = &Vocabulary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vocabulary.Table, sqlgraph.NewFieldSpec(vocabulary.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Word(); ok {
		_spec.SetField(vocabulary.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(vocabulary.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(vocabulary.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Meaning(); ok {
		_spec.SetField(vocabulary.FieldMeaning, field.TypeString, value)
		_node.Meaning = value
	}
	if value, ok := _c.mutation.PartOfSpeech(); ok {
		_spec.SetField(vocabulary.FieldPartOfSpeech, field.TypeString, value)
		_node.PartOfSpeech = value
	}
	if value, ok := _c.mutation.Example(); ok {
		_spec.SetField(vocabulary.FieldExample, field.TypeString, value)
		_node.Example = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vocabulary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VocabularyCreateBulk is the builder for creating many Vocabulary entities in bulk.
type VocabularyCreateBulk struct {
	config
	err      error
	builders []*VocabularyCreate
}

// Save creates the Vocabulary entities in the database.
func (_c *VocabularyCreateBulk) Save(ctx context.Context) ([]*Vocabulary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vocabulary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabularyMutation)
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
func (_c *VocabularyCreateBulk) SaveX(ctx context.Context) []*Vocabulary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabularyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabularyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
