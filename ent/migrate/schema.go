// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GenerationLogsColumns holds the columns for the "generation_logs" table.
	GenerationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "generated_date", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "requested", Type: field.TypeInt},
		{Name: "succeeded", Type: field.TypeInt},
		{Name: "failed", Type: field.TypeInt},
		{Name: "model", Type: field.TypeString},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GenerationLogsTable holds the schema information for the "generation_logs" table.
	GenerationLogsTable = &schema.Table{
		Name:       "generation_logs",
		Columns:    GenerationLogsColumns,
		PrimaryKey: []*schema.Column{GenerationLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationlog_generated_date_difficulty",
				Unique:  false,
				Columns: []*schema.Column{GenerationLogsColumns[2], GenerationLogsColumns[3]},
			},
			{
				Name:    "generationlog_status",
				Unique:  false,
				Columns: []*schema.Column{GenerationLogsColumns[11]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[11]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString},
		{Name: "question_translation", Type: field.TypeString, Default: ""},
		{Name: "choices", Type: field.TypeJSON},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "explanation", Type: field.TypeString},
		{Name: "generated_date", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "vocabulary_id", Type: field.TypeInt},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_vocabularies_questions",
				Columns:    []*schema.Column{QuestionsColumns[12]},
				RefColumns: []*schema.Column{VocabulariesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_generated_date_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[8], QuestionsColumns[2]},
			},
			{
				Name:    "question_difficulty_is_active",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2], QuestionsColumns[9]},
			},
			{
				Name:    "question_vocabulary_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[12]},
			},
		},
	}
	// VocabulariesColumns holds the columns for the "vocabularies" table.
	VocabulariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "word", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "meaning", Type: field.TypeString},
		{Name: "part_of_speech", Type: field.TypeString, Default: ""},
		{Name: "example", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VocabulariesTable holds the schema information for the "vocabularies" table.
	VocabulariesTable = &schema.Table{
		Name:       "vocabularies",
		Columns:    VocabulariesColumns,
		PrimaryKey: []*schema.Column{VocabulariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocabulary_kind_difficulty",
				Unique:  false,
				Columns: []*schema.Column{VocabulariesColumns[2], VocabulariesColumns[3]},
			},
			{
				Name:    "vocabulary_created_at",
				Unique:  false,
				Columns: []*schema.Column{VocabulariesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GenerationLogsTable,
		LlmRequestEventsTable,
		QuestionsTable,
		VocabulariesTable,
	}
)

func init() {
	QuestionsTable.ForeignKeys[0].RefTable = VocabulariesTable
}
