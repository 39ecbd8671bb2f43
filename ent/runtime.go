// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/example/vocaquiz/ent/generationlog"
	"github.com/example/vocaquiz/ent/llmrequestevent"
	"github.com/example/vocaquiz/ent/question"
	"github.com/example/vocaquiz/ent/schema"
	"github.com/example/vocaquiz/ent/vocabulary"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generationlogFields := schema.GenerationLog{}.Fields()
	_ = generationlogFields
	// generationlogDescDifficulty is the schema descriptor for difficulty field.
	generationlogDescDifficulty := generationlogFields[2].Descriptor()
	// generationlog.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	generationlog.DifficultyValidator = func() func(int) error {
		validators := generationlogDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// generationlogDescPromptTokens is the schema descriptor for prompt_tokens field.
	generationlogDescPromptTokens := generationlogFields[7].Descriptor()
	// generationlog.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	generationlog.DefaultPromptTokens = generationlogDescPromptTokens.Default.(int)
	// generationlogDescCompletionTokens is the schema descriptor for completion_tokens field.
	generationlogDescCompletionTokens := generationlogFields[8].Descriptor()
	// generationlog.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	generationlog.DefaultCompletionTokens = generationlogDescCompletionTokens.Default.(int)
	// generationlogDescTotalCost is the schema descriptor for total_cost field.
	generationlogDescTotalCost := generationlogFields[9].Descriptor()
	// generationlog.DefaultTotalCost holds the default value on creation for the total_cost field.
	generationlog.DefaultTotalCost = generationlogDescTotalCost.Default.(float64)
	// generationlogDescErrorMessage is the schema descriptor for error_message field.
	generationlogDescErrorMessage := generationlogFields[11].Descriptor()
	// generationlog.DefaultErrorMessage holds the default value on creation for the error_message field.
	generationlog.DefaultErrorMessage = generationlogDescErrorMessage.Default.(string)
	// generationlogDescCreatedAt is the schema descriptor for created_at field.
	generationlogDescCreatedAt := generationlogFields[12].Descriptor()
	// generationlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	generationlog.DefaultCreatedAt = generationlogDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[2].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = func() func(int) error {
		validators := questionDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionDescQuestionTranslation is the schema descriptor for question_translation field.
	questionDescQuestionTranslation := questionFields[4].Descriptor()
	// question.DefaultQuestionTranslation holds the default value on creation for the question_translation field.
	question.DefaultQuestionTranslation = questionDescQuestionTranslation.Default.(string)
	// questionDescCorrectIndex is the schema descriptor for correct_index field.
	questionDescCorrectIndex := questionFields[6].Descriptor()
	// question.CorrectIndexValidator is a validator for the "correct_index" field. It is called by the builders before save.
	question.CorrectIndexValidator = func() func(int) error {
		validators := questionDescCorrectIndex.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(correct_index int) error {
			for _, fn := range fns {
				if err := fn(correct_index); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionDescIsActive is the schema descriptor for is_active field.
	questionDescIsActive := questionFields[9].Descriptor()
	// question.DefaultIsActive holds the default value on creation for the is_active field.
	question.DefaultIsActive = questionDescIsActive.Default.(bool)
	// questionDescUsageCount is the schema descriptor for usage_count field.
	questionDescUsageCount := questionFields[10].Descriptor()
	// question.DefaultUsageCount holds the default value on creation for the usage_count field.
	question.DefaultUsageCount = questionDescUsageCount.Default.(int)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[11].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	vocabularyFields := schema.Vocabulary{}.Fields()
	_ = vocabularyFields
	// vocabularyDescDifficulty is the schema descriptor for difficulty field.
	vocabularyDescDifficulty := vocabularyFields[2].Descriptor()
	// vocabulary.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	vocabulary.DifficultyValidator = func() func(int) error {
		validators := vocabularyDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vocabularyDescPartOfSpeech is the schema descriptor for part_of_speech field.
	vocabularyDescPartOfSpeech := vocabularyFields[4].Descriptor()
	// vocabulary.DefaultPartOfSpeech holds the default value on creation for the part_of_speech field.
	vocabulary.DefaultPartOfSpeech = vocabularyDescPartOfSpeech.Default.(string)
	// vocabularyDescExample is the schema descriptor for example field.
	vocabularyDescExample := vocabularyFields[5].Descriptor()
	// vocabulary.DefaultExample holds the default value on creation for the example field.
	vocabulary.DefaultExample = vocabularyDescExample.Default.(string)
	// vocabularyDescCreatedAt is the schema descriptor for created_at field.
	vocabularyDescCreatedAt := vocabularyFields[6].Descriptor()
	// vocabulary.DefaultCreatedAt holds the default value on creation for the created_at field.
	vocabulary.DefaultCreatedAt = vocabularyDescCreatedAt.Default.(func() time.Time)
}
