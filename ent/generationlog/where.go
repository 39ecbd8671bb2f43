// Code generated by ent, DO NOT EDIT.

package generationlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/example/vocaquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldID, id))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldBatchID, v))
}

// GeneratedDate applies equality check predicate on the "generated_date" field. It's identical to GeneratedDateEQ.
func GeneratedDate(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldGeneratedDate, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldDifficulty, v))
}

// Requested applies equality check predicate on the "requested" field. It's identical to RequestedEQ.
func Requested(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldRequested, v))
}

// Succeeded applies equality check predicate on the "succeeded" field. It's identical to SucceededEQ.
func Succeeded(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldSucceeded, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldFailed, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldModel, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldCompletionTokens, v))
}

// TotalCost applies equality check predicate on the "total_cost" field. It's identical to TotalCostEQ.
func TotalCost(v float64) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldTotalCost, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldCreatedAt, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContainsFold(FieldBatchID, v))
}

// GeneratedDateEQ applies the EQ predicate on the "generated_date" field.
func GeneratedDateEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldGeneratedDate, v))
}

// GeneratedDateNEQ applies the NEQ predicate on the "generated_date" field.
func GeneratedDateNEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldGeneratedDate, v))
}

// GeneratedDateIn applies the In predicate on the "generated_date" field.
func GeneratedDateIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldGeneratedDate, vs...))
}

// GeneratedDateNotIn applies the NotIn predicate on the "generated_date" field.
func GeneratedDateNotIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldGeneratedDate, vs...))
}

// GeneratedDateGT applies the GT predicate on the "generated_date" field.
func GeneratedDateGT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldGeneratedDate, v))
}

// GeneratedDateGTE applies the GTE predicate on the "generated_date" field.
func GeneratedDateGTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldGeneratedDate, v))
}

// GeneratedDateLT applies the LT predicate on the "generated_date" field.
func GeneratedDateLT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldGeneratedDate, v))
}

// GeneratedDateLTE applies the LTE predicate on the "generated_date" field.
func GeneratedDateLTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldGeneratedDate, v))
}

// GeneratedDateContains applies the Contains predicate on the "generated_date" field.
func GeneratedDateContains(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContains(FieldGeneratedDate, v))
}

// GeneratedDateHasPrefix applies the HasPrefix predicate on the "generated_date" field.
func GeneratedDateHasPrefix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasPrefix(FieldGeneratedDate, v))
}

// GeneratedDateHasSuffix applies the HasSuffix predicate on the "generated_date" field.
func GeneratedDateHasSuffix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasSuffix(FieldGeneratedDate, v))
}

// GeneratedDateEqualFold applies the EqualFold predicate on the "generated_date" field.
func GeneratedDateEqualFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEqualFold(FieldGeneratedDate, v))
}

// GeneratedDateContainsFold applies the ContainsFold predicate on the "generated_date" field.
func GeneratedDateContainsFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContainsFold(FieldGeneratedDate, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldDifficulty, v))
}

// RequestedEQ applies the EQ predicate on the "requested" field.
func RequestedEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldRequested, v))
}

// RequestedNEQ applies the NEQ predicate on the "requested" field.
func RequestedNEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldRequested, v))
}

// RequestedIn applies the In predicate on the "requested" field.
func RequestedIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldRequested, vs...))
}

// RequestedNotIn applies the NotIn predicate on the "requested" field.
func RequestedNotIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldRequested, vs...))
}

// RequestedGT applies the GT predicate on the "requested" field.
func RequestedGT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldRequested, v))
}

// RequestedGTE applies the GTE predicate on the "requested" field.
func RequestedGTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldRequested, v))
}

// RequestedLT applies the LT predicate on the "requested" field.
func RequestedLT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldRequested, v))
}

// RequestedLTE applies the LTE predicate on the "requested" field.
func RequestedLTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldRequested, v))
}

// SucceededEQ applies the EQ predicate on the "succeeded" field.
func SucceededEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldSucceeded, v))
}

// SucceededNEQ applies the NEQ predicate on the "succeeded" field.
func SucceededNEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldSucceeded, v))
}

// SucceededIn applies the In predicate on the "succeeded" field.
func SucceededIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldSucceeded, vs...))
}

// SucceededNotIn applies the NotIn predicate on the "succeeded" field.
func SucceededNotIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldSucceeded, vs...))
}

// SucceededGT applies the GT predicate on the "succeeded" field.
func SucceededGT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldSucceeded, v))
}

// SucceededGTE applies the GTE predicate on the "succeeded" field.
func SucceededGTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldSucceeded, v))
}

// SucceededLT applies the LT predicate on the "succeeded" field.
func SucceededLT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldSucceeded, v))
}

// SucceededLTE applies the LTE predicate on the "succeeded" field.
func SucceededLTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldSucceeded, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldFailed, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContainsFold(FieldModel, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldCompletionTokens, v))
}

// TotalCostEQ applies the EQ predicate on the "total_cost" field.
func TotalCostEQ(v float64) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldTotalCost, v))
}

// TotalCostNEQ applies the NEQ predicate on the "total_cost" field.
func TotalCostNEQ(v float64) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldTotalCost, v))
}

// TotalCostIn applies the In predicate on the "total_cost" field.
func TotalCostIn(vs ...float64) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldTotalCost, vs...))
}

// TotalCostNotIn applies the NotIn predicate on the "total_cost" field.
func TotalCostNotIn(vs ...float64) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldTotalCost, vs...))
}

// TotalCostGT applies the GT predicate on the "total_cost" field.
func TotalCostGT(v float64) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldTotalCost, v))
}

// TotalCostGTE applies the GTE predicate on the "total_cost" field.
func TotalCostGTE(v float64) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldTotalCost, v))
}

// TotalCostLT applies the LT predicate on the "total_cost" field.
func TotalCostLT(v float64) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldTotalCost, v))
}

// TotalCostLTE applies the LTE predicate on the "total_cost" field.
func TotalCostLTE(v float64) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldTotalCost, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationLog) predicate.GenerationLog {
	return predicate.GenerationLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationLog) predicate.GenerationLog {
	return predicate.GenerationLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationLog) predicate.GenerationLog {
	return predicate.GenerationLog(sql.NotPredicates(p))
}
