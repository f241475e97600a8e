// Code generated by ent, DO NOT EDIT.

package inferenceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ankitray/sensei/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Estimator applies equality check predicate on the "estimator" field. It's identical to EstimatorEQ.
func Estimator(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldEstimator, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldCorrect, v))
}

// TimeSec applies equality check predicate on the "time_sec" field. It's identical to TimeSecEQ.
func TimeSec(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldTimeSec, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldFeedback, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldState, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldConfidence, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EstimatorEQ applies the EQ predicate on the "estimator" field.
func EstimatorEQ(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldEstimator, v))
}

// EstimatorNEQ applies the NEQ predicate on the "estimator" field.
func EstimatorNEQ(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNEQ(FieldEstimator, v))
}

// EstimatorIn applies the In predicate on the "estimator" field.
func EstimatorIn(vs ...string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldIn(FieldEstimator, vs...))
}

// EstimatorNotIn applies the NotIn predicate on the "estimator" field.
func EstimatorNotIn(vs ...string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNotIn(FieldEstimator, vs...))
}

// EstimatorGT applies the GT predicate on the "estimator" field.
func EstimatorGT(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGT(FieldEstimator, v))
}

// EstimatorGTE applies the GTE predicate on the "estimator" field.
func EstimatorGTE(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGTE(FieldEstimator, v))
}

// EstimatorLT applies the LT predicate on the "estimator" field.
func EstimatorLT(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLT(FieldEstimator, v))
}

// EstimatorLTE applies the LTE predicate on the "estimator" field.
func EstimatorLTE(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLTE(FieldEstimator, v))
}

// EstimatorContains applies the Contains predicate on the "estimator" field.
func EstimatorContains(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldContains(FieldEstimator, v))
}

// EstimatorHasPrefix applies the HasPrefix predicate on the "estimator" field.
func EstimatorHasPrefix(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldHasPrefix(FieldEstimator, v))
}

// EstimatorHasSuffix applies the HasSuffix predicate on the "estimator" field.
func EstimatorHasSuffix(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldHasSuffix(FieldEstimator, v))
}

// EstimatorEqualFold applies the EqualFold predicate on the "estimator" field.
func EstimatorEqualFold(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEqualFold(FieldEstimator, v))
}

// EstimatorContainsFold applies the ContainsFold predicate on the "estimator" field.
func EstimatorContainsFold(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldContainsFold(FieldEstimator, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNEQ(FieldCorrect, v))
}

// TimeSecEQ applies the EQ predicate on the "time_sec" field.
func TimeSecEQ(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldTimeSec, v))
}

// TimeSecNEQ applies the NEQ predicate on the "time_sec" field.
func TimeSecNEQ(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNEQ(FieldTimeSec, v))
}

// TimeSecIn applies the In predicate on the "time_sec" field.
func TimeSecIn(vs ...float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldIn(FieldTimeSec, vs...))
}

// TimeSecNotIn applies the NotIn predicate on the "time_sec" field.
func TimeSecNotIn(vs ...float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNotIn(FieldTimeSec, vs...))
}

// TimeSecGT applies the GT predicate on the "time_sec" field.
func TimeSecGT(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGT(FieldTimeSec, v))
}

// TimeSecGTE applies the GTE predicate on the "time_sec" field.
func TimeSecGTE(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGTE(FieldTimeSec, v))
}

// TimeSecLT applies the LT predicate on the "time_sec" field.
func TimeSecLT(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLT(FieldTimeSec, v))
}

// TimeSecLTE applies the LTE predicate on the "time_sec" field.
func TimeSecLTE(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLTE(FieldTimeSec, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldContainsFold(FieldFeedback, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldContainsFold(FieldState, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.FieldLTE(FieldConfidence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InferenceEvent) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InferenceEvent) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InferenceEvent) predicate.InferenceEvent {
	return predicate.InferenceEvent(sql.NotPredicates(p))
}
