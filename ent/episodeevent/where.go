// Code generated by ent, DO NOT EDIT.

package episodeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ankitray/sensei/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldRunID, v))
}

// Episode applies equality check predicate on the "episode" field. It's identical to EpisodeEQ.
func Episode(v int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldEpisode, v))
}

// TotalReward applies equality check predicate on the "total_reward" field. It's identical to TotalRewardEQ.
func TotalReward(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldTotalReward, v))
}

// FinalMastery applies equality check predicate on the "final_mastery" field. It's identical to FinalMasteryEQ.
func FinalMastery(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldFinalMastery, v))
}

// FinalFrustration applies equality check predicate on the "final_frustration" field. It's identical to FinalFrustrationEQ.
func FinalFrustration(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldFinalFrustration, v))
}

// Epsilon applies equality check predicate on the "epsilon" field. It's identical to EpsilonEQ.
func Epsilon(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldEpsilon, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldContainsFold(FieldRunID, v))
}

// EpisodeEQ applies the EQ predicate on the "episode" field.
func EpisodeEQ(v int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldEpisode, v))
}

// EpisodeNEQ applies the NEQ predicate on the "episode" field.
func EpisodeNEQ(v int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNEQ(FieldEpisode, v))
}

// EpisodeIn applies the In predicate on the "episode" field.
func EpisodeIn(vs ...int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldIn(FieldEpisode, vs...))
}

// EpisodeNotIn applies the NotIn predicate on the "episode" field.
func EpisodeNotIn(vs ...int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNotIn(FieldEpisode, vs...))
}

// EpisodeGT applies the GT predicate on the "episode" field.
func EpisodeGT(v int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGT(FieldEpisode, v))
}

// EpisodeGTE applies the GTE predicate on the "episode" field.
func EpisodeGTE(v int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGTE(FieldEpisode, v))
}

// EpisodeLT applies the LT predicate on the "episode" field.
func EpisodeLT(v int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLT(FieldEpisode, v))
}

// EpisodeLTE applies the LTE predicate on the "episode" field.
func EpisodeLTE(v int) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLTE(FieldEpisode, v))
}

// TotalRewardEQ applies the EQ predicate on the "total_reward" field.
func TotalRewardEQ(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldTotalReward, v))
}

// TotalRewardNEQ applies the NEQ predicate on the "total_reward" field.
func TotalRewardNEQ(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNEQ(FieldTotalReward, v))
}

// TotalRewardIn applies the In predicate on the "total_reward" field.
func TotalRewardIn(vs ...float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldIn(FieldTotalReward, vs...))
}

// TotalRewardNotIn applies the NotIn predicate on the "total_reward" field.
func TotalRewardNotIn(vs ...float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNotIn(FieldTotalReward, vs...))
}

// TotalRewardGT applies the GT predicate on the "total_reward" field.
func TotalRewardGT(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGT(FieldTotalReward, v))
}

// TotalRewardGTE applies the GTE predicate on the "total_reward" field.
func TotalRewardGTE(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGTE(FieldTotalReward, v))
}

// TotalRewardLT applies the LT predicate on the "total_reward" field.
func TotalRewardLT(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLT(FieldTotalReward, v))
}

// TotalRewardLTE applies the LTE predicate on the "total_reward" field.
func TotalRewardLTE(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLTE(FieldTotalReward, v))
}

// FinalMasteryEQ applies the EQ predicate on the "final_mastery" field.
func FinalMasteryEQ(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldFinalMastery, v))
}

// FinalMasteryNEQ applies the NEQ predicate on the "final_mastery" field.
func FinalMasteryNEQ(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNEQ(FieldFinalMastery, v))
}

// FinalMasteryIn applies the In predicate on the "final_mastery" field.
func FinalMasteryIn(vs ...float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldIn(FieldFinalMastery, vs...))
}

// FinalMasteryNotIn applies the NotIn predicate on the "final_mastery" field.
func FinalMasteryNotIn(vs ...float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNotIn(FieldFinalMastery, vs...))
}

// FinalMasteryGT applies the GT predicate on the "final_mastery" field.
func FinalMasteryGT(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGT(FieldFinalMastery, v))
}

// FinalMasteryGTE applies the GTE predicate on the "final_mastery" field.
func FinalMasteryGTE(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGTE(FieldFinalMastery, v))
}

// FinalMasteryLT applies the LT predicate on the "final_mastery" field.
func FinalMasteryLT(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLT(FieldFinalMastery, v))
}

// FinalMasteryLTE applies the LTE predicate on the "final_mastery" field.
func FinalMasteryLTE(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLTE(FieldFinalMastery, v))
}

// FinalFrustrationEQ applies the EQ predicate on the "final_frustration" field.
func FinalFrustrationEQ(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldFinalFrustration, v))
}

// FinalFrustrationNEQ applies the NEQ predicate on the "final_frustration" field.
func FinalFrustrationNEQ(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNEQ(FieldFinalFrustration, v))
}

// FinalFrustrationIn applies the In predicate on the "final_frustration" field.
func FinalFrustrationIn(vs ...float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldIn(FieldFinalFrustration, vs...))
}

// FinalFrustrationNotIn applies the NotIn predicate on the "final_frustration" field.
func FinalFrustrationNotIn(vs ...float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNotIn(FieldFinalFrustration, vs...))
}

// FinalFrustrationGT applies the GT predicate on the "final_frustration" field.
func FinalFrustrationGT(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGT(FieldFinalFrustration, v))
}

// FinalFrustrationGTE applies the GTE predicate on the "final_frustration" field.
func FinalFrustrationGTE(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGTE(FieldFinalFrustration, v))
}

// FinalFrustrationLT applies the LT predicate on the "final_frustration" field.
func FinalFrustrationLT(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLT(FieldFinalFrustration, v))
}

// FinalFrustrationLTE applies the LTE predicate on the "final_frustration" field.
func FinalFrustrationLTE(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLTE(FieldFinalFrustration, v))
}

// EpsilonEQ applies the EQ predicate on the "epsilon" field.
func EpsilonEQ(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldEQ(FieldEpsilon, v))
}

// EpsilonNEQ applies the NEQ predicate on the "epsilon" field.
func EpsilonNEQ(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNEQ(FieldEpsilon, v))
}

// EpsilonIn applies the In predicate on the "epsilon" field.
func EpsilonIn(vs ...float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldIn(FieldEpsilon, vs...))
}

// EpsilonNotIn applies the NotIn predicate on the "epsilon" field.
func EpsilonNotIn(vs ...float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldNotIn(FieldEpsilon, vs...))
}

// EpsilonGT applies the GT predicate on the "epsilon" field.
func EpsilonGT(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGT(FieldEpsilon, v))
}

// EpsilonGTE applies the GTE predicate on the "epsilon" field.
func EpsilonGTE(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldGTE(FieldEpsilon, v))
}

// EpsilonLT applies the LT predicate on the "epsilon" field.
func EpsilonLT(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLT(FieldEpsilon, v))
}

// EpsilonLTE applies the LTE predicate on the "epsilon" field.
func EpsilonLTE(v float64) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.FieldLTE(FieldEpsilon, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EpisodeEvent) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EpisodeEvent) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EpisodeEvent) predicate.EpisodeEvent {
	return predicate.EpisodeEvent(sql.NotPredicates(p))
}
