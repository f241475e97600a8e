// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ankitray/sensei/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Planner applies equality check predicate on the "planner" field. It's identical to PlannerEQ.
func Planner(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanner, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSubject, v))
}

// PlanLength applies equality check predicate on the "plan_length" field. It's identical to PlanLengthEQ.
func PlanLength(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanLength, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PlannerEQ applies the EQ predicate on the "planner" field.
func PlannerEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanner, v))
}

// PlannerNEQ applies the NEQ predicate on the "planner" field.
func PlannerNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldPlanner, v))
}

// PlannerIn applies the In predicate on the "planner" field.
func PlannerIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldPlanner, vs...))
}

// PlannerNotIn applies the NotIn predicate on the "planner" field.
func PlannerNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldPlanner, vs...))
}

// PlannerGT applies the GT predicate on the "planner" field.
func PlannerGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldPlanner, v))
}

// PlannerGTE applies the GTE predicate on the "planner" field.
func PlannerGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldPlanner, v))
}

// PlannerLT applies the LT predicate on the "planner" field.
func PlannerLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldPlanner, v))
}

// PlannerLTE applies the LTE predicate on the "planner" field.
func PlannerLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldPlanner, v))
}

// PlannerContains applies the Contains predicate on the "planner" field.
func PlannerContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldPlanner, v))
}

// PlannerHasPrefix applies the HasPrefix predicate on the "planner" field.
func PlannerHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldPlanner, v))
}

// PlannerHasSuffix applies the HasSuffix predicate on the "planner" field.
func PlannerHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldPlanner, v))
}

// PlannerEqualFold applies the EqualFold predicate on the "planner" field.
func PlannerEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldPlanner, v))
}

// PlannerContainsFold applies the ContainsFold predicate on the "planner" field.
func PlannerContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldPlanner, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldSubject, v))
}

// PlanLengthEQ applies the EQ predicate on the "plan_length" field.
func PlanLengthEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanLength, v))
}

// PlanLengthNEQ applies the NEQ predicate on the "plan_length" field.
func PlanLengthNEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldPlanLength, v))
}

// PlanLengthIn applies the In predicate on the "plan_length" field.
func PlanLengthIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldPlanLength, vs...))
}

// PlanLengthNotIn applies the NotIn predicate on the "plan_length" field.
func PlanLengthNotIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldPlanLength, vs...))
}

// PlanLengthGT applies the GT predicate on the "plan_length" field.
func PlanLengthGT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldPlanLength, v))
}

// PlanLengthGTE applies the GTE predicate on the "plan_length" field.
func PlanLengthGTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldPlanLength, v))
}

// PlanLengthLT applies the LT predicate on the "plan_length" field.
func PlanLengthLT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldPlanLength, v))
}

// PlanLengthLTE applies the LTE predicate on the "plan_length" field.
func PlanLengthLTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldPlanLength, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.NotPredicates(p))
}
