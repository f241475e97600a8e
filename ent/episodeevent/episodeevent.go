// Code generated by ent, DO NOT EDIT.

package episodeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the episodeevent type in the database.
	Label = "episode_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldEpisode holds the string denoting the episode field in the database.
	FieldEpisode = "episode"
	// FieldTotalReward holds the string denoting the total_reward field in the database.
	FieldTotalReward = "total_reward"
	// FieldFinalMastery holds the string denoting the final_mastery field in the database.
	FieldFinalMastery = "final_mastery"
	// FieldFinalFrustration holds the string denoting the final_frustration field in the database.
	FieldFinalFrustration = "final_frustration"
	// FieldEpsilon holds the string denoting the epsilon field in the database.
	FieldEpsilon = "epsilon"
	// Table holds the table name of the episodeevent in the database.
	Table = "episode_events"
)

// Columns holds all SQL columns for episodeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldEpisode,
	FieldTotalReward,
	FieldFinalMastery,
	FieldFinalFrustration,
	FieldEpsilon,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the EpisodeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByEpisode orders the results by the episode field.
func ByEpisode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpisode, opts...).ToFunc()
}

// ByTotalReward orders the results by the total_reward field.
func ByTotalReward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalReward, opts...).ToFunc()
}

// ByFinalMastery orders the results by the final_mastery field.
func ByFinalMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalMastery, opts...).ToFunc()
}

// ByFinalFrustration orders the results by the final_frustration field.
func ByFinalFrustration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalFrustration, opts...).ToFunc()
}

// ByEpsilon orders the results by the epsilon field.
func ByEpsilon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpsilon, opts...).ToFunc()
}
