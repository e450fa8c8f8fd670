// Code generated by ent, DO NOT EDIT.

package pluginexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shu-assistant/shu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldUserID, v))
}

// ScheduleID applies equality check predicate on the "schedule_id" field. It's identical to ScheduleIDEQ.
func ScheduleID(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldScheduleID, v))
}

// PluginName applies equality check predicate on the "plugin_name" field. It's identical to PluginNameEQ.
func PluginName(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldPluginName, v))
}

// AgentKey applies equality check predicate on the "agent_key" field. It's identical to AgentKeyEQ.
func AgentKey(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldAgentKey, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldError, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContainsFold(FieldUserID, v))
}

// ScheduleIDEQ applies the EQ predicate on the "schedule_id" field.
func ScheduleIDEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldScheduleID, v))
}

// ScheduleIDNEQ applies the NEQ predicate on the "schedule_id" field.
func ScheduleIDNEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldScheduleID, v))
}

// ScheduleIDIn applies the In predicate on the "schedule_id" field.
func ScheduleIDIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldScheduleID, vs...))
}

// ScheduleIDNotIn applies the NotIn predicate on the "schedule_id" field.
func ScheduleIDNotIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldScheduleID, vs...))
}

// ScheduleIDGT applies the GT predicate on the "schedule_id" field.
func ScheduleIDGT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldScheduleID, v))
}

// ScheduleIDGTE applies the GTE predicate on the "schedule_id" field.
func ScheduleIDGTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldScheduleID, v))
}

// ScheduleIDLT applies the LT predicate on the "schedule_id" field.
func ScheduleIDLT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldScheduleID, v))
}

// ScheduleIDLTE applies the LTE predicate on the "schedule_id" field.
func ScheduleIDLTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldScheduleID, v))
}

// ScheduleIDContains applies the Contains predicate on the "schedule_id" field.
func ScheduleIDContains(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContains(FieldScheduleID, v))
}

// ScheduleIDHasPrefix applies the HasPrefix predicate on the "schedule_id" field.
func ScheduleIDHasPrefix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasPrefix(FieldScheduleID, v))
}

// ScheduleIDHasSuffix applies the HasSuffix predicate on the "schedule_id" field.
func ScheduleIDHasSuffix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasSuffix(FieldScheduleID, v))
}

// ScheduleIDIsNil applies the IsNil predicate on the "schedule_id" field.
func ScheduleIDIsNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIsNull(FieldScheduleID))
}

// ScheduleIDNotNil applies the NotNil predicate on the "schedule_id" field.
func ScheduleIDNotNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotNull(FieldScheduleID))
}

// ScheduleIDEqualFold applies the EqualFold predicate on the "schedule_id" field.
func ScheduleIDEqualFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEqualFold(FieldScheduleID, v))
}

// ScheduleIDContainsFold applies the ContainsFold predicate on the "schedule_id" field.
func ScheduleIDContainsFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContainsFold(FieldScheduleID, v))
}

// PluginNameEQ applies the EQ predicate on the "plugin_name" field.
func PluginNameEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldPluginName, v))
}

// PluginNameNEQ applies the NEQ predicate on the "plugin_name" field.
func PluginNameNEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldPluginName, v))
}

// PluginNameIn applies the In predicate on the "plugin_name" field.
func PluginNameIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldPluginName, vs...))
}

// PluginNameNotIn applies the NotIn predicate on the "plugin_name" field.
func PluginNameNotIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldPluginName, vs...))
}

// PluginNameGT applies the GT predicate on the "plugin_name" field.
func PluginNameGT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldPluginName, v))
}

// PluginNameGTE applies the GTE predicate on the "plugin_name" field.
func PluginNameGTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldPluginName, v))
}

// PluginNameLT applies the LT predicate on the "plugin_name" field.
func PluginNameLT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldPluginName, v))
}

// PluginNameLTE applies the LTE predicate on the "plugin_name" field.
func PluginNameLTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldPluginName, v))
}

// PluginNameContains applies the Contains predicate on the "plugin_name" field.
func PluginNameContains(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContains(FieldPluginName, v))
}

// PluginNameHasPrefix applies the HasPrefix predicate on the "plugin_name" field.
func PluginNameHasPrefix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasPrefix(FieldPluginName, v))
}

// PluginNameHasSuffix applies the HasSuffix predicate on the "plugin_name" field.
func PluginNameHasSuffix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasSuffix(FieldPluginName, v))
}

// PluginNameEqualFold applies the EqualFold predicate on the "plugin_name" field.
func PluginNameEqualFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEqualFold(FieldPluginName, v))
}

// PluginNameContainsFold applies the ContainsFold predicate on the "plugin_name" field.
func PluginNameContainsFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContainsFold(FieldPluginName, v))
}

// AgentKeyEQ applies the EQ predicate on the "agent_key" field.
func AgentKeyEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldAgentKey, v))
}

// AgentKeyNEQ applies the NEQ predicate on the "agent_key" field.
func AgentKeyNEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldAgentKey, v))
}

// AgentKeyIn applies the In predicate on the "agent_key" field.
func AgentKeyIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldAgentKey, vs...))
}

// AgentKeyNotIn applies the NotIn predicate on the "agent_key" field.
func AgentKeyNotIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldAgentKey, vs...))
}

// AgentKeyGT applies the GT predicate on the "agent_key" field.
func AgentKeyGT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldAgentKey, v))
}

// AgentKeyGTE applies the GTE predicate on the "agent_key" field.
func AgentKeyGTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldAgentKey, v))
}

// AgentKeyLT applies the LT predicate on the "agent_key" field.
func AgentKeyLT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldAgentKey, v))
}

// AgentKeyLTE applies the LTE predicate on the "agent_key" field.
func AgentKeyLTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldAgentKey, v))
}

// AgentKeyContains applies the Contains predicate on the "agent_key" field.
func AgentKeyContains(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContains(FieldAgentKey, v))
}

// AgentKeyHasPrefix applies the HasPrefix predicate on the "agent_key" field.
func AgentKeyHasPrefix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasPrefix(FieldAgentKey, v))
}

// AgentKeyHasSuffix applies the HasSuffix predicate on the "agent_key" field.
func AgentKeyHasSuffix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasSuffix(FieldAgentKey, v))
}

// AgentKeyIsNil applies the IsNil predicate on the "agent_key" field.
func AgentKeyIsNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIsNull(FieldAgentKey))
}

// AgentKeyNotNil applies the NotNil predicate on the "agent_key" field.
func AgentKeyNotNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotNull(FieldAgentKey))
}

// AgentKeyEqualFold applies the EqualFold predicate on the "agent_key" field.
func AgentKeyEqualFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEqualFold(FieldAgentKey, v))
}

// AgentKeyContainsFold applies the ContainsFold predicate on the "agent_key" field.
func AgentKeyContainsFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContainsFold(FieldAgentKey, v))
}

// ParamsIsNil applies the IsNil predicate on the "params" field.
func ParamsIsNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIsNull(FieldParams))
}

// ParamsNotNil applies the NotNil predicate on the "params" field.
func ParamsNotNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotNull(FieldParams))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotNull(FieldResult))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContainsFold(FieldError, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.PluginExecution {
	return predicate.PluginExecution(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PluginExecution) predicate.PluginExecution {
	return predicate.PluginExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PluginExecution) predicate.PluginExecution {
	return predicate.PluginExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PluginExecution) predicate.PluginExecution {
	return predicate.PluginExecution(sql.NotPredicates(p))
}
