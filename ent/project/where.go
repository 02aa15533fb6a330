// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"tracklite.io/tracklite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDeletedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameAbbreviation applies equality check predicate on the "name_abbreviation" field. It's identical to NameAbbreviationEQ.
func NameAbbreviation(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldNameAbbreviation, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDescription, v))
}

// SuccessCriteria applies equality check predicate on the "success_criteria" field. It's identical to SuccessCriteriaEQ.
func SuccessCriteria(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSuccessCriteria, v))
}

// Sponsor applies equality check predicate on the "sponsor" field. It's identical to SponsorEQ.
func Sponsor(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSponsor, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldDeletedAt))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// NameAbbreviationEQ applies the EQ predicate on the "name_abbreviation" field.
func NameAbbreviationEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldNameAbbreviation, v))
}

// NameAbbreviationNEQ applies the NEQ predicate on the "name_abbreviation" field.
func NameAbbreviationNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldNameAbbreviation, v))
}

// NameAbbreviationIn applies the In predicate on the "name_abbreviation" field.
func NameAbbreviationIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldNameAbbreviation, vs...))
}

// NameAbbreviationNotIn applies the NotIn predicate on the "name_abbreviation" field.
func NameAbbreviationNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldNameAbbreviation, vs...))
}

// NameAbbreviationGT applies the GT predicate on the "name_abbreviation" field.
func NameAbbreviationGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldNameAbbreviation, v))
}

// NameAbbreviationGTE applies the GTE predicate on the "name_abbreviation" field.
func NameAbbreviationGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldNameAbbreviation, v))
}

// NameAbbreviationLT applies the LT predicate on the "name_abbreviation" field.
func NameAbbreviationLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldNameAbbreviation, v))
}

// NameAbbreviationLTE applies the LTE predicate on the "name_abbreviation" field.
func NameAbbreviationLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldNameAbbreviation, v))
}

// NameAbbreviationContains applies the Contains predicate on the "name_abbreviation" field.
func NameAbbreviationContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldNameAbbreviation, v))
}

// NameAbbreviationHasPrefix applies the HasPrefix predicate on the "name_abbreviation" field.
func NameAbbreviationHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldNameAbbreviation, v))
}

// NameAbbreviationHasSuffix applies the HasSuffix predicate on the "name_abbreviation" field.
func NameAbbreviationHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldNameAbbreviation, v))
}

// NameAbbreviationEqualFold applies the EqualFold predicate on the "name_abbreviation" field.
func NameAbbreviationEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldNameAbbreviation, v))
}

// NameAbbreviationContainsFold applies the ContainsFold predicate on the "name_abbreviation" field.
func NameAbbreviationContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldNameAbbreviation, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldStatus, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldDescription, v))
}

// SuccessCriteriaEQ applies the EQ predicate on the "success_criteria" field.
func SuccessCriteriaEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSuccessCriteria, v))
}

// SuccessCriteriaNEQ applies the NEQ predicate on the "success_criteria" field.
func SuccessCriteriaNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldSuccessCriteria, v))
}

// SuccessCriteriaIn applies the In predicate on the "success_criteria" field.
func SuccessCriteriaIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldSuccessCriteria, vs...))
}

// SuccessCriteriaNotIn applies the NotIn predicate on the "success_criteria" field.
func SuccessCriteriaNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldSuccessCriteria, vs...))
}

// SuccessCriteriaGT applies the GT predicate on the "success_criteria" field.
func SuccessCriteriaGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldSuccessCriteria, v))
}

// SuccessCriteriaGTE applies the GTE predicate on the "success_criteria" field.
func SuccessCriteriaGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldSuccessCriteria, v))
}

// SuccessCriteriaLT applies the LT predicate on the "success_criteria" field.
func SuccessCriteriaLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldSuccessCriteria, v))
}

// SuccessCriteriaLTE applies the LTE predicate on the "success_criteria" field.
func SuccessCriteriaLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldSuccessCriteria, v))
}

// SuccessCriteriaContains applies the Contains predicate on the "success_criteria" field.
func SuccessCriteriaContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldSuccessCriteria, v))
}

// SuccessCriteriaHasPrefix applies the HasPrefix predicate on the "success_criteria" field.
func SuccessCriteriaHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldSuccessCriteria, v))
}

// SuccessCriteriaHasSuffix applies the HasSuffix predicate on the "success_criteria" field.
func SuccessCriteriaHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldSuccessCriteria, v))
}

// SuccessCriteriaIsNil applies the IsNil predicate on the "success_criteria" field.
func SuccessCriteriaIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldSuccessCriteria))
}

// SuccessCriteriaNotNil applies the NotNil predicate on the "success_criteria" field.
func SuccessCriteriaNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldSuccessCriteria))
}

// SuccessCriteriaEqualFold applies the EqualFold predicate on the "success_criteria" field.
func SuccessCriteriaEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldSuccessCriteria, v))
}

// SuccessCriteriaContainsFold applies the ContainsFold predicate on the "success_criteria" field.
func SuccessCriteriaContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldSuccessCriteria, v))
}

// SponsorEQ applies the EQ predicate on the "sponsor" field.
func SponsorEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSponsor, v))
}

// SponsorNEQ applies the NEQ predicate on the "sponsor" field.
func SponsorNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldSponsor, v))
}

// SponsorIn applies the In predicate on the "sponsor" field.
func SponsorIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldSponsor, vs...))
}

// SponsorNotIn applies the NotIn predicate on the "sponsor" field.
func SponsorNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldSponsor, vs...))
}

// SponsorGT applies the GT predicate on the "sponsor" field.
func SponsorGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldSponsor, v))
}

// SponsorGTE applies the GTE predicate on the "sponsor" field.
func SponsorGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldSponsor, v))
}

// SponsorLT applies the LT predicate on the "sponsor" field.
func SponsorLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldSponsor, v))
}

// SponsorLTE applies the LTE predicate on the "sponsor" field.
func SponsorLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldSponsor, v))
}

// SponsorContains applies the Contains predicate on the "sponsor" field.
func SponsorContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldSponsor, v))
}

// SponsorHasPrefix applies the HasPrefix predicate on the "sponsor" field.
func SponsorHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldSponsor, v))
}

// SponsorHasSuffix applies the HasSuffix predicate on the "sponsor" field.
func SponsorHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldSponsor, v))
}

// SponsorEqualFold applies the EqualFold predicate on the "sponsor" field.
func SponsorEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldSponsor, v))
}

// SponsorContainsFold applies the ContainsFold predicate on the "sponsor" field.
func SponsorContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldSponsor, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldCreatedBy, v))
}

// HasSolutions applies the HasEdge predicate on the "solutions" edge.
func HasSolutions() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SolutionsTable, SolutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSolutionsWith applies the HasEdge predicate on the "solutions" edge with a given conditions (other predicates).
func HasSolutionsWith(preds ...predicate.Solution) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newSolutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubcomponents applies the HasEdge predicate on the "subcomponents" edge.
func HasSubcomponents() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubcomponentsTable, SubcomponentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubcomponentsWith applies the HasEdge predicate on the "subcomponents" edge with a given conditions (other predicates).
func HasSubcomponentsWith(preds ...predicate.Subcomponent) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newSubcomponentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
