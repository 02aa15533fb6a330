// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"tracklite.io/tracklite/ent/changelog"
	"tracklite.io/tracklite/ent/phase"
	"tracklite.io/tracklite/ent/project"
	"tracklite.io/tracklite/ent/schema"
	"tracklite.io/tracklite/ent/session"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
	"tracklite.io/tracklite/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	changelogMixin := schema.ChangeLog{}.Mixin()
	changelogMixinFields0 := changelogMixin[0].Fields()
	_ = changelogMixinFields0
	changelogFields := schema.ChangeLog{}.Fields()
	_ = changelogFields
	// changelogDescCreatedAt is the schema descriptor for created_at field.
	changelogDescCreatedAt := changelogMixinFields0[0].Descriptor()
	// changelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	changelog.DefaultCreatedAt = changelogDescCreatedAt.Default.(func() time.Time)
	// changelogDescEntityType is the schema descriptor for entity_type field.
	changelogDescEntityType := changelogFields[1].Descriptor()
	// changelog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	changelog.EntityTypeValidator = changelogDescEntityType.Validators[0].(func(string) error)
	// changelogDescEntityID is the schema descriptor for entity_id field.
	changelogDescEntityID := changelogFields[2].Descriptor()
	// changelog.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	changelog.EntityIDValidator = changelogDescEntityID.Validators[0].(func(string) error)
	// changelogDescUserID is the schema descriptor for user_id field.
	changelogDescUserID := changelogFields[7].Descriptor()
	// changelog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	changelog.UserIDValidator = changelogDescUserID.Validators[0].(func(string) error)
	phaseMixin := schema.Phase{}.Mixin()
	phaseMixinFields0 := phaseMixin[0].Fields()
	_ = phaseMixinFields0
	phaseFields := schema.Phase{}.Fields()
	_ = phaseFields
	// phaseDescCreatedAt is the schema descriptor for created_at field.
	phaseDescCreatedAt := phaseMixinFields0[0].Descriptor()
	// phase.DefaultCreatedAt holds the default value on creation for the created_at field.
	phase.DefaultCreatedAt = phaseDescCreatedAt.Default.(func() time.Time)
	// phaseDescUpdatedAt is the schema descriptor for updated_at field.
	phaseDescUpdatedAt := phaseMixinFields0[1].Descriptor()
	// phase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	phase.DefaultUpdatedAt = phaseDescUpdatedAt.Default.(func() time.Time)
	// phase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	phase.UpdateDefaultUpdatedAt = phaseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// phaseDescPhaseGroup is the schema descriptor for phase_group field.
	phaseDescPhaseGroup := phaseFields[1].Descriptor()
	// phase.PhaseGroupValidator is a validator for the "phase_group" field. It is called by the builders before save.
	phase.PhaseGroupValidator = phaseDescPhaseGroup.Validators[0].(func(string) error)
	// phaseDescPhaseName is the schema descriptor for phase_name field.
	phaseDescPhaseName := phaseFields[2].Descriptor()
	// phase.PhaseNameValidator is a validator for the "phase_name" field. It is called by the builders before save.
	phase.PhaseNameValidator = phaseDescPhaseName.Validators[0].(func(string) error)
	// phaseDescSequence is the schema descriptor for sequence field.
	phaseDescSequence := phaseFields[3].Descriptor()
	// phase.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	phase.SequenceValidator = phaseDescSequence.Validators[0].(func(int) error)
	projectMixin := schema.Project{}.Mixin()
	projectMixinFields0 := projectMixin[0].Fields()
	_ = projectMixinFields0
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectMixinFields0[0].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectMixinFields0[1].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescNameAbbreviation is the schema descriptor for name_abbreviation field.
	projectDescNameAbbreviation := projectFields[2].Descriptor()
	// project.NameAbbreviationValidator is a validator for the "name_abbreviation" field. It is called by the builders before save.
	project.NameAbbreviationValidator = func() func(string) error {
		validators := projectDescNameAbbreviation.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name_abbreviation string) error {
			for _, fn := range fns {
				if err := fn(name_abbreviation); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// projectDescSponsor is the schema descriptor for sponsor field.
	projectDescSponsor := projectFields[6].Descriptor()
	// project.DefaultSponsor holds the default value on creation for the sponsor field.
	project.DefaultSponsor = projectDescSponsor.Default.(string)
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionMixinFields0[0].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	solutionMixin := schema.Solution{}.Mixin()
	solutionMixinFields0 := solutionMixin[0].Fields()
	_ = solutionMixinFields0
	solutionFields := schema.Solution{}.Fields()
	_ = solutionFields
	// solutionDescCreatedAt is the schema descriptor for created_at field.
	solutionDescCreatedAt := solutionMixinFields0[0].Descriptor()
	// solution.DefaultCreatedAt holds the default value on creation for the created_at field.
	solution.DefaultCreatedAt = solutionDescCreatedAt.Default.(func() time.Time)
	// solutionDescUpdatedAt is the schema descriptor for updated_at field.
	solutionDescUpdatedAt := solutionMixinFields0[1].Descriptor()
	// solution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	solution.DefaultUpdatedAt = solutionDescUpdatedAt.Default.(func() time.Time)
	// solution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	solution.UpdateDefaultUpdatedAt = solutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// solutionDescProjectID is the schema descriptor for project_id field.
	solutionDescProjectID := solutionFields[1].Descriptor()
	// solution.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	solution.ProjectIDValidator = solutionDescProjectID.Validators[0].(func(string) error)
	// solutionDescName is the schema descriptor for name field.
	solutionDescName := solutionFields[2].Descriptor()
	// solution.NameValidator is a validator for the "name" field. It is called by the builders before save.
	solution.NameValidator = solutionDescName.Validators[0].(func(string) error)
	// solutionDescVersion is the schema descriptor for version field.
	solutionDescVersion := solutionFields[3].Descriptor()
	// solution.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	solution.VersionValidator = solutionDescVersion.Validators[0].(func(string) error)
	// solutionDescPriority is the schema descriptor for priority field.
	solutionDescPriority := solutionFields[5].Descriptor()
	// solution.DefaultPriority holds the default value on creation for the priority field.
	solution.DefaultPriority = solutionDescPriority.Default.(int)
	// solutionDescOwner is the schema descriptor for owner field.
	solutionDescOwner := solutionFields[13].Descriptor()
	// solution.DefaultOwner holds the default value on creation for the owner field.
	solution.DefaultOwner = solutionDescOwner.Default.(string)
	// solutionDescAssignee is the schema descriptor for assignee field.
	solutionDescAssignee := solutionFields[14].Descriptor()
	// solution.DefaultAssignee holds the default value on creation for the assignee field.
	solution.DefaultAssignee = solutionDescAssignee.Default.(string)
	solutionphaseMixin := schema.SolutionPhase{}.Mixin()
	solutionphaseMixinFields0 := solutionphaseMixin[0].Fields()
	_ = solutionphaseMixinFields0
	solutionphaseFields := schema.SolutionPhase{}.Fields()
	_ = solutionphaseFields
	// solutionphaseDescCreatedAt is the schema descriptor for created_at field.
	solutionphaseDescCreatedAt := solutionphaseMixinFields0[0].Descriptor()
	// solutionphase.DefaultCreatedAt holds the default value on creation for the created_at field.
	solutionphase.DefaultCreatedAt = solutionphaseDescCreatedAt.Default.(func() time.Time)
	// solutionphaseDescUpdatedAt is the schema descriptor for updated_at field.
	solutionphaseDescUpdatedAt := solutionphaseMixinFields0[1].Descriptor()
	// solutionphase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	solutionphase.DefaultUpdatedAt = solutionphaseDescUpdatedAt.Default.(func() time.Time)
	// solutionphase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	solutionphase.UpdateDefaultUpdatedAt = solutionphaseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// solutionphaseDescSolutionID is the schema descriptor for solution_id field.
	solutionphaseDescSolutionID := solutionphaseFields[1].Descriptor()
	// solutionphase.SolutionIDValidator is a validator for the "solution_id" field. It is called by the builders before save.
	solutionphase.SolutionIDValidator = solutionphaseDescSolutionID.Validators[0].(func(string) error)
	// solutionphaseDescPhaseID is the schema descriptor for phase_id field.
	solutionphaseDescPhaseID := solutionphaseFields[2].Descriptor()
	// solutionphase.PhaseIDValidator is a validator for the "phase_id" field. It is called by the builders before save.
	solutionphase.PhaseIDValidator = solutionphaseDescPhaseID.Validators[0].(func(string) error)
	// solutionphaseDescIsEnabled is the schema descriptor for is_enabled field.
	solutionphaseDescIsEnabled := solutionphaseFields[3].Descriptor()
	// solutionphase.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	solutionphase.DefaultIsEnabled = solutionphaseDescIsEnabled.Default.(bool)
	subcomponentMixin := schema.Subcomponent{}.Mixin()
	subcomponentMixinFields0 := subcomponentMixin[0].Fields()
	_ = subcomponentMixinFields0
	subcomponentFields := schema.Subcomponent{}.Fields()
	_ = subcomponentFields
	// subcomponentDescCreatedAt is the schema descriptor for created_at field.
	subcomponentDescCreatedAt := subcomponentMixinFields0[0].Descriptor()
	// subcomponent.DefaultCreatedAt holds the default value on creation for the created_at field.
	subcomponent.DefaultCreatedAt = subcomponentDescCreatedAt.Default.(func() time.Time)
	// subcomponentDescUpdatedAt is the schema descriptor for updated_at field.
	subcomponentDescUpdatedAt := subcomponentMixinFields0[1].Descriptor()
	// subcomponent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subcomponent.DefaultUpdatedAt = subcomponentDescUpdatedAt.Default.(func() time.Time)
	// subcomponent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subcomponent.UpdateDefaultUpdatedAt = subcomponentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subcomponentDescProjectID is the schema descriptor for project_id field.
	subcomponentDescProjectID := subcomponentFields[1].Descriptor()
	// subcomponent.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	subcomponent.ProjectIDValidator = subcomponentDescProjectID.Validators[0].(func(string) error)
	// subcomponentDescSolutionID is the schema descriptor for solution_id field.
	subcomponentDescSolutionID := subcomponentFields[2].Descriptor()
	// subcomponent.SolutionIDValidator is a validator for the "solution_id" field. It is called by the builders before save.
	subcomponent.SolutionIDValidator = subcomponentDescSolutionID.Validators[0].(func(string) error)
	// subcomponentDescName is the schema descriptor for name field.
	subcomponentDescName := subcomponentFields[3].Descriptor()
	// subcomponent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subcomponent.NameValidator = subcomponentDescName.Validators[0].(func(string) error)
	// subcomponentDescPriority is the schema descriptor for priority field.
	subcomponentDescPriority := subcomponentFields[5].Descriptor()
	// subcomponent.DefaultPriority holds the default value on creation for the priority field.
	subcomponent.DefaultPriority = subcomponentDescPriority.Default.(int)
	// subcomponentDescOwner is the schema descriptor for owner field.
	subcomponentDescOwner := subcomponentFields[13].Descriptor()
	// subcomponent.DefaultOwner holds the default value on creation for the owner field.
	subcomponent.DefaultOwner = subcomponentDescOwner.Default.(string)
	// subcomponentDescAssignee is the schema descriptor for assignee field.
	subcomponentDescAssignee := subcomponentFields[14].Descriptor()
	// subcomponent.DefaultAssignee holds the default value on creation for the assignee field.
	subcomponent.DefaultAssignee = subcomponentDescAssignee.Default.(string)
	subcomponentphasestatusMixin := schema.SubcomponentPhaseStatus{}.Mixin()
	subcomponentphasestatusMixinFields0 := subcomponentphasestatusMixin[0].Fields()
	_ = subcomponentphasestatusMixinFields0
	subcomponentphasestatusFields := schema.SubcomponentPhaseStatus{}.Fields()
	_ = subcomponentphasestatusFields
	// subcomponentphasestatusDescCreatedAt is the schema descriptor for created_at field.
	subcomponentphasestatusDescCreatedAt := subcomponentphasestatusMixinFields0[0].Descriptor()
	// subcomponentphasestatus.DefaultCreatedAt holds the default value on creation for the created_at field.
	subcomponentphasestatus.DefaultCreatedAt = subcomponentphasestatusDescCreatedAt.Default.(func() time.Time)
	// subcomponentphasestatusDescUpdatedAt is the schema descriptor for updated_at field.
	subcomponentphasestatusDescUpdatedAt := subcomponentphasestatusMixinFields0[1].Descriptor()
	// subcomponentphasestatus.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subcomponentphasestatus.DefaultUpdatedAt = subcomponentphasestatusDescUpdatedAt.Default.(func() time.Time)
	// subcomponentphasestatus.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subcomponentphasestatus.UpdateDefaultUpdatedAt = subcomponentphasestatusDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subcomponentphasestatusDescSubcomponentID is the schema descriptor for subcomponent_id field.
	subcomponentphasestatusDescSubcomponentID := subcomponentphasestatusFields[1].Descriptor()
	// subcomponentphasestatus.SubcomponentIDValidator is a validator for the "subcomponent_id" field. It is called by the builders before save.
	subcomponentphasestatus.SubcomponentIDValidator = subcomponentphasestatusDescSubcomponentID.Validators[0].(func(string) error)
	// subcomponentphasestatusDescSolutionPhaseID is the schema descriptor for solution_phase_id field.
	subcomponentphasestatusDescSolutionPhaseID := subcomponentphasestatusFields[2].Descriptor()
	// subcomponentphasestatus.SolutionPhaseIDValidator is a validator for the "solution_phase_id" field. It is called by the builders before save.
	subcomponentphasestatus.SolutionPhaseIDValidator = subcomponentphasestatusDescSolutionPhaseID.Validators[0].(func(string) error)
	// subcomponentphasestatusDescPhaseID is the schema descriptor for phase_id field.
	subcomponentphasestatusDescPhaseID := subcomponentphasestatusFields[3].Descriptor()
	// subcomponentphasestatus.PhaseIDValidator is a validator for the "phase_id" field. It is called by the builders before save.
	subcomponentphasestatus.PhaseIDValidator = subcomponentphasestatusDescPhaseID.Validators[0].(func(string) error)
	// subcomponentphasestatusDescIsComplete is the schema descriptor for is_complete field.
	subcomponentphasestatusDescIsComplete := subcomponentphasestatusFields[4].Descriptor()
	// subcomponentphasestatus.DefaultIsComplete holds the default value on creation for the is_complete field.
	subcomponentphasestatus.DefaultIsComplete = subcomponentphasestatusDescIsComplete.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescSoeid is the schema descriptor for soeid field.
	userDescSoeid := userFields[1].Descriptor()
	// user.SoeidValidator is a validator for the "soeid" field. It is called by the builders before save.
	user.SoeidValidator = userDescSoeid.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[3].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[4].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[5].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[6].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescFailedAttempts is the schema descriptor for failed_attempts field.
	userDescFailedAttempts := userFields[7].Descriptor()
	// user.DefaultFailedAttempts holds the default value on creation for the failed_attempts field.
	user.DefaultFailedAttempts = userDescFailedAttempts.Default.(int)
}
