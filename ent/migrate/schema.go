// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChangeLogsColumns holds the columns for the "change_logs" table.
	ChangeLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"create", "update", "delete", "restore"}},
		{Name: "field", Type: field.TypeString, Nullable: true},
		{Name: "old_value", Type: field.TypeString, Nullable: true},
		{Name: "new_value", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
	}
	// ChangeLogsTable holds the schema information for the "change_logs" table.
	ChangeLogsTable = &schema.Table{
		Name:       "change_logs",
		Columns:    ChangeLogsColumns,
		PrimaryKey: []*schema.Column{ChangeLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "changelog_entity_type_entity_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChangeLogsColumns[2], ChangeLogsColumns[3], ChangeLogsColumns[1]},
			},
			{
				Name:    "changelog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChangeLogsColumns[8], ChangeLogsColumns[1]},
			},
			{
				Name:    "changelog_request_id",
				Unique:  false,
				Columns: []*schema.Column{ChangeLogsColumns[9]},
			},
			{
				Name:    "changelog_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChangeLogsColumns[1]},
			},
		},
	}
	// PhasesColumns holds the columns for the "phases" table.
	PhasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "phase_group", Type: field.TypeString},
		{Name: "phase_name", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt, Unique: true},
	}
	// PhasesTable holds the schema information for the "phases" table.
	PhasesTable = &schema.Table{
		Name:       "phases",
		Columns:    PhasesColumns,
		PrimaryKey: []*schema.Column{PhasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "phase_sequence",
				Unique:  false,
				Columns: []*schema.Column{PhasesColumns[5]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "name_abbreviation", Type: field.TypeString, Size: 4},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"not_started", "active", "on_hold", "complete", "abandoned"}, Default: "not_started"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "success_criteria", Type: field.TypeString, Nullable: true},
		{Name: "sponsor", Type: field.TypeString, Default: ""},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[4]},
			},
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6]},
			},
			{
				Name:    "project_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[3]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_expires_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
		},
	}
	// SolutionsColumns holds the columns for the "solutions" table.
	SolutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"not_started", "active", "on_hold", "complete", "abandoned"}, Default: "not_started"},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "current_phase", Type: field.TypeString, Nullable: true},
		{Name: "rag_status", Type: field.TypeEnum, Enums: []string{"red", "amber", "green"}, Default: "amber"},
		{Name: "rag_source", Type: field.TypeEnum, Enums: []string{"auto", "manual"}, Default: "auto"},
		{Name: "rag_reason", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "success_criteria", Type: field.TypeString, Nullable: true},
		{Name: "owner", Type: field.TypeString, Default: ""},
		{Name: "assignee", Type: field.TypeString, Default: ""},
		{Name: "approver", Type: field.TypeString, Nullable: true},
		{Name: "key_stakeholder", Type: field.TypeString, Nullable: true},
		{Name: "blockers", Type: field.TypeString, Nullable: true},
		{Name: "risks", Type: field.TypeString, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// SolutionsTable holds the schema information for the "solutions" table.
	SolutionsTable = &schema.Table{
		Name:       "solutions",
		Columns:    SolutionsColumns,
		PrimaryKey: []*schema.Column{SolutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "solutions_projects_solutions",
				Columns:    []*schema.Column{SolutionsColumns[23]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "solution_project_id_name_version",
				Unique:  true,
				Columns: []*schema.Column{SolutionsColumns[23], SolutionsColumns[4], SolutionsColumns[5]},
			},
			{
				Name:    "solution_status",
				Unique:  false,
				Columns: []*schema.Column{SolutionsColumns[6]},
			},
			{
				Name:    "solution_due_date",
				Unique:  false,
				Columns: []*schema.Column{SolutionsColumns[8]},
			},
			{
				Name:    "solution_assignee",
				Unique:  false,
				Columns: []*schema.Column{SolutionsColumns[16]},
			},
			{
				Name:    "solution_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{SolutionsColumns[3]},
			},
		},
	}
	// SolutionPhasesColumns holds the columns for the "solution_phases" table.
	SolutionPhasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "phase_id", Type: field.TypeString},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "sequence_override", Type: field.TypeInt, Nullable: true},
		{Name: "solution_id", Type: field.TypeString},
	}
	// SolutionPhasesTable holds the schema information for the "solution_phases" table.
	SolutionPhasesTable = &schema.Table{
		Name:       "solution_phases",
		Columns:    SolutionPhasesColumns,
		PrimaryKey: []*schema.Column{SolutionPhasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "solution_phases_solutions_solution_phases",
				Columns:    []*schema.Column{SolutionPhasesColumns[6]},
				RefColumns: []*schema.Column{SolutionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "solutionphase_solution_id_phase_id",
				Unique:  true,
				Columns: []*schema.Column{SolutionPhasesColumns[6], SolutionPhasesColumns[3]},
			},
			{
				Name:    "solutionphase_solution_id_is_enabled",
				Unique:  false,
				Columns: []*schema.Column{SolutionPhasesColumns[6], SolutionPhasesColumns[4]},
			},
		},
	}
	// SubcomponentsColumns holds the columns for the "subcomponents" table.
	SubcomponentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"to_do", "in_progress", "on_hold", "complete", "abandoned"}, Default: "to_do"},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "sub_phase", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "dependencies", Type: field.TypeString, Nullable: true},
		{Name: "work_estimate", Type: field.TypeFloat64, Nullable: true},
		{Name: "owner", Type: field.TypeString, Default: ""},
		{Name: "assignee", Type: field.TypeString, Default: ""},
		{Name: "approver", Type: field.TypeString, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "solution_id", Type: field.TypeString},
	}
	// SubcomponentsTable holds the schema information for the "subcomponents" table.
	SubcomponentsTable = &schema.Table{
		Name:       "subcomponents",
		Columns:    SubcomponentsColumns,
		PrimaryKey: []*schema.Column{SubcomponentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subcomponents_projects_subcomponents",
				Columns:    []*schema.Column{SubcomponentsColumns[19]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "subcomponents_solutions_subcomponents",
				Columns:    []*schema.Column{SubcomponentsColumns[20]},
				RefColumns: []*schema.Column{SolutionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subcomponent_solution_id_name",
				Unique:  true,
				Columns: []*schema.Column{SubcomponentsColumns[20], SubcomponentsColumns[4]},
			},
			{
				Name:    "subcomponent_status",
				Unique:  false,
				Columns: []*schema.Column{SubcomponentsColumns[5]},
			},
			{
				Name:    "subcomponent_assignee",
				Unique:  false,
				Columns: []*schema.Column{SubcomponentsColumns[15]},
			},
			{
				Name:    "subcomponent_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{SubcomponentsColumns[3]},
			},
		},
	}
	// SubcomponentPhaseStatusColumns holds the columns for the "subcomponent_phase_status" table.
	SubcomponentPhaseStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "phase_id", Type: field.TypeString},
		{Name: "is_complete", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "solution_phase_id", Type: field.TypeString},
		{Name: "subcomponent_id", Type: field.TypeString},
	}
	// SubcomponentPhaseStatusTable holds the schema information for the "subcomponent_phase_status" table.
	SubcomponentPhaseStatusTable = &schema.Table{
		Name:       "subcomponent_phase_status",
		Columns:    SubcomponentPhaseStatusColumns,
		PrimaryKey: []*schema.Column{SubcomponentPhaseStatusColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subcomponent_phase_status_solution_phases_phase_statuses",
				Columns:    []*schema.Column{SubcomponentPhaseStatusColumns[6]},
				RefColumns: []*schema.Column{SolutionPhasesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "subcomponent_phase_status_subcomponents_phase_statuses",
				Columns:    []*schema.Column{SubcomponentPhaseStatusColumns[7]},
				RefColumns: []*schema.Column{SubcomponentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subcomponentphasestatus_subcomponent_id_solution_phase_id",
				Unique:  true,
				Columns: []*schema.Column{SubcomponentPhaseStatusColumns[7], SubcomponentPhaseStatusColumns[6]},
			},
			{
				Name:    "subcomponentphasestatus_subcomponent_id",
				Unique:  false,
				Columns: []*schema.Column{SubcomponentPhaseStatusColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "soeid", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "user"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "failed_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_soeid",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChangeLogsTable,
		PhasesTable,
		ProjectsTable,
		SessionsTable,
		SolutionsTable,
		SolutionPhasesTable,
		SubcomponentsTable,
		SubcomponentPhaseStatusTable,
		UsersTable,
	}
)

func init() {
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
	SolutionsTable.ForeignKeys[0].RefTable = ProjectsTable
	SolutionPhasesTable.ForeignKeys[0].RefTable = SolutionsTable
	SubcomponentsTable.ForeignKeys[0].RefTable = ProjectsTable
	SubcomponentsTable.ForeignKeys[1].RefTable = SolutionsTable
	SubcomponentPhaseStatusTable.ForeignKeys[0].RefTable = SolutionPhasesTable
	SubcomponentPhaseStatusTable.ForeignKeys[1].RefTable = SubcomponentsTable
}
