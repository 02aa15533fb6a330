package handlers

import (
	"time"

	"tracklite.io/tracklite/ent"
)

// Response DTOs. Nillable ent fields stay pointers so null survives into the
// JSON representation; enum fields serialize to their canonical string form.

type projectResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	NameAbbreviation string     `json:"name_abbreviation"`
	Status           string     `json:"status"`
	Description      string     `json:"description"`
	SuccessCriteria  string     `json:"success_criteria"`
	Sponsor          string     `json:"sponsor"`
	CreatedBy        string     `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at"`
}

func toProjectResponse(p *ent.Project) projectResponse {
	return projectResponse{
		ID:               p.ID,
		Name:             p.Name,
		NameAbbreviation: p.NameAbbreviation,
		Status:           string(p.Status),
		Description:      p.Description,
		SuccessCriteria:  p.SuccessCriteria,
		Sponsor:          p.Sponsor,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		DeletedAt:        p.DeletedAt,
	}
}

type solutionResponse struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"project_id"`
	Name            string     `json:"name"`
	Version         string     `json:"version"`
	Status          string     `json:"status"`
	Priority        int        `json:"priority"`
	DueDate         *time.Time `json:"due_date"`
	CurrentPhase    *string    `json:"current_phase"`
	RagStatus       string     `json:"rag_status"`
	RagSource       string     `json:"rag_source"`
	RagReason       *string    `json:"rag_reason"`
	Description     string     `json:"description"`
	SuccessCriteria string     `json:"success_criteria"`
	Owner           string     `json:"owner"`
	Assignee        string     `json:"assignee"`
	Approver        string     `json:"approver"`
	KeyStakeholder  string     `json:"key_stakeholder"`
	Blockers        string     `json:"blockers"`
	Risks           string     `json:"risks"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toSolutionResponse(s *ent.Solution) solutionResponse {
	return solutionResponse{
		ID:              s.ID,
		ProjectID:       s.ProjectID,
		Name:            s.Name,
		Version:         s.Version,
		Status:          string(s.Status),
		Priority:        s.Priority,
		DueDate:         s.DueDate,
		CurrentPhase:    s.CurrentPhase,
		RagStatus:       string(s.RagStatus),
		RagSource:       string(s.RagSource),
		RagReason:       s.RagReason,
		Description:     s.Description,
		SuccessCriteria: s.SuccessCriteria,
		Owner:           s.Owner,
		Assignee:        s.Assignee,
		Approver:        s.Approver,
		KeyStakeholder:  s.KeyStakeholder,
		Blockers:        s.Blockers,
		Risks:           s.Risks,
		CompletedAt:     s.CompletedAt,
		CreatedBy:       s.CreatedBy,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toSolutionResponses(sols []*ent.Solution) []solutionResponse {
	out := make([]solutionResponse, 0, len(sols))
	for _, s := range sols {
		out = append(out, toSolutionResponse(s))
	}
	return out
}

type subcomponentResponse struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	SolutionID   string     `json:"solution_id"`
	Name         string     `json:"name"`
	Status       string     `json:"status"`
	Priority     int        `json:"priority"`
	DueDate      *time.Time `json:"due_date"`
	SubPhase     *string    `json:"sub_phase"`
	Description  string     `json:"description"`
	Notes        string     `json:"notes"`
	Category     string     `json:"category"`
	Dependencies string     `json:"dependencies"`
	WorkEstimate float64    `json:"work_estimate"`
	Owner        string     `json:"owner"`
	Assignee     string     `json:"assignee"`
	Approver     string     `json:"approver"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toSubcomponentResponse(s *ent.Subcomponent) subcomponentResponse {
	return subcomponentResponse{
		ID:           s.ID,
		ProjectID:    s.ProjectID,
		SolutionID:   s.SolutionID,
		Name:         s.Name,
		Status:       string(s.Status),
		Priority:     s.Priority,
		DueDate:      s.DueDate,
		SubPhase:     s.SubPhase,
		Description:  s.Description,
		Notes:        s.Notes,
		Category:     s.Category,
		Dependencies: s.Dependencies,
		WorkEstimate: s.WorkEstimate,
		Owner:        s.Owner,
		Assignee:     s.Assignee,
		Approver:     s.Approver,
		CompletedAt:  s.CompletedAt,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toSubcomponentResponses(subs []*ent.Subcomponent) []subcomponentResponse {
	out := make([]subcomponentResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, toSubcomponentResponse(s))
	}
	return out
}

type phaseResponse struct {
	ID         string `json:"phase_id"`
	PhaseGroup string `json:"phase_group"`
	PhaseName  string `json:"phase_name"`
	Sequence   int    `json:"sequence"`
}

func toPhaseResponses(phases []*ent.Phase) []phaseResponse {
	out := make([]phaseResponse, 0, len(phases))
	for _, p := range phases {
		out = append(out, phaseResponse{
			ID:         p.ID,
			PhaseGroup: p.PhaseGroup,
			PhaseName:  p.PhaseName,
			Sequence:   p.Sequence,
		})
	}
	return out
}

type solutionPhaseResponse struct {
	ID               string `json:"id"`
	SolutionID       string `json:"solution_id"`
	PhaseID          string `json:"phase_id"`
	IsEnabled        bool   `json:"is_enabled"`
	SequenceOverride *int   `json:"sequence_override"`
}

func toSolutionPhaseResponses(sps []*ent.SolutionPhase) []solutionPhaseResponse {
	out := make([]solutionPhaseResponse, 0, len(sps))
	for _, sp := range sps {
		out = append(out, solutionPhaseResponse{
			ID:               sp.ID,
			SolutionID:       sp.SolutionID,
			PhaseID:          sp.PhaseID,
			IsEnabled:        sp.IsEnabled,
			SequenceOverride: sp.SequenceOverride,
		})
	}
	return out
}

type checklistRowResponse struct {
	ID              string     `json:"id"`
	SubcomponentID  string     `json:"subcomponent_id"`
	SolutionPhaseID string     `json:"solution_phase_id"`
	PhaseID         string     `json:"phase_id"`
	IsComplete      bool       `json:"is_complete"`
	CompletedAt     *time.Time `json:"completed_at"`
}

func toChecklistResponses(rows []*ent.SubcomponentPhaseStatus) []checklistRowResponse {
	out := make([]checklistRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, checklistRowResponse{
			ID:              row.ID,
			SubcomponentID:  row.SubcomponentID,
			SolutionPhaseID: row.SolutionPhaseID,
			PhaseID:         row.PhaseID,
			IsComplete:      row.IsComplete,
			CompletedAt:     row.CompletedAt,
		})
	}
	return out
}

type changeLogResponse struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	Field      *string   `json:"field"`
	OldValue   *string   `json:"old_value"`
	NewValue   *string   `json:"new_value"`
	UserID     string    `json:"user_id"`
	RequestID  *string   `json:"request_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func toChangeLogResponses(rows []*ent.ChangeLog) []changeLogResponse {
	out := make([]changeLogResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, changeLogResponse{
			ID:         row.ID,
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Action:     string(row.Action),
			Field:      row.Field,
			OldValue:   row.OldValue,
			NewValue:   row.NewValue,
			UserID:     row.UserID,
			RequestID:  row.RequestID,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out
}
