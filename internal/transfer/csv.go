// Package transfer implements CSV import and export for solutions and
// subcomponents. Import normalizes and validates field values before handing
// rows to the use cases, so derived state (phases, RAG, audit) always flows
// through the same contracts as the REST surface. All rows of one import
// share a request id, grouping their audit entries into one batch.
package transfer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/subcomponent"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/pkg/logger"
	"tracklite.io/tracklite/internal/usecase"
)

const dateLayout = "2006-01-02"

var solutionHeader = []string{
	"name", "version", "status", "priority", "due_date",
	"owner", "assignee", "description",
}

var subcomponentHeader = []string{
	"solution_name", "solution_version", "name", "status", "priority",
	"due_date", "sub_phase", "work_estimate", "owner", "assignee", "description",
}

// RowError reports one rejected import row. Line numbers are 1-based and
// include the header line.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportReport summarizes an import run.
type ImportReport struct {
	RequestID string     `json:"request_id"`
	Created   int        `json:"created"`
	Updated   int        `json:"updated"`
	Errors    []RowError `json:"errors"`
}

// Service wires CSV I/O to the entity use cases.
type Service struct {
	solutionUC     *usecase.SolutionUseCase
	subcomponentUC *usecase.SubcomponentUseCase
}

// NewService creates a new transfer Service.
func NewService(solutionUC *usecase.SolutionUseCase, subcomponentUC *usecase.SubcomponentUseCase) *Service {
	return &Service{solutionUC: solutionUC, subcomponentUC: subcomponentUC}
}

// ExportSolutions writes a project's active solutions as CSV. Enum values use
// their canonical string form and dates use YYYY-MM-DD.
func (s *Service) ExportSolutions(ctx context.Context, w io.Writer, projectID string) error {
	sols, err := s.solutionUC.List(ctx, projectID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(solutionHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, sol := range sols {
		record := []string{
			sol.Name,
			sol.Version,
			string(sol.Status),
			strconv.Itoa(sol.Priority),
			formatDate(sol.DueDate),
			sol.Owner,
			sol.Assignee,
			sol.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSubcomponents writes a solution's active subcomponents as CSV.
func (s *Service) ExportSubcomponents(ctx context.Context, w io.Writer, solutionID string) error {
	sol, err := s.solutionUC.Get(ctx, solutionID)
	if err != nil {
		return err
	}
	subs, err := s.subcomponentUC.List(ctx, solutionID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(subcomponentHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, sub := range subs {
		record := []string{
			sol.Name,
			sol.Version,
			sub.Name,
			string(sub.Status),
			strconv.Itoa(sub.Priority),
			formatDate(sub.DueDate),
			stringOrEmpty(sub.SubPhase),
			formatFloat(sub.WorkEstimate),
			sub.Owner,
			sub.Assignee,
			sub.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportSolutions upserts solutions into a project from CSV. Rows are
// processed collect-errors-and-continue: a bad row is reported and skipped,
// the rest of the file still imports.
func (s *Service) ImportSolutions(ctx context.Context, r io.Reader, projectID, userID string) (*ImportReport, error) {
	rows, cols, err := readAll(r, solutionHeader)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{RequestID: newRequestID()}
	existing, err := s.solutionIndex(ctx, projectID)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		get := func(col string) string { return strings.TrimSpace(row.values[cols[col]]) }

		name := get("name")
		version := get("version")
		if name == "" || version == "" {
			report.reject(row.line, "name and version are required")
			continue
		}
		status, err := parseSolutionStatus(get("status"))
		if err != nil {
			report.reject(row.line, err.Error())
			continue
		}
		priority, err := parsePriority(get("priority"))
		if err != nil {
			report.reject(row.line, err.Error())
			continue
		}
		dueDate, err := parseDate(get("due_date"))
		if err != nil {
			report.reject(row.line, err.Error())
			continue
		}

		if sol, ok := existing[name+"\x00"+version]; ok {
			input := usecase.UpdateSolutionInput{
				SolutionID: sol.ID,
				Status:     status,
				Priority:   priority,
				DueDate:    dueDate,
				UserID:     userID,
				RequestID:  report.RequestID,
			}
			applyOptional(&input.Owner, get("owner"))
			applyOptional(&input.Assignee, get("assignee"))
			applyOptional(&input.Description, get("description"))
			if _, err := s.solutionUC.Update(ctx, input); err != nil {
				report.reject(row.line, importErrorMessage(err))
				continue
			}
			report.Updated++
			continue
		}

		input := usecase.CreateSolutionInput{
			ProjectID:   projectID,
			Name:        name,
			Version:     version,
			Status:      status,
			Priority:    priority,
			DueDate:     dueDate,
			Owner:       get("owner"),
			Assignee:    get("assignee"),
			Description: get("description"),
			UserID:      userID,
			RequestID:   report.RequestID,
		}
		created, err := s.solutionUC.Create(ctx, input)
		if err != nil {
			report.reject(row.line, importErrorMessage(err))
			continue
		}
		existing[name+"\x00"+version] = created
		report.Created++
	}

	logger.Info("Solution import finished",
		zap.String("project_id", projectID),
		zap.String("request_id", report.RequestID),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("rejected", len(report.Errors)),
	)
	return report, nil
}

// ImportSubcomponents upserts subcomponents from CSV. A row referencing a
// solution that does not exist yet auto-creates it in the same batch, under
// the same request id.
func (s *Service) ImportSubcomponents(ctx context.Context, r io.Reader, projectID, userID string) (*ImportReport, error) {
	rows, cols, err := readAll(r, subcomponentHeader)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{RequestID: newRequestID()}
	solutions, err := s.solutionIndex(ctx, projectID)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		get := func(col string) string { return strings.TrimSpace(row.values[cols[col]]) }

		solName := get("solution_name")
		solVersion := get("solution_version")
		name := get("name")
		if solName == "" || solVersion == "" || name == "" {
			report.reject(row.line, "solution_name, solution_version and name are required")
			continue
		}
		status, err := parseSubcomponentStatus(get("status"))
		if err != nil {
			report.reject(row.line, err.Error())
			continue
		}
		priority, err := parsePriority(get("priority"))
		if err != nil {
			report.reject(row.line, err.Error())
			continue
		}
		dueDate, err := parseDate(get("due_date"))
		if err != nil {
			report.reject(row.line, err.Error())
			continue
		}
		workEstimate, err := parseFloat(get("work_estimate"))
		if err != nil {
			report.reject(row.line, err.Error())
			continue
		}

		sol, ok := solutions[solName+"\x00"+solVersion]
		if !ok {
			sol, err = s.solutionUC.Create(ctx, usecase.CreateSolutionInput{
				ProjectID: projectID,
				Name:      solName,
				Version:   solVersion,
				UserID:    userID,
				RequestID: report.RequestID,
			})
			if err != nil {
				report.reject(row.line, importErrorMessage(err))
				continue
			}
			solutions[solName+"\x00"+solVersion] = sol
		}

		var subPhase *string
		if v := get("sub_phase"); v != "" {
			subPhase = &v
		}

		existingSub, err := s.findSubcomponent(ctx, sol.ID, name)
		if err != nil {
			report.reject(row.line, importErrorMessage(err))
			continue
		}
		if existingSub != nil {
			input := usecase.UpdateSubcomponentInput{
				SubcomponentID: existingSub.ID,
				Status:         status,
				Priority:       priority,
				DueDate:        dueDate,
				SubPhase:       subPhase,
				WorkEstimate:   workEstimate,
				UserID:         userID,
				RequestID:      report.RequestID,
			}
			applyOptional(&input.Owner, get("owner"))
			applyOptional(&input.Assignee, get("assignee"))
			applyOptional(&input.Description, get("description"))
			if _, err := s.subcomponentUC.Update(ctx, input); err != nil {
				report.reject(row.line, importErrorMessage(err))
				continue
			}
			report.Updated++
			continue
		}

		if _, err := s.subcomponentUC.Create(ctx, usecase.CreateSubcomponentInput{
			SolutionID:   sol.ID,
			Name:         name,
			Status:       status,
			Priority:     priority,
			DueDate:      dueDate,
			SubPhase:     subPhase,
			WorkEstimate: workEstimate,
			Owner:        get("owner"),
			Assignee:     get("assignee"),
			Description:  get("description"),
			UserID:       userID,
			RequestID:    report.RequestID,
		}); err != nil {
			report.reject(row.line, importErrorMessage(err))
			continue
		}
		report.Created++
	}

	logger.Info("Subcomponent import finished",
		zap.String("project_id", projectID),
		zap.String("request_id", report.RequestID),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("rejected", len(report.Errors)),
	)
	return report, nil
}

type csvRow struct {
	line   int
	values []string
}

// readAll parses the whole file and maps header names to column positions.
// Unknown columns are ignored; missing required columns fail the import.
func readAll(r io.Reader, required []string) ([]csvRow, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Variable-length rows are tolerated; short rows are padded below.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, apperrors.BadRequest(apperrors.CodeMalformedCSV, "missing csv header")
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := cols[col]; !ok {
			return nil, nil, apperrors.BadRequest(apperrors.CodeMalformedCSV,
				"missing required column: "+col)
		}
	}

	var rows []csvRow
	line := 1
	for {
		record, err := cr.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, apperrors.BadRequest(apperrors.CodeMalformedCSV,
				fmt.Sprintf("line %d: %v", line, err))
		}
		if len(record) < len(header) {
			padded := make([]string, len(header))
			copy(padded, record)
			record = padded
		}
		rows = append(rows, csvRow{line: line, values: record})
	}
	return rows, cols, nil
}

func (s *Service) solutionIndex(ctx context.Context, projectID string) (map[string]*ent.Solution, error) {
	sols, err := s.solutionUC.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]*ent.Solution, len(sols))
	for _, sol := range sols {
		idx[sol.Name+"\x00"+sol.Version] = sol
	}
	return idx, nil
}

func (s *Service) findSubcomponent(ctx context.Context, solutionID, name string) (*ent.Subcomponent, error) {
	subs, err := s.subcomponentUC.List(ctx, solutionID)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if sub.Name == name {
			return sub, nil
		}
	}
	return nil, nil
}

func (r *ImportReport) reject(line int, msg string) {
	r.Errors = append(r.Errors, RowError{Line: line, Message: msg})
}

func importErrorMessage(err error) string {
	if appErr, ok := apperrors.IsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}

func parseSolutionStatus(v string) (*solution.Status, error) {
	if v == "" {
		return nil, nil
	}
	st := solution.Status(v)
	if err := solution.StatusValidator(st); err != nil {
		return nil, fmt.Errorf("invalid status %q", v)
	}
	return &st, nil
}

func parseSubcomponentStatus(v string) (*subcomponent.Status, error) {
	if v == "" {
		return nil, nil
	}
	st := subcomponent.Status(v)
	if err := subcomponent.StatusValidator(st); err != nil {
		return nil, fmt.Errorf("invalid status %q", v)
	}
	return &st, nil
}

func parsePriority(v string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid priority %q", v)
	}
	return &n, nil
}

func parseFloat(v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", v)
	}
	return &f, nil
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func formatFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func applyOptional(dst **string, v string) {
	if v == "" {
		return
	}
	*dst = &v
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
