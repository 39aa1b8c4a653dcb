package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BBrav0/CanvasToNotion/internal/models"
	"github.com/BBrav0/CanvasToNotion/internal/service/integration"
	"github.com/BBrav0/CanvasToNotion/pkg/dates"
)

// SyncService reconciles Canvas assignments against the Notion database.
// Assignment titles are the dedup key on both sides, so two assignments
// sharing a title collapse into one row; Canvas assignment ids are not
// stored in Notion and cannot disambiguate after the fact.
type SyncService interface {
	Run(ctx context.Context) (*models.SyncResult, error)
}

type syncService struct {
	canvas integration.CanvasClient
	notion integration.NotionClient
	mapper *CourseMapper
	dryRun bool
	logger zerolog.Logger
}

func NewSyncService(
	canvas integration.CanvasClient,
	notion integration.NotionClient,
	mapper *CourseMapper,
	dryRun bool,
	logger zerolog.Logger,
) SyncService {
	return &syncService{
		canvas: canvas,
		notion: notion,
		mapper: mapper,
		dryRun: dryRun,
		logger: logger,
	}
}

// Run executes one full sync pass. The snapshot and course-list fetches are
// fatal; everything after that is best-effort per assignment, and a run with
// per-item failures still returns a result.
func (s *syncService) Run(ctx context.Context) (*models.SyncResult, error) {
	runID := uuid.New().String()
	log := s.logger.With().Str("run_id", runID).Logger()

	log.Info().Msg("Fetching existing Notion assignments")
	existing, err := s.notion.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing assignments: %w", err)
	}
	log.Info().Int("count", len(existing)).Msg("Snapshot loaded")

	log.Info().Msg("Fetching favorited Canvas courses")
	courses, err := s.canvas.ListFavoriteCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	log.Info().Int("count", len(courses)).Msg("Courses loaded")

	result := &models.SyncResult{RunID: runID, DryRun: s.dryRun}

	for _, course := range courses {
		label := s.mapper.Normalize(course.Name)
		courseLog := log.With().Str("course", course.Name).Str("label", label).Logger()
		courseLog.Info().Msg("Syncing course")

		assignments, err := s.canvas.ListAssignments(ctx, course.ID)
		if err != nil {
			courseLog.Error().Err(err).Msg("Failed to list assignments, skipping course")
			result.Failed++
			continue
		}

		for _, assignment := range assignments {
			s.reconcile(ctx, courseLog, existing, course, assignment, label, result)
		}
	}

	log.Info().
		Int("added", result.Added).
		Int("marked_complete", result.MarkedComplete).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("Sync complete")

	return result, nil
}

func (s *syncService) reconcile(
	ctx context.Context,
	log zerolog.Logger,
	existing map[string]models.PageRef,
	course models.Course,
	assignment models.Assignment,
	label string,
	result *models.SyncResult,
) {
	submitted, err := s.canvas.IsSubmitted(ctx, course.ID, assignment.ID)
	if err != nil {
		// Fail-safe default: an unreadable submission counts as unsubmitted.
		log.Debug().Err(err).Str("assignment", assignment.Name).Msg("Submission check failed, assuming unsubmitted")
		submitted = false
	}

	if ref, ok := existing[assignment.Name]; ok {
		if submitted && !ref.Completed {
			if !s.dryRun {
				if err := s.notion.MarkCompleted(ctx, ref.PageID); err != nil {
					log.Error().Err(err).Str("assignment", assignment.Name).Msg("Failed to mark complete")
					result.Failed++
					return
				}
			}
			log.Info().Str("assignment", assignment.Name).Msg("Marked complete")
			result.MarkedComplete++
			existing[assignment.Name] = models.PageRef{PageID: ref.PageID, Completed: true}
			return
		}
		result.Skipped++
		return
	}

	req := models.CreatePageRequest{
		Title:     assignment.Name,
		Course:    label,
		Completed: submitted,
	}
	if due, ok := dates.ToEastern(assignment.DueAt); ok {
		req.DueDate = due
		req.HasDueDate = true
	}

	pageID := ""
	if !s.dryRun {
		pageID, err = s.notion.CreateAssignment(ctx, req)
		if err != nil {
			log.Error().Err(err).Str("assignment", assignment.Name).Msg("Failed to create")
			result.Failed++
			return
		}
	}

	log.Info().Str("assignment", assignment.Name).Bool("completed", submitted).Msg("Added")
	result.Added++
	// Record the new title immediately so a duplicate later in this run
	// skips instead of creating a second row.
	existing[assignment.Name] = models.PageRef{PageID: pageID, Completed: submitted}
}
