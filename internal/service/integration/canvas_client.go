package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BBrav0/CanvasToNotion/internal/config"
	"github.com/BBrav0/CanvasToNotion/internal/models"
)

type CanvasClient interface {
	ListFavoriteCourses(ctx context.Context) ([]models.Course, error)
	ListAssignments(ctx context.Context, courseID int64) ([]models.Assignment, error)
	IsSubmitted(ctx context.Context, courseID, assignmentID int64) (bool, error)
}

type canvasClient struct {
	baseURL            string
	token              string
	coursePageSize     int
	assignmentPageSize int
	client             *http.Client
	logger             zerolog.Logger
}

func NewCanvasClient(cfg config.CanvasConfig, logger zerolog.Logger) CanvasClient {
	return &canvasClient{
		baseURL:            strings.TrimRight(cfg.URL, "/") + "/api/v1",
		token:              cfg.Key,
		coursePageSize:     cfg.CoursePageSize,
		assignmentPageSize: cfg.AssignmentPageSize,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *canvasClient) ListFavoriteCourses(ctx context.Context) ([]models.Course, error) {
	url := fmt.Sprintf("%s/users/self/favorites/courses?per_page=%d", c.baseURL, c.coursePageSize)

	var courses []models.Course
	for url != "" {
		var page []models.Course
		next, err := c.getJSON(ctx, url, &page)
		if err != nil {
			return nil, fmt.Errorf("failed to list favorite courses: %w", err)
		}
		courses = append(courses, page...)
		url = next
	}
	c.logger.Debug().Int("count", len(courses)).Msg("Fetched favorite courses")

	return courses, nil
}

func (c *canvasClient) ListAssignments(ctx context.Context, courseID int64) ([]models.Assignment, error) {
	url := fmt.Sprintf("%s/courses/%d/assignments?per_page=%d&order_by=due_at",
		c.baseURL, courseID, c.assignmentPageSize)

	var assignments []models.Assignment
	for url != "" {
		var page []models.Assignment
		next, err := c.getJSON(ctx, url, &page)
		if err != nil {
			return nil, fmt.Errorf("failed to list assignments for course %d: %w", courseID, err)
		}
		assignments = append(assignments, page...)
		url = next
	}
	c.logger.Debug().Int64("course_id", courseID).Int("count", len(assignments)).Msg("Fetched assignments")

	return assignments, nil
}

func (c *canvasClient) IsSubmitted(ctx context.Context, courseID, assignmentID int64) (bool, error) {
	url := fmt.Sprintf("%s/courses/%d/assignments/%d/submissions/self", c.baseURL, courseID, assignmentID)

	var submission models.Submission
	if _, err := c.getJSON(ctx, url, &submission); err != nil {
		return false, fmt.Errorf("failed to check submission for assignment %d: %w", assignmentID, err)
	}

	return submission.WorkflowState.Complete(), nil
}

// getJSON performs one authenticated GET, decodes the body into dst, and
// returns the rel="next" pagination link when Canvas provides one.
func (c *canvasClient) getJSON(ctx context.Context, url string, dst interface{}) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("canvas returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return nextLink(resp.Header.Get("Link")), nil
}

// nextLink extracts the rel="next" URL from an RFC 5988 Link header.
// Canvas sends one on every paginated list response.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		section := strings.Split(part, ";")
		if len(section) < 2 {
			continue
		}
		url := strings.Trim(strings.TrimSpace(section[0]), "<>")
		for _, param := range section[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return url
			}
		}
	}
	return ""
}
