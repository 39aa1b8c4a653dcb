package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BBrav0/CanvasToNotion/internal/config"
	"github.com/BBrav0/CanvasToNotion/internal/models"
	"github.com/BBrav0/CanvasToNotion/pkg/dates"
)

type NotionClient interface {
	// FetchAll reads every row of the database into a title-keyed snapshot.
	FetchAll(ctx context.Context) (map[string]models.PageRef, error)
	CreateAssignment(ctx context.Context, req models.CreatePageRequest) (string, error)
	MarkCompleted(ctx context.Context, pageID string) error
}

type notionClient struct {
	baseURL  string
	token    string
	database string
	version  string
	client   *http.Client
	logger   zerolog.Logger
}

func NewNotionClient(cfg config.NotionConfig, logger zerolog.Logger) NotionClient {
	return &notionClient{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/") + "/v1",
		token:    cfg.Key,
		database: cfg.Database,
		version:  cfg.Version,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []queryPage `json:"results"`
	HasMore    bool        `json:"has_more"`
	NextCursor string      `json:"next_cursor"`
}

type queryPage struct {
	ID         string `json:"id"`
	Properties struct {
		Assignment struct {
			Title []struct {
				PlainText string `json:"plain_text"`
			} `json:"title"`
		} `json:"Assignment"`
		Completed struct {
			Checkbox bool `json:"checkbox"`
		} `json:"Completed"`
	} `json:"properties"`
}

func (c *notionClient) FetchAll(ctx context.Context) (map[string]models.PageRef, error) {
	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, c.database)

	existing := make(map[string]models.PageRef)
	cursor := ""
	for {
		var page queryResponse
		if err := c.doJSON(ctx, http.MethodPost, url, queryRequest{StartCursor: cursor}, &page); err != nil {
			return nil, fmt.Errorf("failed to query database: %w", err)
		}

		for _, result := range page.Results {
			if len(result.Properties.Assignment.Title) == 0 {
				continue
			}
			title := result.Properties.Assignment.Title[0].PlainText
			existing[title] = models.PageRef{
				PageID:    result.ID,
				Completed: result.Properties.Completed.Checkbox,
			}
		}

		if !page.HasMore {
			c.logger.Debug().Int("count", len(existing)).Msg("Fetched existing pages")
			return existing, nil
		}
		cursor = page.NextCursor
	}
}

func (c *notionClient) CreateAssignment(ctx context.Context, req models.CreatePageRequest) (string, error) {
	properties := map[string]interface{}{
		"Assignment": map[string]interface{}{
			"title": []map[string]interface{}{
				{"text": map[string]string{"content": req.Title}},
			},
		},
		"Course": map[string]interface{}{
			"select": map[string]string{"name": req.Course},
		},
		"Completed": map[string]interface{}{
			"checkbox": req.Completed,
		},
	}
	if req.HasDueDate {
		properties["Due Date"] = map[string]interface{}{
			"date": map[string]string{
				"start":     req.DueDate,
				"time_zone": dates.EasternZone,
			},
		}
	}

	payload := map[string]interface{}{
		"parent":     map[string]string{"database_id": c.database},
		"properties": properties,
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/pages", payload, &created); err != nil {
		return "", fmt.Errorf("failed to create page for %q: %w", req.Title, err)
	}

	return created.ID, nil
}

func (c *notionClient) MarkCompleted(ctx context.Context, pageID string) error {
	payload := map[string]interface{}{
		"properties": map[string]interface{}{
			"Completed": map[string]bool{"checkbox": true},
		},
	}

	url := fmt.Sprintf("%s/pages/%s", c.baseURL, pageID)
	if err := c.doJSON(ctx, http.MethodPatch, url, payload, nil); err != nil {
		return fmt.Errorf("failed to mark page %s completed: %w", pageID, err)
	}

	return nil
}

func (c *notionClient) doJSON(ctx context.Context, method, url string, body, dst interface{}) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", c.version)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notion returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
