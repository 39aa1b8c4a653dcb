package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSyncSubcommand(t *testing.T) {
	cmd := NewRootCommand()

	sub, _, err := cmd.Find([]string{"sync"})
	require.NoError(t, err)
	assert.Equal(t, "sync", sub.Name())
}

func TestSyncCommand_MissingCredentials(t *testing.T) {
	t.Setenv("NOTION_KEY", "")
	t.Setenv("CANVAS_KEY", "")
	t.Setenv("NOTION_DB", "")
	t.Setenv("CANVAS_URL", "")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"sync"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration")
	assert.Contains(t, err.Error(), "NOTION_KEY")
}

func TestSyncCommand_EndToEnd(t *testing.T) {
	canvasMux := http.NewServeMux()
	canvasMux.HandleFunc("/api/v1/users/self/favorites/courses", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":101,"name":"CS1652 Data Communications"}]`)
	})
	canvasMux.HandleFunc("/api/v1/courses/101/assignments", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":1,"name":"HW1","due_at":"2024-03-01T23:59:00Z"}]`)
	})
	canvasMux.HandleFunc("/api/v1/courses/101/assignments/1/submissions/self", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"workflow_state":"unsubmitted"}`)
	})
	canvas := httptest.NewServer(canvasMux)
	defer canvas.Close()

	var created map[string]interface{}
	notionMux := http.NewServeMux()
	notionMux.HandleFunc("/v1/databases/db-1/query", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[],"has_more":false,"next_cursor":null}`)
	})
	notionMux.HandleFunc("/v1/pages", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
		fmt.Fprint(w, `{"id":"p1"}`)
	})
	notion := httptest.NewServer(notionMux)
	defer notion.Close()

	t.Setenv("NOTION_KEY", "notion-token")
	t.Setenv("CANVAS_KEY", "canvas-token")
	t.Setenv("NOTION_DB", "db-1")
	t.Setenv("CANVAS_URL", canvas.URL)
	t.Setenv("NOTION_BASE_URL", notion.URL)

	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"sync"})
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Added 1, marked complete 0, skipped 0, failed 0")

	require.NotNil(t, created)
	props := created["properties"].(map[string]interface{})
	course := props["Course"].(map[string]interface{})["select"].(map[string]interface{})
	assert.Equal(t, "CS 1652 DATA COM", course["name"])
	date := props["Due Date"].(map[string]interface{})["date"].(map[string]interface{})
	assert.Equal(t, "2024-03-01T18:59:00", date["start"])
	assert.Equal(t, false, props["Completed"].(map[string]interface{})["checkbox"])
}
