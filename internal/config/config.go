package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Canvas  CanvasConfig  `mapstructure:"canvas"`
	Notion  NotionConfig  `mapstructure:"notion"`
	Courses CoursesConfig `mapstructure:"courses"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type CanvasConfig struct {
	Key                string        `mapstructure:"key"`
	URL                string        `mapstructure:"url"`
	Timeout            time.Duration `mapstructure:"timeout"`
	CoursePageSize     int           `mapstructure:"course_page_size"`
	AssignmentPageSize int           `mapstructure:"assignment_page_size"`
}

type NotionConfig struct {
	Key      string        `mapstructure:"key"`
	Database string        `mapstructure:"db"`
	BaseURL  string        `mapstructure:"base_url"`
	Version  string        `mapstructure:"version"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CourseMapping is one keyword→label entry of the normalization table.
// Order matters: the first keyword contained in a course name wins.
type CourseMapping struct {
	Keyword string `mapstructure:"keyword"`
	Label   string `mapstructure:"label"`
}

type CoursesConfig struct {
	Mappings []CourseMapping `mapstructure:"mappings"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Pretty  bool   `mapstructure:"pretty"`
	NoColor bool   `mapstructure:"no_color"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the four required credentials. All of them come from the
// environment in a normal deployment: NOTION_KEY, CANVAS_KEY, NOTION_DB,
// CANVAS_URL.
func (c *Config) Validate() error {
	var missing []string
	if c.Notion.Key == "" {
		missing = append(missing, "NOTION_KEY")
	}
	if c.Canvas.Key == "" {
		missing = append(missing, "CANVAS_KEY")
	}
	if c.Notion.Database == "" {
		missing = append(missing, "NOTION_DB")
	}
	if c.Canvas.URL == "" {
		missing = append(missing, "CANVAS_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Required values default to empty so AutomaticEnv can fill them.
	v.SetDefault("canvas.key", "")
	v.SetDefault("canvas.url", "")
	v.SetDefault("canvas.timeout", "30s")
	v.SetDefault("canvas.course_page_size", 50)
	v.SetDefault("canvas.assignment_page_size", 100)

	v.SetDefault("notion.key", "")
	v.SetDefault("notion.db", "")
	v.SetDefault("notion.base_url", "https://api.notion.com")
	v.SetDefault("notion.version", "2022-06-28")
	v.SetDefault("notion.timeout", "30s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", true)
	v.SetDefault("logging.no_color", false)

	// Deployment-specific course table; config.yaml is expected to
	// override this with the user's own courses.
	v.SetDefault("courses.mappings", []map[string]interface{}{
		{"keyword": "1652", "label": "CS 1652 DATA COM"},
		{"keyword": "data comm", "label": "CS 1652 DATA COM"},
		{"keyword": "0355", "label": "ENGFLM 0355 VIS LIT"},
		{"keyword": "visual", "label": "ENGFLM 0355 VIS LIT"},
		{"keyword": "1503", "label": "CS 1503 MCH LEARNING"},
		{"keyword": "machine learning", "label": "CS 1503 MCH LEARNING"},
		{"keyword": "1632", "label": "CS 1632 SQA"},
		{"keyword": "sqa", "label": "CS 1632 SQA"},
		{"keyword": "software quality", "label": "CS 1632 SQA"},
	})
}
