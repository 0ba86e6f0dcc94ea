package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mind-engage/examkit/internal/assessment"
)

type Config struct {
	HTTPAddr          string   `yaml:"http_addr"`
	OutputDir         string   `yaml:"output_dir"`
	DefaultFormats    []string `yaml:"default_formats"`
	RenderParallelism int      `yaml:"render_parallelism"`
	CORSOrigins       []string `yaml:"cors_origins"`

	// Branding defaults applied when the request leaves a field unset.
	Branding BrandingDefaults `yaml:"branding"`
}

type BrandingDefaults struct {
	InstitutionName string `yaml:"institution_name"`
	Department      string `yaml:"department"`
	Course          string `yaml:"course"`
	Instructor      string `yaml:"instructor"`
	Watermark       string `yaml:"watermark"`
}

// Apply fills unset branding fields from the configured defaults.
func (d BrandingDefaults) Apply(b assessment.Branding) assessment.Branding {
	if b.InstitutionName == "" {
		b.InstitutionName = d.InstitutionName
	}
	if b.Department == "" {
		b.Department = d.Department
	}
	if b.Course == "" {
		b.Course = d.Course
	}
	if b.Instructor == "" {
		b.Instructor = d.Instructor
	}
	if b.Watermark == "" {
		b.Watermark = d.Watermark
	}
	return b
}

// FromEnv builds the baseline config from environment variables.
func FromEnv() Config {
	cfg := Config{
		HTTPAddr:          envOr("HTTP_ADDR", ":8080"),
		OutputDir:         envOr("OUTPUT_DIR", "./exports"),
		DefaultFormats:    splitList(envOr("DEFAULT_FORMATS", "pdf,docx,html")),
		RenderParallelism: envInt("RENDER_PARALLELISM", 0),
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	return cfg
}

// Load merges a YAML file over the env baseline. A missing path is not an
// error; env alone is a complete configuration.
func Load(path string) (Config, error) {
	cfg := FromEnv()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
