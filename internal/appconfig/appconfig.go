package appconfig

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

const (
	defaultAdminAPIURL = "http://localhost:3000"
	defaultBasePath    = "/api/v1"
	defaultDocsPath    = "/docs"
	defaultTimeout     = 10
	defaultBrandName   = "EasyEarn Admin"
	defaultPageSize    = 50
)

// Config holds all configuration details
type Config struct {
	Host     string         `yaml:"host"`
	BasePath string         `yaml:"basePath"`
	DocsPath string         `yaml:"docsPath"`
	AdminAPI AdminAPIConfig `yaml:"adminApi"`
	UI       UIConfig       `yaml:"ui"`
	Database DatabaseConfig `yaml:"database"`
	Pulsar   PulsarConfig   `yaml:"pulsar"`
	AWS      AWSConfig      `yaml:"aws"`
}

// AdminAPIConfig defines how the console reaches the external admin API
type AdminAPIConfig struct {
	URL            string `yaml:"url"`
	Token          string `yaml:"token"`
	TokenSecret    string `yaml:"tokenSecret"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Timeout returns the per-request timeout for admin API calls.
func (c AdminAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// UIConfig defines presentation settings
type UIConfig struct {
	BrandName string `yaml:"brandName"`
	PageSize  int    `yaml:"pageSize"`
}

// DatabaseConfig defines the audit database connection details
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Source string `yaml:"source"`
}

// Enabled reports whether an audit database is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Source != ""
}

// PulsarConfig defines the messaging system connection details
type PulsarConfig struct {
	URL           string `yaml:"url"`
	TopicProducer string `yaml:"topicProducer"`
	TopicConsumer string `yaml:"topicConsumer"`
	Subscription  string `yaml:"subscription"`
}

// Enabled reports whether audit events should be published.
func (c PulsarConfig) Enabled() bool {
	return c.URL != "" && c.TopicProducer != ""
}

// SESConfig defines the operator mailbox that receives broadcast copies
type SESConfig struct {
	FromEmail string `yaml:"fromEmail"`
	ToEmail   string `yaml:"toEmail"`
}

type AWSConfig struct {
	Region string    `yaml:"region"`
	SES    SESConfig `yaml:"ses"`
}

// Enabled reports whether any AWS integration is configured.
func (c AWSConfig) Enabled() bool {
	return c.Region != ""
}

// LoadConfig loads and parses the configuration from a given file path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}
	tmpl.Option("missingkey=zero")

	// Execute the template with environment variables
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, loadEnvVars()); err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.AdminAPI.URL == "" {
		c.AdminAPI.URL = defaultAdminAPIURL
	}
	c.AdminAPI.URL = strings.TrimSuffix(c.AdminAPI.URL, "/")
	if c.AdminAPI.TimeoutSeconds <= 0 {
		c.AdminAPI.TimeoutSeconds = defaultTimeout
	}
	if c.BasePath == "" {
		c.BasePath = defaultBasePath
	}
	if c.DocsPath == "" {
		c.DocsPath = defaultDocsPath
	}
	if c.UI.BrandName == "" {
		c.UI.BrandName = defaultBrandName
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = defaultPageSize
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
