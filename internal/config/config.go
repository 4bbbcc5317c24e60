package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that points at the config file
// when no --config flag is given.
const EnvPath = "VOICENOTES_CONFIG"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Paths   PathsConfig   `yaml:"paths"`
	Storage StorageConfig `yaml:"storage"`
	Vertex  VertexConfig  `yaml:"vertex"`
	Render  RenderConfig  `yaml:"render"`
	Audio   AudioConfig   `yaml:"audio"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Address         string        `yaml:"address"`
	MaxUploadMB     int64         `yaml:"max_upload_mb"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type PathsConfig struct {
	Uploads  string `yaml:"uploads"`
	Inbox    string `yaml:"inbox"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type StorageConfig struct {
	Bucket string `yaml:"bucket"`
}

type VertexConfig struct {
	Project         string `yaml:"project"`
	Location        string `yaml:"location"`
	Model           string `yaml:"model"`
	CredentialsFile string `yaml:"credentials_file"`
	AudioMIMEType   string `yaml:"audio_mime_type"`
}

type RenderConfig struct {
	Format      string `yaml:"format"`
	RegularFont string `yaml:"regular_font"`
	BoldFont    string `yaml:"bold_font"`
}

type AudioConfig struct {
	Transcode  bool   `yaml:"transcode"`
	FFmpegPath string `yaml:"ffmpeg_path"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML file at path, then validates it and fills defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Render.Format == "" {
		c.Render.Format = "pdf"
	}
	if c.Render.Format != "pdf" && c.Render.Format != "docx" {
		return fmt.Errorf("render.format must be pdf or docx, got %q", c.Render.Format)
	}
	if (c.Render.RegularFont == "") != (c.Render.BoldFont == "") {
		return fmt.Errorf("render.regular_font and render.bold_font must be set together")
	}
	if c.Server.MaxUploadMB < 0 {
		return fmt.Errorf("server.max_upload_mb cannot be negative")
	}
	if c.Watch.MaxConcurrent < 0 {
		return fmt.Errorf("watch.max_concurrent cannot be negative")
	}

	if c.Server.Address == "" {
		c.Server.Address = ":8000"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 100
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Paths.Uploads == "" {
		c.Paths.Uploads = "uploads"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = "voicetonotes"
	}
	if c.Vertex.Project == "" {
		c.Vertex.Project = "voicetonotes"
	}
	if c.Vertex.Location == "" {
		c.Vertex.Location = "us-east1"
	}
	if c.Vertex.Model == "" {
		c.Vertex.Model = "gemini-1.5-flash-001"
	}
	if c.Vertex.AudioMIMEType == "" {
		c.Vertex.AudioMIMEType = "audio/mpeg"
	}
	if c.Audio.FFmpegPath == "" {
		c.Audio.FFmpegPath = "ffmpeg"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}

// MaxUploadBytes returns the request body cap in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}
