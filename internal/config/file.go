package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the optional config file.
// The same struct is decoded from JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		ID      string `json:"id" yaml:"id"`
		Version string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		BaseDir           string `json:"base_dir" yaml:"base_dir"`
		DBFile            string `json:"db_file" yaml:"db_file"`
		ContentLimitBytes int64  `json:"content_limit_bytes" yaml:"content_limit_bytes"`
		ContentChecksum   string `json:"content_checksum" yaml:"content_checksum"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		Token           string   `json:"token" yaml:"token"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ProbeTimeout    Duration `json:"probe_timeout" yaml:"probe_timeout"`
		ProbeTTL        Duration `json:"probe_ttl" yaml:"probe_ttl"`
		DownloadRetries uint64   `json:"download_retries" yaml:"download_retries"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval" yaml:"sync_interval"`
		SyncMaxAttempts int      `json:"sync_max_attempts" yaml:"sync_max_attempts"`
		SyncBackoffBase Duration `json:"sync_backoff_base" yaml:"sync_backoff_base"`
		SyncBackoffCap  Duration `json:"sync_backoff_cap" yaml:"sync_backoff_cap"`
		PullPageSize    int      `json:"pull_page_size" yaml:"pull_page_size"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Log struct {
		File       string `json:"file" yaml:"file"`
		Level      string `json:"level" yaml:"level"`
		MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
		MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg StructuredFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func parseYAML(path string) (*StructuredConfig, error) {
	yamlFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer yamlFile.Close()

	var fileCfg StructuredFileConfig
	if err := yaml.NewDecoder(yamlFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ID:      f.App.ID,
			Version: f.App.Version,
		},
		Storage: Storage{
			BaseDir:           f.Storage.BaseDir,
			DBFile:            f.Storage.DBFile,
			ContentLimitBytes: f.Storage.ContentLimitBytes,
			ContentChecksum:   f.Storage.ContentChecksum,
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:     f.Adapter.HTTPAddress,
			Token:           f.Adapter.Token,
			RequestTimeout:  time.Duration(f.Adapter.RequestTimeout),
			ProbeTimeout:    time.Duration(f.Adapter.ProbeTimeout),
			ProbeTTL:        time.Duration(f.Adapter.ProbeTTL),
			DownloadRetries: f.Adapter.DownloadRetries,
		},
		Workers: Workers{
			SyncInterval:    time.Duration(f.Workers.SyncInterval),
			SyncMaxAttempts: f.Workers.SyncMaxAttempts,
			SyncBackoffBase: time.Duration(f.Workers.SyncBackoffBase),
			SyncBackoffCap:  time.Duration(f.Workers.SyncBackoffCap),
			PullPageSize:    f.Workers.PullPageSize,
		},
		Log: Log{
			File:       f.Log.File,
			Level:      f.Log.Level,
			MaxSizeMB:  f.Log.MaxSizeMB,
			MaxBackups: f.Log.MaxBackups,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML, and from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
