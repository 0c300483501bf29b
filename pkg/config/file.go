package config

import (
	"bytes"
	"text/template"
)

var configFileTmpl = template.Must(template.New("config").Parse(`# Teamdesk client configurations

# The backend API server configuration.
server:
  # The base URL of the backend API server.
  url: "{{ .Server.URL }}"

  # The number of seconds to wait for a single request.
  timeout: {{ .Server.Timeout }}

# Logging configuration.
log:
  # Log format to use. Valid values are "json", "logfmt", and "text".
  format: "{{ .Log.Format }}"
  # Time format for the log "timestamp" field.
  # Should be described in Golang's time format.
  time_format: "{{ .Log.TimeFormat }}"
  # Path to the log file. Leave empty to write to stderr.
  #path: "{{ .Log.Path }}"
`))

func newConfigFile(cfg *Config) string {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var b bytes.Buffer
	configFileTmpl.Execute(&b, cfg) // nolint: errcheck
	return b.String()
}
