package config

import (
	"go.opentelemetry.io/otel/attribute"
)

type AppConfig struct {
	LogLevel     string            `json:"logLevel" mapstructure:"logLevel"`
	LogFormat    string            `json:"logFormat" mapstructure:"logFormat"`
	ProfilerAddr string            `json:"profilerAddr" mapstructure:"profilerAddr"`
	Network      string            `json:"network" mapstructure:"network"`
	Prometheus   *PrometheusConfig `json:"prometheus" mapstructure:"prometheus"`
	Tracing      *TracingConfig    `json:"tracing" mapstructure:"tracing"`
	Node         *NodeConfig       `json:"node" mapstructure:"node"`
	API          *APIConfig        `json:"api" mapstructure:"api"`
}

func (a *AppConfig) IsTracingEnabled() bool {
	return a.Tracing != nil && a.Tracing.IsEnabled()
}

type PrometheusConfig struct {
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
	Addr     string `json:"addr" mapstructure:"addr"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p.Enabled && p.Endpoint != "" && p.Addr != ""
}

type TracingConfig struct {
	Enabled            bool                 `json:"enabled" mapstructure:"enabled"`
	DialAddr           string               `json:"dialAddr" mapstructure:"dialAddr"`
	Sample             int                  `json:"sample" mapstructure:"sample"`
	Attributes         map[string]string    `json:"attributes" mapstructure:"attributes"`
	KeyValueAttributes []attribute.KeyValue `json:"-" mapstructure:"-"`
}

func (t *TracingConfig) IsEnabled() bool {
	return t.Enabled && t.DialAddr != ""
}

// NodeConfig holds the JSON-RPC credentials of the bitcoin node transactions
// are relayed to. A zero Port means the canonical port of the configured
// network is used.
type NodeConfig struct {
	Password string `json:"password" mapstructure:"password"`
	User     string `json:"user" mapstructure:"user"`
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
}

type APIConfig struct {
	Address string `json:"address" mapstructure:"address"`
}
