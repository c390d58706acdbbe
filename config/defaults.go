package config

func getDefaultAppConfig() *AppConfig {
	return &AppConfig{
		LogLevel:     "INFO",
		LogFormat:    "text",
		ProfilerAddr: "", // optional
		Network:      "regtest",
		Prometheus: &PrometheusConfig{
			Enabled:  false,
			Endpoint: "/metrics",
			Addr:     ":2112",
		},
		Tracing: &TracingConfig{
			Enabled:  false,
			DialAddr: "http://localhost:4317",
			Sample:   100,
		},
		Node: getDefaultNodeConfig(),
		API: &APIConfig{
			Address: "127.0.0.1:5558",
		},
	}
}

func getDefaultNodeConfig() *NodeConfig {
	return &NodeConfig{
		Password: "password",
		User:     "user",
		Host:     "localhost",
		Port:     0, // derived from network
	}
}
