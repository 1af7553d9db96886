package configs

// Telemetry configures OpenTelemetry export. An empty Endpoint keeps the
// in-process providers without exporters.
type Telemetry struct {
	// Endpoint is the OTLP gRPC collector, e.g. localhost:4317.
	Endpoint    string `env:"ENDPOINT"`
	Insecure    bool   `env:"INSECURE" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"mesa-attribution"`
}
