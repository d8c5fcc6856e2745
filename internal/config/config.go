package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Database    Database
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"uploads"`

	Session    Session    `envPrefix:"SESSION_"`
	Admin      Admin      `envPrefix:"ADMIN_"`
	Generation Generation `envPrefix:"GENERATION_"`
	Telemetry  Telemetry  `envPrefix:"OTEL_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"` // sqlite | mysql
	URL    string `env:"DATABASE_URL" envDefault:"perfume.db"`
}

type Session struct {
	Secret string        `env:"SECRET" envDefault:"your_secret_key"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

type Admin struct {
	Username string `env:"USERNAME" envDefault:"admin"`
	Password string `env:"PASSWORD" envDefault:"password"`
}

type Generation struct {
	APIURL      string        `env:"API_URL" envDefault:"https://api.openai.com/v1/engines/davinci/completions"`
	APIKey      string        `env:"API_KEY"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
	MaxAttempts uint          `env:"MAX_ATTEMPTS" envDefault:"2"`
	RetryDelay  time.Duration `env:"RETRY_DELAY" envDefault:"500ms"`
}

type Telemetry struct {
	// empty disables the OTLP exporter
	Endpoint string `env:"EXPORTER_OTLP_ENDPOINT"`
}
