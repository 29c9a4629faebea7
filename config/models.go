package config

type AppConfig struct {
	Workdir        string `envconfig:"WORK_DIR"`
	Port           string `envconfig:"PORT" default:"8036"`
	DatabaseUri    string `envconfig:"DATABASE_URI" default:"orbithub.db"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"4"`
	LogToFile      bool   `envconfig:"LOG_TO_FILE" default:"true"`
	LogDBQueries   bool   `envconfig:"LOG_DB_QUERIES" default:"false"`
	CatalogUrl     string `envconfig:"CATALOG_URL" default:"https://raw.githubusercontent.com/orbitln/orbithub-services/refs/heads/main"`
	JWTSecret      string `envconfig:"JWT_SECRET"`
	UnlockPassword string `envconfig:"UNLOCK_PASSWORD"`
}
