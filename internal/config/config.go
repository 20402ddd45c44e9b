package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// Port is the port the server should run on.
	Port int
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string
	// JWTSecret signs session tokens. Always override in production.
	JWTSecret string
	// TokenExpiration is how long an issued session token stays valid.
	TokenExpiration time.Duration
	// ProjectID is the GCP project hosting Firestore and Cloud Storage.
	ProjectID string
	// CredentialsFile is an optional service account key file. When empty,
	// application default credentials are used.
	CredentialsFile string
	// StorageBucket holds uploaded course materials.
	StorageBucket string
	// MaxUploadSize is the largest accepted upload, in bytes.
	MaxUploadSize int64
	// AllowedUploadExtensions is the upload extension allow-list.
	AllowedUploadExtensions []string
	// AdminEmail, AdminPassword and AdminName describe the bootstrap admin
	// account the seeder guarantees on startup.
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Port:                    8080,
		AllowedOrigins:          []string{"http://localhost:3000"},
		JWTSecret:               "dev-secret-key-change-in-production",
		TokenExpiration:         time.Hour * 24,
		ProjectID:               "learnhub-dev",
		StorageBucket:           "lms-course-materials",
		MaxUploadSize:           10 * 1024 * 1024,
		AllowedUploadExtensions: []string{"pdf", "doc", "docx", "txt", "jpg", "jpeg", "png", "mp4", "mp3"},
		AdminEmail:              "admin-moodle@ncirl.ie",
		AdminPassword:           "admin-moodle@1",
		AdminName:               "System Administrator",
	}
}

// Load builds the server configuration from the environment, falling back to
// DefaultConfig values. A .env file in the working directory is honored when
// present.
func Load() *ServerConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Reading configuration from the environment.")
	}

	cfg := DefaultConfig()

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Invalid PORT %q, keeping default %d", v, cfg.Port)
		} else {
			cfg.Port = port
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("GCP_PROJECT_ID"); v != "" {
		cfg.ProjectID = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv("STORAGE_BUCKET"); v != "" {
		cfg.StorageBucket = v
	}
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("Invalid MAX_UPLOAD_SIZE %q, keeping default %d", v, cfg.MaxUploadSize)
		} else {
			cfg.MaxUploadSize = size
		}
	}
	if v := os.Getenv("ALLOWED_UPLOAD_EXTENSIONS"); v != "" {
		cfg.AllowedUploadExtensions = splitList(v)
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.AdminEmail = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.AdminPassword = v
	}
	if v := os.Getenv("ADMIN_NAME"); v != "" {
		cfg.AdminName = v
	}

	return cfg
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
