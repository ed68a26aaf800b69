package config

import (
	"log"
	"os"
	"regexp"
	"strings"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	AdminEmails []string // allowlist voor beheerder-registratie
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=madcrew port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		AdminEmails: parseEmailList(getEnv("ADMIN_EMAILS", "")),
	}

	// Productie-controles
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment variabele ontbreekt! Verplicht voor productie.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET moet minimaal 32 tekens zijn! Veiligheidsrisico.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=madcrew port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN gebruikt de standaardwaarde, stel voor productie je eigen Postgres-verbinding in.")
	}
	if len(cfg.AdminEmails) == 0 {
		log.Println("[WARN] ADMIN_EMAILS is leeg: beheerder-registratie is geblokkeerd tot de allowlist gevuld is.")
	}

	return cfg
}

// AdminEmailAllowed: staat dit e-mailadres op de allowlist?
// Case-insensitive; een lege allowlist keurt alles af (fail closed).
func (c *Config) AdminEmailAllowed(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, a := range c.AdminEmails {
		if a == email {
			return true
		}
	}
	return false
}

// Komma's, puntkomma's, spaties en regeleindes zijn toegestaan als scheiding.
var emailSepRe = regexp.MustCompile(`[,\n; ]+`)

func parseEmailList(raw string) []string {
	var out []string
	for _, p := range emailSepRe.Split(raw, -1) {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
