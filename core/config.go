package core

import (
	"fmt"
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *Config

type (
	ServerConfig struct {
		Host string
		Port int
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          int
		DisableTLS    bool
	}

	// PerformanceConfig holds the weights of the performance summary.
	// Dashboards may need a different emphasis per deployment; weights are
	// normalized before use so a partial override cannot break the
	// sum-to-one invariant.
	PerformanceConfig struct {
		ProgressWeight      float64
		StressPenaltyWeight float64
		RatingWeight        float64
	}

	ModerationConfig struct {
		WordRepeatThreshold int
		CapsMinRunLength    int
	}

	AlertsConfig struct {
		StressThreshold float64
		Cooldown        time.Duration
	}

	GradingConfig struct {
		NoDecisionPenaltyPct float64
		PassingThreshold     float64
	}

	Config struct {
		Debug    bool
		TestMode bool
		Env      string
		Build    string
		AppName  string

		DefaultFromEmail mail.Address
		SendgridAPIKey   string
		RollbarToken     string

		Server      ServerConfig
		Database    DatabaseConfig
		Performance PerformanceConfig
		Moderation  ModerationConfig
		Alerts      AlertsConfig
		Grading     GradingConfig
	}
)

func (c ServerConfig) Address() string   { return fmt.Sprintf("%s:%d", c.Host, c.Port) }
func (c DatabaseConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Tathmini")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)

	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.name", "tathmini")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.adminUser", "")
	v.SetDefault("database.adminPassword", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.disableTls", true)

	v.SetDefault("performance.progressWeight", 0.50)
	v.SetDefault("performance.stressPenaltyWeight", 0.30)
	v.SetDefault("performance.ratingWeight", 0.20)

	v.SetDefault("moderation.wordRepeatThreshold", 5)
	v.SetDefault("moderation.capsMinRunLength", 4)

	v.SetDefault("alerts.stressThreshold", 70.0)
	v.SetDefault("alerts.cooldown", time.Hour)

	v.SetDefault("grading.noDecisionPenaltyPct", 25.0)
	v.SetDefault("grading.passingThreshold", 40.0)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:            v.GetBool("debug"),
		TestMode:         env == "TEST",
		Env:              env,
		Build:            v.GetString("build"),
		AppName:          v.GetString("appName"),
		DefaultFromEmail: mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		SendgridAPIKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("database.engine"),
			Name:          v.GetString("database.name"),
			User:          v.GetString("database.user"),
			Password:      v.GetString("database.password"),
			AdminUser:     v.GetString("database.adminUser"),
			AdminPassword: v.GetString("database.adminPassword"),
			Host:          v.GetString("database.host"),
			Port:          v.GetInt("database.port"),
			DisableTLS:    v.GetBool("database.disableTls"),
		},
		Performance: PerformanceConfig{
			ProgressWeight:      v.GetFloat64("performance.progressWeight"),
			StressPenaltyWeight: v.GetFloat64("performance.stressPenaltyWeight"),
			RatingWeight:        v.GetFloat64("performance.ratingWeight"),
		},
		Moderation: ModerationConfig{
			WordRepeatThreshold: v.GetInt("moderation.wordRepeatThreshold"),
			CapsMinRunLength:    v.GetInt("moderation.capsMinRunLength"),
		},
		Alerts: AlertsConfig{
			StressThreshold: v.GetFloat64("alerts.stressThreshold"),
			Cooldown:        v.GetDuration("alerts.cooldown"),
		},
		Grading: GradingConfig{
			NoDecisionPenaltyPct: v.GetFloat64("grading.noDecisionPenaltyPct"),
			PassingThreshold:     v.GetFloat64("grading.passingThreshold"),
		},
	}
}
