package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/movecar/internal/pkg/constants"
	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. In the local
// environment the given .env file is loaded first.
func InitConfig(configPath string) *models.Config {
	local := os.Getenv("APP_ENV")
	if (local == "" || local == "local") && configPath != "" {
		// Load config from file
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "movecar")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_VERSION", "development")
	v.SetDefault("DEFAULT_LANGUAGE", "zh")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)

	v.SetDefault("STORE_DRIVER", "redis")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("PUSH_TIMEOUT", constants.DefaultPushTimeout)
	v.SetDefault("PUSH_ICON_URL", constants.DefaultPushIconURL)
	v.SetDefault("PUSH_GROUP", constants.DefaultPushGroup)
	v.SetDefault("PUSH_SOUND", constants.DefaultPushSound)
	v.SetDefault("PUSH_LEVEL", constants.DefaultPushLevel)

	v.SetDefault("NOTIFY_DELAY", constants.DefaultNotifyDelay)
	v.SetDefault("ESCALATION_ENFORCE", false)

	v.SetDefault("RATE_LIMIT_PER_MINUTE", 0)

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_APP_NAME", "movecar")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.DefaultLanguage = v.GetString("DEFAULT_LANGUAGE")

	// Server config
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.PublicBaseURL = strings.TrimSuffix(v.GetString("PUBLIC_BASE_URL"), "/")
	configs.Server.ShutdownTimeout = v.GetDuration("SERVER_SHUTDOWN_TIMEOUT")

	// Store config
	configs.Store.Driver = strings.ToLower(v.GetString("STORE_DRIVER"))

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Registry config
	configs.Registry.CarList = v.GetString("CAR_LIST")
	configs.Registry.CarListFile = v.GetString("CAR_LIST_FILE")

	// Push config
	configs.Push.Timeout = v.GetDuration("PUSH_TIMEOUT")
	configs.Push.IconURL = v.GetString("PUSH_ICON_URL")
	configs.Push.Group = v.GetString("PUSH_GROUP")
	configs.Push.Sound = v.GetString("PUSH_SOUND")
	configs.Push.Level = v.GetString("PUSH_LEVEL")

	// Escalation config
	configs.Escalation.NotifyDelay = v.GetDuration("NOTIFY_DELAY")
	configs.Escalation.Enforce = v.GetBool("ESCALATION_ENFORCE")

	// Access config
	configs.Access.AllowedCountries = SplitList(v.GetString("ALLOWED_COUNTRIES"))
	configs.Access.RateLimitPerMinute = v.GetInt("RATE_LIMIT_PER_MINUTE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")

	// NewRelic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// SplitList splits a comma separated value, dropping blanks and upper-casing entries
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
