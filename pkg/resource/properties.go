package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// Load reads the .env file, when present, and then the properties file named by PROPERTIES_FILE_PATH
// (configs/application.yml by default).
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	return Init(value)
}

// Init loads application properties from a YAML file, resolving ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read properties: %w", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}

	properties = v
	return nil
}

// parsePropertiesMap walks the YAML tree, flattening keys and resolving placeholders in string leaves.
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable replaces every ${NAME} or ${NAME:default} in value.
// An unset variable without a default resolves to the empty string.
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}
