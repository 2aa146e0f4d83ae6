package msg

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var messages = map[string]string{}

// Load reads the catalog named by MESSAGES_FILE_PATH (configs/messages.yml by default).
func Load() error {
	value, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	return Init(value)
}

// Init replaces the message catalog with the contents of a YAML file.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read messages: %w", err)
	}

	loaded := make(map[string]string)
	parseMessageMap("", v.AllSettings(), loaded)
	messages = loaded
	return nil
}

// parseMessageMap flattens the YAML tree into dotted keys.
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}... replaced by args.
// Non-primitive args are rendered as JSON.
func GetMessage(key string, args ...interface{}) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		msg = strings.ReplaceAll(msg, fmt.Sprintf("{%d}", i), argToString(arg))
	}

	return msg
}

func argToString(arg interface{}) string {
	if arg == nil {
		return "null"
	}

	switch reflect.TypeOf(arg).Kind() {
	case reflect.String:
		return reflect.ValueOf(arg).String()
	case reflect.Bool:
		return strconv.FormatBool(reflect.ValueOf(arg).Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(reflect.ValueOf(arg).Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(reflect.ValueOf(arg).Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(reflect.ValueOf(arg).Float(), 'f', -1, 64)
	}

	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}

	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}
