package quick

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/LixenWraith/chanlog"
)

// config parses configuration strings into a Config.
// Each argument should be in "key=value" format where key matches a Config toml tag.
func config(args ...string) (*chanlog.Config, error) {
	cfg := &chanlog.Config{}
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(cfg, key, value); err != nil {
			return nil, fmt.Errorf("config error: %s", err)
		}
	}
	return cfg, nil
}

// parseKeyValue splits a configuration string into key and value parts.
// Leading and trailing spaces are removed from both parts.
func parseKeyValue(arg string) (string, string, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(arg), "=")
	if !ok || strings.Contains(value, "=") {
		return "", "", fmt.Errorf("invalid format")
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}

// setValue updates a Config field using reflection.
// Field matching is case-insensitive. Lists are comma separated.
func setValue(cfg *chanlog.Config, key, value string) error {
	key = strings.ToLower(key)

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("toml"); tag == key && tag != "-" {
			f := v.Field(i)

			switch f.Kind() {
			case reflect.Slice:
				if f.Type().Elem().Kind() != reflect.String {
					return fmt.Errorf("unsupported config type for %s", key)
				}
				f.Set(reflect.ValueOf(splitList(value)))

			case reflect.String:
				f.SetString(value)

			case reflect.Bool:
				val, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("invalid bool value for %s: %s", key, value)
				}
				f.SetBool(val)

			default:
				return fmt.Errorf("unsupported config type for %s", key)
			}

			return nil
		}
	}
	return fmt.Errorf("unknown config key: %s", key)
}

// splitList turns "a, b,,c" into [a b c]. An empty value yields an empty,
// non-nil list, which enables no channels.
func splitList(value string) []string {
	list := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
