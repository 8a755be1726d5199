package config

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Manager is a flat key/value store that configuration sources are
// layered into. Keys are lowercase and dot separated.
type Manager struct {
	values map[string]any
	mu     sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		values: make(map[string]any),
	}
}

// Set sets a configuration value
func (m *Manager) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
}

// Get gets a configuration value
func (m *Manager) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.values[key]
	return value, exists
}

// GetString gets a string configuration value
func (m *Manager) GetString(key string, defaultValue ...string) string {
	if value, exists := m.Get(key); exists {
		if str, ok := value.(string); ok {
			return str
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt gets an integer configuration value
func (m *Manager) GetInt(key string, defaultValue ...int) int {
	if value, exists := m.Get(key); exists {
		switch v := value.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		case string:
			if i, err := strconv.Atoi(v); err == nil {
				return i
			}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// LoadFromEnv loads every variable starting with prefix. HTTPLITE_LOG_LEVEL
// with prefix HTTPLITE_ becomes key log.level.
func (m *Manager) LoadFromEnv(prefix string) {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		if prefix != "" {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
		}

		key = strings.ToLower(key)
		key = strings.ReplaceAll(key, "_", ".")

		m.Set(key, value)
	}
}

// LoadFromJSON loads configuration from JSON file. Nested objects are
// flattened into dotted keys.
func (m *Manager) LoadFromJSON(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse JSON config: %w", err)
	}

	m.loadFromMap("", values)
	return nil
}

func (m *Manager) loadFromMap(prefix string, values map[string]any) {
	for key, value := range values {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			m.loadFromMap(fullKey, nested)
		} else {
			m.Set(fullKey, value)
		}
	}
}

// Unmarshal copies values into the fields of the struct target points to.
// A field's key is its `config` tag, or its lowercased name.
func (m *Manager) Unmarshal(prefix string, target any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr {
		return fmt.Errorf("target must be a pointer")
	}

	targetValue = targetValue.Elem()
	if targetValue.Kind() != reflect.Struct {
		return fmt.Errorf("target must be a pointer to struct")
	}

	targetType := targetValue.Type()
	for i := 0; i < targetType.NumField(); i++ {
		field := targetType.Field(i)
		fieldValue := targetValue.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		configKey := field.Tag.Get("config")
		if configKey == "" {
			configKey = strings.ToLower(field.Name)
		}
		if prefix != "" {
			configKey = prefix + "." + configKey
		}

		value, exists := m.values[configKey]
		if !exists {
			continue
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		if str, ok := value.(string); ok {
			field.SetString(str)
		} else {
			field.SetString(fmt.Sprintf("%v", value))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch v := value.(type) {
		case int:
			field.SetInt(int64(v))
		case int64:
			field.SetInt(v)
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("%v is not an integer", v)
			}
			field.SetInt(int64(v))
		case string:
			i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return fmt.Errorf("%q is not an integer", v)
			}
			field.SetInt(i)
		default:
			return fmt.Errorf("cannot convert %T to %v", value, field.Type())
		}

	case reflect.Bool:
		switch v := value.(type) {
		case bool:
			field.SetBool(v)
		case string:
			field.SetBool(v == "true" || v == "yes" || v == "1")
		default:
			return fmt.Errorf("cannot convert %T to bool", value)
		}

	default:
		valueReflect := reflect.ValueOf(value)
		if !valueReflect.IsValid() || !valueReflect.Type().ConvertibleTo(field.Type()) {
			return fmt.Errorf("cannot convert %T to %v", value, field.Type())
		}
		field.Set(valueReflect.Convert(field.Type()))
	}

	return nil
}
