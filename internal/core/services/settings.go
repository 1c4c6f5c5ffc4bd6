package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/primer/internal/core/domain"
	"github.com/custodia-labs/primer/internal/core/ports/driven"
	"github.com/custodia-labs/primer/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDemoA           = "demo.a"
	keyDemoB           = "demo.b"
	keyDemoMessage     = "demo.message"
	keyDemoNumbers     = "demo.numbers"
	keyOutputColor     = "output.color"
	keyOutputPrecision = "output.precision"
)

// settingsKeys is the display order of recognised keys.
var settingsKeys = []string{
	keyDemoA,
	keyDemoB,
	keyDemoMessage,
	keyDemoNumbers,
	keyOutputColor,
	keyOutputPrecision,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or mistyped values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Demo: domain.DemoSettings{
			A:       s.getInt(keyDemoA, defaults.Demo.A),
			B:       s.getInt(keyDemoB, defaults.Demo.B),
			Message: s.getString(keyDemoMessage, defaults.Demo.Message),
			Numbers: s.getInts(keyDemoNumbers, defaults.Demo.Numbers),
		},
		Output: domain.OutputSettings{
			Color:     s.getBool(keyOutputColor, defaults.Output.Color),
			Precision: s.getPrecision(defaults.Output.Precision),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !domain.ValidPrecision(settings.Output.Precision) {
		return fmt.Errorf("save output precision %d: %w", settings.Output.Precision, domain.ErrInvalidInput)
	}

	// Save demo settings
	if err := s.configStore.Set(keyDemoA, settings.Demo.A); err != nil {
		return fmt.Errorf("save demo a: %w", err)
	}
	if err := s.configStore.Set(keyDemoB, settings.Demo.B); err != nil {
		return fmt.Errorf("save demo b: %w", err)
	}
	if err := s.configStore.Set(keyDemoMessage, settings.Demo.Message); err != nil {
		return fmt.Errorf("save demo message: %w", err)
	}
	if err := s.configStore.Set(keyDemoNumbers, settings.Demo.Numbers); err != nil {
		return fmt.Errorf("save demo numbers: %w", err)
	}

	// Save output settings
	if err := s.configStore.Set(keyOutputColor, settings.Output.Color); err != nil {
		return fmt.Errorf("save output color: %w", err)
	}
	if err := s.configStore.Set(keyOutputPrecision, settings.Output.Precision); err != nil {
		return fmt.Errorf("save output precision: %w", err)
	}

	return nil
}

// Set parses raw according to the type of key and stores it.
func (s *SettingsService) Set(key, raw string) error {
	var value any

	switch key {
	case keyDemoA, keyDemoB:
		n, err := ParseInt(raw)
		if err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		value = n
	case keyDemoMessage:
		value = raw
	case keyDemoNumbers:
		nums, err := ParseInts(splitList(raw))
		if err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		value = nums
	case keyOutputColor:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("set %s: parse bool %q: %w", key, raw, domain.ErrInvalidInput)
		}
		value = b
	case keyOutputPrecision:
		p, err := ParseInt(raw)
		if err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		if !domain.ValidPrecision(p) {
			return fmt.Errorf("set %s: precision must be between %d and %d: %w",
				key, domain.PrecisionShortest, domain.MaxPrecision, domain.ErrInvalidInput)
		}
		value = p
	default:
		return fmt.Errorf("%q: %w", key, domain.ErrUnknownSetting)
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes all stored settings so defaults apply again.
func (s *SettingsService) Reset() error {
	for _, key := range settingsKeys {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return s.configStore.Save()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Keys lists the recognised settings keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingsKeys))
	copy(keys, settingsKeys)
	return keys
}

// Path returns the config store location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val, ok := s.configStore.Get(key); ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	if n, ok := asInt(val); ok {
		return n
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if val, ok := s.configStore.Get(key); ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// getInts returns defaultVal unless every stored element is an integer.
func (s *SettingsService) getInts(key string, defaultVal []int) []int {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case []int:
	case []any:
		for _, item := range v {
			if _, ok := asInt(item); !ok {
				return defaultVal
			}
		}
	default:
		return defaultVal
	}
	return s.configStore.GetIntSlice(key)
}

func (s *SettingsService) getPrecision(defaultVal int) int {
	p := s.getInt(keyOutputPrecision, defaultVal)
	if !domain.ValidPrecision(p) {
		return defaultVal
	}
	return p
}

// asInt accepts the integer types config stores hold. Floats are rejected
// rather than truncated.
func asInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}

// splitList splits "1,2,3" or "1 2 3" into its elements.
func splitList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
