package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTranslations swaps in a fixed table for the duration of a test
func withTranslations(t *testing.T, table map[string]map[string]string) {
	t.Helper()
	require.NoError(t, Load())

	mutex.Lock()
	old := translations
	translations = table
	mutex.Unlock()

	t.Cleanup(func() {
		mutex.Lock()
		translations = old
		mutex.Unlock()
	})
}

func TestFlatten(t *testing.T) {
	nested := map[string]interface{}{
		"contact": map[string]interface{}{
			"title": "Get In Touch",
			"errors": map[string]interface{}{
				"email_invalid": "Invalid email",
			},
		},
		"count": 123,
	}

	flat := make(map[string]string)
	flatten("", nested, flat)

	assert.Equal(t, "Get In Touch", flat["contact.title"])
	assert.Equal(t, "Invalid email", flat["contact.errors.email_invalid"])
	assert.Equal(t, "123", flat["count"])
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		args     map[string]interface{}
		expected string
	}{
		{
			name:     "No placeholders",
			text:     "Hello World",
			expected: "Hello World",
		},
		{
			name:     "Single placeholder",
			text:     "New inquiry from {name}",
			args:     map[string]interface{}{"name": "Jane"},
			expected: "New inquiry from Jane",
		},
		{
			name:     "Multiple placeholders",
			text:     "{greeting} {name}, you have {count} messages",
			args:     map[string]interface{}{"greeting": "Hi", "name": "Doe", "count": 5},
			expected: "Hi Doe, you have 5 messages",
		},
		{
			name:     "Missing argument",
			text:     "Hello {name}",
			args:     map[string]interface{}{"other": "val"},
			expected: "Hello {name}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result string
			if tt.args == nil {
				result = format(tt.text)
			} else {
				result = format(tt.text, tt.args)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetLocale(t *testing.T) {
	t.Run("Default locale", func(t *testing.T) {
		assert.Equal(t, "en", GetLocale(context.Background()))
	})

	t.Run("Locale from context", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "es")
		assert.Equal(t, "es", GetLocale(ctx))
	})

	t.Run("Empty locale falls back", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "")
		assert.Equal(t, "en", GetLocale(ctx))
	})
}

func TestTranslateLogic(t *testing.T) {
	withTranslations(t, map[string]map[string]string{
		"en": {
			"test.hello":   "Hello",
			"test.welcome": "Welcome {name}",
		},
		"es": {
			"test.hello": "Hola",
		},
	})

	t.Run("Direct lookup", func(t *testing.T) {
		assert.Equal(t, "Hola", Translate("es", "test.hello"))
		assert.Equal(t, "Hello", Translate("en", "test.hello"))
	})

	t.Run("Fallback to default", func(t *testing.T) {
		assert.Equal(t, "Welcome Juan", Translate("es", "test.welcome", map[string]interface{}{"name": "Juan"}))
	})

	t.Run("Unknown language uses default", func(t *testing.T) {
		assert.Equal(t, "Hello", Translate("fr", "test.hello"))
	})

	t.Run("Fallback to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", Translate("es", "missing.key"))
	})
}

func TestT(t *testing.T) {
	withTranslations(t, map[string]map[string]string{
		"es": {"greet": "Hola {name}"},
	})

	ctx := WithLocale(context.Background(), "es")
	assert.Equal(t, "Hola Pedro", T(ctx, "greet", map[string]interface{}{"name": "Pedro"}))
}

func TestLoadExecution(t *testing.T) {
	require.NoError(t, Load())
	assert.NoError(t, Load(), "second call must be a no-op")

	assert.Equal(t, []string{"en", "es"}, Languages())
	assert.True(t, IsSupported("es"))
	assert.False(t, IsSupported("fr"))
}

func TestLocaleFilesShareKeys(t *testing.T) {
	require.NoError(t, Load())

	mutex.RLock()
	defer mutex.RUnlock()

	for key := range translations["en"] {
		_, ok := translations["es"][key]
		assert.True(t, ok, "es.json is missing %s", key)
	}
}
