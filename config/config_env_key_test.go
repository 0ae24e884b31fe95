package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"database": map[string]any{
			"autoMigrate": true,
			"sqlite": map[string]any{
				"dsn": "",
			},
		},
		"session": map[string]any{
			"cookieName": "user_email",
		},
		"i18n": map[string]any{
			"defaultLanguage": "ru",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "DATABASE_SQLITE_DSN", want: "database.sqlite.dsn"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "I18N_DEFAULTLANGUAGE", want: "i18n.defaultLanguage"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
