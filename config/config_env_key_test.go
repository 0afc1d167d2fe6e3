package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"master": map[string]any{
				"userName": "user",
				"sslMode":  "disable",
			},
		},
		"jwt": map[string]any{
			"expireMinutes": 30,
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "POSTGRES_MASTER_SSLMODE", want: "postgres.master.sslMode"},
		{envKey: "JWT_EXPIREMINUTES", want: "jwt.expireMinutes"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
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

func TestConnectionConfigDSN(t *testing.T) {
	conn := ConnectionConfig{
		Host:     "localhost",
		Port:     "5432",
		UserName: "taskboard",
		Password: "secret",
		DBName:   "taskboard",
	}

	want := "host=localhost port=5432 user=taskboard dbname=taskboard sslmode=disable password=secret"
	if got := conn.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
