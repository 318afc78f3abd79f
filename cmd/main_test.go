package main

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-28"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	for _, want := range []string{"v1.0.0", "abcd1234", "2026-08-28"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, _, pgPort, _, _, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		_, redisPort, redisDB, _, cacheTTLSecond,
		kafkaAddr, kafkaTopic,
		logLevel, jwtSecret, jwtExp,
		timelineConfigPath, nowRefreshSecond,
		err := parseConfig("does-not-exist.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appHost != "localhost" || appPort != "8080" {
		t.Errorf("unexpected app defaults: %s:%s", appHost, appPort)
	}
	if pgPort != 5432 || pgDB != "schedule" {
		t.Errorf("unexpected postgres defaults: %d %s", pgPort, pgDB)
	}
	if pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected pool defaults: %d %d", pgMaxOpenConns, pgMaxIdleConns)
	}
	if redisPort != 6379 || redisDB != 0 || cacheTTLSecond != 300 {
		t.Errorf("unexpected redis defaults: %d %d %d", redisPort, redisDB, cacheTTLSecond)
	}
	if kafkaAddr != "" {
		t.Errorf("change feed must be disabled by default, got addr %q", kafkaAddr)
	}
	if kafkaTopic != "schedule-changes" {
		t.Errorf("unexpected kafka topic default: %s", kafkaTopic)
	}
	if logLevel != "info" {
		t.Errorf("unexpected log level default: %s", logLevel)
	}
	if jwtSecret == "" || jwtExp != 3600 {
		t.Errorf("unexpected jwt defaults: %q %d", jwtSecret, jwtExp)
	}
	if timelineConfigPath != "" || nowRefreshSecond != 60 {
		t.Errorf("unexpected timeline defaults: %q %d", timelineConfigPath, nowRefreshSecond)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	resetEnv()
	os.Setenv("APP_PORT", "9090")
	os.Setenv("POSTGRES_PORT", "15432")
	os.Setenv("CACHE_TTL_SECOND", "60")
	os.Setenv("KAFKA_ADDR", "localhost:9092")
	os.Setenv("JWT_EXP_SECOND", "7200")
	os.Setenv("NOW_REFRESH_SECOND", "5")
	defer resetEnv()

	_, appPort, _, pgPort, _, _, _,
		_, _,
		_, _, _, _, cacheTTLSecond,
		kafkaAddr, _,
		_, _, jwtExp,
		_, nowRefreshSecond,
		err := parseConfig("does-not-exist.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appPort != "9090" {
		t.Errorf("expected app port 9090, got %s", appPort)
	}
	if pgPort != 15432 {
		t.Errorf("expected postgres port 15432, got %d", pgPort)
	}
	if cacheTTLSecond != 60 {
		t.Errorf("expected cache ttl 60, got %d", cacheTTLSecond)
	}
	if kafkaAddr != "localhost:9092" {
		t.Errorf("expected kafka addr to be set, got %q", kafkaAddr)
	}
	if jwtExp != 7200 {
		t.Errorf("expected jwt expiration 7200, got %d", jwtExp)
	}
	if nowRefreshSecond != 5 {
		t.Errorf("expected refresh 5, got %d", nowRefreshSecond)
	}
}

func TestParseConfig_BadNumber(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer resetEnv()

	_, _, _, _, _, _, _,
		_, _,
		_, _, _, _, _,
		_, _,
		_, _, _,
		_, _,
		err := parseConfig("does-not-exist.env")
	if err == nil {
		t.Fatal("expected error for non-numeric POSTGRES_PORT")
	}
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()

	f, err := os.CreateTemp(t.TempDir(), "config-*.env")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("APP_PORT=7070\nJWT_SECRET_KEY=filesecret\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()
	defer resetEnv()

	_, appPort, _, _, _, _, _,
		_, _,
		_, _, _, _, _,
		_, _,
		_, jwtSecret, _,
		_, _,
		err := parseConfig(f.Name())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appPort != "7070" {
		t.Errorf("expected app port 7070 from file, got %s", appPort)
	}
	if jwtSecret != "filesecret" {
		t.Errorf("expected jwt secret from file, got %q", jwtSecret)
	}
}
