package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/animal-shelter/internal/config"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
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
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	oldVersion, oldCommit, oldDate := buildVersion, buildCommit, buildDate
	defer func() { buildVersion, buildCommit, buildDate = oldVersion, oldCommit, oldDate }()
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

// freePort asks the OS for an unused TCP port.
func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return fmt.Sprintf("%d", lis.Addr().(*net.TCPAddr).Port)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		App: config.AppConfig{Host: "127.0.0.1", Port: freePort(t), LogLevel: "debug"},
		DB:  config.DBConfig{Driver: "sqlite", DSN: ":memory:"},
		JWT: config.JWTConfig{SecretKey: "testsecret", ExpSecond: 60},
		Credentials: config.CredentialsConfig{
			Backend: config.CredentialsFile,
			File:    filepath.Join(t.TempDir(), "users.json"),
		},
		Kafka: config.KafkaConfig{Topic: "shelter.changes"},
	}
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	cfg := testConfig(t)
	runUntilHealthy(t, cfg)
}

func TestRun_RedisCredentials(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Credentials = config.CredentialsConfig{Backend: config.CredentialsRedis, RedisKey: "shelter:users"}
	cfg.Redis = config.RedisConfig{Host: mr.Host(), Port: port, PoolSize: 2, MinIdleConns: 1}

	require.NoError(t, mr.Set("shelter:users", `{"root":{"password":"h","role":"admin"}}`))
	runUntilHealthy(t, cfg)
}

// runUntilHealthy starts run, waits for /health and then cancels it.
func runUntilHealthy(t *testing.T, cfg *config.Config) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, cfg)
	}()

	url := fmt.Sprintf("http://%s/health", cfg.App.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/species", cfg.App.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("run did not stop after cancellation")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{
			name:   "invalid log level",
			mutate: func(cfg *config.Config) { cfg.App.LogLevel = "verbose" },
		},
		{
			name:   "unknown database driver",
			mutate: func(cfg *config.Config) { cfg.DB.Driver = "mysql" },
		},
		{
			name: "corrupt credential file",
			mutate: func(cfg *config.Config) {
				require.NoError(t, os.WriteFile(cfg.Credentials.File, []byte("{not json"), 0o600))
			},
		},
		{
			name: "unreachable redis",
			mutate: func(cfg *config.Config) {
				cfg.Credentials.Backend = config.CredentialsRedis
				cfg.Redis = config.RedisConfig{Host: "127.0.0.1", Port: 1, PoolSize: 1}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			assert.Error(t, run(ctx, cfg))
		})
	}
}

func TestNewChangePublisher(t *testing.T) {
	publisher, closeFn := newChangePublisher(config.KafkaConfig{Topic: "shelter.changes"})
	require.NotNil(t, publisher)
	assert.NoError(t, closeFn())

	publisher, closeFn = newChangePublisher(config.KafkaConfig{
		Brokers: []string{"127.0.0.1:9092"},
		Topic:   "shelter.changes",
	})
	require.NotNil(t, publisher)
	assert.NoError(t, closeFn())
}
