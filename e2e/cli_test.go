package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairhand/fairhand/internal/api"
	"github.com/fairhand/fairhand/internal/factory"
	"github.com/fairhand/fairhand/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "fairhand-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/fairhand")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	// Create routers
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		MatchController: app.MatchController,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		MatchController: app.MatchController,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type authResponse struct {
	Player struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		IsGuest     bool   `json:"is_guest"`
	} `json:"player"`
	SessionToken string `json:"session_token"`
}

type matchStateResponse struct {
	UserName   string `json:"user_name"`
	WinCount   int    `json:"win_count"`
	TieCount   int    `json:"tie_count"`
	LossCount  int    `json:"loss_count"`
	Commitment string `json:"commitment"`
}

type challengeResponse struct {
	Commitment string `json:"commitment"`
}

type playResponse struct {
	WinCount  int    `json:"win_count"`
	TieCount  int    `json:"tie_count"`
	LossCount int    `json:"loss_count"`

	LastHumanHand    string `json:"last_human_hand"`
	LastComputerHand string `json:"last_computer_hand"`
	LastResult       string `json:"last_result"`
	LastNonce        string `json:"last_nonce"`
	LastCommitment   string `json:"last_commitment"`

	Commitment string `json:"commitment"`
	Verified   bool   `json:"verified"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayerCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create guest
	output, err := cli.run("player", "guest", "--name", "Alice")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "Alice", authResp.Player.DisplayName)
	assert.True(t, authResp.Player.IsGuest)
	assert.NotEmpty(t, authResp.SessionToken)

	// Get me (token should be saved in token file)
	output, err = cli.run("player", "me")
	require.NoError(t, err, "output: %s", output)

	var player struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		IsGuest     bool   `json:"is_guest"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, "Alice", player.DisplayName)
	assert.Equal(t, authResp.Player.ID, player.ID)
}

func TestCLI_FullMatchFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create guest
	output, err := cli.run("player", "guest", "--name", "Alice")
	require.NoError(t, err, "output: %s", output)
	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	token := authResp.SessionToken

	// The match starts from zero with no pending round
	output, err = cli.runWithToken(token, "game", "state")
	require.NoError(t, err, "output: %s", output)
	var state matchStateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.Equal(t, "Alice", state.UserName)
	assert.Zero(t, state.WinCount+state.TieCount+state.LossCount)
	assert.Empty(t, state.Commitment)

	// Request a challenge
	output, err = cli.runWithToken(token, "game", "challenge")
	require.NoError(t, err, "output: %s", output)
	var challenge challengeResponse
	require.NoError(t, json.Unmarshal([]byte(output), &challenge))
	assert.Len(t, challenge.Commitment, 64)

	// Play several rounds; every reveal must verify against its commitment
	commitment := challenge.Commitment
	for round := 1; round <= 5; round++ {
		output, err = cli.runWithToken(token, "game", "play", "rock")
		require.NoError(t, err, "round %d output: %s", round, output)

		var play playResponse
		require.NoError(t, json.Unmarshal([]byte(output), &play))
		assert.Equal(t, "rock", play.LastHumanHand)
		assert.Equal(t, commitment, play.LastCommitment, "round %d", round)
		assert.True(t, play.Verified, "round %d reveal should verify", round)
		assert.Equal(t, round, play.WinCount+play.TieCount+play.LossCount, "round %d", round)

		// The next round was committed as part of the answer
		assert.Len(t, play.Commitment, 64)
		assert.NotEqual(t, commitment, play.Commitment)
		commitment = play.Commitment
	}

	// Logout ends the session
	output, err = cli.runWithToken(token, "player", "logout")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.runWithToken(token, "game", "state")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "unauthorized")
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Get player without auth
	output, err := cli.run("player", "me")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "unauthorized")

	// Play without a committed round
	output, err = cli.run("player", "guest", "--name", "Alice")
	require.NoError(t, err)
	var auth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &auth))

	output, err = cli.runWithToken(auth.SessionToken, "game", "play", "rock")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "round")

	// Play an unknown hand
	_, err = cli.runWithToken(auth.SessionToken, "game", "challenge")
	require.NoError(t, err)

	output, err = cli.runWithToken(auth.SessionToken, "game", "play", "lizard")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "hand")
}
