package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type tipAPIContainer struct {
	testcontainers.Container
	URI string
}

func setupTipAPI(ctx context.Context, t *testing.T) (*tipAPIContainer, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "e2e-secret-with-enough-length"
	}

	natPort := nat.Port(port + "/tcp")

	req := testcontainers.ContainerRequest{
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    "../",
			Dockerfile: "Dockerfile",
		},
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"PORT":            port,
			"GIN_MODE":        "release",
			"DATABASE_URL":    "",
			"JWT_SECRET":      jwtSecret,
			"SERVICE_FEE_BPS": "250",
			"BCRYPT_COST":     "4",
		},
		WaitingFor: wait.ForHTTP("/health").
			WithPort(natPort).
			WithStatusCodeMatcher(func(status int) bool {
				return status == 200
			}).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	var tipC *tipAPIContainer
	if container != nil {
		tipC = &tipAPIContainer{Container: container}
	}
	if err != nil {
		return tipC, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return tipC, err
	}

	mappedPort, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return tipC, err
	}

	tipC.URI = fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return tipC, nil
}

func postJSON(t *testing.T, url, body, token string) (*http.Response, map[string]interface{}) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", string(raw))
	}
	return resp, result
}

func getJSON(t *testing.T, url, token string) (*http.Response, map[string]interface{}) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]interface{}
	if len(raw) > 0 && strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", string(raw))
	}
	return resp, result
}

func registerBarista(t *testing.T, baseURL, email, handle string) string {
	body := fmt.Sprintf(`{"email":%q,"password":"password123","name":"E2E Barista","role":"BARISTA","handle":%q}`, email, handle)
	resp, result := postJSON(t, baseURL+"/auth/register", body, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	token, ok := result["token"].(string)
	require.True(t, ok, "token should be a string")
	require.NotEmpty(t, token)
	return token
}

func TestE2E_Health(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	tipC, err := setupTipAPI(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, tipC)

	resp, result := getJSON(t, tipC.URI+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["ok"])
}

func TestE2E_TipFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	tipC, err := setupTipAPI(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, tipC)

	token := registerBarista(t, tipC.URI, "barista@example.com", "demo-barista")

	resp, result := postJSON(t, tipC.URI+"/tips", `{"toHandle":"demo-barista","amountCents":1000,"message":"great coffee"}`, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	tip, ok := result["tip"].(map[string]interface{})
	require.True(t, ok, "tip should be an object")
	assert.Equal(t, 1000.0, tip["amountCents"])
	assert.Equal(t, 25.0, tip["feeCents"])
	assert.Equal(t, 975.0, tip["netCents"])
	assert.Equal(t, "COMPLETED", tip["status"])

	resp, result = getJSON(t, tipC.URI+"/tips/incoming", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	tips, ok := result["tips"].([]interface{})
	require.True(t, ok, "tips should be a list")
	assert.Len(t, tips, 1)
}

func TestE2E_LoginAndMe(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	tipC, err := setupTipAPI(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, tipC)

	registerBarista(t, tipC.URI, "login@example.com", "login-barista")

	resp, result := postJSON(t, tipC.URI+"/auth/login", `{"email":"login@example.com","password":"password123"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token := result["token"].(string)

	resp, result = getJSON(t, tipC.URI+"/auth/me", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "login@example.com", user["email"])
	assert.Equal(t, "login-barista", user["handle"])
}

func TestE2E_PayoutFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	tipC, err := setupTipAPI(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, tipC)

	token := registerBarista(t, tipC.URI, "payout@example.com", "payout-barista")

	resp, result := postJSON(t, tipC.URI+"/payouts/request", `{"amountCents":500}`, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	payout := result["payout"].(map[string]interface{})
	assert.Equal(t, "REQUESTED", payout["status"])

	resp, result = getJSON(t, tipC.URI+"/payouts", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payouts := result["payouts"].([]interface{})
	assert.Len(t, payouts, 1)
}

func TestE2E_PublicPages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	tipC, err := setupTipAPI(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, tipC)

	registerBarista(t, tipC.URI, "page@example.com", "page-barista")

	resp, err := http.Get(tipC.URI + "/qr/page-barista")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp2, err := http.Get(tipC.URI + "/portal/page-barista")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	body, err := io.ReadAll(resp2.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "page-barista")

	resp3, err := http.Get(tipC.URI + "/portal/nobody")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}

func TestE2E_Unauthorized(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	tipC, err := setupTipAPI(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, tipC)

	resp, _ := getJSON(t, tipC.URI+"/tips/incoming", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = getJSON(t, tipC.URI+"/admin/users", "invalid_token_here")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
