package server

import (
	"net/http"
	"strings"
	"testing"

	"jenkins-pipeline-demo/internal/calculator"
	"jenkins-pipeline-demo/internal/config"
	"jenkins-pipeline-demo/internal/observability"
	"jenkins-pipeline-demo/internal/testutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	observability.Logger = zap.NewNop()
	if err := calculator.InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}
	if cfg == nil {
		cfg = config.New()
	}
	return NewRouter(cfg)
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	w := testutil.Get(router, "/api/health")

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)
	testutil.CheckJSONContentType(t, w)

	want := `{"status":"UP","service":"Jenkins Pipeline Demo","version":"1.0.0"}` + "\n"
	if body := w.Body.String(); body != want {
		t.Fatalf("expected body %q, got %q", want, body)
	}
}

func TestNewRouterCalculatorRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		target string
		want   string
	}{
		{"/api/add?a=5&b=3", `{"operation":"addition","operand1":5,"operand2":3,"result":8}`},
		{"/api/subtract?a=10&b=3", `{"operation":"subtraction","operand1":10,"operand2":3,"result":7}`},
		{"/api/multiply?a=4&b=3", `{"operation":"multiplication","operand1":4,"operand2":3,"result":12}`},
		{"/api/divide?a=15&b=3", `{"operation":"division","operand1":15,"operand2":3,"result":5}`},
		{"/api/add?a=2.5&b=1.5", `{"operation":"addition","operand1":2.5,"operand2":1.5,"result":4}`},
		{"/api/multiply?a=-2&b=1e3", `{"operation":"multiplication","operand1":-2,"operand2":1000,"result":-2000}`},
		{"/api/multiply?a=1e308&b=10", `{"operation":"multiplication","operand1":1e+308,"operand2":10,"result":"Infinity"}`},
		{"/api/divide?a=1e308&b=1e-10", `{"operation":"division","operand1":1e+308,"operand2":1e-10,"result":"Infinity"}`},
		{"/api/add?a=Infinity&b=1", `{"operation":"addition","operand1":"Infinity","operand2":1,"result":"Infinity"}`},
		{"/api/add?a=Inf&b=1", `{"operation":"addition","operand1":"Infinity","operand2":1,"result":"Infinity"}`},
		{"/api/add?a=1e400&b=1", `{"operation":"addition","operand1":"Infinity","operand2":1,"result":"Infinity"}`},
		{"/api/subtract?a=-Infinity&b=1", `{"operation":"subtraction","operand1":"-Infinity","operand2":1,"result":"-Infinity"}`},
		{"/api/subtract?a=Infinity&b=Infinity", `{"operation":"subtraction","operand1":"Infinity","operand2":"Infinity","result":"NaN"}`},
		{"/api/divide?a=1&b=NaN", `{"operation":"division","operand1":1,"operand2":"NaN","result":"NaN"}`},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			w := testutil.Get(router, tc.target)

			testutil.CheckResponseCode(t, http.StatusOK, w.Code)
			testutil.CheckJSONContentType(t, w)
			if got := w.Body.String(); got != tc.want+"\n" {
				t.Fatalf("expected body %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNewRouterCalculatorSetsRequestIDHeaderOnly(t *testing.T) {
	router := newTestRouter(t, nil)

	w := testutil.Get(router, "/api/add?a=2&b=3")
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	requestID := w.Result().Header.Get("X-Request-ID")
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	testutil.DecodeJSONBody(t, w.Body, &payload)

	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in success JSON body")
	}
	if got, ok := payload["result"].(float64); !ok || got != 5 {
		t.Fatalf("expected result 5, got %#v", payload["result"])
	}
}

func TestNewRouterCalculatorErrors(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		target string
		want   string
	}{
		{"/api/divide?a=10&b=0", "Division by zero is not allowed"},
		{"/api/divide?a=0&b=-0", "Division by zero is not allowed"},
		{"/api/add?a=5", "missing required parameter: b"},
		{"/api/subtract?b=5", "missing required parameter: a"},
		{"/api/multiply", "missing required parameter: a"},
		{"/api/add?a=&b=1", "missing required parameter: a"},
		{"/api/add?a=five&b=3", "invalid numeric parameter: a"},
		{"/api/divide?a=1&b=one", "invalid numeric parameter: b"},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			w := testutil.Get(router, tc.target)

			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
			testutil.CheckJSONContentType(t, w)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)
			if body["error"] != tc.want {
				t.Fatalf("expected error %q, got %#v", tc.want, body)
			}
		})
	}
}

func TestNewRouterRepeatedRequestsAreIdentical(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, target := range []string{"/api/divide?a=1&b=3", "/api/divide?a=1&b=0", "/api/health"} {
		first := testutil.Get(router, target)
		for range 5 {
			again := testutil.Get(router, target)
			if again.Code != first.Code || again.Body.String() != first.Body.String() {
				t.Fatalf("%s: expected identical responses, got %d %q then %d %q",
					target, first.Code, first.Body.String(), again.Code, again.Body.String())
			}
		}
	}
}

func TestNewRouterRejectsOtherMethods(t *testing.T) {
	router := newTestRouter(t, nil)

	r, _ := http.NewRequest(http.MethodPost, "/api/add?a=1&b=2", nil)
	w := testutil.ExecuteRequest(r, router)

	testutil.CheckResponseCode(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNewRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	_ = testutil.Get(router, "/api/add?a=1&b=2")
	w := testutil.Get(router, "/metrics")

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	series := `http_requests_total{method="GET",route="/api/add",status="200"}`
	if !strings.Contains(w.Body.String(), series) {
		t.Fatalf("expected %s in exposition output", series)
	}
}

func TestNewRouterRateLimitsCalculatorOnly(t *testing.T) {
	cfg := config.New()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	router := newTestRouter(t, cfg)

	testutil.CheckResponseCode(t, http.StatusOK, testutil.Get(router, "/api/add?a=1&b=2").Code)

	w := testutil.Get(router, "/api/add?a=1&b=2")
	testutil.CheckResponseCode(t, http.StatusTooManyRequests, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Body, &body)
	if body["error"] != "rate limit exceeded" {
		t.Fatalf("expected rate limit error, got %#v", body)
	}

	testutil.CheckResponseCode(t, http.StatusOK, testutil.Get(router, "/api/health").Code)
}
