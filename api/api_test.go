package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type distanceBody struct {
	Distance       float64 `json:"distance"`
	Unit           string  `json:"unit"`
	InitialHeading float64 `json:"initialHeading"`
	FinalHeading   float64 `json:"finalHeading"`
	Algorithm      string  `json:"algorithm"`
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestHealthz(t *testing.T) {
	s := InitServer(false, 16)

	rec := do(t, s, http.MethodGet, "/geo/-/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var h map[string]string
	decode(t, rec, &h)
	assert.Equal(t, "Ok", h["status"])
}

func TestDistance(t *testing.T) {
	s := InitServer(false, 16)
	body := `{"from": {"lat": 50, "lon": "5 W"}, "to": {"lat": "58°0'0\" N", "lon": -3}}`

	for i := 0; i < 3; i++ {
		rec := do(t, s, http.MethodPost, "/geo/api/v1/distance", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var d distanceBody
		decode(t, rec, &d)
		assert.InDelta(t, 485.927487, d.Distance, 1e-5)
		assert.InDelta(t, 7.575054, d.InitialHeading, 1e-5)
		assert.InDelta(t, 9.197102, d.FinalHeading, 1e-5)
		assert.Equal(t, "nm", d.Unit)
		assert.Equal(t, "ellipsoidal", d.Algorithm)
	}

	// the origin is shared between requests, its solution is reused
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.solves.WithLabelValues("ellipsoidal")))

	s.UpdateMetrics()
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.origins))
}

func TestDistanceSpherical(t *testing.T) {
	s := InitServer(false, 16)

	rec := do(t, s, http.MethodPost, "/geo/api/v1/distance",
		`{"from": {"lat": 50, "lon": -5}, "to": {"lat": 58, "lon": -3}, "algorithm": "haversine"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var d distanceBody
	decode(t, rec, &d)
	assert.Equal(t, "spherical", d.Algorithm)
	assert.InEpsilon(t, 485.927487, d.Distance, 0.01)
	assert.InDelta(t, 7.6, d.InitialHeading, 0.5)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.solves.WithLabelValues("spherical")))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.metrics.solves.WithLabelValues("ellipsoidal")))
}

func TestDistanceDoesNotConverge(t *testing.T) {
	s := InitServer(false, 16)

	rec := do(t, s, http.MethodPost, "/geo/api/v1/distance",
		`{"from": {"lat": 0, "lon": 0}, "to": {"lat": 0.5, "lon": 179.7}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to converge")
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.failures))
}

func TestDistanceBadRequest(t *testing.T) {
	s := InitServer(false, 16)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"malformed latitude", `{"from": {"lat": "fifty", "lon": -5}, "to": {"lat": 58, "lon": -3}}`},
		{"missing longitude", `{"from": {"lat": 50}, "to": {"lat": 58, "lon": -3}}`},
		{"out of range", `{"from": {"lat": 50, "lon": -5}, "to": {"lat": 98, "lon": -3}}`},
		{"unknown algorithm", `{"from": {"lat": 50, "lon": -5}, "to": {"lat": 58, "lon": -3}, "algorithm": "flat"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/geo/api/v1/distance", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var e map[string]string
			decode(t, rec, &e)
			assert.NotEmpty(t, e["error"])
		})
	}
}

func TestPosition(t *testing.T) {
	s := InitServer(false, 16)

	rec := do(t, s, http.MethodPost, "/geo/api/v1/position",
		`{"from": {"lat": 50, "lon": -5}, "heading": 90, "distance": 60}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var p struct {
		Lat       float64 `json:"lat"`
		Lon       float64 `json:"lon"`
		Formatted string  `json:"formatted"`
	}
	decode(t, rec, &p)
	assert.InDelta(t, 49.895, p.Lat, 0.001)
	assert.InDelta(t, -3.4586, p.Lon, 0.001)
	assert.NotEmpty(t, p.Formatted)

	rec = do(t, s, http.MethodPost, "/geo/api/v1/position", `{"from": {"lat": 50, "lon": -5}, "distance": 60}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/geo/api/v1/position", `{"from": {"lat": 50}, "heading": 0, "distance": 60}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLegs(t *testing.T) {
	s := InitServer(false, 16)

	rec := do(t, s, http.MethodPost, "/geo/api/v1/legs", `{
		"name": "there and back",
		"waypoints": [
			{"name": "a", "lat": 50, "lon": -5},
			{"name": "b", "lat": "58 N", "lon": "3 W"},
			{"name": "c", "lat": 50, "lon": -5}
		]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Name string `json:"name"`
		Legs []struct {
			From     string  `json:"from"`
			To       string  `json:"to"`
			Distance float64 `json:"distance"`
		} `json:"legs"`
		Total float64 `json:"total"`
	}
	decode(t, rec, &res)
	assert.Equal(t, "there and back", res.Name)
	require.Len(t, res.Legs, 2)
	assert.Equal(t, "a", res.Legs[0].From)
	assert.Equal(t, "c", res.Legs[1].To)
	assert.InDelta(t, 2*485.927487, res.Total, 1e-4)
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.solves.WithLabelValues("ellipsoidal")))

	rec = do(t, s, http.MethodPost, "/geo/api/v1/legs", `{"name": "empty"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"legs":[]`)

	rec = do(t, s, http.MethodPost, "/geo/api/v1/legs", `{"waypoints": [{"name": "a", "lat": 50}, {"name": "b", "lat": 51, "lon": 1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAngle(t *testing.T) {
	s := InitServer(false, 16)

	type angleBody struct {
		Axis        string  `json:"axis"`
		Degrees     float64 `json:"degrees"`
		Radians     float64 `json:"radians"`
		Decimal     string  `json:"decimal"`
		Sexagesimal string  `json:"sexagesimal"`
	}

	tests := []struct {
		target string
		want   angleBody
	}{
		{
			target: "/geo/api/v1/angle/latitude/50.5S",
			want:   angleBody{Axis: "latitude", Degrees: -50.5, Decimal: "50.500000S", Sexagesimal: "50°30'0\"S"},
		},
		{
			target: "/geo/api/v1/angle/longitude/" + url.PathEscape(`10°30'W`) + "?decimals=2",
			want:   angleBody{Axis: "longitude", Degrees: -10.5, Decimal: "10.50W", Sexagesimal: "10°30'0\"W"},
		},
		{
			target: "/geo/api/v1/angle/angle/-45?decimals=1",
			want:   angleBody{Axis: "angle", Degrees: -45, Decimal: "-45.0", Sexagesimal: "-45°0'0\""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got angleBody
			decode(t, rec, &got)
			assert.Equal(t, tt.want.Axis, got.Axis)
			assert.InDelta(t, tt.want.Degrees, got.Degrees, 1e-12)
			assert.InDelta(t, tt.want.Degrees*3.141592653589793/180, got.Radians, 1e-12)
			assert.Equal(t, tt.want.Decimal, got.Decimal)
			assert.Equal(t, tt.want.Sexagesimal, got.Sexagesimal)
		})
	}
}

func TestAngleErrors(t *testing.T) {
	s := InitServer(false, 16)

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/geo/api/v1/angle/altitude/10", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/geo/api/v1/angle/latitude/10E", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/geo/api/v1/angle/angle/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/geo/api/v1/angle/angle/10?decimals=x", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := InitServer(false, 16)
	do(t, s, http.MethodPost, "/geo/api/v1/distance", `{"from": {"lat": 10, "lon": 10}, "to": {"lat": 50, "lon": 50}}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gcircle_solves_total{algorithm="ellipsoidal"} 1`)
}

func TestRegistryEvicts(t *testing.T) {
	s := InitServer(false, 2)

	for _, lat := range []string{"10", "20", "30"} {
		rec := do(t, s, http.MethodPost, "/geo/api/v1/distance",
			`{"from": {"lat": `+lat+`, "lon": 0}, "to": {"lat": 0, "lon": 10}}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	s.UpdateMetrics()
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.origins))
}

func TestCORS(t *testing.T) {
	s := InitServer(false, 16)

	req := httptest.NewRequest(http.MethodGet, "/geo/-/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetIp(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"

	ip, err := getIp(req)
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.1", ip)

	req.Header.Set("X-Forwarded-For", "garbage, 198.51.100.7")
	ip, err = getIp(req)
	require.NoError(t, err)
	assert.Equal(t, "198.51.100.7", ip)

	req.Header.Set("X-Real-Ip", "203.0.113.9")
	ip, err = getIp(req)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.9", ip)
}
