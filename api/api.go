package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/great-circle/api/model"
	"github.com/a-bouts/great-circle/latlon"
	"github.com/a-bouts/great-circle/track"
)

const unit = "nm"

type Server struct {
	cpuprofile bool
	router     *mux.Router
	metrics    *metrics
	origins    *registry
}

func InitServer(cpuprofile bool, cacheSize int) *Server {

	router := mux.NewRouter().StrictSlash(true)

	m := newMetrics()
	s := &Server{
		cpuprofile: cpuprofile,
		router:     router,
		metrics:    m,
		origins:    newRegistry(cacheSize, m.solver()),
	}

	router.HandleFunc("/geo/-/healthz", s.healthz).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/geo/api/v1").Subrouter()
	apiV1.HandleFunc("/distance", s.distance).Methods(http.MethodPost)
	apiV1.HandleFunc("/position", s.position).Methods(http.MethodPost)
	apiV1.HandleFunc("/legs", s.legs).Methods(http.MethodPost)
	apiV1.HandleFunc("/angle/{axis}/{value}", s.angle).Methods(http.MethodGet)

	return s
}

// Handler returns the router wrapped with CORS and panic recovery.
func (s *Server) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))
	return recovery(cors(s.router))
}

// UpdateMetrics refreshes the gauges that are not maintained on the fly.
func (s *Server) UpdateMetrics() {
	n := s.origins.len()
	s.metrics.origins.Set(float64(n))
	log.Debugf("%d origins cached", n)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func (s *Server) distance(w http.ResponseWriter, req *http.Request) {
	requestLogger := newRequestLogger(req, "distance")

	var d model.Distance
	if err := json.NewDecoder(req.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	from, to, err := coordinates(d.From, d.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.DistanceResult{Unit: unit, Algorithm: d.Algorithm}

	switch d.Algorithm {
	case latlon.Spherical:
		s.metrics.solves.WithLabelValues(latlon.Spherical.String()).Inc()
		res.Distance, _ = from.DistanceBy(to, latlon.Spherical)
		res.InitialHeading = latlon.HaversineBearing(from, to)
		res.FinalHeading = latlon.HaversineBearing(to, from).AddDegrees(180).Abs()
	default:
		o, err := s.origins.get(from)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		o.Lock()
		solution, err := o.SolutionTo(to)
		o.Unlock()
		if errors.Is(err, latlon.ErrFailedToConverge) {
			requestLogger.Warnf("No solution from %s to %s", from, to)
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		res.Distance = solution.Distance
		res.InitialHeading = solution.InitialBearing
		res.FinalHeading = solution.FinalBearing
	}

	requestLogger.Debugf("Distance from %s to %s : %f %s (%s)", from, to, res.Distance, unit, res.Algorithm)

	json.NewEncoder(w).Encode(res)
}

func (s *Server) position(w http.ResponseWriter, req *http.Request) {
	requestLogger := newRequestLogger(req, "position")

	var p model.Position
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	from := latlon.NewCoordinate(p.From.Lat, p.From.Lon)
	if !from.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("from: invalid coordinate %s", from))
		return
	}
	if !p.Heading.IsSet() {
		writeError(w, http.StatusBadRequest, errors.New("heading is required"))
		return
	}

	to := from.NewPosition(p.Heading, p.Distance)

	requestLogger.Debugf("%f %s from %s heading %s : %s", p.Distance, unit, from, p.Heading, to)

	json.NewEncoder(w).Encode(model.PositionResult{
		Point:     model.Point{Lat: to.Latitude(), Lon: to.Longitude()},
		Formatted: to.String(),
	})
}

func (s *Server) legs(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		defer profile.Start().Stop()
	}

	requestLogger := newRequestLogger(req, "legs")

	var t track.Track
	if err := json.NewDecoder(req.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()

	legs, err := t.Legs(latlon.WithSolver(s.metrics.solver()))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	for _, l := range legs {
		if l.Algorithm == latlon.Spherical {
			s.metrics.solves.WithLabelValues(latlon.Spherical.String()).Inc()
		}
	}
	if legs == nil {
		legs = []track.Leg{}
	}

	requestLogger.Infof("Legs '%s' : %d legs took %s", t.Name, len(legs), time.Since(start))

	json.NewEncoder(w).Encode(model.LegsResult{
		Name:  t.Name,
		Legs:  legs,
		Total: track.Total(legs),
		Unit:  unit,
	})
}

func (s *Server) angle(w http.ResponseWriter, req *http.Request) {
	axis := mux.Vars(req)["axis"]
	value := mux.Vars(req)["value"]

	var (
		a       latlon.Angle
		markers latlon.Markers
		err     error
	)
	switch axis {
	case latlon.LatitudeAxis.Name:
		var l latlon.Latitude
		l, err = latlon.ParseLatitude(value)
		a, markers = l.Angle, latlon.Markers{Positive: "N", Negative: "S"}
	case latlon.LongitudeAxis.Name:
		var l latlon.Longitude
		l, err = latlon.ParseLongitude(value)
		a, markers = l.Angle, latlon.Markers{Positive: "E", Negative: "W"}
	case latlon.AngleAxis.Name:
		a, err = latlon.ParseAngle(value)
	default:
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown axis %q", axis))
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	decimals := latlon.DefaultDecimals
	if d := req.URL.Query().Get("decimals"); d != "" {
		decimals, err = strconv.Atoi(d)
		if err != nil || decimals < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid decimals %q", d))
			return
		}
	}

	json.NewEncoder(w).Encode(model.AngleResult{
		Axis:        axis,
		Degrees:     a.Degrees(),
		Radians:     a.Radians(),
		Decimal:     a.Format(decimals, false, markers),
		Sexagesimal: a.Format(decimals, true, markers),
	})
}

func coordinates(from, to model.Point) (*latlon.Coordinate, *latlon.Coordinate, error) {
	f := latlon.NewCoordinate(from.Lat, from.Lon)
	if !f.Valid() {
		return nil, nil, fmt.Errorf("from: invalid coordinate %s", f)
	}
	t := latlon.NewCoordinate(to.Lat, to.Lon)
	if !t.Valid() {
		return nil, nil, fmt.Errorf("to: invalid coordinate %s", t)
	}
	return f, t, nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.Error{Error: err.Error()})
}

func newRequestLogger(req *http.Request, action string) *log.Entry {
	fields := log.Fields{
		"action": action,
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	for _, ip := range strings.Split(ips, ",") {
		ip = strings.TrimSpace(ip)
		if net.ParseIP(ip) != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	if net.ParseIP(ip) != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
