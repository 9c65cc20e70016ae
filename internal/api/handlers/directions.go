package handlers

import (
	"directions-route-service/internal/api/dto"
	"directions-route-service/internal/domain"
	"directions-route-service/internal/platform/logging"
	"directions-route-service/internal/ports"
	"directions-route-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

// DirectionsHandler resolves a saved or posted route into its interpolated path.
type DirectionsHandler struct {
	Repo         ports.RouteRepository
	Fetcher      ports.DirectionsFetcher
	MaxWaypoints int
	Log          *zap.Logger
}

// Resolve parses the waypoints, resolves every chunk and answers with the
// interpolated route as a GeoJSON LineString. A failed chunk stops resolution;
// the response then carries what was merged before it and status 502.
func (h *DirectionsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, h.Log, http.MethodPost) {
		return
	}

	var req dto.DirectionsRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, h.Log, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	name := strings.TrimSpace(req.Name)
	switch {
	case name != "" && len(req.Waypoints) > 0:
		writeError(w, r, h.Log, http.StatusBadRequest, "provide either name or waypoints, not both")
		return
	case name == "" && len(req.Waypoints) == 0:
		writeError(w, r, h.Log, http.StatusBadRequest, "name or waypoints is required")
		return
	}

	items := req.Waypoints
	if name != "" {
		saved, err := h.Repo.GetRoute(r.Context(), name)
		if errors.Is(err, ports.ErrRouteNotFound) {
			writeError(w, r, h.Log, http.StatusNotFound, "route not found")
			return
		}
		if err != nil {
			h.Log.Error("get route failed", zap.String("name", name), zap.Error(err))
			writeError(w, r, h.Log, http.StatusInternalServerError, "internal server error")
			return
		}
		items = saved.Waypoints
	}

	// Messages are kept for the response and forwarded to the service log.
	collector := logging.NewCollector(logging.NewZapSink(h.Log))

	factory := services.NewRouteFactory(services.WithFactorySink(collector))
	route, rejected := factory.CreateRouteWithReport(items)

	svc := services.NewDirectionsService(h.Fetcher,
		services.WithMaxWaypoints(h.MaxWaypoints),
		services.WithSink(collector),
		services.WithLogger(h.Log),
	)
	accepted := len(route.InputRoute())
	required := services.RequiredCalls(accepted, svc.MaxWaypoints())

	_, calls, resolveErr := svc.Resolve(r.Context(), route)

	interpolated := route.InterpolatedRoute()
	res := dto.DirectionsResponse{
		Name:          name,
		InputCount:    len(items),
		AcceptedCount: accepted,
		Rejected:      make([]string, 0, len(rejected)),
		RequiredCalls: required,
		Calls:         calls,
		Remaining:     route.RemainingCoordinateCount(),
		PointCount:    len(interpolated),
		Messages:      collector.Messages(),
		Route:         lineFeature(name, interpolated),
	}
	for _, e := range rejected {
		res.Rejected = append(res.Rejected, e.Error())
	}
	if res.Messages == nil {
		res.Messages = []string{}
	}

	status := http.StatusOK
	if resolveErr != nil {
		res.Error = resolveErr.Error()
		status = http.StatusBadGateway
	}

	writeJSON(w, r, h.Log, status, res)
}

func lineFeature(name string, coords []domain.Coordinate) *geojson.Feature {
	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		ls = append(ls, orb.Point{c.Longitude(), c.Latitude()})
	}

	f := geojson.NewFeature(ls)
	if name != "" {
		f.Properties["name"] = name
	}
	f.Properties["points"] = len(coords)
	return f
}
