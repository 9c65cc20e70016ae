package dto

type RouteResponse struct {
	Name      string   `json:"name"`
	Waypoints []string `json:"waypoints"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
