package request_models

// PlanRouteRequest is the body of POST /route.
type PlanRouteRequest struct {
	Origin struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"origin" binding:"required"`
	Destination struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"destination" binding:"required"`
	Mode string `json:"mode"`
}
