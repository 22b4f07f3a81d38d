package api

type InspectRequest struct {
	Image []byte `json:"image"`
}
