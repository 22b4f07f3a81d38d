package api

type ExtractImageRequest struct {
	Image []byte `json:"image"`
}
