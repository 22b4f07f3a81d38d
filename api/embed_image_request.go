package api

type EmbedImageRequest struct {
	Image   []byte `json:"image"`
	Payload []byte `json:"payload"`
}
