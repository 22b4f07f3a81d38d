package api

import "bsteg/pkg/model"

type EmbedImageResponse struct {
	Image []byte           `json:"image"`
	Stats model.EmbedStats `json:"stats"`
}
