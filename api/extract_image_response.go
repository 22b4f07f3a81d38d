package api

import "bsteg/pkg/model"

type ExtractImageResponse struct {
	Payload []byte             `json:"payload"`
	Stats   model.ExtractStats `json:"stats"`
}
