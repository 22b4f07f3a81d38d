package model

import (
	"time"
)

type EmbedStats struct {
	Setup             time.Duration `json:"setup"`
	DataEmbedding     time.Duration `json:"data_embedding"`
	ContainerEncoding time.Duration `json:"container_encoding"`
}

type ExtractStats struct {
	Setup          time.Duration `json:"setup"`
	DataExtraction time.Duration `json:"data_extraction"`
}
