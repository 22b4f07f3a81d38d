package server

import (
	"bsteg/pkg/model"
)

type humanizedEmbedStats struct {
	model.EmbedStats
	SetupHuman             string `json:"setup_human"`
	DataEmbeddingHuman     string `json:"data_embedding_human"`
	ContainerEncodingHuman string `json:"container_encoding_human"`
}

type humanizedExtractStats struct {
	model.ExtractStats
	SetupHuman          string `json:"setup_human"`
	DataExtractionHuman string `json:"data_extraction_human"`
}

func toHumanizedEmbedStats(embedStats model.EmbedStats) humanizedEmbedStats {
	return humanizedEmbedStats{
		EmbedStats:             embedStats,
		SetupHuman:             embedStats.Setup.String(),
		DataEmbeddingHuman:     embedStats.DataEmbedding.String(),
		ContainerEncodingHuman: embedStats.ContainerEncoding.String(),
	}
}

func toHumanizedExtractStats(extractStats model.ExtractStats) humanizedExtractStats {
	return humanizedExtractStats{
		ExtractStats:        extractStats,
		SetupHuman:          extractStats.Setup.String(),
		DataExtractionHuman: extractStats.DataExtraction.String(),
	}
}
