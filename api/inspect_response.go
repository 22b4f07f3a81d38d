package api

import "bsteg/pkg/model"

type InspectResponse struct {
	Report model.InspectReport `json:"report"`
}
