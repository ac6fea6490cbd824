package response

import "cleaning_coop/internal/domain/entities"

type RegionResponse struct {
	Province string `json:"province"`
	District string `json:"district"`
	Key      string `json:"key"`
}

func FromRegions(regions []entities.Region) []RegionResponse {
	out := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, RegionResponse{Province: r.Province, District: r.District, Key: r.Key()})
	}
	return out
}
