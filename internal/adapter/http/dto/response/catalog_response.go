package response

import "agendamento_cras/internal/domain/entities"

type ServiceTypesResponse struct {
	Items []entities.ServiceType `json:"items"`
}

type NeighborhoodsResponse struct {
	Items []string `json:"items"`
}
