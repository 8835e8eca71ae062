package dto

type EndpointResponse struct {
	Host     string `json:"host"`
	BaseURL  string `json:"base_url"`
	FellBack bool   `json:"fell_back"`
}
