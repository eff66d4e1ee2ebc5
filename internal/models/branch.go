package models

// Filial da oficina (dado de referência, carregado uma vez)
type Branch struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
