package dto

type StatusOptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
	Hex   string `json:"hex"`
}

type BranchDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type FilterOptionsDTO struct {
	Statuses []StatusOptionDTO `json:"statuses"`
	Branches []BranchDTO       `json:"branches"`
	Services []string          `json:"services"`
}
