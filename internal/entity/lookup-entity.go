package entity

// HandlerEntity is a staff member responsible for properties and tasks.
// Properties and tasks reference handlers by name, not by ID; the relation is
// deliberately unenforced.
type HandlerEntity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type BuildingTypeEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
