package admin_dto

// SaveHandlerRequest creates or renames a handler. Color is the display
// color used for visual grouping on the task board.
type SaveHandlerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Color string `json:"color" validate:"required,hexcolor"`
}

type SaveBuildingTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Icon string `json:"icon" validate:"required,max=8"`
}

type UpdateOwnedPropertyColorRequest struct {
	Color string `json:"color" validate:"required,hexcolor"`
}
