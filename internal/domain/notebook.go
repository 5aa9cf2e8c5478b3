package domain

// Notebook is a named, colored grouping container for notes.
//
// Notes reference a notebook by id only - there is no ownership and no
// cascading delete. The "can't delete a non-empty notebook" rule is enforced
// by the notebooks service, not by the store.
type Notebook struct {
	Timestamps
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}
