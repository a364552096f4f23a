package todo

// Option is a selectable choice of a select or radio input.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// StateOptions are the choices of the state select. The empty value is the placeholder.
var StateOptions = []Option{
	{Value: "", Label: "Select"},
	{Value: "completed", Label: "Completed"},
	{Value: "active", Label: "Active"},
	{Value: "deleted", Label: "Deleted"},
}

// RadioOptions are the choices of the radio group.
var RadioOptions = []Option{
	{Value: "a", Label: "item 1"},
	{Value: "b", Label: "item 2"},
	{Value: "c", Label: "item 3"},
}
