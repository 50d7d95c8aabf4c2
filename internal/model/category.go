package model

// Category is a lead category stored by the remote lead service.
// The JSON field names follow the service's wire format.
type Category struct {
	// ID is the service-assigned identifier.
	ID string `json:"_id"`

	// Name is the display text shown to the user.
	Name string `json:"category"`
}

// Option is a category rendered as a selectable dropdown entry.
type Option struct {
	// Value is the category ID.
	Value string `json:"value"`

	// Text is the display text. Selection is restored by matching this field.
	Text string `json:"text"`

	// Selected marks the previously selected category.
	Selected bool `json:"selected"`
}

// NewOptions renders categories as options, marking the one whose display
// text equals selected. At most one option is marked.
func NewOptions(categories []Category, selected string) []Option {
	options := make([]Option, 0, len(categories))
	marked := false
	for _, c := range categories {
		opt := Option{Value: c.ID, Text: c.Name}
		if !marked && selected != "" && c.Name == selected {
			opt.Selected = true
			marked = true
		}
		options = append(options, opt)
	}
	return options
}

// SelectedOption returns the selected option, if any.
func SelectedOption(options []Option) (Option, bool) {
	for _, o := range options {
		if o.Selected {
			return o, true
		}
	}
	return Option{}, false
}
