package combobox

var (
	apple  = Option{Label: "Apple", Value: "a"}
	banana = Option{Label: "Banana", Value: "b"}
	cherry = Option{Label: "Cherry", Value: "c"}
)

func fruits() []Option {
	return []Option{apple, banana}
}

func groupedFruits() []Option {
	return []Option{
		{Label: "Carrot", Value: "carrot", Group: "Vegetables"},
		{Label: "Apple", Value: "apple", Group: "Fruits"},
		{Label: "Water", Value: "water"},
		{Label: "Pea", Value: "pea", Group: "Vegetables"},
		{Label: "Banana", Value: "banana", Group: "Fruits", Disabled: true},
	}
}

func values(options []Option) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		out[i] = opt.Value
	}
	return out
}
