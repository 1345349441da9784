package models

// FallbackCategory is where blank or whitespace-only category names land.
const FallbackCategory = "Uncategorized"

// CategoryStyle holds the display styling of one category. ColorClass keeps
// the utility-class form the mobile UI renders with; IsCustom distinguishes
// user-created categories from the built-in seed set.
type CategoryStyle struct {
	ColorClass string `json:"color_class"`
	IsCustom   bool   `json:"is_custom"`
}

// DefaultCategories is the built-in seed set, in display order.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Entertainment",
	"Housing",
	"Health",
	"Others",
}

// DefaultCategoryStyles maps each built-in category to its fixed style.
var DefaultCategoryStyles = map[string]CategoryStyle{
	"Food":          {ColorClass: "bg-orange-100 text-orange-600"},
	"Transport":     {ColorClass: "bg-blue-100 text-blue-600"},
	"Shopping":      {ColorClass: "bg-purple-100 text-purple-600"},
	"Entertainment": {ColorClass: "bg-pink-100 text-pink-600"},
	"Housing":       {ColorClass: "bg-teal-100 text-teal-600"},
	"Health":        {ColorClass: "bg-rose-100 text-rose-600"},
	"Others":        {ColorClass: "bg-gray-100 text-gray-600"},
}

// CustomCategoryColors is the palette new custom categories draw from.
// A category keeps whichever color it was assigned at registration.
var CustomCategoryColors = []string{
	"bg-cyan-100 text-cyan-600",
	"bg-emerald-100 text-emerald-600",
	"bg-indigo-100 text-indigo-600",
	"bg-violet-100 text-violet-600",
	"bg-fuchsia-100 text-fuchsia-600",
	"bg-lime-100 text-lime-600",
	"bg-amber-100 text-amber-600",
}

// NeutralStyle is used when a transaction references a category that was
// somehow never registered.
var NeutralStyle = CategoryStyle{ColorClass: "bg-gray-100 text-gray-600"}

// RegistrySnapshot is the persisted form of the category registry. Order
// carries insertion order across reloads since JSON objects do not.
type RegistrySnapshot struct {
	Order     []string                 `json:"order"`
	Styles    map[string]CategoryStyle `json:"styles"`
	Hierarchy map[string][]string      `json:"hierarchy"`
}
