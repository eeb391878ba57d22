package composer

// Ingredient is one entry of the fixed build-your-own-meal reference
// table: a unit price and the per-unit macro contributions.
type Ingredient struct {
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

// Ingredients is the reference list offered by the meal builder. The list
// is fixed; selections reference entries by name.
var Ingredients = []Ingredient{
	{Name: "Paneer", Price: 30, Protein: 8, Carbs: 2, Fat: 6, Calories: 80},
	{Name: "Chicken", Price: 50, Protein: 12, Carbs: 0, Fat: 4, Calories: 80},
	{Name: "Rice", Price: 15, Protein: 2, Carbs: 25, Fat: 1, Calories: 115},
	{Name: "Quinoa", Price: 25, Protein: 4, Carbs: 20, Fat: 2, Calories: 110},
	{Name: "Mixed Vegetables", Price: 20, Protein: 3, Carbs: 8, Fat: 1, Calories: 50},
	{Name: "Lentils", Price: 18, Protein: 9, Carbs: 20, Fat: 1, Calories: 115},
	{Name: "Spinach", Price: 12, Protein: 3, Carbs: 4, Fat: 0, Calories: 25},
	{Name: "Tomatoes", Price: 10, Protein: 1, Carbs: 4, Fat: 0, Calories: 20},
	{Name: "Onions", Price: 8, Protein: 1, Carbs: 6, Fat: 0, Calories: 25},
	{Name: "Bell Peppers", Price: 15, Protein: 1, Carbs: 5, Fat: 0, Calories: 25},
}

// lookup returns the reference entries matching the selected names, in
// reference-table order. Unknown names contribute nothing.
func lookup(selected []string) []Ingredient {
	wanted := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		wanted[name] = struct{}{}
	}
	var out []Ingredient
	for _, ing := range Ingredients {
		if _, ok := wanted[ing.Name]; ok {
			out = append(out, ing)
		}
	}
	return out
}
