package domain

type MenuItem struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Category        string   `json:"category"`
	MealType        string   `json:"mealType"`
	Image           string   `json:"image,omitempty"`
	Ingredients     []string `json:"ingredients"`
	Allergens       []string `json:"allergens"`
	Condiments      []string `json:"condiments"`
	Available       bool     `json:"available"`
	PreparationTime string   `json:"preparationTime"`
	Calories        int      `json:"calories"`
	SpicyLevel      int      `json:"spicyLevel"`
	IsVegetarian    bool     `json:"isVegetarian"`
	IsVegan         bool     `json:"isVegan"`
	IsGlutenFree    bool     `json:"isGlutenFree"`
}
