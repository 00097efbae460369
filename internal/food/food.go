package food

import "math"

type Food struct {
	ID            int     `json:"foodId"`
	FoodName      string  `json:"foodName"`
	FoodBrand     *string `json:"foodBrand"`
	ServingSize   float64 `json:"servingSize"`
	ServingUnit   string  `json:"servingUnit"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Sodium        float64 `json:"sodium"`
}

// Nutrients holds per-serving values or sums of them.
type Nutrients struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Sodium        float64 `json:"sodium"`
}

// Scaled returns the nutrients of qty servings of f.
func (f Food) Scaled(qty float64) Nutrients {
	return Nutrients{
		Calories:      f.Calories * qty,
		Protein:       f.Protein * qty,
		Carbohydrates: f.Carbohydrates * qty,
		Fat:           f.Fat * qty,
		Sodium:        f.Sodium * qty,
	}
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories:      n.Calories + o.Calories,
		Protein:       n.Protein + o.Protein,
		Carbohydrates: n.Carbohydrates + o.Carbohydrates,
		Fat:           n.Fat + o.Fat,
		Sodium:        n.Sodium + o.Sodium,
	}
}

// Rounded trims every value to two decimals for display.
func (n Nutrients) Rounded() Nutrients {
	r := func(v float64) float64 { return math.Round(v*100) / 100 }
	return Nutrients{
		Calories:      r(n.Calories),
		Protein:       r(n.Protein),
		Carbohydrates: r(n.Carbohydrates),
		Fat:           r(n.Fat),
		Sodium:        r(n.Sodium),
	}
}
