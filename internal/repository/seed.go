package repository

import (
	"time"

	"hamshark/internal/model"
)

// Sample data used by the in-memory repositories. IDs are stable so that
// clients and tests can reference them directly.

func nutrition(calories, protein, carbs, fat, fiber, sodium float64) *model.Nutrition {
	return &model.Nutrition{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    fiber,
		Sodium:   sodium,
	}
}

func seedMenuItems() []model.MenuItem {
	return []model.MenuItem{
		{
			ID: "ni1", Name: "Paneer Tikka Wrap",
			Description: "Grilled paneer with fresh vegetables and mint chutney",
			Price:       "180.00", Category: "Wraps", Cuisine: "North Indian",
			IsVegetarian: true, SpiceLevel: "medium",
			Nutrition:   nutrition(420, 28, 32, 18, 8, 680),
			Ingredients: []string{"paneer", "bell peppers", "onions", "mint chutney", "whole wheat wrap"},
			Allergens:   []string{"dairy", "gluten"},
			Tags:        []string{"high-protein", "spicy", "vegetarian"},
			IsAvailable: true,
		},
		{
			ID: "ni2", Name: "Butter Chicken",
			Description: "Rich tomato-based curry with tender chicken pieces",
			Price:       "280.00", Category: "Curry", Cuisine: "North Indian",
			SpiceLevel:  "medium",
			Nutrition:   nutrition(520, 35, 15, 24, 3, 890),
			Ingredients: []string{"chicken", "tomato sauce", "cream", "butter", "spices"},
			Allergens:   []string{"dairy"},
			Tags:        []string{"popular", "high-protein", "non-vegetarian"},
			IsAvailable: true,
		},
		{
			ID: "ni3", Name: "Dal Makhani",
			Description: "Creamy black lentils cooked in rich tomato gravy",
			Price:       "200.00", Category: "Dal", Cuisine: "North Indian",
			IsVegetarian: true, SpiceLevel: "mild",
			Nutrition:   nutrition(340, 18, 45, 12, 15, 650),
			Ingredients: []string{"black lentils", "kidney beans", "cream", "tomato", "ginger-garlic"},
			Allergens:   []string{"dairy"},
			Tags:        []string{"comfort-food", "protein-rich", "creamy"},
			IsAvailable: true,
		},
		{
			ID: "ni5", Name: "Rajma Chawal",
			Description: "Kidney bean curry served with steamed basmati rice",
			Price:       "140.00", Category: "Rice Bowl", Cuisine: "North Indian",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "medium",
			Nutrition:   nutrition(460, 20, 85, 8, 18, 580),
			Ingredients: []string{"kidney beans", "basmati rice", "onion", "tomato", "cumin"},
			Allergens:   []string{},
			Tags:        []string{"healthy", "protein-rich", "student-combo"},
			IsAvailable: true,
		},
		{
			ID: "ni8", Name: "Chicken Biryani",
			Description: "Aromatic basmati rice layered with spiced chicken",
			Price:       "320.00", Category: "Biryani", Cuisine: "North Indian",
			SpiceLevel:  "medium",
			Nutrition:   nutrition(680, 42, 78, 22, 4, 1020),
			Ingredients: []string{"chicken", "basmati rice", "saffron", "yogurt", "fried onions"},
			Allergens:   []string{"dairy"},
			Tags:        []string{"chef-special", "festive", "aromatic"},
			IsAvailable: true,
		},
		{
			ID: "ni13", Name: "Tandoori Chicken",
			Description: "Marinated chicken grilled in traditional tandoor",
			Price:       "240.00", Category: "Tandoor", Cuisine: "North Indian",
			SpiceLevel:  "medium",
			Nutrition:   nutrition(380, 45, 8, 18, 2, 920),
			Ingredients: []string{"chicken", "yogurt", "red chili", "garam masala", "lemon"},
			Allergens:   []string{"dairy"},
			Tags:        []string{"grilled", "smoky", "protein-rich"},
			IsAvailable: true,
		},
		{
			ID: "ni20", Name: "Vegetable Biryani",
			Description: "Fragrant basmati rice with mixed vegetables and spices",
			Price:       "180.00", Category: "Biryani", Cuisine: "North Indian",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "medium",
			Nutrition:   nutrition(420, 14, 78, 8, 12, 680),
			Ingredients: []string{"basmati rice", "mixed vegetables", "saffron", "mint", "fried onions"},
			Allergens:   []string{},
			Tags:        []string{"aromatic", "healthy", "colorful"},
			IsAvailable: true,
		},
		{
			ID: "si1", Name: "Masala Dosa",
			Description: "Crispy dosa with spiced potato filling and chutney",
			Price:       "150.00", Category: "Dosa", Cuisine: "South Indian",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "mild",
			Nutrition:   nutrition(380, 12, 68, 8, 6, 420),
			Ingredients: []string{"rice batter", "urad dal", "potato", "spices", "coconut chutney"},
			Allergens:   []string{},
			Tags:        []string{"student-combo", "traditional", "gluten-free"},
			IsAvailable: true,
		},
		{
			ID: "si2", Name: "Plain Dosa",
			Description: "Crispy golden dosa served with sambar and chutneys",
			Price:       "80.00", Category: "Dosa", Cuisine: "South Indian",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "mild",
			Nutrition:   nutrition(280, 8, 52, 4, 4, 320),
			Ingredients: []string{"rice", "urad dal", "fenugreek seeds", "salt"},
			Allergens:   []string{},
			Tags:        []string{"light", "crispy", "traditional"},
			IsAvailable: true,
		},
		{
			ID: "si4", Name: "Idli Sambar",
			Description: "Steamed rice cakes served with lentil soup and chutneys",
			Price:       "100.00", Category: "Idli", Cuisine: "South Indian",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "mild",
			Nutrition:   nutrition(240, 12, 48, 2, 8, 420),
			Ingredients: []string{"rice", "urad dal", "toor dal", "vegetables", "tamarind"},
			Allergens:   []string{},
			Tags:        []string{"healthy", "light", "protein-rich"},
			IsAvailable: true,
		},
		{
			ID: "bg1", Name: "Fish Curry",
			Description: "Traditional Bengali fish curry with mustard oil",
			Price:       "240.00", Category: "Curry", Cuisine: "Bengali",
			SpiceLevel:  "medium",
			Nutrition:   nutrition(380, 32, 12, 24, 3, 820),
			Ingredients: []string{"fish", "mustard oil", "turmeric", "green chili", "ginger"},
			Allergens:   []string{},
			Tags:        []string{"traditional", "omega-3-rich", "authentic"},
			IsAvailable: true,
		},
		{
			ID: "bg2", Name: "Aloo Posto",
			Description: "Potatoes in poppy seed paste, a Bengali specialty",
			Price:       "140.00", Category: "Curry", Cuisine: "Bengali",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "mild",
			Nutrition:   nutrition(320, 8, 48, 12, 6, 480),
			Ingredients: []string{"potato", "poppy seeds", "mustard oil", "green chili", "nigella seeds"},
			Allergens:   []string{},
			Tags:        []string{"unique", "nutty", "traditional"},
			IsAvailable: true,
		},
		{
			ID: "bg4", Name: "Mishti Doi",
			Description: "Sweet yogurt, the classic Bengali dessert",
			Price:       "80.00", Category: "Dessert", Cuisine: "Bengali",
			IsVegetarian: true, SpiceLevel: "none",
			Nutrition:   nutrition(180, 8, 28, 4, 0, 120),
			Ingredients: []string{"milk", "sugar", "yogurt culture", "cardamom"},
			Allergens:   []string{"dairy"},
			Tags:        []string{"sweet", "cooling", "probiotic"},
			IsAvailable: true,
		},
		{
			ID: "gj1", Name: "Gujarati Thali",
			Description: "Complete Gujarati meal with dal, vegetables, roti, rice",
			Price:       "180.00", Category: "Thali", Cuisine: "Gujarati",
			IsVegetarian: true, SpiceLevel: "mild",
			Nutrition:   nutrition(650, 24, 98, 18, 16, 1020),
			Ingredients: []string{"dal", "vegetables", "roti", "rice", "pickles", "papad"},
			Allergens:   []string{"gluten", "dairy"},
			Tags:        []string{"complete-meal", "sweet-salty", "traditional"},
			IsAvailable: true,
		},
		{
			ID: "gj2", Name: "Dhokla",
			Description: "Steamed gram flour cake with mustard tempering",
			Price:       "60.00", Category: "Snacks", Cuisine: "Gujarati",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "mild",
			Nutrition:   nutrition(180, 8, 32, 3, 5, 420),
			Ingredients: []string{"gram flour", "ginger", "green chili", "mustard seeds", "curry leaves"},
			Allergens:   []string{},
			Tags:        []string{"healthy", "steamed", "protein-rich"},
			IsAvailable: true,
		},
		{
			ID: "sf1", Name: "Pani Puri",
			Description: "Crispy shells filled with spiced water and chutneys",
			Price:       "50.00", Category: "Chaat", Cuisine: "Street Food",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "hot",
			Nutrition:   nutrition(120, 4, 24, 2, 3, 580),
			Ingredients: []string{"semolina shells", "tamarind water", "mint chutney", "chickpeas", "potato"},
			Allergens:   []string{},
			Tags:        []string{"tangy", "crispy", "popular"},
			IsAvailable: true,
		},
		{
			ID: "sf3", Name: "Vada Pav",
			Description: "Spiced potato dumpling in bread with chutneys",
			Price:       "40.00", Category: "Street Food", Cuisine: "Street Food",
			IsVegetarian: true, SpiceLevel: "hot",
			Nutrition:   nutrition(380, 10, 58, 14, 6, 820),
			Ingredients: []string{"potato", "gram flour", "bread", "green chutney", "garlic chutney"},
			Allergens:   []string{"gluten"},
			Tags:        []string{"mumbai-special", "filling", "spicy"},
			IsAvailable: true,
		},
		{
			ID: "sf5", Name: "Aloo Tikki",
			Description: "Crispy potato patties with chutneys",
			Price:       "80.00", Category: "Street Food", Cuisine: "Street Food",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "medium",
			Nutrition:   nutrition(280, 6, 42, 10, 5, 520),
			Ingredients: []string{"potato", "spices", "onion", "mint chutney", "tamarind chutney"},
			Allergens:   []string{},
			Tags:        []string{"crispy", "flavorful", "popular"},
			IsAvailable: true,
		},
		{
			ID: "bd1", Name: "Mango Lassi",
			Description: "Creamy yogurt drink with fresh mango pulp",
			Price:       "80.00", Category: "Beverage", Cuisine: "Beverages & Desserts",
			IsVegetarian: true, SpiceLevel: "none",
			Nutrition:   nutrition(180, 6, 32, 4, 2, 120),
			Ingredients: []string{"mango pulp", "yogurt", "sugar", "cardamom", "ice"},
			Allergens:   []string{"dairy"},
			Tags:        []string{"refreshing", "creamy", "summer-special"},
			IsAvailable: true,
		},
		{
			ID: "bd2", Name: "Masala Chai",
			Description: "Spiced Indian tea with milk and aromatic spices",
			Price:       "30.00", Category: "Beverage", Cuisine: "Beverages & Desserts",
			IsVegetarian: true, SpiceLevel: "mild",
			Nutrition:   nutrition(80, 3, 12, 2, 0, 40),
			Ingredients: []string{"tea leaves", "milk", "ginger", "cardamom", "cloves"},
			Allergens:   []string{"dairy"},
			Tags:        []string{"warming", "energizing", "traditional"},
			IsAvailable: true,
		},
		{
			ID: "bd3", Name: "Gulab Jamun",
			Description: "Soft milk dumplings in sugar syrup",
			Price:       "100.00", Category: "Dessert", Cuisine: "Beverages & Desserts",
			IsVegetarian: true, SpiceLevel: "none",
			Nutrition:   nutrition(320, 6, 52, 12, 1, 80),
			Ingredients: []string{"milk solids", "flour", "sugar syrup", "cardamom", "rose water"},
			Allergens:   []string{"dairy", "gluten"},
			Tags:        []string{"sweet", "festival", "soft"},
			IsAvailable: true,
		},
		{
			ID: "bd4", Name: "Fresh Lime Water",
			Description: "Refreshing lime juice with mint and salt",
			Price:       "40.00", Category: "Beverage", Cuisine: "Beverages & Desserts",
			IsVegetarian: true, IsVegan: true, SpiceLevel: "none",
			Nutrition:   nutrition(40, 1, 10, 0, 1, 220),
			Ingredients: []string{"lime juice", "mint", "salt", "black salt", "water"},
			Allergens:   []string{},
			Tags:        []string{"refreshing", "hydrating", "vitamin-c"},
			IsAvailable: true,
		},
	}
}

func seedTruckLocations(now time.Time) []model.TruckLocation {
	arrival := now.Add(45 * time.Minute)
	weekdays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

	schedule := func(start, end string) []model.ScheduleSlot {
		slots := make([]model.ScheduleSlot, len(weekdays))
		for i, day := range weekdays {
			slots[i] = model.ScheduleSlot{Day: day, StartTime: start, EndTime: end, IsOpen: true}
		}
		return slots
	}

	return []model.TruckLocation{
		{
			ID:            "loc1",
			Name:          "Tech Park - Sector 5",
			Address:       "Sector 5, IT Park, Mumbai",
			Latitude:      "19.0760",
			Longitude:     "72.8777",
			Schedule:      schedule("11:30", "14:30"),
			CurrentStatus: model.TruckStatusOpen,
			OrdersToday:   24,
		},
		{
			ID:               "loc2",
			Name:             "University Campus",
			Address:          "Main Campus, Mumbai University",
			Latitude:         "19.0176",
			Longitude:        "72.8562",
			Schedule:         schedule("15:00", "20:00"),
			CurrentStatus:    model.TruckStatusComing,
			EstimatedArrival: &arrival,
			OrdersToday:      18,
		},
	}
}

func seedMembershipPlans() []model.MembershipPlan {
	return []model.MembershipPlan{
		{
			ID: "plan1", Name: "Student Saver Plan",
			Description: "Perfect for college students",
			Price:       "2499.00", Duration: 30,
			Features:       []string{"30 meals included", "Free delivery", "Student pricing", "Flexible schedule"},
			TargetAudience: "students",
			IsActive:       true,
		},
		{
			ID: "plan2", Name: "IT Pro Plan",
			Description: "Designed for professionals",
			Price:       "3999.00", Duration: 30,
			Features:       []string{"Custom lunch packs", "Office delivery", "Healthy options", "Macro tracking"},
			TargetAudience: "professionals",
			IsActive:       true,
		},
		{
			ID: "plan3", Name: "Shark Club",
			Description: "Premium membership",
			Price:       "199.00", Duration: 30,
			Features:       []string{"Free delivery always", "Priority queue", "Exclusive dishes", "Special events"},
			TargetAudience: "premium",
			IsActive:       true,
		},
	}
}

func seedLoyaltyRewards() []model.LoyaltyReward {
	return []model.LoyaltyReward{
		{
			ID: "reward1", Name: "Free Healthy Drink",
			Description: "Complimentary lemon detox water",
			PointsCost:  50, Category: "beverages", Tier: model.TierBronze,
			IsActive: true,
		},
		{
			ID: "reward2", Name: "Free Dessert",
			Description: "Choice of traditional Indian dessert",
			PointsCost:  100, Category: "desserts", Tier: model.TierSilver,
			IsActive: true,
		},
		{
			ID: "reward3", Name: "Free Meal Coupon",
			Description: "Any meal under 300 free",
			PointsCost:  250, Category: "meals", Tier: model.TierGold,
			IsActive: true,
		},
	}
}
