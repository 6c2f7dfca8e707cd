package repository

import (
	"github.com/mrcow/mrcow-backend/internal/app/model"
	"github.com/shopspring/decimal"
)

var corndogCustomizations = []model.CustomizationGroup{
	{
		Name:     "Coating",
		Options:  []string{"Sugar Coated (Recommended)", "Plain"},
		Required: true,
	},
	{
		Name: "Filling",
		Options: []string{
			"Whole Hot Dog",
			"Whole Mozzarella",
			"Half Mozzarella & Half Hot Dog",
			"Half Cheddar & Half Hot Dog",
			"Half Cheddar & Half Mozzarella",
		},
		Required: true,
	},
}

var drinkSizeCustomization = []model.CustomizationGroup{
	{
		Name:     "Size",
		Options:  []string{"16oz", "24oz"},
		Required: true,
	},
	{
		Name:    "Ice",
		Options: []string{"Regular Ice", "Less Ice", "No Ice"},
	},
}

var menuItems = []model.MenuItem{
	{
		ID:                   "mr-cow-classic",
		Name:                 "Mr. Cow Classic",
		KoreanName:           "기본 콘도그",
		Description:          "Basic style corn dog with crispy golden coating",
		Price:                decimal.NewFromFloat(5.50),
		Category:             model.CategoryCorndogs,
		Allergens:            []string{"gluten", "eggs"},
		IsPopular:            true,
		CustomizationOptions: corndogCustomizations,
		ImageURL:             "/assets/images/menu/mr-cow-classic.jpg",
	},
	{
		ID:                   "fried-potato",
		Name:                 "Fried Potato",
		KoreanName:           "감자 핫도그",
		Description:          "Wrapped with bite-size crispy potato fries",
		Price:                decimal.NewFromFloat(7.00),
		Category:             model.CategoryCorndogs,
		Allergens:            []string{"gluten", "eggs"},
		IsPopular:            true,
		CustomizationOptions: corndogCustomizations,
		ImageURL:             "/assets/images/menu/fried-potato.jpg",
	},
	{
		ID:                   "flaming-potato",
		Name:                 "Flaming Potato",
		KoreanName:           "플레이밍 포테이토",
		Description:          "Potato fries + Cheetos with spicy kick",
		Price:                decimal.NewFromFloat(8.00),
		Category:             model.CategoryCorndogs,
		Allergens:            []string{"gluten", "eggs", "dairy"},
		CustomizationOptions: corndogCustomizations,
		ImageURL:             "/assets/images/menu/flaming-potato.jpg",
	},
	{
		ID:          "yangnyeom-chicken",
		Name:        "Yangnyeom Fried Chicken",
		KoreanName:  "양념치킨",
		Description: "Double-fried chicken glazed in sweet and spicy sauce",
		Price:       decimal.NewFromFloat(12.50),
		Category:    model.CategoryFriedChicken,
		Allergens:   []string{"gluten", "soy"},
		IsPopular:   true,
		CustomizationOptions: []model.CustomizationGroup{
			{
				Name:     "Spice Level",
				Options:  []string{"Mild", "Medium", "Korean Fire"},
				Required: true,
			},
		},
		ImageURL: "/assets/images/menu/yangnyeom-chicken.jpg",
	},
	{
		ID:          "bulgogi-bowl",
		Name:        "Bulgogi Rice Bowl",
		KoreanName:  "불고기 덮밥",
		Description: "Marinated beef over steamed rice with pickled vegetables",
		Price:       decimal.NewFromFloat(11.00),
		Category:    model.CategoryRiceBowls,
		Allergens:   []string{"soy", "sesame"},
		ImageURL:    "/assets/images/menu/bulgogi-bowl.jpg",
	},
	{
		ID:          "tteokbokki",
		Name:        "Tteokbokki",
		KoreanName:  "떡볶이",
		Description: "Chewy rice cakes simmered in gochujang sauce",
		Price:       decimal.NewFromFloat(8.00),
		Category:    model.CategorySides,
		Allergens:   []string{"gluten", "soy"},
		DietaryInfo: []string{"vegetarian"},
		IsPopular:   true,
		ImageURL:    "/assets/images/menu/tteokbokki.jpg",
	},
	{
		ID:          "hotteok",
		Name:        "Hotteok",
		KoreanName:  "호떡",
		Description: "Sweet pancake filled with brown sugar and nuts",
		Price:       decimal.NewFromFloat(4.50),
		Category:    model.CategoryDesserts,
		Allergens:   []string{"gluten", "nuts"},
		DietaryInfo: []string{"vegetarian"},
		ImageURL:    "/assets/images/menu/hotteok.jpg",
	},
	{
		ID:                   "strawberry-ade",
		Name:                 "Strawberry Ade",
		KoreanName:           "딸기에이드",
		Description:          "Sparkling strawberry drink with fresh fruit",
		Price:                decimal.NewFromFloat(5.00),
		Category:             model.CategoryDrinks,
		DietaryInfo:          []string{"vegan"},
		CustomizationOptions: drinkSizeCustomization,
		ImageURL:             "/assets/images/menu/strawberry-ade.jpg",
	},
	{
		ID:                   "dalgona-latte",
		Name:                 "Dalgona Latte",
		KoreanName:           "달고나 라떼",
		Description:          "Whipped honeycomb coffee over milk",
		Price:                decimal.NewFromFloat(5.00),
		Category:             model.CategoryDrinks,
		Allergens:            []string{"dairy"},
		IsPopular:            true,
		CustomizationOptions: drinkSizeCustomization,
		ImageURL:             "/assets/images/menu/dalgona-latte.jpg",
	},
}
