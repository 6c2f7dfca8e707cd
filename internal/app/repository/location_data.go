package repository

import (
	"github.com/mrcow/mrcow-backend/internal/app/model"
)

func everyDay(open, close string) map[string]model.DayHours {
	hours := make(map[string]model.DayHours, 7)
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		hours[day] = model.DayHours{Open: open, Close: close}
	}
	return hours
}

var franchiseLocations = []model.Location{
	{
		ID:   "aiea-pearlridge",
		Name: "Mr. Cow Corndog - Aiea",
		Address: model.Address{
			Street:  "98-1005 Moanalua Rd #527",
			City:    "Aiea",
			State:   "HI",
			ZipCode: "96701",
			Country: "USA",
		},
		Coordinates: model.Coordinates{Latitude: 21.3891, Longitude: -157.9298},
		Contact:     model.Contact{Phone: "(808) 487-0200"},
		Hours: func() map[string]model.DayHours {
			hours := everyDay("10:00", "21:00")
			hours["friday"] = model.DayHours{Open: "10:00", Close: "22:00"}
			hours["saturday"] = model.DayHours{Open: "10:00", Close: "22:00"}
			return hours
		}(),
		Features: []string{"Pearlridge Center", "Washington Prime", "Mall Location", "Hawaiian Favorites"},
		IsActive: true,
	},
	{
		ID:   "honolulu-ala-moana",
		Name: "Mr. Cow Corndog - Ala Moana",
		Address: model.Address{
			Street:  "1450 Ala Moana Blvd #1230",
			City:    "Honolulu",
			State:   "HI",
			ZipCode: "96814",
			Country: "USA",
		},
		Coordinates: model.Coordinates{Latitude: 21.2910, Longitude: -157.8436},
		Contact:     model.Contact{Phone: "(808) 941-5500"},
		Hours: func() map[string]model.DayHours {
			hours := everyDay("10:00", "20:00")
			hours["friday"] = model.DayHours{Open: "10:00", Close: "21:00"}
			hours["saturday"] = model.DayHours{Open: "10:00", Close: "21:00"}
			return hours
		}(),
		Features: []string{"Ala Moana Center", "Mall Location", "Food Court"},
		IsActive: true,
	},
	{
		ID:   "irvine-diamond-jamboree",
		Name: "Mr. Cow Corndog - Irvine",
		Address: model.Address{
			Street:  "2750 Alton Pkwy #117",
			City:    "Irvine",
			State:   "CA",
			ZipCode: "92606",
			Country: "USA",
		},
		Coordinates: model.Coordinates{Latitude: 33.6911, Longitude: -117.8304},
		Contact:     model.Contact{Phone: "(949) 555-0178"},
		Hours: func() map[string]model.DayHours {
			hours := everyDay("11:00", "21:00")
			hours["monday"] = model.DayHours{Closed: true}
			return hours
		}(),
		Features: []string{"Diamond Jamboree", "Late Night", "Korean Plaza"},
		IsActive: true,
	},
	{
		ID:   "fullerton-downtown",
		Name: "Mr. Cow Corndog - Fullerton",
		Address: model.Address{
			Street:  "101 N Harbor Blvd",
			City:    "Fullerton",
			State:   "CA",
			ZipCode: "92832",
			Country: "USA",
		},
		Coordinates: model.Coordinates{Latitude: 33.8704, Longitude: -117.9242},
		Contact:     model.Contact{Phone: "(714) 555-0142"},
		Hours:       everyDay("11:00", "22:00"),
		Features:    []string{"Downtown", "Street Parking"},
		// Temporarily shuttered for remodeling; kept for when it reopens.
		IsActive: false,
	},
}
