package trip

// Static data for the Southwest road trip: Phoenix, Las Vegas, the Grand
// Canyon, Sedona and Glendale over four days. Coordinates are hand curated;
// a few waypoints are approximate.

// Locations returns every named point of the trip.
func Locations() []Location {
	return []Location{
		{Name: "Phoenix Airport", Latitude: 33.4352, Longitude: -112.0101, Category: CategoryStart},
		{Name: "Route 93", Latitude: 34.7000, Longitude: -113.3000, Category: CategoryWaypoint},
		{Name: "Henderson", Latitude: 36.0395, Longitude: -114.9817, Category: CategoryStop},
		{Name: "Hoover Dam", Latitude: 36.0160, Longitude: -114.7377, Category: CategoryHighlight},
		{Name: "Bypass Bridge", Latitude: 36.0145, Longitude: -114.7390, Category: CategoryWaypoint},
		{Name: "Las Vegas Strip", Latitude: 36.1147, Longitude: -115.1728, Category: CategoryStop},
		{Name: "Grand Canyon West", Latitude: 35.9897, Longitude: -113.8214, Category: CategoryHighlight},
		{Name: "Grand Canyon South", Latitude: 36.0544, Longitude: -112.1401, Category: CategoryHighlight},
		{Name: "Flagstaff", Latitude: 35.1983, Longitude: -111.6513, Category: CategoryStop},
		{Name: "Sedona", Latitude: 34.8697, Longitude: -111.7610, Category: CategoryStop},
		{Name: "Cathedral Rock", Latitude: 34.8189, Longitude: -111.7925, Category: CategoryHighlight},
		{Name: "Chapel of Holy Cross", Latitude: 34.8322, Longitude: -111.7663, Category: CategoryHighlight},
		{Name: "Bell Rock", Latitude: 34.8016, Longitude: -111.7613, Category: CategoryHighlight},
		{Name: "Glendale", Latitude: 33.5387, Longitude: -112.1860, Category: CategoryStop},
		{Name: "St. Thomas Orthodox Church", Latitude: 33.4660, Longitude: -112.0310, Category: CategoryHighlight},
	}
}

// Segments returns the four daily route segments in day order.
func Segments() []RouteSegment {
	return []RouteSegment{
		{
			Day:    1,
			Label:  "Day 1: PHX to Vegas",
			Color:  "#E91E63",
			Weight: 4,
			Stops:  []string{"Phoenix Airport", "Route 93", "Henderson", "Hoover Dam", "Las Vegas Strip"},
		},
		{
			Day:    2,
			Label:  "Day 2: Vegas to Flagstaff",
			Color:  "#9C27B0",
			Weight: 4,
			Stops:  []string{"Las Vegas Strip", "Hoover Dam", "Grand Canyon West", "Grand Canyon South", "Flagstaff"},
		},
		{
			Day:    3,
			Label:  "Day 3: Sedona Exploration",
			Color:  "#FF9800",
			Weight: 4,
			Stops:  []string{"Flagstaff", "Sedona", "Cathedral Rock", "Chapel of Holy Cross", "Bell Rock"},
		},
		{
			Day:    4,
			Label:  "Day 4: Return to Phoenix",
			Color:  "#4CAF50",
			Weight: 4,
			Stops:  []string{"Sedona", "Glendale", "St. Thomas Orthodox Church", "Phoenix Airport"},
		},
	}
}

// Plans returns the narrative content for each day.
func Plans() []DayPlan {
	return []DayPlan{
		{
			Index:         1,
			Title:         "Day 1: Phoenix to Las Vegas",
			ProbeLocation: "Las Vegas Strip",
			Sections: []Section{
				{
					Heading: "🛫 Morning: Arrival & Drive",
					Items: []string{
						"Start at Phoenix Sky Harbor (PHX).",
						"Take Route 93 North towards Las Vegas (The Joshua Tree Highway).",
					},
				},
				{
					Heading: "🚧 Mid-Day: Engineering Marvels",
					Items: []string{
						"Stop at Henderson for lunch.",
						"Option A: Visit Hoover Dam directly (Security check required).",
						"Option B: Take the Bypass Bridge (Sunset/Mike O'Callaghan) for the view without stopping.",
					},
				},
				{
					Heading: "🎰 Evening: The Strip",
					Items: []string{
						"Arrive in Las Vegas.",
						"Check into hotel on the Strip.",
						"Dinner and Bellagio Fountains.",
					},
				},
			},
		},
		{
			Index:         2,
			Title:         "Day 2: The Grand Loop",
			ProbeLocation: "Grand Canyon South",
			Sections: []Section{
				{
					Heading: "🏜️ Morning: West Rim",
					Items: []string{
						"Depart Las Vegas early (7:00 AM).",
						"Drive to Grand Canyon West (Skywalk).",
						"Note: This is Hualapai tribal land, requires separate entry fee.",
					},
				},
				{
					Heading: "🌲 Afternoon: South Rim",
					Items: []string{
						"Long drive East to Grand Canyon South Rim (National Park).",
						"Visit Mather Point and Yavapai Geology Museum.",
						"Sunset at Hopi Point.",
					},
				},
				{
					Heading: "🛌 Evening: Flagstaff",
					Items: []string{
						"Drive South to Flagstaff, AZ.",
						"Dinner in historic downtown Flagstaff (Route 66).",
					},
				},
			},
		},
		{
			Index:         3,
			Title:         "Day 3: Red Rock Country",
			ProbeLocation: "Sedona",
			Sections: []Section{
				{
					Heading: "⛰️ Morning: The Vortexes",
					Items: []string{
						"Drive Hwy 89A (Scenic Switchbacks) from Flagstaff to Sedona.",
						"Hike or view Cathedral Rock.",
						"Visit Bell Rock.",
					},
				},
				{
					Heading: "⛪ Afternoon: Architecture & Views",
					Items: []string{
						"Visit Chapel of the Holy Cross (built into the red rocks).",
						"Lunch at Tlaquepaque Arts & Shopping Village.",
					},
				},
			},
		},
		{
			Index:         4,
			Title:         "Day 4: Glendale & Departure",
			ProbeLocation: "Glendale",
			Sections: []Section{
				{
					Heading: "🏈 Morning: Glendale",
					Items: []string{
						"Drive South on I-17 from Sedona to Glendale.",
						"Visit Historic Downtown Glendale or Westgate Entertainment District.",
					},
				},
				{
					Heading: "⛪ Afternoon: St. Thomas Orthodox Church",
					Items: []string{
						"Head to 2317 E Yale St, Phoenix, AZ 85006.",
						"Visit St. Thomas Orthodox Church.",
					},
				},
				{
					Heading: "🛫 Late Afternoon: Departure",
					Items: []string{
						"Short drive to Phoenix Sky Harbor (PHX).",
						"Return Rental Car & Fly Out.",
					},
				},
			},
		},
	}
}

// Stats are the fixed headline numbers shown alongside the itinerary.
type Stats struct {
	TotalDistance string   `json:"total_distance"`
	DrivingTime   string   `json:"driving_time"`
	States        []string `json:"states"`
}

// TripStats returns the headline stats for the whole trip.
func TripStats() Stats {
	return Stats{
		TotalDistance: "~800 miles",
		DrivingTime:   "~16 hours",
		States:        []string{"AZ", "NV"},
	}
}
