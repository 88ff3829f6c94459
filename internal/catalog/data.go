package catalog

import (
	"time"

	"github.com/PrathameshWCE/Offcentre/internal/model"
)

var places = []model.Place{
	{
		ID:          "1",
		Name:        "Hidden Waterfall Trail",
		City:        "Pune",
		State:       "Maharashtra",
		Latitude:    18.5204,
		Longitude:   73.8567,
		Tags:        []string{"adventure", "nature", "trek"},
		Rating:      4.8,
		Image:       "https://images.unsplash.com/photo-1549880338-65ddcdfd017b?w=800&q=80",
		Description: "A beautiful hidden waterfall perfect for adventure seekers",
	},
	{
		ID:          "2",
		Name:        "Cozy Corner Café",
		City:        "Mumbai",
		State:       "Maharashtra",
		Latitude:    19.0760,
		Longitude:   72.8777,
		Tags:        []string{"chill", "café", "food"},
		Rating:      4.6,
		Image:       "https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=800&q=80",
		Description: "Perfect spot for coffee and conversation",
	},
	{
		ID:          "3",
		Name:        "Gateway of India",
		City:        "Mumbai",
		State:       "Maharashtra",
		Latitude:    18.9220,
		Longitude:   72.8347,
		Tags:        []string{"tourist", "historical", "landmark"},
		Rating:      4.9,
		Image:       "https://images.unsplash.com/photo-1570168007204-dfb528c6958f?w=800&q=80",
		Description: "Iconic historical monument",
	},
	{
		ID:          "4",
		Name:        "Sunset Beach",
		City:        "Goa",
		State:       "Goa",
		Latitude:    15.2993,
		Longitude:   74.1240,
		Tags:        []string{"chill", "beach", "sunset"},
		Rating:      4.7,
		Image:       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&q=80",
		Description: "Beautiful beach with stunning sunsets",
	},
	{
		ID:          "5",
		Name:        "Mountain View Café",
		City:        "Lonavala",
		State:       "Maharashtra",
		Latitude:    18.7546,
		Longitude:   73.4062,
		Tags:        []string{"café", "family-friendly"},
		Rating:      4.6,
		Image:       "https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=400&q=80",
		Description: "Hillside café with valley views",
	},
	{
		ID:          "6",
		Name:        "Ancient Fort",
		City:        "Pune",
		State:       "Maharashtra",
		Latitude:    18.3664,
		Longitude:   73.7557,
		Tags:        []string{"historical", "photography"},
		Rating:      4.9,
		Image:       "https://images.unsplash.com/photo-1570168007204-dfb528c6958f?w=400&q=80",
		Description: "Hilltop fort with panoramic views",
	},
	{
		ID:          "7",
		Name:        "Forest Trail",
		City:        "Mulshi",
		State:       "Maharashtra",
		Latitude:    18.5156,
		Longitude:   73.5121,
		Tags:        []string{"trek", "nature"},
		Rating:      4.5,
		Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&q=80",
		Description: "Shaded forest walk through the western ghats",
	},
	{
		ID:          "8",
		Name:        "Lakeside Retreat",
		City:        "Pawna",
		State:       "Maharashtra",
		Latitude:    18.6745,
		Longitude:   73.4472,
		Tags:        []string{"nature", "photography"},
		Rating:      4.8,
		Image:       "https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=400&q=80",
		Description: "Quiet lakeside spot for a slow weekend",
	},
}

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

var reviews = map[string]PlaceReviews{
	"1": {
		Blogs: []model.Review{
			{
				ID:      "1",
				Author:  "Rajesh Kumar",
				Content: "This place is absolutely amazing! The trek is moderate and the waterfall view is breathtaking. Best time to visit is during monsoon season when the water flow is at its peak.",
				Upvotes: 24, Downvotes: 2, Comments: 5,
				PostedAt: daysAgo(3),
			},
			{
				ID:      "2",
				Author:  "Priya Sharma",
				Content: "Went there last weekend with my family. The trail is well-marked and there are plenty of spots to rest. Carry enough water and snacks!",
				Upvotes: 18, Downvotes: 1, Comments: 3,
				PostedAt: daysAgo(7),
			},
		},
		Tips: []model.Review{
			{
				ID:      "1",
				Author:  "Arjun Patel",
				Content: "Start early morning to avoid crowd and heat. Wear good trekking shoes with grip as the rocks can be slippery!",
				Upvotes: 15, Downvotes: 0, Comments: 2,
				PostedAt: daysAgo(5),
			},
		},
	},
	"2": {
		Blogs: []model.Review{
			{
				ID:      "1",
				Author:  "Neha Desai",
				Content: "This café has the most amazing ambience! The cold coffee is to die for and their sandwiches are freshly made.",
				Upvotes: 32, Downvotes: 1, Comments: 8,
				PostedAt: daysAgo(2),
			},
			{
				ID:      "2",
				Author:  "Vikram Mehta",
				Content: "Been coming here for 2 years now. Their masala chai and cheese toast combo is the best breakfast option in the area.",
				Upvotes: 28, Downvotes: 0, Comments: 6,
				PostedAt: daysAgo(7),
			},
		},
		Tips: []model.Review{
			{
				ID:      "1",
				Author:  "Karan Kapoor",
				Content: "Visit during weekday mornings to get a window seat. The place gets packed on weekends after 11 AM.",
				Upvotes: 19, Downvotes: 0, Comments: 3,
				PostedAt: daysAgo(4),
			},
		},
	},
	"3": {
		Blogs: []model.Review{
			{
				ID:      "1",
				Author:  "Aditya Iyer",
				Content: "An absolute must-visit in Mumbai! The architecture is stunning and the view of the Arabian Sea is spectacular.",
				Upvotes: 45, Downvotes: 3, Comments: 12,
				PostedAt: daysAgo(5),
			},
			{
				ID:      "2",
				Author:  "Meera Nair",
				Content: "The historical significance of this place is immense. You can also take a ferry ride to Elephanta Caves from here.",
				Upvotes: 38, Downvotes: 2, Comments: 9,
				PostedAt: daysAgo(7),
			},
		},
		Tips: []model.Review{
			{
				ID:      "1",
				Author:  "Deepak Reddy",
				Content: "Go early in the morning around 6-7 AM to avoid crowds and get the best photos. Fixed prices are displayed at official counters.",
				Upvotes: 34, Downvotes: 0, Comments: 5,
				PostedAt: daysAgo(6),
			},
		},
	},
	"4": {
		Blogs: []model.Review{
			{
				ID:      "1",
				Author:  "Ishaan Verma",
				Content: "One of the best beaches in Goa! The sunset here is absolutely magical and the beach has a peaceful vibe.",
				Upvotes: 41, Downvotes: 2, Comments: 11,
				PostedAt: daysAgo(1),
			},
		},
		Tips: []model.Review{
			{
				ID:      "1",
				Author:  "Pooja Menon",
				Content: "Arrive at least 30 minutes before sunset to get a good spot. Try the grilled fish - it's fresh and delicious!",
				Upvotes: 31, Downvotes: 1, Comments: 7,
				PostedAt: daysAgo(3),
			},
		},
	},
}
