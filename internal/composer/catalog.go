package composer

import (
	"fmt"
	"strings"
)

type slotActivities map[Slot][]string

var destinationActivities = map[string]slotActivities{
	"goa": {
		Morning: {
			"Beach Walk and Sunrise", "Portuguese Church Visit", "Spice Plantation Tour",
			"Local Market Exploration", "Heritage Walk in Old Goa",
		},
		Afternoon: {
			"Water Sports at Baga Beach", "Dudhsagar Waterfall Trek", "Anjuna Flea Market",
			"Fort Aguada Exploration", "River Cruise",
		},
		Evening: {
			"Sunset at Chapora Fort", "Beach Shack Dinner", "Night Market Shopping",
			"Casino Experience", "Beach Party",
		},
	},
	"dubai": {
		Morning: {
			"Burj Khalifa Observation Deck", "Dubai Mall Exploration", "Gold Souk Visit",
			"Dubai Creek Tour", "Jumeirah Mosque Visit",
		},
		Afternoon: {
			"Desert Safari Adventure", "Dubai Marina Walk", "Palm Jumeirah Tour",
			"Atlantis Aquarium", "Dubai Frame Visit",
		},
		Evening: {
			"Dubai Fountain Show", "Rooftop Dining", "Souk Madinat Shopping",
			"Dhow Cruise Dinner", "Burj Al Arab View",
		},
	},
	"kerala": {
		Morning: {
			"Backwater Houseboat Cruise", "Tea Plantation Visit", "Spice Garden Tour",
			"Kathakali Performance", "Fort Kochi Walk",
		},
		Afternoon: {
			"Munnar Hill Station", "Periyar Wildlife Sanctuary", "Chinese Fishing Nets",
			"Ayurvedic Spa Treatment", "Bamboo Rafting",
		},
		Evening: {
			"Sunset at Marine Drive", "Traditional Kerala Dinner", "Cultural Show",
			"Beach Walk at Kovalam", "Local Market Visit",
		},
	},
}

var destinationLocations = map[string][]string{
	"goa":    {"Baga Beach", "Old Goa", "Anjuna", "Calangute", "Palolem", "Arambol"},
	"dubai":  {"Downtown Dubai", "Dubai Marina", "Palm Jumeirah", "Deira", "JBR", "Business Bay"},
	"kerala": {"Fort Kochi", "Alleppey", "Munnar", "Thekkady", "Kovalam", "Wayanad"},
}

var activityImages = [...]string{
	"https://images.pexels.com/photos/1007426/pexels-photo-1007426.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/1470502/pexels-photo-1470502.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/2265876/pexels-photo-2265876.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/2474690/pexels-photo-2474690.jpeg?auto=compress&cs=tinysrgb&w=400",
}

func catalogKey(destination string) string {
	return strings.ToLower(strings.TrimSpace(destination))
}

func genericActivities(destination string, slot Slot) []string {
	switch slot {
	case Morning:
		return []string{fmt.Sprintf("Morning Sightseeing in %s", destination), "Local Market Visit", "Cultural Site Tour"}
	case Afternoon:
		return []string{"Main Attraction Visit", "Adventure Activity", "Museum Tour"}
	default:
		return []string{"Sunset Viewing", "Local Dining Experience", "Evening Entertainment"}
	}
}

// cycle picks the (n mod len)th entry; n is zero-based and never negative here.
func cycle(list []string, n int) string {
	return list[n%len(list)]
}

// LookupActivity returns the raw activity name for a destination, slot and
// 1-based day. Unknown destinations fall back to a generic list.
func LookupActivity(destination string, slot Slot, dayIndex int) string {
	dest := strings.TrimSpace(destination)
	list := genericActivities(dest, slot)
	if known, ok := destinationActivities[catalogKey(dest)]; ok {
		if l := known[slot]; len(l) > 0 {
			list = l
		}
	}
	return cycle(list, dayIndex-1)
}

// LookupLocation cycles the destination's location list, shifted by slot so a
// single day does not repeat the same place.
func LookupLocation(destination string, dayIndex int, slot Slot) string {
	dest := strings.TrimSpace(destination)
	list, ok := destinationLocations[catalogKey(dest)]
	if !ok {
		list = []string{dest + " Center", dest + " District"}
	}
	return cycle(list, dayIndex-1+slotOffset(slot))
}

func slotOffset(slot Slot) int {
	switch slot {
	case Afternoon:
		return 1
	case Evening:
		return 2
	}
	return 0
}

// ImageFor picks a stock image deterministically from the name lengths.
func ImageFor(activityName, destination string) string {
	return activityImages[(len(activityName)+len(destination))%len(activityImages)]
}

// HasCatalog reports whether destination has dedicated activities and
// locations rather than the generic fallback.
func HasCatalog(destination string) bool {
	_, ok := destinationActivities[catalogKey(destination)]
	return ok
}

// KnownDestinations lists destinations with dedicated catalog entries.
func KnownDestinations() []string {
	return []string{"Goa", "Dubai", "Kerala"}
}
