package directory

import "github.com/mergington-edu/activities/pkg/schema"

// Seed returns the fixed roster of nine activities the directory starts
// with. A fresh map is built on every call so tests can take isolated
// copies.
func Seed() map[string]schema.Activity {
	return map[string]schema.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Club": {
			Description:     "Outdoor soccer practices and weekend matches",
			Schedule:        "Saturdays, 9:00 AM - 11:00 AM",
			MaxParticipants: 22,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Competitive basketball team training and games",
			Schedule:        "Wednesdays and Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"noah@mergington.edu", "ava@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore drawing, painting, and mixed media projects",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "henry@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Acting, stagecraft, and production of school plays",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"oliver@mergington.edu", "grace@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Prepare for competitive debates and public speaking",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"amelia@mergington.edu", "ethan@mergington.edu"},
		},
		"Robotics Club": {
			Description:     "Design, build, and program robots for competitions",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"harper@mergington.edu", "mason@mergington.edu"},
		},
	}
}
