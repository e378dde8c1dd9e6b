// Package showcase holds the static team and player listings shown on the
// landing page for visitors who have not posted an event yet.
package showcase

// TeamListing advertises an established team looking for players.
type TeamListing struct {
	ID            int      `json:"id"`
	Sport         string   `json:"sport"`
	TeamName      string   `json:"team_name"`
	SkillLevel    string   `json:"skill_level"`
	Location      string   `json:"location"`
	PlayersNeeded int      `json:"players_needed"`
	Availability  []string `json:"availability"`
	Requirements  []string `json:"requirements"`
	Contact       []string `json:"contact"`
}

// PlayerListing advertises an individual looking for a team.
type PlayerListing struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	Location     string   `json:"location"`
	SkillLevel   string   `json:"skill_level"`
	Availability []string `json:"availability"`
	Information  []string `json:"information"`
	Contact      []string `json:"contact"`
}

// Teams returns the seeded team listings.
func Teams() []TeamListing {
	return []TeamListing{
		{
			ID:            1,
			Sport:         "Basketball",
			TeamName:      "Downtown Ballers",
			SkillLevel:    "Intermediate",
			Location:      "City Park Basketball Courts, Downtown",
			PlayersNeeded: 2,
			Availability: []string{
				"Practice: Tuesdays and Thursdays from 6:00 PM to 8:00 PM",
				"Games: Saturdays at 10:00 AM",
			},
			Requirements: []string{
				"Looking for players aged 18-30",
				"Preferably with experience playing guard or forward positions",
				"Must be committed to attending practices and games regularly",
				"Positive attitude and good sportsmanship are essential",
			},
			Contact: []string{"Email: downtownballers@gmail.com", "Phone: 0412 123 456"},
		},
		{
			ID:            2,
			Sport:         "Football",
			TeamName:      "City Strikers",
			SkillLevel:    "Advanced",
			Location:      "City Stadium, Downtown",
			PlayersNeeded: 3,
			Availability: []string{
				"Practice: Mondays and Wednesdays from 7:00 PM to 9:00 PM",
				"Games: Sundays at 2:00 PM",
			},
			Requirements: []string{
				"Seeking players with experience in both offense and defense",
				"Must have excellent communication skills on the field",
				"Preferably aged between 20-35",
				"Fitness level must be high to keep up with the intensity of play",
			},
			Contact: []string{"Email: citystrikers@gmail.com", "Phone: 0412 223 456"},
		},
		{
			ID:            3,
			Sport:         "Baseball",
			TeamName:      "Diamond Kings",
			SkillLevel:    "Intermediate",
			Location:      "Diamond Park, Suburbia",
			PlayersNeeded: 4,
			Availability: []string{
				"Practice: Tuesdays and Thursdays from 6:30 PM to 8:30 PM",
				"Games: Saturdays at 1:00 PM",
			},
			Requirements: []string{
				"Players of all skill levels welcome, beginners encouraged to join",
				"Must have own baseball glove and appropriate attire",
				"Age range between 16-60",
				"Positive attitude and willingness to learn",
			},
			Contact: []string{"Email: diamondkings@gmail.com", "Phone: 0412 323 456"},
		},
	}
}

// Players returns the seeded player listings.
func Players() []PlayerListing {
	return []PlayerListing{
		{
			ID:         1,
			Name:       "John Doe",
			Age:        25,
			Location:   "Downtown",
			SkillLevel: "Intermediate",
			Availability: []string{
				"Weekdays: Evenings after 6:00 PM",
				"Weekends: Flexible",
			},
			Information: []string{
				"Played basketball in high school and college",
				"Looking for a competitive team to improve skills and stay active",
				"Committed to attending practices and games regularly",
				"Positive attitude and team player",
			},
			Contact: []string{"Email: johndoe@gmail.com", "Phone: 0412 423 456"},
		},
		{
			ID:         2,
			Name:       "Alex Johnson",
			Age:        28,
			Location:   "City Center",
			SkillLevel: "Advanced",
			Availability: []string{
				"Weekdays: Evenings after 6:00 PM",
				"Weekends: Flexible",
			},
			Information: []string{
				"Former collegiate tennis player with advanced skills",
				"Seeking a competitive tennis team for regular practice and matches",
				"Experienced in both singles and doubles play",
				"Fitness-focused and dedicated to maintaining peak performance",
			},
			Contact: []string{"Email: alexjohnson@example.com", "Phone: 0412 523 456"},
		},
		{
			ID:         3,
			Name:       "Emily Smith",
			Age:        30,
			Location:   "Suburbia",
			SkillLevel: "Advanced",
			Availability: []string{
				"Weekdays: Mornings before 11:00 AM",
				"Weekends: Afternoons after 2:00 PM",
			},
			Information: []string{
				"Experienced golfer with a handicap of 12",
				"Looking for a friendly and supportive golf team for regular play",
				"Enjoys both casual rounds and competitive tournaments",
				"Committed to improving skills and contributing positively to the team",
			},
			Contact: []string{"Email: emilysmith@gmail.com", "Phone: 0412 623 456"},
		},
	}
}
