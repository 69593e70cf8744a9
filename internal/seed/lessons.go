package seed

import "afterschool/internal/domain"

// Lessons returns the fixed catalog dataset. Ids are store-assigned on
// insert; the seeder never supplies them.
func Lessons() []domain.Lesson {
	return []domain.Lesson{
		{
			Subject:     "Algebra II",
			Location:    "Room 204",
			Price:       38,
			Spaces:      5,
			Description: "Quadratic, exponential, and polynomial problem solving with guided practice.",
			Image:       "algebra.svg",
		},
		{
			Subject:     "Biology Lab",
			Location:    "Science Lab B",
			Price:       42,
			Spaces:      5,
			Description: "Microscope work and dissections that bring cellular biology to life.",
			Image:       "biology-lab.svg",
		},
		{
			Subject:     "Chemistry Honors",
			Location:    "Chemistry Lab",
			Price:       44,
			Spaces:      5,
			Description: "Reactions, stoichiometry, and weekly safety-focused experiments.",
			Image:       "chemistry-honors.svg",
		},
		{
			Subject:     "Physics Workshop",
			Location:    "Innovation Studio",
			Price:       46,
			Spaces:      5,
			Description: "Motion labs, energy challenges, and simple robotics tie-ins.",
			Image:       "physics-workshop.svg",
		},
		{
			Subject:     "English Literature",
			Location:    "Library Commons",
			Price:       36,
			Spaces:      5,
			Description: "Close reading, essay writing, and seminar-style discussions.",
			Image:       "english-literature.svg",
		},
		{
			Subject:     "World History",
			Location:    "Room 112",
			Price:       34,
			Spaces:      5,
			Description: "Global movements and key decisions from ancient to modern eras.",
			Image:       "world-history.svg",
		},
		{
			Subject:     "Computer Science Principles",
			Location:    "Tech Lab",
			Price:       48,
			Spaces:      5,
			Description: "Algorithms, interactive apps, and ethical computing foundations.",
			Image:       "computer-science-principles.svg",
		},
		{
			Subject:     "French Conversation",
			Location:    "Language Studio",
			Price:       33,
			Spaces:      5,
			Description: "Roleplay, listening drills, and everyday vocabulary.",
			Image:       "french-conversation.svg",
		},
		{
			Subject:     "Studio Art",
			Location:    "Art Atelier",
			Price:       40,
			Spaces:      5,
			Description: "Charcoal, acrylics, and mixed media portfolio pieces.",
			Image:       "studio-art.svg",
		},
		{
			Subject:     "Music Ensemble",
			Location:    "Music Room",
			Price:       37,
			Spaces:      5,
			Description: "Contemporary charts and small-group performance skills.",
			Image:       "music-ensemble.svg",
		},
		{
			Subject:     "AP Economics",
			Location:    "Room 305",
			Price:       45,
			Spaces:      5,
			Description: "Market simulations and data-driven policy case studies.",
			Image:       "ap-economics.svg",
		},
		{
			Subject:     "Health & Wellness",
			Location:    "Wellness Center",
			Price:       32,
			Spaces:      5,
			Description: "Nutrition, mindfulness, and fitness planning for balanced living.",
			Image:       "health-wellness.svg",
		},
		{
			Subject:     "Environmental Science",
			Location:    "Greenhouse Lab",
			Price:       41,
			Spaces:      5,
			Description: "Ecosystems, sustainability challenges, and field data collection.",
			Image:       "environmental-science.svg",
		},
	}
}
