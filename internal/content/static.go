package content

import (
	"context"
	"time"
)

// StaticSource serves the built-in catalog.
type StaticSource struct {
	catalog *Catalog
}

var _ Source = (*StaticSource)(nil)

func NewStatic() *StaticSource {
	return &StaticSource{catalog: Default()}
}

func (s *StaticSource) Catalog(context.Context) (*Catalog, error) {
	return s.catalog, nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Default returns the built-in site content.
func Default() *Catalog {
	return &Catalog{
		Fixed: true,
		Events: []Event{
			{
				ID:       "1",
				Title:    "Annual Science Fair",
				Summary:  "Students present independent research projects to judges from local universities.",
				Body:     "The science fair brings together projects from every grade. Judges from partner universities award prizes in life science, physical science and engineering. Families are welcome throughout the afternoon.",
				Date:     day(2025, time.March, 15),
				Location: "Main Gymnasium",
				Category: "academic",
				Image:    "/public/images/events/science-fair.jpg",
			},
			{
				ID:       "2",
				Title:    "Spring Concert",
				Summary:  "The choir, orchestra and jazz band perform their spring programme.",
				Body:     "Our music ensembles close the term with an evening of classical and contemporary pieces. Doors open at 6:30 PM.",
				Date:     day(2025, time.April, 10),
				Location: "Performing Arts Center",
				Category: "arts",
				Image:    "/public/images/events/spring-concert.jpg",
			},
			{
				ID:       "3",
				Title:    "Parent-Teacher Conferences",
				Summary:  "Meet your child's teachers to discuss progress and goals.",
				Body:     "Conferences run in fifteen minute slots. Book a slot through the front office or the parent newsletter link.",
				Date:     day(2025, time.February, 20),
				Location: "Classrooms",
				Category: "academic",
				Image:    "/public/images/events/conferences.jpg",
			},
			{
				ID:       "4",
				Title:    "Homecoming Game",
				Summary:  "Cheer on the varsity football team against our rivals.",
				Body:     "The homecoming game kicks off at 7 PM with the halftime parade of clubs. Student council sells refreshments at the north gate.",
				Date:     day(2025, time.October, 3),
				Location: "Memorial Stadium",
				Category: "student-life",
				Image:    "/public/images/events/homecoming.jpg",
			},
			{
				ID:       "5",
				Title:    "Club Fair",
				Summary:  "Every club sets up a table so new students can find their people.",
				Body:     "Over thirty clubs present their plans for the year. Sign-up sheets close the following Friday.",
				Date:     day(2025, time.September, 5),
				Location: "Student Commons",
				Category: "student-life",
				Image:    "/public/images/events/club-fair.jpg",
			},
		},
		News: []NewsItem{
			{
				ID:       "1",
				Title:    "Robotics Team Advances to State Finals",
				Summary:  "The team placed second at regionals with their autonomous sorting robot.",
				Body:     "After six weeks of build season the robotics team placed second among twenty-four schools. They compete at the state finals next month.",
				Date:     day(2025, time.February, 28),
				Category: "achievements",
				Image:    "/public/images/news/robotics.jpg",
			},
			{
				ID:       "2",
				Title:    "New Library Wing Opens",
				Summary:  "The renovated library adds study rooms and a media lab.",
				Body:     "The new wing includes eight bookable study rooms, a recording studio and extended evening hours during exam weeks.",
				Date:     day(2025, time.January, 15),
				Category: "campus",
				Image:    "/public/images/news/library.jpg",
			},
			{
				ID:       "3",
				Title:    "Scholarship Recipients Announced",
				Summary:  "Twelve seniors received merit scholarships this year.",
				Body:     "Congratulations to the twelve seniors awarded merit scholarships by the academy foundation. Awards will be presented at graduation.",
				Date:     day(2025, time.March, 3),
				Category: "achievements",
				Image:    "/public/images/news/scholarships.jpg",
			},
		},
		Clubs: []Club{
			{Name: "Debate Society", Description: "Competitive debate in parliamentary and policy formats.", Meets: "Tuesdays 3:30 PM", Advisor: "Ms. Alvarez", Image: "/public/images/clubs/debate.jpg"},
			{Name: "Robotics Club", Description: "Design, build and program robots for regional competitions.", Meets: "Mondays and Thursdays 3:30 PM", Advisor: "Mr. Okafor", Image: "/public/images/clubs/robotics.jpg"},
			{Name: "Art Collective", Description: "Open studio time, gallery trips and the spring exhibition.", Meets: "Wednesdays 3:15 PM", Advisor: "Mrs. Chen", Image: "/public/images/clubs/art.jpg"},
			{Name: "Environmental Club", Description: "Campus recycling, the school garden and local clean-up days.", Meets: "Fridays 12:30 PM", Advisor: "Dr. Patel", Image: "/public/images/clubs/environment.jpg"},
		},
		Sports: []Sport{
			{Name: "Football", Season: "Fall", Coach: "Coach Williams", Description: "Varsity and junior varsity teams in the regional conference.", Image: "/public/images/sports/football.jpg"},
			{Name: "Basketball", Season: "Winter", Coach: "Coach Johnson", Description: "Boys and girls programmes with a summer skills camp.", Image: "/public/images/sports/basketball.jpg"},
			{Name: "Track and Field", Season: "Spring", Coach: "Coach Martinez", Description: "Sprints, distance, jumps and throws.", Image: "/public/images/sports/track.jpg"},
			{Name: "Swimming", Season: "Winter", Coach: "Coach Nguyen", Description: "Competitive swimming at the aquatic center.", Image: "/public/images/sports/swimming.jpg"},
		},
		Leaders: []Leader{
			{Name: "Dr. Sarah Mitchell", Title: "Head of School", Bio: "Dr. Mitchell has led the academy since 2018 after twenty years in secondary education.", Image: "/public/images/leadership/mitchell.jpg"},
			{Name: "James Carter", Title: "Deputy Head, Academics", Bio: "Mr. Carter oversees curriculum and the academic board.", Image: "/public/images/leadership/carter.jpg"},
			{Name: "Linda Osei", Title: "Director of Finance", Bio: "Ms. Osei manages the school budget, fees and the accounts office.", Image: "/public/images/leadership/osei.jpg"},
			{Name: "Robert Kim", Title: "Dean of Students", Bio: "Mr. Kim supports student wellbeing, clubs and athletics.", Image: "/public/images/leadership/kim.jpg"},
		},
		Calendar: []CalendarEntry{
			{Date: day(2025, time.January, 6), Title: "Spring term begins", Category: "term"},
			{Date: day(2025, time.January, 20), Title: "No school", Category: "holiday"},
			{Date: day(2025, time.February, 20), Title: "Parent-Teacher Conferences", Category: "event"},
			{Date: day(2025, time.March, 15), Title: "Annual Science Fair", Category: "event"},
			{Date: day(2025, time.March, 24), Title: "Spring break begins", Category: "holiday"},
			{Date: day(2025, time.April, 10), Title: "Spring Concert", Category: "event"},
			{Date: day(2025, time.May, 12), Title: "Final exams", Category: "exam"},
			{Date: day(2025, time.June, 6), Title: "Graduation", Category: "event"},
		},
	}
}
