package portal

const placeholderAvatar = "/public/images/placeholder-user.jpg"

func Teacher() Config {
	return Config{
		Slug:          "teacher-portal",
		Name:          "Teacher Portal",
		UserName:      "Emily Johnson",
		RoleLabel:     "Mathematics Teacher",
		AvatarURL:     placeholderAvatar,
		Notifications: 3,
		Pages: []Page{
			{
				Title:   "Welcome back",
				Summary: "Your classes, deadlines and messages at a glance.",
				Icon:    "home",
				Stats: []Stat{
					{Label: "Classes today", Value: "4", Detail: "Next: Algebra II at 10:15"},
					{Label: "Assignments to grade", Value: "27", Detail: "12 due this week"},
					{Label: "Unread messages", Value: "3", Detail: "2 from parents"},
				},
			},
			{
				Slug:    "classes",
				Title:   "My Classes",
				Summary: "Rosters and schedules for the current term.",
				Icon:    "book",
				Items:   []string{"Algebra II, period 2", "Geometry, period 3", "Pre-Calculus, period 5", "Math Lab, period 6"},
			},
			{
				Slug:    "gradebook",
				Title:   "Gradebook",
				Summary: "Enter and review grades by class and assignment.",
				Icon:    "clipboard",
				Stats: []Stat{
					{Label: "Class average", Value: "84%"},
					{Label: "Missing work", Value: "9"},
				},
			},
			{
				Slug:    "attendance",
				Title:   "Attendance",
				Summary: "Take attendance and review absences.",
				Icon:    "check",
				Stats:   []Stat{{Label: "Present today", Value: "96%"}},
			},
			{
				Slug:    "messages",
				Title:   "Messages",
				Summary: "Conversations with students, parents and staff.",
				Icon:    "mail",
				Items:   []string{"Re: Field trip permission", "Tutoring schedule", "Department meeting notes"},
			},
		},
	}
}

func Accountant() Config {
	return Config{
		Slug:          "accountant-portal",
		Name:          "Accountant Portal",
		UserName:      "Michael Brown",
		RoleLabel:     "Senior Accountant",
		AvatarURL:     placeholderAvatar,
		Notifications: 5,
		Pages: []Page{
			{
				Title:   "Finance overview",
				Summary: "Fee collection and spending for the current term.",
				Icon:    "home",
				Stats: []Stat{
					{Label: "Fees collected", Value: "$1.2M", Detail: "88% of term target"},
					{Label: "Outstanding invoices", Value: "142"},
					{Label: "Pending approvals", Value: "7"},
				},
			},
			{
				Slug:    "fees",
				Title:   "Student Fees",
				Summary: "Track tuition payments and balances.",
				Icon:    "wallet",
				Stats:   []Stat{{Label: "Overdue accounts", Value: "23"}},
			},
			{
				Slug:    "payroll",
				Title:   "Payroll",
				Summary: "Staff salaries and payment runs.",
				Icon:    "users",
				Items:   []string{"March payroll run: scheduled", "Overtime submissions: 4 pending"},
			},
			{
				Slug:    "reports",
				Title:   "Reports",
				Summary: "Budget and expenditure reports.",
				Icon:    "chart",
				Items:   []string{"Quarterly budget summary", "Department spending", "Scholarship disbursements"},
			},
		},
	}
}

func AcademicBoard() Config {
	return Config{
		Slug:          "academic-board",
		Name:          "Academic Board",
		UserName:      "Dr. James Carter",
		RoleLabel:     "Board Chair",
		AvatarURL:     placeholderAvatar,
		Notifications: 2,
		Pages: []Page{
			{
				Title:   "Board dashboard",
				Summary: "Curriculum reviews, meetings and academic performance.",
				Icon:    "home",
				Stats: []Stat{
					{Label: "Open curriculum reviews", Value: "4"},
					{Label: "Next meeting", Value: "Mar 18"},
					{Label: "Average GPA", Value: "3.4"},
				},
			},
			{
				Slug:    "curriculum",
				Title:   "Curriculum",
				Summary: "Course proposals and syllabus reviews.",
				Icon:    "book",
				Items:   []string{"AP Computer Science proposal", "Revised English 10 syllabus", "Biology lab safety update"},
			},
			{
				Slug:    "meetings",
				Title:   "Meetings",
				Summary: "Agendas and minutes.",
				Icon:    "calendar",
				Items:   []string{"March 18: term review", "April 22: exam policy"},
			},
			{
				Slug:    "performance",
				Title:   "Academic Performance",
				Summary: "Results by grade and department.",
				Icon:    "chart",
				Stats:   []Stat{{Label: "Pass rate", Value: "94%"}, {Label: "Honor roll", Value: "212"}},
			},
		},
	}
}

func Admin() Config {
	return Config{
		Slug:          "admin-portal",
		Name:          "Admin Portal",
		UserName:      "Admin User",
		RoleLabel:     "System Administrator",
		AvatarURL:     placeholderAvatar,
		Notifications: 8,
		Pages: []Page{
			{
				Title:   "Administration",
				Summary: "Accounts, enrolment and site settings.",
				Icon:    "home",
				Stats: []Stat{
					{Label: "Active users", Value: "1,284"},
					{Label: "New enrolments", Value: "36", Detail: "this month"},
					{Label: "Open tickets", Value: "8"},
				},
			},
			{
				Slug:    "users",
				Title:   "Users",
				Summary: "Staff, student and parent accounts.",
				Icon:    "users",
				Stats:   []Stat{{Label: "Staff", Value: "94"}, {Label: "Students", Value: "1,020"}, {Label: "Parents", Value: "170"}},
			},
			{
				Slug:    "enrollment",
				Title:   "Enrollment",
				Summary: "Applications and admissions.",
				Icon:    "clipboard",
				Items:   []string{"Fall applications: 88 received", "Waitlist: 12"},
			},
			{
				Slug:    "settings",
				Title:   "Settings",
				Summary: "Site configuration.",
				Icon:    "settings",
				Items:   []string{"Academic year", "Notification templates", "Integrations"},
			},
		},
	}
}
