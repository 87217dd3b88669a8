package types

// DefaultCV returns the built-in starting document. The store is seeded with
// it at startup so the service always has a complete CV to render, score, and
// export before the first import.
func DefaultCV() *CVData {
	return &CVData{
		Basics: Basics{
			Name:    "Mahmoud Khashaba",
			Label:   "Software Engineer",
			Email:   "mahmoud.h.khashaba@gmail.com",
			Phone:   "+20 102 784 3419",
			URL:     "https://54ba.net",
			Summary: "Experienced Software Engineer with expertise in Python, Node.js, and modern web technologies. Passionate about building scalable applications and AI-powered solutions.",
			Location: Location{
				City:        "Cairo",
				Region:      "Egypt",
				CountryCode: "EG",
			},
			Profiles: []Profile{
				{Network: "GitHub", Username: "54ba", URL: "https://github.com/54ba"},
				{Network: "LinkedIn", Username: "mahmoud-h-khashaba", URL: "https://linkedin.com/in/mahmoud-h-khashaba"},
			},
		},
		Work: []Work{
			{
				Company:   "Tasker AI",
				Position:  "Software Engineer",
				Website:   "https://taskerai.com",
				StartDate: "12/2024",
				EndDate:   "04/2025",
				Highlights: []string{
					"Developed Python-based AI agent proxies integrating LangSmith with large language models such as DeepSeek and Alibaba's Qwen.",
					"Built a custom Next.js logging interface to retrieve and visualize logs from Datadog for debugging and monitoring.",
					"Improved backend reliability by extending services written in Express.js, TypeScript, LangChain, and LangSmith.",
				},
				Keywords: []string{"Python", "LangSmith", "TypeScript", "LangChain", "Next.js", "Datadog"},
			},
			{
				Company:   "Safqa",
				Position:  "Fullstack Developer",
				StartDate: "09/2024",
				EndDate:   "12/2024",
				Highlights: []string{
					"Implemented Cypress tests to ensure code quality and automated testing.",
					"Developed and optimized React pages using NestJS and TypeScript for enhanced user experience.",
					"Integrated OAuth for secure user login functionality across the platform.",
				},
				Keywords: []string{"TanStack", "Cypress", "React", "NestJS", "TypeScript", "OAuth"},
			},
			{
				Company:   "Midade",
				Position:  "Web developer",
				StartDate: "11/2023",
				EndDate:   "06/2024",
				Highlights: []string{
					"Developed web applications using Node.js, PHP, and Laravel frameworks.",
					"Created modular packages for code reusability and maintainability.",
				},
				Keywords: []string{"Node.js", "PHP", "Laravel"},
			},
		},
		Education: []Education{
			{
				Institution: "Faculty of Engineering - Zagazig University",
				Area:        "Electrical Engineering Computers & Systems",
				StudyType:   "B.Sc.",
				StartDate:   "2013",
				EndDate:     "2019",
				Description: "Graduation Project: OLC, a Java JSP online compiler website for managing problem-solving competitions.",
			},
		},
		Skills: []SkillGroup{
			{
				Name:     "Programming Languages",
				Level:    "Advanced",
				Keywords: []string{"Node.js", "TypeScript", "Python", "PHP", "Java"},
			},
			{
				Name:     "Backend Technologies",
				Level:    "Advanced",
				Keywords: []string{"Express.js", "Django", "FastAPI", "Flask", "Laravel", "JSP"},
			},
			{
				Name:     "Frontend Technologies",
				Level:    "Advanced",
				Keywords: []string{"Next.js", "Vue.js", "React", "HTML", "CSS"},
			},
			{
				Name:     "DevOps & Tools",
				Level:    "Intermediate",
				Keywords: []string{"Nginx", "Docker", "K8s", "AWS", "Cypress"},
			},
		},
		Projects: []Project{
			{
				Name:        "MusicBud",
				Description: "A recommendation system matching users with similar tastes in music.",
				URL:         "https://github.com/musicbud",
				Highlights: []string{
					"Developed a music recommendation and social platform using Django, integrating Spotify and YouTube Music.",
					"Implemented a LightFM model for personalized music suggestions through collaborative filtering.",
				},
				Keywords: []string{"Python", "Django", "Neo4j", "LightFM", "Flutter"},
			},
			{
				Name:        "Gemini-Style-CV",
				Description: "CV design template with a built-in ATS compatibility score.",
				URL:         "https://github.com/54ba/gemini-style-cv",
				Highlights: []string{
					"Designed and developed an innovative CV template inspired by the Gemini design philosophy.",
					"Features responsive layout and ATS compatibility scoring.",
				},
				Keywords: []string{"React", "Next.js", "TypeScript", "Tailwind CSS"},
			},
		},
	}
}
