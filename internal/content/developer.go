package content

import (
	"time"

	"github.com/tauqeerkhan/portfolio/internal/tour"
)

var developer = &Variant{
	Key:      "developer",
	Owner:    "Tauqeer Khan",
	Role:     "Full Stack Developer",
	Headline: "I build clean, efficient web applications with user-friendly interfaces.",
	Email:    "hello@tauqeerkhan.dev",
	About: []string{
		`I started my tech journey in 8th grade and have been building for the web ever since. I specialize
in full-stack development, writing clean, efficient code and interfaces people enjoy using.`,
		`Most of my projects start with a simple idea and turn into a chance to learn something new,
whether that is a different language, a new tool or a tricky problem. Today I build modern web
solutions for businesses as the founder of SphereX Technologies.`,
		`Outside the screen you will find me tinkering with electronics, reading about automobiles,
travelling or rewatching sci-fi movies.`,
	},
	Sections: []Section{
		{ID: "home", Title: "Home"},
		{ID: "about", Title: "About Me"},
		{
			ID:    "education",
			Title: "Education",
			Entries: []Entry{
				{
					Title:       "Bachelor of Technology in Computer Science",
					Subtitle:    "Anjuman College of Engineering and Technology, Nagpur",
					Period:      "2023 - 2027",
					Description: "Focus on software engineering, web technologies and system design, alongside coding competitions and project work.",
				},
				{
					Title:       "Higher Secondary Education (Science Stream)",
					Subtitle:    "St. Paul School, Nagpur",
					Period:      "2021 - 2023",
					Description: "Physics, Chemistry and Mathematics, building the analytical foundation for engineering.",
				},
				{
					Title:       "Secondary Education",
					Subtitle:    "St. Vincent Pallotti School, Nagpur",
					Period:      "2010 - 2021",
					Description: "Completed 10th grade with distinction and discovered a passion for computer science.",
				},
			},
		},
		{
			ID:    "skills",
			Title: "Skills",
			Intro: "Featured: JavaScript, React, Firebase and Java.",
			Entries: []Entry{
				{Title: "Frontend Development", Tags: []string{"HTML5 & CSS3", "JavaScript", "React", "Bootstrap", "Tailwind", "Responsive Design"}},
				{Title: "Backend Development", Tags: []string{"Java", "Python", "Firebase", "MySQL", "PostgreSQL", "REST APIs"}},
				{Title: "Tools & Others", Tags: []string{"Git & GitHub", "Docker", "Wix", "SQL Server", "UI/UX Design"}},
			},
		},
		{
			ID:    "projects",
			Title: "Featured Projects",
			Entries: []Entry{
				{Title: "EV Services Web App", Description: "A hackathon prototype that helps EV owners find charging and service points, built on Firebase.", Tags: []string{"Firebase", "JavaScript"}},
				{Title: "AI Content Generator", Description: "A SaaS platform that drafts marketing content with generative models.", Tags: []string{"Next.js", "Genkit"}},
				{Title: "QuickFix Pro", Description: "A service booking website and Android webview app for home services.", Tags: []string{"React", "Firebase", "Android"}},
				{Title: "Raha Health App", Description: "A healthcare platform covering appointments, records and reminders.", Tags: []string{"React", "Firebase"}},
				{Title: "Real-time Collaborative Whiteboard", Description: "A shared drawing board synchronised live between users.", Tags: []string{"React", "Firebase"}},
			},
		},
		{
			ID:    "experience",
			Title: "Experience",
			Entries: []Entry{
				{
					Title:       "Founder & Developer",
					Subtitle:    "SphereX Technologies",
					Period:      "2025 - Present",
					Description: "Building modern web solutions for small businesses and startups.",
				},
				{
					Title:       "Freelance Web Developer",
					Period:      "2021 - 2023",
					Description: "Personal and client projects using HTML, CSS, JavaScript and Firebase.",
				},
			},
		},
		{
			ID:    "learning",
			Title: "Currently Learning",
			Entries: []Entry{
				{Title: "React Native", Description: "Cross-platform mobile applications with the React ecosystem."},
				{Title: "Node.js", Description: "Scalable server-side applications and RESTful APIs."},
				{Title: "Machine Learning", Description: "AI fundamentals and predictive models with Python."},
				{Title: "Data Science", Description: "Data analysis, visualisation and statistical modelling."},
			},
		},
		{
			ID:    "achievements",
			Title: "Achievements",
			Entries: []Entry{
				{
					Title:       "ACM Student Chapter Installation - Member Recognition",
					Period:      "August 2025",
					Description: "Recognised as a member of the ACM Student Chapter at ACET during the official installation programme.",
				},
			},
		},
		{
			ID:    "volunteering",
			Title: "Volunteering",
			Entries: []Entry{
				{
					Title:       "Traffic Awareness & Road Safety Campaign",
					Period:      "February 2025",
					Description: "Helped run a community campaign on road safety and traffic rules.",
				},
			},
		},
		{
			ID:    "certificates",
			Title: "Certificates",
			Entries: []Entry{
				{Title: "Hackathon Participation Certificate", Subtitle: "TechTrek Hackathon", Period: "January 2025"},
				{Title: "Hackathon Participation Certificate", Subtitle: "Build 4 Change Hackathon", Period: "August 2025"},
				{Title: "Canva Design Fundamentals", Subtitle: "Simplilearn & Canva", Period: "November 2024"},
			},
		},
		{
			ID:    "video-gallery",
			Title: "Project Demos",
			Entries: []Entry{
				{Title: "Finview App Demo", Description: "Expense tracking, budget management and AI-powered insights in a financial dashboard."},
				{Title: "Survey App Demo", Description: "Dynamic form handling with real-time validation."},
				{Title: "Flappy Bird Gameplay", Description: "A recreation with smooth animations and responsive controls."},
			},
		},
		{ID: "contact", Title: "Contact"},
	},
	Biography: `- Summary: A passionate Computer Science student who started his tech journey in 8th grade. He specializes in full-stack development, creating clean, efficient code and user-friendly interfaces. He has experience with personal projects and client work for startups like SphereX.
- Education:
  - Bachelor's in Computer Science from Anjuman College of Engineering and Technology, Nagpur (2025 - Present).
  - Higher Secondary Education from St. Paul School, Nagpur (2022 - 2024).
  - Secondary Education from St. Vincent Pallotti School, Nagpur (2012 - 2022).
- Work Experience:
  - Founder & Developer at SphereX Technologies (2025 - Present): Builds modern web solutions for businesses.
  - Freelance Web Developer (2021 - 2023): Worked on personal projects, honing skills in HTML, CSS, JavaScript, and Firebase.
- Skills:
  - Frontend: HTML5, CSS3, JavaScript, React, Tailwind CSS, Bootstrap, Responsive Design.
  - Backend: Firebase, MySQL, PostgreSQL, Basic APIs, Java.
  - Other: Git, GitHub, Docker, Wix, SQL Server, UI/UX Design.
- Featured Skills: JavaScript, React, Firebase, Java.
- Projects:
  - EV Services Web App: A hackathon prototype for EV users using Firebase.
  - AI Content Generator: A SaaS platform using Next.js and Genkit.
  - Service Booking App (quickfix pro): A website and Android webview app for booking home services.
  - Raha Health App: A comprehensive healthcare platform.
  - Real-time Collaborative Whiteboard: A collaborative tool built with React and Firebase.
- Interests: Tech & Iron Man, Electronics, Automobiles, Travel, Sci-Fi Movies, Tech Arts.
- Currently Learning: React Native, Node.js, Machine Learning, Data Science.`,
	Steps: tour.MustCatalog(
		tour.Step{
			ID:        "welcome",
			Title:     "Welcome to My Portfolio!",
			Narration: "Hello! I'm Tauqeer Khan, a passionate Full Stack Developer. I'll guide you through my portfolio to show you my skills, projects, and experience. Let's begin our journey!",
			Section:   "home",
			ReadTime:  8 * time.Second,
		},
		tour.Step{
			ID:        "about",
			Title:     "Get to Know Me",
			Narration: "This is where you can learn about my background, my passion for technology, and what drives me as a developer. I believe in continuous learning and creating meaningful digital experiences that solve real-world problems.",
			Section:   "about",
			ReadTime:  10 * time.Second,
		},
		tour.Step{
			ID:        "skills",
			Title:     "My Technical Toolkit",
			Narration: "Here you'll find my technical expertise across frontend development with React and JavaScript, backend skills with Java and Firebase, and various tools I use daily. I'm always expanding my skill set through hands-on projects and continuous learning.",
			Section:   "skills",
			ReadTime:  12 * time.Second,
		},
		tour.Step{
			ID:        "projects",
			Title:     "Featured Projects",
			Narration: "This section showcases my favorite projects including web applications, mobile apps, and innovative solutions. Each project represents real-world problems I've solved using modern technologies. You'll see everything from EV service platforms to healthcare applications.",
			Section:   "projects",
			ReadTime:  12 * time.Second,
		},
		tour.Step{
			ID:        "experience",
			Title:     "Professional Journey",
			Narration: "Learn about my work experience, freelance projects, and professional growth in the tech industry. I've worked on various projects that helped me grow as a developer and understand real-world business requirements.",
			Section:   "experience",
			ReadTime:  10 * time.Second,
		},
		tour.Step{
			ID:        "learning",
			Title:     "Continuous Learning",
			Narration: "I'm always learning new technologies! Currently exploring React Native for mobile development, Node.js for backend services, Machine Learning for intelligent applications, and Data Science for data-driven insights.",
			Section:   "learning",
			ReadTime:  10 * time.Second,
		},
		tour.Step{
			ID:        "achievements",
			Title:     "Achievements & Recognition",
			Narration: "Here you can see my accomplishments, certifications, and recognitions including my ACM membership and participation in tech events and hackathons. These represent my commitment to professional growth.",
			Section:   "achievements",
			ReadTime:  8 * time.Second,
		},
		tour.Step{
			ID:        "volunteering",
			Title:     "Community Involvement",
			Narration: "I believe in giving back to the community. This section shows my volunteering work and social initiatives where I've contributed to meaningful causes like traffic awareness campaigns and community welfare programs.",
			Section:   "volunteering",
			ReadTime:  8 * time.Second,
		},
		tour.Step{
			ID:        "certificates",
			Title:     "Certifications & Credentials",
			Narration: "These are my official certifications and credentials that validate my skills and knowledge in various technologies and methodologies. They demonstrate my dedication to professional development.",
			Section:   "certificates",
			ReadTime:  8 * time.Second,
		},
		tour.Step{
			ID:        "video-gallery",
			Title:     "Project Demos",
			Narration: "Watch my projects in action! This section contains video demonstrations showing the functionality and features of my applications. You can see how my projects work in real-time scenarios.",
			Section:   "video-gallery",
			ReadTime:  8 * time.Second,
		},
		tour.Step{
			ID:        "contact",
			Title:     "Let's Work Together!",
			Narration: "Interested in collaborating? Here's how you can reach me. I'm always open to discussing new opportunities, projects, or just having a chat about technology. Feel free to get in touch anytime!",
			Section:   "contact",
			ReadTime:  8 * time.Second,
		},
	),
	Timing: tour.DefaultTiming(),
}
