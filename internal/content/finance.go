package content

import (
	"time"

	"github.com/tauqeerkhan/portfolio/internal/tour"
)

var finance = &Variant{
	Key:      "finance",
	Owner:    "Wasi Ahmed Khan",
	Role:     "Finance & Business Professional",
	Headline: "Dual degree candidate at Hult International Business School.",
	Email:    "wasi.khan@example.com",
	About: []string{
		`Hello! I am Wasi Ahmed Khan. I have a strong foundation in finance, risk management and analytics
from my bachelor's degree in Banking & Financial Services.`,
		`As an intern at Bank of Baroda, I optimized the credit appraisal process by 25% and researched the
Retail Credit Function. As a Management Trainee at EuroKids, I enhanced financial operations,
improving record accuracy by 20%.`,
		`Now completing my Master's in International Business at Hult and preparing for a Master's in
Finance, I'm eager to apply my financial modeling and problem-solving skills in capital markets,
risk management and corporate finance.`,
	},
	Sections: []Section{
		{ID: "home", Title: "Home"},
		{ID: "about", Title: "About"},
		{
			ID:    "education",
			Title: "Education",
			Entries: []Entry{
				{
					Title:       "Master of Science in Finance (MFin)",
					Subtitle:    "Hult International Business School | Boston, MA, USA",
					Period:      "Oct 2025 - Mar 2026",
					Description: "Investment analysis, financial management and pricing strategies.",
					Highlights:  []string{"Treasurer in Executive Leadership Board at Hult African Business Club", "Advanced financial modeling and analysis"},
				},
				{
					Title:       "Master of Science in International Business (MIB)",
					Subtitle:    "Hult International Business School | Dubai, UAE",
					Period:      "Oct 2024 - Aug 2025",
					Description: "Global strategy, financial management and data-driven business insights.",
					Highlights:  []string{"Member of Student Services Task Force", "Active participation in Finance Club"},
				},
				{
					Title:       "Bachelor of Vocational Studies (B.Voc)",
					Subtitle:    "Pune University | India",
					Period:      "Oct 2020 - Sep 2023",
					Description: "Banking, Financial Services and Insurance with Actuarial Studies.",
					Highlights:  []string{"Core Committee Member of Start-up & Innovation Cell"},
				},
			},
		},
		{
			ID:    "experience",
			Title: "Experience",
			Entries: []Entry{
				{
					Title:       "Management Trainee",
					Subtitle:    "Euro Kids Pre-School | Pune, India",
					Period:      "Aug 2023 - Aug 2024",
					Description: "Improved financial record accuracy by 20% and built year-ahead enrollment forecasts for budgeting.",
					Tags:        []string{"Financial Analysis", "Process Optimization", "Budget Planning"},
				},
				{
					Title:       "Bank Intern",
					Subtitle:    "Bank of Baroda | Pune, India",
					Period:      "Dec 2022 - Aug 2023",
					Description: "Supported credit appraisal reviews, reducing compliance errors by 15%, and analysed retail lending concentration.",
					Tags:        []string{"Credit Appraisal", "Risk Management", "Retail Lending"},
				},
			},
		},
		{
			ID:    "skills",
			Title: "Skills",
			Entries: []Entry{
				{Title: "Finance", Tags: []string{"Financial Modeling", "Investment Analysis", "Credit Appraisal", "Cost Analysis", "IFRS"}},
				{Title: "Analytics", Tags: []string{"Excel", "Forecasting", "Business Statistics", "Data Visualisation"}},
				{Title: "Business", Tags: []string{"Global Strategy", "Design Thinking", "Operations Management"}},
			},
		},
		{
			ID:    "projects",
			Title: "Projects",
			Entries: []Entry{
				{Title: "Al Maktoum International Airport - Passenger Experience Analysis", Description: "Cost structure and monthly operating estimates for eco-heritage art installations.", Tags: []string{"Cost Structure Design", "Investment Analysis"}},
				{Title: "Bank of Baroda - Retail Lending Analysis", Description: "Identified 52% personal credit concentration in housing loans and growth opportunities in underpenetrated segments.", Tags: []string{"Credit Analysis", "Excel Modeling"}},
				{Title: "EuroKids - Financial Operations Enhancement", Description: "Improved record accuracy and fee collection; built enrollment forecasts.", Tags: []string{"Financial Operations", "Budget Forecasting"}},
			},
		},
		{
			ID:    "certificates",
			Title: "Certificates",
			Entries: []Entry{
				{Title: "Financial Modeling & Valuation", Subtitle: "Corporate Finance Institute"},
				{Title: "Excel for Business Analysis", Subtitle: "Coursera"},
			},
		},
		{
			ID:    "achievements",
			Title: "Leadership",
			Entries: []Entry{
				{Title: "Treasurer, Hult African Business Club", Period: "2025"},
				{Title: "Core Committee Member, Start-up & Innovation Cell", Period: "2021 - 2023"},
			},
		},
		{ID: "contact", Title: "Contact"},
	},
	Biography: `- Summary: A finance and business professional with a foundation in banking, risk management and analytics, completing dual Master's degrees at Hult International Business School.
- Education:
  - Master of Science in Finance, Hult International Business School, Boston (Oct 2025 - Mar 2026).
  - Master of Science in International Business, Hult International Business School, Dubai (Oct 2024 - Aug 2025).
  - Bachelor of Vocational Studies in Banking, Financial Services and Insurance with Actuarial Studies, Pune University (2020 - 2023).
- Work Experience:
  - Management Trainee at Euro Kids Pre-School, Pune (Aug 2023 - Aug 2024): improved financial record accuracy by 20%, enhanced fee collection, built enrollment forecasts.
  - Bank Intern at Bank of Baroda, Pune (Dec 2022 - Aug 2023): supported credit appraisal reviews, reduced compliance errors by 15%, analysed retail lending.
- Skills: Financial modeling, investment analysis, credit appraisal, cost analysis, Excel, forecasting, IFRS, global strategy.
- Leadership: Treasurer of the Hult African Business Club; Core Committee Member of the Start-up & Innovation Cell.
- Interests: Capital markets, risk management, corporate finance.`,
	Steps: tour.MustCatalog(
		tour.Step{
			ID:        "welcome",
			Title:     "Welcome",
			Narration: "Hello! I'm Wasi Ahmed Khan, a finance and business professional. Let me walk you through my education, experience and the projects I've delivered.",
			Section:   "home",
			ReadTime:  8 * time.Second,
		},
		tour.Step{
			ID:        "about",
			Title:     "About Me",
			Narration: "Here is my background in banking, financial services and analytics, and what I hope to bring to capital markets and corporate finance.",
			Section:   "about",
			ReadTime:  8 * time.Second,
		},
		tour.Step{
			ID:        "education",
			Title:     "Education",
			Narration: "I'm completing dual Master's degrees in International Business and Finance at Hult International Business School, after a bachelor's in Banking, Financial Services and Insurance.",
			Section:   "education",
			ReadTime:  10 * time.Second,
		},
		tour.Step{
			ID:        "experience",
			Title:     "Professional Experience",
			Narration: "At Bank of Baroda I supported credit appraisal and retail lending analysis, and at EuroKids I improved financial record accuracy by twenty percent.",
			Section:   "experience",
			ReadTime:  10 * time.Second,
		},
		tour.Step{
			ID:        "projects",
			Title:     "Projects",
			Narration: "These projects cover cost structure design, retail lending analysis and financial operations, each with concrete deliverables.",
			Section:   "projects",
			ReadTime:  8 * time.Second,
		},
		tour.Step{
			ID:        "contact",
			Title:     "Get in Touch",
			Narration: "If you'd like to talk about finance roles or collaborations, send me a message here. I'd be glad to hear from you.",
			Section:   "contact",
			ReadTime:  8 * time.Second,
		},
	),
	Timing: financeTiming(),
}

func financeTiming() tour.Timing {
	t := tour.DefaultTiming()
	t.PerWord = 65 * time.Millisecond
	t.AdvanceBuffer = 1500 * time.Millisecond
	return t
}
