package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/loaders"
	"github.com/IMohy/portfolio-imohy/internal/types"
)

// Seeds the SQLite database with the default site content. Every section
// is skipped when it already has rows, so the script is safe to rerun.
func main() {
	dbPath := flag.String("db", "portfolio.db", "Path to the SQLite database file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client, err := loaders.NewSQLiteClient(*dbPath)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer client.Close()

	db := client.DB

	var settingsCount int64
	db.Model(&types.SiteSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := types.SiteSettings{
			ID:              "settings",
			SiteTitle:       "Mohamed Mohy — Frontend Developer",
			MetaDescription: "Frontend web developer with 3+ years of experience building modern, responsive, and user-focused web applications.",
			PrimaryHue:      199, PrimarySat: 89, PrimaryLight: 48,
			SecondaryHue: 166, SecondarySat: 72, SecondaryLight: 50,
			AccentHue: 34, AccentSat: 100, AccentLight: 60,
			DefaultTheme: "dark",
			GithubURL:    "https://github.com/mohamedmohy",
			LinkedinURL:  "https://linkedin.com/in/mohamedmohy",
		}
		if err := db.Create(&settings).Error; err != nil {
			logger.Fatal("Failed to seed settings", zap.Error(err))
		}
		logger.Info("Seeded site settings")
	}

	var heroCount int64
	db.Model(&types.Hero{}).Count(&heroCount)
	if heroCount == 0 {
		hero := types.Hero{
			ID:               uuid.New().String(),
			Headline:         "Mohamed Mohy",
			Subtitle:         "Frontend Web Developer",
			Tagline:          "Building modern, responsive, and user-focused web applications",
			CtaPrimaryText:   "View My Work",
			CtaSecondaryText: "Get In Touch",
		}
		if err := db.Create(&hero).Error; err != nil {
			logger.Fatal("Failed to seed hero", zap.Error(err))
		}
		logger.Info("Seeded hero section")
	}

	var aboutCount int64
	db.Model(&types.About{}).Count(&aboutCount)
	if aboutCount == 0 {
		about := types.About{
			ID:             uuid.New().String(),
			Summary:        "Frontend web developer with 3+ years of experience building modern, responsive, and user-focused web applications. Skilled in React.js, Next.js, Vite.js, and TypeScript, with a strong background in developing dashboards, e-commerce platforms, and scalable UI components.",
			YearsExp:       3,
			TotalProjects:  20,
			TotalCompanies: 5,
		}
		if err := db.Create(&about).Error; err != nil {
			logger.Fatal("Failed to seed about", zap.Error(err))
		}
		logger.Info("Seeded about section")
	}

	var skillCount int64
	db.Model(&types.Skill{}).Count(&skillCount)
	if skillCount == 0 {
		skills := []types.Skill{
			{Name: "JavaScript (ES6+)", Category: "Languages", Order: 0},
			{Name: "TypeScript", Category: "Languages", Order: 1},
			{Name: "HTML5", Category: "Languages", Order: 2},
			{Name: "CSS3", Category: "Languages", Order: 3},
			{Name: "React.js", Category: "Frameworks", Order: 0},
			{Name: "Next.js", Category: "Frameworks", Order: 1},
			{Name: "Vite.js", Category: "Frameworks", Order: 2},
			{Name: "Tailwind CSS", Category: "Styling", Order: 0},
			{Name: "Material UI", Category: "Styling", Order: 1},
			{Name: "Redux Toolkit", Category: "State Management", Order: 0},
			{Name: "TanStack Query", Category: "Data Fetching", Order: 0},
			{Name: "RESTful APIs", Category: "Data Fetching", Order: 1},
			{Name: "Git & GitHub", Category: "Tools", Order: 0},
			{Name: "Figma", Category: "Tools", Order: 1},
		}
		for i := range skills {
			skills[i].ID = uuid.New().String()
		}
		if err := db.Create(&skills).Error; err != nil {
			logger.Fatal("Failed to seed skills", zap.Error(err))
		}
		logger.Info("Seeded skills", zap.Int("count", len(skills)))
	}

	var expCount int64
	db.Model(&types.Experience{}).Count(&expCount)
	if expCount == 0 {
		experiences := []types.Experience{
			{
				Company:   "Fleetrun",
				Title:     "Frontend Web Developer",
				Location:  "Saudi Arabia",
				WorkType:  "Freelance",
				StartDate: date(2025, 1, 1),
				EndDate:   datePtr(2025, 9, 1),
				Description: []string{
					"Automated responsive images, WebP formats, and dynamic sizing to reduce load times",
					"Reduced initial page load time by 60% via code-splitting, lazy loading, and caching",
				},
				Order: 0,
			},
			{
				Company:   "Amyal Smart",
				Title:     "Frontend Web Developer",
				Location:  "Saudi Arabia",
				WorkType:  "Remote",
				StartDate: date(2024, 2, 1),
				Description: []string{
					"Designed and developed modern apps using Vite.js, Next.js, and TypeScript",
					"Implemented real-time tracking systems for delivery monitoring",
				},
				Order: 1,
			},
			{
				Company:   "Trugraph",
				Title:     "Front-End Web Developer",
				Location:  "Egypt",
				WorkType:  "On-site",
				StartDate: date(2022, 12, 1),
				EndDate:   datePtr(2024, 2, 1),
				Description: []string{
					"Improved codebase by fixing bugs, refactoring components, improving readability",
					"Implemented caching strategies that reduced API load time by 40%",
				},
				Order: 2,
			},
		}
		for i := range experiences {
			experiences[i].ID = uuid.New().String()
		}
		if err := db.Create(&experiences).Error; err != nil {
			logger.Fatal("Failed to seed experience", zap.Error(err))
		}
		logger.Info("Seeded experience", zap.Int("count", len(experiences)))
	}

	var projectCount int64
	db.Model(&types.Project{}).Count(&projectCount)
	if projectCount == 0 {
		projects := []types.Project{
			{
				Slug:      "fleetrun-fleet-management",
				Title:     "Fleetrun Fleet Management",
				ShortDesc: "Real-time fleet tracking and management platform for logistics companies.",
				TechStack: []string{"React.js", "TypeScript", "Tailwind CSS", "REST API", "Leaflet"},
				Company:   strPtr("Fleetrun"),
				Role:      strPtr("Frontend Developer"),
				Featured:  true,
				Order:     0,
			},
			{
				Slug:      "amyal-smart-dashboard",
				Title:     "Amyal Smart Dashboard",
				ShortDesc: "Admin dashboard for managing deliveries, products, and warehouse storage.",
				TechStack: []string{"Next.js", "Vite.js", "TypeScript", "TanStack Query"},
				Company:   strPtr("Amyal Smart"),
				Role:      strPtr("Frontend Developer"),
				Featured:  true,
				Order:     1,
			},
			{
				Slug:      "portfolio-website",
				Title:     "Personal Portfolio",
				ShortDesc: "This portfolio website with an admin dashboard for content management.",
				TechStack: []string{"Go", "Gin", "GORM", "SQLite"},
				Role:      strPtr("Full-Stack Developer"),
				Featured:  true,
				Order:     2,
			},
		}
		for i := range projects {
			projects[i].ID = uuid.New().String()
		}
		if err := db.Create(&projects).Error; err != nil {
			logger.Fatal("Failed to seed projects", zap.Error(err))
		}
		logger.Info("Seeded projects", zap.Int("count", len(projects)))
	}

	var eduCount int64
	db.Model(&types.Education{}).Count(&eduCount)
	if eduCount == 0 {
		education := types.Education{
			ID:             uuid.New().String(),
			Institution:    "Obour Institute",
			Degree:         "Bachelor's Degree",
			Field:          "Management Information System",
			GraduationDate: datePtr(2025, 6, 1),
			Order:          0,
		}
		if err := db.Create(&education).Error; err != nil {
			logger.Fatal("Failed to seed education", zap.Error(err))
		}
		logger.Info("Seeded education")
	}

	var certCount int64
	db.Model(&types.Certification{}).Count(&certCount)
	if certCount == 0 {
		cert := types.Certification{
			ID:     uuid.New().String(),
			Title:  "React Development Cross-Skilling",
			Issuer: "Udacity",
			Order:  0,
		}
		if err := db.Create(&cert).Error; err != nil {
			logger.Fatal("Failed to seed certification", zap.Error(err))
		}
		logger.Info("Seeded certification")
	}

	logger.Info("Seeding complete")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := date(year, month, day)
	return &t
}

func strPtr(s string) *string {
	return &s
}
