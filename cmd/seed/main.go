package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shashankmy/crm/internal/database"
	"github.com/Shashankmy/crm/internal/domain/lead"
	"github.com/Shashankmy/crm/internal/domain/user"
)

func main() {
	db, err := database.Connect("crm.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&user.User{}, &lead.Lead{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	users := user.NewRepository(db)
	leads := lead.NewRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	demoUsers := []struct {
		username, password, name, role, team string
	}{
		{"shashank.my", "password123", "Shashank M Y", "Sales Manager", "Sales Team 1"},
		{"priya.sharma", "password123", "Priya Sharma", "Sales Representative", "Sales Team 2"},
	}

	for _, u := range demoUsers {
		existing, err := users.GetByUsername(ctx, u.username)
		if err != nil {
			log.Fatal("user lookup failed:", err)
		}
		if existing != nil {
			continue
		}
		hash, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		team := u.team
		if err := users.Create(ctx, &user.User{
			Username:     u.username,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
			Team:         &team,
		}); err != nil {
			log.Fatal("user create failed:", err)
		}
		log.Printf("User created: %s / %s", u.username, u.password)
	}

	// ================== LEADS ==================
	log.Println("Creating leads...")

	var existing int64
	db.Model(&lead.Lead{}).Count(&existing)
	if existing > 0 {
		log.Printf("Leads already present (%d), skipping", existing)
		return
	}

	now := time.Now()
	day := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	demoLeads := []struct {
		leadID, name, email, phone string
		status                     lead.Status
		source                     lead.Source
		createdAt                  time.Time
		owner, team, notes         string
	}{
		{"LD-2953", "Rahul Sharma", "rahul.sharma@example.com", "+91 98765 43210",
			lead.StatusQualified, lead.SourceWebsite, now,
			"Shashank M Y", "Sales Team 1", "Interested in enterprise plan"},
		{"LD-2952", "Anjali Patel", "anjali.patel@example.com", "+91 87654 32109",
			lead.StatusInProgress, lead.SourceReferral, day(1),
			"Priya Sharma", "Sales Team 2", "Follow up next week"},
		{"LD-2951", "Vikram Singh", "vikram.singh@example.com", "+91 76543 21098",
			lead.StatusNew, lead.SourceSocialMedia, day(1),
			"Shashank M Y", "Sales Team 1", "Initial contact made via LinkedIn"},
		{"LD-2950", "Neha Gupta", "neha.gupta@example.com", "+91 65432 10987",
			lead.StatusUnqualified, lead.SourceEmailCampaign, day(2),
			"Priya Sharma", "Sales Team 2", "Not interested at this time"},
		{"LD-2949", "Raj Malhotra", "raj.malhotra@example.com", "+91 54321 09876",
			lead.StatusInProgress, lead.SourceWebsite, day(2),
			"Shashank M Y", "Sales Team 1", "Requested product demo"},
		{"LD-2948", "Deepika Reddy", "deepika.reddy@example.com", "+91 43210 98765",
			lead.StatusQualified, lead.SourceReferral, day(3),
			"Shashank M Y", "Sales Team 1", "Very interested in premium features"},
		{"LD-2947", "Arjun Patel", "arjun.patel@example.com", "+91 32109 87654",
			lead.StatusNew, lead.SourceWebsite, day(3),
			"Priya Sharma", "Sales Team 2", "Signed up for a free trial"},
		{"LD-2946", "Kavita Singh", "kavita.singh@example.com", "+91 21098 76543",
			lead.StatusContacted, lead.SourceEmailCampaign, day(3),
			"Shashank M Y", "Sales Team 1", "Initial email sent, awaiting response"},
		{"LD-2945", "Rajesh Kumar", "rajesh.kumar@example.com", "+91 10987 65432",
			lead.StatusUnqualified, lead.SourceSocialMedia, day(4),
			"Priya Sharma", "Sales Team 2", "Budget constraints, not ready to purchase"},
		{"LD-2944", "Ananya Verma", "ananya.verma@example.com", "+91 98765 43210",
			lead.StatusInProgress, lead.SourceWebsite, day(4),
			"Shashank M Y", "Sales Team 1", "Scheduled demo for next week"},
	}

	for _, d := range demoLeads {
		phone, team, notes := d.phone, d.team, d.notes
		if err := leads.Create(ctx, &lead.Lead{
			LeadID:    d.leadID,
			Name:      d.name,
			Email:     d.email,
			Phone:     &phone,
			Status:    d.status,
			Source:    d.source,
			Owner:     d.owner,
			Team:      &team,
			Notes:     &notes,
			CreatedAt: d.createdAt,
			UpdatedAt: d.createdAt,
		}); err != nil {
			log.Fatal("lead create failed:", err)
		}
	}

	log.Printf("Seeded %d leads", len(demoLeads))
}
