package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"luxrealty_backend/internal/model"
	"luxrealty_backend/pkg/database"
	"luxrealty_backend/pkg/email"
)

// InitLeadDigestCron emails a daily pipeline summary every morning at 08:00.
// digestTo overrides the recipient list; when empty every admin user gets it.
func InitLeadDigestCron(digestTo string) {
	c := cron.New()

	_, err := c.AddFunc("0 8 * * *", func() {
		sendLeadDigest(digestTo)
	})
	if err != nil {
		log.Printf("Could not initialize lead digest cron: %v", err)
		return
	}

	c.Start()
	log.Println("Lead digest cron initialized")
}

func sendLeadDigest(digestTo string) {
	if email.GlobalEmailService == nil {
		return
	}
	db := database.GetDB()
	if db == nil {
		return
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	dayStart := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	data := email.LeadDigestData{Date: dayStart}
	db.Model(&model.Client{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&data.NewLeads)
	db.Model(&model.Client{}).Count(&data.TotalLeads)
	db.Model(&model.Appointment{}).Count(&data.Appointments)

	recipients := []string{digestTo}
	if digestTo == "" {
		var admins []model.User
		db.Where("role = ?", model.RoleAdmin).Find(&admins)
		recipients = recipients[:0]
		for _, u := range admins {
			recipients = append(recipients, u.Email)
		}
	}

	for _, to := range recipients {
		if err := email.GlobalEmailService.SendLeadDigestEmail(to, data); err != nil {
			log.Printf("Could not send lead digest to %s: %v", to, err)
		}
	}
}
