// Package fixtures is the hand-authored demo dataset served whenever the
// database is unreachable or not configured, so the site stays populated in
// offline demos. The records mirror the public marketing content.
package fixtures

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"luxrealty_backend/internal/model"
)

// Projects the four demo developments shown on the public site.
func Projects() []model.Project {
	return []model.Project{
		{
			Model:            at(1, "2024-01-01T00:00:00Z"),
			Name:             "David Residence",
			City:             "Jerusalem",
			Slug:             "david-residence",
			ShortDescription: "Luxury residential complex in the heart of Jerusalem with modern amenities and stunning city views.",
			LongDescription:  "David Residence offers an exceptional living experience in Jerusalem's most prestigious neighborhood. This luxury development features modern architecture, premium finishes, and world-class amenities.",
			Images: imageList(
				"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=800",
			),
			MapEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3381.3!2d35.2137!3d31.7683",
			BrochureURL: "#",
		},
		{
			Model:            at(2, "2024-01-02T00:00:00Z"),
			Name:             "Tel Aviv Riviera",
			City:             "Tel Aviv",
			Slug:             "tel-aviv-riviera",
			ShortDescription: "Beachfront luxury apartments with panoramic sea views and direct beach access.",
			LongDescription:  "Tel Aviv Riviera represents the pinnacle of coastal living. Located on Tel Aviv's prestigious coastline, this development offers unparalleled luxury with breathtaking Mediterranean views.",
			Images: imageList(
				"https://images.pexels.com/photos/1404819/pexels-photo-1404819.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1080721/pexels-photo-1080721.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1571453/pexels-photo-1571453.jpeg?auto=compress&cs=tinysrgb&w=800",
			),
			MapEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3379.4!2d34.7818!3d32.0853",
			BrochureURL: "#",
		},
		{
			Model:            at(3, "2024-01-03T00:00:00Z"),
			Name:             "Haifa Bay Tower",
			City:             "Haifa",
			Slug:             "haifa-bay-tower",
			ShortDescription: "Modern high-rise tower with spectacular bay views and premium facilities.",
			LongDescription:  "Haifa Bay Tower stands as a beacon of modern luxury in Israel's northern capital. This architectural marvel offers residents unprecedented views of the Mediterranean and Mount Carmel.",
			Images: imageList(
				"https://images.pexels.com/photos/1438832/pexels-photo-1438832.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1571468/pexels-photo-1571468.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1396132/pexels-photo-1396132.jpeg?auto=compress&cs=tinysrgb&w=800",
			),
			MapEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3353.2!2d34.9896!3d32.7940",
			BrochureURL: "#",
		},
		{
			Model:            at(4, "2024-01-04T00:00:00Z"),
			Name:             "Ashdod Luxe Garden",
			City:             "Ashdod",
			Slug:             "ashdod-luxe-garden",
			ShortDescription: "Exclusive garden apartments with private outdoor spaces and modern design.",
			LongDescription:  "Ashdod Luxe Garden offers a unique residential experience combining urban convenience with natural tranquility. Each apartment features private gardens and premium amenities.",
			Images: imageList(
				"https://images.pexels.com/photos/1571471/pexels-photo-1571471.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1643384/pexels-photo-1643384.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1396160/pexels-photo-1396160.jpeg?auto=compress&cs=tinysrgb&w=800",
			),
			MapEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3390.1!2d34.6496!3d31.8014",
			BrochureURL: "#",
		},
	}
}

// Clients demo leads, newest first like the live query.
func Clients() []model.Client {
	return []model.Client{
		{
			Model:           at(1, "2024-01-15T10:30:00Z"),
			FullName:        "John Doe",
			Email:           "john@example.com",
			Phone:           "+1234567890",
			Language:        "en",
			ProjectSelected: "david-residence",
			Message:         "Interested in a 3-bedroom apartment with good views. Looking for move-in ready property.",
			Status:          "new",
		},
		{
			Model:           at(2, "2024-01-14T14:20:00Z"),
			FullName:        "Marie Dupont",
			Email:           "marie@example.com",
			Phone:           "+33123456789",
			Language:        "fr",
			ProjectSelected: "tel-aviv-riviera",
			Message:         "Looking for beachfront property for investment purposes. Budget up to 2M.",
			Status:          "contacted",
		},
		{
			Model:           at(3, "2024-01-13T09:15:00Z"),
			FullName:        "David Cohen",
			Email:           "david@example.com",
			Phone:           "+972501234567",
			Language:        "he",
			ProjectSelected: "haifa-bay-tower",
			Message:         "Interested in investment opportunity. Please send detailed financial projections.",
			Status:          "in_progress",
		},
		{
			Model:           at(4, "2024-01-12T16:45:00Z"),
			FullName:        "Anna Volkov",
			Email:           "anna@example.com",
			Phone:           "+79123456789",
			Language:        "ru",
			ProjectSelected: "ashdod-luxe-garden",
			Message:         "Looking for family home with garden. Need 4 bedrooms minimum.",
			Status:          "new",
		},
		{
			Model:           at(5, "2024-01-11T11:30:00Z"),
			FullName:        "Michael Brown",
			Email:           "michael@example.com",
			Phone:           "+44123456789",
			Language:        "en",
			ProjectSelected: "david-residence",
			Message:         "Interested in luxury apartment in central location. Cash buyer.",
			Status:          "sold",
		},
		{
			Model:           at(6, "2024-01-10T13:20:00Z"),
			FullName:        "Sophie Martin",
			Email:           "sophie@example.com",
			Phone:           "+33987654321",
			Language:        "fr",
			ProjectSelected: "tel-aviv-riviera",
			Message:         "Looking for vacation home by the sea. Flexible on timing.",
			Status:          "contacted",
		},
		{
			Model:           at(7, "2024-01-09T08:45:00Z"),
			FullName:        "Ahmed Hassan",
			Email:           "ahmed@example.com",
			Phone:           "+971501234567",
			Language:        "en",
			ProjectSelected: "haifa-bay-tower",
			Message:         "Business investor seeking high-yield properties. Open to multiple units.",
			Status:          "in_progress",
		},
		{
			Model:           at(8, "2024-01-08T15:30:00Z"),
			FullName:        "Elena Petrov",
			Email:           "elena@example.com",
			Phone:           "+79876543210",
			Language:        "ru",
			ProjectSelected: "ashdod-luxe-garden",
			Message:         "Relocating to Israel for work. Need family-friendly neighborhood.",
			Status:          "not_interested",
		},
	}
}

// Appointments demo meetings for the CRM calendar.
func Appointments() []model.Appointment {
	return []model.Appointment{
		{
			Model:    at(1, "2024-08-01T09:00:00Z"),
			ClientID: 1,
			Date:     "2024-08-10",
			Time:     "14:00",
			Type:     model.AppointmentTypeInPerson,
			Location: "Tel Aviv Office",
			Notes:    "Consultation - David Residence",
		},
		{
			Model:    at(2, "2024-08-02T09:00:00Z"),
			ClientID: 2,
			Date:     "2024-08-12",
			Time:     "10:30",
			Type:     model.AppointmentTypeInPerson,
			Location: "Beachfront Lobby",
			Notes:    "Site Visit - Tel Aviv Riviera",
		},
		{
			Model:    at(3, "2024-08-03T09:00:00Z"),
			ClientID: 3,
			Date:     "2024-08-13",
			Time:     "18:00",
			Type:     model.AppointmentTypeZoom,
			Location: "Online",
			Notes:    "Zoom Call - Investment Review",
		},
	}
}

func at(id uint, ts string) gorm.Model {
	t, _ := time.Parse(time.RFC3339, ts)
	return gorm.Model{ID: id, CreatedAt: t, UpdatedAt: t}
}

func imageList(urls ...string) datatypes.JSON {
	b, _ := json.Marshal(urls)
	return datatypes.JSON(b)
}
