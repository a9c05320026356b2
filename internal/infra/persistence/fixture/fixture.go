// Package fixture defines the seed data loaded into an empty store.
//
// Every backend seeds the same catalog: one administrator, the three opening
// exhibitions, the three ticket products, and a handful of approved
// testimonials. Seeding is idempotent; backends skip it when users exist.
package fixture

import (
	"time"

	"musea/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

// AdminUser returns the bootstrap administrator. The password hash encodes
// "admin123" with bcrypt.
func AdminUser() *entity.User {
	return &entity.User{
		Username:           "admin",
		Password:           "$2b$10$5H8dj4/ZgZS38KZWy0MO5.Kt5qdvLaYNc7jcG7zQ5EZWNMSCyKiHa",
		Email:              "admin@museum.com",
		FullName:           ptr("Admin User"),
		IsAdmin:            true,
		LanguagePreference: "en",
	}
}

// Exhibitions returns the opening exhibitions in their display order.
func Exhibitions() []*entity.Exhibition {
	return []*entity.Exhibition{
		{
			Title:       "Ancient Egypt: The Eternal Life",
			Description: "Explore the fascinating world of ancient Egyptian beliefs about death and the afterlife through artifacts, mummies, and immersive experiences.",
			ImageURL:    ptr("https://images.unsplash.com/photo-1566554273541-37a9ca77b91f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
			StartDate:   time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
			IsFeatured:  true,
		},
		{
			Title:       "Modern Masters: 20th Century Icons",
			Description: "A curated collection of masterpieces from Picasso, Dalí, Warhol, and more, showcasing the revolutionary art movements of the 20th century.",
			ImageURL:    ptr("https://images.unsplash.com/photo-1605429523419-d828acb941d9?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
			StartDate:   time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			IsFeatured:  true,
			IsNew:       true,
		},
		{
			Title:       "Digital Frontiers: Art & Technology",
			Description: "An immersive exhibition exploring the intersection of art and technology through interactive installations, digital media, and virtual reality experiences.",
			ImageURL:    ptr("https://images.unsplash.com/photo-1569587112025-0d160c8c6f7b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
			StartDate:   time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

// TicketTypes returns the ticket products.
func TicketTypes() []*entity.TicketType {
	return []*entity.TicketType{
		{
			Name:        "General Admission",
			Description: "Access to permanent collections",
			Price:       18.0,
			Color:       "primary",
			Includes: []string{
				"Access to all permanent exhibitions",
				"Audio guide (additional $5)",
				"Valid for the selected date only",
			},
		},
		{
			Name:        "Premium Pass",
			Description: "All-inclusive museum experience",
			Price:       32.0,
			Color:       "accent",
			Includes: []string{
				"All permanent & special exhibitions",
				"Complimentary audio guide",
				"Priority entry (skip the line)",
				"One free museum publication",
			},
			IsPopular: true,
		},
		{
			Name:        "Special Exhibition",
			Description: "Entry to featured exhibitions",
			Price:       25.0,
			Color:       "neutral",
			Includes: []string{
				"Access to special exhibitions only",
				"Exhibition-specific guided tour",
				"Valid for the selected date & time",
			},
		},
	}
}

// Testimonials returns the pre-approved visitor testimonials.
func Testimonials() []*entity.Testimonial {
	return []*entity.Testimonial{
		{
			Name:       "Sarah J.",
			Role:       ptr("Museum Member"),
			Content:    "The chatbot made booking tickets so easy! I told it when I wanted to visit and how many people were in my group, and it handled everything. No more waiting in long lines!",
			Rating:     5,
			AvatarURL:  ptr("https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"),
			IsApproved: true,
		},
		{
			Name:       "Michael T.",
			Role:       ptr("International Visitor"),
			Content:    "I was impressed by how the chatbot could answer all my questions about the exhibitions in multiple languages. It even suggested the best time to visit based on crowd levels.",
			Rating:     4,
			AvatarURL:  ptr("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"),
			IsApproved: true,
		},
		{
			Name:       "Rebecca K.",
			Role:       ptr("High School Teacher"),
			Content:    "As a teacher planning a field trip, the group booking feature of the chatbot was a lifesaver. It handled all 30 student tickets efficiently and even arranged a guided tour for us.",
			Rating:     5,
			AvatarURL:  ptr("https://images.unsplash.com/photo-1580489944761-15a19d654956?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"),
			IsApproved: true,
		},
	}
}
