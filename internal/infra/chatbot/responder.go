// Package chatbot implements the rule-based booking assistant.
package chatbot

import (
	"strings"

	"musea/internal/domain/service"
)

const (
	welcomeMessage = "Hello! I'm your museum booking assistant. How can I help you today?"
	defaultReply   = "Thank you for your message. How can I assist you further?"
)

// rule pairs trigger keywords with a canned reply. Rules are evaluated in
// order and the first match wins.
type rule struct {
	keywords []string
	reply    string
}

type responder struct {
	rules []rule
}

// NewResponder is the constructor for the rule-based responder.
func NewResponder() service.Responder {
	return &responder{
		rules: []rule{
			{
				keywords: []string{"ticket", "book"},
				reply:    "I can help you book tickets! What date would you like to visit the museum?",
			},
			{
				keywords: []string{"exhibition", "show"},
				reply:    "We have several exciting exhibitions currently. Our featured exhibitions include 'Ancient Egypt', 'Modern Masters', and 'Digital Frontiers'. Which one interests you?",
			},
			{
				keywords: []string{"hour", "open"},
				reply:    "The museum is open Tuesday to Thursday from 10 AM to 5 PM, Friday from 10 AM to 9 PM, and weekends from 9 AM to 6 PM. We're closed on Mondays.",
			},
			{
				keywords: []string{"price", "cost", "fee"},
				reply:    "We offer different ticket types. General Admission is $18, Premium Pass is $32, and Special Exhibition tickets are $25. Children under 12 enter for free, and we have discounts for students and seniors.",
			},
			{
				keywords: []string{"discount", "student", "senior"},
				reply:    "Yes, we offer a 25% discount for students with valid ID and seniors (65+). Children under 12 can enter for free.",
			},
		},
	}
}

// Reply returns the canned response for a visitor message. Matching is
// case-insensitive substring search over the whole message.
func (r *responder) Reply(message string) string {
	lowered := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.reply
			}
		}
	}

	return defaultReply
}

// Welcome returns the greeting that opens every conversation.
func (r *responder) Welcome() string {
	return welcomeMessage
}
