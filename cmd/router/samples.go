// cmd/router/samples.go
package main

import (
	"time"

	"ticket-routing/internal/models"
)

// sampleTickets is the built-in demo batch used when no ticket file is given.
// It covers every issue category plus mixed tickets that exercise secondary
// categories and manual review.
func sampleTickets() []models.Ticket {
	now := time.Now().UTC()
	return []models.Ticket{
		{
			TicketID:    "TKT-001",
			CustomerID:  "CUST001",
			Subject:     "Internet connection down - URGENT",
			Description: "My internet has been down for 2 hours. Error code: NET-500. Service SVC001 is completely offline. This is affecting our entire office.",
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			TicketID:    "TKT-002",
			CustomerID:  "CUST004",
			Subject:     "No internet connection",
			Description: "Cannot connect to the internet since this morning. Getting error NET-404.",
			CreatedAt:   now.Add(-5 * time.Hour),
		},
		{
			TicketID:    "TKT-003",
			CustomerID:  "CUST006",
			Subject:     "Network outage affecting multiple locations",
			Description: "We are experiencing a complete network outage across all our branch offices. Service SVC001 is down. This is critical for our business operations.",
			CreatedAt:   now.Add(-30 * time.Minute),
		},
		{
			TicketID:    "TKT-004",
			CustomerID:  "CUST002",
			Subject:     "Incorrect charge on my bill",
			Description: "I was charged $150.00 for services I did not use. My account ACC-12345 shows charges that do not match my plan.",
			CreatedAt:   now.Add(-24 * time.Hour),
		},
		{
			TicketID:    "TKT-005",
			CustomerID:  "CUST005",
			Subject:     "Billing dispute - overcharged",
			Description: "My invoice shows $2,500.00 but my contract states $1,800.00 per month. Account ACC-67890. Please review and adjust.",
			CreatedAt:   now.Add(-12 * time.Hour),
		},
		{
			TicketID:    "TKT-007",
			CustomerID:  "CUST004",
			Subject:     "Router not working properly",
			Description: "My router keeps disconnecting every few minutes. Error code: TECH-301. I have tried restarting it multiple times.",
			CreatedAt:   now.Add(-3 * time.Hour),
		},
		{
			TicketID:    "TKT-008",
			CustomerID:  "CUST008",
			Subject:     "Slow internet speed",
			Description: "Internet speed is very slow, only getting 10 Mbps instead of the promised 100 Mbps. Service SVC002.",
			CreatedAt:   now.Add(-6 * time.Hour),
		},
		{
			TicketID:    "TKT-011",
			CustomerID:  "CUST007",
			Subject:     "Cannot login to my account",
			Description: "I forgot my password and the reset link is not working. Account ACC-11111. Need urgent access.",
			CreatedAt:   now.Add(-1 * time.Hour),
		},
		{
			TicketID:    "TKT-012",
			CustomerID:  "CUST008",
			Subject:     "Account locked",
			Description: "My account has been locked after multiple login attempts. Service SVC005. Please unlock it.",
			CreatedAt:   now.Add(-45 * time.Minute),
		},
		{
			TicketID:    "TKT-013",
			CustomerID:  "CUST001",
			Subject:     "Need to reset authentication credentials",
			Description: "Our admin account ACC-99999 needs password reset. Authentication service SVC005 is showing errors.",
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			TicketID:    "TKT-014",
			CustomerID:  "CUST006",
			Subject:     "Multiple issues - billing and service",
			Description: "I am experiencing network outages on SVC001 and also noticed incorrect charges of $500.00 on my bill. Account ACC-55555.",
			CreatedAt:   now.Add(-10 * time.Hour),
		},
		{
			TicketID:    "TKT-015",
			CustomerID:  "CUST003",
			Subject:     "Service degradation and billing question",
			Description: "Service SVC003 has been slow for the past week. Also, I have a question about my recent invoice showing $3,200.00.",
			CreatedAt:   now.Add(-30 * time.Hour),
		},
	}
}
