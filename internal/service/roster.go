package service

import "book-club-server/internal/domain"

// defaultRoster is the club's fixed credential roster, keyed by
// lowercase username. Seeded at process start, never mutated.
func defaultRoster() map[string]domain.RosterEntry {
	return map[string]domain.RosterEntry{
		"leticia": {
			Identity: domain.Identity{
				ID:        "user_let",
				Username:  "leticia",
				Name:      "Letícia",
				AvatarURL: "/icon-let.jpeg",
				Role:      domain.RoleMember,
			},
			Secret: "Clube@123",
		},
		"julianna": {
			Identity: domain.Identity{
				ID:        "user_ju",
				Username:  "julianna",
				Name:      "Julianna",
				AvatarURL: "/icon-juju.png",
				Role:      domain.RoleMember,
			},
			Secret: "Clube@123",
		},
		"livia": {
			Identity: domain.Identity{
				ID:        "user_liv",
				Username:  "livia",
				Name:      "Lívia",
				AvatarURL: "/icon-liv.png",
				Role:      domain.RoleMember,
			},
			Secret: "Clube@123",
		},
	}
}
