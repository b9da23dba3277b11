package seeder

import "jobboard/internal/config"

// Defaults returns the seeders for cfg. Demo data is only added on request.
func Defaults(cfg config.SeedConfig, demo bool) []Seeder {
	out := []Seeder{AdminSeeder{
		Email:    cfg.AdminEmail,
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}}
	if demo {
		out = append(out, DemoSeeder{})
	}
	return out
}
