package entities

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/seeder"
)

func generateUserRoles(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	users, err := t.Pools.Optional("users")
	if err != nil {
		return err
	}
	roles, err := t.Pools.Optional("roles")
	if err != nil {
		return err
	}

	for _, userID := range users.IDs() {
		for _, roleID := range roles.PickUpTo(g.IntRange(1, 2)) {
			row := database.Row{"user_id": userID, "role_id": roleID}
			if err := t.Link(ctx, audit(g, row, 300)); err != nil {
				return err
			}
		}
	}
	return nil
}

var identityProviders = []string{"google", "facebook", "apple", "github"}

func generateUserIdentities(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	users, err := t.Pools.Optional("users")
	if err != nil {
		return err
	}

	for _, userID := range users.Share(0.2) {
		row := database.Row{
			"user_id":          userID,
			"provider":         seeder.Choice(g, identityProviders),
			"provider_user_id": g.UUID(),
			"access_token":     f.SHA256(),
			"refresh_token":    g.Maybe(0.5, func() interface{} { return f.SHA256() }),
			"expires_at":       g.Maybe(0.7, func() interface{} { return seeder.Stamp(g.Future(30)) }),
			"profile_data":     seeder.JSON(map[string]string{"name": f.Name(), "email": f.Email(), "username": f.Username()}),
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 300)); err != nil {
			return err
		}
	}
	return nil
}

func generateUserSessions(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	users, err := t.Pools.Optional("users")
	if err != nil {
		return err
	}

	for _, userID := range users.IDs() {
		n := g.IntRange(0, 5)
		for i := 0; i < n; i++ {
			row := database.Row{
				"user_id":     userID,
				"user_agent":  f.UserAgent(),
				"ip_address":  f.IPv4(),
				"device_type": seeder.Choice(g, []string{"desktop", "mobile", "tablet"}),
				"location":    fmt.Sprintf("%s, %s", f.City(), f.StateAbbr()),
				"token_hash":  f.SHA256(),
				"expires_at":  seeder.Stamp(g.Future(7)),
				"revoked_at":  g.Maybe(0.3, func() interface{} { return g.Timestamp(7) }),
			}
			audit(g, row, 30)
			row["updated_at"] = g.Timestamp(7)
			row["last_active_at"] = g.Maybe(0.7, func() interface{} { return g.Timestamp(1) })
			if err := t.Create(ctx, g.UUID(), row); err != nil {
				return err
			}
		}
	}
	return nil
}
