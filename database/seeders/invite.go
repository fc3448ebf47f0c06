package seeders

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/models"
)

// initialInvites is the guest list the event started with, previously kept
// as a static in-process lookup table. Seeding is idempotent: existing slugs
// are left untouched so admin edits survive a re-seed.
var initialInvites = []models.Invite{
	{Slug: "vuniq", Name: "Marlon Roches & compañía", LimitGuests: 2},
	{Slug: "ralet", Name: "Fernando & compañía", LimitGuests: 2},
	{Slug: "kimlo", Name: "Derly Rodas", LimitGuests: 4},
	{Slug: "zefar", Name: "Pablo Muralles", LimitGuests: 2},
	{Slug: "todex", Name: "Alexander Villatoro", LimitGuests: 1},
	{Slug: "lamir", Name: "Brenner Hernández & compañía", LimitGuests: 2},
	{Slug: "poyna", Name: "Lester Aquino", LimitGuests: 1},
	{Slug: "quste", Name: "Hector Zetino", LimitGuests: 1},
	{Slug: "mirad", Name: "Familia Arango Constanza", LimitGuests: 3},
	{Slug: "hobin", Name: "Nathalia Barrera", LimitGuests: 1},
	{Slug: "sural", Name: "Familia Hernández Dominguez", LimitGuests: 5},
	{Slug: "tevok", Name: "Jose Pablo Guillén", LimitGuests: 1},
	{Slug: "wexal", Name: "Sebastián Fernandez", LimitGuests: 1},
	{Slug: "yonka", Name: "Evan Zea", LimitGuests: 1},
	{Slug: "pakru", Name: "Juan Pablo de Leon", LimitGuests: 1},
	{Slug: "jemti", Name: "José Montenegro", LimitGuests: 1},
	{Slug: "vakor", Name: "Mario Gómez & compañía", LimitGuests: 2},
	{Slug: "linas", Name: "Familia Meléndez Mendoza", LimitGuests: 4},
	{Slug: "dretu", Name: "Familia Melendez Ortiz", LimitGuests: 3},
	{Slug: "moska", Name: "Andrea Carranza", LimitGuests: 1},
	{Slug: "fenli", Name: "Michelle Morales & compañía", LimitGuests: 2},
	{Slug: "garon", Name: "Gabriel Rodriguez", LimitGuests: 1},
	{Slug: "hudek", Name: "Adonías Vásquez", LimitGuests: 1},
	{Slug: "sibra", Name: "Sophia Dubon", LimitGuests: 1},
	{Slug: "qolam", Name: "Kevin Najera", LimitGuests: 1},
	{Slug: "wepir", Name: "Carlos del Valle", LimitGuests: 1},
	{Slug: "nixad", Name: "Julio de la Rosa", LimitGuests: 1},
	{Slug: "tobal", Name: "Gloria Castellanos", LimitGuests: 1},
	{Slug: "rafis", Name: "Carmen Fajardo", LimitGuests: 1},
	{Slug: "zubem", Name: "Familia Vásquez De la Rosa", LimitGuests: 2},
	{Slug: "kelra", Name: "Familia Gómez Callejas", LimitGuests: 4},
}

// SeedInvites inserts the initial guest list, skipping slugs already present.
func SeedInvites(db *gorm.DB) error {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&initialInvites)
	if result.Error != nil {
		configslog.Log.Error("failed to seed invites", zap.Error(result.Error))
		return result.Error
	}
	configslog.SLog.Infow("invites seeded", "inserted", result.RowsAffected, "total", len(initialInvites))
	return nil
}
