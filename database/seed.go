package database

import (
	"github.com/rpupo63/personal-blog/config"
	"github.com/rpupo63/personal-blog/models"
	"github.com/rs/zerolog/log"
)

// SeedProfiles inserts the site owner's profile when the UserProfile table is empty.
// Profiles are read-only through the API, so this is how the first one gets in.
func SeedProfiles(d Database, cfg map[string]string) error {
	count, err := d.UserProfileRepo().Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	owner := &models.UserProfile{
		Name:             config.GetString(cfg, "OWNER_NAME", "Site Owner"),
		Email:            config.GetString(cfg, "OWNER_EMAIL", "owner@example.com"),
		Bio:              config.GetString(cfg, "OWNER_BIO", "Writes about software."),
		SocialMediaLinks: config.GetString(cfg, "OWNER_SOCIAL_LINK", ""),
	}
	if err := d.UserProfileRepo().Add(owner); err != nil {
		return err
	}

	log.Info().Int64("userID", owner.UserID).Str("name", owner.Name).Msg("Seeded owner profile")
	return nil
}
