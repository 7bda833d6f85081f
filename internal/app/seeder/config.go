package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is a demo dataset of users with their roommate profiles.
type Config struct {
	DryRun bool          `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
	Users  []FixtureUser `yaml:"users"`
}

// FixtureUser is one account to create. Profile is optional.
type FixtureUser struct {
	Username       string          `yaml:"username"`
	Email          string          `yaml:"email"`
	Name           string          `yaml:"name"`
	PhoneNumber    string          `yaml:"phone_number"`
	WhatsAppNumber string          `yaml:"whatsapp_number"`
	Profile        *FixtureProfile `yaml:"profile"`
}

// FixtureProfile holds questionnaire answers as they appear in the stored
// profile. Values are checked against the domain rules before insert.
type FixtureProfile struct {
	RoomPreference     string  `yaml:"room_preference"`
	BathroomPreference string  `yaml:"bathroom_preference"`
	DietaryPreference  string  `yaml:"dietary_preference"`
	CulturalPreference *string `yaml:"cultural_preference"`
	PetFriendly        bool    `yaml:"pet_friendly"`
	RentMin            int     `yaml:"rent_min"`
	RentMax            int     `yaml:"rent_max"`
	AboutMe            string  `yaml:"about_me"`
	CleanlinessLevel   int     `yaml:"cleanliness_level"`
	SleepSchedule      string  `yaml:"sleep_schedule"`
	GuestFrequency     string  `yaml:"guest_frequency"`
	StudyEnvironment   string  `yaml:"study_environment"`
}

// LoadConfig reads a fixture file. ENV overrides YAML for scalar settings.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("seeder config: fixture path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
	}
	return &cfg, nil
}
