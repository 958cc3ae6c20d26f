// Package catalog supplies the activity set the store is seeded with.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mergington/activities/internal/domain/model"
)

// keyDelim separates nested YAML keys. Activity names are single URL path
// segments, so they never contain it.
const keyDelim = "/"

// Default returns the built-in Mergington High School activities.
func Default() model.Activities {
	return model.Activities{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice drills and compete in inter-school basketball games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu"},
		},
		"Soccer Club": {
			Description:     "Train with the team and play weekend soccer matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"noah@mergington.edu", "ava@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore painting, drawing, and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"isabella@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Rehearse and perform school plays and musicals",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"mia@mergington.edu", "ethan@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu"},
		},
		"Debate Club": {
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
	}
}

// Load reads a YAML catalog from path. An empty path yields Default().
//
// The file lists activities under a top-level "activities" key using the
// same field names as the JSON API.
func Load(_ context.Context, path string) (model.Activities, error) {
	if path == "" {
		return Default(), nil
	}

	k := koanf.New(keyDelim)
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, path, err)
	}

	var out model.Activities
	if err := k.UnmarshalWithConf("activities", &out, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, path, err)
	}
	return Normalize(out)
}

// Normalize validates a catalog and removes duplicate roster entries,
// keeping the first occurrence. The input is not modified.
func Normalize(in model.Activities) (model.Activities, error) {
	if len(in) == 0 {
		return nil, ErrEmptyCatalog
	}
	out := make(model.Activities, len(in))
	for name, a := range in {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: blank activity name", ErrInvalidActivity)
		}
		if a.MaxParticipants < 0 {
			return nil, fmt.Errorf("%w: %s: max_participants must not be negative", ErrInvalidActivity, name)
		}
		seen := make(map[string]struct{}, len(a.Participants))
		roster := make([]string, 0, len(a.Participants))
		for _, email := range a.Participants {
			if _, dup := seen[email]; dup {
				continue
			}
			seen[email] = struct{}{}
			roster = append(roster, email)
		}
		a.Participants = roster
		out[name] = a
	}
	return out, nil
}
