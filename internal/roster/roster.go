package roster

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/swimdesk/swimdesk-api/internal/models"
)

// Default returns the built-in instructor roster used when no roster file
// is configured.
func Default() []models.Instructor {
	return []models.Instructor{
		{
			Name:       "Yoni",
			SwimStyles: []string{"breaststroke", "butterfly"},
			Availability: []models.TimeWindow{
				{Day: "Tuesday", Start: models.NewClockTime(8, 0), End: models.NewClockTime(15, 0)},
				{Day: "Wednesday", Start: models.NewClockTime(8, 0), End: models.NewClockTime(15, 0)},
				{Day: "Thursday", Start: models.NewClockTime(8, 0), End: models.NewClockTime(15, 0)},
			},
		},
		{
			Name:       "Yotam",
			SwimStyles: []string{"freestyle", "breaststroke", "butterfly", "backstroke"},
			Availability: []models.TimeWindow{
				{Day: "Monday", Start: models.NewClockTime(16, 0), End: models.NewClockTime(20, 0)},
				{Day: "Thursday", Start: models.NewClockTime(16, 0), End: models.NewClockTime(20, 0)},
			},
		},
		{
			Name:       "Johnny",
			SwimStyles: []string{"freestyle", "breaststroke", "butterfly", "backstroke"},
			Availability: []models.TimeWindow{
				{Day: "Sunday", Start: models.NewClockTime(10, 0), End: models.NewClockTime(19, 0)},
				{Day: "Tuesday", Start: models.NewClockTime(10, 0), End: models.NewClockTime(19, 0)},
				{Day: "Thursday", Start: models.NewClockTime(10, 0), End: models.NewClockTime(19, 0)},
			},
		},
	}
}

// file schema for a roster override, times as "HH:MM" text.
type rosterFile struct {
	Instructors []struct {
		Name         string   `mapstructure:"name"`
		SwimStyles   []string `mapstructure:"swim_style"`
		Availability []struct {
			Day   string `mapstructure:"day"`
			Start string `mapstructure:"start"`
			End   string `mapstructure:"end"`
		} `mapstructure:"availability"`
	} `mapstructure:"instructors"`
}

// Load reads the instructor roster. An empty path yields the built-in
// default; otherwise the YAML file at path replaces it entirely.
func Load(path string) ([]models.Instructor, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var file rosterFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode roster file: %w", err)
	}
	if len(file.Instructors) == 0 {
		return nil, fmt.Errorf("roster file %s lists no instructors", path)
	}

	seen := make(map[string]struct{}, len(file.Instructors))
	result := make([]models.Instructor, 0, len(file.Instructors))
	for _, entry := range file.Instructors {
		if entry.Name == "" {
			return nil, fmt.Errorf("roster entry without a name")
		}
		if _, dup := seen[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate instructor %q in roster", entry.Name)
		}
		seen[entry.Name] = struct{}{}
		if len(entry.SwimStyles) == 0 {
			return nil, fmt.Errorf("instructor %q teaches no styles", entry.Name)
		}

		instructor := models.Instructor{Name: entry.Name, SwimStyles: entry.SwimStyles}
		for _, window := range entry.Availability {
			start, err := models.ParseClockTime(window.Start)
			if err != nil {
				return nil, fmt.Errorf("instructor %q: %w", entry.Name, err)
			}
			end, err := models.ParseClockTime(window.End)
			if err != nil {
				return nil, fmt.Errorf("instructor %q: %w", entry.Name, err)
			}
			if !start.Before(end) {
				return nil, fmt.Errorf("instructor %q: window on %s ends before it starts", entry.Name, window.Day)
			}
			instructor.Availability = append(instructor.Availability, models.TimeWindow{
				Day:   window.Day,
				Start: start,
				End:   end,
			})
		}
		result = append(result, instructor)
	}
	return result, nil
}
