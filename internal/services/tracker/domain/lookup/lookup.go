// Package lookup loads the static reference tables the tracker starts from:
// baby size by week, the vaccination schedule, the hospital bag checklist,
// daily water goals, and the demo account.
package lookup

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embeddedFS embed.FS

// VaccineDose is one scheduled vaccination.
type VaccineDose struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	DueDate string `yaml:"due_date"`
}

// BagItem is one hospital bag checklist entry.
type BagItem struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// WaterGoals holds daily glasses by trimester.
type WaterGoals struct {
	First  int `yaml:"first"`
	Second int `yaml:"second"`
	Third  int `yaml:"third"`
}

// DemoUser describes the account used for demo sessions.
type DemoUser struct {
	ID            string `yaml:"id"`
	Email         string `yaml:"email"`
	Name          string `yaml:"name"`
	Phone         string `yaml:"phone"`
	DateOfBirth   string `yaml:"date_of_birth"`
	DueDate       string `yaml:"due_date"`
	CurrentWeek   int    `yaml:"current_week"`
	PregnancyType string `yaml:"pregnancy_type"`
	BabyName      string `yaml:"baby_name"`
}

// Tables groups every reference table.
type Tables struct {
	BabySizes    []string
	Vaccinations []VaccineDose
	HospitalBag  []BagItem
	WaterGoals   WaterGoals
	DemoUser     DemoUser
}

var (
	defaultOnce   sync.Once
	defaultTables Tables
	defaultErr    error
)

// Default returns the embedded tables. It panics if they are malformed,
// which only a broken build can cause.
func Default() Tables {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = Load(embeddedFS)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultTables.clone()
}

// Load reads and validates data/*.yaml from fsys.
func Load(fsys fs.FS) (Tables, error) {
	var doc struct {
		Sizes        []string      `yaml:"sizes"`
		Vaccinations []VaccineDose `yaml:"vaccinations"`
		HospitalBag  []BagItem     `yaml:"hospital_bag"`
		WaterGoals   *WaterGoals   `yaml:"water_goals"`
		DemoUser     *DemoUser     `yaml:"demo_user"`
	}
	paths, err := fs.Glob(fsys, "data/*.yaml")
	if err != nil {
		return Tables{}, fmt.Errorf("glob lookup tables: %w", err)
	}
	slices.Sort(paths)
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return Tables{}, fmt.Errorf("read %s: %w", p, err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Tables{}, fmt.Errorf("parse %s: %w", p, err)
		}
	}

	tables := Tables{
		BabySizes:    doc.Sizes,
		Vaccinations: doc.Vaccinations,
		HospitalBag:  doc.HospitalBag,
	}
	if doc.WaterGoals != nil {
		tables.WaterGoals = *doc.WaterGoals
	}
	if doc.DemoUser != nil {
		tables.DemoUser = *doc.DemoUser
	}
	if err := tables.validate(); err != nil {
		return Tables{}, err
	}
	return tables, nil
}

func (t Tables) validate() error {
	if len(t.BabySizes) == 0 {
		return fmt.Errorf("baby size table is empty")
	}
	seenDoses := map[string]bool{}
	for _, dose := range t.Vaccinations {
		if strings.TrimSpace(dose.ID) == "" || strings.TrimSpace(dose.Name) == "" {
			return fmt.Errorf("vaccination dose requires id and name: %+v", dose)
		}
		if seenDoses[dose.ID] {
			return fmt.Errorf("duplicate vaccination id %q", dose.ID)
		}
		seenDoses[dose.ID] = true
	}
	seenItems := map[string]bool{}
	for _, item := range t.HospitalBag {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("hospital bag item requires a name")
		}
		if seenItems[item.Name] {
			return fmt.Errorf("duplicate hospital bag item %q", item.Name)
		}
		seenItems[item.Name] = true
	}
	if t.WaterGoals.First <= 0 || t.WaterGoals.Second <= 0 || t.WaterGoals.Third <= 0 {
		return fmt.Errorf("water goals must be positive: %+v", t.WaterGoals)
	}
	if strings.TrimSpace(t.DemoUser.ID) == "" {
		return fmt.Errorf("demo user requires an id")
	}
	return nil
}

func (t Tables) clone() Tables {
	t.BabySizes = slices.Clone(t.BabySizes)
	t.Vaccinations = slices.Clone(t.Vaccinations)
	t.HospitalBag = slices.Clone(t.HospitalBag)
	return t
}

// BabySize returns the comparison for a pregnancy week. Weeks past the end
// of the table, and weeks below one, resolve to the final entry.
func (t Tables) BabySize(week int) string {
	if len(t.BabySizes) == 0 {
		return ""
	}
	if week < 1 || week > len(t.BabySizes) {
		return t.BabySizes[len(t.BabySizes)-1]
	}
	return t.BabySizes[week-1]
}
