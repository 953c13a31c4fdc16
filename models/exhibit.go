package models

import (
	"sort"
	"time"
)

// Exhibit is a physical or virtual exhibition listing. The default source is
// the static list below; rows from the CMS exhibits table overlay it by title.
type Exhibit struct {
	ID          uint       `json:"-" gorm:"primaryKey"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	StartDate   time.Time  `json:"startDate" db:"start_date" gorm:"type:date;not null"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date" gorm:"type:date"`
	Venue       string     `json:"venue" db:"venue" gorm:"type:text;not null"`
	City        string     `json:"city" db:"city" gorm:"type:text;not null"`
	Country     string     `json:"country" db:"country" gorm:"type:text;not null"`
	Description string     `json:"description" db:"description" gorm:"type:text"`
	ImageURL    string     `json:"imageUrl" db:"image_url" gorm:"type:text"`
	Link        *string    `json:"link,omitempty" db:"link" gorm:"type:text"`
	Upcoming    bool       `json:"upcoming" db:"upcoming" gorm:"not null;default:false"`
}

func (Exhibit) TableName() string {
	return "exhibits"
}

// StaticExhibits returns the built-in exhibition history shown when the CMS
// has no rows of its own.
func StaticExhibits() []Exhibit {
	end2019 := date(2019, time.November, 3)
	return []Exhibit{
		{
			Title:       "Northern Light",
			StartDate:   date(2026, time.March, 12),
			Venue:       "Galleri Format",
			City:        "Oslo",
			Country:     "Norway",
			Description: "Large-format prints from the coastal series.",
			ImageURL:    "/images/exhibits/northern-light.jpg",
			Upcoming:    true,
		},
		{
			Title:       "Still Water",
			StartDate:   date(2023, time.June, 2),
			Venue:       "Fotografiska",
			City:        "Stockholm",
			Country:     "Sweden",
			Description: "Group show on water and stillness.",
			ImageURL:    "/images/exhibits/still-water.jpg",
		},
		{
			Title:       "First Frost",
			StartDate:   date(2019, time.October, 18),
			EndDate:     &end2019,
			Venue:       "Kunsthalle am Hamburger Platz",
			City:        "Berlin",
			Country:     "Germany",
			Description: "Debut solo exhibition.",
			ImageURL:    "/images/exhibits/first-frost.jpg",
		},
	}
}

// OrderExhibits sorts for display: upcoming shows first, then by descending
// start date within each group.
func OrderExhibits(exhibits []Exhibit) {
	sort.SliceStable(exhibits, func(i, j int) bool {
		if exhibits[i].Upcoming != exhibits[j].Upcoming {
			return exhibits[i].Upcoming
		}
		return exhibits[i].StartDate.After(exhibits[j].StartDate)
	})
}

// MergeExhibits overlays CMS-managed rows onto the static list. A CMS row
// with the same title replaces the static entry; the rest are appended.
func MergeExhibits(static, cms []Exhibit) []Exhibit {
	merged := make([]Exhibit, 0, len(static)+len(cms))
	replaced := make(map[string]bool, len(cms))
	for _, e := range cms {
		replaced[e.Title] = true
	}
	for _, e := range static {
		if !replaced[e.Title] {
			merged = append(merged, e)
		}
	}
	merged = append(merged, cms...)
	OrderExhibits(merged)
	return merged
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
