package workbook

import "time"

// SectionID identifies one of the four fixed program sections.
type SectionID string

const (
	SectionIntro     SectionID = "intro"
	SectionTreasures SectionID = "treasures"
	SectionMinistry  SectionID = "ministry"
	SectionLiving    SectionID = "living"
)

// SectionOrder is the fixed document order of the program sections.
var SectionOrder = []SectionID{SectionIntro, SectionTreasures, SectionMinistry, SectionLiving}

// Item is one unit of the program, assignable or not.
type Item struct {
	ID               string `bson:"id" json:"id"`
	Text             string `bson:"text" json:"text"`
	Position         int    `bson:"position" json:"position"`
	IsAssignable     bool   `bson:"isAssignable" json:"isAssignable"`
	ChairmanAssigned bool   `bson:"chairmanAssigned" json:"chairmanAssigned"`
	HasPair          bool   `bson:"hasPair" json:"hasPair"`
}

// Section is one of the four program parts with its extracted items.
type Section struct {
	ID        SectionID `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Color     string    `bson:"color" json:"color"`
	Tone      string    `bson:"tone" json:"tone"`
	ItemsTone string    `bson:"itemsTone" json:"itemsTone"`
	Position  int       `bson:"position" json:"position"`
	Items     []Item    `bson:"items" json:"items"`
}

// Workbook is the full parse result for one week.
type Workbook struct {
	WeekKey   string    `bson:"weekKey" json:"weekKey"`
	Sections  []Section `bson:"sections" json:"sections"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// New creates a Workbook for the given week key.
func New(weekKey string, sections []Section) *Workbook {
	return &Workbook{
		WeekKey:   weekKey,
		Sections:  sections,
		CreatedAt: time.Now().UTC(),
	}
}

// Appearance holds the static display attributes of a section. These are
// fixed per section id and never derived from page content.
type Appearance struct {
	Color     string
	Tone      string
	ItemsTone string
}

var appearances = map[SectionID]Appearance{
	SectionIntro:     {Color: "#222222", Tone: "#ffffff", ItemsTone: "#222222"},
	SectionTreasures: {Color: "#ffffff", Tone: "#606a70", ItemsTone: "#606a70"},
	SectionMinistry:  {Color: "#ffffff", Tone: "#c18626", ItemsTone: "#c18626"},
	SectionLiving:    {Color: "#ffffff", Tone: "#961526", ItemsTone: "#961526"},
}

// AppearanceOf returns the display attributes for a section id.
func AppearanceOf(id SectionID) Appearance {
	return appearances[id]
}
