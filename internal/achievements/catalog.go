package achievements

// MedalVariant selects the icon drawn inside the medal.
type MedalVariant string

const (
	MedalStar      MedalVariant = "star"
	MedalTrophy    MedalVariant = "trophy"
	MedalCrown     MedalVariant = "crown"
	MedalTarget    MedalVariant = "target"
	MedalLightning MedalVariant = "lightning"
	MedalBook      MedalVariant = "book"
	MedalPalette   MedalVariant = "palette"
)

// MedalTier is the medal metal.
type MedalTier string

const (
	TierBronze   MedalTier = "bronze"
	TierSilver   MedalTier = "silver"
	TierGold     MedalTier = "gold"
	TierPlatinum MedalTier = "platinum"
)

// Achievement is one entry of the static catalog. The catalog is
// configuration: read-only at runtime, never persisted.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Variant     MedalVariant
	Tier        MedalTier
}

// Achievement ids referenced by the evaluator.
const (
	FirstCorrect  = "first-correct"
	EarlyBird     = "early-bird"
	Dedicated     = "dedicated"
	Combo10       = "combo-10"
	HundredClub   = "hundred-club"
	RichLearner   = "rich-learner"
	Level5        = "level-5"
	RoomDecorator = "room-decorator"
	MulMaster2    = "mul-master-2"
	MulMaster5    = "mul-master-5"
	MulMaster10   = "mul-master-10"
	AllTables     = "all-tables"
	PerfectRoundID = "perfect-round"
)

var catalog = []Achievement{
	{FirstCorrect, "First Spark", "Answered your first question.", MedalStar, TierBronze},
	{EarlyBird, "Early Bird", "Practiced 3 days in a row.", MedalLightning, TierBronze},
	{Dedicated, "Dedicated Learner", "Practiced 7 days in a row.", MedalLightning, TierSilver},
	{Combo10, "Combo Wizard", "Practiced 10 days in a row.", MedalLightning, TierGold},
	{HundredClub, "Hundred Club", "Collected 100 points.", MedalStar, TierSilver},
	{RichLearner, "Rich Learner", "Saved up 200 coins.", MedalTrophy, TierGold},
	{Level5, "High Achiever", "Reached level 5 in any skill.", MedalBook, TierGold},
	{RoomDecorator, "Room Decorator", "Unlocked 3 items for your room.", MedalPalette, TierBronze},
	{MulMaster2, "Multiplication Master 2×", "20 correct in the 2 times table.", MedalTarget, TierBronze},
	{MulMaster5, "Multiplication Master 5×", "20 correct in the 5 times table.", MedalTarget, TierSilver},
	{MulMaster10, "Multiplication Master 10×", "20 correct in the 10 times table.", MedalTarget, TierGold},
	{AllTables, "Table Conqueror", "Mastered every table from 2 to 10.", MedalCrown, TierPlatinum},
	{PerfectRoundID, "Perfect Round", "10 out of 10 in a single round.", MedalTrophy, TierSilver},
}

// Catalog returns all achievements in display order.
func Catalog() []Achievement {
	return catalog
}

// ByID looks up a catalog entry.
func ByID(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
