package model

type Level string

const (
	LevelBronze   Level = "bronze"
	LevelSilver   Level = "silver"
	LevelGold     Level = "gold"
	LevelPlatinum Level = "platinum"
	LevelDiamond  Level = "diamond"
)

type levelTier struct {
	Level     Level
	MinPoints int64
}

// highest tier first; LevelForPoints returns the first tier whose
// threshold is satisfied
var levelTiers = []levelTier{
	{LevelDiamond, 15000},
	{LevelPlatinum, 5000},
	{LevelGold, 1500},
	{LevelSilver, 500},
	{LevelBronze, 0},
}

func LevelForPoints(points int64) Level {
	for _, t := range levelTiers {
		if points >= t.MinPoints {
			return t.Level
		}
	}
	return LevelBronze
}
