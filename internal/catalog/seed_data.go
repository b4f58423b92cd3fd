package catalog

import "github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"

func group(category string, difficulty int, words ...string) models.GameGroup {
	return models.GameGroup{Category: category, Words: words, Difficulty: difficulty}
}

// DefaultGames is the starter catalog loaded by Seed on an empty database.
var DefaultGames = []GameDefinition{
	{
		Level: models.LevelEasy,
		Title: "Colors and Shapes",
		Words: []string{"RED", "CIRCLE", "BLUE", "SQUARE", "DOG", "CAT", "BIRD", "FISH",
			"GREEN", "TRIANGLE", "YELLOW", "STAR", "ONE", "TWO", "THREE", "FOUR"},
		Groups: []models.GameGroup{
			group("Colors", 1, "RED", "BLUE", "GREEN", "YELLOW"),
			group("Shapes", 2, "CIRCLE", "SQUARE", "TRIANGLE", "STAR"),
			group("Animals", 3, "DOG", "CAT", "BIRD", "FISH"),
			group("Numbers", 4, "ONE", "TWO", "THREE", "FOUR"),
		},
	},
	{
		Level: models.LevelEasy,
		Title: "Home and Family",
		Words: []string{"MOM", "DAD", "BABY", "SISTER", "BED", "CHAIR", "TABLE", "LAMP",
			"HAPPY", "SAD", "MAD", "GLAD", "HOT", "COLD", "WET", "DRY"},
		Groups: []models.GameGroup{
			group("Family", 1, "MOM", "DAD", "BABY", "SISTER"),
			group("Furniture", 2, "BED", "CHAIR", "TABLE", "LAMP"),
			group("Feelings", 3, "HAPPY", "SAD", "MAD", "GLAD"),
			group("Opposites", 4, "HOT", "COLD", "WET", "DRY"),
		},
	},
	{
		Level: models.LevelEasy,
		Title: "Kitchen Fun",
		Words: []string{"SPOON", "FORK", "KNIFE", "PLATE", "APPLE", "BREAD", "MILK", "WATER",
			"STIR", "BAKE", "COOK", "EAT", "SALTY", "BITTER", "SWEET", "SOUR"},
		Groups: []models.GameGroup{
			group("Kitchen Tools", 1, "SPOON", "FORK", "KNIFE", "PLATE"),
			group("Food and Drink", 2, "APPLE", "BREAD", "MILK", "WATER"),
			group("Kitchen Actions", 3, "STIR", "BAKE", "COOK", "EAT"),
			group("Tastes", 4, "SALTY", "BITTER", "SWEET", "SOUR"),
		},
	},
	{
		Level: models.LevelEasy,
		Title: "Transportation",
		Words: []string{"CAR", "BUS", "BIKE", "TRAIN", "FAST", "SLOW", "STOP", "GO",
			"WHEEL", "SEAT", "HORN", "DOOR", "ROAD", "BRIDGE", "TUNNEL", "PARK"},
		Groups: []models.GameGroup{
			group("Vehicles", 1, "CAR", "BUS", "BIKE", "TRAIN"),
			group("Speed Words", 2, "FAST", "SLOW", "STOP", "GO"),
			group("Car Parts", 3, "WHEEL", "SEAT", "HORN", "DOOR"),
			group("Places to Go", 4, "ROAD", "BRIDGE", "TUNNEL", "PARK"),
		},
	},
	{
		Level: models.LevelMedium,
		Title: "Science and Nature",
		Words: []string{"BUTTERFLY", "CATERPILLAR", "COCOON", "EGG", "RAIN", "SNOW", "HAIL", "SLEET",
			"PLANETS", "STARS", "MOON", "SUN", "ROOTS", "STEM", "LEAVES", "FLOWER"},
		Groups: []models.GameGroup{
			group("Butterfly Life Cycle", 1, "BUTTERFLY", "CATERPILLAR", "COCOON", "EGG"),
			group("Weather Types", 2, "RAIN", "SNOW", "HAIL", "SLEET"),
			group("Space Objects", 3, "PLANETS", "STARS", "MOON", "SUN"),
			group("Plant Parts", 4, "ROOTS", "STEM", "LEAVES", "FLOWER"),
		},
	},
	{
		Level: models.LevelMedium,
		Title: "Ocean Adventures",
		Words: []string{"SHARK", "DOLPHIN", "WHALE", "OCTOPUS", "CORAL", "SEAWEED", "SAND", "SHELL",
			"SWIM", "DIVE", "SURF", "FLOAT", "SALTY", "DEEP", "BLUE", "COLD"},
		Groups: []models.GameGroup{
			group("Sea Creatures", 1, "SHARK", "DOLPHIN", "WHALE", "OCTOPUS"),
			group("Ocean Floor", 2, "CORAL", "SEAWEED", "SAND", "SHELL"),
			group("Water Activities", 3, "SWIM", "DIVE", "SURF", "FLOAT"),
			group("Ocean Description", 4, "SALTY", "DEEP", "BLUE", "COLD"),
		},
	},
	{
		Level: models.LevelMedium,
		Title: "Forest Ecosystem",
		Words: []string{"TRUNK", "BRANCH", "LEAF", "BARK", "BEAR", "DEER", "RABBIT", "SQUIRREL",
			"ACORN", "BERRY", "MUSHROOM", "NUT", "SHADE", "QUIET", "GREEN", "FRESH"},
		Groups: []models.GameGroup{
			group("Tree Parts", 1, "TRUNK", "BRANCH", "LEAF", "BARK"),
			group("Forest Animals", 2, "BEAR", "DEER", "RABBIT", "SQUIRREL"),
			group("Forest Food", 3, "ACORN", "BERRY", "MUSHROOM", "NUT"),
			group("Forest Feel", 4, "SHADE", "QUIET", "GREEN", "FRESH"),
		},
	},
	{
		Level: models.LevelHard,
		Title: "Geography and Culture",
		Words: []string{"DESERT", "OASIS", "CACTUS", "DUNES", "DEMOCRACY", "VOTE", "CITIZEN", "RIGHTS",
			"FRACTION", "DECIMAL", "PERCENT", "RATIO", "EVAPORATION", "CONDENSATION", "PRECIPITATION", "COLLECTION"},
		Groups: []models.GameGroup{
			group("Desert Features", 1, "DESERT", "OASIS", "CACTUS", "DUNES"),
			group("Civics Terms", 2, "DEMOCRACY", "VOTE", "CITIZEN", "RIGHTS"),
			group("Math Concepts", 3, "FRACTION", "DECIMAL", "PERCENT", "RATIO"),
			group("Water Cycle", 4, "EVAPORATION", "CONDENSATION", "PRECIPITATION", "COLLECTION"),
		},
	},
	{
		Level: models.LevelHard,
		Title: "Human Body Systems",
		Words: []string{"HEART", "LUNGS", "BRAIN", "STOMACH", "BLOOD", "OXYGEN", "NUTRIENTS", "WASTE",
			"PUMP", "FILTER", "BREATHE", "DIGEST", "CIRCULATORY", "RESPIRATORY", "NERVOUS", "DIGESTIVE"},
		Groups: []models.GameGroup{
			group("Major Organs", 1, "HEART", "LUNGS", "BRAIN", "STOMACH"),
			group("Body Substances", 2, "BLOOD", "OXYGEN", "NUTRIENTS", "WASTE"),
			group("Body Functions", 3, "PUMP", "FILTER", "BREATHE", "DIGEST"),
			group("Body Systems", 4, "CIRCULATORY", "RESPIRATORY", "NERVOUS", "DIGESTIVE"),
		},
	},
	{
		Level: models.LevelYouth,
		Title: "Literature and Logic",
		Words: []string{"METAPHOR", "SIMILE", "ALLITERATION", "HYPERBOLE", "HYPOTHESIS", "THEORY", "EVIDENCE", "CONCLUSION",
			"RENAISSANCE", "MEDIEVAL", "BAROQUE", "ROMANTIC", "ALGORITHM", "VARIABLE", "FUNCTION", "LOOP"},
		Groups: []models.GameGroup{
			group("Literary Devices", 1, "METAPHOR", "SIMILE", "ALLITERATION", "HYPERBOLE"),
			group("Scientific Method", 2, "HYPOTHESIS", "THEORY", "EVIDENCE", "CONCLUSION"),
			group("Historical Periods", 3, "RENAISSANCE", "MEDIEVAL", "BAROQUE", "ROMANTIC"),
			group("Programming Terms", 4, "ALGORITHM", "VARIABLE", "FUNCTION", "LOOP"),
		},
	},
	{
		Level: models.LevelYouth,
		Title: "World Cultures",
		Words: []string{"TRADITION", "CUSTOM", "RITUAL", "CEREMONY", "LANGUAGE", "DIALECT", "ACCENT", "SCRIPT",
			"HERITAGE", "ANCESTRY", "LEGACY", "IDENTITY", "DIVERSITY", "UNITY", "RESPECT", "UNDERSTANDING"},
		Groups: []models.GameGroup{
			group("Cultural Practices", 1, "TRADITION", "CUSTOM", "RITUAL", "CEREMONY"),
			group("Communication", 2, "LANGUAGE", "DIALECT", "ACCENT", "SCRIPT"),
			group("Cultural Identity", 3, "HERITAGE", "ANCESTRY", "LEGACY", "IDENTITY"),
			group("Cultural Values", 4, "DIVERSITY", "UNITY", "RESPECT", "UNDERSTANDING"),
		},
	},
}
