package catalog

// The built-in catalog covers everyday items kids already know, grouped the
// way FFC (function / feature / class) language programs group them. A
// deployment can replace it with a JSON file via LoadFile.

var builtinItems = map[string]string{
	"apple":      "Apple",
	"airplane":   "Airplane",
	"ball":       "Ball",
	"banana":     "Banana",
	"bed":        "Bed",
	"bike":       "Bike",
	"bird":       "Bird",
	"blanket":    "Blanket",
	"blocks":     "Blocks",
	"boat":       "Boat",
	"book":       "Book",
	"bus":        "Bus",
	"car":        "Car",
	"carrot":     "Carrot",
	"cat":        "Cat",
	"cereal":     "Cereal",
	"chair":      "Chair",
	"chalk":      "Chalk",
	"chips":      "Chips",
	"coat":       "Coat",
	"cookies":    "Cookies",
	"couch":      "Couch",
	"cow":        "Cow",
	"crayon":     "Crayon",
	"cup":        "Cup",
	"dog":        "Dog",
	"doll":       "Doll",
	"drum":       "Drum",
	"firetruck":  "Fire Truck",
	"fish":       "Fish",
	"fork":       "Fork",
	"fries":      "Fries",
	"frog":       "Frog",
	"grapes":     "Grapes",
	"guitar":     "Guitar",
	"hat":        "Hat",
	"horse":      "Horse",
	"ice-cream":  "Ice Cream",
	"juice":      "Juice",
	"kite":       "Kite",
	"lemonade":   "Lemonade",
	"marker":     "Marker",
	"milk":       "Milk",
	"mittens":    "Mittens",
	"pants":      "Pants",
	"pencil":     "Pencil",
	"piano":      "Piano",
	"pillow":     "Pillow",
	"plate":      "Plate",
	"puzzle":     "Puzzle",
	"rabbit":     "Rabbit",
	"sandwich":   "Sandwich",
	"scarf":      "Scarf",
	"scissors":   "Scissors",
	"scooter":    "Scooter",
	"shirt":      "Shirt",
	"shoes":      "Shoes",
	"skateboard": "Skateboard",
	"socks":      "Socks",
	"soap":       "Soap",
	"soup":       "Soup",
	"spoon":      "Spoon",
	"stool":      "Stool",
	"swing":      "Swing",
	"tea":        "Tea",
	"toothbrush": "Toothbrush",
	"towel":      "Towel",
	"train":      "Train",
	"wagon":      "Wagon",
	"water":      "Water",
	"whistle":    "Whistle",
}

var builtinCategories = map[Dimension][]Category{
	DimensionFunction: {
		{Key: "eat", Name: "eat", Members: []string{
			"cookies", "chips", "fries", "apple", "banana", "grapes",
			"carrot", "sandwich", "cereal", "soup", "ice-cream",
		}},
		{Key: "drink", Name: "drink", Members: []string{
			"milk", "juice", "tea", "water", "lemonade",
		}},
		{Key: "wear", Name: "wear", Members: []string{
			"shirt", "pants", "socks", "shoes", "hat", "coat", "mittens", "scarf",
		}},
		{Key: "ride", Name: "ride", Members: []string{
			"bike", "car", "bus", "train", "scooter", "skateboard",
			"horse", "airplane", "boat", "wagon",
		}},
		{Key: "play-with", Name: "play with", Members: []string{
			"ball", "blocks", "doll", "puzzle", "kite", "drum",
		}},
		{Key: "draw-with", Name: "draw with", Members: []string{
			"crayon", "pencil", "marker", "chalk",
		}},
		{Key: "cut-with", Name: "cut with", Members: []string{
			"scissors",
		}},
		{Key: "read", Name: "read", Members: []string{
			"book",
		}},
		{Key: "sit-on", Name: "sit on", Members: []string{
			"chair", "couch", "stool", "swing",
		}},
		{Key: "sleep-on", Name: "sleep on", Members: []string{
			"bed", "pillow", "blanket",
		}},
	},
	DimensionFeature: {
		{Key: "are-red", Name: "are red", Members: []string{
			"apple", "firetruck", "crayon",
		}},
		{Key: "are-round", Name: "are round", Members: []string{
			"ball", "cookies", "grapes", "plate",
		}},
		{Key: "are-soft", Name: "are soft", Members: []string{
			"pillow", "blanket", "doll", "towel", "cat", "rabbit",
		}},
		{Key: "are-sweet", Name: "are sweet", Members: []string{
			"cookies", "ice-cream", "grapes", "banana", "lemonade",
		}},
		{Key: "have-wheels", Name: "have wheels", Members: []string{
			"bike", "car", "bus", "train", "scooter", "skateboard",
			"wagon", "firetruck",
		}},
		{Key: "have-legs", Name: "have legs", Members: []string{
			"dog", "cat", "horse", "cow", "frog", "chair", "couch", "bed",
		}},
		{Key: "have-wings", Name: "have wings", Members: []string{
			"bird", "airplane",
		}},
		{Key: "make-music", Name: "make music", Members: []string{
			"drum", "guitar", "piano", "whistle",
		}},
	},
	DimensionClass: {
		{Key: "animals", Name: "animals", Members: []string{
			"dog", "cat", "bird", "fish", "rabbit", "horse", "cow", "frog",
		}},
		{Key: "food", Name: "food", Members: []string{
			"cookies", "chips", "fries", "apple", "banana", "grapes",
			"carrot", "sandwich", "cereal", "soup", "ice-cream",
		}},
		{Key: "drinks", Name: "drinks", Members: []string{
			"milk", "juice", "tea", "water", "lemonade",
		}},
		{Key: "clothes", Name: "clothes", Members: []string{
			"shirt", "pants", "socks", "shoes", "hat", "mittens", "scarf",
		}},
		{Key: "vehicles", Name: "vehicles", Members: []string{
			"bike", "car", "bus", "train", "scooter", "skateboard",
			"firetruck", "airplane", "boat", "wagon",
		}},
		{Key: "toys", Name: "toys", Members: []string{
			"ball", "blocks", "doll", "puzzle", "kite",
		}},
		{Key: "furniture", Name: "furniture", Members: []string{
			"chair", "couch", "bed", "stool",
		}},
		{Key: "instruments", Name: "instruments", Members: []string{
			"drum", "guitar", "piano", "whistle",
		}},
		{Key: "kitchen-things", Name: "kitchen things", Members: []string{
			"spoon", "fork", "cup", "plate",
		}},
		{Key: "bathroom-things", Name: "bathroom things", Members: []string{
			"toothbrush", "soap", "towel",
		}},
	},
}

// Default returns the built-in catalog. The tables are validated by tests,
// so a construction failure here is a programming error.
func Default() *Catalog {
	c, err := New(builtinItems, builtinCategories)
	if err != nil {
		panic("builtin catalog invalid: " + err.Error())
	}
	return c
}
