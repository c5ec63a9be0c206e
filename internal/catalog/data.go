package catalog

import "github.com/pocketai/backend/internal/domain"

// seedProducts is the built-in store catalog used for recommendations and
// searches. Ids are unique and stable for the process lifetime.
var seedProducts = []domain.Product{
	// Clothing - T-shirts
	{ID: 1, Name: "Sports T-Shirt (Breathable)", Category: "clothing", Type: "t-shirt",
		Tags: []string{"sports", "running", "gym", "breathable"}, Price: 29.99, Image: "sport-tshirt-1.jpg"},
	{ID: 2, Name: "Athletic Performance T-Shirt", Category: "clothing", Type: "t-shirt",
		Tags: []string{"sports", "athletics", "performance"}, Price: 34.99, Image: "sport-tshirt-2.jpg"},
	{ID: 3, Name: "Moisture-Wicking Running Shirt", Category: "clothing", Type: "t-shirt",
		Tags: []string{"sports", "running", "moisture-wicking"}, Price: 32.99, Image: "sport-tshirt-3.jpg"},
	{ID: 4, Name: "Casual Cotton T-Shirt", Category: "clothing", Type: "t-shirt",
		Tags: []string{"casual", "cotton", "everyday"}, Price: 19.99, Image: "casual-tshirt-1.jpg"},
	{ID: 5, Name: "Dress Shirt (Formal)", Category: "clothing", Type: "shirt",
		Tags: []string{"formal", "business", "dress"}, Price: 59.99, Image: "dress-shirt-1.jpg"},

	// Electronics
	{ID: 6, Name: "Smart Watch (Fitness Tracking)", Category: "electronics", Type: "watch",
		Tags: []string{"fitness", "tracking", "smart", "wearable"}, Price: 199.99, Image: "smartwatch-1.jpg"},
	{ID: 7, Name: "Wireless Earbuds", Category: "electronics", Type: "audio",
		Tags: []string{"wireless", "audio", "earbuds", "music"}, Price: 129.99, Image: "earbuds-1.jpg"},
	{ID: 8, Name: "Laptop Backpack", Category: "accessories", Type: "bag",
		Tags: []string{"laptop", "backpack", "travel", "storage"}, Price: 79.99, Image: "backpack-1.jpg"},
	{ID: 9, Name: "Running Shoes", Category: "footwear", Type: "shoes",
		Tags: []string{"running", "sports", "athletic", "footwear"}, Price: 89.99, Image: "running-shoes-1.jpg"},
	{ID: 10, Name: "Yoga Mat", Category: "fitness", Type: "equipment",
		Tags: []string{"yoga", "fitness", "exercise", "mat"}, Price: 45.99, Image: "yoga-mat-1.jpg"},

	// Additional Electronics
	{ID: 11, Name: "4K Smart TV (55-inch)", Category: "electronics", Type: "television",
		Tags: []string{"4k", "smart", "tv", "entertainment"}, Price: 499.99, Image: "smart-tv.jpg"},
	{ID: 12, Name: "Bluetooth Speaker", Category: "electronics", Type: "audio",
		Tags: []string{"bluetooth", "speaker", "wireless", "music"}, Price: 89.99, Image: "bluetooth-speaker.jpg"},
	{ID: 13, Name: "Gaming Laptop", Category: "electronics", Type: "computer",
		Tags: []string{"gaming", "laptop", "high-performance", "computer"}, Price: 1299.99, Image: "gaming-laptop.jpg"},
	{ID: 14, Name: "Digital Camera (Mirrorless)", Category: "electronics", Type: "camera",
		Tags: []string{"camera", "digital", "photography", "mirrorless"}, Price: 799.99, Image: "digital-camera.jpg"},
	{ID: 15, Name: "Tablet with Stylus", Category: "electronics", Type: "tablet",
		Tags: []string{"tablet", "stylus", "digital", "drawing"}, Price: 349.99, Image: "tablet.jpg"},

	// Home and Kitchen
	{ID: 16, Name: "Coffee Maker", Category: "home", Type: "kitchen",
		Tags: []string{"coffee", "kitchen", "appliance", "brewing"}, Price: 119.99, Image: "coffee-maker.jpg"},
	{ID: 17, Name: "Air Fryer", Category: "home", Type: "kitchen",
		Tags: []string{"cooking", "air fryer", "kitchen", "appliance"}, Price: 89.99, Image: "air-fryer.jpg"},
	{ID: 18, Name: "Robot Vacuum Cleaner", Category: "home", Type: "cleaning",
		Tags: []string{"vacuum", "robot", "cleaning", "smart"}, Price: 249.99, Image: "robot-vacuum.jpg"},
	{ID: 19, Name: "Bed Sheets Set (Queen)", Category: "home", Type: "bedding",
		Tags: []string{"sheets", "bedding", "cotton", "queen"}, Price: 59.99, Image: "bed-sheets.jpg"},
	{ID: 20, Name: "Smart Light Bulbs (4-Pack)", Category: "home", Type: "lighting",
		Tags: []string{"smart", "lighting", "bulbs", "wifi"}, Price: 49.99, Image: "smart-bulbs.jpg"},

	// More Clothing
	{ID: 21, Name: "Denim Jeans", Category: "clothing", Type: "pants",
		Tags: []string{"jeans", "denim", "casual", "everyday"}, Price: 59.99, Image: "jeans.jpg"},
	{ID: 22, Name: "Winter Jacket", Category: "clothing", Type: "outerwear",
		Tags: []string{"winter", "jacket", "warm", "waterproof"}, Price: 129.99, Image: "winter-jacket.jpg"},
	{ID: 23, Name: "Summer Dress", Category: "clothing", Type: "dress",
		Tags: []string{"summer", "dress", "casual", "floral"}, Price: 49.99, Image: "summer-dress.jpg"},
	{ID: 24, Name: "Formal Suit", Category: "clothing", Type: "formal",
		Tags: []string{"suit", "formal", "business", "professional"}, Price: 199.99, Image: "formal-suit.jpg"},
	{ID: 25, Name: "Workout Leggings", Category: "clothing", Type: "activewear",
		Tags: []string{"leggings", "workout", "gym", "stretch"}, Price: 39.99, Image: "leggings.jpg"},

	// Additional Footwear
	{ID: 26, Name: "Casual Sneakers", Category: "footwear", Type: "sneakers",
		Tags: []string{"casual", "sneakers", "comfortable", "everyday"}, Price: 69.99, Image: "casual-sneakers.jpg"},
	{ID: 27, Name: "Formal Leather Shoes", Category: "footwear", Type: "formal",
		Tags: []string{"formal", "leather", "business", "shoes"}, Price: 119.99, Image: "leather-shoes.jpg"},
	{ID: 28, Name: "Hiking Boots", Category: "footwear", Type: "boots",
		Tags: []string{"hiking", "boots", "outdoor", "waterproof"}, Price: 149.99, Image: "hiking-boots.jpg"},
	{ID: 29, Name: "Sandals", Category: "footwear", Type: "sandals",
		Tags: []string{"summer", "sandals", "beach", "casual"}, Price: 34.99, Image: "sandals.jpg"},
	{ID: 30, Name: "Indoor Slippers", Category: "footwear", Type: "slippers",
		Tags: []string{"indoor", "slippers", "comfortable", "home"}, Price: 24.99, Image: "slippers.jpg"},

	// Books and Media
	{ID: 31, Name: "Bestselling Novel", Category: "books", Type: "fiction",
		Tags: []string{"novel", "fiction", "bestseller", "reading"}, Price: 18.99, Image: "novel.jpg"},
	{ID: 32, Name: "Cookbook", Category: "books", Type: "non-fiction",
		Tags: []string{"cooking", "recipes", "food", "chef"}, Price: 29.99, Image: "cookbook.jpg"},
	{ID: 33, Name: "Programming Reference", Category: "books", Type: "education",
		Tags: []string{"programming", "education", "reference", "coding"}, Price: 39.99, Image: "programming-book.jpg"},
	{ID: 34, Name: "Historical Biography", Category: "books", Type: "non-fiction",
		Tags: []string{"history", "biography", "non-fiction", "educational"}, Price: 27.99, Image: "biography.jpg"},
	{ID: 35, Name: "Science Fiction Collection", Category: "books", Type: "fiction",
		Tags: []string{"sci-fi", "collection", "fiction", "fantasy"}, Price: 45.99, Image: "sci-fi-books.jpg"},

	// Sports and Fitness
	{ID: 36, Name: "Adjustable Dumbbells Set", Category: "fitness", Type: "weights",
		Tags: []string{"dumbbells", "weights", "adjustable", "home gym"}, Price: 179.99, Image: "dumbbells.jpg"},
	{ID: 37, Name: "Exercise Bike", Category: "fitness", Type: "cardio",
		Tags: []string{"bike", "exercise", "cardio", "stationary"}, Price: 349.99, Image: "exercise-bike.jpg"},
	{ID: 38, Name: "Tennis Racket", Category: "sports", Type: "tennis",
		Tags: []string{"tennis", "racket", "sports", "outdoor"}, Price: 89.99, Image: "tennis-racket.jpg"},
	{ID: 39, Name: "Basketball", Category: "sports", Type: "basketball",
		Tags: []string{"basketball", "sports", "indoor", "outdoor"}, Price: 29.99, Image: "basketball.jpg"},
	{ID: 40, Name: "Fitness Tracker Band", Category: "fitness", Type: "wearable",
		Tags: []string{"fitness", "tracker", "band", "health"}, Price: 59.99, Image: "fitness-band.jpg"},

	// Beauty and Personal Care
	{ID: 41, Name: "Facial Cleanser", Category: "beauty", Type: "skincare",
		Tags: []string{"facial", "cleanser", "skincare", "face"}, Price: 24.99, Image: "facial-cleanser.jpg"},
	{ID: 42, Name: "Hair Dryer", Category: "beauty", Type: "haircare",
		Tags: []string{"hair", "dryer", "styling", "blowout"}, Price: 49.99, Image: "hair-dryer.jpg"},
	{ID: 43, Name: "Electric Razor", Category: "personal-care", Type: "shaving",
		Tags: []string{"razor", "electric", "shaving", "grooming"}, Price: 79.99, Image: "electric-razor.jpg"},
	{ID: 44, Name: "Makeup Set", Category: "beauty", Type: "makeup",
		Tags: []string{"makeup", "set", "cosmetics", "beauty"}, Price: 59.99, Image: "makeup-set.jpg"},
	{ID: 45, Name: "Perfume", Category: "beauty", Type: "fragrance",
		Tags: []string{"perfume", "fragrance", "scent", "luxury"}, Price: 89.99, Image: "perfume.jpg"},

	// Toys and Games
	{ID: 46, Name: "Board Game Set", Category: "toys", Type: "games",
		Tags: []string{"board game", "family", "fun", "strategy"}, Price: 34.99, Image: "board-game.jpg"},
	{ID: 47, Name: "Video Game Console", Category: "toys", Type: "gaming",
		Tags: []string{"console", "video game", "gaming", "entertainment"}, Price: 399.99, Image: "game-console.jpg"},
	{ID: 48, Name: "Remote Control Car", Category: "toys", Type: "rc",
		Tags: []string{"remote control", "car", "toy", "racing"}, Price: 59.99, Image: "rc-car.jpg"},
	{ID: 49, Name: "Building Blocks Set", Category: "toys", Type: "building",
		Tags: []string{"blocks", "building", "creative", "kids"}, Price: 39.99, Image: "building-blocks.jpg"},
	{ID: 50, Name: "Plush Teddy Bear", Category: "toys", Type: "plush",
		Tags: []string{"teddy bear", "plush", "soft", "kids"}, Price: 19.99, Image: "teddy-bear.jpg"},
}
