package memory

import (
	"time"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
)

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

var seedUsers = []entity.User{
	{
		ID:            1,
		Username:      "ai_researcher",
		WalletAddress: ptr("0x123...abc"),
		TotalEarnings: "12450",
		Reputation:    95,
		CreatedAt:     seedDate(2024, time.January, 15),
	},
	{
		ID:            2,
		Username:      "blockchain_dev",
		WalletAddress: ptr("0x456...def"),
		TotalEarnings: "8920",
		Reputation:    87,
		CreatedAt:     seedDate(2024, time.February, 10),
	},
	{
		ID:            3,
		Username:      "sound_artist",
		WalletAddress: ptr("0x789...ghi"),
		TotalEarnings: "7340",
		Reputation:    92,
		CreatedAt:     seedDate(2024, time.January, 20),
	},
}

var seedModels = []entity.AIModel{
	{
		ID:                1,
		Name:              "Vision Transformer v2",
		Description:       "State-of-the-art image classification and object detection model with 94.2% accuracy on ImageNet.",
		Category:          "Computer Vision",
		CreatorID:         ptr(uint64(1)),
		PricePerInference: "2.5",
		ModelFileURL:      ptr("/models/vision-transformer-v2.pkl"),
		StorageType:       ptr(entity.StorageIPFS),
		UsageCount:        2847,
		Rating:            "4.8",
		RatingCount:       156,
		IsActive:          true,
		CreatedAt:         seedDate(2024, time.January, 15),
	},
	{
		ID:                2,
		Name:              "GPT-Aptos 13B",
		Description:       "Fine-tuned language model specialized in blockchain and Move smart contract development.",
		Category:          "Language",
		CreatorID:         ptr(uint64(2)),
		PricePerInference: "1.8",
		ModelFileURL:      ptr("/models/gpt-aptos-13b.pt"),
		StorageType:       ptr(entity.StorageFilecoin),
		UsageCount:        1923,
		Rating:            "4.6",
		RatingCount:       98,
		IsActive:          true,
		CreatedAt:         seedDate(2024, time.February, 10),
	},
	{
		ID:                3,
		Name:              "AudioGen Pro",
		Description:       "Generate high-quality music and sound effects from text descriptions using advanced neural networks.",
		Category:          "Audio",
		CreatorID:         ptr(uint64(3)),
		PricePerInference: "3.2",
		ModelFileURL:      ptr("/models/audiogen-pro.h5"),
		StorageType:       ptr(entity.StorageOcean),
		UsageCount:        1678,
		Rating:            "4.9",
		RatingCount:       89,
		IsActive:          true,
		CreatedAt:         seedDate(2024, time.January, 20),
	},
}

var seedPrompts = []entity.Prompt{
	{
		ID:          1,
		Title:       "Professional Headshot Generator",
		Description: "Generate stunning professional headshots with perfect lighting and composition. Includes 15 variations and style guide.",
		Content:     "professional headshot of [subject], studio lighting, clean background, corporate attire, high resolution, professional photography...",
		Category:    "Photography",
		CreatorID:   ptr(uint64(1)),
		Price:       "15",
		SalesCount:  247,
		Rating:      "4.9",
		RatingCount: 89,
		NFTTokenID:  "nft_001",
		IsActive:    true,
		CreatedAt:   seedDate(2024, time.February, 1),
	},
	{
		ID:          2,
		Title:       "Code Documentation Writer",
		Description: "Automatically generate comprehensive documentation for any codebase. Includes README templates and API docs.",
		Content:     "Create detailed documentation for this [language] code: [code_snippet]. Include usage examples, installation instructions, API reference...",
		Category:    "Development",
		CreatorID:   ptr(uint64(2)),
		Price:       "12",
		SalesCount:  189,
		Rating:      "4.7",
		RatingCount: 67,
		NFTTokenID:  "nft_002",
		IsActive:    true,
		CreatedAt:   seedDate(2024, time.February, 5),
	},
	{
		ID:          3,
		Title:       "Fantasy Landscape Artist",
		Description: "Create breathtaking fantasy landscapes with magical elements. Perfect for game development and digital art.",
		Content:     "epic fantasy landscape, [environment], magical lighting, detailed terrain, atmospheric perspective, 4k resolution...",
		Category:    "Art",
		CreatorID:   ptr(uint64(3)),
		Price:       "18",
		SalesCount:  312,
		Rating:      "4.8",
		RatingCount: 94,
		NFTTokenID:  "nft_003",
		IsActive:    true,
		CreatedAt:   seedDate(2024, time.January, 25),
	},
}

// loadSeedData inserts the demo dataset and returns the highest id it used.
// Must run before the store is shared.
func (s *Store) loadSeedData() uint64 {
	var lastID uint64
	track := func(id uint64) {
		if id > lastID {
			lastID = id
		}
	}

	for i := range seedUsers {
		user := seedUsers[i].Clone()
		s.users.put(user.ID, user)
		s.indexUser(user)
		track(user.ID)
	}
	for i := range seedModels {
		model := seedModels[i].Clone()
		s.models.put(model.ID, model)
		track(model.ID)
	}
	for i := range seedPrompts {
		prompt := seedPrompts[i].Clone()
		s.prompts.put(prompt.ID, prompt)
		track(prompt.ID)
	}

	return lastID
}
