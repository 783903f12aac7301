package world

import "github.com/mcoot/foundry/internal/model"

const welcomeMessage = "Welcome to the game!"

// DefaultTables are the tables available when none are configured
func DefaultTables() []model.Table {
	return []model.Table{
		{ID: "1", Name: "Сфера", Description: "Основной игровой стол для приключений"},
		{ID: "2", Name: "2 Стол", Description: "Дополнительный стол для новых кампаний"},
	}
}

// DefaultItems is the catalog seeded on first start
func DefaultItems() []model.Item {
	return []model.Item{
		{
			ID:          "1",
			Name:        "Меч воина",
			NameColor:   "#ff6b6b",
			Description: "Острый меч с рунами силы",
			Rarity:      model.RarityRare,
			Icon:        "⚔️",
			Weight:      3.5,
			Category:    "Оружие",
		},
		{
			ID:          "2",
			Name:        "Зелье здоровья",
			NameColor:   "#51cf66",
			Description: "Восстанавливает 50 HP",
			Rarity:      model.RarityCommon,
			Icon:        "🧪",
			Weight:      0.5,
			Category:    "Зелья",
		},
		{
			ID:          "3",
			Name:        "Щит защитника",
			NameColor:   "#4dabf7",
			Description: "Прочный щит из драконьей чешуи",
			Rarity:      model.RarityEpic,
			Icon:        "🛡️",
			Weight:      5.0,
			Category:    "Броня",
		},
	}
}

// DefaultLobbyItems are the items lying on the first table on first start
func DefaultLobbyItems() []model.LobbyItem {
	items := DefaultItems()
	return []model.LobbyItem{
		{ID: "1", TableID: "1", Item: items[0]},
		{ID: "2", TableID: "1", Item: items[1]},
	}
}
