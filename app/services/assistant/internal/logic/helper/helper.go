package helper

import (
	"SproutAI/app/services/assistant/internal/assistant/catalog"
	"SproutAI/app/services/assistant/internal/assistant/convo"
	"SproutAI/app/services/assistant/internal/assistant/recommend"
	"SproutAI/app/services/assistant/internal/types"
)

func ToRecommendation(result *recommend.Result) *types.Recommendation {
	if result == nil {
		return nil
	}
	out := &types.Recommendation{
		Plants: make([]types.RecommendedPlant, 0, len(result.Plants)),
	}
	for _, scored := range result.Plants {
		out.Plants = append(out.Plants, types.RecommendedPlant{
			Id:             scored.Plant.ID,
			Name:           scored.Plant.Name,
			ScientificName: scored.Plant.ScientificName,
			Score:          scored.Score,
			SubScores: types.SubScores{
				Light:         scored.Sub.Light,
				DifficultyFit: scored.Sub.DifficultyFit,
				Maintenance:   scored.Sub.Maintenance,
			},
			Light:          string(scored.Plant.Light),
			Difficulty:     scored.Plant.Difficulty,
			Maintenance:    string(scored.Plant.Maintenance),
			WaterEveryDays: scored.Plant.WaterEveryDays,
			PetSafe:        scored.Plant.PetSafe,
			AirPurifying:   scored.Plant.AirPurifying,
		})
	}
	for _, ranked := range result.Products {
		out.Products = append(out.Products, types.RecommendedProduct{
			Id:         ranked.Product.ID,
			Name:       ranked.Product.Name,
			Category:   ranked.Product.Category,
			PriceCents: ranked.Product.PriceCents,
			Price:      float64(ranked.Product.PriceCents) / 100.0,
		})
	}
	for _, ranked := range result.Kits {
		out.Kits = append(out.Kits, types.RecommendedKit{
			Id:         ranked.Kit.ID,
			Name:       ranked.Kit.Name,
			PriceCents: ranked.Kit.PriceCents,
			Price:      float64(ranked.Kit.PriceCents) / 100.0,
			Difficulty: ranked.Kit.Difficulty,
		})
	}
	out.Relaxed = slotNames(result.Relaxed)
	return out
}

func ToChatResponse(reply *convo.TurnReply) *types.ChatResponse {
	resp := &types.ChatResponse{
		SessionId:  reply.SessionID,
		State:      string(reply.State),
		Reply:      reply.Message,
		SideIntent: string(reply.SideIntent),
		Missing:    slotNames(reply.Missing),
	}
	if reply.Recommendation != nil {
		resp.Recommendation = ToRecommendation(reply.Recommendation)
	}
	return resp
}

func ToPlantInfo(plant catalog.PlantRecord) types.PlantInfo {
	rooms := make([]string, 0, len(plant.Rooms))
	for _, room := range plant.Rooms {
		rooms = append(rooms, string(room))
	}
	return types.PlantInfo{
		Id:             plant.ID,
		Name:           plant.Name,
		ScientificName: plant.ScientificName,
		Light:          string(plant.Light),
		Humidity:       string(plant.Humidity),
		Difficulty:     plant.Difficulty,
		Maintenance:    string(plant.Maintenance),
		WaterEveryDays: plant.WaterEveryDays,
		Rooms:          rooms,
		PetSafe:        plant.PetSafe,
		AirPurifying:   plant.AirPurifying,
		Popularity:     plant.Popularity,
	}
}

func slotNames(slots []recommend.Slot) []string {
	if len(slots) == 0 {
		return nil
	}
	names := make([]string, 0, len(slots))
	for _, slot := range slots {
		names = append(names, string(slot))
	}
	return names
}
